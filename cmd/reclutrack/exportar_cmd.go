package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/recluta-track/internal/domain/entity"
)

// Columnas del export, en el orden de la tabla de candidatos del panel.
var csvHeaders = []string{
	"Fecha Registro", "Nombre", "Teléfono", "Municipio",
	"Escolaridad", "Cuenta", "Vacante", "Estatus", "Reclutador",
}

func newExportarCmd(a **app) *cobra.Command {
	var salida string
	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta los candidatos a CSV (solo admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).require(entity.RoleAdmin); err != nil {
				return err
			}
			candidates, err := (*a).candidates.List("")
			if err != nil {
				return err
			}
			users, err := (*a).users.List()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if salida != "" {
				f, err := os.Create(salida)
				if err != nil {
					return fmt.Errorf("crear archivo de export: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := writeCandidatesCSV(w, candidates, users); err != nil {
				return err
			}
			if salida != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d candidatos exportados a %s\n", len(candidates), salida)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&salida, "salida", "", "archivo destino (por defecto stdout)")
	return cmd
}

// writeCandidatesCSV escribe el export con la columna Reclutador resuelta
// por el join registrantId → User.Name. Un registrante que ya no existe en
// el directorio se exporta como "Desconocido" (referencia colgante).
func writeCandidatesCSV(w io.Writer, candidates []*entity.Candidate, users []*entity.User) error {
	byID := make(map[string]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.Name
	}
	findUserName := func(registrantID string) string {
		if name, ok := byID[registrantID]; ok {
			return name
		}
		return "Desconocido"
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	for _, c := range candidates {
		row := []string{
			c.RegistrationDate, c.Nombre, c.Telefono, c.Municipio,
			c.Escolaridad, c.Cuenta, c.Vacante, string(c.Estatus),
			findUserName(c.RegistrantID),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
