package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
)

func newCandidatosCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidatos",
		Short: "Registro y seguimiento de candidatos",
	}
	cmd.AddCommand(newCandidatosListCmd(a), newCandidatosAddCmd(a), newCandidatosEstatusCmd(a))
	return cmd
}

func newCandidatosListCmd(a **app) *cobra.Command {
	var buscar string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los candidatos registrados",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Listado global para los tres roles (contrato observado).
			if err := (*a).require(); err != nil {
				return err
			}
			candidates, err := (*a).candidates.List(buscar)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Sin candidatos")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFECHA\tNOMBRE\tMUNICIPIO\tCUENTA\tVACANTE\tESTATUS")
			for _, c := range candidates {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					c.ID, c.RegistrationDate, c.Nombre, c.Municipio, c.Cuenta, c.Vacante, c.Estatus)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&buscar, "buscar", "", "filtra por nombre, municipio o cuenta (ignora acentos)")
	return cmd
}

func newCandidatosAddCmd(a **app) *cobra.Command {
	var in dto.CreateCandidateRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Registra un nuevo candidato atribuido a la sesión activa",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Cualquier rol autenticado puede registrar candidatos.
			if err := (*a).require(); err != nil {
				return err
			}
			c, err := (*a).candidates.Add((*a).sessions.Current(), in)
			if err != nil {
				return err
			}
			(*a).log.Info().Str("id", c.ID).Str("registrant", c.RegistrantID).Msg("candidato registrado")
			fmt.Fprintf(cmd.OutOrStdout(), "Candidato %s registrado (%s)\n", c.Nombre, c.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Nombre, "nombre", "", "nombre completo")
	cmd.Flags().StringVar(&in.Telefono, "telefono", "", "teléfono de contacto")
	cmd.Flags().StringVar(&in.Municipio, "municipio", "", "municipio de residencia")
	cmd.Flags().StringVar(&in.Escolaridad, "escolaridad", "", "último grado de estudios")
	cmd.Flags().StringVar(&in.Cuenta, "cuenta", "", "empresa cliente (nombre)")
	cmd.Flags().StringVar(&in.Vacante, "vacante", "", "vacante a cubrir")
	cmd.Flags().StringVar(&in.Estatus, "estatus", string(entity.EstatusCitado), "estatus inicial")
	cmd.MarkFlagRequired("nombre")
	return cmd
}

func newCandidatosEstatusCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "estatus <id> <Citado|Entrevistado|Contratado|Rechazado>",
		Short: "Actualiza el estatus de un candidato (solo inplant)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).require(entity.RoleInplant); err != nil {
				return err
			}
			c, err := (*a).candidates.UpdateStatus((*a).sessions.Current(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", c.Nombre, c.Estatus)
			return nil
		},
	}
}
