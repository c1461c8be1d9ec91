package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/recluta-track/internal/application/dto"
)

func newLoginCmd(a **app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión contra el directorio de usuarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := (*a).sessions.Login(dto.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			(*a).log.Info().Str("email", res.Session.Email).Str("role", string(res.Session.Role)).Msg("sesión iniciada")
			fmt.Fprintf(cmd.OutOrStdout(), "Bienvenido, %s (%s) → %s\n", res.Session.Name, res.Session.Role, res.RedirectTo)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email del usuario")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión activa (no-op si no hay sesión)",
		RunE: func(cmd *cobra.Command, args []string) error {
			redirect, err := (*a).sessions.Logout()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sesión cerrada → %s\n", redirect)
			return nil
		},
	}
}

func newWhoamiCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Muestra la sesión activa",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := (*a).sessions.Current()
			if s == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Sin sesión activa")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> rol=%s id=%s\n", s.Name, s.Email, s.Role, s.UserID)
			return nil
		},
	}
}

func newPanelCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "panel",
		Short: "Tablero resumen del rol activo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).require(); err != nil {
				return err
			}
			sum, err := (*a).dashboard.Summary()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Candidatos: %d  Empresas: %d  Usuarios: %d  Asignaciones: %d\n",
				sum.TotalCandidates, sum.TotalCompanies, sum.TotalUsers, sum.TotalAssignments)
			fmt.Fprintf(out, "Por estatus: Citado=%d Entrevistado=%d Contratado=%d Rechazado=%d\n",
				sum.ByEstatus["Citado"], sum.ByEstatus["Entrevistado"], sum.ByEstatus["Contratado"], sum.ByEstatus["Rechazado"])
			return nil
		},
	}
}
