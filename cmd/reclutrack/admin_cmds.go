package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/recluta-track/internal/application/dto"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
)

func newUsuariosCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuarios",
		Short: "Gestión del directorio de usuarios (solo admin)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista los usuarios del directorio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).require(entity.RoleAdmin); err != nil {
				return err
			}
			users, err := (*a).users.List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROL")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
			}
			return w.Flush()
		},
	}

	var in dto.CreateUserRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Crea un usuario con el rol indicado",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).require(entity.RoleAdmin); err != nil {
				return err
			}
			u, err := (*a).users.Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario %s creado (%s, rol %s)\n", u.Name, u.ID, u.Role)
			return nil
		},
	}
	add.Flags().StringVar(&in.Email, "email", "", "email (sin chequeo de unicidad)")
	add.Flags().StringVar(&in.Password, "password", "", "contraseña (se almacena como hash bcrypt)")
	add.Flags().StringVar(&in.Name, "nombre", "", "nombre a mostrar")
	add.Flags().StringVar(&in.Role, "rol", "", "admin, recruiter o inplant")
	add.MarkFlagRequired("email")
	add.MarkFlagRequired("password")
	add.MarkFlagRequired("rol")

	cmd.AddCommand(list, add)
	return cmd
}

func newEmpresasCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "empresas",
		Short: "Gestión de empresas cliente (solo admin)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista las empresas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).require(entity.RoleAdmin); err != nil {
				return err
			}
			companies, err := (*a).companies.List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE")
			for _, c := range companies {
				fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
			}
			return w.Flush()
		},
	}

	var name string
	add := &cobra.Command{
		Use:   "add",
		Short: "Añade una empresa",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).require(entity.RoleAdmin); err != nil {
				return err
			}
			c, err := (*a).companies.Add(dto.CreateCompanyRequest{Name: name})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Empresa %s añadida (%s)\n", c.Name, c.ID)
			return nil
		},
	}
	add.Flags().StringVar(&name, "nombre", "", "nombre de la empresa")
	add.MarkFlagRequired("nombre")

	cmd.AddCommand(list, add)
	return cmd
}

func newAsignacionesCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asignaciones",
		Short: "Asignación de empresas a inplants (solo admin)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista las asignaciones empresa↔inplant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).require(entity.RoleAdmin); err != nil {
				return err
			}
			assignments, err := (*a).assignments.List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMPRESA\tINPLANT")
			for _, as := range assignments {
				fmt.Fprintf(w, "%s\t%s\t%s\n", as.ID, as.CompanyName, as.InplantName)
			}
			return w.Flush()
		},
	}

	var in dto.CreateAssignmentRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Asigna una empresa a un inplant (ambos por nombre)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).require(entity.RoleAdmin); err != nil {
				return err
			}
			as, err := (*a).assignments.Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Empresa %s asignada a %s (%s)\n", as.CompanyName, as.InplantName, as.ID)
			return nil
		},
	}
	add.Flags().StringVar(&in.CompanyName, "empresa", "", "nombre de la empresa")
	add.Flags().StringVar(&in.InplantName, "inplant", "", "nombre del usuario inplant")
	add.MarkFlagRequired("empresa")
	add.MarkFlagRequired("inplant")

	cmd.AddCommand(list, add)
	return cmd
}
