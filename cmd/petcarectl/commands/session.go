package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"petcare-marketplace/internal/platform/httpclient"
)

type sessionView struct {
	LoggedIn bool `json:"logged_in"`
	User     *struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Pets  []pet  `json:"pets"`
	} `json:"user"`
}

type pet struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Gender string `json:"gender"`
}

// login <email> <password>
func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Inicia sesión con las credenciales demo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out sessionView
			err := client.Post(cmd.Context(), "/session/login", map[string]string{
				"email":    args[0],
				"password": args[1],
			}, &out)
			if httpclient.IsStatus(err, http.StatusUnauthorized) {
				return fmt.Errorf("credenciales inválidas")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s <%s>\n", out.User.Name, out.User.Email)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión (el carrito se conserva)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post(cmd.Context(), "/session/logout", nil, nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Muestra la sesión actual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out sessionView
			if err := client.Get(cmd.Context(), "/session", &out); err != nil {
				return err
			}
			if !out.LoggedIn || out.User == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%d pets)\n", out.User.Name, out.User.Email, len(out.User.Pets))
			return nil
		},
	}
}

func petsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Lista las mascotas del perfil",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []pet
			if err := client.Get(cmd.Context(), "/me/pets", &out); err != nil {
				return err
			}
			for _, p := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Type, p.Gender)
			}
			return nil
		},
	}
	cmd.AddCommand(petsAddCmd())
	return cmd
}

// pets add <name> <type> <gender> [--breed]
func petsAddCmd() *cobra.Command {
	var breed string
	cmd := &cobra.Command{
		Use:   "add <name> <type> <gender>",
		Short: "Agrega una mascota (type: cat|dog|bird|rabbit|hamster|other)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out pet
			err := client.Post(cmd.Context(), "/me/pets", map[string]string{
				"name":   args[0],
				"type":   args[1],
				"gender": args[2],
				"breed":  breed,
			}, &out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", out.Name, out.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&breed, "breed", "", "raza")
	return cmd
}
