package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"petcare-marketplace/internal/platform/httpclient"
)

const defaultAPI = "http://localhost:8080"

var (
	apiURL  string
	timeout time.Duration
	client  *httpclient.Client
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "petcarectl",
		Short:        "CLI para la API de petcare marketplace",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := httpclient.New(apiURL, timeout)
			if err != nil {
				return err
			}
			client = c
			return nil
		},
	}

	api := os.Getenv("PETCARE_API")
	if api == "" {
		api = defaultAPI
	}
	root.PersistentFlags().StringVar(&apiURL, "api", api, "base URL de la API (env PETCARE_API)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "timeout por request")

	root.AddCommand(
		loginCmd(), logoutCmd(), whoamiCmd(),
		petsCmd(),
		cartCmd(),
		checkoutCmd(), ordersCmd(),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
