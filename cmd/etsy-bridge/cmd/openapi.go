package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func openapiCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the bridge's OpenAPI document",
		Long: "Builds the server from the local config without starting it and\n" +
			"prints the generated OpenAPI 3.1 document.",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			srv, err := newServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
			if err != nil {
				return err
			}

			var doc []byte
			if asJSON {
				doc, err = srv.api.OpenAPI().MarshalJSON()
			} else {
				doc, err = srv.api.OpenAPI().YAML()
			}
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(doc)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of YAML")
	return cmd
}
