package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

func publishCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a listing through the running bridge",
		Long: "Sends a publication request ({listing, inventory, media}) to the\n" +
			"bridge's /publish endpoint. Use --file - to read from stdin.",
		Example: `  # Publish from a file
  etsy-bridge publish --file listing.json

  # Publish from stdin
  cat listing.json | etsy-bridge publish --file -`,
		RunE: func(_ *cobra.Command, _ []string) error {
			body, err := readInput(file)
			if err != nil {
				return err
			}
			if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "listing").IsObject() {
				return errors.New("input must be a JSON object with a listing object")
			}

			resp, err := newClient().Publish(context.Background(), json.RawMessage(body))
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Listing ID:\t%d\n", resp.ListingID)
			tw.writef("Stage:\t%s\n", resp.Stage)
			tw.writef("Title:\t%s\n", gjson.GetBytes(resp.Listing, "title").String())
			tw.writef("Media:\t%d uploaded\n", len(resp.MediaResult))
			return tw.finish()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "publication request JSON file, or - for stdin")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
