package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/kursor/internal/config"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of SVG cursor metadata",
	Long: `Print the JSON schema describing the metadata.json document found in a
theme's cursors_scalable icon directories. Useful for editor validation
when authoring SVG cursor themes.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.MetadataSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
