package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Konfiguration anzeigen",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Zeigt die wirksame Konfiguration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		source := settings.Source
		if source == "" {
			source = "(defaults)"
		}
		fmt.Fprintf(out, "# Quelle: %s\n", source)

		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(settings); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
