package cmd

import (
	"github.com/spf13/cobra"
)

var (
	inspectFormat  string
	inspectShowIDs bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <svg>",
	Short: "Zeigt die Ebenen eines SVG-Dokuments",
	Long: `Liest ein SVG-Dokument und zeigt Katalog und Stapelreihenfolge.

Ausgabeformate: tree (default), json, yaml. "-" liest von stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "", "Ausgabeformat (tree, json, yaml)")
	inspectCmd.Flags().BoolVar(&inspectShowIDs, "ids", false, "Rohe Ebenen-IDs anzeigen")
}

func runInspect(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}

	format := inspectFormat
	if format == "" {
		format = settings.Output.Format
	}
	return printRoot(cmd.OutOrStdout(), sess.Root(), sess.Path(), format, inspectShowIDs || settings.TUI.ShowIDs)
}
