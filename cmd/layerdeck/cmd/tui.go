package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/layerdeck/internal/tui/layerpanel"
)

var tuiShowIDs bool

var tuiCmd = &cobra.Command{
	Use:   "tui <svg>",
	Short: "Startet den interaktiven Ebenen-Editor",
	Long: `Startet den interaktiven Ebenen-Editor für ein SVG-Dokument.

Tastenkuerzel:
  ↑/↓ j/k     Auswahl
  Space       Sichtbarkeit umschalten
  K/J         Eintrag nach oben/unten verschieben
  Tab         Katalog / Stapel
  i           IDs anzeigen
  s           Speichern
  w           Speichern unter
  q           Beenden`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&tuiShowIDs, "ids", false, "Rohe Ebenen-IDs anzeigen")
}

func runTUI(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}

	cfg := layerpanel.Config{ShowIDs: tuiShowIDs || settings.TUI.ShowIDs}
	if err := layerpanel.Run(sess, cfg); err != nil {
		printError("TUI", err)
		return err
	}
	return nil
}
