package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/layerdeck/foundation/core/log"
	"github.com/msto63/layerdeck/internal/session"
	"github.com/msto63/layerdeck/pkg/core/logging"
	appconfig "github.com/msto63/layerdeck/pkg/core/config"
)

var (
	cfgFile string
	outPath string
	verbose bool

	settings *appconfig.Config
	logger   = log.Discard()
	logFile  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "layerdeck",
	Short: "layerdeck - Ebenen-Editor für SVG-Dokumente",
	Long: `layerdeck liest die <g>-Gruppen eines SVG-Dokuments als Ebenen,
gruppiert sie anhand ihrer IDs in Kategorien und bearbeitet
Sichtbarkeit und Reihenfolge.

Positionen:
  e:3     Element an Stelle 3 der obersten Ebene
  c:1     Kategorie an Stelle 1
  c:1/2   Element 2 der Kategorie an Stelle 1`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./layerdeck.toml)")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "Ziel für das bearbeitete SVG (default: stdout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// setup loads the settings and builds the logger for one invocation
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load(cfgFile)
	if err != nil {
		return err
	}
	settings = cfg

	lg, err := logging.NewLogger(logging.LoggerConfig{
		Name:    "layerdeck",
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Verbose: verbose,
		Output:  cmd.ErrOrStderr(),
		File:    cfg.Log.File,
	})
	if err != nil {
		return err
	}
	logFile = lg
	logger = lg.WithCorrelationID(uuid.NewString())

	if !cfg.Output.Color {
		color.NoColor = true
	}
	if cfg.Source != "" {
		logger.Debug("settings loaded", log.Field("path", cfg.Source))
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	err := logFile.Close()
	logFile = nil
	return err
}

// openSession opens the SVG named by path, "-" reads standard input
func openSession(cmd *cobra.Command, path string) (*session.Session, error) {
	if path == "-" {
		return session.Read(cmd.InOrStdin(), logger)
	}
	return session.Open(path, logger)
}

// writeResult stores an edited document: to --out when given, back to its
// file when svg.in_place is set, to stdout otherwise.
func writeResult(cmd *cobra.Command, sess *session.Session) error {
	switch {
	case outPath != "":
		return sess.Save(outPath)
	case settings != nil && settings.SVG.InPlace && sess.Path() != "":
		return sess.Save("")
	default:
		return writeTo(cmd.OutOrStdout(), sess)
	}
}

func writeTo(w io.Writer, sess *session.Session) error {
	if _, err := sess.WriteTo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
