package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/layerdeck/internal/ident"
)

var (
	encodeCategory bool
	encodeInclude  bool
)

var identCmd = &cobra.Command{
	Use:   "ident",
	Short: "Ebenen-IDs dekodieren und erzeugen",
}

var identDecodeCmd = &cobra.Command{
	Use:   "decode <id>...",
	Short: "Dekodiert Ebenen-IDs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for i, d := range ident.DecodeAll(args) {
			if d.Err != nil {
				failed++
				fmt.Fprintf(out, "[-] %-30s %v\n", args[i], d.Err)
				continue
			}
			fmt.Fprintf(out, "[+] %-30s %s\n", args[i], d.Descriptor)
		}
		if failed > 0 {
			return fmt.Errorf("%d von %d IDs nicht dekodierbar", failed, len(args))
		}
		return nil
	},
}

var identEncodeCmd = &cobra.Command{
	Use:   "encode <name>",
	Short: "Erzeugt die Ebenen-ID für einen Namen",
	Long: `Erzeugt die Ebenen-ID für einen Namen.

  --category            Kategorie statt Element
  --category --include  Kategorie mit genau einer sichtbaren Ebene`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := ident.Element(args[0])
		if encodeCategory {
			d = ident.Category(args[0], encodeInclude)
		}
		id, err := ident.Encode(d)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(identCmd)
	identCmd.AddCommand(identDecodeCmd)
	identCmd.AddCommand(identEncodeCmd)

	identEncodeCmd.Flags().BoolVar(&encodeCategory, "category", false, "Kategorie-ID erzeugen")
	identEncodeCmd.Flags().BoolVar(&encodeInclude, "include", false, "Kategorie mit genau einer sichtbaren Ebene")
}
