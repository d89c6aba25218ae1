// ============================================================================
// layerdeck - SVG layer editor
// ============================================================================
//
// Package:     cmd
// Description: One-shot edit commands: toggle, move and reorder
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/internal/document"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <svg> <pos>",
	Short: "Schaltet die Sichtbarkeit einer Ebene um",
	Long: `Schaltet die Sichtbarkeit der Ebene an <pos> um.

In einer Kategorie mit "+" (1 aus n) wird eine versteckte Ebene
zur einzigen sichtbaren der Kategorie.`,
	Args: cobra.ExactArgs(2),
	RunE: runToggle,
}

var moveCmd = &cobra.Command{
	Use:   "move <svg> <src> <dst>",
	Short: "Verschiebt einen Katalogeintrag",
	Long: `Verschiebt einen Eintrag im Katalog.

Oberste Einträge (e:N, c:N) wandern innerhalb der obersten Ebene,
Kategorie-Elemente (c:N/M) innerhalb einer oder zwischen Kategorien.
Die Stapelreihenfolge im SVG bleibt unverändert.`,
	Args: cobra.ExactArgs(3),
	RunE: runMove,
}

var reorderCmd = &cobra.Command{
	Use:   "reorder <svg> <src> <dst>",
	Short: "Verschiebt eine Ebene in der Stapelreihenfolge",
	Long: `Verschiebt die Ebene an Stapelposition <src> nach <dst>
(0 = oberste Ebene) und ordnet die Gruppen im SVG entsprechend um.`,
	Args: cobra.ExactArgs(3),
	RunE: runReorder,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(reorderCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	p, err := document.ParsePos(args[1])
	if err != nil {
		return err
	}
	sess, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}
	if err := sess.Toggle(p); err != nil {
		return err
	}
	return writeResult(cmd, sess)
}

func runMove(cmd *cobra.Command, args []string) error {
	src, err := document.ParsePos(args[1])
	if err != nil {
		return err
	}
	dst, err := document.ParsePos(args[2])
	if err != nil {
		return err
	}
	sess, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}
	if err := sess.Move(src, dst); err != nil {
		return err
	}
	return writeResult(cmd, sess)
}

func runReorder(cmd *cobra.Command, args []string) error {
	src, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	dst, err := parseIndex(args[2])
	if err != nil {
		return err
	}
	sess, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}
	if err := sess.MovePosition(src, dst); err != nil {
		return err
	}
	return writeResult(cmd, sess)
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, mdwerror.Newf("invalid stack position %q", s).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parseIndex")
	}
	return n, nil
}
