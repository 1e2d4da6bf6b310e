package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"deckglow"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.pptx>",
	Short: "Parse a presentation and print the classified slide tree as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b := deckglow.New(cfg.Paths.Template).
			Keywords(cfg.ClassifierKeywords()).
			Logger(logger)

		deck, err := b.Parse(args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(struct {
			Meta   any `json:"meta"`
			Slides any `json:"slides"`
		}{deck.Meta(), deck.Pages})
	},
}
