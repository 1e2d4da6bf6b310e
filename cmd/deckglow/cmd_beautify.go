package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"deckglow"
)

var beautifyOut string

var beautifyCmd = &cobra.Command{
	Use:   "beautify <file.pptx>",
	Short: "Beautify a presentation onto the configured template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b := deckglow.New(cfg.Paths.Template).
			Scripts(cfg.Paths.Scripts).
			Python(cfg.Tools.Python).
			Timeout(cfg.ToolTimeout()).
			WorkDir(cfg.Paths.Temp).
			Keywords(cfg.ClassifierKeywords()).
			Pools(cfg.SelectorPools()).
			Logger(logger)

		out, err := b.Beautify(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer os.RemoveAll(filepath.Dir(out))

		if err := os.Rename(out, beautifyOut); err != nil {
			// Rename fails across filesystems; fall back to a copy.
			data, rerr := os.ReadFile(out)
			if rerr != nil {
				return fmt.Errorf("move output: %w", err)
			}
			if werr := os.WriteFile(beautifyOut, data, 0o644); werr != nil {
				return fmt.Errorf("write output: %w", werr)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), beautifyOut)
		return nil
	},
}

func init() {
	beautifyCmd.Flags().StringVarP(&beautifyOut, "output", "o", "beautified.pptx", "output file path")
}
