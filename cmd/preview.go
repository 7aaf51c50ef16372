/*
Copyright © 2025 Liys <liys87x@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/telepair/lifesearch/engine/lifesearch"
	"github.com/telepair/lifesearch/pkg/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Animate a found or saved pattern",
	Long: `Load a pattern and step it forward one generation at a time.

FILE is either a YAML save file written by "search --save" (its own rule
and board are used), or a Plaintext-style pattern file ('.'/'O' rows
terminated by '$', a trailing '!'), in which case --rule picks the rule
to advance it with.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		InitLog()

		data, err := os.ReadFile(args[0])
		if err != nil {
			slog.Error("failed to read pattern file", "error", err)
			os.Exit(1)
		}

		ruleStr, _ := cmd.Flags().GetString("rule")

		player, err := loadPlayer(data, ruleStr)
		if err != nil {
			slog.Error("failed to load pattern", "error", err)
			os.Exit(1)
		}

		if err := ui.RunModel("Pattern Playback", player, lang, refreshInterval); err != nil {
			slog.Error("failed to run preview TUI", "error", err)
			os.Exit(1)
		}
	},
}

// loadPlayer tries the save-file format first, falling back to a bare
// Plaintext pattern advanced by ruleStr.
func loadPlayer(data []byte, ruleStr string) (*lifesearch.Player, error) {
	if s, err := lifesearch.LoadSearch(data); err == nil {
		return lifesearch.PlayerFromSearch(s, lifesearch.DefaultPlayerConfig()), nil
	}

	pattern, err := lifesearch.ParsePlaintext(data)
	if err != nil {
		return nil, err
	}
	for y, row := range pattern {
		for x, s := range row {
			if s == lifesearch.Unknown {
				return nil, fmt.Errorf("preview: pattern cell (%d, %d) is still Unknown ('?'); only fully-resolved patterns can be played back", x, y)
			}
		}
	}
	rule, err := lifesearch.ParseRule(ruleStr)
	if err != nil {
		return nil, err
	}
	return lifesearch.NewPlayer(pattern, rule, lifesearch.DefaultPlayerConfig()), nil
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("rule", "B3/S23", "rule string used to advance the pattern")
}
