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

// Package cmd contains the command line interface for the lifesearch application.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/telepair/lifesearch/engine/lifesearch"
	"github.com/telepair/lifesearch/pkg/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search X Y P DX DY",
	Short: "Search for a still life, oscillator or spaceship",
	Long: `Search for a pattern in a Game-of-Life-like rule via backtracking
constraint propagation.

X and Y are the bounding box, P is the period, DX and DY are the
translation applied once per period (0, 0 for a still life or plain
oscillator; non-zero for a spaceship).`,
	Args: cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		InitLog()
		ctx := context.Background()
		InitProfile(ctx)

		cfg, err := searchConfigFromArgs(cmd, args)
		if err != nil {
			slog.Error("invalid search configuration", "error", err)
			os.Exit(1)
		}

		loadFile, _ := cmd.Flags().GetString("load")
		saveFile, _ := cmd.Flags().GetString("save")
		noTUI, _ := cmd.Flags().GetBool("no-tui")
		all, _ := cmd.Flags().GetBool("all")
		explain, _ := cmd.Flags().GetString("explain")

		var s *lifesearch.Search
		if loadFile != "" {
			data, err := os.ReadFile(loadFile)
			if err != nil {
				slog.Error("failed to read save file", "error", err)
				os.Exit(1)
			}
			s, err = lifesearch.LoadSearch(data)
			if err != nil {
				slog.Error("failed to load search", "error", err)
				os.Exit(1)
			}
		} else {
			s, err = lifesearch.NewSearch(cfg)
			if err != nil {
				slog.Error("failed to build search", "error", err)
				os.Exit(1)
			}
		}

		if noTUI {
			runSearchHeadless(s, all, saveFile, explain)
			return
		}

		engine := lifesearch.NewSearchView(s, 0, defaultPlayerConfig())
		if err := ui.RunModel("Pattern Search", engine, lang, refreshInterval); err != nil {
			slog.Error("failed to run search TUI", "error", err)
			os.Exit(1)
		}
	},
}

func runSearchHeadless(s *lifesearch.Search, all bool, saveFile, explain string) {
	status := s.Step()
	for {
		if saveFile != "" {
			data, err := s.SaveYAML()
			if err != nil {
				slog.Error("failed to save search", "error", err)
			} else if err := os.WriteFile(saveFile, data, 0o644); err != nil {
				slog.Error("failed to write save file", "error", err)
			}
		}

		switch status {
		case lifesearch.StatusFound:
			fmt.Println(s.World.Display(0))
			if !all {
				return
			}
			status = s.Resume()
		case lifesearch.StatusExhausted:
			fmt.Println("Exhausted: no pattern found")
			if explain != "" {
				printExplain(s, explain)
			}
			return
		default:
			status = s.Step()
		}
	}
}

func printExplain(s *lifesearch.Search, coord string) {
	parts := strings.Split(coord, ",")
	if len(parts) != 3 {
		slog.Error("--explain expects x,y,t", "got", coord)
		return
	}
	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	t, errT := strconv.Atoi(parts[2])
	if errX != nil || errY != nil || errT != nil {
		slog.Error("--explain expects integer x,y,t", "got", coord)
		return
	}
	fmt.Println(s.Explain(x, y, t))
}

func searchConfigFromArgs(cmd *cobra.Command, args []string) (lifesearch.Config, error) {
	dims := make([]int, 5)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return lifesearch.Config{}, fmt.Errorf("argument %d (%q) must be an integer: %w", i+1, a, err)
		}
		dims[i] = n
	}

	transformStr, _ := cmd.Flags().GetString("transform")
	symmetryStr, _ := cmd.Flags().GetString("symmetry")
	rule, _ := cmd.Flags().GetString("rule")
	orderStr, _ := cmd.Flags().GetString("order")
	chooseStr, _ := cmd.Flags().GetString("choose")
	maxCells, _ := cmd.Flags().GetInt("max")
	front, _ := cmd.Flags().GetBool("front")
	reduce, _ := cmd.Flags().GetBool("reduce")

	transform, err := lifesearch.ParseTransform(transformStr)
	if err != nil {
		return lifesearch.Config{}, err
	}
	symmetry, err := lifesearch.ParseSymmetry(symmetryStr)
	if err != nil {
		return lifesearch.Config{}, err
	}
	order, err := lifesearch.ParseSearchOrder(orderStr)
	if err != nil {
		return lifesearch.Config{}, err
	}
	choose, err := lifesearch.ParseNewState(chooseMapping(chooseStr))
	if err != nil {
		return lifesearch.Config{}, err
	}

	var maxPtr *int
	if maxCells > 0 {
		maxPtr = &maxCells
	}

	return lifesearch.Config{
		Width: dims[0], Height: dims[1], Period: dims[2], DX: dims[3], DY: dims[4],
		Transform: transform, Symmetry: symmetry, RuleString: rule,
		SearchOrder: order, NewState: choose, MaxCellCount: maxPtr,
		NonEmptyFront: front, ReduceMax: reduce,
	}, nil
}

// chooseMapping translates the CLI's Dead|Alive|Random spelling to the
// ChooseDead|ChooseAlive|Random spelling ParseNewState understands.
func chooseMapping(s string) string {
	switch s {
	case "Dead":
		return "ChooseDead"
	case "Alive", "":
		return "ChooseAlive"
	default:
		return s
	}
}

func defaultPlayerConfig() lifesearch.PlayerConfig {
	return lifesearch.DefaultPlayerConfig()
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("transform", "t", "Id", "Id|R90|R180|R270|F|F-|F\\|F/")
	searchCmd.Flags().StringP("symmetry", "s", "C1", "C1|C2|C4|D2-|D2|D2\\|D2/|D4+|D4x|D8")
	searchCmd.Flags().StringP("rule", "r", "B3/S23", "rule string")
	searchCmd.Flags().StringP("order", "o", "Automatic", "RowFirst|ColumnFirst|Automatic")
	searchCmd.Flags().StringP("choose", "c", "Alive", "Dead|Alive|Random")
	searchCmd.Flags().IntP("max", "m", 0, "max live-cell count at generation 0 (0 = unset)")
	searchCmd.Flags().BoolP("front", "f", false, "enforce a non-empty front")
	searchCmd.Flags().Bool("reduce", false, "keep searching for smaller patterns after the first find")
	searchCmd.Flags().BoolP("all", "a", false, "find every solution, not just the first")
	searchCmd.Flags().BoolP("no-tui", "n", false, "print results instead of launching the TUI")
	searchCmd.Flags().String("save", "", "write a save file after each search step (with --no-tui)")
	searchCmd.Flags().String("load", "", "resume from a save file")
	searchCmd.Flags().String("explain", "", `after Exhausted, print the state and reason of coordinate "x,y,t" (with --no-tui)`)
}
