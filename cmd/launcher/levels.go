package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-launcher/internal/games/launch/levels"
	"github.com/vovakirdan/tile-launcher/internal/games/launch/sim"
)

var flagLevelsListDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List level files",
	Long: `List the levels the game will load, in play order.

Without --dir the built-in level pack is listed.

Examples:
  launcher levels
  launcher levels --dir ./my-levels
  launcher levels validate --dir ./my-levels
  launcher levels show 03-springs`,
	Run: runLevels,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every level file and report the broken ones",
	Run:   runLevelsValidate,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the tile grid of one level",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsShow,
}

func init() {
	levelsCmd.PersistentFlags().StringVar(&flagLevelsListDir, "dir", "", "Directory of level files (default: built-in pack)")
	levelsCmd.AddCommand(levelsValidateCmd)
	levelsCmd.AddCommand(levelsShowCmd)
}

func levelsLoader() *levels.Loader {
	if flagLevelsListDir == "" {
		return levels.Default()
	}
	return levels.NewLoader(flagLevelsListDir)
}

func countTiles(l levels.Level) int {
	n := 0
	for _, row := range l.Tiles {
		for _, t := range row {
			if t != nil {
				n++
			}
		}
	}
	return n
}

func runLevels(_ *cobra.Command, _ []string) {
	loader := levelsLoader()
	lvls, bad, err := loader.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Printf("No levels found in %s.\n", loader.Root)
	} else {
		maxIDLen := 2
		for _, l := range lvls {
			maxIDLen = max(maxIDLen, len(l.ID))
		}

		fmt.Printf("Levels in %s:\n\n", loader.Root)
		fmt.Printf("  %-3s  %-*s  %-20s  %5s  %s\n", "#", maxIDLen, "ID", "Name", "Tiles", "File")
		fmt.Printf("  %-3s  %-*s  %-20s  %5s  %s\n", "-", maxIDLen, "--", "----", "-----", "----")
		for i, l := range lvls {
			fmt.Printf("  %-3d  %-*s  %-20s  %5d  %s\n", i+1, maxIDLen, l.ID, l.Name, countTiles(l), l.FilePath)
		}
	}

	if len(bad) > 0 {
		fmt.Println()
		fmt.Printf("%d file(s) skipped, run 'launcher levels validate' for details.\n", len(bad))
	}
}

func runLevelsValidate(_ *cobra.Command, _ []string) {
	loader := levelsLoader()
	lvls, bad, err := loader.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, fe := range bad {
		fmt.Fprintf(os.Stderr, "FAIL  %v\n", fe)
	}
	fmt.Printf("%d valid, %d invalid\n", len(lvls), len(bad))

	if len(bad) > 0 {
		os.Exit(1)
	}
}

func runLevelsShow(_ *cobra.Command, args []string) {
	lvl, err := levelsLoader().LoadByID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %s (%s)\n", lvl.ID, lvl.Name, lvl.FilePath)
	if len(lvl.Flags) > 0 {
		fmt.Printf("flags: %s\n", strings.Join(lvl.Flags, ", "))
	}
	fmt.Println()

	for _, row := range lvl.Tiles {
		var b strings.Builder
		for _, spec := range row {
			fmt.Fprintf(&b, "%-10s", cellLabel(spec))
		}
		fmt.Println(strings.TrimRight(b.String(), " "))
	}
}

// cellLabel formats a cell the way level files write it.
func cellLabel(spec *sim.TileSpec) string {
	if spec == nil {
		return "."
	}
	if spec.Value == 0 {
		return spec.Type.String()
	}
	return fmt.Sprintf("%s#%d", spec.Type, spec.Value)
}
