package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emrekoc/gotrib/internal/nscp"
)

var (
	// Unfactored line loads (kN/m)
	factorDead       float64
	factorLive       float64
	factorRoof       float64
	factorWind       float64
	factorEarthquake float64
	factorRain       float64

	// Options
	factorShowAll    bool
	factorSimplified bool
)

var factorCmd = &cobra.Command{
	Use:   "factor",
	Short: "Calculate factored line load using NSCP load combinations",
	Long: `Calculate the factored distributed load (wu) based on NSCP 2015 load
combinations, starting from unfactored line loads per load type. Use this
on the per-beam totals produced by 'gotrib distribute'.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  gotrib factor --dead 5.2 --live 3.1

  # Show all combinations
  gotrib factor --dead 5.2 --live 3.1 --all`,
	Run: runFactor,
}

func init() {
	rootCmd.AddCommand(factorCmd)

	// Line load flags
	factorCmd.Flags().Float64VarP(&factorDead, "dead", "d", 0, "Line load due to dead load (kN/m)")
	factorCmd.Flags().Float64VarP(&factorLive, "live", "l", 0, "Line load due to live load (kN/m)")
	factorCmd.Flags().Float64VarP(&factorRoof, "roof", "r", 0, "Line load due to roof live load (kN/m)")
	factorCmd.Flags().Float64VarP(&factorWind, "wind", "w", 0, "Line load due to wind load (kN/m)")
	factorCmd.Flags().Float64VarP(&factorEarthquake, "earthquake", "e", 0, "Line load due to earthquake load (kN/m)")
	factorCmd.Flags().Float64VarP(&factorRain, "rain", "R", 0, "Line load due to rain load (kN/m)")

	// Options
	factorCmd.Flags().BoolVarP(&factorShowAll, "all", "a", false, "Show all load combination results")
	factorCmd.Flags().BoolVarP(&factorSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runFactor(cmd *cobra.Command, args []string) {
	loads := nscp.LineLoads{
		Dead:       factorDead,
		Live:       factorLive,
		Roof:       factorRoof,
		Wind:       factorWind,
		Earthquake: factorEarthquake,
		Rain:       factorRain,
	}

	if loads.IsZero() {
		fmt.Println("Error: Please provide at least one unfactored line load.")
		fmt.Println("Use 'gotrib factor --help' for usage information.")
		return
	}

	// Select which combinations to use
	combinations := nscp.LoadCombinations
	if factorSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NSCP 2015 FACTORED LINE LOAD CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Print input line loads
	fmt.Println("UNFACTORED LINE LOADS (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if loads.Dead != 0 {
		fmt.Fprintf(w, "  Dead Load (D):\t%.3f\n", loads.Dead)
	}
	if loads.Live != 0 {
		fmt.Fprintf(w, "  Live Load (L):\t%.3f\n", loads.Live)
	}
	if loads.Roof != 0 {
		fmt.Fprintf(w, "  Roof Live Load (Lr):\t%.3f\n", loads.Roof)
	}
	if loads.Wind != 0 {
		fmt.Fprintf(w, "  Wind Load (W):\t%.3f\n", loads.Wind)
	}
	if loads.Earthquake != 0 {
		fmt.Fprintf(w, "  Earthquake Load (E):\t%.3f\n", loads.Earthquake)
	}
	if loads.Rain != 0 {
		fmt.Fprintf(w, "  Rain Load (R):\t%.3f\n", loads.Rain)
	}
	w.Flush()
	fmt.Println()

	// Calculate governing load
	maxWu, governingCombo := nscp.CalculateGoverningLoad(loads, combinations)

	if factorShowAll {
		// Show all combinations
		fmt.Println("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\twu (kN/m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")

		for _, combo := range combinations {
			wu := combo.CalculateFactoredLoad(loads)
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.3f%s\n", combo.ID, combo.Description, wu, marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Print result
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED LINE LOAD (wu) = %.3f kN/m  \n", maxWu)
	fmt.Printf("  ╚═══════════════════════════════════════╝\n")
	fmt.Println()
}
