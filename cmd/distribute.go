package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emrekoc/gotrib/internal/diagram"
	"github.com/emrekoc/gotrib/internal/nscp"
	"github.com/emrekoc/gotrib/internal/project"
	"github.com/emrekoc/gotrib/internal/report"
	"github.com/emrekoc/gotrib/internal/trib"
)

var (
	// Inputs
	distProject string

	// Output options
	distASCII      bool
	distProfile    bool
	distDiagram    string
	distFactored   bool
	distSimplified bool
	distShowAll    bool
	distVerbose    bool
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "Distribute regional loads onto beams",
	Long: `Distribute the regional loads of a framing plan onto its beams using
the tributary width rule and print the per-beam distributed loads.

The plan is described in a TOML or YAML project file:

  name = "Slab panel S-1"

  [[loads]]
  name = "F_0_L"
  intensity = -0.72   # kN/m²
  y_start = 0.0       # m
  y_end = 0.2
  length = 2.5
  kind = "dead"
  color = "red"

  [[beams]]
  name = "P_L0_S0"
  position = 0.0      # m
  length = 2.5

Examples:
  # Distribute and print the report
  gotrib distribute --project plan.toml

  # Include the ASCII plan view and export an image
  gotrib distribute -p plan.yaml --ascii --diagram plan.png

  # Governing factored line loads per NSCP 2015
  gotrib distribute -p plan.toml --factored --all`,
	RunE: runDistribute,
}

func init() {
	rootCmd.AddCommand(distributeCmd)

	distributeCmd.Flags().StringVarP(&distProject, "project", "p", "", "Project file (.toml, .yaml or .yml) [required]")

	distributeCmd.Flags().BoolVar(&distASCII, "ascii", false, "Print an ASCII plan view of loads, beams and zones")
	distributeCmd.Flags().BoolVar(&distProfile, "profile", false, "Print the load intensity profile along the axis")
	distributeCmd.Flags().StringVar(&distDiagram, "diagram", "", "Export the framing plan to an image file (.png/.svg/.pdf)")
	distributeCmd.Flags().BoolVarP(&distFactored, "factored", "f", false, "Report governing factored line loads (NSCP 2015)")
	distributeCmd.Flags().BoolVarP(&distSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	distributeCmd.Flags().BoolVarP(&distShowAll, "all", "a", false, "Show all load combination results (with --factored)")
	distributeCmd.Flags().BoolVarP(&distVerbose, "verbose", "v", false, "Enable debug logging")

	distributeCmd.MarkFlagRequired("project")
}

func runDistribute(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr, distVerbose)

	file, err := project.Read(distProject)
	if err != nil {
		return err
	}
	loads, beams := file.Model()
	logger.Debug("project loaded", "name", file.Name, "loads", len(loads), "beams", len(beams))

	res, err := trib.Distribute(loads, beams)
	if err != nil {
		return err
	}
	logger.Debug("distribution complete",
		"points", len(res.Points), "segments", len(res.Segments),
		"system", fmt.Sprintf("[%.3f, %.3f]", res.Lower, res.Upper))

	fmt.Print(report.Console(res, loads))

	if distASCII {
		fmt.Print(diagram.DrawASCIIPlan(res, loads))
	}
	if distProfile {
		fmt.Print(diagram.DrawIntensityProfile(res, 80))
	}
	if distFactored {
		printFactored(res, loads)
	}

	if distDiagram != "" {
		if err := diagram.ExportPlanDiagram(res, loads, distDiagram); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		logger.Info("diagram exported", "file", distDiagram)
	}

	return nil
}

// printFactored prints the governing factored line load per beam.
func printFactored(res *trib.Result, loads []trib.RegionalLoad) {
	combinations := nscp.LoadCombinations
	if distSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	fmt.Println("FACTORED LINE LOADS (NSCP 2015 Section 203.3):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, br := range res.Beams {
		lineLoads := nscp.LineLoadsFor(br, loads)
		wu, governing := nscp.CalculateGoverningLoad(lineLoads, combinations)

		fmt.Printf("  Beam: %s\n", br.Beam.Name)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if distShowAll {
			for _, combo := range combinations {
				marker := ""
				if combo.ID == governing.ID {
					marker = " ← GOVERNS"
				}
				fmt.Fprintf(w, "    %s\t%s\t%.3f kN/m%s\n", combo.ID, combo.Description, combo.CalculateFactoredLoad(lineLoads), marker)
			}
		} else {
			fmt.Fprintf(w, "    Governing: %s (%s)\n", governing.ID, governing.Description)
		}
		fmt.Fprintf(w, "    wu = %.3f kN/m\n", wu)
		w.Flush()
		fmt.Println()
	}
}
