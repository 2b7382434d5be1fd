package cmd

import (
	"fmt"
	"os"

	"github.com/emrekoc/gotrib/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotrib",
	Short: "Tributary Load Distribution Tool",
	Long: `gotrib - Go Tributary Load Distributor

A CLI tool that distributes regional (area) loads onto parallel beams
using the tributary width rule: each beam carries the load within half
the distance to its neighbors, and edge beams carry everything out to
the boundary of the loaded region.

This tool helps structural engineers:
  - Convert slab area loads into distributed line loads per beam
  - Inspect tributary zones and per-load contributions
  - Render framing plan diagrams (terminal or image file)
  - Compute factored design loads using NSCP 2015 load combinations`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotrib v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Tributary Load Distributor                           ║")
		fmt.Printf("  ║   %s ©  %s                                           ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Distributes regional loads onto parallel beams along the")
		fmt.Println("  transverse axis using the tributary width rule.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Per-beam distributed loads with per-load contributions")
		fmt.Println("    • TOML and YAML project files")
		fmt.Println("    • ASCII plan view and image export (.png/.svg/.pdf)")
		fmt.Println("    • Factored line loads per NSCP 2015 load combinations")
		fmt.Println()
		fmt.Println("  Use 'gotrib --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
