package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	beam "MatSelect/internal/calc/beam"
	recommend "MatSelect/internal/calc/recommend"

	"github.com/spf13/cobra"
)

var (
	beamSpan   float64
	beamUDL    float64
	beamWidth  float64
	beamHeight float64
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Compare steel and aluminium for a simply supported beam",
	Long: `Run the full beam adequacy check (bending stress, factor of safety,
L/360 serviceability, mass and cost) for both materials and print the
recommendation.

Example:
  matcli beam --span 6 --udl 12 --width 0.10 --height 0.20`,
	RunE: runBeamCompare,
}

func init() {
	rootCmd.AddCommand(beamCmd)

	beamCmd.Flags().Float64Var(&beamSpan, "span", 6.0, "Beam span L (m)")
	beamCmd.Flags().Float64Var(&beamUDL, "udl", 12.0, "UDL load w (kN/m)")
	beamCmd.Flags().Float64Var(&beamWidth, "width", 0.10, "Beam width b (m)")
	beamCmd.Flags().Float64Var(&beamHeight, "height", 0.20, "Beam height h (m)")
}

func runBeamCompare(cmd *cobra.Command, args []string) error {
	cmp, err := recommend.Compare(beam.Input{
		SpanM:   beamSpan,
		UDLKNM:  beamUDL,
		WidthM:  beamWidth,
		HeightM: beamHeight,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("BEAM COMPARISON (simply supported, UDL)")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Metric\tSteel\tAluminium")
	for _, row := range cmp.Table {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Metric, row.Steel, row.Aluminium)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("Recommendation: %s (%s)\n", cmp.Recommendation.Winner, cmp.Recommendation.Reason)
	return nil
}
