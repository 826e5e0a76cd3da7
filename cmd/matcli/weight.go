package main

import (
	"fmt"

	weight "MatSelect/internal/calc/weight"

	"github.com/spf13/cobra"
)

var (
	weightLength float64
	weightWidth  float64
	weightHeight float64
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Compare member mass in steel and aluminium",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := weight.Compare(weight.Input{
			LengthM: weightLength,
			WidthM:  weightWidth,
			HeightM: weightHeight,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Steel Mass = %.2f kg\n", res.SteelMassKg)
		fmt.Printf("Aluminium Mass = %.2f kg\n", res.AluminiumMassKg)
		fmt.Printf("Recommendation: %s (%s)\n", res.Winner, res.Reason)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)

	weightCmd.Flags().Float64Var(&weightLength, "length", 6.0, "Length L (m)")
	weightCmd.Flags().Float64Var(&weightWidth, "width", 0.10, "Width b (m)")
	weightCmd.Flags().Float64Var(&weightHeight, "height", 0.20, "Height h (m)")
}
