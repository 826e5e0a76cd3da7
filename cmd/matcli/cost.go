package main

import (
	"fmt"

	cost "MatSelect/internal/calc/cost"

	"github.com/spf13/cobra"
)

var (
	costLength float64
	costWidth  float64
	costHeight float64
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Compare member cost in steel and aluminium",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := cost.Compare(cost.Input{
			LengthM: costLength,
			WidthM:  costWidth,
			HeightM: costHeight,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Steel Estimated Cost = RM %.2f\n", res.SteelCostRM)
		fmt.Printf("Aluminium Estimated Cost = RM %.2f\n", res.AluminiumCostRM)
		fmt.Printf("Recommendation: %s (%s)\n", res.Winner, res.Reason)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(costCmd)

	costCmd.Flags().Float64Var(&costLength, "length", 6.0, "Length L (m)")
	costCmd.Flags().Float64Var(&costWidth, "width", 0.10, "Width b (m)")
	costCmd.Flags().Float64Var(&costHeight, "height", 0.20, "Height h (m)")
}
