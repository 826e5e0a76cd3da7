package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"MatSelect/internal/material"

	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Print the material catalog",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Name\tTensile(MPa)\tYield(MPa)\tE(GPa)\tDensity(kg/m3)\tCost(RM/kg)\tCorrosion(/5)")
		for _, m := range material.All() {
			fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%.2f\t%d\n",
				m.Name, m.TensileStrengthMPa, m.YieldStrengthMPa, m.ElasticModulusGPa,
				m.DensityKgM3, m.CostPerKg, m.CorrosionRating)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
