package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matcli",
	Short: "Steel vs aluminium material selection tool",
	Long: `matcli - steel vs aluminium structural material selection tool

Compares the two candidate materials for a simply supported beam under
a uniformly distributed load and recommends the better one. Also covers
plain weight and cost comparisons and the material catalog.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
