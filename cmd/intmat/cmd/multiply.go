package cmd

import (
	"github.com/spf13/cobra"

	"github.com/intmat/intmat/pkg/sparse"
)

var multiplyCmd = &cobra.Command{
	Use:   "multiply A B",
	Short: "Multiply two matrix files",
	Long: `Multiply two matrix files (A's column count must equal B's row
count) and write the product.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return binOpCommand((*sparse.Matrix).Mul)(args)
	},
}

func init() {
	rootCmd.AddCommand(multiplyCmd)
	multiplyCmd.Flags().StringVarP(&outputFilename, "output", "o", "-",
		"output file (- means stdout)")
}
