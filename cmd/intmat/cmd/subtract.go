package cmd

import (
	"github.com/spf13/cobra"

	"github.com/intmat/intmat/pkg/sparse"
)

var subtractCmd = &cobra.Command{
	Use:   "subtract A B",
	Short: "Subtract matrix file B from A",
	Long:  `Subtract matrix file B from A entry-wise and write the result.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return binOpCommand((*sparse.Matrix).Sub)(args)
	},
}

func init() {
	rootCmd.AddCommand(subtractCmd)
	subtractCmd.Flags().StringVarP(&outputFilename, "output", "o", "-",
		"output file (- means stdout)")
}
