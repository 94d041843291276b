package cmd

import (
	"github.com/spf13/cobra"

	"github.com/intmat/intmat/pkg/sparse"
)

var (
	addCmd = &cobra.Command{
		Use:   "add A B",
		Short: "Add two matrix files",
		Long:  `Add two matrix files entry-wise and write the result.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return binOpCommand((*sparse.Matrix).Add)(args)
		},
	}
	outputFilename string
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&outputFilename, "output", "o", "-",
		"output file (- means stdout)")
}
