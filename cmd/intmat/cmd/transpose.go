package cmd

import (
	"github.com/spf13/cobra"
)

var transposeCmd = &cobra.Command{
	Use:   "transpose A",
	Short: "Transpose a matrix file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		return writeMatrix(m.Transpose(), outputFilename)
	},
}

func init() {
	rootCmd.AddCommand(transposeCmd)
	transposeCmd.Flags().StringVarP(&outputFilename, "output", "o", "-",
		"output file (- means stdout)")
}
