package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Show matrix dimensions and nonzero count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		rows, cols := m.Dims()
		fmt.Printf("rows=%d cols=%d nnz=%d\n", rows, cols, m.NNZ())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
