package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get FILE ROW COL",
	Short: "Print one matrix element",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		row, col, err := parseIndices(args[1], args[2])
		if err != nil {
			return err
		}
		value, err := m.Get(row, col)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set FILE ROW COL VALUE",
	Short: "Set one matrix element and rewrite the file",
	Long: `Set one matrix element and rewrite the file.
A VALUE of 0 removes the entry.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		row, col, err := parseIndices(args[1], args[2])
		if err != nil {
			return err
		}
		value, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid value %q", args[3])
		}
		if err := m.Set(row, col, value); err != nil {
			return err
		}
		return writeMatrix(m, args[0])
	},
}

func parseIndices(rowArg, colArg string) (row, col int, err error) {
	row, err = strconv.Atoi(rowArg)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid row %q", rowArg)
	}
	col, err = strconv.Atoi(colArg)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid column %q", colArg)
	}
	return row, col, nil
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
}
