package cmd

import (
	"os"

	"github.com/pkg/errors"

	"github.com/intmat/intmat/pkg/sparse"
	"github.com/intmat/intmat/pkg/util"
)

func loadMatrix(filename string) (*sparse.Matrix, error) {
	logger.Trace().Str("filename", filename).Msg("loading matrix")
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer util.Close(f)
	m, err := sparse.ParseMatrix(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	return m, nil
}

// writeMatrix writes m to the given file ("-" means stdout),
// creating the output directory if needed.
func writeMatrix(m *sparse.Matrix, filename string) error {
	w, err := util.OpenOutputFile(filename)
	if err != nil {
		return err
	}
	defer util.Close(w)
	if err := m.WriteInto(w); err != nil {
		return errors.Wrapf(err, "cannot write %s", filename)
	}
	return nil
}

// binOpCommand builds the shared body of the add/subtract/multiply
// commands: load both operand files, apply op, write the result.
func binOpCommand(
	op func(a, b *sparse.Matrix) (*sparse.Matrix, error),
) func(args []string) error {
	return func(args []string) error {
		tl := util.NewWallTimeLogger(logger)
		a, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		b, err := loadMatrix(args[1])
		if err != nil {
			return err
		}
		tl.Log("load")
		result, err := op(a, b)
		if err != nil {
			return err
		}
		tl.Log("compute")
		if err := writeMatrix(result, outputFilename); err != nil {
			return err
		}
		tl.Log("write")
		logger.Debug().
			Int("nnz", result.NNZ()).
			Str("output", outputFilename).
			Msg("done")
		return nil
	}
}
