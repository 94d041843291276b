package util

import (
	"io"
	"os"
	"path/filepath"
)

type DummyWriteCloser struct{}

func (wc DummyWriteCloser) Write(p []byte) (int, error) { return len(p), nil }
func (wc DummyWriteCloser) Close() error                { return nil }

type WriteNoCloser struct{ io.Writer }

func (w WriteNoCloser) Close() error { return nil }

// OpenOutputFile opens and returns a file for output.
// If filename is "", it returns a dummy WriteCloser that does nothing.
// If filename is "-"/"!", it returns a stdout/stderr; its Close() does nothing.
func OpenOutputFile(filename string) (io.WriteCloser, error) {
	switch filename {
	case "":
		return DummyWriteCloser{}, nil
	case "-":
		return WriteNoCloser{os.Stdout}, nil
	case "!":
		return WriteNoCloser{os.Stderr}, nil
	default:
		if err := EnsureDir(filepath.Dir(filename)); err != nil {
			return nil, err
		}
		return os.Create(filename)
	}
}

// EnsureDir creates the given directory (and missing parents) if needed.
// An empty or "." directory is taken to mean the current directory
// and needs no creation.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Close tries to close a closer, ignoring any error.
// For use with defer.
func Close(c io.Closer) { _ = c.Close() }
