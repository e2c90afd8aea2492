package logs

import (
	"io"
	"os"
)

// Writer receives the terminal log output. Program output goes to stdout, so logs stay on stderr.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
