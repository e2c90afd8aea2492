package bf

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
)

const (
	DefaultTapeSize      = 32768
	DefaultYieldInterval = 4096
)

type Config struct {
	// TapeSize is the number of cells. Zero means DefaultTapeSize.
	TapeSize int
	EOF      EOFPolicy
	Input    io.Reader
	Output   io.Writer
	Logger   *slog.Logger
	// Trace logs every dispatched instruction at debug level.
	Trace bool
	// YieldInterval is the number of instructions between two InterruptYield.
	// Zero means DefaultYieldInterval, negative disables interrupts.
	YieldInterval int
}

type Engine struct {
	Program *Program
	Tape    []byte
	Pointer int
	Cursor  int
	Stack   []int
	Steps   uint64

	eof           EOFPolicy
	input         io.ByteReader
	output        io.Writer
	logger        *slog.Logger
	trace         bool
	yieldInterval uint64
	yieldedAt     uint64
	outBuf        [1]byte
}

func NewEngine(program *Program, config Config) *Engine {
	size := config.TapeSize
	if size <= 0 {
		size = DefaultTapeSize
	}

	var input io.ByteReader
	switch r := config.Input.(type) {
	case nil:
		input = strings.NewReader("")
	case io.ByteReader:
		input = r
	default:
		input = bufio.NewReader(r)
	}

	output := config.Output
	if output == nil {
		output = io.Discard
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var interval uint64
	switch {
	case config.YieldInterval == 0:
		interval = DefaultYieldInterval
	case config.YieldInterval > 0:
		interval = uint64(config.YieldInterval)
	}

	return &Engine{
		Program:       program,
		Tape:          make([]byte, size),
		eof:           config.EOF,
		input:         input,
		output:        output,
		logger:        logger,
		trace:         config.Trace,
		yieldInterval: interval,
	}
}

// Cell returns the value under the data pointer.
func (e *Engine) Cell() byte {
	return e.Tape[e.Pointer]
}

// Done reports whether the cursor has left the program.
func (e *Engine) Done() bool {
	return e.Cursor >= len(e.Program.Instructions)
}

func (e *Engine) fault(err error) error {
	if e.Cursor >= 0 && e.Cursor < len(e.Program.Positions) {
		return WithPos(err, e.Program.Positions[e.Cursor])
	}
	return err
}
