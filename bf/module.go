package bf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}

type MakeEngine func(program *Program, input io.Reader, output io.Writer) (*Engine, error)

func (Module) MakeEngine(
	logger logs.Logger,
	tapeSize bfconfigs.TapeSize,
	eofMode bfconfigs.EOFMode,
	trace bfconfigs.Trace,
	yieldInterval bfconfigs.YieldInterval,
) MakeEngine {
	return func(program *Program, input io.Reader, output io.Writer) (*Engine, error) {
		eof, err := ParseEOFPolicy(string(eofMode))
		if err != nil {
			return nil, err
		}
		return NewEngine(program, Config{
			TapeSize:      int(tapeSize),
			EOF:           eof,
			Input:         input,
			Output:        output,
			Logger:        logger,
			Trace:         bool(trace),
			YieldInterval: int(yieldInterval),
		}), nil
	}
}

// RunFile loads the program at path and runs it once.
type RunFile func(ctx context.Context, path string, input io.Reader, output io.Writer) error

func (Module) RunFile(
	makeEngine MakeEngine,
	loader configs.Loader,
	newSpan logs.NewSpan,
	logger logs.Logger,
	dumpPath bfconfigs.DumpPath,
	tapOnFault bfconfigs.TapOnFault,
	tap debugs.Tap,
) RunFile {
	return func(ctx context.Context, path string, input io.Reader, output io.Writer) (err error) {
		ctx, _ = newSpan(ctx, "run "+path)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		if err := loader.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSourceIO, err)
		}
		program := Lex(NewSource(path, string(content)))
		logger.DebugContext(ctx, "program loaded",
			"path", path,
			"instructions", program.Len(),
		)

		engine, err := makeEngine(program, input, output)
		if err != nil {
			return err
		}

		if err := engine.Execute(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logger.InfoContext(ctx, "program cancelled", "steps", engine.Steps)
				return err
			}
			logger.WarnContext(ctx, "program faulted",
				"error", err,
				"cursor", engine.Cursor,
				"pointer", engine.Pointer,
				"steps", engine.Steps,
			)
			if dumpPath != "" {
				if dumpErr := writeDump(engine, string(dumpPath)); dumpErr != nil {
					logger.ErrorContext(ctx, "write dump", "error", dumpErr)
				} else {
					logger.InfoContext(ctx, "dump written", "path", dumpPath)
				}
			}
			if tapOnFault {
				tap(ctx, "fault", faultGlobals(engine, err))
			}
			return err
		}

		logger.DebugContext(ctx, "program finished", "steps", engine.Steps)
		return nil
	}
}

func writeDump(engine *Engine, path string) error {
	buf := new(bytes.Buffer)
	if err := engine.Suspend(buf); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func faultGlobals(engine *Engine, err error) map[string]any {
	globals := map[string]any{
		"error":   err,
		"pointer": engine.Pointer,
		"cursor":  engine.Cursor,
		"steps":   engine.Steps,
		"stack":   append([]int{}, engine.Stack...),
		"tape":    bytes.Clone(engine.Tape),
		"cell": func(i int) (int, error) {
			if i < 0 || i >= len(engine.Tape) {
				return 0, fmt.Errorf("cell %d: %w", i, ErrPointerOutOfRange)
			}
			return int(engine.Tape[i]), nil
		},
	}
	if !engine.Done() {
		globals["op"] = engine.Program.Instructions[engine.Cursor].String()
	}
	return globals
}
