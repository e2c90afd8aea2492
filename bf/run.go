package bf

import (
	"context"
	"fmt"
	"io"
)

// Run interprets the program from the current cursor.
// Faults are yielded once and end the run, leaving the cursor on the faulting instruction.
func (e *Engine) Run(yield func(*Interrupt, error) bool) {
	code := e.Program.Instructions
	for e.Cursor < len(code) {

		if e.yieldInterval > 0 && e.Steps-e.yieldedAt >= e.yieldInterval {
			e.yieldedAt = e.Steps
			if !yield(InterruptYield, nil) {
				return
			}
		}

		inst := code[e.Cursor]
		if e.trace {
			e.logger.Debug("step",
				"cursor", e.Cursor,
				"op", inst,
				"pointer", e.Pointer,
				"cell", e.Tape[e.Pointer],
			)
		}

		switch inst {

		case Increment:
			e.Tape[e.Pointer]++

		case Decrement:
			e.Tape[e.Pointer]--

		case MoveRight:
			if e.Pointer+1 >= len(e.Tape) {
				yield(nil, e.fault(fmt.Errorf("%w: move right from cell %d", ErrPointerOutOfRange, e.Pointer)))
				return
			}
			e.Pointer++

		case MoveLeft:
			if e.Pointer == 0 {
				yield(nil, e.fault(fmt.Errorf("%w: move left from cell 0", ErrPointerOutOfRange)))
				return
			}
			e.Pointer--

		case Output:
			e.outBuf[0] = e.Tape[e.Pointer]
			if _, err := e.output.Write(e.outBuf[:]); err != nil {
				yield(nil, e.fault(fmt.Errorf("output: %w", err)))
				return
			}

		case Input:
			if err := e.read(); err != nil {
				yield(nil, e.fault(err))
				return
			}

		case LoopStart:
			if e.Tape[e.Pointer] != 0 {
				e.Stack = append(e.Stack, e.Cursor)
			} else {
				target, ok := e.matchForward(e.Cursor)
				if !ok {
					yield(nil, e.fault(ErrUnmatchedLoopStart))
					return
				}
				e.Cursor = target
			}

		case LoopEnd:
			n := len(e.Stack)
			if n == 0 {
				yield(nil, e.fault(ErrUnmatchedLoopEnd))
				return
			}
			// the advance below lands on the LoopStart, which re-checks the cell
			e.Cursor = e.Stack[n-1] - 1
			e.Stack = e.Stack[:n-1]

		default:
			yield(nil, e.fault(fmt.Errorf("bad instruction: %d", inst)))
			return
		}

		e.Cursor++
		e.Steps++
	}
}

// matchForward returns the position of the LoopEnd closing the LoopStart at start.
func (e *Engine) matchForward(start int) (int, bool) {
	code := e.Program.Instructions
	depth := 0
	for i := start + 1; i < len(code); i++ {
		switch code[i] {
		case LoopStart:
			depth++
		case LoopEnd:
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}

func (e *Engine) read() error {
	b, err := e.input.ReadByte()
	if err == nil {
		e.Tape[e.Pointer] = b
		return nil
	}
	if err != io.EOF {
		return fmt.Errorf("input: %w", err)
	}
	switch e.eof {
	case EOFZero:
		e.Tape[e.Pointer] = 0
	case EOFKeep:
	case EOFMax:
		e.Tape[e.Pointer] = 0xff
	case EOFError:
		return ErrInputExhausted
	}
	return nil
}

// Execute runs the program to completion, a fault, or the end of ctx.
func (e *Engine) Execute(ctx context.Context) error {
	for interrupt, err := range e.Run {
		if err != nil {
			return err
		}
		if interrupt != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}
