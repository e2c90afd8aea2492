package bf

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Snapshot is the serialized machine state of an Engine.
// Only nonzero cells are recorded.
type Snapshot struct {
	Source   string `yaml:"source,omitempty"`
	TapeSize int    `yaml:"tape_size"`
	Pointer  int    `yaml:"pointer"`
	Cursor   int    `yaml:"cursor"`
	Steps    uint64 `yaml:"steps"`
	Stack    []int  `yaml:"stack,flow"`
	Cells    []Cell `yaml:"cells"`
}

type Cell struct {
	Index int  `yaml:"index"`
	Value byte `yaml:"value"`
}

func (e *Engine) Snapshot() *Snapshot {
	snapshot := &Snapshot{
		TapeSize: len(e.Tape),
		Pointer:  e.Pointer,
		Cursor:   e.Cursor,
		Steps:    e.Steps,
		Stack:    append([]int(nil), e.Stack...),
	}
	if e.Program.Source != nil {
		snapshot.Source = e.Program.Source.Name
	}
	for i, b := range e.Tape {
		if b != 0 {
			snapshot.Cells = append(snapshot.Cells, Cell{
				Index: i,
				Value: b,
			})
		}
	}
	return snapshot
}

// Suspend writes the machine state to w.
func (e *Engine) Suspend(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e.Snapshot()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}

// Restore replaces the machine state with one written by Suspend.
// The engine must hold the program the snapshot was taken from.
func (e *Engine) Restore(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var snapshot Snapshot
	if err := dec.Decode(&snapshot); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return e.Load(&snapshot)
}

func (e *Engine) Load(snapshot *Snapshot) error {
	if snapshot.TapeSize <= 0 {
		return fmt.Errorf("%w: tape size %d", ErrInvalidSnapshot, snapshot.TapeSize)
	}
	if snapshot.Pointer < 0 || snapshot.Pointer >= snapshot.TapeSize {
		return fmt.Errorf("%w: pointer %d out of tape", ErrInvalidSnapshot, snapshot.Pointer)
	}
	code := e.Program.Instructions
	if snapshot.Cursor < 0 || snapshot.Cursor > len(code) {
		return fmt.Errorf("%w: cursor %d out of program", ErrInvalidSnapshot, snapshot.Cursor)
	}
	for _, pos := range snapshot.Stack {
		if pos < 0 || pos >= len(code) || code[pos] != LoopStart {
			return fmt.Errorf("%w: stack entry %d is not a loop start", ErrInvalidSnapshot, pos)
		}
	}
	tape := make([]byte, snapshot.TapeSize)
	for _, cell := range snapshot.Cells {
		if cell.Index < 0 || cell.Index >= len(tape) {
			return fmt.Errorf("%w: cell %d out of tape", ErrInvalidSnapshot, cell.Index)
		}
		tape[cell.Index] = cell.Value
	}

	e.Tape = tape
	e.Pointer = snapshot.Pointer
	e.Cursor = snapshot.Cursor
	e.Steps = snapshot.Steps
	e.yieldedAt = snapshot.Steps
	e.Stack = append(e.Stack[:0], snapshot.Stack...)
	return nil
}
