package bf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSourceIO           = errors.New("read source")
	ErrConfig             = errors.New("load config")
	ErrUnmatchedLoopEnd   = errors.New("unmatched ]")
	ErrUnmatchedLoopStart = errors.New("unmatched [")
	ErrInputExhausted     = errors.New("input exhausted")
	ErrPointerOutOfRange  = errors.New("tape bounds exceeded")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
)

// PosError attaches the position of the faulting instruction to an error.
type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return fmt.Sprintf("%s at offset %d", p.Err.Error(), p.Pos.Offset)
	}

	name := p.Pos.Source.Name
	if name == "" {
		name = "<source>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", p.Err.Error(), name, p.Pos.Line, p.Pos.Column)

	idx := p.Pos.Line - 1
	if idx < 0 || idx >= len(p.Pos.Source.Lines) {
		return sb.String()
	}
	line := p.Pos.Source.Lines[idx]
	sb.WriteString(line)
	sb.WriteString("\n")
	col := 1
	for _, r := range line {
		if col >= p.Pos.Column {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		col++
	}
	sb.WriteString("^\n")

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
