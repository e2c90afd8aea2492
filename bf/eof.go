package bf

import "fmt"

// EOFPolicy decides what Input does when no byte is left.
type EOFPolicy uint8

const (
	// EOFZero stores 0 in the current cell.
	EOFZero EOFPolicy = iota
	// EOFKeep leaves the current cell unchanged.
	EOFKeep
	// EOFMax stores 255.
	EOFMax
	// EOFError stops the program with ErrInputExhausted.
	EOFError
)

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch str {
	case "", "zero":
		return EOFZero, nil
	case "keep":
		return EOFKeep, nil
	case "max":
		return EOFMax, nil
	case "error":
		return EOFError, nil
	}
	return 0, fmt.Errorf("unknown eof policy: %q", str)
}

func (p EOFPolicy) String() string {
	switch p {
	case EOFZero:
		return "zero"
	case EOFKeep:
		return "keep"
	case EOFMax:
		return "max"
	case EOFError:
		return "error"
	}
	return fmt.Sprintf("EOFPolicy(%d)", uint8(p))
}
