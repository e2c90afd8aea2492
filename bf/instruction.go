package bf

type Instruction uint8

const (
	Increment Instruction = iota + 1
	Decrement
	MoveRight
	MoveLeft
	Output
	Input
	LoopStart
	LoopEnd
)

var instructionChars = [...]byte{
	Increment: '+',
	Decrement: '-',
	MoveRight: '>',
	MoveLeft:  '<',
	Output:    '.',
	Input:     ',',
	LoopStart: '[',
	LoopEnd:   ']',
}

// ParseInstruction maps a source character to its instruction.
// ok is false for every character that is not an operator.
func ParseInstruction(r rune) (inst Instruction, ok bool) {
	switch r {
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '>':
		return MoveRight, true
	case '<':
		return MoveLeft, true
	case '.':
		return Output, true
	case ',':
		return Input, true
	case '[':
		return LoopStart, true
	case ']':
		return LoopEnd, true
	}
	return 0, false
}

func (i Instruction) String() string {
	if i == 0 || int(i) >= len(instructionChars) {
		return "?"
	}
	return string(instructionChars[i])
}
