package bf

import "iter"

// Tokens yields every operator in src in source order, with its position.
// Other characters are skipped.
func Tokens(src *Source) iter.Seq2[Pos, Instruction] {
	return func(yield func(Pos, Instruction) bool) {
		line, column := 1, 1
		for offset, r := range src.Content {
			if inst, ok := ParseInstruction(r); ok {
				pos := Pos{
					Source: src,
					Offset: offset,
					Line:   line,
					Column: column,
				}
				if !yield(pos, inst) {
					return
				}
			}
			if r == '\n' {
				line++
				column = 1
			} else {
				column++
			}
		}
	}
}

type Program struct {
	Source       *Source
	Instructions []Instruction
	Positions    []Pos
}

func Lex(src *Source) *Program {
	program := &Program{
		Source: src,
	}
	for pos, inst := range Tokens(src) {
		program.Instructions = append(program.Instructions, inst)
		program.Positions = append(program.Positions, pos)
	}
	return program
}

// LexString lexes content under an empty source name.
func LexString(content string) *Program {
	return Lex(NewSource("", content))
}

func (p *Program) Len() int {
	return len(p.Instructions)
}

func (p *Program) String() string {
	buf := make([]byte, 0, len(p.Instructions))
	for _, inst := range p.Instructions {
		buf = append(buf, instructionChars[inst])
	}
	return string(buf)
}
