package bf

import "testing"

func TestLexFiltersAndKeepsOrder(t *testing.T) {
	program := LexString("a+b-c>d<e.f,g[h]i")
	if str := program.String(); str != "+-><.,[]" {
		t.Fatalf("got %q", str)
	}
	want := []Instruction{
		Increment, Decrement, MoveRight, MoveLeft,
		Output, Input, LoopStart, LoopEnd,
	}
	if len(program.Instructions) != len(want) {
		t.Fatalf("got %v", program.Instructions)
	}
	for i, inst := range want {
		if program.Instructions[i] != inst {
			t.Fatalf("%d: got %v", i, program.Instructions[i])
		}
	}
	if len(program.Positions) != len(program.Instructions) {
		t.Fatalf("got %d positions", len(program.Positions))
	}
}

func TestLexNoOperators(t *testing.T) {
	for _, src := range []string{"", "hello", "hello world\n\t# comment"} {
		program := LexString(src)
		if program.Len() != 0 {
			t.Fatalf("%q: got %q", src, program.String())
		}
	}
}

func TestLexPositions(t *testing.T) {
	program := Lex(NewSource("pos.bf", "+\n -\né>"))
	if program.Len() != 3 {
		t.Fatalf("got %q", program.String())
	}
	checks := []struct {
		offset, line, column int
	}{
		{0, 1, 1},
		{3, 2, 2},
		{7, 3, 2},
	}
	for i, check := range checks {
		pos := program.Positions[i]
		if pos.Offset != check.offset || pos.Line != check.line || pos.Column != check.column {
			t.Fatalf("%d: got %+v", i, pos)
		}
		if pos.Source.Name != "pos.bf" {
			t.Fatalf("got %v", pos.Source.Name)
		}
	}
}

func TestTokensStopEarly(t *testing.T) {
	n := 0
	for _, inst := range Tokens(NewSource("", "+-+-+-")) {
		if inst != Increment && inst != Decrement {
			t.Fatalf("got %v", inst)
		}
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("got %v", n)
	}
}

func TestParseInstruction(t *testing.T) {
	for _, r := range "+-><.,[]" {
		inst, ok := ParseInstruction(r)
		if !ok {
			t.Fatalf("%c not parsed", r)
		}
		if inst.String() != string(r) {
			t.Fatalf("got %v", inst)
		}
	}
	if _, ok := ParseInstruction('x'); ok {
		t.Fatal("x is not an operator")
	}
	if s := Instruction(0).String(); s != "?" {
		t.Fatalf("got %q", s)
	}
}
