package bf

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Pos locates an instruction in its source.
// Offset is a byte offset, Line and Column are 1-based and Column counts runes.
type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}
