package loxlang

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

// Pos is a 1-based line and a 0-based column counted in runes.
// A negative column means the column is not meaningful.
type Pos struct {
	Source *Source
	Line   int
	Column int
}
