package loxlang

// TokenTable is the result of one scan pass. Types, Lines and Columns are
// parallel to Tokens.
type TokenTable struct {
	Source  *Source
	Tokens  []Token
	Types   []TokenType
	Lines   []int
	Columns []int
	Errors  Errors
}

func (t *TokenTable) add(token Token) {
	t.Tokens = append(t.Tokens, token)
	t.Types = append(t.Types, token.Type)
	t.Lines = append(t.Lines, token.Line)
	t.Columns = append(t.Columns, token.Column)
}

func (t *TokenTable) Len() int {
	return len(t.Tokens)
}

func (t *TokenTable) HasErrors() bool {
	return len(t.Errors) > 0
}

// WellFormed reports whether the last token is the only EOF token.
func (t *TokenTable) WellFormed() bool {
	if len(t.Types) == 0 || t.Types[len(t.Types)-1] != EOF {
		return false
	}
	for _, typ := range t.Types[:len(t.Types)-1] {
		if typ == EOF {
			return false
		}
	}
	return true
}
