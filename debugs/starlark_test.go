package debugs

import (
	"testing"

	"github.com/reusee/lox/loxlang"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"uint8", uint8(42), starlark.MakeUint(42)},
		{"float64", 3.5, starlark.Float(3.5)},
		{"[]int", []int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"token type", loxlang.BangEqual, starlark.String("BangEqual")},
		{"number literal", loxlang.Num(1.5), starlark.String("1.5")},
		{"no literal", loxlang.None, starlark.String("nil")},
		{"operator", loxlang.OpLessEqual, starlark.String("<=")},
		{"token", loxlang.Token{
			Type:    loxlang.Number,
			Lexeme:  "12",
			Literal: loxlang.Num(12),
			Line:    3,
			Column:  4,
		}, func() starlark.Value {
			d := starlark.NewDict(5)
			d.SetKey(starlark.String("Type"), starlark.String("Number"))
			d.SetKey(starlark.String("Lexeme"), starlark.String("12"))
			d.SetKey(starlark.String("Literal"), starlark.String("12"))
			d.SetKey(starlark.String("Line"), starlark.MakeInt(3))
			d.SetKey(starlark.String("Column"), starlark.MakeInt(4))
			return d
		}()},
		{"expr", &loxlang.Unary{
			Sign:    loxlang.SignBang,
			Operand: &loxlang.Literal{Lit: loxlang.Lit{Kind: loxlang.LitTrue}},
		}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("Sign"), starlark.String("!"))
			kind := starlark.NewDict(2)
			kind.SetKey(starlark.String("Kind"), starlark.String("True"))
			kind.SetKey(starlark.String("Value"), starlark.None)
			lit := starlark.NewDict(1)
			lit.SetKey(starlark.String("Lit"), kind)
			d.SetKey(starlark.String("Operand"), lit)
			return d
		}()},
		{"nil pointer", (*loxlang.Binary)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
