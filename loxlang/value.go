package loxlang

import "strconv"

// Value is the literal resolved for a token at scan time.
type Value interface {
	String() string
	isValue()
}

type Num float64

type Str string

type none struct{}

// None is carried by tokens without literal content.
var None Value = none{}

var (
	_ Value = Num(0)
	_ Value = Str("")
	_ Value = None
)

func (Num) isValue()  {}
func (Str) isValue()  {}
func (none) isValue() {}

func (n Num) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s Str) String() string {
	return string(s)
}

func (none) String() string {
	return "nil"
}
