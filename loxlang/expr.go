package loxlang

import "fmt"

// Expr is one of *Literal, *Unary, *Binary or *Grouping. Nodes are never
// mutated after construction, so subtrees may be shared freely.
type Expr interface {
	isExpr()
}

type Literal struct {
	Lit Lit
}

type Unary struct {
	Sign    Sign
	Operand Expr
}

type Binary struct {
	Left  Expr
	Op    Ops
	Right Expr
}

type Grouping struct {
	Inner Expr
}

var (
	_ Expr = new(Literal)
	_ Expr = new(Unary)
	_ Expr = new(Binary)
	_ Expr = new(Grouping)
)

func (*Literal) isExpr()  {}
func (*Unary) isExpr()    {}
func (*Binary) isExpr()   {}
func (*Grouping) isExpr() {}

type LitKind uint8

const (
	LitTrue LitKind = iota
	LitFalse
	LitNil
	LitNum
	LitStr
)

func (k LitKind) String() string {
	switch k {
	case LitTrue:
		return "True"
	case LitFalse:
		return "False"
	case LitNil:
		return "Nil"
	case LitNum:
		return "Num"
	case LitStr:
		return "Str"
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// Lit is a literal leaf. Value is set for LitNum and LitStr only.
type Lit struct {
	Kind  LitKind
	Value Value
}

func (l Lit) String() string {
	switch l.Kind {
	case LitTrue:
		return "true"
	case LitFalse:
		return "false"
	case LitNil:
		return "nil"
	case LitNum, LitStr:
		return l.Value.String()
	}
	panic(fmt.Errorf("bad literal kind: %d", l.Kind))
}

type Sign uint8

const (
	SignMinus Sign = iota
	SignBang
)

func SignFromTokenType(t TokenType) Sign {
	switch t {
	case Minus:
		return SignMinus
	case Bang:
		return SignBang
	}
	panic(fmt.Errorf("not a unary operator: %v", t))
}

func (s Sign) String() string {
	switch s {
	case SignMinus:
		return "-"
	case SignBang:
		return "!"
	}
	panic(fmt.Errorf("bad sign: %d", s))
}

type Ops uint8

const (
	OpMinus Ops = iota
	OpPlus
	OpBangEqual
	OpSlash
	OpStar
	OpEqualEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
)

// OpsFromTokenType maps an operator token type to its binary operator.
// Any other token type is a bug in the caller and panics.
func OpsFromTokenType(t TokenType) Ops {
	switch t {
	case Minus:
		return OpMinus
	case Plus:
		return OpPlus
	case BangEqual:
		return OpBangEqual
	case Slash:
		return OpSlash
	case Star:
		return OpStar
	case EqualEqual:
		return OpEqualEqual
	case Greater:
		return OpGreater
	case GreaterEqual:
		return OpGreaterEqual
	case Less:
		return OpLess
	case LessEqual:
		return OpLessEqual
	}
	panic(fmt.Errorf("invalid operator: %v", t))
}

func (o Ops) String() string {
	switch o {
	case OpMinus:
		return "-"
	case OpPlus:
		return "+"
	case OpBangEqual:
		return "!="
	case OpSlash:
		return "/"
	case OpStar:
		return "*"
	case OpEqualEqual:
		return "=="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	}
	panic(fmt.Errorf("bad operator: %d", o))
}
