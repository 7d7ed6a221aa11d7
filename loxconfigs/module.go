package loxconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/lox/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
