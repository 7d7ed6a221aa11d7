package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/lox/runners"
)

type Module struct {
	dscope.Module
	Runners runners.Module
}
