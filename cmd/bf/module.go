package main

import (
	"github.com/reusee/dscope"
	"github.com/xioustic/bf-naive/bfvm"
	"github.com/xioustic/bf-naive/debugs"
	"github.com/xioustic/bf-naive/serves"
)

type Module struct {
	dscope.Module
	VM     bfvm.Module
	Serves serves.Module
	Debugs debugs.Module
}
