package bfconfigs

import (
	"github.com/xioustic/bf-naive/cmds"
	"github.com/xioustic/bf-naive/configs"
)

// Debug turns on per-instruction trace events of new machines.
type Debug bool

var debugFlag = cmds.Switch("-debug")

func (Module) Debug(
	loader configs.Loader,
) Debug {
	return Debug(*debugFlag || configs.First[bool](loader, "debug"))
}
