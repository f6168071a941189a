package bfconfigs

import (
	"fmt"

	"github.com/xioustic/bf-naive/cmds"
	"github.com/xioustic/bf-naive/configs"
)

// Capacity is the number of tape cells of new machines. Zero selects the engine default.
type Capacity int

var capacityFlag = cmds.Var[*int]("-capacity")

func (Module) Capacity(
	loader configs.Loader,
) Capacity {
	if n := *capacityFlag; n != nil {
		if *n <= 0 {
			panic(fmt.Errorf("capacity must be positive, got %d", *n))
		}
		return Capacity(*n)
	}
	return Capacity(configs.First[int](loader, "capacity"))
}
