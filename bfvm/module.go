package bfvm

import (
	"io"
	"log/slog"

	"github.com/reusee/dscope"
	"github.com/xioustic/bf-naive/bfconfigs"
	"github.com/xioustic/bf-naive/logs"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

// NewVM builds a machine with the configured capacity and debug flag, writing drained output
// to output.
type NewVM func(output io.Writer) *VM

func (Module) NewVM(
	capacity bfconfigs.Capacity,
	debug bfconfigs.Debug,
	observer Observer,
) NewVM {
	return func(output io.Writer) *VM {
		return New(Options{
			Capacity: int(capacity),
			Output:   output,
			Observer: observer,
			Debug:    bool(debug),
		})
	}
}

// Observer logs events at debug level.
func (Module) Observer(
	logger logs.Logger,
) Observer {
	return func(ev Event) {
		switch ev.Kind {
		case EventStep:
			logger.Debug("did",
				"instruction", string(ev.Instruction),
				"ip", ev.InstructionPointer,
				"cell", ev.Cell,
				"dp", ev.DataPointer,
				"seek", ev.SeekDepth,
				"jumps", ev.JumpStack,
			)
		case EventOutput:
			logger.Debug("output", "char", string(ev.Output))
		case EventFlush:
			logger.Debug("flush", slog.Int("bytes", len(ev.Output)))
		}
	}
}
