package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/xioustic/bf-naive/bfvm"
	"github.com/xioustic/bf-naive/cmds"
	"github.com/xioustic/bf-naive/debugs"
	"github.com/xioustic/bf-naive/dumps"
	"github.com/xioustic/bf-naive/logs"
	"github.com/xioustic/bf-naive/modes"
	"github.com/xioustic/bf-naive/serves"
)

var (
	files     = cmds.Collect[string]("-file")
	programs  = cmds.Collect[string]("-e")
	inspects  = cmds.Collect[string]("-inspect")
	loadFile  = cmds.Var[string]("-load")
	saveFile  = cmds.Var[string]("-save")
	serveAddr = cmds.Var[string]("serve")
	doRepl    = cmds.Switch("repl")
	doDump    = cmds.Switch("dump")
	doTap     = cmds.Switch("tap")
	asJSON    = cmds.Switch("-json")
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

const dumpRadius = 8

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newVM bfvm.NewVM,
		serve serves.Serve,
		tap debugs.Tap,
	) {

		if *serveAddr != "" {
			ln, err := net.Listen("tcp", *serveAddr)
			if err != nil {
				fatal(err)
			}
			if err := serve(ctx, ln); err != nil {
				logger.Error("serve", "error", err)
				fatal(err)
			}
			return
		}

		out := &lineWriter{w: os.Stdout}
		vm := newVM(out)

		if *loadFile != "" {
			if err := loadSnapshot(vm, *loadFile); err != nil {
				fatal(err)
			}
			logger.Debug("snapshot loaded", "path", *loadFile)
		}

		for _, path := range *files {
			content, err := os.ReadFile(path)
			if err != nil {
				fatal(wrap(err))
			}
			runProgram(ctx, vm, out, string(content))
		}
		for _, program := range *programs {
			runProgram(ctx, vm, out, program)
		}

		if *doRepl {
			runREPL(ctx, &replSession{
				vm:  vm,
				out: out,
				tap: tap,
			})
		}

		if *saveFile != "" {
			if err := saveSnapshot(vm, *saveFile); err != nil {
				fatal(err)
			}
			logger.Debug("snapshot saved", "path", *saveFile)
		}

		if *doDump {
			out.EndLine()
			if *asJSON {
				vm.EmitState(func(state bfvm.State) {
					if err := dumps.JSON(os.Stdout, state); err != nil {
						fatal(err)
					}
				})
			} else {
				dumps.Table(os.Stdout, vm, dumpRadius)
			}
		}

		for _, expr := range *inspects {
			out.EndLine()
			str, err := debugs.Eval(debugs.StateGlobals(vm), expr)
			if err != nil {
				fatal(err)
			}
			fmt.Println(str)
		}

		if *doTap {
			out.EndLine()
			tap(ctx, "state", debugs.StateGlobals(vm))
		}

		out.EndLine()
	})
}

func runProgram(ctx context.Context, vm *bfvm.VM, out *lineWriter, program string) {
	vm.AddInstructions(program)
	if err := vm.RunContext(ctx); err != nil {
		// output produced before the failure is still pending
		io.WriteString(out, vm.State().Output)
		out.EndLine()
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// lineWriter remembers whether the last byte written ended a line.
type lineWriter struct {
	w       io.Writer
	pending bool
}

func (l *lineWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		l.pending = p[len(p)-1] != '\n'
	}
	return l.w.Write(p)
}

// EndLine terminates a partially written line.
func (l *lineWriter) EndLine() {
	if l.pending {
		l.Write([]byte{'\n'})
	}
}
