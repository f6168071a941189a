package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/xioustic/bf-naive/bfvm"
	"github.com/xioustic/bf-naive/debugs"
	"github.com/xioustic/bf-naive/dumps"
)

const replHelp = `lines are appended to the program and run
:state  print the machine state as JSON
:dump   print the cells around the data pointer
:debug  toggle per-instruction tracing
:reset  clear the tape and the program
:tap    open a starlark REPL over the state
:quit   exit`

func runREPL(ctx context.Context, session *replSession) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".bf_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "bf> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if session.eval(ctx, line) {
			break
		}
	}
}

type replSession struct {
	vm  *bfvm.VM
	out *lineWriter
	tap debugs.Tap
}

// eval handles one REPL line and reports whether the session should end.
func (s *replSession) eval(ctx context.Context, line string) (quit bool) {
	defer s.out.EndLine()

	switch strings.TrimSpace(line) {
	case "":
		return false
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(s.out, replHelp)
	case ":state":
		if err := dumps.JSON(s.out, s.vm.State()); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	case ":dump":
		dumps.Table(s.out, s.vm, dumpRadius)
	case ":debug":
		s.vm.SetDebug(!s.vm.Debug())
		fmt.Fprintf(s.out, "debug %v\n", s.vm.Debug())
	case ":reset":
		s.vm.Reset()
	case ":tap":
		if s.tap != nil {
			s.tap(ctx, "repl", debugs.StateGlobals(s.vm))
		}
	default:
		s.vm.AddInstructions(line)
		if err := s.vm.RunContext(ctx); err != nil {
			s.out.Write([]byte(s.vm.State().Output))
			s.out.EndLine()
			fmt.Fprintf(s.out, "error: %v\nmachine reset\n", err)
			s.vm.Reset()
		}
	}
	return false
}
