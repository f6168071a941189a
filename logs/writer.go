package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/xioustic/bf-naive/cmds"
)

// Writer receives the terminal log output.
type Writer io.Writer

var logFileFlag = cmds.Var[string]("-log-file")

// Writer is stderr, or the file named by -log-file opened for appending.
func (Module) Writer() Writer {
	if *logFileFlag == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFileFlag, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("open log file: %w", err))
	}
	return f
}
