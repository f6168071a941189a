package serves

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/xioustic/bf-naive/bfvm"
	"github.com/xioustic/bf-naive/dumps"
	"github.com/xioustic/bf-naive/logs"
)

const maxLineSize = 1 << 20

type session struct {
	conn        net.Conn
	w           *bufio.Writer
	vm          *bfvm.VM
	logger      logs.Logger
	lineTimeout time.Duration
}

func (s *session) serve(ctx context.Context) {
	defer s.conn.Close()
	stop := context.AfterFunc(ctx, func() {
		s.conn.Close()
	})
	defer stop()

	s.logger.InfoContext(ctx, "session start", "remote", s.conn.RemoteAddr().String())
	defer func() {
		s.logger.InfoContext(ctx, "session end")
	}()

	scanner := bufio.NewScanner(s.conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		quit := s.handle(ctx, scanner.Text())
		if err := s.w.Flush(); err != nil {
			s.logger.WarnContext(ctx, "write", "error", wrap(err))
			return
		}
		if quit {
			return
		}
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil && !errors.Is(err, net.ErrClosed) {
		s.logger.WarnContext(ctx, "read", "error", wrap(err))
	}
}

// handle runs one line. Output of the line is terminated by a newline. A failure writes the
// output produced before it, then the error, and resets the machine.
func (s *session) handle(ctx context.Context, line string) (quit bool) {
	switch strings.TrimSpace(line) {
	case ":quit":
		return true
	case ":reset":
		s.vm.Reset()
		s.w.WriteString("ok\n")
		return false
	case ":state":
		if err := dumps.CompactJSON(s.w, s.vm.State()); err != nil {
			fmt.Fprintf(s.w, "error: %v\n", err)
		}
		return false
	}

	s.vm.AddInstructions(line)
	runCtx, cancel := context.WithTimeout(ctx, s.lineTimeout)
	defer cancel()
	if err := s.vm.RunContext(runCtx); err != nil {
		s.logger.WarnContext(ctx, "run failed", "error", logs.WrapSpan(ctx, err))
		if output := s.vm.State().Output; output != "" {
			s.w.WriteString(output + "\n")
		}
		fmt.Fprintf(s.w, "error: %v\n", err)
		s.vm.Reset()
		return false
	}
	s.w.WriteString("\n")
	return false
}
