package serves

import (
	"bufio"
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/reusee/e5"
	"github.com/xioustic/bf-naive/bfconfigs"
	"github.com/xioustic/bf-naive/bfvm"
	"github.com/xioustic/bf-naive/logs"
	"golang.org/x/net/netutil"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Serve accepts line sessions on ln until ctx is done. Every connection gets its own machine.
type Serve func(ctx context.Context, ln net.Listener) error

func (Module) Serve(
	newVM bfvm.NewVM,
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxConns bfconfigs.MaxConns,
	lineTimeout bfconfigs.LineTimeout,
) Serve {
	return func(ctx context.Context, ln net.Listener) error {
		ln = netutil.LimitListener(ln, int(maxConns))
		stop := context.AfterFunc(ctx, func() {
			ln.Close()
		})
		defer stop()

		logger.InfoContext(ctx, "serving",
			"addr", ln.Addr().String(),
			"max_conns", int(maxConns),
		)

		var wg sync.WaitGroup
		defer wg.Wait()

		for {
			conn, err := ln.Accept()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				if errors.Is(err, net.ErrClosed) {
					return nil
				}
				return wrap(err)
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				sessionCtx, _ := newSpan(ctx, "")
				w := bufio.NewWriter(conn)
				s := &session{
					conn:        conn,
					w:           w,
					vm:          newVM(w),
					logger:      logger,
					lineTimeout: time.Duration(lineTimeout),
				}
				s.serve(sessionCtx)
			}()
		}
	}
}
