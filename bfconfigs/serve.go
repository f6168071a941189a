package bfconfigs

import (
	"fmt"
	"time"

	"github.com/xioustic/bf-naive/cmds"
	"github.com/xioustic/bf-naive/configs"
	"github.com/xioustic/bf-naive/vars"
)

// MaxConns caps concurrent sessions of the server.
type MaxConns int

const defaultMaxConns = 64

var maxConnsFlag = cmds.Var[*int]("-max-conns")

func (Module) MaxConns(
	loader configs.Loader,
) MaxConns {
	if n := *maxConnsFlag; n != nil {
		if *n <= 0 {
			panic(fmt.Errorf("max conns must be positive, got %d", *n))
		}
		return MaxConns(*n)
	}
	return MaxConns(vars.FirstNonZero(
		configs.First[int](loader, "serve.max_conns"),
		defaultMaxConns,
	))
}

// LineTimeout bounds the execution of one line received by the server.
type LineTimeout time.Duration

const defaultLineTimeout = 5 * time.Second

var lineTimeoutFlag = cmds.Var[string]("-line-timeout")

func (Module) LineTimeout(
	loader configs.Loader,
) LineTimeout {
	str := vars.FirstNonZero(
		*lineTimeoutFlag,
		configs.First[string](loader, "serve.line_timeout"),
	)
	if str == "" {
		return LineTimeout(defaultLineTimeout)
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		panic(fmt.Errorf("line timeout: %w", err))
	}
	if d <= 0 {
		panic(fmt.Errorf("line timeout must be positive, got %s", str))
	}
	return LineTimeout(d)
}
