package bfvm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/xioustic/bf-naive/bfconfigs"
	"github.com/xioustic/bf-naive/configs"
	"github.com/xioustic/bf-naive/logs"
	"github.com/xioustic/bf-naive/modes"
)

func TestModule(t *testing.T) {
	logBuf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, bfconfigs.Schema)),
		func() logs.Writer {
			return logBuf
		},
		func() bfconfigs.Capacity {
			return 32
		},
		func() bfconfigs.Debug {
			return true
		},
	).Call(func(
		newVM NewVM,
	) {
		out := new(bytes.Buffer)
		vm := newVM(out)
		if vm.Capacity() != 32 {
			t.Fatalf("got %v", vm.Capacity())
		}
		if !vm.Debug() {
			t.Fatal()
		}
		vm.AddInstructions("++.")
		if err := vm.Run(); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out.Bytes(), []byte{2}) {
			t.Fatalf("got %v", out.Bytes())
		}
	})

	logged := logBuf.String()
	for _, want := range []string{
		"msg=did instruction=+ ip=1 cell=1 dp=0 seek=0",
		"msg=output",
		"msg=flush bytes=1",
	} {
		if !strings.Contains(logged, want) {
			t.Fatalf("missing %q in\n%s", want, logged)
		}
	}
}
