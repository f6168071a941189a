// Package dumps renders machine state for people and tools.
package dumps

import (
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/xioustic/bf-naive/bfvm"
)

// Window returns the half-open range of cells within radius of the data pointer.
func Window(vm *bfvm.VM, radius int) (from, to int) {
	dp := vm.State().DataPointer
	from = lo.Clamp(dp-radius, 0, vm.Capacity()-1)
	to = lo.Clamp(dp+radius+1, 1, vm.Capacity())
	return
}

// Table writes the cells around the data pointer as a table.
func Table(w io.Writer, vm *bfvm.VM, radius int) {
	state := vm.State()
	from, to := Window(vm, radius)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"cell", "value", "char", ""})
	table.SetAutoFormatHeaders(false)
	for i := from; i < to; i++ {
		value := vm.Cell(i)
		var mark string
		if i == state.DataPointer {
			mark = "<- dp"
		}
		table.Append([]string{
			strconv.Itoa(i),
			strconv.Itoa(int(value)),
			printable(value),
			mark,
		})
	}
	table.Render()

	fmt.Fprintf(w, "ip %d/%d seek %d jumps %v\n",
		state.InstructionPointer,
		len(state.Instructions),
		state.SeekDepth,
		state.JumpStack,
	)
}

func printable(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return ""
}

// JSON writes state as an indented JSON object followed by a newline.
func JSON(w io.Writer, state bfvm.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}

// CompactJSON is JSON on a single line.
func CompactJSON(w io.Writer, state bfvm.State) error {
	return json.NewEncoder(w).Encode(state)
}
