package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	names := make(map[*Command][]string)
	for name, cmd := range p.commands {
		names[cmd] = append(names[cmd], name)
	}
	var list [][]string
	for _, ns := range names {
		slices.Sort(ns)
		list = append(list, ns)
	}
	slices.SortFunc(list, func(a, b []string) int {
		return strings.Compare(a[0], b[0])
	})

	for _, ns := range list {
		cmd := p.commands[ns[0]]
		fmt.Fprint(w, strings.Join(ns, ", "))
		if cmd.Description != "" {
			fmt.Fprintf(w, "\t%s", cmd.Description)
		}
		fmt.Fprintln(w)
	}
}
