package cmds

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range p.names {
		command := p.commands[name]
		names := append([]string{name}, command.Aliases...)
		fmt.Fprintf(tw, "  %s\t%s\n", strings.Join(names, ", "), command.Description)
	}
	tw.Flush()
}
