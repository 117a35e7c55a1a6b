package runlog

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Fprint writes runs as an aligned table, one run per line.
func Fprint(w io.Writer, runs []Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tSTATUS\tCOUNT\tCREATED\tOUTPUT\tERROR")

	for i := range runs {
		r := &runs[i]

		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			r.ID, r.Status, r.Count, r.CreatedAt.Format(time.DateTime), dash(r.OutputFile), dash(r.Error))
	}

	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
