package cli

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	bold = color.New(color.Bold)
	cyan = color.New(color.FgCyan)
)

// printRun writes one run the way the demo always has: a header line
// followed by the ordered sequence.
func printRun(w io.Writer, res RunResult) {
	fmt.Fprintln(w)
	bold.Fprintf(w, "Split work with %s on threshold %d yields:\n", res.Backend, res.Threshold)
	fmt.Fprintln(w, formatSequence(res.Values))
}

// formatSequence renders values as a bracketed, comma separated list.
func formatSequence(values []*big.Int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func renderSummary(w io.Writer, items int, results []RunResult) error {
	fmt.Fprintln(w)
	cyan.Fprintln(w, "SUMMARY")

	table := tablewriter.NewWriter(w)
	table.Header("Backend", "Threshold", "Path", "Items", "Elapsed")

	for _, r := range results {
		path := "parallel"
		if r.Sequential {
			path = "sequential"
		}
		_ = table.Append(
			r.Backend.String(),
			fmt.Sprint(r.Threshold),
			path,
			fmt.Sprint(items),
			r.Elapsed.Round(time.Microsecond).String(),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	return nil
}
