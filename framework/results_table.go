package framework

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintResults writes a summary table of the test run, followed by the details
// of every failure.
func PrintResults(out io.Writer, title string, results Results) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("%s (%s)", title, formatDuration(results.Duration)))
	t.AppendHeader(table.Row{"Test", "Duration", "Status", "Notes"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Test", WidthMax: 70},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Notes", WidthMax: 50},
	})

	for _, r := range results.Tests {
		var notes string
		switch {
		case r.Failed():
			notes = firstLine(r.Errors[0])
		case r.Skipped:
			notes = r.SkipReason
		case len(r.CleanupErrors) > 0:
			notes = "cleanup: " + firstLine(r.CleanupErrors[0])
		}
		t.AppendRow(table.Row{r.TestID.String(), formatDuration(r.Duration), statusString(r), notes})
	}

	t.AppendFooter(table.Row{
		"TOTAL",
		formatDuration(results.Duration),
		fmt.Sprintf("%d passed, %d failed, %d skipped",
			results.Passed(), len(results.Failures), len(results.Skipped())),
		"",
	})

	switch {
	case !results.OK():
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	case len(results.Skipped()) > 0:
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}
	t.Render()

	if len(results.Failures) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "FAILED TESTS:")
		for _, f := range results.Failures {
			fmt.Fprintf(out, "* %s\n", f.TestID)
			for _, e := range f.Errors {
				for _, line := range strings.Split(reformatError(e).Error(), "\n") {
					fmt.Fprintf(out, "    %s\n", line)
				}
			}
		}
	}
}

func statusString(r TestResult) string {
	switch {
	case r.Failed():
		return "✗ fail"
	case r.Skipped:
		return "- skip"
	default:
		return "✓ pass"
	}
}

func firstLine(err error) string {
	return strings.SplitN(strings.TrimSpace(reformatError(err).Error()), "\n", 2)[0]
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
