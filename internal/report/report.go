// Package report assembles the downloadable Markdown report from a
// normalized analysis snapshot. The header lines are a fixed contract:
// downstream tooling greps them, so they are emitted byte-exact and the
// consensus line round-trips through ParseVerdict.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/normalize"
)

const verdictPrefix = "## CONSENSUS VERDICT: "

// Markdown renders the full report for a snapshot. now stamps the header;
// pass time.Now() outside of tests.
func Markdown(snap normalize.Snapshot, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# ANALYST MASTERMIND REPORT: %s\n\n", snap.Ticker)
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Current Price: $%.2f\n\n", snap.Price)

	fmt.Fprintf(&b, "%s%s\n", verdictPrefix, snap.Consensus)
	if snap.Score != nil {
		fmt.Fprintf(&b, "Master Score: %.0f/100 (%s)\n", snap.Score.Value, snap.Score.Label)
	}
	if snap.Priority != nil {
		fmt.Fprintf(&b, "Priority Action: %s\n", snap.Priority.Action)
	}
	b.WriteString("\n")

	b.WriteString("## TRADE PLAN\n")
	if snap.Plan != nil {
		fmt.Fprintf(&b, "- Entry Zone: %s\n", snap.Plan.EntryZone)
		fmt.Fprintf(&b, "- Target: %s\n", snap.Plan.Target)
		fmt.Fprintf(&b, "- Stop Loss: %s\n", snap.Plan.StopLoss)
		if snap.Plan.RiskPerShare != "" {
			fmt.Fprintf(&b, "- Risk Per Share: %s\n", snap.Plan.RiskPerShare)
		}
		for _, leg := range snap.Plan.Pyramiding {
			fmt.Fprintf(&b, "- Pyramid Add: %s at %s\n", leg.Size, leg.Price.Raw)
		}
	} else {
		b.WriteString("No trade plan available.\n")
	}
	b.WriteString("\n")

	b.WriteString("## THE ANALYST COUNCIL\n")
	if len(snap.Personas) == 0 {
		b.WriteString("No analyst opinions available.\n")
	}
	for _, p := range snap.Personas {
		fmt.Fprintf(&b, "\n### %s: %s\n", p.Name, p.Rating)
		for _, reason := range p.Reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
		if len(p.Books) > 0 {
			fmt.Fprintf(&b, "Influences: %s\n", strings.Join(p.Books, ", "))
		}
	}

	return b.String()
}

// ParseVerdict extracts the consensus string from an exported report. The
// returned value is byte-identical to the consensus that produced the
// report. ok is false when no verdict line is present.
func ParseVerdict(md string) (consensus string, ok bool) {
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, verdictPrefix) {
			return line[len(verdictPrefix):], true
		}
	}
	return "", false
}
