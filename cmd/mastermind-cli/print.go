package main

import (
	"fmt"
	"strings"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/render"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/spark"
)

// printDashboard writes a plain-text rendition of the dashboard to stdout.
// This is the console display adapter: it only walks the instructions and
// never recomputes classifications.
func printDashboard(d render.Dashboard) {
	fmt.Printf("%s  %s  [%s]\n", d.Summary.Ticker, d.Summary.PriceText, d.Summary.Consensus)

	if d.Score.Visible {
		fmt.Printf("Master Score: %s (%s)\n", d.Score.ValueText, d.Score.Label)
	}
	if d.Priority.Visible {
		fmt.Printf("Priority: %s", d.Priority.Action)
		if d.Priority.Confidence != "" {
			fmt.Printf(" (confidence %s)", d.Priority.Confidence)
		}
		fmt.Println()
		if d.Priority.Reasoning != "" {
			fmt.Printf("  %s\n", d.Priority.Reasoning)
		}
	}

	if d.Plan.Visible {
		fmt.Println("\nTrade Plan")
		fmt.Printf("  Entry: %s   Target: %s   Stop: %s\n", d.Plan.EntryZone, d.Plan.Target, d.Plan.StopLoss)
		if d.Plan.Sizer.Available {
			fmt.Printf("  Size: %d shares (risking %.2f, %.2f/share)\n",
				d.Plan.Sizer.Shares, d.Plan.Sizer.RiskAmount, d.Plan.Sizer.PerShareRisk)
		} else {
			fmt.Println("  Size: unavailable")
		}
		for _, row := range d.Plan.Pyramid {
			fmt.Printf("  Pyramid: %s at %s\n", row.Size, row.PriceText)
		}
	}

	if d.Vitals.Visible {
		fmt.Println("\nVital Signs")
		for _, c := range d.Vitals.Cards {
			line := fmt.Sprintf("  %-12s %-10s %s", c.Title, c.ValueText, c.StatusText)
			if len(c.History) >= 2 {
				line += "  " + spark.Line(c.History, 12)
			}
			fmt.Println(line)
		}
	}

	if d.Options.Visible {
		fmt.Println("\nOptions Intel")
		fmt.Printf("  Sentiment: %s   P/C: %s   Max OI: %s   IV: %s\n",
			d.Options.Sentiment, d.Options.PCRatio, d.Options.MaxOIStrike, d.Options.AvgIV)
		if d.Options.Recommendation != "" {
			fmt.Printf("  %s\n", d.Options.Recommendation)
		}
	}

	if d.Patterns.Visible {
		fmt.Println("\nPatterns")
		for _, p := range d.Patterns.Items {
			fmt.Printf("  %s [%s] %s\n", p.Name, p.Status, p.Description)
		}
	}
	if d.VPA.Visible {
		fmt.Println("\nVolume Price Analysis")
		for _, v := range d.VPA.Items {
			fmt.Printf("  %s [%s] %s\n", v.Name, v.Status, v.Description)
		}
	}

	if d.Strategies.Visible {
		fmt.Println("\nStrategies")
		if len(d.Strategies.Items) == 0 {
			fmt.Printf("  %s\n", d.Strategies.EmptyText)
		}
		for _, s := range d.Strategies.Items {
			fmt.Printf("  %s: %s\n", s.Type, s.Description)
			if len(s.Books) > 0 {
				fmt.Printf("    refs: %s\n", strings.Join(s.Books, ", "))
			}
		}
	}

	if d.Council.Visible {
		fmt.Println("\nAnalyst Council")
		for _, c := range d.Council.Cards {
			fmt.Printf("  %s: %s\n", c.Name, c.Rating)
			for _, r := range c.Reasons {
				fmt.Printf("    - %s\n", r)
			}
		}
	}

	if d.News.Visible {
		fmt.Println("\nRecent News")
		if len(d.News.Items) == 0 {
			fmt.Printf("  %s\n", d.News.EmptyText)
		}
		for _, n := range d.News.Items {
			fmt.Printf("  [%s/%s] %s\n", n.Sentiment, n.Topic, n.Title)
		}
	}

	if d.Trend.Visible {
		var parts []string
		for _, tag := range d.Trend.Tags {
			parts = append(parts, fmt.Sprintf("%s:%s", tag.Name, tag.Value))
		}
		if d.Trend.RSLeader {
			parts = append(parts, "RS Leader")
		}
		fmt.Printf("\nTrend: %s\n", strings.Join(parts, "  "))
	}
}
