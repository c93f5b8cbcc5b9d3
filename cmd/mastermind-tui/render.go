package main

import (
	"fmt"
	"strings"

	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/render"
	"github.com/upendrareddy24/Stock-Analyst-Pro/internal/spark"
)

// renderContent draws the full scrollable body from the current state. It is
// a display adapter over the dashboard instructions: tones map to styles,
// Visible=false sections vanish, and nothing is classified here.
func (m *model) renderContent() string {
	var b strings.Builder

	d, ok := m.st.Dashboard()
	if !ok {
		b.WriteString(dimStyle.Render("no analysis yet"))
		b.WriteString("\n")
	} else {
		m.writeDashboard(&b, d)
	}

	m.writeLists(&b)
	return b.String()
}

func (m *model) writeDashboard(b *strings.Builder, d render.Dashboard) {
	b.WriteString(tickerStyle.Render(d.Summary.Ticker))
	b.WriteString("  ")
	b.WriteString(d.Summary.PriceText)
	b.WriteString("  ")
	b.WriteString(toneStyle(d.Summary.Tone).Render(d.Summary.Consensus))
	b.WriteString("\n")

	if d.Score.Visible {
		b.WriteString(toneStyle(d.Score.Tone).Render(
			fmt.Sprintf("Score %s (%s)", d.Score.ValueText, d.Score.Label)))
		b.WriteString("\n")
	}
	if d.Priority.Visible {
		b.WriteString(toneStyle(d.Priority.Tone).Bold(true).Render(d.Priority.Action))
		if d.Priority.Confidence != "" {
			b.WriteString(dimStyle.Render("  confidence " + d.Priority.Confidence))
		}
		b.WriteString("\n")
		if d.Priority.Reasoning != "" {
			b.WriteString(dimStyle.Render("  " + d.Priority.Reasoning))
			b.WriteString("\n")
		}
	}

	if len(d.Chart.Bars) > 0 {
		b.WriteString("\n")
		closes := make([]float64, len(d.Chart.Bars))
		for i, bar := range d.Chart.Bars {
			closes[i] = bar.Close
		}
		b.WriteString(sectionStyle.Render("Chart "))
		b.WriteString(spark.Line(closes, 48))
		b.WriteString("\n")
		for _, lvl := range d.Chart.Levels {
			b.WriteString(toneStyle(lvl.Tone).Render(fmt.Sprintf("  %s %.2f", lvl.Name, lvl.Price)))
			b.WriteString("\n")
		}
		for _, mk := range d.Chart.Markers {
			arrow := "▼"
			if mk.Up {
				arrow = "▲"
			}
			b.WriteString(toneStyle(mk.Tone).Render("  " + arrow + " " + mk.Label))
			b.WriteString("\n")
		}
	}

	if d.Plan.Visible {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Trade Plan"))
		b.WriteString("\n")
		fmt.Fprintf(b, "  Entry %s   Target %s   Stop %s\n", d.Plan.EntryZone, d.Plan.Target, d.Plan.StopLoss)
		if d.Plan.Sizer.Available {
			fmt.Fprintf(b, "  Size %d shares  risk %.2f (%.2f/share)\n",
				d.Plan.Sizer.Shares, d.Plan.Sizer.RiskAmount, d.Plan.Sizer.PerShareRisk)
		} else {
			b.WriteString(dimStyle.Render("  size unavailable"))
			b.WriteString("\n")
		}
		for _, row := range d.Plan.Pyramid {
			fmt.Fprintf(b, "  add %s at %s\n", row.Size, row.PriceText)
		}
	}

	if d.Vitals.Visible {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Vital Signs"))
		b.WriteString("\n")
		for _, c := range d.Vitals.Cards {
			line := fmt.Sprintf("  %-12s %-10s ", c.Title, c.ValueText)
			b.WriteString(line)
			b.WriteString(toneStyle(c.Tone).Render(c.StatusText))
			if len(c.History) >= 2 {
				b.WriteString(dimStyle.Render("  " + spark.Line(c.History, 14)))
			}
			b.WriteString("\n")
		}
	}

	if d.Trend.Visible {
		var tags []string
		for _, tag := range d.Trend.Tags {
			tags = append(tags, toneStyle(tag.Tone).Render(tag.Name+":"+tag.Value))
		}
		if d.Trend.RSLeader {
			tags = append(tags, greenStyle.Render("RS Leader"))
		}
		b.WriteString("\n  " + strings.Join(tags, "  ") + "\n")
	}

	if d.Options.Visible {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Options Intel"))
		b.WriteString("\n  ")
		b.WriteString(toneStyle(d.Options.Tone).Render(d.Options.Sentiment))
		fmt.Fprintf(b, "  P/C %s  MaxOI %s  IV %s\n", d.Options.PCRatio, d.Options.MaxOIStrike, d.Options.AvgIV)
		if d.Options.Recommendation != "" {
			b.WriteString(dimStyle.Render("  " + d.Options.Recommendation))
			b.WriteString("\n")
		}
	}

	writeItemList(b, "Patterns", d.Patterns.Visible, d.Patterns.Items)
	writeItemList(b, "Volume Price Analysis", d.VPA.Visible, d.VPA.Items)

	if d.Strategies.Visible {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Strategies"))
		b.WriteString("\n")
		if len(d.Strategies.Items) == 0 {
			b.WriteString(dimStyle.Render("  " + d.Strategies.EmptyText))
			b.WriteString("\n")
		}
		for _, s := range d.Strategies.Items {
			fmt.Fprintf(b, "  %s: %s\n", s.Type, s.Description)
			if len(s.Books) > 0 {
				b.WriteString(dimStyle.Render("    " + strings.Join(s.Books, ", ")))
				b.WriteString("\n")
			}
		}
	}

	if d.Council.Visible {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("The Analyst Council"))
		b.WriteString("\n")
		if len(d.Council.Cards) == 0 {
			b.WriteString(dimStyle.Render("  (no opinions)"))
			b.WriteString("\n")
		}
		for _, c := range d.Council.Cards {
			b.WriteString("  " + c.Name + " ")
			b.WriteString(toneStyle(c.Tone).Render(c.Rating))
			b.WriteString("\n")
			for _, r := range c.Reasons {
				b.WriteString(dimStyle.Render("    - " + r))
				b.WriteString("\n")
			}
			if c.BooksText != "" {
				b.WriteString(dimStyle.Render("    " + c.BooksText))
				b.WriteString("\n")
			}
		}
	}

	if d.News.Visible {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Recent News"))
		b.WriteString("\n")
		if len(d.News.Items) == 0 {
			b.WriteString(dimStyle.Render("  " + d.News.EmptyText))
			b.WriteString("\n")
		}
		for _, n := range d.News.Items {
			b.WriteString("  ")
			b.WriteString(toneStyle(n.Sentiment.Tone()).Render("[" + string(n.Sentiment) + "]"))
			b.WriteString(dimStyle.Render("[" + n.Topic + "] "))
			b.WriteString(n.Title)
			b.WriteString("\n")
			if n.Summary != "" {
				b.WriteString(dimStyle.Render("    " + n.Summary))
				b.WriteString("\n")
			}
		}
	}
}

func writeItemList(b *strings.Builder, title string, visible bool, items []render.ListItem) {
	if !visible {
		return
	}
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString("  " + it.Name + " ")
		b.WriteString(toneStyle(it.Tone).Render(it.Status))
		b.WriteString("\n")
		if it.Description != "" {
			b.WriteString(dimStyle.Render("    " + it.Description))
			b.WriteString("\n")
		}
	}
}

// writeLists renders the server-owned side panels: history, radar and the
// market-intelligence feed.
func (m *model) writeLists(b *strings.Builder) {
	if history := m.st.History(); len(history) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("History"))
		b.WriteString("\n")
		for _, h := range history {
			fmt.Fprintf(b, "  %-8s %-24s %s\n", h.Ticker, h.Consensus, dimStyle.Render(h.Date))
		}
	}

	if radar := m.st.Radar(); len(radar) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Bullish Radar"))
		b.WriteString("\n")
		for _, r := range radar {
			fmt.Fprintf(b, "  %-8s %-24s %.0f\n", r.Ticker, r.Consensus, r.MasterScore)
		}
	}

	if intel := m.st.Intel(); len(intel) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Market Intelligence"))
		b.WriteString("\n")
		for _, mv := range intel {
			gain := fmt.Sprintf("%+.1f%%", mv.PotentialGain*100)
			style := greenStyle
			if mv.PotentialGain < 0 {
				style = redStyle
			}
			fmt.Fprintf(b, "  %-8s score %.0f  %s\n", mv.Ticker, mv.MasterScore, style.Render(gain))
		}
	}
}
