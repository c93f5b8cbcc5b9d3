package classify

import "testing"

func TestNewsSentiment(t *testing.T) {
	cases := []struct {
		title string
		want  Sentiment
	}{
		{"Stock surges on beat", SentimentBullish},
		{"Shares jump after record quarter", SentimentBullish},
		{"Fed warns of macro risk", SentimentBearish},
		{"Analyst downgrade hits shares", SentimentBearish},
		{"Company announces new CFO", SentimentMixed},
		{"", SentimentMixed},
		// Positive list is checked first, so a headline with both kinds of
		// keywords reads bullish.
		{"Shares surge despite lawsuit", SentimentBullish},
	}
	for _, tc := range cases {
		if got := NewsSentiment(tc.title); got != tc.want {
			t.Errorf("NewsSentiment(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestNewsTopic(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Q3 earnings preview", "Earnings"},
		{"Earnings beat expectations", "Earnings"},
		{"New AI chip announced", "AI"},
		{"Fed warns of macro risk", "Macro"},
		{"Macro headwinds persist", "Macro"},
		{"Stock surges on beat", "News"},
		// "earn" outranks "ai" when both appear.
		{"AI drives earnings growth", "Earnings"},
		// The bare "ai" substring matches inside words; preserved behavior.
		{"Airline stocks climb", "AI"},
	}
	for _, tc := range cases {
		if got := NewsTopic(tc.title); got != tc.want {
			t.Errorf("NewsTopic(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
