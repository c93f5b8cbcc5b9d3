package classify

import "strings"

// Sentiment is the derived directional tag for a headline.
type Sentiment string

const (
	SentimentBullish Sentiment = "Bullish"
	SentimentBearish Sentiment = "Bearish"
	SentimentMixed   Sentiment = "Mixed"
)

// Tone maps a sentiment tag to a color.
func (s Sentiment) Tone() Tone {
	switch s {
	case SentimentBullish:
		return ToneBullish
	case SentimentBearish:
		return ToneBearish
	default:
		return ToneNeutral
	}
}

// Keyword lists are checked in order: positive first, then negative, else
// Mixed. The lists and their priority mirror the observed product behavior
// and are deliberately small; matching is case-insensitive substring.
var (
	positiveWords = []string{
		"surge", "soar", "jump", "rally", "beat", "record",
		"upgrade", "bullish", "breakout",
	}
	negativeWords = []string{
		"plunge", "drop", "fall", "slump", "miss", "risk",
		"downgrade", "bearish", "lawsuit", "recall",
	}
)

// NewsSentiment tags a headline Bullish, Bearish or Mixed. First matching
// rule wins, checked in the order (positive, negative, default).
func NewsSentiment(title string) Sentiment {
	l := strings.ToLower(title)
	for _, w := range positiveWords {
		if strings.Contains(l, w) {
			return SentimentBullish
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(l, w) {
			return SentimentBearish
		}
	}
	return SentimentMixed
}

// NewsTopic tags a headline with a coarse topic. First match wins in the
// fixed order earn -> ai -> fed/macro -> News. The bare "ai" substring
// matches inside longer words; that quirk is preserved intentionally.
func NewsTopic(title string) string {
	l := strings.ToLower(title)
	switch {
	case strings.Contains(l, "earn"):
		return "Earnings"
	case strings.Contains(l, "ai"):
		return "AI"
	case strings.Contains(l, "fed"), strings.Contains(l, "macro"):
		return "Macro"
	default:
		return "News"
	}
}
