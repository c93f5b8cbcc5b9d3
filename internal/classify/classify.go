// Package classify maps raw analysis values onto the small set of semantic
// tiers the dashboard colors by. Every function here is pure, total and
// deterministic: any input, including garbage, lands in a defined bucket.
package classify

import "strings"

// Tone is the color severity attached to a rendered value.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneBullish
	ToneBearish
)

// Token returns the color token consumed by display adapters.
func (t Tone) Token() string {
	switch t {
	case ToneBullish:
		return "green"
	case ToneBearish:
		return "red"
	default:
		return "amber"
	}
}

// Consensus buckets the aggregate consensus label by substring containment,
// first match wins, case-sensitive on the source string.
func Consensus(s string) Tone {
	if strings.Contains(s, "Bullish") {
		return ToneBullish
	}
	if strings.Contains(s, "Bearish") {
		return ToneBearish
	}
	return ToneNeutral
}

// ScoreTier is the master-score band.
type ScoreTier int

const (
	ScoreLow  ScoreTier = iota // < 40
	ScoreMid                   // [40, 70)
	ScoreHigh                  // >= 70
)

// MasterScore bands a 0-100 composite value.
func MasterScore(v float64) ScoreTier {
	switch {
	case v >= 70:
		return ScoreHigh
	case v >= 40:
		return ScoreMid
	default:
		return ScoreLow
	}
}

// Label returns the display label for a score band.
func (s ScoreTier) Label() string {
	switch s {
	case ScoreHigh:
		return "High"
	case ScoreLow:
		return "Low"
	default:
		return "Mid"
	}
}

// Tone maps a score band to a color.
func (s ScoreTier) Tone() Tone {
	switch s {
	case ScoreHigh:
		return ToneBullish
	case ScoreLow:
		return ToneBearish
	default:
		return ToneNeutral
	}
}

// RSIZone is the relative-strength-index band.
type RSIZone int

const (
	RSINeutral    RSIZone = iota
	RSIOversold           // < 30, bullish tint
	RSIOverbought         // > 70, bearish tint
)

// RSI bands an RSI reading.
func RSI(v float64) RSIZone {
	switch {
	case v < 30:
		return RSIOversold
	case v > 70:
		return RSIOverbought
	default:
		return RSINeutral
	}
}

// Tone maps an RSI zone to its contrarian tint: oversold reads bullish,
// overbought bearish.
func (z RSIZone) Tone() Tone {
	switch z {
	case RSIOversold:
		return ToneBullish
	case RSIOverbought:
		return ToneBearish
	default:
		return ToneNeutral
	}
}

// Label returns the display label for an RSI zone.
func (z RSIZone) Label() string {
	switch z {
	case RSIOversold:
		return "Oversold"
	case RSIOverbought:
		return "Overbought"
	default:
		return "Neutral"
	}
}

// VolumeLevel is the relative-volume band.
type VolumeLevel int

const (
	VolumeNormal    VolumeLevel = iota
	VolumeElevated              // > 1.2
	VolumeDepressed             // < 0.8
)

// RelVolume bands a relative-volume multiple.
func RelVolume(v float64) VolumeLevel {
	switch {
	case v > 1.2:
		return VolumeElevated
	case v < 0.8:
		return VolumeDepressed
	default:
		return VolumeNormal
	}
}

// Tone maps a volume level to a color.
func (l VolumeLevel) Tone() Tone {
	switch l {
	case VolumeElevated:
		return ToneBullish
	case VolumeDepressed:
		return ToneBearish
	default:
		return ToneNeutral
	}
}

// Label returns the display label for a volume level.
func (l VolumeLevel) Label() string {
	switch l {
	case VolumeElevated:
		return "Elevated"
	case VolumeDepressed:
		return "Depressed"
	default:
		return "Normal"
	}
}

// TrendStrength is the ADX band.
type TrendStrength int

const (
	TrendModerate TrendStrength = iota // [20, 25]
	TrendStrong                        // > 25
	TrendWeak                          // < 20
)

// ADX bands an average directional index reading.
func ADX(v float64) TrendStrength {
	switch {
	case v > 25:
		return TrendStrong
	case v < 20:
		return TrendWeak
	default:
		return TrendModerate
	}
}

// Tone maps trend strength onto the high/mid/low severity palette.
func (s TrendStrength) Tone() Tone {
	switch s {
	case TrendStrong:
		return ToneBullish
	case TrendWeak:
		return ToneBearish
	default:
		return ToneNeutral
	}
}

// Label returns the display label for a trend strength.
func (s TrendStrength) Label() string {
	switch s {
	case TrendStrong:
		return "Strong"
	case TrendWeak:
		return "Weak"
	default:
		return "Moderate"
	}
}

// Squeeze buckets a volatility-squeeze status label. Directional fire
// statuses tint bullish or bearish; a coiling squeeze stays neutral.
func Squeeze(status string) Tone {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "short"):
		return ToneBearish
	case strings.Contains(s, "long") || strings.Contains(s, "fired"):
		return ToneBullish
	default:
		return ToneNeutral
	}
}

// RatingBucket is the severity bucket derived from a persona rating string.
// The string values double as style identifiers, matching the original
// "rating-<token>" convention.
type RatingBucket string

const (
	BucketStrong  RatingBucket = "strong"
	BucketBuy     RatingBucket = "buy"
	BucketHold    RatingBucket = "hold"
	BucketAvoid   RatingBucket = "avoid"
	BucketSell    RatingBucket = "sell"
	BucketNeutral RatingBucket = "neutral"
)

// Rating buckets a rating string ("Strong Buy", "Buy", "Hold", "Avoid",
// "Sell") by its first whitespace-delimited token, lower-cased. Unknown
// tokens land in the neutral bucket.
func Rating(r string) RatingBucket {
	fields := strings.Fields(r)
	if len(fields) == 0 {
		return BucketNeutral
	}
	switch strings.ToLower(fields[0]) {
	case "strong":
		return BucketStrong
	case "buy":
		return BucketBuy
	case "hold":
		return BucketHold
	case "avoid":
		return BucketAvoid
	case "sell":
		return BucketSell
	default:
		return BucketNeutral
	}
}

// Tone maps a rating bucket to a color.
func (b RatingBucket) Tone() Tone {
	switch b {
	case BucketStrong, BucketBuy:
		return ToneBullish
	case BucketAvoid, BucketSell:
		return ToneBearish
	default:
		return ToneNeutral
	}
}

// Bias buckets a free-form directional label (VPA bias, MTF trend) the same
// way Consensus does, but case-insensitively since these arrive in mixed
// casing.
func Bias(s string) Tone {
	l := strings.ToLower(s)
	if strings.Contains(l, "bullish") {
		return ToneBullish
	}
	if strings.Contains(l, "bearish") {
		return ToneBearish
	}
	return ToneNeutral
}
