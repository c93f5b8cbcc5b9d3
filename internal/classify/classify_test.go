package classify

import "testing"

func TestConsensus(t *testing.T) {
	cases := []struct {
		in   string
		want Tone
	}{
		{"Strong Bullish Consensus", ToneBullish},
		{"Bullish Momentum", ToneBullish},
		{"Bearish Consensus", ToneBearish},
		{"Strong Bearish Consensus", ToneBearish},
		{"Neutral / Mixed Signals", ToneNeutral},
		{"bullish", ToneNeutral}, // case-sensitive by contract
		{"", ToneNeutral},
	}
	for _, tc := range cases {
		if got := Consensus(tc.in); got != tc.want {
			t.Errorf("Consensus(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMasterScoreBoundaries(t *testing.T) {
	cases := []struct {
		in   float64
		want ScoreTier
	}{
		{100, ScoreHigh},
		{70, ScoreHigh}, // inclusive
		{69.99, ScoreMid},
		{40, ScoreMid}, // inclusive
		{39.99, ScoreLow},
		{0, ScoreLow},
	}
	for _, tc := range cases {
		if got := MasterScore(tc.in); got != tc.want {
			t.Errorf("MasterScore(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRSIZones(t *testing.T) {
	cases := []struct {
		in   float64
		zone RSIZone
		tone Tone
	}{
		{25, RSIOversold, ToneBullish},
		{30, RSINeutral, ToneNeutral}, // boundary is exclusive
		{50, RSINeutral, ToneNeutral},
		{70, RSINeutral, ToneNeutral},
		{75, RSIOverbought, ToneBearish},
	}
	for _, tc := range cases {
		z := RSI(tc.in)
		if z != tc.zone || z.Tone() != tc.tone {
			t.Errorf("RSI(%v) = %v/%v, want %v/%v", tc.in, z, z.Tone(), tc.zone, tc.tone)
		}
	}
}

func TestRelVolume(t *testing.T) {
	cases := []struct {
		in   float64
		want VolumeLevel
	}{
		{1.3, VolumeElevated},
		{1.2, VolumeNormal},
		{1.0, VolumeNormal},
		{0.8, VolumeNormal},
		{0.7, VolumeDepressed},
	}
	for _, tc := range cases {
		if got := RelVolume(tc.in); got != tc.want {
			t.Errorf("RelVolume(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestADX(t *testing.T) {
	cases := []struct {
		in   float64
		want TrendStrength
	}{
		{30, TrendStrong},
		{25, TrendModerate},
		{20, TrendModerate},
		{15, TrendWeak},
	}
	for _, tc := range cases {
		if got := ADX(tc.in); got != tc.want {
			t.Errorf("ADX(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRatingBuckets(t *testing.T) {
	cases := []struct {
		in     string
		bucket RatingBucket
		tone   Tone
	}{
		{"Strong Buy", BucketStrong, ToneBullish},
		{"Buy", BucketBuy, ToneBullish},
		{"Buy the Dip", BucketBuy, ToneBullish},
		{"Hold", BucketHold, ToneNeutral},
		{"Avoid", BucketAvoid, ToneBearish},
		{"Sell", BucketSell, ToneBearish},
		{"Accumulate", BucketNeutral, ToneNeutral}, // unknown token falls back
		{"", BucketNeutral, ToneNeutral},
	}
	for _, tc := range cases {
		b := Rating(tc.in)
		if b != tc.bucket || b.Tone() != tc.tone {
			t.Errorf("Rating(%q) = %v/%v, want %v/%v", tc.in, b, b.Tone(), tc.bucket, tc.tone)
		}
	}
}

// Classifiers must be pure: the same input always yields the same bucket.
func TestClassifierIdempotence(t *testing.T) {
	for i := 0; i < 3; i++ {
		if Consensus("Bullish Momentum") != ToneBullish {
			t.Fatal("Consensus not stable across calls")
		}
		if MasterScore(82) != ScoreHigh {
			t.Fatal("MasterScore not stable across calls")
		}
		if Rating("Strong Buy") != BucketStrong {
			t.Fatal("Rating not stable across calls")
		}
	}
}

func TestSqueeze(t *testing.T) {
	cases := []struct {
		in   string
		want Tone
	}{
		{"Fired Long", ToneBullish},
		{"Fired", ToneBullish},
		{"Fired Short", ToneBearish},
		{"Squeeze Active", ToneNeutral},
		{"", ToneNeutral},
	}
	for _, tc := range cases {
		if got := Squeeze(tc.in); got != tc.want {
			t.Errorf("Squeeze(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBias(t *testing.T) {
	if Bias("bullish absorption") != ToneBullish {
		t.Error("lowercase bullish bias should read bullish")
	}
	if Bias("Bearish Distribution") != ToneBearish {
		t.Error("bearish bias should read bearish")
	}
	if Bias("balanced") != ToneNeutral {
		t.Error("unknown bias should read neutral")
	}
}
