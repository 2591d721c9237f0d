package praytimes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		isMinutes bool
		value     float64
	}{
		{"bare angle", "18.5", false, 18.5},
		{"integer angle", "15", false, 15},
		{"minute offset", "90 min", true, 90},
		{"negative minutes", "-5 min", true, -5},
		{"fractional minutes", "4.5 min", true, 4.5},
		{"signed angle", "+17.7", false, 17.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseRule(tt.input)
			assert.Equal(t, tt.isMinutes, r.IsMinutes())
			assert.Equal(t, tt.value, r.Value())
		})
	}
}

func TestParseRuleMalformed(t *testing.T) {
	// Malformed rule strings coerce to a NaN angle and propagate as
	// undefined times downstream; they are not an error.
	for _, s := range []string{"", "garbage", "min", "min 90", "--"} {
		r := ParseRule(s)
		assert.True(t, math.IsNaN(r.Value()), "ParseRule(%q) value should be NaN", s)
	}
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "18.5", Angle(18.5).String())
	assert.Equal(t, "90 min", Minutes(90).String())
	assert.Equal(t, "0 min", Minutes(0).String())
}

func TestParseAsrRule(t *testing.T) {
	assert.Equal(t, AsrStandard, ParseAsrRule("Standard"))
	assert.Equal(t, AsrHanafi, ParseAsrRule("Hanafi"))
	assert.Equal(t, Shadow(1.5), ParseAsrRule("1.5"))
	assert.True(t, math.IsNaN(float64(ParseAsrRule("Maliki"))))
}
