package core_test

import (
	"context"
	"testing"

	"ua-analyzer/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		userAgent string
		expected  core.Decision
	}{
		{"safari", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15", core.Block},
		{"firefox", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0", core.Allow},
		{"curl", "curl/7.64.1", core.Unknown},
		{"empty", "", core.Unknown},
		{"firefox before safari", "Mozilla/5.0 Firefox/89.0 Safari/605.1.15", core.Block},
		{"safari before firefox", "Safari Firefox", core.Block},
		{"lowercase safari", "safari", core.Unknown},
		{"uppercase firefox", "FIREFOX", core.Unknown},
		{"non-ascii", "Mözilla/5.0 \xff\xfe Fïrefox", core.Unknown},
		{"non-ascii with token", "日本語 Firefox/1.0", core.Allow},
		{"token only", "Safari", core.Block},
		{"split token", "Safa ri Fire fox", core.Unknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, core.Classify(tc.userAgent))
		})
	}
}

func TestClassifyIsTotalAndIdempotent(t *testing.T) {
	inputs := []string{"", " ", "\x00", "Safari", "Firefox", "Opera/9.80", "éè", string([]byte{0xc3, 0x28})}
	valid := []core.Decision{core.Block, core.Allow, core.Unknown}

	for _, input := range inputs {
		first := core.Classify(input)
		assert.Contains(t, valid, first)
		assert.Equal(t, first, core.Classify(input))
	}
}

func TestRuleClassifier(t *testing.T) {
	var classifier core.Classifier = core.RuleClassifier{}
	defer classifier.Release()

	decision, err := classifier.Classify(context.Background(), "Mozilla/5.0 ... Firefox/89.0")
	require.NoError(t, err)
	assert.Equal(t, core.Allow, decision)
}

func TestParseDecision(t *testing.T) {
	for _, label := range []string{"block", "allow", "unknown"} {
		d, err := core.ParseDecision(label)
		require.NoError(t, err)
		assert.Equal(t, core.Decision(label), d)
	}

	_, err := core.ParseDecision("Block")
	assert.Error(t, err)

	_, err = core.ParseDecision("")
	assert.Error(t, err)
}
