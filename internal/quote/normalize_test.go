package quote

import "testing"

// TestNormalizeTicker tests the ticker spelling normalization applied
// before every provider lookup.
func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ticker passthrough", "AAPL", "AAPL"},
		{"lowercase is uppercased", "aapl", "AAPL"},
		{"whitespace trimmed", "  MSFT ", "MSFT"},
		{"vix mapped to caret", "VIX", "^VIX"},
		{"dollar vix mapped to caret", "$VIX", "^VIX"},
		{"dollar prefix becomes caret", "$SPX", "^SPX"},
		{"existing caret untouched", "^GSPC", "^GSPC"},
		{"empty string untouched", "", ""},
		{"non-ticker with space untouched", "NOT A TICKER", "NOT A TICKER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTicker(tt.input); got != tt.want {
				t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
