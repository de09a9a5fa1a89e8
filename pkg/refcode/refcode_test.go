package refcode

import (
	"strings"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := Generate(6)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if len(code) != 6 {
			t.Errorf("Generate length = %d, want 6", len(code))
		}
		if code != strings.ToUpper(code) {
			t.Errorf("Generate produced lowercase: %q", code)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Errorf("Generate produced char outside alphabet: %q", r)
			}
		}
		seen[code] = true
	}
	// 50 random 6-char codes colliding down to a handful would indicate a
	// broken randomness source.
	if len(seen) < 45 {
		t.Errorf("Generate produced too many collisions: %d unique of 50", len(seen))
	}
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantBase   string
		wantFull   string
		wantSuffix bool
	}{
		{"plain code", "ABC123", "ABC123", "ABC123", false},
		{"lowercase normalized", "abc123", "ABC123", "ABC123", false},
		{"campaign link", "ABC123_SUMMER", "ABC123", "ABC123_SUMMER", true},
		{"lowercase link", "abc123_summer", "ABC123", "ABC123_SUMMER", true},
		{"multiple underscores split on first", "ABC123_A_B", "ABC123", "ABC123_A_B", true},
		{"surrounding whitespace", "  ABC123 ", "ABC123", "ABC123", false},
		{"leading underscore gives empty base", "_X", "", "_X", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, full, hasSuffix := ParseBase(tt.raw)
			if base != tt.wantBase {
				t.Errorf("base = %q, want %q", base, tt.wantBase)
			}
			if full != tt.wantFull {
				t.Errorf("full = %q, want %q", full, tt.wantFull)
			}
			if hasSuffix != tt.wantSuffix {
				t.Errorf("hasSuffix = %v, want %v", hasSuffix, tt.wantSuffix)
			}
		})
	}
}

func TestLinkCode(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		base     string
		campaign string
		want     string
	}{
		{"simple campaign", "ABC123", "SUMMER", "ABC123_SUMMER"},
		{"lowercased campaign", "ABC123", "summer", "ABC123_SUMMER"},
		{"strips non alphanumerics", "ABC123", "Summer Sale!", "ABC123_SUMMERSALE"},
		{"truncates to max", "ABC123", "VERYLONGCAMPAIGNNAME", "ABC123_VERYLONGCA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinkCode(tt.base, tt.campaign, 10, now)
			if got != tt.want {
				t.Errorf("LinkCode = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("empty campaign falls back to timestamp", func(t *testing.T) {
		got := LinkCode("ABC123", "", 10, now)
		if !strings.HasPrefix(got, "ABC123_") {
			t.Fatalf("LinkCode = %q, want ABC123_ prefix", got)
		}
		suffix := strings.TrimPrefix(got, "ABC123_")
		if suffix == "" {
			t.Error("timestamp suffix is empty")
		}
		// Different instants must yield different codes.
		other := LinkCode("ABC123", "", 10, now.Add(time.Second))
		if other == got {
			t.Errorf("LinkCode not unique across instants: %q", got)
		}
	})
}
