// Package refcode generates and parses ambassador referral codes.
//
// Base codes are short uppercase alphanumerics. Custom campaign link codes are
// always "{base}_{suffix}", so the base code of any incoming code is the
// substring before the first underscore.
package refcode

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a random uppercase alphanumeric code of the given length.
func Generate(length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// ParseBase extracts the base ambassador code from a raw referral code.
// "ABC123_SUMMER" -> "ABC123"; "abc123" -> "ABC123". The full normalized code
// is returned alongside, with hasSuffix reporting whether a link suffix was
// present.
func ParseBase(raw string) (base string, full string, hasSuffix bool) {
	full = strings.ToUpper(strings.TrimSpace(raw))
	if idx := strings.Index(full, "_"); idx >= 0 {
		return full[:idx], full, true
	}
	return full, full, false
}

// LinkCode derives a custom campaign link code from the ambassador's base
// code. A campaign name is sanitized to alphanumerics, truncated and
// uppercased; without one the suffix is a base-36 timestamp so repeated calls
// stay unique.
func LinkCode(baseCode, campaignName string, maxSuffixLen int, now time.Time) string {
	base := strings.ToUpper(strings.TrimSpace(baseCode))
	suffix := sanitizeCampaign(campaignName, maxSuffixLen)
	if suffix == "" {
		suffix = strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	}
	return base + "_" + suffix
}

func sanitizeCampaign(name string, maxLen int) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
		if sb.Len() >= maxLen {
			break
		}
	}
	return sb.String()
}
