// =============================================================================
// Payroll File Encoder - Formatting Primitives
// =============================================================================
//
// This package contains the low-level formatting primitives shared by the
// CNAB240 record builders and the eSocial event builders:
//   - Fixed-width padding (left/right) with exact-width guarantees
//   - Positional date layouts (DDMMYYYY, DDMMYY, HHMMSS)
//   - Monetary-to-cents conversion with a pinned rounding rule
//   - Digit extraction for tax IDs and account numbers
//   - ASCII name normalization (diacritic stripping + whitelisting)
//
// WIDTH CONTRACT:
//   Every function that produces a fixed-width value returns a string of
//   exactly the requested width. Overflow truncates, underflow pads. A field
//   that is one byte off would shift every following field in a 240-byte
//   record, so the padding functions never return a wrong-length string.
//
// ROUNDING RULE:
//   Monetary values are converted to integer cents using round-half-away-
//   from-zero (decimal.Round). Encoding 10.005 into a 15-char cents field
//   always produces "000000000001001".
//
// =============================================================================

package format

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// FIXED-WIDTH PADDING
// =============================================================================

// PadLeft pads s on the left with fill until it is exactly width bytes long.
// If s is longer than width, the leftmost bytes are dropped so that the
// least-significant end of a numeric value survives truncation.
func PadLeft(s string, width int, fill byte) string {
	if len(s) >= width {
		return s[len(s)-width:]
	}
	return strings.Repeat(string(fill), width-len(s)) + s
}

// PadRight pads s on the right with fill until it is exactly width bytes
// long. If s is longer than width, the tail is dropped.
func PadRight(s string, width int, fill byte) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(string(fill), width-len(s))
}

// =============================================================================
// POSITIONAL DATE/TIME LAYOUTS
// =============================================================================

// Date renders t as DDMMYYYY (zero-padded).
func Date(t time.Time) string {
	return t.Format("02012006")
}

// ShortDate renders t as DDMMYY (zero-padded).
func ShortDate(t time.Time) string {
	return t.Format("020106")
}

// Time renders t as HHMMSS (zero-padded, 24h).
func Time(t time.Time) string {
	return t.Format("150405")
}

// =============================================================================
// MONETARY FORMATTING
// =============================================================================

// Cents converts a decimal currency amount to integer cents and left-pads
// the result with zeros to width.
//
// The cents value is obtained by multiplying by 100 and rounding half away
// from zero, which is what decimal.Round implements. The rounding rule is
// pinned by tests; changing it silently would corrupt every remittance file.
func Cents(amount decimal.Decimal, width int) string {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0)
	return PadLeft(cents.String(), width, '0')
}

// =============================================================================
// DIGIT EXTRACTION
// =============================================================================

// Digits strips every non-digit character from s. Used for tax IDs and
// account numbers, which arrive from the portal with punctuation
// ("123.456.789-00" becomes "12345678900").
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// =============================================================================
// TEXT NORMALIZATION
// =============================================================================

// Normalize prepares free text for a fixed-width alphanumeric field:
// Unicode-decompose, drop combining marks, uppercase, and keep only
// [A-Z0-9 ]. The bank layout accepts plain ASCII only, so "João" becomes
// "JOAO" and "Ação #1" becomes "ACAO 1".
func Normalize(s string) string {
	// The transformer chain is stateful, so build it per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToUpper(stripped) {
		switch {
		case r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}
