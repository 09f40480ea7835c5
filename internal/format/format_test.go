package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "000123", PadLeft("123", 6, '0'))
	assert.Equal(t, "   abc", PadLeft("abc", 6, ' '))
	assert.Equal(t, "123456", PadLeft("123456", 6, '0'))

	// Overflow keeps the least-significant end.
	assert.Equal(t, "456", PadLeft("123456", 3, '0'))

	assert.Len(t, PadLeft("", 10, '0'), 10)
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc   ", PadRight("abc", 6, ' '))
	assert.Equal(t, "abcdef", PadRight("abcdef", 6, ' '))

	// Overflow keeps the head.
	assert.Equal(t, "abc", PadRight("abcdef", 3, ' '))

	assert.Len(t, PadRight("", 10, ' '), 10)
}

func TestDateLayouts(t *testing.T) {
	moment := time.Date(2026, time.August, 5, 9, 3, 15, 0, time.UTC)

	assert.Equal(t, "05082026", Date(moment))
	assert.Equal(t, "050826", ShortDate(moment))
	assert.Equal(t, "090315", Time(moment))
}

func TestCentsRoundingIsPinned(t *testing.T) {
	// Half away from zero: 10.005 -> 1001 cents, always.
	d := decimal.RequireFromString("10.005")
	assert.Equal(t, "000000000001001", Cents(d, 15))
}

func TestCents(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"1500.50", 15, "000000000150050"},
		{"0.01", 15, "000000000000001"},
		{"0", 15, "000000000000000"},
		{"1234567.89", 18, "000000000123456789"},
		{"2.004", 15, "000000000000200"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Cents(decimal.RequireFromString(c.in), c.width), "amount %s", c.in)
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "12345678900", Digits("123.456.789-00"))
	assert.Equal(t, "00394460000141", Digits("00.394.460/0001-41"))
	assert.Equal(t, "", Digits("no digits here"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "JOAO", Normalize("João"))
	assert.Equal(t, "ACAO 1", Normalize("Ação #1"))
	assert.Equal(t, "MARIA JOSE DA CONCEICAO", Normalize("Maria José da Conceição"))
	assert.Equal(t, "BANCO DO BRASIL SA", Normalize("Banco do Brasil S.A."))
	assert.Equal(t, "", Normalize("****"))
}
