package cnab

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBatch builds the canonical single-beneficiary batch used across the
// encoder tests: bank 001, one payment of 1500.50, sequence 1.
func testBatch() Batch {
	return Batch{
		Originator: OriginatorAccount{
			TaxID:        "00.394.460/0001-41",
			Name:         "Secretaria de Administração",
			BankCode:     "001",
			BankName:     "Banco do Brasil S.A.",
			Branch:       "1234",
			BranchCheck:  "5",
			Account:      "987654",
			AccountCheck: "3",
			Agreement:    "123456",
			State:        "DF",
		},
		Payments: []PaymentInstruction{
			{
				Name:         "João da Silva",
				TaxID:        "123.456.789-00",
				BankCode:     "001",
				Branch:       "4321",
				BranchCheck:  "0",
				Account:      "55667",
				AccountCheck: "8",
				Kind:         Checking,
				Amount:       decimal.RequireFromString("1500.50"),
				CreditDate:   time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
				PaymentID:    "PAY00000001",
			},
		},
		Sequence:    1,
		GeneratedAt: time.Date(2026, time.August, 25, 14, 30, 0, 0, time.UTC),
	}
}

// extraPayment returns an additional instruction for multi-beneficiary tests.
func extraPayment(name, cpf, amount string) PaymentInstruction {
	return PaymentInstruction{
		Name:         name,
		TaxID:        cpf,
		BankCode:     "104",
		Branch:       "0001",
		Account:      "12345",
		AccountCheck: "6",
		Kind:         Savings,
		Amount:       decimal.RequireFromString(amount),
		CreditDate:   time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
		PaymentID:    "PAY00000002",
	}
}

// =============================================================================
// LAYOUT PROPERTIES
// =============================================================================

func TestLayoutsSumTo240(t *testing.T) {
	for _, l := range allLayouts {
		assert.Equalf(t, recordLen, l.width(), "layout %s", l.name)
	}
}

func TestEveryLineIs240Chars(t *testing.T) {
	blob, err := Encode(testBatch())
	require.NoError(t, err)

	for i, line := range strings.Split(blob, "\r\n") {
		assert.Lenf(t, line, recordLen, "line %d", i+1)
	}
}

// =============================================================================
// RECORD SEQUENCE
// =============================================================================

func TestRecordTypeSequence(t *testing.T) {
	b := testBatch()
	b.Payments = append(b.Payments,
		extraPayment("Maria Souza", "987.654.321-00", "2200.00"),
		extraPayment("Pedro Alves", "111.222.333-44", "1800.75"),
	)

	blob, err := Encode(b)
	require.NoError(t, err)

	var types []byte
	for _, line := range strings.Split(blob, "\r\n") {
		types = append(types, line[7])
	}
	assert.Equal(t, "0133333359", string(types))
}

func TestDetailSequenceCounterIsSharedAndGapless(t *testing.T) {
	b := testBatch()
	b.Payments = append(b.Payments, extraPayment("Maria Souza", "987.654.321-00", "2200.00"))

	blob, err := Encode(b)
	require.NoError(t, err)
	lines := strings.Split(blob, "\r\n")

	// Details are lines 3..6 (segments A,B,A,B).
	assert.Equal(t, "00001", lines[2][8:13])
	assert.Equal(t, "00002", lines[3][8:13])
	assert.Equal(t, "00003", lines[4][8:13])
	assert.Equal(t, "00004", lines[5][8:13])

	assert.Equal(t, byte('A'), lines[2][13])
	assert.Equal(t, byte('B'), lines[3][13])
	assert.Equal(t, byte('A'), lines[4][13])
	assert.Equal(t, byte('B'), lines[5][13])
}

// =============================================================================
// TRAILER TOTALS
// =============================================================================

func TestTrailerCountsAndTotals(t *testing.T) {
	b := testBatch()
	b.Payments = append(b.Payments,
		extraPayment("Maria Souza", "987.654.321-00", "2200.00"),
		extraPayment("Pedro Alves", "111.222.333-44", "1800.75"),
	)

	blob, err := Encode(b)
	require.NoError(t, err)
	lines := strings.Split(blob, "\r\n")
	require.Len(t, lines, 10) // header, lot header, 3x(A+B), lot trailer, trailer

	lotTrailer := lines[8]
	assert.Equal(t, "000006", lotTrailer[17:23]) // 2 x 3 beneficiaries
	// 1500.50 + 2200.00 + 1800.75 = 5501.25
	assert.Equal(t, "000000000000550125", lotTrailer[23:41])

	fileTrailer := lines[9]
	assert.Equal(t, "000001", fileTrailer[17:23]) // single lot
	assert.Equal(t, "000010", fileTrailer[23:29]) // 1 + (2 + 2x3) + 1
}

// =============================================================================
// END-TO-END SCENARIO
// =============================================================================

func TestSingleBeneficiaryFile(t *testing.T) {
	blob, err := Encode(testBatch())
	require.NoError(t, err)

	lines := strings.Split(blob, "\r\n")
	require.Len(t, lines, 6)

	fileHeader := lines[0]
	assert.Equal(t, "001", fileHeader[0:3])
	assert.Equal(t, byte('0'), fileHeader[7])
	assert.Equal(t, "25082026", fileHeader[143:151]) // generation date
	assert.Equal(t, "143000", fileHeader[151:157])   // generation time

	segmentA := lines[2]
	assert.Equal(t, "28082026", segmentA[93:101])        // credit date
	assert.Equal(t, "BRL", segmentA[101:104])            // currency
	assert.Equal(t, "000000000150050", segmentA[119:134]) // amount in cents
	assert.Equal(t, "JOAO DA SILVA", strings.TrimRight(segmentA[43:73], " "))

	segmentB := lines[3]
	assert.Equal(t, byte('1'), segmentB[17])            // CPF kind
	assert.Equal(t, "00012345678900", segmentB[18:32])  // zero-padded CPF
	assert.Equal(t, "000000000150050", segmentB[135:150])

	lotTrailer := lines[4]
	assert.Equal(t, "000002", lotTrailer[17:23])
	assert.Equal(t, "000000000000150050", lotTrailer[23:41])

	fileTrailer := lines[5]
	assert.Equal(t, "000006", fileTrailer[23:29])
}

// =============================================================================
// DETERMINISM AND DEGRADATION
// =============================================================================

func TestEncodeIsDeterministic(t *testing.T) {
	first, err := Encode(testBatch())
	require.NoError(t, err)

	second, err := Encode(testBatch())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMissingCheckDigitDegradesToBlank(t *testing.T) {
	b := testBatch()
	b.Payments[0].BranchCheck = ""

	blob, err := Encode(b)
	require.NoError(t, err)

	segmentA := strings.Split(blob, "\r\n")[2]
	assert.Equal(t, byte(' '), segmentA[28]) // branch check digit column
}

func TestEmptyBatchIsRejected(t *testing.T) {
	b := testBatch()
	b.Payments = nil

	_, err := Encode(b)
	assert.Error(t, err)
}

func TestValidateCollectsAllIssues(t *testing.T) {
	b := testBatch()
	b.Payments[0].TaxID = ""
	b.Payments[0].Amount = decimal.Zero
	b.Originator.BankCode = ""

	issues := b.Validate()
	assert.Len(t, issues, 3)
}
