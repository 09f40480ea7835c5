// =============================================================================
// Payroll File Encoder - CNAB240 Record Builders
// =============================================================================
//
// One builder per record kind. Each builder supplies the field values for
// its layout table in positional order and gets back exactly one 240-byte
// line; blank-class fields take an empty value and always render as spaces.
//
// Missing optional data degrades into padding rather than failing: an empty
// check digit becomes a single space, an empty agreement code becomes a
// space-filled column. That matches what the receiving bank's ingestion
// tolerates on remittance. Structural problems are rejected earlier, by
// Batch.Validate.
//
// =============================================================================

package cnab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sigrhx/payfile/internal/format"
)

// =============================================================================
// LAYOUT CONSTANTS
// =============================================================================

const (
	fileLot     = "0000" // lot-of-service placeholder in the file header
	paymentLot  = "0001" // the single lot this encoder emits
	closingLot  = "9999" // lot marker in the file trailer
	currencyBRL = "BRL"

	companyIDCNPJ = "2" // originator tax-ID kind
	payeeIDCPF    = "1" // beneficiary tax-ID kind

	fileKindRemittance = "1"
	operationCredit    = "C"
	serviceSalary      = "30" // pagamento de salários
	methodCredit       = "01" // crédito em conta corrente
	fileLayoutVersion  = "103"
	lotLayoutVersion   = "046"

	movementInclusion = "0"
	movementCodeNone  = "00"
	clearingDefault   = "000"
	noticeNone        = "0"
)

// Beneficiary address defaults for segment B. The portal does not track
// residential addresses for payment purposes, and the bank disregards these
// columns for salary credits, so fixed placeholders are written.
const (
	defaultCity         = "BRASILIA"
	defaultState        = "DF"
	defaultPostalCode   = "70000"
	defaultPostalSuffix = "000"
)

// =============================================================================
// RECORD ASSEMBLY
// =============================================================================

// buildRecord renders values against a layout table. The value slice must
// match the table field for field; a mismatch is a programming error, not
// an input error, and panics with the layout name.
func buildRecord(l recordLayout, values []string) string {
	if len(values) != len(l.fields) {
		panic(fmt.Sprintf("cnab: %s: got %d values for %d fields", l.name, len(values), len(l.fields)))
	}

	var b strings.Builder
	b.Grow(recordLen)
	for i, f := range l.fields {
		switch f.fill {
		case alpha:
			b.WriteString(format.PadRight(values[i], f.width, ' '))
		case numeric:
			b.WriteString(format.PadLeft(values[i], f.width, '0'))
		case blank:
			b.WriteString(strings.Repeat(" ", f.width))
		}
	}

	line := b.String()
	if len(line) != recordLen {
		panic(fmt.Sprintf("cnab: %s rendered %d bytes, want %d", l.name, len(line), recordLen))
	}
	return line
}

// =============================================================================
// HEADER BUILDERS
// =============================================================================

// buildFileHeader renders record type 0.
func buildFileHeader(b Batch) string {
	o := b.Originator
	return buildRecord(fileHeaderLayout, []string{
		format.Digits(o.BankCode),
		fileLot,
		"0",
		"", // febraban1
		companyIDCNPJ,
		format.Digits(o.TaxID),
		o.Agreement,
		format.Digits(o.Branch),
		o.BranchCheck,
		format.Digits(o.Account),
		o.AccountCheck,
		"", // branch/account check digit not required on remittance
		format.Normalize(o.Name),
		format.Normalize(o.BankName),
		"", // febraban2
		fileKindRemittance,
		format.Date(b.GeneratedAt),
		format.Time(b.GeneratedAt),
		strconv.Itoa(b.Sequence),
		fileLayoutVersion,
		"0", // density
		"",  // bankReserved
		"",  // companyReserved
		"",  // febraban3
	})
}

// buildLotHeader renders record type 1 for the single payment lot.
func buildLotHeader(b Batch) string {
	o := b.Originator
	return buildRecord(lotHeaderLayout, []string{
		format.Digits(o.BankCode),
		paymentLot,
		"1",
		operationCredit,
		serviceSalary,
		methodCredit,
		lotLayoutVersion,
		"", // febraban1
		companyIDCNPJ,
		format.Digits(o.TaxID),
		o.Agreement,
		format.Digits(o.Branch),
		o.BranchCheck,
		format.Digits(o.Account),
		o.AccountCheck,
		"",
		format.Normalize(o.Name),
		"",  // message
		"",  // street
		"0", // number
		"",  // complement
		"",  // city
		"0", // postalCode
		"0", // postalCodeSuffix
		o.State,
		"", // febraban2
		"", // occurrences
	})
}

// =============================================================================
// DETAIL BUILDERS
// =============================================================================

// buildSegmentA renders the payment half of a detail pair. seq is the
// 1-based detail sequence number shared with segment B.
func buildSegmentA(b Batch, p PaymentInstruction, seq int) string {
	amount := format.Cents(p.Amount, 15)
	return buildRecord(segmentALayout, []string{
		format.Digits(b.Originator.BankCode),
		paymentLot,
		"3",
		strconv.Itoa(seq),
		"A",
		movementInclusion,
		movementCodeNone,
		clearingDefault,
		format.Digits(p.BankCode),
		format.Digits(p.Branch),
		p.BranchCheck,
		format.Digits(p.Account),
		p.AccountCheck,
		"",
		format.Normalize(p.Name),
		p.PaymentID,
		format.Date(p.CreditDate),
		currencyBRL,
		"0", // currency quantity, unused for BRL credits
		amount,
		"", // bank reference, assigned on return
		format.Date(p.CreditDate),
		amount,
		"", // information
		"", // docPurpose
		"", // tedPurpose
		"", // complementPurpose
		"", // febraban
		noticeNone,
		"", // occurrences
	})
}

// buildSegmentB renders the identity half of a detail pair.
func buildSegmentB(b Batch, p PaymentInstruction, seq int) string {
	return buildRecord(segmentBLayout, []string{
		format.Digits(b.Originator.BankCode),
		paymentLot,
		"3",
		strconv.Itoa(seq),
		"B",
		"", // febraban1
		payeeIDCPF,
		format.Digits(p.TaxID),
		"",  // street
		"0", // number
		"",  // complement
		"",  // district
		defaultCity,
		defaultPostalCode,
		defaultPostalSuffix,
		defaultState,
		format.Date(p.CreditDate),
		format.Cents(p.Amount, 15),
		"0", // rebate
		"0", // discount
		"0", // interest
		"0", // fine
		"",  // document reference
		"",  // febraban2
	})
}

// =============================================================================
// TRAILER BUILDERS
// =============================================================================

// buildLotTrailer renders record type 5. The declared record count is the
// number of detail records in the lot (two per beneficiary); the value
// total is the sum of all payment amounts in cents.
func buildLotTrailer(b Batch) string {
	return buildRecord(lotTrailerLayout, []string{
		format.Digits(b.Originator.BankCode),
		paymentLot,
		"5",
		"",
		strconv.Itoa(2 * len(b.Payments)),
		format.Cents(b.Total(), 18),
		"0", // currency quantity total
		"0", // debit notice number
		"",
		"",
	})
}

// buildFileTrailer renders record type 9. The total record count covers the
// file header, the full lot block (header + details + trailer) and the file
// trailer itself.
func buildFileTrailer(b Batch) string {
	return buildRecord(fileTrailerLayout, []string{
		format.Digits(b.Originator.BankCode),
		closingLot,
		"9",
		"",
		"1", // single lot per file
		strconv.Itoa(4 + 2*len(b.Payments)),
		"0", // reconciliation lots
		"",
	})
}
