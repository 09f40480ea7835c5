// =============================================================================
// Payroll File Encoder - CNAB240 Record Layouts
// =============================================================================
//
// This file defines the FEBRABAN CNAB240 record layouts as tables of field
// descriptors rather than freeform string concatenation. Each record is a
// sequence of (name, width, fill) entries; the widths of every table are
// checked to sum to exactly 240 when the package is loaded, so a field
// added or resized without a compensating change fails immediately instead
// of silently shifting every following column.
//
// FILL CLASSES (same taxonomy the SSA EFW2 layouts use):
//   alpha   - left-justified, space-filled, truncated on the right
//   numeric - right-justified, zero-filled, truncated on the left
//   blank   - always spaces; the value is ignored
//
// The blank check-digit columns (branch/account verification digits the
// bank does not require on remittance) are declared alpha with an empty
// value so they render as a single space. No checksum is computed for them;
// whether the receiving bank wants one is a question for the bank's own
// layout addendum, not something to invent here.
//
// =============================================================================

package cnab

import "fmt"

// recordLen is the fixed length of every CNAB240 record.
const recordLen = 240

// =============================================================================
// FIELD DESCRIPTORS
// =============================================================================

type fillClass int

const (
	alpha fillClass = iota
	numeric
	blank
)

type fieldSpec struct {
	name  string
	width int
	fill  fillClass
}

type recordLayout struct {
	name   string
	fields []fieldSpec
}

func (l recordLayout) width() int {
	total := 0
	for _, f := range l.fields {
		total += f.width
	}
	return total
}

// =============================================================================
// RECORD LAYOUTS
// =============================================================================

// fileHeaderLayout is record type 0, one per file.
var fileHeaderLayout = recordLayout{name: "file header", fields: []fieldSpec{
	{"bankCode", 3, numeric},           // 001-003
	{"lot", 4, numeric},                // 004-007 "0000"
	{"recordType", 1, numeric},         // 008     "0"
	{"febraban1", 9, blank},            // 009-017
	{"companyIDKind", 1, numeric},      // 018     2 = CNPJ
	{"companyTaxID", 14, numeric},      // 019-032
	{"agreement", 20, alpha},           // 033-052
	{"branch", 5, numeric},             // 053-057
	{"branchCheck", 1, alpha},          // 058
	{"account", 12, numeric},           // 059-070
	{"accountCheck", 1, alpha},         // 071
	{"branchAccountCheck", 1, alpha},   // 072
	{"companyName", 30, alpha},         // 073-102
	{"bankName", 30, alpha},            // 103-132
	{"febraban2", 10, blank},           // 133-142
	{"fileKind", 1, numeric},           // 143     1 = remittance
	{"generationDate", 8, numeric},     // 144-151 DDMMYYYY
	{"generationTime", 6, numeric},     // 152-157 HHMMSS
	{"sequence", 6, numeric},           // 158-163 NSA
	{"layoutVersion", 3, numeric},      // 164-166
	{"density", 5, numeric},            // 167-171
	{"bankReserved", 20, blank},        // 172-191
	{"companyReserved", 20, blank},     // 192-211
	{"febraban3", 29, blank},           // 212-240
}}

// lotHeaderLayout is record type 1, one per lot.
var lotHeaderLayout = recordLayout{name: "lot header", fields: []fieldSpec{
	{"bankCode", 3, numeric},         // 001-003
	{"lot", 4, numeric},              // 004-007 "0001"
	{"recordType", 1, numeric},       // 008     "1"
	{"operation", 1, alpha},          // 009     "C" = credit
	{"serviceKind", 2, numeric},      // 010-011 30 = salary payment
	{"paymentMethod", 2, numeric},    // 012-013 01 = account credit
	{"layoutVersion", 3, numeric},    // 014-016
	{"febraban1", 1, blank},          // 017
	{"companyIDKind", 1, numeric},    // 018
	{"companyTaxID", 14, numeric},    // 019-032
	{"agreement", 20, alpha},         // 033-052
	{"branch", 5, numeric},           // 053-057
	{"branchCheck", 1, alpha},        // 058
	{"account", 12, numeric},         // 059-070
	{"accountCheck", 1, alpha},       // 071
	{"branchAccountCheck", 1, alpha}, // 072
	{"companyName", 30, alpha},       // 073-102
	{"message", 40, blank},           // 103-142
	{"street", 30, blank},            // 143-172
	{"number", 5, numeric},           // 173-177
	{"complement", 15, blank},        // 178-192
	{"city", 20, blank},              // 193-212
	{"postalCode", 5, numeric},       // 213-217
	{"postalCodeSuffix", 3, numeric}, // 218-220
	{"state", 2, alpha},              // 221-222
	{"febraban2", 16, blank},         // 223-238
	{"occurrences", 2, blank},        // 239-240
}}

// segmentALayout is the payment-data half of a detail pair.
var segmentALayout = recordLayout{name: "segment A", fields: []fieldSpec{
	{"bankCode", 3, numeric},              // 001-003
	{"lot", 4, numeric},                   // 004-007
	{"recordType", 1, numeric},            // 008     "3"
	{"sequence", 5, numeric},              // 009-013
	{"segment", 1, alpha},                 // 014     "A"
	{"movementType", 1, numeric},          // 015     0 = inclusion
	{"movementCode", 2, numeric},          // 016-017
	{"clearing", 3, numeric},              // 018-020
	{"payeeBank", 3, numeric},             // 021-023
	{"payeeBranch", 5, numeric},           // 024-028
	{"payeeBranchCheck", 1, alpha},        // 029
	{"payeeAccount", 12, numeric},         // 030-041
	{"payeeAccountCheck", 1, alpha},       // 042
	{"payeeBranchAccountCheck", 1, alpha}, // 043
	{"payeeName", 30, alpha},              // 044-073
	{"paymentID", 20, alpha},              // 074-093
	{"creditDate", 8, numeric},            // 094-101 DDMMYYYY
	{"currency", 3, alpha},                // 102-104 "BRL"
	{"currencyQty", 15, numeric},          // 105-119
	{"amount", 15, numeric},               // 120-134 cents
	{"bankReference", 20, alpha},          // 135-154
	{"effectiveDate", 8, numeric},         // 155-162
	{"effectiveAmount", 15, numeric},      // 163-177
	{"information", 40, blank},            // 178-217
	{"docPurpose", 2, blank},              // 218-219
	{"tedPurpose", 5, blank},              // 220-224
	{"complementPurpose", 2, blank},       // 225-226
	{"febraban", 3, blank},                // 227-229
	{"notice", 1, numeric},                // 230
	{"occurrences", 10, blank},            // 231-240
}}

// segmentBLayout is the beneficiary-identity half of a detail pair.
var segmentBLayout = recordLayout{name: "segment B", fields: []fieldSpec{
	{"bankCode", 3, numeric},          // 001-003
	{"lot", 4, numeric},               // 004-007
	{"recordType", 1, numeric},        // 008     "3"
	{"sequence", 5, numeric},          // 009-013
	{"segment", 1, alpha},             // 014     "B"
	{"febraban1", 3, blank},           // 015-017
	{"payeeIDKind", 1, numeric},       // 018     1 = CPF
	{"payeeTaxID", 14, numeric},       // 019-032
	{"street", 30, alpha},             // 033-062
	{"number", 5, numeric},            // 063-067
	{"complement", 15, alpha},         // 068-082
	{"district", 15, alpha},           // 083-097
	{"city", 20, alpha},               // 098-117
	{"postalCode", 5, numeric},        // 118-122
	{"postalCodeSuffix", 3, numeric},  // 123-125
	{"state", 2, alpha},               // 126-127
	{"dueDate", 8, numeric},           // 128-135
	{"amount", 15, numeric},           // 136-150 cents
	{"rebate", 15, numeric},           // 151-165
	{"discount", 15, numeric},         // 166-180
	{"interest", 15, numeric},         // 181-195
	{"fine", 15, numeric},             // 196-210
	{"documentReference", 15, alpha},  // 211-225
	{"febraban2", 15, blank},          // 226-240
}}

// lotTrailerLayout is record type 5, one per lot.
var lotTrailerLayout = recordLayout{name: "lot trailer", fields: []fieldSpec{
	{"bankCode", 3, numeric},           // 001-003
	{"lot", 4, numeric},                // 004-007
	{"recordType", 1, numeric},         // 008     "5"
	{"febraban1", 9, blank},            // 009-017
	{"recordCount", 6, numeric},        // 018-023
	{"valueTotal", 18, numeric},        // 024-041 cents
	{"currencyQtyTotal", 18, numeric},  // 042-059
	{"debitNoticeNumber", 6, numeric},  // 060-065
	{"febraban2", 165, blank},          // 066-230
	{"occurrences", 10, blank},         // 231-240
}}

// fileTrailerLayout is record type 9, one per file.
var fileTrailerLayout = recordLayout{name: "file trailer", fields: []fieldSpec{
	{"bankCode", 3, numeric},            // 001-003
	{"lot", 4, numeric},                 // 004-007 "9999"
	{"recordType", 1, numeric},          // 008     "9"
	{"febraban1", 9, blank},             // 009-017
	{"lotCount", 6, numeric},            // 018-023
	{"recordCount", 6, numeric},         // 024-029
	{"reconciliationLots", 6, numeric},  // 030-035
	{"febraban2", 205, blank},           // 036-240
}}

var allLayouts = []recordLayout{
	fileHeaderLayout,
	lotHeaderLayout,
	segmentALayout,
	segmentBLayout,
	lotTrailerLayout,
	fileTrailerLayout,
}

// init guards against width drift: a layout that does not sum to 240 is a
// programming error and must not survive package load.
func init() {
	for _, l := range allLayouts {
		if w := l.width(); w != recordLen {
			panic(fmt.Sprintf("cnab: %s layout is %d bytes, want %d", l.name, w, recordLen))
		}
	}
}
