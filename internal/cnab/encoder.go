// =============================================================================
// Payroll File Encoder - CNAB240 Batch Encoder
// =============================================================================
//
// Encode assembles a complete CNAB240 salary remittance from one batch
// aggregate: file header, lot header, one segment A + segment B pair per
// beneficiary, lot trailer and file trailer, CRLF-joined.
//
// ORCHESTRATION CONTRACT:
//   - Exactly one lot per call. Multi-lot batching is an explicit extension
//     point, not something to bolt on here.
//   - Details are emitted in input order, segment A immediately followed by
//     its segment B, with a single monotonically increasing sequence counter
//     shared across both segment kinds (1, 2, 3, ...).
//   - Record types across the file read 0, 1, (3, 3)*, 5, 9.
//   - The function is pure: identical batches (including the generation
//     timestamp) produce byte-identical output.
//
// A batch with no beneficiaries is rejected. An empty lot would still be
// syntactically valid, but the only way the portal produces one is a bug
// upstream, and the bank offers no feedback channel before settlement.
//
// =============================================================================

package cnab

import (
	"fmt"
	"strings"
)

// Encode renders the batch as a single CNAB240 remittance blob of
// 240-character lines joined by CRLF.
func Encode(b Batch) (string, error) {
	if issues := b.Validate(); len(issues) > 0 {
		return "", fmt.Errorf("invalid batch: %w (%d issues total)", issues[0], len(issues))
	}

	lines := make([]string, 0, 4+2*len(b.Payments))
	lines = append(lines, buildFileHeader(b))
	lines = append(lines, buildLotHeader(b))

	seq := 1
	for _, p := range b.Payments {
		lines = append(lines, buildSegmentA(b, p, seq))
		seq++
		lines = append(lines, buildSegmentB(b, p, seq))
		seq++
	}

	lines = append(lines, buildLotTrailer(b))
	lines = append(lines, buildFileTrailer(b))

	return strings.Join(lines, "\r\n"), nil
}
