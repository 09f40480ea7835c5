// =============================================================================
// Payroll File Encoder - Payroll Spreadsheet Parser
// =============================================================================
//
// This module reads the payroll run export the portal hands to the back
// office: one XLSX sheet with one beneficiary payment per row. The parsed
// rows become the CNAB240 payment instructions.
//
// EXPECTED COLUMNS (header row, matched by normalized name):
//   | NOME | CPF | BANCO | AGENCIA | DV AGENCIA | CONTA | DV CONTA |
//   | TIPO CONTA | VALOR | DATA CREDITO | IDENTIFICADOR |
//
//   - TIPO CONTA: "CORRENTE" or "POUPANCA" (defaults to CORRENTE)
//   - VALOR: decimal amount; both "1234.56" and "1234,56" are accepted
//   - DATA CREDITO: DD/MM/YYYY
//   - IDENTIFICADOR: optional; a UUID is generated when the cell is empty
//
// Column order does not matter; the header row is located by name so the
// portal export can gain columns without breaking the parser.
//
// =============================================================================

package xlsxinput

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sigrhx/payfile/internal/cnab"
	"github.com/sigrhx/payfile/internal/format"
)

// =============================================================================
// COLUMN NAMES
// =============================================================================

// Header names after format.Normalize, so accents and casing in the export
// do not matter.
const (
	colName         = "NOME"
	colTaxID        = "CPF"
	colBank         = "BANCO"
	colBranch       = "AGENCIA"
	colBranchCheck  = "DV AGENCIA"
	colAccount      = "CONTA"
	colAccountCheck = "DV CONTA"
	colKind         = "TIPO CONTA"
	colAmount       = "VALOR"
	colCreditDate   = "DATA CREDITO"
	colPaymentID    = "IDENTIFICADOR"
)

// requiredColumns must all be present in the header row.
var requiredColumns = []string{
	colName, colTaxID, colBank, colBranch, colAccount, colAmount, colCreditDate,
}

// creditDateLayout is the portal's date format.
const creditDateLayout = "02/01/2006"

// =============================================================================
// PARSING
// =============================================================================

// Parse reads the payroll sheet at path and returns one payment instruction
// per data row. Rows that are entirely empty are skipped.
func Parse(path string) ([]cnab.PaymentInstruction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open payroll sheet: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("payroll file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("payroll sheet %q is empty", sheetName)
	}

	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	var payments []cnab.PaymentInstruction
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}

		p, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}

// mapHeader locates each expected column by normalized header name.
func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, cell := range header {
		columns[format.Normalize(cell)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("payroll sheet is missing column %q", name)
		}
	}
	return columns, nil
}

// parseRow builds one payment instruction from a data row.
func parseRow(row []string, columns map[string]int) (cnab.PaymentInstruction, error) {
	amount, err := parseAmount(cell(row, columns, colAmount))
	if err != nil {
		return cnab.PaymentInstruction{}, fmt.Errorf("column %s: %w", colAmount, err)
	}

	creditDate, err := time.Parse(creditDateLayout, cell(row, columns, colCreditDate))
	if err != nil {
		return cnab.PaymentInstruction{}, fmt.Errorf("column %s: %w", colCreditDate, err)
	}

	paymentID := cell(row, columns, colPaymentID)
	if paymentID == "" {
		// The identifier is echoed back by the bank, so every row needs
		// one even when the portal left the cell blank.
		paymentID = uuid.New().String()[:20]
	}

	return cnab.PaymentInstruction{
		Name:         cell(row, columns, colName),
		TaxID:        cell(row, columns, colTaxID),
		BankCode:     cell(row, columns, colBank),
		Branch:       cell(row, columns, colBranch),
		BranchCheck:  cell(row, columns, colBranchCheck),
		Account:      cell(row, columns, colAccount),
		AccountCheck: cell(row, columns, colAccountCheck),
		Kind:         parseKind(cell(row, columns, colKind)),
		Amount:       amount,
		CreditDate:   creditDate,
		PaymentID:    paymentID,
	}, nil
}

// =============================================================================
// CELL HELPERS
// =============================================================================

// cell returns the trimmed value of a named column, or "" when the row is
// shorter than the column index (excelize trims trailing empty cells).
func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseAmount accepts both dot and comma decimal separators.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}
	if strings.Contains(s, ",") {
		// Brazilian format: dots are thousands separators, the comma is
		// the decimal mark ("1.234,56").
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

// parseKind maps the portal's account-kind labels; unknown or empty labels
// default to checking.
func parseKind(s string) cnab.AccountType {
	if format.Normalize(s) == "POUPANCA" {
		return cnab.Savings
	}
	return cnab.Checking
}

// isRowEmpty reports whether every cell in the row is blank.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
