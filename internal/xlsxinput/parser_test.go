package xlsxinput

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sigrhx/payfile/internal/cnab"
)

// writeSheet builds a temporary payroll workbook from raw rows, header
// included, and returns its path.
func writeSheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "folha.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// header mirrors the portal export, accents and all.
func header() []interface{} {
	return []interface{}{
		"Nome", "CPF", "Banco", "Agência", "DV Agência", "Conta", "DV Conta",
		"Tipo Conta", "Valor", "Data Crédito", "Identificador",
	}
}

func TestParsePayrollSheet(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		header(),
		{"João da Silva", "123.456.789-00", "001", "4321", "0", "55667", "8",
			"Corrente", "1.500,50", "28/08/2026", "PAY00000001"},
		{"Maria Souza", "987.654.321-00", "104", "0001", "", "12345", "6",
			"Poupança", "2200.00", "28/08/2026", "PAY00000002"},
	})

	payments, err := Parse(path)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	first := payments[0]
	assert.Equal(t, "João da Silva", first.Name)
	assert.Equal(t, "123.456.789-00", first.TaxID)
	assert.Equal(t, "001", first.BankCode)
	assert.Equal(t, cnab.Checking, first.Kind)
	assert.Equal(t, "1500.5", first.Amount.String())
	assert.Equal(t, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC), first.CreditDate)
	assert.Equal(t, "PAY00000001", first.PaymentID)

	second := payments[1]
	assert.Equal(t, cnab.Savings, second.Kind)
	assert.Equal(t, "2200", second.Amount.String())
}

func TestParseGeneratesMissingIdentifier(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		header(),
		{"João da Silva", "123.456.789-00", "001", "4321", "0", "55667", "8",
			"Corrente", "1500,50", "28/08/2026", ""},
	})

	payments, err := Parse(path)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Len(t, payments[0].PaymentID, 20)
}

func TestParseSkipsEmptyRows(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		header(),
		{"João da Silva", "123.456.789-00", "001", "4321", "0", "55667", "8",
			"Corrente", "1500,50", "28/08/2026", "PAY00000001"},
		{"", "", "", "", "", "", "", "", "", "", ""},
		{"Maria Souza", "987.654.321-00", "104", "0001", "", "12345", "6",
			"Corrente", "100,00", "28/08/2026", "PAY00000002"},
	})

	payments, err := Parse(path)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestParseRejectsMissingColumn(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		{"Nome", "CPF", "Banco"},
		{"João da Silva", "123.456.789-00", "001"},
	})

	_, err := Parse(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestParseRejectsBadAmount(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		header(),
		{"João da Silva", "123.456.789-00", "001", "4321", "0", "55667", "8",
			"Corrente", "abc", "28/08/2026", "PAY00000001"},
	})

	_, err := Parse(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParseRejectsBadDate(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		header(),
		{"João da Silva", "123.456.789-00", "001", "4321", "0", "55667", "8",
			"Corrente", "1500,50", "2026-08-28", "PAY00000001"},
	})

	_, err := Parse(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATA CREDITO")
}

func TestParseAmountFormats(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.500,50", "1500.5"},
		{"1500,50", "1500.5"},
		{"1234.56", "1234.56"},
		{"100", "100"},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		require.NoErrorf(t, err, "input %q", tt.in)
		assert.Equalf(t, tt.want, got.String(), "input %q", tt.in)
	}
}
