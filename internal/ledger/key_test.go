package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrato-dev/extrato/internal/model"
)

func TestEntryKey_Basic(t *testing.T) {
	e := model.DebitEntry{
		DueDate:     model.DetectCell("01/03/2025"),
		Description: "Pagamento fornecedor",
		Amount:      decimal.NewFromFloat(2460.73),
	}

	key, ok := entryKey(e)
	require.True(t, ok)
	assert.Equal(t, "01/03/2025|pagamento fornecedor|2460.73", key)
}

func TestEntryKey_MissingFields(t *testing.T) {
	_, ok := entryKey(model.DebitEntry{Description: "sem data"})
	assert.False(t, ok)

	_, ok = entryKey(model.DebitEntry{DueDate: model.DetectCell("01/03/2025")})
	assert.False(t, ok)
}

func TestRowKey_MatchesEntryKey(t *testing.T) {
	e := model.DebitEntry{
		DueDate:     model.DetectCell("01/03/2025"),
		Description: "Pagamento fornecedor",
		Amount:      decimal.NewFromFloat(2460.73),
	}
	entryK, ok := entryKey(e)
	require.True(t, ok)

	// The same transaction as it comes back out of the workbook:
	// formatted date, cased text, currency-formatted amount.
	r := model.LedgerRow{
		DueDate:     "1/3/2025",
		Description: "  PAGAMENTO FORNECEDOR ",
		Amount:      "R$ 2,460.73",
	}
	rowK, ok := rowKey(r)
	require.True(t, ok)
	assert.Equal(t, entryK, rowK)
}

func TestRowKey_BrazilianAmount(t *testing.T) {
	r := model.LedgerRow{
		DueDate:     "01/03/2025",
		Description: "Pagamento",
		Amount:      "2.460,73",
	}
	key, ok := rowKey(r)
	require.True(t, ok)
	assert.Equal(t, "01/03/2025|pagamento|2460.73", key)
}

func TestRowKey_MissingFieldsExcluded(t *testing.T) {
	_, ok := rowKey(model.LedgerRow{Description: "x", Amount: "1"})
	assert.False(t, ok)

	_, ok = rowKey(model.LedgerRow{DueDate: "01/03/2025", Amount: "1"})
	assert.False(t, ok)

	_, ok = rowKey(model.LedgerRow{DueDate: "01/03/2025", Description: "x"})
	assert.False(t, ok)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "01/03/2025", normalizeDate("01/03/2025"))
	assert.Equal(t, "01/03/2025", normalizeDate("1/3/2025"))
	assert.Equal(t, "01/03/2025", normalizeDate("01-03-2025"))
	assert.Equal(t, "05/03/2025", normalizeDate("2025-03-05"))

	// Unparseable input degrades to its trimmed original form.
	assert.Equal(t, "sem data", normalizeDate("  sem data "))
}

func TestNormalizeAmount(t *testing.T) {
	assert.Equal(t, "2460.73", normalizeAmount("2.460,73"))
	assert.Equal(t, "2460.73", normalizeAmount("R$ 2.460,73"))
	assert.Equal(t, "2460.73", normalizeAmount("R$ 2,460.73"))
	assert.Equal(t, "125.69", normalizeAmount("125,69"))
	assert.Equal(t, "125.69", normalizeAmount("125.69"))
	assert.Equal(t, "1234567.00", normalizeAmount("1,234,567"))
	assert.Equal(t, "300.00", normalizeAmount("300"))

	assert.Equal(t, "n/a", normalizeAmount(" n/a "))
}
