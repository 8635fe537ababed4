package formats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrato-dev/extrato/internal/model"
)

func TestSantander_ParseAmount_NegativeIsDebit(t *testing.T) {
	f := &Santander{}

	n, ok := f.ParseAmount(model.NumberCell(decimal.NewFromFloat(-1234.56)))
	require.True(t, ok)
	assert.Equal(t, "1234.56", n.StringFixed(2))

	n, ok = f.ParseAmount(model.DetectCell("-150,00"))
	require.True(t, ok)
	assert.Equal(t, "150.00", n.StringFixed(2))
}

func TestSantander_ParseAmount_PositiveIsCredit(t *testing.T) {
	f := &Santander{}

	_, ok := f.ParseAmount(model.NumberCell(decimal.NewFromFloat(3500)))
	assert.False(t, ok)

	// Zero is not a debit either.
	_, ok = f.ParseAmount(model.NumberCell(decimal.Zero))
	assert.False(t, ok)
}

func TestSantander_ParseAmount_Unparseable(t *testing.T) {
	f := &Santander{}

	_, ok := f.ParseAmount(model.DetectCell("saldo"))
	assert.False(t, ok)

	_, ok = f.ParseAmount(model.DetectCell(""))
	assert.False(t, ok)
}

func TestSantander_SelectColumns(t *testing.T) {
	f := &Santander{}

	cols, err := f.SelectColumns(4)
	require.NoError(t, err)
	assert.Equal(t, ColumnMap{Date: 0, Document: -1, Description: 1, Amount: 3}, cols)

	_, err = f.SelectColumns(3)
	require.Error(t, err)
	var structural model.StructuralError
	assert.ErrorAs(t, err, &structural)
}

func TestSantander_HeaderRows(t *testing.T) {
	f := &Santander{}
	assert.Equal(t, 2, f.HeaderRows())
	assert.Equal(t, "santander", f.Name())
}
