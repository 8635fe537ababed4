package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrato-dev/extrato/internal/model"
)

func row(date, doc, desc, amount string) model.RawRow {
	return model.RawRow{
		Date:        model.DetectCell(date),
		Document:    model.DetectCell(doc),
		Description: model.DetectCell(desc),
		Amount:      model.DetectCell(amount),
	}
}

func TestConsolidate_MergesContinuationRows(t *testing.T) {
	table := model.RawTable{
		row("01/03/2025", "123", "Pagamento", "- 2.460,73 D"),
		row("", "", "Fornecedor XYZ Ltda", ""),
		row("", "", "NF 4412", ""),
	}

	txns := Consolidate(table)
	require.Len(t, txns, 1)
	assert.Equal(t, "Pagamento Fornecedor XYZ Ltda NF 4412", txns[0].Description)
	assert.Equal(t, "01/03/2025", txns[0].Date.Text)
	assert.Equal(t, "123", txns[0].Document.Text)
	assert.Equal(t, "- 2.460,73 D", txns[0].Amount.Text)
}

func TestConsolidate_NoiseSwallowsOwnContinuations(t *testing.T) {
	// The balance row's trailing text must not leak into the
	// surrounding transactions.
	table := model.RawTable{
		row("01/03/2025", "", "Pagamento", "- 2.460,73 D"),
		row("", "", "Fornecedor XYZ", ""),
		row("02/03/2025", "", "SALDO DO DIA", "10.000,00 C"),
		row("", "", "texto residual", ""),
		row("03/03/2025", "", "Tarifa", "- 10,00 D"),
	}

	txns := Consolidate(table)
	require.Len(t, txns, 2)
	assert.Equal(t, "Pagamento Fornecedor XYZ", txns[0].Description)
	assert.Equal(t, "Tarifa", txns[1].Description)
}

func TestConsolidate_NoiseRowKeepsPendingTransaction(t *testing.T) {
	// A balance row between a transaction and end of input must not
	// drop the buffered transaction.
	table := model.RawTable{
		row("01/03/2025", "", "Pagamento", "- 100,00 D"),
		row("02/03/2025", "", "SALDO ANTERIOR", ""),
	}

	txns := Consolidate(table)
	require.Len(t, txns, 1)
	assert.Equal(t, "Pagamento", txns[0].Description)
}

func TestConsolidate_CreditFlagIsNoise(t *testing.T) {
	table := model.RawTable{
		row("01/03/2025", "", "Recebimento cliente", "2.794,76 C"),
		row("", "", "remetente", ""),
		row("02/03/2025", "", "Tarifa", "- 10,00 D"),
	}

	txns := Consolidate(table)
	require.Len(t, txns, 1)
	assert.Equal(t, "Tarifa", txns[0].Description)
}

func TestConsolidate_NoisePhraseContinuationDropped(t *testing.T) {
	table := model.RawTable{
		row("01/03/2025", "", "Pagamento", "- 100,00 D"),
		row("", "", "Saldo do dia 1.000,00", ""),
		row("", "", "Fornecedor XYZ", ""),
	}

	txns := Consolidate(table)
	require.Len(t, txns, 1)
	assert.Equal(t, "Pagamento Fornecedor XYZ", txns[0].Description)
}

func TestConsolidate_LeadingContinuationDiscarded(t *testing.T) {
	// Continuation text before any dated row has nothing to attach to.
	table := model.RawTable{
		row("", "", "texto perdido", ""),
		row("01/03/2025", "", "Pagamento", "- 100,00 D"),
	}

	txns := Consolidate(table)
	require.Len(t, txns, 1)
	assert.Equal(t, "Pagamento", txns[0].Description)
}

func TestConsolidate_FlushesAtEndOfInput(t *testing.T) {
	table := model.RawTable{
		row("01/03/2025", "", "Pagamento", "- 100,00 D"),
		row("", "", "Fornecedor", ""),
	}

	txns := Consolidate(table)
	require.Len(t, txns, 1)
	assert.Equal(t, "Pagamento Fornecedor", txns[0].Description)
}

func TestConsolidate_NormalizesWhitespace(t *testing.T) {
	table := model.RawTable{
		row("01/03/2025", "", "Pagamento   fornecedor", "- 100,00 D"),
		row("", "", "  NF   4412  ", ""),
	}

	txns := Consolidate(table)
	require.Len(t, txns, 1)
	assert.Equal(t, "Pagamento fornecedor NF 4412", txns[0].Description)
}

func TestConsolidate_Empty(t *testing.T) {
	assert.Nil(t, Consolidate(nil))
	assert.Nil(t, Consolidate(model.RawTable{}))
}

func TestIsNoiseDescription(t *testing.T) {
	assert.True(t, IsNoiseDescription("SALDO DO DIA"))
	assert.True(t, IsNoiseDescription("saldo anterior"))
	assert.True(t, IsNoiseDescription("  Saldo Bloqueado  "))
	assert.True(t, IsNoiseDescription("Saldo disponível em 01/03"))

	assert.False(t, IsNoiseDescription("Pagamento fornecedor"))
	assert.False(t, IsNoiseDescription(""))
}

func TestFilterNoise(t *testing.T) {
	txns := []model.LogicalTransaction{
		{Description: "Pagamento"},
		{Description: "resumo saldo do dia"},
		{Description: "Tarifa"},
	}

	kept := FilterNoise(txns)
	require.Len(t, kept, 2)
	assert.Equal(t, "Pagamento", kept[0].Description)
	assert.Equal(t, "Tarifa", kept[1].Description)
}
