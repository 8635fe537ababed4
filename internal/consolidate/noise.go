package consolidate

import (
	"strings"

	"github.com/extrato-dev/extrato/internal/model"
)

// noisePhrases mark balance-snapshot rows that must never reach the
// ledger. Matching is a case-insensitive substring test.
var noisePhrases = []string{
	"saldo do dia",
	"saldo anterior",
	"saldo atual",
	"saldo final",
	"saldo bloqueado anterior",
	"saldo bloqueado",
	"saldo disponível",
	"saldo em conta",
}

// IsNoiseDescription reports whether a description is a balance line.
func IsNoiseDescription(desc string) bool {
	lower := strings.ToLower(desc)
	for _, phrase := range noisePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// hasCreditFlag reports whether an amount cell carries the bank's credit
// indicator letter anywhere in its text.
func hasCreditFlag(amount model.Cell) bool {
	return !amount.IsEmpty() && strings.ContainsAny(amount.Text, "Cc")
}

// isNoiseRow classifies a date-bearing row as credit/balance noise from
// its own amount and description.
func isNoiseRow(row model.RawRow) bool {
	return hasCreditFlag(row.Amount) || IsNoiseDescription(row.Description.String())
}

// FilterNoise is the post-consolidation pass: it drops any transaction
// whose final merged description still contains a balance phrase. Rows
// already filtered by the state machine simply never show up here.
func FilterNoise(txns []model.LogicalTransaction) []model.LogicalTransaction {
	var kept []model.LogicalTransaction
	for _, txn := range txns {
		if IsNoiseDescription(txn.Description) {
			continue
		}
		kept = append(kept, txn)
	}
	return kept
}
