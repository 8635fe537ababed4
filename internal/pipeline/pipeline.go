// Package pipeline runs one statement file end to end: decode,
// consolidate, filter, parse, merge, write. Each stage takes and returns
// plain values; the only state is the Result assembled here.
package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/extrato-dev/extrato/internal/consolidate"
	"github.com/extrato-dev/extrato/internal/decoder"
	"github.com/extrato-dev/extrato/internal/formats"
	"github.com/extrato-dev/extrato/internal/ledger"
	"github.com/extrato-dev/extrato/internal/model"
)

// Pipeline processes statements into a ledger workbook.
type Pipeline struct {
	log   zerolog.Logger
	write ledger.WriteOptions
}

// New creates a Pipeline.
func New(log zerolog.Logger, write ledger.WriteOptions) *Pipeline {
	return &Pipeline{log: log, write: write}
}

// Process runs the full pipeline for one statement file against one
// ledger workbook. All outcomes are reported through the Result; the
// ledger is written at most once, and only when there are new entries.
func (p *Pipeline) Process(statementPath, ledgerPath string, format formats.Format) model.Result {
	log := p.log.With().Str("statement", filepath.Base(statementPath)).Logger()

	table, err := decoder.Decode(statementPath, format)
	if err != nil {
		var empty model.EmptyInputError
		if errors.As(err, &empty) {
			log.Info().Msg("statement has no data rows")
			return model.Result{Success: true}
		}
		return model.Failure(err)
	}
	log.Debug().Int("rows", len(table)).Msg("statement decoded")

	consolidated := consolidate.Consolidate(table)
	processed := len(consolidated)
	kept := consolidate.FilterNoise(consolidated)
	log.Debug().
		Int("transactions", processed).
		Int("after_noise_filter", len(kept)).
		Msg("rows consolidated")

	var entries []model.DebitEntry
	nonDebits := 0
	for _, txn := range kept {
		amount, ok := format.ParseAmount(txn.Amount)
		if !ok {
			nonDebits++
			continue
		}
		entries = append(entries, model.DebitEntry{
			DueDate:        txn.Date,
			Description:    txn.Description,
			Amount:         amount,
			DocumentNumber: txn.Document.String(),
			Note:           txn.Description,
		})
	}

	res := model.Result{
		Success:               true,
		TransactionsProcessed: processed,
		DebitsFound:           len(entries),
		NonDebitsSkipped:      nonDebits,
	}
	if len(entries) == 0 {
		log.Info().Msg("no debit transactions found")
		return res
	}

	f, err := excelize.OpenFile(ledgerPath)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return model.Failure(model.PermissionError{File: filepath.Base(ledgerPath)})
		}
		return model.Failure(fmt.Errorf("opening ledger: %w", err))
	}
	defer f.Close()

	existing := ledger.ReadBanco(f)
	fresh, duplicates := ledger.Merge(entries, existing)
	res.DuplicatesSkipped = duplicates
	log.Debug().
		Int("existing", len(existing)).
		Int("fresh", len(fresh)).
		Int("duplicates", duplicates).
		Msg("merged against ledger")

	if len(fresh) == 0 {
		log.Info().Msg("every debit already in the ledger")
		return res
	}

	if err := ledger.Append(f, ledgerPath, fresh, p.write); err != nil {
		return model.Failure(err)
	}
	res.NewEntries = len(fresh)
	log.Info().
		Int("new_entries", res.NewEntries).
		Int("duplicates_skipped", res.DuplicatesSkipped).
		Msg("ledger updated")
	return res
}
