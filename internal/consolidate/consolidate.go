// Package consolidate collapses a raw statement table into one logical
// record per transaction. Banks wrap a transaction's narrative across
// several physical rows without repeating the date, so only date-bearing
// rows delimit transactions; credit and balance rows must also swallow
// their own trailing continuation rows or their orphaned text would
// attach to the next real transaction.
package consolidate

import (
	"regexp"
	"strings"

	"github.com/extrato-dev/extrato/internal/model"
)

// state is the consolidation automaton state.
type state int

const (
	// noActive: no transaction open yet.
	noActive state = iota
	// active: a transaction is open and accepting continuation text.
	active
	// skippingNoise: the last date-bearing row was credit/balance
	// noise; its continuations are discarded until the next dated row.
	skippingNoise
)

var spacesPattern = regexp.MustCompile(`\s+`)

// accumulator is the explicit finite-state consolidator.
type accumulator struct {
	state   state
	pending model.LogicalTransaction
	desc    strings.Builder
	out     []model.LogicalTransaction
}

// Consolidate merges continuation rows into their date-anchored
// transaction and drops credit/balance groups along the way. The length
// of the returned slice is the processed-transaction count.
func Consolidate(table model.RawTable) []model.LogicalTransaction {
	acc := &accumulator{}
	for _, row := range table {
		acc.feed(row)
	}
	acc.flush()
	return acc.out
}

func (a *accumulator) feed(row model.RawRow) {
	switch {
	case !row.Date.IsEmpty():
		a.feedDated(row)
	case !row.Description.IsEmpty():
		a.feedContinuation(row.Description.String())
	default:
		// Fully empty row: inert, no state change.
	}
}

// feedDated handles a row that starts a candidate transaction.
func (a *accumulator) feedDated(row model.RawRow) {
	if isNoiseRow(row) {
		// The noise row is dropped and so are its continuations.
		// A previously open transaction stays buffered; the next
		// real dated row (or end of input) will emit it.
		a.state = skippingNoise
		return
	}

	a.flush()
	a.pending = model.LogicalTransaction{
		Date:     row.Date,
		Document: row.Document,
		Amount:   row.Amount,
	}
	a.desc.Reset()
	a.desc.WriteString(row.Description.String())
	a.state = active
}

// feedContinuation appends wrapped narrative text to the open
// transaction, unless the text is itself a balance phrase or the open
// group was discarded as noise.
func (a *accumulator) feedContinuation(text string) {
	if a.state != active {
		return
	}
	if IsNoiseDescription(text) {
		return
	}
	if a.desc.Len() > 0 {
		a.desc.WriteString(" ")
	}
	a.desc.WriteString(text)
}

// flush finalizes the buffered transaction, if any.
func (a *accumulator) flush() {
	if a.pending.Date.IsEmpty() {
		return
	}
	a.pending.Description = normalizeSpace(a.desc.String())
	a.out = append(a.out, a.pending)
	a.pending = model.LogicalTransaction{}
	a.desc.Reset()
	if a.state == active {
		a.state = noActive
	}
}

// normalizeSpace collapses runs of whitespace and trims the ends.
func normalizeSpace(s string) string {
	return strings.TrimSpace(spacesPattern.ReplaceAllString(s, " "))
}
