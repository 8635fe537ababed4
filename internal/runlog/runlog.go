// Package runlog keeps a CSV audit trail of pipeline runs.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/extrato-dev/extrato/internal/model"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp  time.Time
	Statement  string
	Ledger     string
	Processed  int
	Debits     int
	NewEntries int
	Duplicates int
	Status     string
}

// Header is the CSV header for the run log.
const Header = "timestamp,statement,ledger,transactions,debits,new_entries,duplicates,status"

const (
	numFields     = 8
	colTimestamp  = 0
	colStatement  = 1
	colLedger     = 2
	colProcessed  = 3
	colDebits     = 4
	colNewEntries = 5
	colDuplicates = 6
	colStatus     = 7
)

// FromResult builds a log entry from one pipeline result.
func FromResult(statement, ledger string, res model.Result) Entry {
	status := "ok"
	if !res.Success {
		status = res.Err
	}
	return Entry{
		Timestamp:  time.Now(),
		Statement:  filepath.Base(statement),
		Ledger:     filepath.Base(ledger),
		Processed:  res.TransactionsProcessed,
		Debits:     res.DebitsFound,
		NewEntries: res.NewEntries,
		Duplicates: res.DuplicatesSkipped,
		Status:     status,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colStatement] = e.Statement
	row[colLedger] = e.Ledger
	row[colProcessed] = strconv.Itoa(e.Processed)
	row[colDebits] = strconv.Itoa(e.Debits)
	row[colNewEntries] = strconv.Itoa(e.NewEntries)
	row[colDuplicates] = strconv.Itoa(e.Duplicates)
	row[colStatus] = e.Status
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	counts := make([]int, 4)
	for i, col := range []int{colProcessed, colDebits, colNewEntries, colDuplicates} {
		n, err := strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
		counts[i] = n
	}

	return Entry{
		Timestamp:  ts,
		Statement:  record[colStatement],
		Ledger:     record[colLedger],
		Processed:  counts[0],
		Debits:     counts[1],
		NewEntries: counts[2],
		Duplicates: counts[3],
		Status:     record[colStatus],
	}, nil
}

// Append writes entries to the log at path, creating the file and header
// if needed.
func Append(path string, entries []Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating run log dir: %w", err)
		}
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()
	for _, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing run log row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read loads all entries from the log at path.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records {
		if i == 0 && strings.Join(rec, ",") == Header {
			continue
		}
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
