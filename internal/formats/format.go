package formats

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/model"
)

// ColumnMap assigns raw table column indices to the four statement
// fields. An index of -1 means the field is synthesized empty.
type ColumnMap struct {
	Date        int
	Document    int
	Description int
	Amount      int
}

// Format describes one bank's statement export: how many header rows to
// skip, how columns map onto statement fields, and how its amount strings
// resolve to debit values.
type Format interface {
	// Name is the registry key, e.g. "sicoob".
	Name() string
	// HeaderRows is the number of leading rows to discard.
	HeaderRows() int
	// SelectColumns maps a table of the given width onto statement
	// fields, or fails with a StructuralError.
	SelectColumns(width int) (ColumnMap, error)
	// ParseAmount resolves a raw amount cell to a debit value.
	// ok=false means the cell is not a debit (credit, balance, or
	// unparseable) and the transaction must not be ledgered.
	ParseAmount(cell model.Cell) (amount decimal.Decimal, ok bool)
}

// Registry holds named formats.
type Registry struct {
	formats map[string]Format
}

// NewRegistry creates an empty format registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Format)}
}

// Register adds a format. Panics on duplicate name.
func (r *Registry) Register(f Format) {
	key := strings.ToLower(f.Name())
	if _, ok := r.formats[key]; ok {
		panic("duplicate statement format: " + key)
	}
	r.formats[key] = f
}

// Get returns the format for name, or nil.
func (r *Registry) Get(name string) Format {
	return r.formats[strings.ToLower(name)]
}

// Names returns the registered format names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for k := range r.formats {
		names = append(names, k)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in formats.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Sicoob{})
	r.Register(&Santander{})
	return r
}
