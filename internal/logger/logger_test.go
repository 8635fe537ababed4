package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, false)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log = New(&buf, true)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestNew_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Info().Msg("ledger updated")
	assert.Contains(t, buf.String(), "ledger updated")

	buf.Reset()
	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info().Str("statement", "marco.csv").Msg("decoded")
	assert.Contains(t, buf.String(), `"statement":"marco.csv"`)
}
