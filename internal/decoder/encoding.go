package decoder

import (
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// encodingSpec names a character encoding strategy. Most are fixed;
// encAuto runs a statistical detector over the raw bytes.
type encodingSpec int

const (
	encWindows1252 encodingSpec = iota
	encCP1252
	encISO8859
	encUTF8BOM
	encAuto
	encUTF8
)

// resolve returns the x/text encoding to decode with, or nil for plain
// UTF-8 passthrough. windows-1252 and cp1252 are the same table but are
// kept as distinct strategies so attempt reporting matches the exports'
// own naming.
func (e encodingSpec) resolve(data []byte) encoding.Encoding {
	switch e {
	case encWindows1252, encCP1252:
		return charmap.Windows1252
	case encISO8859:
		return charmap.ISO8859_1
	case encUTF8BOM:
		return unicode.UTF8BOM
	case encAuto:
		return detectEncoding(data)
	default:
		return nil
	}
}

// detectEncoding infers the encoding of raw bytes statistically,
// defaulting to windows-1252 when detection fails or names something
// unknown.
func detectEncoding(data []byte) encoding.Encoding {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return charmap.Windows1252
	}
	enc, err := htmlindex.Get(strings.ToLower(result.Charset))
	if err != nil {
		return charmap.Windows1252
	}
	return enc
}
