package codepoint

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/runenames"

	"github.com/sffjunkie/rich-ascii/pkg/errors"
	"github.com/sffjunkie/rich-ascii/pkg/logging"
)

// Count is the number of single-byte code points
const Count = 256

// Record describes one byte value
type Record struct {
	Value   int
	Name    string
	Aliases []string
}

// Records holds one Record per byte value, indexed by value.
type Records [Count]Record

// AliasLookup supplies alias names keyed by 4-hex-digit code point.
type AliasLookup interface {
	Lookup(key string) ([]string, bool)
}

// NameSource supplies the Unicode character name for a rune, or "" when it
// has none.
type NameSource interface {
	Name(r rune) string
}

// UnicodeNames looks names up in the Unicode character database after
// decoding the byte as ISO 8859-1.
type UnicodeNames struct{}

// Name implements NameSource
func (UnicodeNames) Name(r rune) string {
	return runenames.Name(r)
}

// Rune returns the character a byte value stands for in Latin-1.
func Rune(v int) rune {
	return charmap.ISO8859_1.DecodeByte(byte(v))
}

// IsControl reports whether v is in the C0, DEL or C1 control ranges.
func IsControl(v int) bool {
	return v <= 0x1F || (v >= 0x7F && v <= 0x9F)
}

// Key formats v as the 4-hex-digit alias key.
func Key(v int) string {
	return fmt.Sprintf("%04X", v)
}

// Resolver builds Records from an alias table and a name source.
type Resolver struct {
	Aliases AliasLookup
	Names   NameSource
}

// NewResolver returns a resolver backed by the Unicode character database.
func NewResolver(aliases AliasLookup) *Resolver {
	return &Resolver{Aliases: aliases, Names: UnicodeNames{}}
}

// ResolveValue resolves a single byte value.
func (r *Resolver) ResolveValue(v uint8) (Record, error) {
	value := int(v)

	if IsControl(value) {
		key := Key(value)
		var names []string
		if r.Aliases != nil {
			names, _ = r.Aliases.Lookup(key)
		}
		if len(names) == 0 || names[0] == "" {
			return Record{}, errors.MissingAlias(value, key)
		}
		record := Record{Value: value, Name: names[0]}
		if len(names) > 1 {
			record.Aliases = append([]string(nil), names[1:]...)
		}
		return record, nil
	}

	names := r.Names
	if names == nil {
		names = UnicodeNames{}
	}
	name := names.Name(Rune(value))
	if name == "" {
		return Record{}, errors.UnknownName(value)
	}
	return Record{Value: value, Name: name}, nil
}

// Resolve resolves every byte value in ascending order.
func (r *Resolver) Resolve() (Records, error) {
	logger := logging.GetLogger("codepoint")
	done := logging.LogOperationStart(logger, "resolve")
	defer done()

	var records Records
	for v := 0; v < Count; v++ {
		record, err := r.ResolveValue(uint8(v))
		if err != nil {
			logger.Error().Err(err).Int("codePoint", v).Msg("Failed to resolve code point")
			return Records{}, err
		}
		records[v] = record
	}
	return records, nil
}
