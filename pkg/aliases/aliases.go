package aliases

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/sffjunkie/rich-ascii/pkg/errors"
	"github.com/sffjunkie/rich-ascii/pkg/logging"
)

// BundledName is the file name of the embedded alias resource
const BundledName = "NameAliases.txt"

//go:embed NameAliases.txt
var bundled []byte

// Entry is one alias line
type Entry struct {
	Alias string
	Type  string
}

// Table maps an upper-case 4-hex-digit code point key to its aliases in
// file order.
type Table struct {
	entries map[string][]Entry
}

// NewTable returns an empty table
func NewTable() *Table {
	return &Table{entries: make(map[string][]Entry)}
}

// Add appends an alias for key, creating the key on first sight.
func (t *Table) Add(key, alias, typ string) {
	key = strings.ToUpper(key)
	t.entries[key] = append(t.entries[key], Entry{Alias: alias, Type: typ})
}

// Lookup returns the aliases for key in file order.
func (t *Table) Lookup(key string) ([]string, bool) {
	entries, ok := t.entries[strings.ToUpper(key)]
	if !ok {
		return nil, false
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Alias
	}
	return names, true
}

// Entries returns the raw entries for key, including their types.
func (t *Table) Entries(key string) []Entry {
	return t.entries[strings.ToUpper(key)]
}

// Len returns the number of distinct code points in the table
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns the code point keys in ascending order
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parse reads alias lines from r.
func Parse(r io.Reader) (*Table, error) {
	table := NewTable()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ";")
		if len(fields) != 3 {
			return nil, errors.Newf(errors.ErrAliasParse,
				"line %d: expected CODEPOINT;ALIAS;TYPE, got %q", lineNo, line).
				WithDetail("line", lineNo)
		}
		codePoint := strings.TrimSpace(fields[0])
		if len(codePoint) < 4 {
			return nil, errors.Newf(errors.ErrAliasParse,
				"line %d: code point %q is not 4 hex digits", lineNo, codePoint).
				WithDetail("line", lineNo)
		}
		table.Add(codePoint, strings.TrimSpace(fields[1]), strings.TrimSpace(fields[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrAliasRead, "failed to read alias data")
	}
	return table, nil
}

// Bundled parses the embedded NameAliases.txt
func Bundled() (*Table, error) {
	return Parse(bytes.NewReader(bundled))
}

// Load reads an alias file from fs. A file that does not exist produces an
// empty table.
func Load(fs afero.Fs, path string) (*Table, error) {
	logger := logging.GetLogger("aliases")

	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", path).Msg("Alias file not found, control code names unavailable")
			return NewTable(), nil
		}
		return nil, errors.Wrapf(err, errors.ErrAliasRead, "failed to open alias file %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	table, err := Parse(f)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).Int("codePoints", table.Len()).Msg("Loaded alias file")
	return table, nil
}
