// Package aliases reads Unicode name alias data.
//
// The data uses the NameAliases.txt layout from the Unicode Character
// Database: one alias per line as CODEPOINT;ALIAS;TYPE, with '#' comments and
// blank lines ignored. Repeated code points accumulate in file order, so the
// first alias listed for a code point is the preferred one.
//
// A copy covering the Latin-1 block is embedded in the package and returned
// by Bundled. Load reads an alternative file through an afero filesystem; a
// missing file yields an empty table rather than an error, leaving the caller
// to report the individual keys it could not find.
package aliases
