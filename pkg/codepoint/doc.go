// Package codepoint resolves the 256 single-byte code points to their names.
//
// Bytes in the control ranges 0x00-0x1F and 0x7F-0x9F have no character name
// in the Unicode database, so their names come from the alias table: the
// first alias is the display name, the rest are alternates. Every other byte
// is decoded as Latin-1 and named from the Unicode character database.
//
// Resolution is all-or-nothing. Resolve fails on the first byte it cannot
// name and returns no records; ResolveValue exposes the per-byte rule.
package codepoint
