// Package book implements the opening book collaborator described in
// spec.md §6. original_source/ has no book.c — TSCP ships without an
// opening book — so this is a pure stub honoring the BookFunc contract
// search.Engine expects: it always reports "no recommendation", which
// search.Engine.Think treats exactly like a book miss.
package book

import "tscpgo/internal/engine"

// NoBook always returns ok=false, matching search.BookFunc.
func NoBook(*engine.Position) (engine.Move, bool) {
	return engine.Move{}, false
}
