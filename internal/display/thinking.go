package display

import (
	"fmt"
	"strings"

	"tscpgo/internal/engine"
	"tscpgo/internal/search"
)

// PostMode selects the iteration-report wire format, per spec.md §6.
type PostMode int

const (
	// PostNone suppresses per-iteration output entirely (the "nopost"
	// shell command).
	PostNone PostMode = iota
	// PostConsole prints a human-readable line, ported from
	// original_source/main.c's think() printf.
	PostConsole
	// PostXBoard prints the "ply score time nodes pv" line the xboard
	// protocol expects after a "post" command.
	PostXBoard
)

// FormatIteration renders one search.IterationReport according to mode.
// moveStr converts a single move to its coordinate or algebraic string;
// the caller supplies it so display never needs a notation dependency.
func FormatIteration(mode PostMode, rep search.IterationReport, moveStr func(engine.Move) string) string {
	switch mode {
	case PostXBoard:
		return formatXBoard(rep)
	case PostConsole:
		return formatConsole(rep, moveStr)
	default:
		return ""
	}
}

func formatConsole(rep search.IterationReport, moveStr func(engine.Move) string) string {
	var pv strings.Builder
	for i, mv := range rep.PV {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(moveStr(mv))
	}
	return fmt.Sprintf("%3d  %6d  %6d  %8d  %s",
		rep.Depth, rep.Score, rep.ElapsedMS/10, rep.Nodes, pv.String())
}

// formatXBoard renders "ply score time nodes pv", centiseconds for time,
// per the xboard engine protocol's post-thinking-output format.
func formatXBoard(rep search.IterationReport) string {
	var pv strings.Builder
	for i, mv := range rep.PV {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(mv.String())
	}
	return fmt.Sprintf("%d %d %d %d %s", rep.Depth, rep.Score, rep.ElapsedMS/10, rep.Nodes, pv.String())
}

// ResultString maps a game outcome to the termination text both the
// console and xboard surfaces print, ported from
// original_source/main.c's print_result().
func ResultString(side engine.Color, mated, stalemate, fiftyMove, repetition bool) string {
	switch {
	case mated && side == engine.Light:
		return "0-1 {Black mates}"
	case mated:
		return "1-0 {White mates}"
	case stalemate:
		return "1/2-1/2 {Stalemate}"
	case fiftyMove:
		return "1/2-1/2 {Draw by fifty move rule}"
	case repetition:
		return "1/2-1/2 {Draw by repetition}"
	default:
		return ""
	}
}
