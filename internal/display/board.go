package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tscpgo/internal/engine"
)

// Config controls how Renderer draws a position, adapted from the
// teacher's ui.Config display options.
type Config struct {
	UseUnicode bool
	ShowCoords bool
	UseColors  bool
	Theme      ThemeName
}

// DefaultConfig draws ASCII piece letters (no Unicode) with coordinates
// on and piece colors on.
func DefaultConfig() Config {
	return Config{
		UseUnicode: false,
		ShowCoords: true,
		UseColors:  true,
		Theme:      ThemeClassic,
	}
}

// Renderer draws an engine.Position to a terminal-ready string.
type Renderer struct {
	cfg   Config
	theme Theme
}

// NewRenderer builds a Renderer for cfg.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg, theme: GetTheme(cfg.Theme)}
}

var asciiLetters = [...]byte{'P', 'N', 'B', 'R', 'Q', 'K'}
var unicodeLight = [...]string{"♙", "♘", "♗", "♖", "♕", "♔"}
var unicodeDark = [...]string{"♟", "♞", "♝", "♜", "♛", "♚"}

// Render draws pos from White's perspective: rank 8 at the top, rank 1 at
// the bottom, ported from original_source/board.c's print_board() with
// the teacher's lipgloss coloring layered on top.
func (r *Renderer) Render(pos *engine.Position) string {
	var b strings.Builder
	for rank := 0; rank < 8; rank++ {
		if r.cfg.ShowCoords {
			fmt.Fprintf(&b, "%d ", 8-rank)
		}
		for file := 0; file < 8; file++ {
			sq := engine.MapToSquare(file, rank)
			if file > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(r.squareSymbol(pos, sq))
		}
		b.WriteByte('\n')
	}
	if r.cfg.ShowCoords {
		b.WriteString("  a b c d e f g h\n")
	}
	return b.String()
}

func (r *Renderer) squareSymbol(pos *engine.Position, sq engine.Square) string {
	color, piece := pos.PieceAt(sq)
	if color == engine.NoColor {
		return "."
	}

	var symbol string
	if r.cfg.UseUnicode {
		if color == engine.Light {
			symbol = unicodeLight[piece]
		} else {
			symbol = unicodeDark[piece]
		}
	} else {
		ch := asciiLetters[piece]
		if color == engine.Dark {
			ch = ch - 'A' + 'a'
		}
		symbol = string(ch)
	}

	if !r.cfg.UseColors {
		return symbol
	}
	fg := r.theme.LightPiece
	bold := true
	if color == engine.Dark {
		fg = r.theme.DarkPiece
		bold = false
	}
	return lipgloss.NewStyle().Foreground(fg).Bold(bold).Render(symbol)
}

// Side returns a human-readable name for a color, used in status lines.
func Side(c engine.Color) string {
	if c == engine.Light {
		return "White"
	}
	return "Black"
}
