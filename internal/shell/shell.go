// Package shell implements the two external interfaces spec.md §6
// names: an interactive line-oriented console and the xboard/WinBoard
// engine protocol. Both are ported from original_source/main.c's
// main() and xboard(), restructured around engine.Position and
// search.Engine instead of globals.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tscpgo/internal/book"
	"tscpgo/internal/clock"
	"tscpgo/internal/config"
	"tscpgo/internal/display"
	"tscpgo/internal/engine"
	"tscpgo/internal/eval"
	"tscpgo/internal/search"
	"tscpgo/internal/util"
)

// Session holds everything one shell interaction needs: the position
// being played, the search engine driving it, and how to render both.
type Session struct {
	Pos      *engine.Position
	Search   *search.Engine
	Renderer *display.Renderer
	Out      io.Writer

	postMode     display.PostMode
	computerSide engine.Color
}

// NewSession builds a Session from cfg, writing all output to out.
func NewSession(cfg config.Config, out io.Writer) *Session {
	pos := engine.NewGame()
	eng := search.NewEngine(pos, eval.Evaluate, book.NoBook, clock.NowMS)
	eng.MaxTime = cfg.MaxTimeMS
	eng.MaxDepth = cfg.MaxDepth

	renderer := display.NewRenderer(display.Config{
		UseUnicode: cfg.UseUnicode,
		ShowCoords: cfg.ShowCoords,
		UseColors:  cfg.UseColors,
		Theme:      display.ParseThemeName(cfg.Theme),
	})

	return &Session{
		Pos:          pos,
		Search:       eng,
		Renderer:     renderer,
		Out:          out,
		postMode:     parsePostMode(cfg.PostMode),
		computerSide: engine.NoColor,
	}
}

func parsePostMode(s string) display.PostMode {
	switch s {
	case "xboard":
		return display.PostXBoard
	case "none":
		return display.PostNone
	default:
		return display.PostConsole
	}
}

func (s *Session) resetGame() {
	s.Pos = engine.NewGame()
	s.Search.Pos = s.Pos
	s.computerSide = engine.NoColor
	s.Pos.Gen()
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// printResult checks whether the game has ended and, if so, prints the
// termination string. Ported from original_source/main.c's
// print_result().
func (s *Session) printResult() {
	pos := s.Pos
	hasLegal := false
	for i := pos.FirstMove[0]; i < pos.FirstMove[1]; i++ {
		if pos.MakeMove(pos.Gen[i].Move) {
			pos.TakeBack()
			hasLegal = true
			break
		}
	}

	var text string
	switch {
	case !hasLegal:
		text = display.ResultString(pos.Side, pos.InCheck(pos.Side), !pos.InCheck(pos.Side), false, false)
	case pos.Reps() == 3:
		text = display.ResultString(pos.Side, false, false, false, true)
	case pos.Fifty >= 100:
		text = display.ResultString(pos.Side, false, false, true, false)
	}
	if text != "" {
		s.printf("%s\n", text)
	}
}

func (s *Session) think() {
	report := func(rep search.IterationReport) {
		if line := display.FormatIteration(s.postMode, rep, func(mv engine.Move) string { return mv.String() }); line != "" {
			s.printf("%s\n", line)
		}
	}
	mv := s.Search.Think(report)
	if mv.IsNil() {
		s.printf("(no legal moves)\n")
		s.computerSide = engine.NoColor
		return
	}
	s.printf("Computer's move: %s\n", mv.String())
	s.Pos.MakeMove(mv)
	s.Pos.Ply = 0
	s.Pos.Gen()
	s.printResult()
}

const helpText = `on - computer plays for the side to move
off - computer stops playing
st n - search for n seconds per move
sd n - search n ply per move
undo - takes back a move
new - starts a new game
d - display the board
copy - copy the current move in coordinate notation to the clipboard
bench - run the built-in benchmark
perft n - count movepaths to depth n
bye - exit the program
xboard - switch to XBoard mode
Enter moves in coordinate notation, e.g., e2e4, e7e8Q
`

// RunInteractive runs the console command loop until "bye" or EOF,
// ported from original_source/main.c's main().
func (s *Session) RunInteractive(r io.Reader) error {
	s.printf("\n")
	s.printf("tscpgo\n")
	s.printf("a Go chess engine in the spirit of Tom Kerrigan's TSCP\n")
	s.printf("\n")
	s.printf("\"help\" displays a list of commands.\n")
	s.printf("\n")

	s.Pos.Gen()

	words := bufio.NewScanner(r)
	words.Split(bufio.ScanWords)
	next := func() (string, bool) { return nextWord(words) }

	for {
		if s.Pos.Side == s.computerSide {
			s.think()
			continue
		}

		s.printf("tscp> ")
		word, ok := next()
		if !ok {
			return nil
		}

		switch word {
		case "on":
			s.computerSide = s.Pos.Side
		case "off":
			s.computerSide = engine.NoColor
		case "st":
			n, _ := nextInt(next)
			s.Search.MaxTime = int64(n) * 1000
			s.Search.MaxDepth = search.MaxLevelDepth
		case "sd":
			n, _ := nextInt(next)
			s.Search.MaxDepth = n
			s.Search.MaxTime = 1 << 25
		case "undo":
			if s.Pos.Hply == 0 {
				continue
			}
			s.computerSide = engine.NoColor
			s.Pos.TakeBack()
			s.Pos.Ply = 0
			s.Pos.Gen()
		case "new":
			s.resetGame()
		case "d":
			s.printf("\n%s\n", s.Renderer.Render(s.Pos))
		case "copy":
			if err := util.CopyToClipboard(s.currentMoveText()); err != nil {
				s.printf("copy failed: %v\n", err)
			}
		case "bench":
			s.computerSide = engine.NoColor
			s.runBenchReport()
		case "perft":
			n, _ := nextInt(next)
			s.runPerftReport(n)
		case "bye":
			s.printf("Share and enjoy!\n")
			return nil
		case "xboard":
			return s.RunXBoard(r)
		case "help":
			s.printf("%s", helpText)
		default:
			mv, ok := ParseMove(s.Pos, word)
			if !ok || !s.Pos.MakeMove(mv) {
				s.printf("Illegal move.\n")
				continue
			}
			s.Pos.Ply = 0
			s.Pos.Gen()
			s.printResult()
		}
	}
}

func (s *Session) runBenchReport() {
	result := s.RunBench()
	for _, ms := range result.TrialMS {
		s.printf("Time: %d ms\n", ms)
	}
	s.printf("\n")
	s.printf("Nodes: %d\n", result.Nodes)
	s.printf("Best time: %d ms\n", result.BestMS)
	if result.BestMS == 0 {
		s.printf("(invalid)\n")
		return
	}
	s.printf("Nodes per second: %d (Score: %.3f)\n", int(result.NodesPerSecond), result.Score())
}

func (s *Session) runPerftReport(depth int) {
	start := clock.NowMS()
	sum := Perft(s.Pos, depth)
	elapsed := clock.NowMS() - start
	mhz := 0.0
	if elapsed > 0 {
		mhz = float64(sum) / float64(elapsed) / 1000.0
	}
	s.printf("perft(%d): %d   %.3f MHz\n", depth, sum, mhz)
}

func (s *Session) currentMoveText() string {
	if s.Pos.Hply == 0 {
		return ""
	}
	return s.Pos.Hist[s.Pos.Hply-1].Move.String()
}

func nextWord(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}

func nextInt(next func() (string, bool)) (int, bool) {
	w, ok := next()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return 0, false
	}
	return n, true
}
