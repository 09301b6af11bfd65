package shell

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"tscpgo/internal/display"
	"tscpgo/internal/engine"
	"tscpgo/internal/search"
)

// RunXBoard runs the xboard/WinBoard engine protocol loop until "quit"
// or EOF, ported from original_source/main.c's xboard(). Unlike the
// interactive shell it reads whole lines: a command's argument must be
// on the same line as the command, matching xboard's own line-buffered
// framing.
func (s *Session) RunXBoard(r io.Reader) error {
	s.printf("\n")
	s.resetGame()

	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 4096), 1<<20)

	for {
		if s.Pos.Side == s.computerSide {
			s.think()
			continue
		}

		if !lines.Scan() {
			return nil
		}
		line := lines.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		command := fields[0]
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch command {
		case "xboard":
			continue
		case "new":
			s.resetGame()
			s.computerSide = engine.Dark
		case "quit":
			return nil
		case "force":
			s.computerSide = engine.NoColor
		case "white":
			s.Pos.Side, s.Pos.XSide = engine.Light, engine.Dark
			s.Pos.Gen()
			s.computerSide = engine.Dark
		case "black":
			s.Pos.Side, s.Pos.XSide = engine.Dark, engine.Light
			s.Pos.Gen()
			s.computerSide = engine.Light
		case "st":
			if n, err := strconv.Atoi(arg); err == nil {
				s.Search.MaxTime = int64(n) * 1000
			}
			s.Search.MaxDepth = search.MaxLevelDepth
		case "sd":
			if n, err := strconv.Atoi(arg); err == nil {
				s.Search.MaxDepth = n
			}
			s.Search.MaxTime = 1 << 25
		case "time":
			if n, err := strconv.Atoi(arg); err == nil {
				s.Search.MaxTime = int64(n) * 10 / 30
			}
			s.Search.MaxDepth = search.MaxLevelDepth
		case "otim":
			continue
		case "go":
			s.computerSide = s.Pos.Side
		case "hint":
			mv := s.Search.Think(nil)
			if !mv.IsNil() {
				s.printf("Hint: %s\n", mv.String())
			}
		case "undo":
			if s.Pos.Hply == 0 {
				continue
			}
			s.Pos.TakeBack()
			s.Pos.Ply = 0
			s.Pos.Gen()
		case "remove":
			if s.Pos.Hply < 2 {
				continue
			}
			s.Pos.TakeBack()
			s.Pos.TakeBack()
			s.Pos.Ply = 0
			s.Pos.Gen()
		case "post":
			s.postMode = display.PostXBoard
		case "nopost":
			s.postMode = display.PostNone
		default:
			mv, ok := ParseMove(s.Pos, command)
			if !ok || !s.Pos.MakeMove(mv) {
				s.printf("Error (unknown command): %s\n", command)
				continue
			}
			s.Pos.Ply = 0
			s.Pos.Gen()
			s.printResult()
		}
	}
}
