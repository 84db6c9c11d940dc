package main

import (
	"fmt"
	"log/slog"

	"github.com/ugaris/modkit/wireformat"
)

// demoGameService backs the client services with a scripted character so a
// mod's output can be inspected on a terminal. Drawing calls are logged
// rather than rendered.
type demoGameService struct {
	state wireformat.GameState
}

func newDemoGameService() *demoGameService {
	return &demoGameService{
		state: wireformat.GameState{
			Username:   "Tester",
			HP:         50,
			Mana:       20,
			Gold:       1000,
			Experience: 500,
			Max:        [6]int{100, 40, 15, 12, 18, 20},
		},
	}
}

// advance mutates the scripted character between frames so fresh-read
// values visibly change.
func (s *demoGameService) advance() {
	s.state.Experience += 7
	s.state.Gold++
}

func (s *demoGameService) Note(msg string) int {
	slog.Info("mod note", "msg", msg)
	return 0
}

func (s *demoGameService) AddLine(msg string) {
	fmt.Println(msg)
}

func (s *demoGameService) DrawRect(x1, y1, x2, y2 int, color uint16) {
	slog.Info("draw rect", "x1", x1, "y1", y1, "x2", x2, "y2", y2, "color", color)
}

func (s *demoGameService) DrawLine(x1, y1, x2, y2 int, color uint16) {
	slog.Info("draw line", "x1", x1, "y1", y1, "x2", x2, "y2", y2, "color", color)
}

func (s *demoGameService) DrawText(x, y int, color uint16, flags int, text string) int {
	slog.Info("draw text", "x", x, "y", y, "color", color, "text", text)
	return 6 * len(text)
}

func (s *demoGameService) AnchorX(anchor int32) int { return 0 }

func (s *demoGameService) AnchorY(anchor int32) int { return 0 }

func (s *demoGameService) ExpToLevel(exp int) int {
	return exp / 100
}

func (s *demoGameService) GameState() (wireformat.GameState, error) {
	return s.state, nil
}

func (s *demoGameService) Palette() wireformat.Palette {
	return wireformat.Palette{
		White:  0x7FFF,
		Text:   0x6318,
		Health: 0x7C00,
		Mana:   0x001F,
	}
}
