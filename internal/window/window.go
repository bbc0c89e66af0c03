// Package window runs the game in a desktop window through ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/bulletdodge/internal/game"
	"github.com/tomz197/bulletdodge/internal/input"
)

// Background is the playfield clear color.
var Background = color.RGBA{R: 0x0b, G: 0x0f, B: 0x1a, A: 0xff}

// Options configures the window.
type Options struct {
	Store  game.ScoreStore
	Tone   game.TonePlayer
	Muted  bool
	Scale  float64 // Window size relative to the playfield, default 1
	Logger *log.Logger
}

// Game adapts a game controller to ebiten.Game.
type Game struct {
	controller *game.Controller
	surface    *imageSurface
	logger     *log.Logger
}

// Compile-time check that Game implements ebiten.Game.
var _ ebiten.Game = (*Game)(nil)

// New creates a window game with a freshly reset controller.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	controller := game.NewController(game.Options{
		Store: opts.Store,
		Tone:  opts.Tone,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	if err := controller.Reset(); err != nil {
		logger.Warn("could not load best score", "err", err)
	}
	if opts.Muted {
		controller.ToggleSound()
	}

	return &Game{
		controller: controller,
		surface:    &imageSurface{},
		logger:     logger,
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(game.PlayfieldWidth*scale), int(game.PlayfieldHeight*scale))
	ebiten.SetWindowTitle("Bullet Dodge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(New(opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update samples the keyboard, dispatches commands and advances one frame.
func (g *Game) Update() error {
	in := readInput()
	if in.Quit {
		return ebiten.Termination
	}

	for _, cmd := range game.Commands(in) {
		if err := g.controller.Dispatch(cmd); err != nil {
			g.logger.Warn("command failed", "cmd", cmd, "err", err)
		}
	}
	if err := g.controller.Frame(time.Now(), in); err != nil {
		g.logger.Error("could not save best score", "err", err)
	}
	return nil
}

// Draw renders the playfield and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.img = screen
	if err := game.Render(g.controller.Session(), g.surface); err != nil {
		g.logger.Error("render failed", "err", err)
	}
	g.drawHUD(screen)
}

// Layout keeps the logical playfield size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return game.PlayfieldWidth, game.PlayfieldHeight
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.controller.Session()

	status := fmt.Sprintf("Time %s   Best %s   %s", g.controller.ScoreText(), g.controller.BestText(), s.Phase)
	ebitenutil.DebugPrintAt(screen, status, 8, 8)

	flags := fmt.Sprintf("Sound %s   Auto %s   Difficulty %.2f", onOff(s.SoundOn), onOff(s.AutoDifficulty), s.Difficulty)
	ebitenutil.DebugPrintAt(screen, flags, 8, 24)

	ebitenutil.DebugPrintAt(screen, "WASD/arrows move  Space start  R reset  M sound  T auto  +/- difficulty  Esc quit",
		8, game.PlayfieldHeight-20)

	cx, cy := game.PlayfieldWidth/2, game.PlayfieldHeight/2
	switch s.Phase {
	case game.PhaseIdle:
		ebitenutil.DebugPrintAt(screen, "BULLET DODGE", cx-36, cy-30)
		ebitenutil.DebugPrintAt(screen, "Press SPACE to start", cx-60, cy)
	case game.PhaseOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-27, cy-30)
		msg := "You survived " + g.controller.ScoreText()
		if s.NewRecord {
			msg += "  New best!"
		}
		ebitenutil.DebugPrintAt(screen, msg, cx-len(msg)*3, cy)
		ebitenutil.DebugPrintAt(screen, "Press R to reset", cx-48, cy+20)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// readInput maps the keyboard to a frame of input. Directions use the real key
// state; commands fire on the frame a key goes down.
func readInput() input.Input {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	just := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
		}
		return false
	}

	return input.Input{
		Up:    pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: pressed(ebiten.KeyD, ebiten.KeyArrowRight),

		Start:          just(ebiten.KeySpace, ebiten.KeyEnter),
		Reset:          just(ebiten.KeyR),
		ToggleSound:    just(ebiten.KeyM),
		ToggleAuto:     just(ebiten.KeyT),
		DifficultyUp:   just(ebiten.KeyEqual, ebiten.KeyNumpadAdd),
		DifficultyDown: just(ebiten.KeyMinus, ebiten.KeyNumpadSubtract),
		Quit:           just(ebiten.KeyEscape, ebiten.KeyQ),
	}
}

// imageSurface draws discs onto an ebiten image.
type imageSurface struct {
	img *ebiten.Image
}

func (s *imageSurface) Clear() {
	s.img.Fill(Background)
}

func (s *imageSurface) FillCircle(x, y, r float64, c color.RGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}
