package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/bulletdodge/internal/input"
	"github.com/tomz197/bulletdodge/internal/object"
)

// ScoreStore persists the best survival time.
type ScoreStore interface {
	Best() (float64, error)
	SaveBest(score float64) error
}

// TonePlayer plays a short tone. Failures are ignored by the controller.
type TonePlayer interface {
	Play(freq float64, duration time.Duration, volume float64) error
}

// Options configures a Controller. Every field is optional.
type Options struct {
	Screen object.Screen    // Defaults to the standard playfield
	Store  ScoreStore       // Nil keeps the best score in memory only
	Tone   TonePlayer       // Nil plays nothing
	Clock  func() time.Time // Defaults to time.Now
	Rand   *rand.Rand       // Defaults to a time-seeded source
}

// Controller owns a session and drives its lifecycle from host commands and frames.
type Controller struct {
	session *Session
	store   ScoreStore
	tone    TonePlayer
	clock   func() time.Time
}

// NewController creates a controller with an idle session.
// Call Reset afterwards to load the persisted best score.
func NewController(opts Options) *Controller {
	screen := opts.Screen
	if screen.Width <= 0 || screen.Height <= 0 {
		screen = object.NewScreen(PlayfieldWidth, PlayfieldHeight)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Controller{
		session: NewSession(screen, opts.Rand),
		store:   opts.Store,
		tone:    opts.Tone,
		clock:   clock,
	}
}

// Session returns the controlled session for rendering and display.
func (c *Controller) Session() *Session {
	return c.session
}

// Start begins a run from Idle. It is a no-op in any other phase, so repeated
// starts never reset the frame reference or the elapsed time.
func (c *Controller) Start() {
	s := c.session
	if s.Phase != PhaseIdle {
		return
	}

	s.Phase = PhaseRunning
	s.Elapsed = 0
	s.NewRecord = false
	s.LastFrame = c.clock()

	c.playTone(StartToneFreq, StartToneDuration, StartToneVolume)
}

// Reset returns the session to Idle from any phase and reloads the best score.
// If the store cannot be read the current best is kept and the error returned.
func (c *Controller) Reset() error {
	s := c.session
	s.reset()

	if c.store == nil {
		return nil
	}
	best, err := c.store.Best()
	if err != nil {
		return fmt.Errorf("load best score: %w", err)
	}
	// Reset never lowers the best, even after a failed save.
	s.Best = math.Max(s.Best, best)
	return nil
}

// ToggleSound flips whether tones are played.
func (c *Controller) ToggleSound() {
	c.session.SoundOn = !c.session.SoundOn
}

// ToggleAutoDifficulty flips auto difficulty. While off, difficulty keeps its
// last value and can only change through AdjustDifficulty.
func (c *Controller) ToggleAutoDifficulty() {
	c.session.AutoDifficulty = !c.session.AutoDifficulty
}

// AdjustDifficulty changes difficulty by delta while auto difficulty is off.
// Difficulty never goes below zero.
func (c *Controller) AdjustDifficulty(delta float64) {
	s := c.session
	if s.AutoDifficulty {
		return
	}
	s.Difficulty = math.Max(0, s.Difficulty+delta)
}

// Frame simulates one frame stamped with now. Delta time is measured from the
// previous frame, or from Start for the first frame of a run.
// The returned error only reports a failure to persist a new best score.
func (c *Controller) Frame(now time.Time, in input.Input) error {
	s := c.session
	if s.Phase != PhaseRunning {
		return nil
	}

	dt := now.Sub(s.LastFrame)
	if dt < 0 {
		dt = 0
	}
	s.LastFrame = now

	if Step(s, in, dt) {
		return c.gameOver()
	}
	return nil
}

// gameOver ends the run and records a new best if the run beat it.
func (c *Controller) gameOver() error {
	s := c.session
	s.Phase = PhaseOver
	c.playTone(GameOverToneFreq, GameOverToneDuration, GameOverToneVolume)

	if s.Elapsed <= s.Best {
		return nil
	}
	s.Best = s.Elapsed
	s.NewRecord = true

	if c.store == nil {
		return nil
	}
	if err := c.store.SaveBest(s.Best); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}

func (c *Controller) playTone(freq float64, duration time.Duration, volume float64) {
	if !c.session.SoundOn || c.tone == nil {
		return
	}
	_ = c.tone.Play(freq, duration, volume)
}

// ScoreText formats the current run's elapsed time for display.
func (c *Controller) ScoreText() string {
	return FormatSeconds(c.session.Elapsed)
}

// BestText formats the best survival time for display.
func (c *Controller) BestText() string {
	return FormatSeconds(c.session.Best)
}

// FormatSeconds renders a duration in seconds with two decimals, e.g. "2.00 s".
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.2f s", seconds)
}
