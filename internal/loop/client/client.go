// Package client runs one terminal session of the game: it samples input,
// drives a game controller and renders the playfield with a HUD.
package client

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/bulletdodge/internal/draw"
	"github.com/tomz197/bulletdodge/internal/game"
	"github.com/tomz197/bulletdodge/internal/input"
	"github.com/tomz197/bulletdodge/internal/loop/config"
	"github.com/tomz197/bulletdodge/internal/loop/server"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	controller   *game.Controller
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	disconnectIn float64 // Inactivity disconnect threshold in seconds
	logger       *log.Logger
	now          func() time.Time
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Store        game.ScoreStore // Nil keeps the best score for this session only
	Tone         game.TonePlayer // Nil plays nothing
	Muted        bool            // Start with sound off
	Logger       *log.Logger     // Defaults to log.Default()

	// DisconnectIdle enables the inactivity warning and disconnect.
	// Remote sessions use it; the local game does not.
	DisconnectIdle bool

	Rand  *rand.Rand       // Defaults to a time-seeded source
	Clock func() time.Time // Defaults to time.Now
}

// NewClient creates a new client connected to the given server.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	username := opts.Username
	if len(username) > config.MaxUsernameLength {
		username = username[:config.MaxUsernameLength]
	}

	controller := game.NewController(game.Options{
		Store: opts.Store,
		Tone:  opts.Tone,
		Clock: clock,
		Rand:  opts.Rand,
	})
	if err := controller.Reset(); err != nil {
		logger.Warn("could not load best score", "user", username, "err", err)
	}
	if opts.Muted {
		controller.ToggleSound()
	}

	disconnectIn := 0.0
	if opts.DisconnectIdle {
		disconnectIn = config.InactivityDisconnectUser
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	l := computeLayout(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(l.canvasWidth, l.canvasHeight, game.PlayfieldWidth, game.PlayfieldHeight)
	canvas.SetOffset(l.offsetCol, l.offsetRow+config.HUDTopRows)
	chunkWriter := draw.NewChunkWriter(w, l.offsetCol, l.offsetRow)

	return &Client{
		server:       gs,
		handle:       gs.RegisterClient(username),
		state:        NewClientState(),
		controller:   controller,
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    clock(),
		username:     username,
		termSizeFunc: termSizeFunc,
		disconnectIn: disconnectIn,
		logger:       logger,
		now:          clock,
	}
}

// Controller returns the game controller driven by this client.
func (c *Client) Controller() *game.Controller {
	return c.controller
}

// Run starts the client loop. Blocks until the client quits, idles out, or the server stops.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	// Unregister from server
	defer c.server.UnregisterClient(c.handle.ID)

	lastTime := c.now()

	for c.state.Running {
		frameStart := c.now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()
		c.update(frameStart)

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := c.now().Sub(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput samples the input stream and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)
	idle := c.now().Sub(c.lastInput).Seconds()

	switch {
	case len(c.state.Input.Pressed) > 0:
		c.lastInput = c.now()
		c.state.isInactive = false
	case c.disconnectIn > 0 && idle > c.disconnectIn:
		c.logger.Info("disconnecting inactive client", "user", c.username)
		c.state.Running = false
	case c.disconnectIn > 0 && idle > config.InactivityWarnUser:
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			if event.Type == server.EventServerShutdown && !c.state.ShuttingDown {
				c.state.ShuttingDown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// update dispatches this frame's commands and advances the game.
func (c *Client) update(now time.Time) {
	if c.state.ShuttingDown {
		c.state.shutdownTimer -= c.state.delta.Seconds()
		if c.state.shutdownTimer <= 0 {
			c.state.Running = false
		}
		return
	}

	for _, cmd := range game.Commands(c.state.Input) {
		if cmd == game.CommandStart || cmd == game.CommandReset {
			input.ResetKeyInput(c.inputStream)
		}
		if err := c.controller.Dispatch(cmd); err != nil {
			c.logger.Warn("command failed", "user", c.username, "cmd", cmd, "err", err)
		}
	}

	wasRunning := c.controller.Session().Phase == game.PhaseRunning
	if err := c.controller.Frame(now, c.state.Input); err != nil {
		c.logger.Error("could not save best score", "user", c.username, "err", err)
	}

	s := c.controller.Session()
	if wasRunning && s.Phase == game.PhaseOver {
		c.logger.Info("run ended", "user", c.username, "survived", c.controller.ScoreText(), "record", s.NewRecord)
	}
}

// layout is the terminal area used for rendering.
type layout struct {
	renderWidth  int // Columns used, at most MaxTermWidth
	renderHeight int // Rows used, at most MaxTermHeight
	offsetCol    int // Columns skipped to center the render area
	offsetRow    int // Rows skipped to center the render area
	canvasWidth  int // Playfield columns
	canvasHeight int // Playfield rows, without the HUD rows
}

// computeLayout clamps terminal dimensions to the max render resolution,
// centers the render area and reserves the HUD rows.
func computeLayout(termWidth, termHeight int) layout {
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvasHeight := renderHeight - config.HUDTopRows - config.HUDBottomRows
	if canvasHeight < 1 {
		canvasHeight = 1
	}
	if renderWidth < 1 {
		renderWidth = 1
	}
	return layout{
		renderWidth:  renderWidth,
		renderHeight: renderHeight,
		offsetCol:    offsetCol,
		offsetRow:    offsetRow,
		canvasWidth:  renderWidth,
		canvasHeight: canvasHeight,
	}
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > config.MaxTermWidth {
		renderWidth = config.MaxTermWidth
	}
	if renderHeight > config.MaxTermHeight {
		renderHeight = config.MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	l := computeLayout(termWidth, termHeight)
	canvasRow := l.offsetRow + config.HUDTopRows

	if l.canvasWidth != c.canvas.TerminalWidth() || l.canvasHeight != c.canvas.TerminalHeight() ||
		l.offsetCol != c.canvas.OffsetCol() || canvasRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(l.canvasWidth, l.canvasHeight)
	c.canvas.SetOffset(l.offsetCol, canvasRow)
	c.chunkWriter.SetOffset(l.offsetCol, l.offsetRow)
}
