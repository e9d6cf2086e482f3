package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/samdwyer/raycrawl/internal/gamedata"
	"github.com/samdwyer/raycrawl/internal/ui"
)

// Game hosts a Session on a terminal screen.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	cfg      Config
	log      zerolog.Logger
	input    inputState
	events   chan tcell.Event
}

// New creates a new game instance and its first floor.
func New(ctx context.Context, cfg Config, data *gamedata.Bundle, logger zerolog.Logger) (*Game, error) {
	session, err := NewSession(ctx, cfg, data, logger, nil)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		cfg:      cfg,
		log:      logger,
		events:   make(chan tcell.Event, 64),
	}, nil
}

// Run executes the main game loop at a fixed tick rate until the player quits
// or ctx is cancelled. Terminal events are read on a separate goroutine; every
// update and render happens here.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(done)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickRate))
	defer ticker.Stop()

	g.log.Info().Int("tick_rate", g.cfg.TickRate).Msg("game loop started")
	g.renderer.Render(g.session.Frame())

	for g.session.State() != StateQuit {
		select {
		case <-ctx.Done():
			g.log.Info().Err(ctx.Err()).Msg("game loop cancelled")
			return ctx.Err()
		case ev := <-g.events:
			g.handleEvent(ev)
		case <-ticker.C:
			g.session.Update(ctx, g.input.next())
			g.renderer.Render(g.session.Frame())
		}
	}

	g.log.Info().Int("ticks", g.session.Tick()).Int("depth", g.session.Floor().Depth).Msg("game loop finished")
	return nil
}

// pollEvents forwards terminal events until the screen closes or done is closed.
func (g *Game) pollEvents(done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case g.events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.session.Quit()

	case tcell.KeyUp:
		g.input.move(0, -1)
	case tcell.KeyDown:
		g.input.move(0, 1)
	case tcell.KeyLeft:
		g.input.move(-1, 0)
	case tcell.KeyRight:
		g.input.move(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			g.input.move(0, -1)
		case 's', 'S':
			g.input.move(0, 1)
		case 'a', 'A':
			g.input.move(-1, 0)
		case 'd', 'D':
			g.input.move(1, 0)
		case ' ':
			g.input.attack = true
		case 'e', 'E':
			g.input.interact = true
		case 'q', 'Q':
			g.input.potion = true
		}
	}
}

// handleMouseEvent swings toward the clicked cell.
func (g *Game) handleMouseEvent(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	sx, sy := ev.Position()
	wx, wy := g.renderer.Camera().ScreenToWorld(sx, sy)
	p := g.session.Player()
	g.input.attackToward(angleTo(p.X, p.Y, float64(wx)+0.5, float64(wy)+0.5))
}
