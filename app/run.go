package app

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/nitrogen-relay/config"
	"github.com/lixenwraith/nitrogen-relay/engine"
)

// Run drives the session until quit or ctx ends, then finalizes the screen
// Events, frames and config reloads are all applied on the calling goroutine
func (a *App) Run(ctx context.Context, reloads <-chan config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.screen.EnableMouse()
	a.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	loop := engine.NewFrameLoop(engine.FrameInterval(a.cfg.UI.FrameRate), a.clock)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		// Returns and closes events once done is closed or the screen is finalized
		a.screen.ChannelEvents(events, done)
		return nil
	})

	a.Draw()

running:
	for {
		select {
		case <-ctx.Done():
			break running

		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				break running
			}

		case now := <-loop.Frames():
			a.Tick(now)
			a.Draw()

		case cfg, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			a.ApplyConfig(cfg)
		}
	}

	cancel()
	close(done)
	a.sched.CancelAll()
	a.animator.Stop()
	a.screen.Fini()
	return g.Wait()
}
