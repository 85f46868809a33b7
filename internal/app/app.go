// Package app wires the capture, render, paint, input, click, and
// supervisor tasks into the running application and owns their shared
// state and shutdown sequence.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lasangainc/toast-thebrowser/internal/browser"
	"github.com/lasangainc/toast-thebrowser/internal/progress"
	"github.com/lasangainc/toast-thebrowser/pkg/core"
	"github.com/lasangainc/toast-thebrowser/pkg/cursor"
	"github.com/lasangainc/toast-thebrowser/pkg/render"
	"github.com/lasangainc/toast-thebrowser/pkg/termio"
)

const (
	targetFPS      = 15
	frameInterval  = time.Second / targetFPS
	screenshotCap  = 2
	frameCap       = 1
	clickCap       = 10
)

// Config is the set of user-supplied parameters for a Run.
type Config struct {
	URL string
}

// Run launches the browser, opens the terminal, and drives the six
// concurrent tasks (capture, render, paint, input, click, supervisor)
// until shutdown, then tears everything down in reverse order.
func Run(ctx context.Context, cfg Config) error {
	reporter, progressCh := progress.New()
	reporter.Start()

	br, err := browser.Launch(ctx, cfg.URL, progressCh)
	close(progressCh)
	reporter.Wait()
	if err != nil {
		return err
	}
	defer br.Close()

	log.Info().Msg("initializing terminal...")
	term, err := termio.Open()
	if err != nil {
		return err
	}
	defer func() {
		if err := term.Close(); err != nil {
			log.Error().Err(err).Msg("failed to restore terminal state")
		}
	}()

	cols, rows, err := term.Size()
	if err != nil {
		return &core.ConfigurationError{Msg: fmt.Sprintf("failed to read terminal size: %v", err)}
	}
	log.Info().Int("cols", cols).Int("rows", rows).Msg("terminal size")

	renderer := termio.NewRenderer(os.Stdout)
	pipeline := render.NewPipeline()
	cursorPos := newCursorState(cols, rows)

	screenshots := make(chan core.Screenshot, screenshotCap)
	frames := make(chan *core.TerminalFrame, frameCap)
	clicks := make(chan core.CursorPosition, clickCap)
	shutdown := make(chan struct{}, 1)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(5)
	go captureTask(runCtx, &wg, br, screenshots)
	go renderTask(runCtx, &wg, pipeline, cols, rows, screenshots, frames)
	go paintTask(runCtx, &wg, renderer, cursorPos, frames)
	go inputTask(runCtx, &wg, cursorPos, clicks, shutdown)
	go clickTask(runCtx, &wg, br, cols, rows, clicks)

	log.Info().Msg("rendering started. use arrow keys to move cursor, enter to click, ctrl+c to exit.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	select {
	case <-shutdown:
		log.Info().Msg("shutdown signal received")
	case <-sig:
		log.Info().Msg("interrupt signal received")
	case <-ctx.Done():
		log.Info().Msg("parent context cancelled")
	}

	log.Info().Msg("shutting down...")
	cancel()
	wg.Wait()

	if err := renderer.Clear(); err != nil {
		log.Error().Err(err).Msg("failed to clear terminal surface before exit")
	}
	return nil
}

// captureTask ticks at targetFPS, capturing a screenshot on every tick
// that isn't still catching up from a missed one, and forwards it without
// ever blocking: a full channel means the frame is dropped, not queued.
func captureTask(ctx context.Context, wg *sync.WaitGroup, page browser.Page, out chan<- core.Screenshot) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("capture task panicked")
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			shot, err := page.Capture(ctx)
			if err != nil {
				log.Error().Err(err).Msg("failed to capture screenshot")
				continue
			}
			if !trySend(out, shot) {
				log.Info().Msg("dropped screenshot frame (channel full)")
			}
		}
	}
}

// renderTask decodes, scales, and half-block-converts each screenshot on
// this goroutine (render is CPU-bound, so a dedicated goroutine plays the
// role a blocking worker pool thread would). The send to Paint blocks,
// letting Paint's own pace throttle Render.
func renderTask(
	ctx context.Context,
	wg *sync.WaitGroup,
	pipeline *render.Pipeline,
	cols, rows int,
	in <-chan core.Screenshot,
	out chan<- *core.TerminalFrame,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case shot, ok := <-in:
			if !ok {
				return
			}
			frame, err := renderFrame(pipeline, shot, cols, rows)
			if err != nil {
				log.Error().Err(err).Msg("failed to render frame")
				continue
			}
			select {
			case out <- frame:
			case <-ctx.Done():
				return
			}
		}
	}
}

// renderFrame wraps Pipeline.Render with panic recovery so one bad frame
// never takes down the render task.
func renderFrame(pipeline *render.Pipeline, shot core.Screenshot, cols, rows int) (frame *core.TerminalFrame, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render worker panicked: %v", r)
		}
	}()
	return pipeline.Render(shot, cols, rows)
}

// paintTask stamps the cursor overlay onto each frame and hands it to the
// terminal renderer.
func paintTask(
	ctx context.Context,
	wg *sync.WaitGroup,
	renderer *termio.Renderer,
	cursorPos *cursorState,
	in <-chan *core.TerminalFrame,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-in:
			if !ok {
				return
			}
			cursor.Draw(frame, cursorPos.Get())
			if err := renderer.Render(frame); err != nil {
				log.Error().Err(err).Msg("failed to render to terminal")
			}
		}
	}
}

// inputTask decodes keyboard input, moving the shared cursor position and
// emitting clicks and the shutdown signal.
func inputTask(
	ctx context.Context,
	wg *sync.WaitGroup,
	cursorPos *cursorState,
	clicks chan<- core.CursorPosition,
	shutdown chan<- struct{},
) {
	defer wg.Done()

	keys := termio.NewKeyReader(os.Stdin)

	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-keys.Keys():
			if !ok {
				return
			}
			switch key {
			case termio.KeyCtrlC:
				log.Info().Msg("ctrl+c detected from keyboard")
				trySend(shutdown, struct{}{})
				return
			case termio.KeyUp:
				cursorPos.Move(0, -1)
			case termio.KeyDown:
				cursorPos.Move(0, 1)
			case termio.KeyLeft:
				cursorPos.Move(-1, 0)
			case termio.KeyRight:
				cursorPos.Move(1, 0)
			case termio.KeyEnter:
				pos := cursorPos.Get()
				log.Info().Int("x", pos.X).Int("y", pos.Y).Msg("enter pressed - sending click")
				if !trySend(clicks, pos) {
					log.Info().Msg("dropped click event (channel full)")
				}
			}
		}
	}
}

// clickTask maps terminal-cell coordinates into browser viewport
// coordinates and forwards the click to the page.
func clickTask(ctx context.Context, wg *sync.WaitGroup, page browser.Page, cols, rows int, clicks <-chan core.CursorPosition) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case pos, ok := <-clicks:
			if !ok {
				return
			}
			bx, by := viewportCoords(pos, cols, rows)
			log.Info().
				Int("term_x", pos.X).Int("term_y", pos.Y).
				Float64("browser_x", bx).Float64("browser_y", by).
				Msg("clicking")
			if err := page.Click(ctx, bx, by); err != nil {
				log.Error().Err(err).Msg("failed to send click")
			}
		}
	}
}

// viewportCoords scales a terminal cell position into the fixed browser
// viewport.
func viewportCoords(pos core.CursorPosition, cols, rows int) (x, y float64) {
	x = float64(pos.X) / float64(cols) * browser.ViewportWidth
	y = float64(pos.Y) / float64(rows) * browser.ViewportHeight
	return x, y
}
