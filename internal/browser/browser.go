// Package browser drives a headless Chrome instance as the page source
// for the render pipeline: it launches the browser, streams screenshots,
// and forwards clicks back into the page.
package browser

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"

	"github.com/lasangainc/toast-thebrowser/internal/progress"
	"github.com/lasangainc/toast-thebrowser/pkg/core"
)

// ViewportWidth and ViewportHeight are the fixed browser viewport size.
// Terminal-to-browser coordinate mapping (see internal/app) scales
// against these.
const (
	ViewportWidth  = 1920
	ViewportHeight = 1080

	screenshotQuality = 85

	navigationSettleDelay = 1000 * time.Millisecond
	mouseMoveDelay        = 10 * time.Millisecond
	mousePressDelay       = 50 * time.Millisecond
)

// Page is the capture/click/scroll surface the capture and click tasks
// depend on. Satisfied by *Browser; tests substitute a fake.
type Page interface {
	Capture(ctx context.Context) (core.Screenshot, error)
	Click(ctx context.Context, x, y float64) error
	Scroll(ctx context.Context, deltaY int) error
	Close()
}

// Browser owns a headless Chrome allocator and a single navigated page.
type Browser struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc
}

// Launch starts headless Chrome and navigates it to url, waiting for the
// page to settle before returning. CHROME_PATH, if set, overrides the
// executable chromedp would otherwise discover on PATH. progressCh, if
// non-nil, receives a single-step update for each of the two startup
// phases ("Launching browser", "Loading page").
func Launch(ctx context.Context, url string, progressCh chan<- progress.Update) (*Browser, error) {
	report(progressCh, "Launching browser")

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(ViewportWidth, ViewportHeight),
	)

	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		log.Info().Str("chrome_path", chromePath).Msg("using custom chrome executable")
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	b := &Browser{allocCtx: allocCtx, allocCancel: allocCancel, ctx: browserCtx, cancel: cancel}

	report(progressCh, "Loading page")
	if err := chromedp.Run(browserCtx, chromedp.Navigate(url), chromedp.Sleep(navigationSettleDelay)); err != nil {
		b.Close()
		return nil, &core.BrowserError{Op: "launch", Err: err}
	}

	log.Info().Str("url", url).Msg("page initialized and ready for interaction")
	return b, nil
}

func report(progressCh chan<- progress.Update, phase string) {
	if progressCh == nil {
		return
	}
	progressCh <- progress.Update{Phase: phase}
}

// Capture takes a JPEG screenshot of the current page.
func (b *Browser) Capture(ctx context.Context) (core.Screenshot, error) {
	var data []byte
	err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		data, err = page.CaptureScreenshot().
			WithFormat(page.CaptureScreenshotFormatJpeg).
			WithQuality(screenshotQuality).
			Do(ctx)
		return err
	}))
	if err != nil {
		return core.Screenshot{}, &core.BrowserError{Op: "capture", Err: err}
	}
	return core.Screenshot{Data: data, Format: core.ImageFormatJPEG}, nil
}

// Click dispatches a synthetic mouse move, press, and release at the given
// viewport coordinates, matching how a real pointer would interact with
// the page.
func (b *Browser) Click(ctx context.Context, x, y float64) error {
	err := chromedp.Run(ctx,
		dispatchMouse(input.MouseMoved, x, y),
		chromedp.Sleep(mouseMoveDelay),
		dispatchMouse(input.MousePressed, x, y),
		chromedp.Sleep(mousePressDelay),
		dispatchMouse(input.MouseReleased, x, y),
	)
	if err != nil {
		return &core.BrowserError{Op: "click", Err: err}
	}
	return nil
}

func dispatchMouse(typ input.MouseType, x, y float64) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		event := input.DispatchMouseEvent(typ, x, y)
		if typ == input.MousePressed || typ == input.MouseReleased {
			event = event.WithButton(input.Left).WithClickCount(1)
		}
		return event.Do(ctx)
	})
}

// Scroll scrolls the page vertically by deltaY pixels.
func (b *Browser) Scroll(ctx context.Context, deltaY int) error {
	if err := chromedp.Run(ctx, chromedp.Evaluate(scrollScript(deltaY), nil)); err != nil {
		return &core.BrowserError{Op: "scroll", Err: err}
	}
	return nil
}

func scrollScript(deltaY int) string {
	return "window.scrollBy(0, " + strconv.Itoa(deltaY) + ")"
}

// Close tears down the browser process and its allocator.
func (b *Browser) Close() {
	b.cancel()
	b.allocCancel()
}
