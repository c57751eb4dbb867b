package export

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// ErrRendererUnavailable reports that no rasterization backend could start.
var ErrRendererUnavailable = errors.New("rendering backend unavailable")

// Rasterizer turns a rendered chart page into a PNG image.
type Rasterizer interface {
	Rasterize(ctx context.Context, page []byte, width, height int, scale float64) ([]byte, error)
}

const (
	defaultRenderTimeout = 30 * time.Second
	// echarts animates the first paint
	defaultSettleDelay = 1500 * time.Millisecond
)

// ChromeOptions configures ChromeRasterizer.
type ChromeOptions struct {
	// ExecPath overrides the browser executable.
	ExecPath string
	// Timeout bounds a single Rasterize call.
	Timeout time.Duration
	// Settle is how long to wait after the canvas appears.
	Settle time.Duration
}

// ChromeRasterizer screenshots chart pages in a headless Chrome instance.
// It is not safe for concurrent use.
type ChromeRasterizer struct {
	browserCtx context.Context
	cancel     context.CancelFunc
	timeout    time.Duration
	settle     time.Duration
}

// NewChromeRasterizer starts a headless browser. The caller must Close it.
func NewChromeRasterizer(ctx context.Context, o ChromeOptions) (*ChromeRasterizer, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Flag("headless", true))
	if o.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(o.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	cancel := func() {
		cancelBrowser()
		cancelAlloc()
	}

	// starts the browser
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}

	r := &ChromeRasterizer{
		browserCtx: browserCtx,
		cancel:     cancel,
		timeout:    o.Timeout,
		settle:     o.Settle,
	}
	if r.timeout <= 0 {
		r.timeout = defaultRenderTimeout
	}
	if r.settle <= 0 {
		r.settle = defaultSettleDelay
	}
	return r, nil
}

// Rasterize loads page in a fresh tab and captures it at width x height CSS
// pixels times scale.
func (r *ChromeRasterizer) Rasterize(ctx context.Context, page []byte, width, height int, scale float64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tabCtx, cancelTab := chromedp.NewContext(r.browserCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	url := "data:text/html;base64," + base64.StdEncoding.EncodeToString(page)
	var png []byte
	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(width), int64(height), chromedp.EmulateScale(scale)),
		chromedp.Navigate(url),
		chromedp.WaitVisible("canvas", chromedp.ByQuery),
		chromedp.Sleep(r.settle),
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return png, nil
}

// Close shuts the browser down.
func (r *ChromeRasterizer) Close() {
	r.cancel()
}
