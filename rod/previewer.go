package rod

import (
	"context"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/skarvsladd/wikisite"
)

// Ensure Previewer implements wikisite.Previewer at compile time.
var _ wikisite.Previewer = (*Previewer)(nil)

// DefaultSettle is how long a page's network and DOM must stay quiet
// before it is captured. Generated sites pull Tailwind, fonts and React
// from CDNs after load.
const DefaultSettle = 500 * time.Millisecond

// Previewer captures generated sites as PNG screenshots.
type Previewer struct {
	browser *Browser

	Width  int
	Height int
	Settle time.Duration
}

// NewPreviewer returns a Previewer rendering on browser at the default
// desktop viewport.
func NewPreviewer(browser *Browser) *Previewer {
	return &Previewer{
		browser: browser,
		Width:   wikisite.PreviewWidth,
		Height:  wikisite.PreviewHeight,
		Settle:  DefaultSettle,
	}
}

// Viewport returns the device metrics applied to every preview page.
func (p *Previewer) Viewport() *proto.EmulationSetDeviceMetricsOverride {
	return &proto.EmulationSetDeviceMetricsOverride{
		Width:             p.Width,
		Height:            p.Height,
		DeviceScaleFactor: 1,
	}
}

// Preview loads html into a fresh tab and returns a PNG of the viewport.
func (p *Previewer) Preview(ctx context.Context, html string) ([]byte, error) {
	if html == "" {
		return nil, wikisite.Errorf(wikisite.EINVALID, "html required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := p.browser.acquire()
	if err != nil {
		return nil, wikisite.Errorf(wikisite.EPREVIEW, "Failed to start preview browser: %v", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, wikisite.Errorf(wikisite.EPREVIEW, "Failed to open preview page: %v", err)
	}
	defer func() {
		_ = page.Close()
		p.browser.release()
	}()

	tab := page.Context(ctx)

	if err := tab.SetViewport(p.Viewport()); err != nil {
		return nil, p.fail(ctx, err)
	}
	if err := tab.SetDocumentContent(html); err != nil {
		return nil, p.fail(ctx, err)
	}
	if err := tab.WaitStable(p.Settle); err != nil {
		return nil, p.fail(ctx, err)
	}

	img, err := tab.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, p.fail(ctx, err)
	}
	return img, nil
}

// Close stops the underlying browser.
func (p *Previewer) Close() error {
	return p.browser.Close()
}

// fail reports ctx's error as is, so callers can tell cancellation apart
// from rendering failures.
func (p *Previewer) fail(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return wikisite.Errorf(wikisite.EPREVIEW, "Failed to render preview: %v", err)
}
