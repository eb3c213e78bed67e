// Package rod renders generated sites in headless Chrome.
package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is how many previews one Chrome process renders before
// serve mode swaps it for a fresh one.
const DefaultMaxPages = 50

// Browser owns the headless Chrome process behind site previews. A CLI run
// renders a single page; a long-running server renders many, so the process
// is relaunched after maxPages previews.
//
// Browser is safe for concurrent use.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int64
	maxPages int64
	mu       sync.Mutex
	closed   atomic.Bool
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithMaxPages sets how many previews run before Chrome is relaunched.
// Non-positive values keep DefaultMaxPages.
func WithMaxPages(n int64) BrowserOption {
	return func(b *Browser) {
		if n > 0 {
			b.maxPages = n
		}
	}
}

// NewBrowser starts the preview browser, downloading Chrome if no local
// install is found. Close must be called when previews are done.
func NewBrowser(opts ...BrowserOption) (*Browser, error) {
	b := &Browser{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.launch(); err != nil {
		return nil, err
	}
	return b, nil
}

// acquire returns the browser for the next preview. Each preview reports
// completion with release.
func (b *Browser) acquire() (*rod.Browser, error) {
	if b.closed.Load() {
		return nil, fmt.Errorf("browser closed")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if atomic.LoadInt64(&b.pages) >= b.maxPages {
		b.restart()
	}
	return b.browser, nil
}

func (b *Browser) release() {
	atomic.AddInt64(&b.pages, 1)
}

// Close stops Chrome. Later calls are no-ops.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shutdown()
}

func (b *Browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("hide-scrollbars").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = l
	return nil
}

// shutdown requires mu.
func (b *Browser) shutdown() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// restart relaunches Chrome for the next batch of previews. If the launch
// fails, previews keep using the current process. Requires mu.
func (b *Browser) restart() {
	oldBrowser, oldLauncher := b.browser, b.launcher
	b.browser, b.launcher = nil, nil

	if err := b.launch(); err != nil {
		b.browser, b.launcher = oldBrowser, oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&b.pages, 0)
}

// PID returns the preview browser's process ID, or zero once closed.
func (b *Browser) PID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}
