// chrome/session.go
package chrome

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// SessionOptions controls how a browser process is launched.
type SessionOptions struct {
	Headless     bool
	NoSandbox    bool
	UserAgent    string
	WindowWidth  int
	WindowHeight int
	// ExtraFlags are passed straight through to the Chrome command line.
	ExtraFlags map[string]any
}

// Session owns one Chrome process and one tab.
type Session struct {
	Driver *Driver

	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewSession launches a Chrome instance and returns a Driver bound to its
// initial tab. Close must be called to tear the process down.
func NewSession(parent context.Context, opts SessionOptions, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}

	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts, chromedp.Flag("headless", opts.Headless))
	if opts.NoSandbox {
		allocOpts = append(allocOpts, chromedp.NoSandbox)
	}
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}
	if opts.WindowWidth > 0 && opts.WindowHeight > 0 {
		allocOpts = append(allocOpts, chromedp.WindowSize(opts.WindowWidth, opts.WindowHeight))
	}
	for key, value := range opts.ExtraFlags {
		allocOpts = append(allocOpts, chromedp.Flag(key, value))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(log.Sugar().Debugf))

	// Force the browser process to start now so launch failures surface here
	// instead of on the first query.
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	log.Debug("browser session started", zap.Bool("headless", opts.Headless))
	return &Session{
		Driver:      New(tabCtx, log),
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
	}, nil
}

// Close shuts down the tab and the browser process.
func (s *Session) Close() {
	s.cancelTab()
	s.cancelAlloc()
}
