// component/piece.go

// Package component implements the addressable unit of the page-object model:
// a Piece owns one locator plus the chain of its ancestors' locators, and
// resolves them against the live DOM on every operation. Construction never
// touches the page; element handles are call-scoped and never cached, because
// Perspective re-renders freely and a held handle can go stale between calls.
package component

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
	"github.com/xkilldash9x/perspective-pom/wait"
)

const (
	// DefaultTimeout bounds DOM polling when a call site supplies no override.
	DefaultTimeout = 10 * time.Second
	// DefaultPollInterval is how frequently the DOM is re-queried while waiting.
	DefaultPollInterval = 500 * time.Millisecond
)

// Piece is a distinct web element which is usually a piece of a greater
// component. Many pieces share one driver handle; no piece owns it.
type Piece struct {
	drv     driver.Driver
	log     *zap.Logger
	own     locator.Locator
	parents locator.Chain
	chain   locator.Chain
	timeout time.Duration
	poll    time.Duration
	desc    string
}

// Option configures a Piece at construction.
type Option func(*Piece)

// WithParents supplies the locator chain of the piece's ancestors. Children
// then resolve only within matches of that chain.
func WithParents(parents locator.Chain) Option {
	return func(p *Piece) { p.parents = parents.Append() }
}

// WithTimeout overrides the default DOM polling timeout for this piece.
func WithTimeout(d time.Duration) Option {
	return func(p *Piece) { p.timeout = d }
}

// WithPollInterval overrides how frequently this piece polls the DOM. Used
// primarily for performance-sensitive suites.
func WithPollInterval(d time.Duration) Option {
	return func(p *Piece) { p.poll = d }
}

// WithDescription attaches a human-readable description, used only to enrich
// failure messages.
func WithDescription(desc string) Option {
	return func(p *Piece) { p.desc = desc }
}

// WithLogger supplies a logger; defaults to zap.NewNop.
func WithLogger(log *zap.Logger) Option {
	return func(p *Piece) { p.log = log }
}

// New constructs a Piece. A zero own-locator makes the piece a passthrough
// that resolves purely through its parent chain; a passthrough with no
// parents resolves against the whole document.
func New(drv driver.Driver, own locator.Locator, opts ...Option) *Piece {
	p := &Piece{
		drv:     drv,
		log:     zap.NewNop(),
		own:     own,
		timeout: DefaultTimeout,
		poll:    DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.rebuildChain()
	return p
}

func (p *Piece) rebuildChain() {
	chain := make(locator.Chain, 0, len(p.parents)+1)
	chain = append(chain, p.parents...)
	if !p.own.IsZero() {
		chain = append(chain, p.own)
	}
	p.chain = chain
}

// SetLocator forces a change in the locator used to find the piece in the
// DOM. The effective chain is recomputed immediately.
func (p *Piece) SetLocator(loc locator.Locator) {
	p.own = loc
	p.rebuildChain()
}

// EffectiveChain returns a copy of the full ancestor-plus-own locator chain.
func (p *Piece) EffectiveChain() locator.Chain { return p.chain.Append() }

// CSSLocator returns the fully combined CSS selector for this piece.
func (p *Piece) CSSLocator() (locator.Locator, error) { return locator.BuildCSS(p.chain) }

// XPathLocator returns the fully combined XPath selector for this piece.
func (p *Piece) XPathLocator() (locator.Locator, error) { return locator.BuildXPath(p.chain) }

// Driver returns the shared session handle, for composing child pieces.
func (p *Piece) Driver() driver.Driver { return p.drv }

// Timeout returns the piece's default polling timeout.
func (p *Piece) Timeout() time.Duration { return p.timeout }

// PollInterval returns the piece's polling interval.
func (p *Piece) PollInterval() time.Duration { return p.poll }

// Description returns the piece's human-readable description, if any.
func (p *Piece) Description() string { return p.desc }

// Logger returns the piece's logger, for composing child pieces.
func (p *Piece) Logger() *zap.Logger { return p.log }

// callParams carries per-call overrides. The timeout override is tri-state:
// absent means "use the piece default" and an explicit zero means "check once,
// do not poll".
type callParams struct {
	timeout time.Duration
	settle  time.Duration
}

// CallOption overrides timing for a single operation.
type CallOption func(*callParams)

// Within overrides the polling timeout for one call. Within(0) means a single
// immediate check.
func Within(d time.Duration) CallOption {
	return func(cp *callParams) { cp.timeout = d }
}

// Settle adds a fixed delay after a successful action, giving the session's
// reactive bindings time to propagate. The application emits no signal when
// bindings finish, so this is an explicit settle-time budget, not a condition
// to poll for.
func Settle(d time.Duration) CallOption {
	return func(cp *callParams) { cp.settle = d }
}

func (p *Piece) apply(opts []CallOption) callParams {
	cp := callParams{timeout: p.timeout}
	for _, opt := range opts {
		opt(&cp)
	}
	return cp
}

// Find returns the first element in the DOM matching this piece's combined
// CSS selector, polling up to the timeout. Matching order is document order,
// not viewport order.
func (p *Piece) Find(ctx context.Context, opts ...CallOption) (driver.Element, error) {
	cp := p.apply(opts)
	loc, err := locator.BuildCSS(p.chain)
	if err != nil {
		return nil, err
	}
	return driver.Resolve(ctx, p.drv, loc, cp.timeout, p.poll, p.desc)
}

// FindAll returns every element matching the combined CSS selector. It
// succeeds as soon as at least one match exists.
func (p *Piece) FindAll(ctx context.Context, opts ...CallOption) ([]driver.Element, error) {
	cp := p.apply(opts)
	loc, err := locator.BuildCSS(p.chain)
	if err != nil {
		return nil, err
	}
	return driver.ResolveAll(ctx, p.drv, loc, cp.timeout, p.poll, p.desc)
}

// XFind is Find with the chain combined as XPath instead of CSS.
func (p *Piece) XFind(ctx context.Context, opts ...CallOption) (driver.Element, error) {
	cp := p.apply(opts)
	loc, err := locator.BuildXPath(p.chain)
	if err != nil {
		return nil, err
	}
	return driver.Resolve(ctx, p.drv, loc, cp.timeout, p.poll, p.desc)
}

// XFindAll is FindAll with the chain combined as XPath instead of CSS.
func (p *Piece) XFindAll(ctx context.Context, opts ...CallOption) ([]driver.Element, error) {
	cp := p.apply(opts)
	loc, err := locator.BuildXPath(p.chain)
	if err != nil {
		return nil, err
	}
	return driver.ResolveAll(ctx, p.drv, loc, cp.timeout, p.poll, p.desc)
}

// Click clicks the piece. The element is first resolved, then the click is
// retried inside a poll loop for as long as the target exists but is not yet
// interactable: some Perspective pieces (dropdown option items, for one)
// appear in the DOM before they can be clicked. A Settle option adds a fixed
// post-click delay for binding propagation.
func (p *Piece) Click(ctx context.Context, opts ...CallOption) error {
	cp := p.apply(opts)
	deadline := time.Now().Add(cp.timeout)
	if _, err := p.Find(ctx, Within(cp.timeout)); err != nil {
		return err
	}
	pred := func(ctx context.Context) (bool, error) {
		el, err := p.Find(ctx, Within(0))
		if err != nil {
			// The page may be mid-render; re-resolve on the next poll.
			return false, err
		}
		if err := el.Click(ctx); err != nil {
			if errors.Is(err, driver.ErrNotInteractable) || errors.Is(err, driver.ErrStale) {
				return false, nil
			}
			return false, wait.Abort(err)
		}
		return true, nil
	}
	// Resolution time counts against the same budget, so a slow-appearing
	// element does not double the effective timeout. At least one click is
	// still attempted even when resolution used the whole window.
	remaining := time.Until(deadline)
	if remaining < 0 {
		remaining = 0
	}
	if err := wait.UntilTrue(ctx, pred, remaining, p.poll); err != nil {
		if wait.IsConditionNotMet(err) {
			return fmt.Errorf("the element never became clickable: %w", err)
		}
		return err
	}
	p.log.Debug("clicked", zap.String("selector", p.selectorForLog()), zap.String("description", p.desc))
	return p.settleFor(ctx, cp.settle)
}

// ClickWithOffset clicks offset from the piece's origin by (dx, dy) pixels.
func (p *Piece) ClickWithOffset(ctx context.Context, dx, dy float64, opts ...CallOption) error {
	cp := p.apply(opts)
	el, err := p.Find(ctx, Within(cp.timeout))
	if err != nil {
		return err
	}
	if err := el.ClickAt(ctx, dx, dy); err != nil {
		return err
	}
	return p.settleFor(ctx, cp.settle)
}

// DoubleClick double-clicks the piece.
func (p *Piece) DoubleClick(ctx context.Context, opts ...CallOption) error {
	cp := p.apply(opts)
	el, err := p.Find(ctx, Within(cp.timeout))
	if err != nil {
		return err
	}
	if err := el.DoubleClick(ctx); err != nil {
		return err
	}
	return p.settleFor(ctx, cp.settle)
}

// RightClick right-clicks the piece.
func (p *Piece) RightClick(ctx context.Context, opts ...CallOption) error {
	cp := p.apply(opts)
	el, err := p.Find(ctx, Within(cp.timeout))
	if err != nil {
		return err
	}
	if err := el.RightClick(ctx); err != nil {
		return err
	}
	return p.settleFor(ctx, cp.settle)
}

// Hover moves the pointer over the piece.
func (p *Piece) Hover(ctx context.Context, opts ...CallOption) error {
	cp := p.apply(opts)
	el, err := p.Find(ctx, Within(cp.timeout))
	if err != nil {
		return err
	}
	return el.Hover(ctx)
}

// Text returns the piece's rendered text.
func (p *Piece) Text(ctx context.Context, opts ...CallOption) (string, error) {
	el, err := p.Find(ctx, opts...)
	if err != nil {
		return "", err
	}
	return el.Text(ctx)
}

// Attribute returns the value of an HTML attribute of the piece.
func (p *Piece) Attribute(ctx context.Context, name string, opts ...CallOption) (string, error) {
	el, err := p.Find(ctx, opts...)
	if err != nil {
		return "", err
	}
	return el.Attribute(ctx, name)
}

// HasAttribute reports whether the piece carries the named attribute. Boolean
// attributes (disabled, checked) are present with an empty value, which
// Attribute alone cannot distinguish from absence.
func (p *Piece) HasAttribute(ctx context.Context, name string, opts ...CallOption) (bool, error) {
	el, err := p.Find(ctx, opts...)
	if err != nil {
		return false, err
	}
	return el.HasAttribute(ctx, name)
}

// Value returns the piece's live value property. Perspective inputs are
// controlled, so the value attribute stops tracking what the field holds the
// moment the user or a binding writes to it.
func (p *Piece) Value(ctx context.Context, opts ...CallOption) (string, error) {
	el, err := p.Find(ctx, opts...)
	if err != nil {
		return "", err
	}
	return el.Value(ctx)
}

// CSSValue returns the computed value of a CSS property of the piece.
func (p *Piece) CSSValue(ctx context.Context, property string, opts ...CallOption) (string, error) {
	el, err := p.Find(ctx, opts...)
	if err != nil {
		return "", err
	}
	return el.CSSValue(ctx, property)
}

// ComputedWidth returns the computed width of the piece. Returned as a string
// because of the possibility of units; flex containers report "auto", in
// which case the box width is returned instead.
func (p *Piece) ComputedWidth(ctx context.Context, includeUnits bool) (string, error) {
	return p.computedDimension(ctx, "width", includeUnits)
}

// ComputedHeight returns the computed height of the piece, with the same
// contract as ComputedWidth.
func (p *Piece) ComputedHeight(ctx context.Context, includeUnits bool) (string, error) {
	return p.computedDimension(ctx, "height", includeUnits)
}

func (p *Piece) computedDimension(ctx context.Context, property string, includeUnits bool) (string, error) {
	el, err := p.Find(ctx)
	if err != nil {
		return "", err
	}
	value, err := el.CSSValue(ctx, property)
	if err != nil {
		return "", err
	}
	if value == "auto" {
		rect, err := el.Rect(ctx)
		if err != nil {
			return "", err
		}
		dim := rect.Width
		if property == "height" {
			dim = rect.Height
		}
		// Always numeric, so no units to strip.
		return strconv.FormatFloat(dim, 'f', -1, 64), nil
	}
	if !includeUnits {
		value = strings.TrimSuffix(value, "px")
	}
	return value, nil
}

// Origin returns the upper-left corner of the piece in viewport coordinates.
func (p *Piece) Origin(ctx context.Context) (driver.Point, error) {
	rect, err := p.rect(ctx)
	if err != nil {
		return driver.Point{}, err
	}
	return rect.Origin(), nil
}

// Termination returns the bottom-right corner of the piece in viewport
// coordinates.
func (p *Piece) Termination(ctx context.Context) (driver.Point, error) {
	rect, err := p.rect(ctx)
	if err != nil {
		return driver.Point{}, err
	}
	return rect.Termination(), nil
}

func (p *Piece) rect(ctx context.Context) (driver.Rect, error) {
	el, err := p.Find(ctx)
	if err != nil {
		return driver.Rect{}, err
	}
	return el.Rect(ctx)
}

// ScrollIntoView vertically scrolls the piece into the viewport.
func (p *Piece) ScrollIntoView(ctx context.Context, alignToTop bool) error {
	el, err := p.Find(ctx)
	if err != nil {
		return err
	}
	return el.ScrollIntoView(ctx, alignToTop)
}

// ReleaseFocus forces a blur event on the piece.
func (p *Piece) ReleaseFocus(ctx context.Context) error {
	el, err := p.Find(ctx)
	if err != nil {
		return err
	}
	return el.Blur(ctx)
}

// WaitOnBinding is a bare cooperative delay, used to let bindings evaluate
// before code continues.
func (p *Piece) WaitOnBinding(ctx context.Context, d time.Duration) error {
	return p.settleFor(ctx, d)
}

func (p *Piece) settleFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Piece) selectorForLog() string {
	loc, err := locator.BuildCSS(p.chain)
	if err != nil {
		return fmt.Sprintf("%v", p.chain)
	}
	return loc.Value
}
