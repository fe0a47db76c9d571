// perspective/component.go

// Package perspective provides page objects for Ignition Perspective
// components. A Component extends the base piece with awareness of the
// quality overlays Perspective draws over components whose tag bindings
// report bad, unknown, or pending quality.
package perspective

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xkilldash9x/perspective-pom/component"
	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
	"github.com/xkilldash9x/perspective-pom/wait"
)

// Quality mirrors Perspective's handling of Ignition quality codes. The
// wording differs slightly from the gateway's ("unknown" vs "uncertain").
type Quality string

const (
	QualityError   Quality = "error"
	QualityUnknown Quality = "unknown"
	QualityPending Quality = "pending"
)

// Positions of the subsections within the quality popover body.
const (
	popoverSubcodeIndex     = 0
	popoverPropertyIndex    = 1
	popoverDescriptionIndex = 2
)

// Component is a Perspective component proper, as opposed to a piece of one.
// It only exists inside a Perspective session and knows how to inspect the
// quality overlay the session may draw over it.
type Component struct {
	*component.Piece

	overlayState    *component.Piece
	overlayFooter   *component.Piece
	overlayHeader   *component.Piece
	headerBadges    *component.Piece
	microIcons      *component.Piece
	popover         *component.Piece
	popoverSections *component.Piece
}

// NewComponent builds a Component rooted at the supplied locator.
func NewComponent(drv driver.Driver, own locator.Locator, opts ...component.Option) *Component {
	base := component.New(drv, own, opts...)
	c := &Component{Piece: base}

	childOpts := func(parent *component.Piece, timeout time.Duration) []component.Option {
		return []component.Option{
			component.WithParents(parent.EffectiveChain()),
			component.WithTimeout(timeout),
			component.WithPollInterval(base.PollInterval()),
			component.WithLogger(base.Logger()),
		}
	}

	c.overlayState = component.New(drv, locator.CSS("div.cfo-parent"), childOpts(base, time.Second)...)
	c.overlayFooter = component.New(drv, locator.CSS("div.cfo-footer"), childOpts(c.overlayState, 0)...)
	c.overlayHeader = component.New(drv, locator.CSS("div.cfo-header"), childOpts(c.overlayState, 0)...)
	c.headerBadges = component.New(drv, locator.CSS("div.icon-wrapper svg"), childOpts(c.overlayHeader, 0)...)
	c.microIcons = component.New(drv, locator.CSS("div.micro-icon"), childOpts(c.overlayFooter, 0)...)
	// The popover renders at the document root, not under the component.
	c.popover = component.New(drv, locator.CSS("div.component-popover"),
		component.WithTimeout(time.Second),
		component.WithPollInterval(base.PollInterval()),
		component.WithLogger(base.Logger()))
	c.popoverSections = component.New(drv, locator.CSS("div.popover-body-section div.body-content"),
		component.WithParents(c.popover.EffectiveChain()),
		component.WithPollInterval(base.PollInterval()),
		component.WithLogger(base.Logger()))
	return c
}

// QualityOverlayDisplayed reports whether any quality overlay is currently
// drawn over the component.
func (c *Component) QualityOverlayDisplayed(ctx context.Context) bool {
	_, err := c.overlayState.Find(ctx)
	return err == nil
}

// OverlayInMicroMode reports whether the overlay has collapsed into its
// compact form, which happens when the component is too small to fit the
// full header and footer.
func (c *Component) OverlayInMicroMode(ctx context.Context) bool {
	el, err := c.microIcons.Find(ctx, component.Within(0))
	if err != nil {
		return false
	}
	return isDisplayed(ctx, el)
}

// ClickQualityOverlayPopoverIcon clicks the popover icon of the component's
// quality overlay. The click happens unconditionally because there is no way
// to know which component an already-open popover belongs to.
func (c *Component) ClickQualityOverlayPopoverIcon(ctx context.Context) error {
	settle := component.Settle(100 * time.Millisecond)
	if c.OverlayInMicroMode(ctx) {
		return c.microIcons.Click(ctx, settle)
	}
	return c.headerBadges.Click(ctx, settle)
}

// QualityOverlayFooterText returns the text of the overlay footer. It fails
// when the component has no overlay or the overlay is in micro mode.
func (c *Component) QualityOverlayFooterText(ctx context.Context) (string, error) {
	return c.overlayFooter.Text(ctx)
}

// QualityOverlayFooterTextDisplayed reports whether the overlay footer is
// present and non-empty.
func (c *Component) QualityOverlayFooterTextDisplayed(ctx context.Context) bool {
	text, err := c.QualityOverlayFooterText(ctx)
	return err == nil && len(text) > 0
}

// QualityPopoverDisplayed reports whether the quality popover is open.
func (c *Component) QualityPopoverDisplayed(ctx context.Context) bool {
	_, err := c.popover.Find(ctx)
	return err == nil
}

// QualityPopoverSubcode opens the quality popover and returns its sub-code
// section.
func (c *Component) QualityPopoverSubcode(ctx context.Context) (string, error) {
	return c.popoverSection(ctx, popoverSubcodeIndex)
}

// QualityPopoverProperty opens the quality popover and returns its quality
// property section.
func (c *Component) QualityPopoverProperty(ctx context.Context) (string, error) {
	return c.popoverSection(ctx, popoverPropertyIndex)
}

// QualityPopoverDescription opens the quality popover and returns its
// description section.
func (c *Component) QualityPopoverDescription(ctx context.Context) (string, error) {
	return c.popoverSection(ctx, popoverDescriptionIndex)
}

func (c *Component) popoverSection(ctx context.Context, index int) (string, error) {
	if err := c.ClickQualityOverlayPopoverIcon(ctx); err != nil {
		return "", err
	}
	sections, err := c.popoverSections.FindAll(ctx)
	if err != nil {
		return "", err
	}
	if index >= len(sections) {
		return "", fmt.Errorf("quality popover has %d sections, wanted index %d", len(sections), index)
	}
	return sections[index].Text(ctx)
}

// QualityOverlayContainsQuality reports whether the overlay currently shows
// the supplied quality, in either full or micro mode.
func (c *Component) QualityOverlayContainsQuality(ctx context.Context, quality Quality) (bool, error) {
	targets := c.headerBadges
	if c.OverlayInMicroMode(ctx) {
		targets = c.microIcons
	}
	els, err := targets.FindAll(ctx)
	if err != nil {
		if driver.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	for _, el := range els {
		class, err := el.Attribute(ctx, "class")
		if err != nil {
			return false, err
		}
		if strings.Contains(class, string(quality)) {
			return isDisplayed(ctx, el), nil
		}
	}
	return false, nil
}

// WaitForNoOverlay waits for any quality overlay on the component to be
// removed, then waits settle for bindings to catch up. When raiseOnTimeout is
// false, an overlay that never disperses is ignored.
func (c *Component) WaitForNoOverlay(ctx context.Context, timeout time.Duration, raiseOnTimeout bool, settle time.Duration) error {
	pred := func(ctx context.Context) (bool, error) {
		return c.QualityOverlayDisplayed(ctx), nil
	}
	if err := wait.UntilFalse(ctx, pred, timeout, c.PollInterval()); err != nil {
		if !raiseOnTimeout && wait.IsConditionNotMet(err) {
			return nil
		}
		return err
	}
	return c.WaitOnBinding(ctx, settle)
}

// ColumnSpan returns the count of columns the component spans inside a
// Column Container.
func (c *Component) ColumnSpan(ctx context.Context) (int, error) {
	value, err := c.CSSValue(ctx, "grid-column-end")
	if err != nil {
		return 0, err
	}
	_, spanned, found := strings.Cut(value, "span ")
	if !found {
		return 0, fmt.Errorf("component is not inside a column container: grid-column-end=%q", value)
	}
	return strconv.Atoi(strings.TrimSpace(spanned))
}

// DisplayColumn returns the first column in which the component displays
// inside a Column Container. Components may span further columns.
func (c *Component) DisplayColumn(ctx context.Context) (int, error) {
	value, err := c.CSSValue(ctx, "grid-column")
	if err != nil {
		return 0, err
	}
	first, _, _ := strings.Cut(value, " / span")
	col, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, fmt.Errorf("component is not inside a column container: grid-column=%q", value)
	}
	return col, nil
}

// OriginWithinCoordinateParent returns the component's origin relative to its
// parent Coordinate Container, as opposed to Origin which is viewport
// relative.
func (c *Component) OriginWithinCoordinateParent(ctx context.Context) (driver.Point, error) {
	left, err := c.CSSValue(ctx, "left")
	if err != nil {
		return driver.Point{}, err
	}
	top, err := c.CSSValue(ctx, "top")
	if err != nil {
		return driver.Point{}, err
	}
	x, err := strconv.ParseFloat(strings.TrimSuffix(left, "px"), 64)
	if err != nil {
		return driver.Point{}, fmt.Errorf("unparseable left offset %q: %w", left, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSuffix(top, "px"), 64)
	if err != nil {
		return driver.Point{}, fmt.Errorf("unparseable top offset %q: %w", top, err)
	}
	return driver.Point{X: x, Y: y}, nil
}

// InPercentMode reports whether the component's direct parent Coordinate
// Container renders children in percent mode. The computed width always
// comes back in pixels, so the raw style attribute is the only tell.
func (c *Component) InPercentMode(ctx context.Context) (bool, error) {
	style, err := c.Attribute(ctx, "style")
	if err != nil {
		return false, err
	}
	_, width, found := strings.Cut(style, "width: ")
	if !found {
		return false, nil
	}
	width, _, _ = strings.Cut(width, ";")
	return strings.Contains(width, "%"), nil
}

// isDisplayed approximates visibility from the border box: a detached or
// display:none element reports no area.
func isDisplayed(ctx context.Context, el driver.Element) bool {
	rect, err := el.Rect(ctx)
	return err == nil && rect.Width > 0 && rect.Height > 0
}
