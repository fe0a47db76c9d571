// chrome/element.go
package chrome

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/css"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"

	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
)

// element is a handle to one resolved DOM node. Perspective re-renders
// components freely, so a handle can go stale at any time; every operation
// reports that as driver.ErrStale and callers re-resolve rather than reuse.
type element struct {
	drv  *Driver
	node *cdp.Node
	loc  locator.Locator
}

var _ driver.Element = (*element)(nil)

func (e *element) ids() []cdp.NodeID {
	return []cdp.NodeID{e.node.NodeID}
}

func (e *element) Click(ctx context.Context) error {
	rect, err := e.Rect(ctx)
	if err != nil {
		return err
	}
	if rect.Width <= 0 || rect.Height <= 0 {
		return fmt.Errorf("%w (%s): element has no visible area", driver.ErrNotInteractable, e.loc)
	}
	return classify(e.drv.run(ctx, chromedp.MouseClickNode(e.node)), e.loc)
}

// ClickAt clicks at an offset from the element's top-left corner.
func (e *element) ClickAt(ctx context.Context, dx, dy float64) error {
	rect, err := e.Rect(ctx)
	if err != nil {
		return err
	}
	return classify(e.drv.run(ctx, chromedp.MouseClickXY(rect.X+dx, rect.Y+dy)), e.loc)
}

func (e *element) DoubleClick(ctx context.Context) error {
	return classify(e.drv.run(ctx, chromedp.MouseClickNode(e.node, chromedp.ClickCount(2))), e.loc)
}

func (e *element) RightClick(ctx context.Context) error {
	return classify(e.drv.run(ctx, chromedp.MouseClickNode(e.node, chromedp.ButtonType(input.Right))), e.loc)
}

// Hover moves the mouse to the element's center without pressing a button.
func (e *element) Hover(ctx context.Context) error {
	rect, err := e.Rect(ctx)
	if err != nil {
		return err
	}
	x := rect.X + rect.Width/2
	y := rect.Y + rect.Height/2
	err = e.drv.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return input.DispatchMouseEvent(input.MouseMoved, x, y).Do(ctx)
	}))
	return classify(err, e.loc)
}

func (e *element) Text(ctx context.Context) (string, error) {
	var text string
	if err := e.drv.run(ctx, chromedp.Text(e.ids(), &text, chromedp.ByNodeID)); err != nil {
		return "", classify(err, e.loc)
	}
	return text, nil
}

// Attribute returns the attribute's value, or "" when the attribute is absent.
func (e *element) Attribute(ctx context.Context, name string) (string, error) {
	var value string
	var ok bool
	if err := e.drv.run(ctx, chromedp.AttributeValue(e.ids(), name, &value, &ok, chromedp.ByNodeID)); err != nil {
		return "", classify(err, e.loc)
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// HasAttribute reports attribute presence, which is the only way to observe
// boolean attributes such as disabled.
func (e *element) HasAttribute(ctx context.Context, name string) (bool, error) {
	var value string
	var ok bool
	if err := e.drv.run(ctx, chromedp.AttributeValue(e.ids(), name, &value, &ok, chromedp.ByNodeID)); err != nil {
		return false, classify(err, e.loc)
	}
	return ok, nil
}

// Value returns the element's live value property, which for React-controlled
// inputs diverges from the value attribute as soon as anything is typed.
func (e *element) Value(ctx context.Context) (string, error) {
	var value string
	if err := e.drv.run(ctx, chromedp.Value(e.ids(), &value, chromedp.ByNodeID)); err != nil {
		return "", classify(err, e.loc)
	}
	return value, nil
}

// CSSValue returns the computed value of a CSS property, or "" when the
// property is unknown.
func (e *element) CSSValue(ctx context.Context, property string) (string, error) {
	var styles []*css.ComputedStyleProperty
	if err := e.drv.run(ctx, chromedp.ComputedStyle(e.ids(), &styles, chromedp.ByNodeID)); err != nil {
		return "", classify(err, e.loc)
	}
	for _, s := range styles {
		if s.Name == property {
			return s.Value, nil
		}
	}
	return "", nil
}

// Rect returns the element's border box in page coordinates.
func (e *element) Rect(ctx context.Context) (driver.Rect, error) {
	var box *dom.BoxModel
	err := e.drv.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		box, err = dom.GetBoxModel().WithNodeID(e.node.NodeID).Do(ctx)
		return err
	}))
	if err != nil {
		return driver.Rect{}, classify(err, e.loc)
	}
	if box == nil || len(box.Border) < 8 {
		return driver.Rect{}, fmt.Errorf("%w (%s): no box model", driver.ErrNotInteractable, e.loc)
	}
	// Border quad runs clockwise from the top-left corner.
	return driver.Rect{
		X:      box.Border[0],
		Y:      box.Border[1],
		Width:  box.Border[2] - box.Border[0],
		Height: box.Border[5] - box.Border[1],
	}, nil
}

func (e *element) Type(ctx context.Context, text string) error {
	return classify(e.drv.run(ctx, chromedp.SendKeys(e.ids(), text, chromedp.ByNodeID)), e.loc)
}

func (e *element) Clear(ctx context.Context) error {
	return classify(e.drv.run(ctx, chromedp.Clear(e.ids(), chromedp.ByNodeID)), e.loc)
}

// ScrollIntoView scrolls the page so the element sits at the top or bottom of
// the viewport.
func (e *element) ScrollIntoView(ctx context.Context, alignToTop bool) error {
	rect, err := e.Rect(ctx)
	if err != nil {
		return err
	}
	target := rect.Y
	if !alignToTop {
		var innerHeight float64
		if err := e.drv.EvalScript(ctx, "window.innerHeight", &innerHeight); err != nil {
			return err
		}
		target = rect.Y + rect.Height - innerHeight
	}
	return e.drv.EvalScript(ctx, fmt.Sprintf("window.scrollTo(0, %f)", target), nil)
}

// Blur drops keyboard focus from the currently focused element. Perspective
// commits text input bindings on blur, so this forces pending edits through.
func (e *element) Blur(ctx context.Context) error {
	return e.drv.EvalScript(ctx, "document.activeElement instanceof HTMLElement && document.activeElement.blur()", nil)
}
