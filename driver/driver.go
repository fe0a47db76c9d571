// driver/driver.go

// Package driver defines the contract between component objects and the
// underlying browser session, plus the polling resolution primitives built on
// top of it. Concrete sessions (see the chrome package) implement Driver and
// Element; component code never touches the automation protocol directly.
package driver

import (
	"context"

	"github.com/xkilldash9x/perspective-pom/locator"
)

// Element is a live DOM handle. Handles are call-scoped: the page may
// re-render at any time, so callers re-resolve instead of holding one across
// operations. All methods perform a single protocol round trip with no
// internal retrying.
type Element interface {
	// Click dispatches a primary-button click at the element's center.
	// Returns ErrNotInteractable when the element exists in the DOM but
	// cannot yet receive the click.
	Click(ctx context.Context) error
	// ClickAt clicks offset from the element's origin by (dx, dy) pixels.
	ClickAt(ctx context.Context, dx, dy float64) error
	DoubleClick(ctx context.Context) error
	RightClick(ctx context.Context) error
	// Hover moves the pointer to the element's center without clicking.
	Hover(ctx context.Context) error

	Text(ctx context.Context) (string, error)
	// Attribute returns the attribute's markup value, or "" when absent.
	// Boolean attributes carry an empty value even when present, so use
	// HasAttribute to tell the two apart.
	Attribute(ctx context.Context, name string) (string, error)
	// HasAttribute reports whether the attribute exists on the element at
	// all, regardless of its value.
	HasAttribute(ctx context.Context, name string) (bool, error)
	// Value returns the element's live value property. Controlled inputs
	// update the property on every keystroke while the value attribute keeps
	// whatever the markup started with, so reads of user or binding input
	// must come through here.
	Value(ctx context.Context) (string, error)
	// CSSValue returns the computed value of a CSS property.
	CSSValue(ctx context.Context, property string) (string, error)
	Rect(ctx context.Context) (Rect, error)

	// Type sends the given text as keystrokes to the element.
	Type(ctx context.Context, text string) error
	// Clear empties the element's input value.
	Clear(ctx context.Context) error

	// ScrollIntoView scrolls the element into the viewport, aligning its top
	// with the top of the viewport when alignToTop is true, its bottom with
	// the bottom otherwise.
	ScrollIntoView(ctx context.Context, alignToTop bool) error
	// Blur forces focus off the element.
	Blur(ctx context.Context) error
}

// Driver is the shared browser session handle. Many component nodes reference
// one driver; none of them own it and its lifecycle is managed externally.
type Driver interface {
	// FindElement performs a single immediate query for the first element
	// matching the locator. It returns a *NotFoundError when nothing matches
	// right now; it never polls. Polling belongs to Resolve.
	FindElement(ctx context.Context, loc locator.Locator) (Element, error)
	// FindElements performs a single immediate query for every matching
	// element. An empty DOM match is returned as (nil, *NotFoundError).
	FindElements(ctx context.Context, loc locator.Locator) ([]Element, error)
	// EvalScript evaluates a JavaScript expression in the page, unmarshalling
	// the result into res when res is non-nil.
	EvalScript(ctx context.Context, expression string, res any) error
}
