// driver/resolve.go
package driver

import (
	"context"
	"time"

	"github.com/xkilldash9x/perspective-pom/locator"
	"github.com/xkilldash9x/perspective-pom/wait"
)

// Resolve polls the live DOM until at least one element matches the combined
// locator, returning the first match. A timeout of zero performs a single
// immediate check. On timeout the returned *NotFoundError embeds the locator
// and the optional description.
//
// Resolution is always fresh: the DOM is re-queried on every poll, and the
// returned handle must not be cached across calls.
func Resolve(ctx context.Context, d Driver, loc locator.Locator, timeout, poll time.Duration, description string) (Element, error) {
	var el Element
	pred := func(ctx context.Context) (bool, error) {
		found, err := d.FindElement(ctx, loc)
		if err != nil {
			return false, err
		}
		el = found
		return true, nil
	}
	if err := wait.UntilTrue(ctx, pred, timeout, poll); err != nil {
		if !wait.IsConditionNotMet(err) {
			// Aborted predicate or cancelled context; not an absence.
			return nil, err
		}
		return nil, &NotFoundError{Locator: loc, Description: description}
	}
	return el, nil
}

// ResolveAll polls with the same discipline as Resolve but succeeds as soon
// as at least one match exists, returning the full current match list.
func ResolveAll(ctx context.Context, d Driver, loc locator.Locator, timeout, poll time.Duration, description string) ([]Element, error) {
	var els []Element
	pred := func(ctx context.Context) (bool, error) {
		found, err := d.FindElements(ctx, loc)
		if err != nil {
			return false, err
		}
		if len(found) == 0 {
			return false, nil
		}
		els = found
		return true, nil
	}
	if err := wait.UntilTrue(ctx, pred, timeout, poll); err != nil {
		if !wait.IsConditionNotMet(err) {
			return nil, err
		}
		return nil, &NotFoundError{Locator: loc, Description: description}
	}
	return els, nil
}
