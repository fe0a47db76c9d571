// perspective/toggle.go
package perspective

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xkilldash9x/perspective-pom/component"
	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
	"github.com/xkilldash9x/perspective-pom/wait"
)

const (
	toggleSelectedClass = "ia_toggleSwitch__thumb--selected"
	toggleDisabledClass = "ia_toggleSwitch__thumb--disabled"
)

// ToggleSwitch is a Perspective Toggle Switch component. The preferred term
// for its state is "active", instead of "on", "selected", or "true".
type ToggleSwitch struct {
	*Component

	thumb *component.Piece
	track *component.Piece
}

// NewToggleSwitch builds a ToggleSwitch rooted at the supplied locator.
func NewToggleSwitch(drv driver.Driver, own locator.Locator, opts ...component.Option) *ToggleSwitch {
	base := NewComponent(drv, own, opts...)

	childOpts := func(desc string) []component.Option {
		return []component.Option{
			component.WithParents(base.EffectiveChain()),
			component.WithPollInterval(base.PollInterval()),
			component.WithLogger(base.Logger()),
			component.WithDescription(desc),
		}
	}
	return &ToggleSwitch{
		Component: base,
		thumb: component.New(drv, locator.CSS("div.ia_toggleSwitch__thumb"),
			childOpts("The circle piece of the Toggle Switch, which slides back and forth within the track.")...),
		track: component.New(drv, locator.CSS("div.ia_toggleSwitch__track"),
			childOpts("The horizontal oval in which the thumb of the Toggle Switch slides back and forth.")...),
	}
}

// SetState drives the switch to the desired state, taking no action when it
// already matches. The settle delay runs after any click so the bound tag
// write can land before the state is verified.
func (ts *ToggleSwitch) SetState(ctx context.Context, active bool, settle time.Duration) error {
	has, err := ts.HasState(ctx, active, time.Second)
	if err != nil {
		return err
	}
	if !has {
		if err := ts.Click(ctx, component.Settle(settle)); err != nil {
			return err
		}
	}
	has, err = ts.HasState(ctx, active, time.Second)
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("failed to set the state of a toggle switch to %t", active)
	}
	return nil
}

// HasState reports whether the switch has the supplied state, waiting up to
// timeout for it to get there. Preferable to IsActive because it can wait on
// either state.
func (ts *ToggleSwitch) HasState(ctx context.Context, expected bool, timeout time.Duration) (bool, error) {
	if !expected {
		// Toggle Switches enter the DOM inactive, so checking for the
		// inactive state too early reports a stale answer while the
		// front end catches up to the gateway. Most visible right after
		// a popup opens.
		if err := ts.WaitOnBinding(ctx, 250*time.Millisecond); err != nil {
			return false, err
		}
	}
	pred := func(ctx context.Context) (bool, error) {
		active, err := ts.isActiveNow(ctx)
		if err != nil {
			return false, err
		}
		return active == expected, nil
	}
	if err := wait.UntilTrue(ctx, pred, timeout, ts.PollInterval()); err != nil {
		if wait.IsConditionNotMet(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsActive reports whether the switch becomes active within the timeout. It
// cannot wait for the inactive state; prefer HasState.
func (ts *ToggleSwitch) IsActive(ctx context.Context, timeout time.Duration) (bool, error) {
	pred := func(ctx context.Context) (bool, error) {
		return ts.isActiveNow(ctx)
	}
	if err := wait.UntilTrue(ctx, pred, timeout, ts.PollInterval()); err != nil {
		if wait.IsConditionNotMet(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsEnabled reports whether the switch accepts input.
func (ts *ToggleSwitch) IsEnabled(ctx context.Context) (bool, error) {
	class, err := ts.thumb.Attribute(ctx, "class")
	if err != nil {
		return false, err
	}
	return !strings.Contains(class, toggleDisabledClass), nil
}

// TrackColor returns the color of the track. Browsers differ on the format
// (rgb vs hex).
func (ts *ToggleSwitch) TrackColor(ctx context.Context) (string, error) {
	return ts.track.CSSValue(ctx, "background-color")
}

func (ts *ToggleSwitch) isActiveNow(ctx context.Context) (bool, error) {
	class, err := ts.thumb.Attribute(ctx, "class", component.Within(0))
	if err != nil {
		return false, err
	}
	return strings.Contains(class, toggleSelectedClass), nil
}
