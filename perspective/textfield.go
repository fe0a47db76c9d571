// perspective/textfield.go
package perspective

import (
	"context"
	"fmt"
	"time"

	"github.com/xkilldash9x/perspective-pom/component"
	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
	"github.com/xkilldash9x/perspective-pom/wait"
)

// TextField is a Perspective Text Field component. When a quality overlay is
// present the root locator resolves to a wrapper <div>, so reads and writes
// go through the internal <input> element whenever one exists.
type TextField struct {
	*Component

	internalInput *component.Piece
}

// NewTextField builds a TextField rooted at the supplied locator.
func NewTextField(drv driver.Driver, own locator.Locator, opts ...component.Option) *TextField {
	base := NewComponent(drv, own, opts...)
	return &TextField{
		Component: base,
		internalInput: component.New(drv, locator.TagName("input"),
			component.WithParents(base.EffectiveChain()),
			component.WithPollInterval(base.PollInterval()),
			component.WithLogger(base.Logger()),
			component.WithDescription("The internal <input> element, used when the component contains a quality overlay.")),
	}
}

// PlaceholderText returns the text a user sees when no value is set.
func (tf *TextField) PlaceholderText(ctx context.Context) (string, error) {
	return tf.inputTarget(ctx).Attribute(ctx, "placeholder")
}

// PlaceholderTextDisplayed reports whether placeholder text is currently
// shown, meaning a placeholder exists and no value does.
func (tf *TextField) PlaceholderTextDisplayed(ctx context.Context) (bool, error) {
	target := tf.inputTarget(ctx)
	placeholder, err := target.Attribute(ctx, "placeholder")
	if err != nil {
		return false, err
	}
	value, err := target.Value(ctx)
	if err != nil {
		return false, err
	}
	return placeholder != "" && value == "", nil
}

// Text returns the field's current value. The value property is read rather
// than the value attribute: the attribute holds only the markup's initial
// value, which a controlled input never updates.
func (tf *TextField) Text(ctx context.Context) (string, error) {
	return tf.inputTarget(ctx).Value(ctx)
}

// SetText replaces the field's contents. When releaseFocus is set the field
// is blurred afterwards, which is what commits the value through the
// component's binding. The write is verified by polling the value back.
func (tf *TextField) SetText(ctx context.Context, text string, releaseFocus bool, settle time.Duration) error {
	target := tf.inputTarget(ctx)
	if err := target.ScrollIntoView(ctx, true); err != nil {
		return err
	}
	if err := target.Click(ctx); err != nil {
		return err
	}
	el, err := target.Find(ctx)
	if err != nil {
		return err
	}
	if err := el.Clear(ctx); err != nil {
		return err
	}
	if err := el.Type(ctx, text); err != nil {
		return err
	}
	if releaseFocus {
		if err := tf.ReleaseFocus(ctx); err != nil {
			return err
		}
	}
	// Bindings may rewrite the value, so confirm it stuck.
	verify := func(ctx context.Context) (string, error) {
		return tf.Text(ctx)
	}
	got, err := pollText(ctx, verify, text, settle+500*time.Millisecond, tf.PollInterval())
	if err != nil {
		return err
	}
	if got != text {
		return fmt.Errorf("failed to set text field value: wanted %q, field holds %q", text, got)
	}
	return nil
}

func (tf *TextField) inputTarget(ctx context.Context) *component.Piece {
	if _, err := tf.internalInput.Find(ctx, component.Within(0)); err == nil {
		return tf.internalInput
	}
	return tf.Piece
}

// pollText re-reads a text source until it matches want or the timeout
// lapses. A lapsed timeout is not an error; the last-read text is returned
// so the caller can report the mismatch itself.
func pollText(ctx context.Context, read func(context.Context) (string, error), want string, timeout, poll time.Duration) (string, error) {
	var last string
	pred := func(ctx context.Context) (bool, error) {
		text, err := read(ctx)
		if err != nil {
			return false, err
		}
		last = text
		return text == want, nil
	}
	if err := wait.UntilTrue(ctx, pred, timeout, poll); err != nil {
		if wait.IsConditionNotMet(err) {
			return last, nil
		}
		return last, err
	}
	return last, nil
}
