// perspective/button.go
package perspective

import (
	"context"
	"strings"
	"time"

	"github.com/xkilldash9x/perspective-pom/component"
	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
)

// Button style classes applied by the session.
const (
	ButtonPrimaryClass   = "ia_button--primary"
	ButtonSecondaryClass = "ia_button--secondary"
)

// Button is a Perspective Button component. Its root element is a wrapper
// <div>; the clickable <button> lives inside it, except for buttons embedded
// in other components where the root is the <button> itself.
type Button struct {
	*Component

	internalButton *component.Piece
	internalText   *component.Piece
	internalImage  *component.Piece
	icon           *Icon
}

// NewButton builds a Button rooted at the supplied locator.
func NewButton(drv driver.Driver, own locator.Locator, opts ...component.Option) *Button {
	base := NewComponent(drv, own, opts...)

	childOpts := func(timeout time.Duration, desc string) []component.Option {
		return []component.Option{
			component.WithParents(base.EffectiveChain()),
			component.WithTimeout(timeout),
			component.WithPollInterval(base.PollInterval()),
			component.WithLogger(base.Logger()),
			component.WithDescription(desc),
		}
	}
	return &Button{
		Component: base,
		internalButton: component.New(drv, locator.CSS("button"),
			childOpts(component.DefaultTimeout, "The internal HTML <button> element of the Button.")...),
		internalText: component.New(drv, locator.CSS("div.text"),
			childOpts(time.Second, "The container in which the text of the Button resides.")...),
		internalImage: component.New(drv, locator.TagName("img"),
			childOpts(time.Second, "The image within the Button.")...),
		icon: NewIcon(drv, locator.TagName("svg"),
			childOpts(time.Second, "The icon in use by the Button.")...),
	}
}

// Click clicks the button. The inner <button> element is preferred when it
// exists, because clicks on the wrapper can land outside the hit target.
func (b *Button) Click(ctx context.Context, opts ...component.CallOption) error {
	if _, err := b.internalButton.Find(ctx, component.Within(0)); err == nil {
		return b.internalButton.Click(ctx, opts...)
	}
	return b.Piece.Click(ctx, opts...)
}

// Text returns the button's label text.
func (b *Button) Text(ctx context.Context, opts ...component.CallOption) (string, error) {
	if _, err := b.internalText.Find(ctx, component.Within(0)); err == nil {
		return b.internalText.Text(ctx, opts...)
	}
	return b.Piece.Text(ctx, opts...)
}

// Icon returns the icon rendered inside the button, when one is configured.
func (b *Button) Icon() *Icon { return b.icon }

// HasImage reports whether the button renders an image.
func (b *Button) HasImage(ctx context.Context) bool {
	_, err := b.internalImage.Find(ctx, component.Within(0))
	return err == nil
}

// IsPrimary reports whether the button carries the primary style class.
func (b *Button) IsPrimary(ctx context.Context) (bool, error) {
	return b.hasClass(ctx, ButtonPrimaryClass)
}

// IsSecondary reports whether the button carries the secondary style class.
func (b *Button) IsSecondary(ctx context.Context) (bool, error) {
	return b.hasClass(ctx, ButtonSecondaryClass)
}

// IsEnabled reports whether the inner <button> accepts input. disabled is a
// boolean attribute: its presence alone disables the button, whatever its
// value, including the bare <button disabled> form.
func (b *Button) IsEnabled(ctx context.Context) (bool, error) {
	disabled, err := b.clickTarget(ctx).HasAttribute(ctx, "disabled")
	if err != nil {
		return false, err
	}
	return !disabled, nil
}

func (b *Button) hasClass(ctx context.Context, class string) (bool, error) {
	attr, err := b.clickTarget(ctx).Attribute(ctx, "class")
	if err != nil {
		return false, err
	}
	return strings.Contains(attr, class), nil
}

func (b *Button) clickTarget(ctx context.Context) *component.Piece {
	if _, err := b.internalButton.Find(ctx, component.Within(0)); err == nil {
		return b.internalButton
	}
	return b.Piece
}
