// perspective/button_test.go
package perspective

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/perspective-pom/component"
	"github.com/xkilldash9x/perspective-pom/locator"
)

const buttonSelector = "div.ia_button"

func newTestButton(d *stubDriver) *Button {
	return NewButton(d, locator.CSS(buttonSelector),
		component.WithTimeout(50*time.Millisecond),
		component.WithPollInterval(testPoll))
}

func TestButtonClickPrefersInnerButton(t *testing.T) {
	d := newStubDriver()
	wrapper := newStubElement()
	inner := newStubElement()
	d.set(buttonSelector, wrapper)
	d.set(buttonSelector+" button", inner)

	require.NoError(t, newTestButton(d).Click(context.Background()))
	assert.Equal(t, 1, inner.clicks)
	assert.Zero(t, wrapper.clicks)
}

func TestButtonClickFallsBackToRoot(t *testing.T) {
	// Buttons embedded in other components resolve straight to the <button>
	// element, so there is no inner element to prefer.
	d := newStubDriver()
	root := newStubElement()
	d.set(buttonSelector, root)

	require.NoError(t, newTestButton(d).Click(context.Background()))
	assert.Equal(t, 1, root.clicks)
}

func TestButtonTextPrefersInnerContainer(t *testing.T) {
	d := newStubDriver()
	root := newStubElement()
	root.text = "wrapper text"
	inner := newStubElement()
	inner.text = "Start Batch"
	d.set(buttonSelector, root)
	d.set(buttonSelector+" div.text", inner)

	text, err := newTestButton(d).Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Start Batch", text)
}

func TestButtonTextFallsBackToRoot(t *testing.T) {
	d := newStubDriver()
	root := newStubElement()
	root.text = "Start Batch"
	d.set(buttonSelector, root)

	text, err := newTestButton(d).Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Start Batch", text)
}

func TestButtonStyleClasses(t *testing.T) {
	d := newStubDriver()
	inner := newStubElement()
	inner.attrs["class"] = "ia_button " + ButtonPrimaryClass
	d.set(buttonSelector, newStubElement())
	d.set(buttonSelector+" button", inner)

	b := newTestButton(d)
	ctx := context.Background()

	primary, err := b.IsPrimary(ctx)
	require.NoError(t, err)
	assert.True(t, primary)

	secondary, err := b.IsSecondary(ctx)
	require.NoError(t, err)
	assert.False(t, secondary)
}

func TestButtonIsEnabled(t *testing.T) {
	d := newStubDriver()
	inner := newStubElement()
	d.set(buttonSelector, newStubElement())
	d.set(buttonSelector+" button", inner)

	b := newTestButton(d)
	ctx := context.Background()

	enabled, err := b.IsEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	// <button disabled> renders as a present-but-empty attribute; presence
	// alone disables the button.
	inner.attrs["disabled"] = ""
	enabled, err = b.IsEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)

	inner.attrs["disabled"] = "true"
	enabled, err = b.IsEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestButtonHasImage(t *testing.T) {
	d := newStubDriver()
	d.set(buttonSelector, newStubElement())
	b := newTestButton(d)
	ctx := context.Background()

	assert.False(t, b.HasImage(ctx))

	d.set(buttonSelector+" img", newStubElement())
	assert.True(t, b.HasImage(ctx))
}

func TestButtonIconIsRooted(t *testing.T) {
	d := newStubDriver()
	d.set(buttonSelector, newStubElement())
	svg := newStubElement()
	svg.attrs["viewBox"] = "0 0 24 24"
	d.set(buttonSelector+" svg", svg)

	vb, err := newTestButton(d).Icon().ViewBox(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "24", vb.Width)
}
