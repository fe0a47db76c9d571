// perspective/textfield_test.go
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

const fieldSelector = "div.ia_inputField"

func newTestTextField(d *stubDriver) *TextField {
	return NewTextField(d, locator.CSS(fieldSelector),
		component.WithTimeout(50*time.Millisecond),
		component.WithPollInterval(testPoll))
}

func TestTextFieldReadsInternalInput(t *testing.T) {
	d := newStubDriver()
	input := newStubElement()
	input.value = "42.5"
	d.set(fieldSelector, newStubElement())
	d.set(fieldSelector+" input", input)

	text, err := newTestTextField(d).Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42.5", text)
}

func TestTextFieldReadsLivePropertyNotMarkupAttribute(t *testing.T) {
	// Perspective inputs are React-controlled: typing and binding writes only
	// ever move the value property, while the value attribute keeps the
	// markup's initial text.
	d := newStubDriver()
	input := newStubElement()
	input.attrs["value"] = "initial"
	input.value = "live"
	d.set(fieldSelector, newStubElement())
	d.set(fieldSelector+" input", input)

	text, err := newTestTextField(d).Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "live", text)
}

func TestTextFieldFallsBackToRootElement(t *testing.T) {
	// Text Fields embedded in other components resolve straight to the
	// <input>, with no wrapper division around it.
	d := newStubDriver()
	root := newStubElement()
	root.value = "direct"
	d.set(fieldSelector, root)

	text, err := newTestTextField(d).Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "direct", text)
}

func TestTextFieldPlaceholderText(t *testing.T) {
	d := newStubDriver()
	input := newStubElement()
	input.attrs["placeholder"] = "Enter setpoint"
	d.set(fieldSelector, newStubElement())
	d.set(fieldSelector+" input", input)

	tf := newTestTextField(d)
	ctx := context.Background()

	placeholder, err := tf.PlaceholderText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Enter setpoint", placeholder)

	displayed, err := tf.PlaceholderTextDisplayed(ctx)
	require.NoError(t, err)
	assert.True(t, displayed)

	input.value = "88"
	displayed, err = tf.PlaceholderTextDisplayed(ctx)
	require.NoError(t, err)
	assert.False(t, displayed)
}

func TestTextFieldSetText(t *testing.T) {
	d := newStubDriver()
	root := newStubElement()
	input := newStubElement()
	input.value = "old"
	d.set(fieldSelector, root)
	d.set(fieldSelector+" input", input)

	tf := newTestTextField(d)
	require.NoError(t, tf.SetText(context.Background(), "new value", true, 0))

	assert.Equal(t, 1, input.scrolled)
	assert.Equal(t, 1, input.clicks)
	assert.Equal(t, 1, input.cleared)
	assert.Equal(t, []string{"new value"}, input.typed)
	assert.Equal(t, "new value", input.value)
	// Focus is released through the component root, which the browser side
	// maps onto whatever element actually holds focus.
	assert.Equal(t, 1, root.blurred)
}

func TestTextFieldSetTextWithoutReleasingFocus(t *testing.T) {
	d := newStubDriver()
	input := newStubElement()
	d.set(fieldSelector, newStubElement())
	d.set(fieldSelector+" input", input)

	tf := newTestTextField(d)
	require.NoError(t, tf.SetText(context.Background(), "typed", false, 0))
	assert.Zero(t, input.blurred)
}

func TestTextFieldSetTextReportsRejectedValue(t *testing.T) {
	d := newStubDriver()
	input := newStubElement()
	// A binding that rewrites the field immediately after every keystroke.
	input.onType = func(text string) { input.value = "BOUND" }
	d.set(fieldSelector, newStubElement())
	d.set(fieldSelector+" input", input)

	tf := newTestTextField(d)
	err := tf.SetText(context.Background(), "wanted", false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to set text field value: wanted "wanted", field holds "BOUND"`)
}
