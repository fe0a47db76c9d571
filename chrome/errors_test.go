// chrome/errors_test.go
package chrome

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
)

func TestClassify(t *testing.T) {
	loc := locator.CSS("div.ia_labelComponent")

	testCases := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"detached node is stale", errors.New("Could not find node with given id (-32000)"), driver.ErrStale},
		{"missing node id is stale", errors.New("No node with given id found"), driver.ErrStale},
		{"bare protocol code is stale", errors.New("rpc error -32000"), driver.ErrStale},
		{"no content quads means not interactable", errors.New("could not compute content quads"), driver.ErrNotInteractable},
		{"no box model means not interactable", errors.New("Could not compute box model."), driver.ErrNotInteractable},
		{"no layout object means not interactable", errors.New("Node does not have a layout object"), driver.ErrNotInteractable},
		{"hidden node means not interactable", errors.New("element is not visible"), driver.ErrNotInteractable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err, loc)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
			// The combined selector rides along for diagnostics.
			assert.Contains(t, got.Error(), "div.ia_labelComponent")
		})
	}
}

func TestClassifyLeavesContextErrorsAlone(t *testing.T) {
	loc := locator.CSS("div")
	assert.ErrorIs(t, classify(context.Canceled, loc), context.Canceled)
	assert.ErrorIs(t, classify(context.DeadlineExceeded, loc), context.DeadlineExceeded)

	// Context errors must never be mistaken for element-level failures even
	// when wrapped.
	wrapped := classify(context.Canceled, loc)
	assert.False(t, errors.Is(wrapped, driver.ErrStale))
}

func TestClassifyPassesUnknownErrorsThrough(t *testing.T) {
	boom := errors.New("websocket closed unexpectedly")
	got := classify(boom, locator.CSS("div"))
	assert.Equal(t, boom, got)
}

func TestQueryOptionsTranslation(t *testing.T) {
	testCases := []struct {
		name    string
		loc     locator.Locator
		wantSel string
		wantErr bool
	}{
		{"css passes through", locator.CSS("div.view"), "div.view", false},
		{"raw treated as css", locator.Raw("div.view span"), "div.view span", false},
		{"xpath passes through", locator.XPath("//div[@id='x']"), "//div[@id='x']", false},
		{"id translated to css", locator.ID("main"), `[id="main"]`, false},
		{"class translated to css", locator.ClassName("toolbar"), ".toolbar", false},
		{"name translated to css", locator.Name("user"), `[name="user"]`, false},
		{"tag translated to css", locator.TagName("svg"), "svg", false},
		{"link text needs xpath", locator.LinkText("Sign Out"), `//a[normalize-space()="Sign Out"]`, false},
		{"partial link text needs xpath", locator.PartialLinkText("Sign"), `//a[contains(normalize-space(),"Sign")]`, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sel, opts, err := queryOptions(tc.loc)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantSel, sel)
			assert.NotEmpty(t, opts)
		})
	}
}
