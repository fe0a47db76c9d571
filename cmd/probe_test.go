// -- cmd/probe_test.go --
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/perspective-pom/locator"
)

func TestParseLocator(t *testing.T) {
	testCases := []struct {
		name     string
		arg      string
		expected locator.Locator
	}{
		{"bare css selector", "div.ia_labelComponent", locator.CSS("div.ia_labelComponent")},
		{"css prefix", "css=div.toolbar", locator.CSS("div.toolbar")},
		{"xpath prefix", "xpath=//div[@id='root']", locator.XPath("//div[@id='root']")},
		{"id prefix", "id=submit-btn", locator.ID("submit-btn")},
		{"class prefix", "class=ia_button--primary", locator.ClassName("ia_button--primary")},
		{"name prefix", "name=username", locator.Name("username")},
		{"tag prefix", "tag=svg", locator.TagName("svg")},
		{"link prefix", "link=Sign Out", locator.LinkText("Sign Out")},
		{"partial link prefix", "partial-link=Sign", locator.PartialLinkText("Sign")},
		// Attribute selectors contain '=' but carry no known strategy prefix.
		{"attribute selector stays css", `[data-label="run"]`, locator.CSS(`[data-label="run"]`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := parseLocator(tc.arg)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, loc)
		})
	}
}

func TestParseLocatorChain(t *testing.T) {
	chain, err := parseLocatorChain([]string{"class=toolbar", "css=button.submit"})
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, locator.ByClassName, chain[0].By)
	assert.Equal(t, locator.ByCSSSelector, chain[1].By)

	combined, err := locator.BuildCSS(chain)
	require.NoError(t, err)
	assert.Equal(t, ".toolbar button.submit", combined.Value)
}
