// locator/locator_test.go
package locator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestLocatorString(t *testing.T) {
	assert.Equal(t, "css selector=div.toolbar", CSS("div.toolbar").String())
	assert.Equal(t, "class name=ia_button--primary", ClassName("ia_button--primary").String())
	// Raw locators print their value verbatim.
	assert.Equal(t, "div.toolbar", Raw("div.toolbar").String())
}

func TestLocatorIsZero(t *testing.T) {
	assert.True(t, Locator{}.IsZero())
	assert.False(t, CSS("").IsZero())
	assert.False(t, Raw("div").IsZero())
}

func TestChainAppendDoesNotMutateReceiver(t *testing.T) {
	parent := Chain{CSS("div.view"), ClassName("toolbar")}
	snapshot := parent.Append()

	childA := parent.Append(CSS("button.submit"))
	childB := parent.Append(TagName("svg"), CSS("g > g"))

	// The parent chain is untouched regardless of how many children extend it.
	if diff := cmp.Diff(snapshot, parent); diff != "" {
		t.Fatalf("parent chain mutated by Append (-want +got):\n%s", diff)
	}
	assert.Len(t, childA, 3)
	assert.Len(t, childB, 4)
	assert.Equal(t, CSS("button.submit"), childA[2])
}

func TestChainAppendSharesNoBackingArray(t *testing.T) {
	parent := Chain{CSS("div.view")}
	childA := parent.Append(CSS("a"))
	childB := parent.Append(CSS("b"))

	// Appending to one child must never leak into a sibling.
	assert.Equal(t, CSS("a"), childA[1])
	assert.Equal(t, CSS("b"), childB[1])
}
