// perspective/icon.go
package perspective

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xkilldash9x/perspective-pom/component"
	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
)

// Icons are packaged with a strip-and-zip step that occasionally leaves a
// border path behind. These d attributes are the known offenders.
var extraneousIconBorders = []string{
	"M24 24H0V0h24v24z",
	"M0,0h24v24H0V0z",
	"M0,0h24 M24,24H0",
}

// Icon is an icon as used anywhere within Perspective, including inside
// other components. The root locator targets the <svg> element.
type Icon struct {
	*component.Piece

	children   *component.Piece
	internalG  *component.Piece
	badBorders []*component.Piece
}

// NewIcon builds an Icon rooted at the supplied locator.
func NewIcon(drv driver.Driver, own locator.Locator, opts ...component.Option) *Icon {
	opts = append([]component.Option{component.WithTimeout(2 * time.Second)}, opts...)
	base := component.New(drv, own, opts...)

	childOpts := []component.Option{
		component.WithParents(base.EffectiveChain()),
		component.WithPollInterval(base.PollInterval()),
		component.WithLogger(base.Logger()),
	}
	ic := &Icon{
		Piece:     base,
		children:  component.New(drv, locator.CSS("g > *"), childOpts...),
		internalG: component.New(drv, locator.CSS("g > g"), childOpts...),
	}
	for _, border := range extraneousIconBorders {
		ic.badBorders = append(ic.badBorders,
			component.New(drv, locator.CSS(fmt.Sprintf("path[d=%q]", border)), childOpts...))
	}
	return ic
}

// FillColor returns the fill in use by the icon. When any child shape uses a
// different fill, that mismatched value is returned instead so callers can
// catch children that ignore the declared color. A child fill of "none" is
// ignored because it is outside the session's control.
func (ic *Icon) FillColor(ctx context.Context) (string, error) {
	return ic.childOverriddenColor(ctx, "fill", true)
}

// StrokeColor returns the stroke in use by the icon, with the same
// mismatched-child contract as FillColor.
func (ic *Icon) StrokeColor(ctx context.Context) (string, error) {
	return ic.childOverriddenColor(ctx, "stroke", false)
}

func (ic *Icon) childOverriddenColor(ctx context.Context, property string, ignoreNone bool) (string, error) {
	local, err := ic.CSSValue(ctx, property)
	if err != nil {
		return "", err
	}
	children, err := ic.children.FindAll(ctx, component.Within(time.Second))
	if err != nil {
		if driver.IsNotFound(err) {
			return local, nil
		}
		return "", err
	}
	for _, child := range children {
		childValue, err := child.CSSValue(ctx, property)
		if err != nil {
			return "", err
		}
		if childValue != local && !(ignoreNone && childValue == "none") {
			return childValue, nil
		}
	}
	return local, nil
}

// Name returns the library and id of the icon as a slash-delimited string,
// e.g. "material/perm_identity". It fails when the internal <g> element
// claims a different id than the component declares.
func (ic *Icon) Name(ctx context.Context) (string, error) {
	libraryAndName, err := ic.Attribute(ctx, "data-icon")
	if err != nil {
		return "", err
	}
	inUse, err := ic.internalG.Attribute(ctx, "id")
	if err != nil {
		return "", err
	}
	_, declared, _ := strings.Cut(libraryAndName, "/")
	if inUse != declared {
		return "", fmt.Errorf("icon declares %q but renders %q within its <g> element", libraryAndName, inUse)
	}
	return libraryAndName, nil
}

// ViewBox holds the four components of an svg viewBox attribute, kept as
// strings because the session renders them verbatim.
type ViewBox struct {
	X      string
	Y      string
	Width  string
	Height string
}

// ViewBox returns the icon's viewBox attribute split into its components.
func (ic *Icon) ViewBox(ctx context.Context) (ViewBox, error) {
	raw, err := ic.Attribute(ctx, "viewBox")
	if err != nil {
		return ViewBox{}, err
	}
	pieces := strings.Fields(raw)
	if len(pieces) != 4 {
		return ViewBox{}, fmt.Errorf("malformed viewBox attribute %q", raw)
	}
	return ViewBox{X: pieces[0], Y: pieces[1], Width: pieces[2], Height: pieces[3]}, nil
}

// HasExtraneousBorder reports whether the icon carries any of the known
// leftover border paths that interfere with styling.
func (ic *Icon) HasExtraneousBorder(ctx context.Context) bool {
	for _, border := range ic.badBorders {
		if _, err := border.Find(ctx, component.Within(0)); err == nil {
			return true
		}
	}
	return false
}

// IsRendered reports whether the icon actually drew its internal shapes.
func (ic *Icon) IsRendered(ctx context.Context) bool {
	_, err := ic.internalG.Find(ctx, component.Within(500*time.Millisecond))
	return err == nil
}
