// perspective/label.go
package perspective

import (
	"time"

	"github.com/xkilldash9x/perspective-pom/component"
	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
)

// Label is a Perspective Label component. Labels render quickly or not at
// all, so the default resolution timeout is shorter than the package default.
type Label struct {
	*Component
}

// NewLabel builds a Label rooted at the supplied locator.
func NewLabel(drv driver.Driver, own locator.Locator, opts ...component.Option) *Label {
	opts = append([]component.Option{component.WithTimeout(2 * time.Second)}, opts...)
	return &Label{Component: NewComponent(drv, own, opts...)}
}
