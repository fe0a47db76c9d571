// driver/errors.go
package driver

import (
	"errors"
	"fmt"

	"github.com/xkilldash9x/perspective-pom/locator"
)

// ErrStale indicates that an element handle is no longer valid, likely due to
// a page navigation or DOM modification.
var ErrStale = errors.New("element is stale or detached from the document")

// ErrNotInteractable indicates that an element exists in the DOM but cannot
// yet receive the requested interaction. Treated as "not yet" rather than
// "never": interaction loops retry it until their timeout.
var ErrNotInteractable = errors.New("element is not interactable")

// NotFoundError reports that no element matched a combined locator within the
// polling window. The message embeds the locator and, when supplied, the
// component's human description, so a failure can be traced to a widget
// without reading source.
type NotFoundError struct {
	Locator     locator.Locator
	Description string
}

func (e *NotFoundError) Error() string {
	strategy := string(e.Locator.By)
	if strategy == "" {
		strategy = "raw"
	}
	msg := fmt.Sprintf("unable to locate element with %s locator: %s", strategy, e.Locator.Value)
	if e.Description != "" {
		msg += fmt.Sprintf(" (description: %s)", e.Description)
	}
	return msg
}

// IsNotFound reports whether err is an element-absence failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
