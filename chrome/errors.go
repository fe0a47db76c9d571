// chrome/errors.go
package chrome

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
)

// classify maps raw CDP and chromedp failures onto the driver error contract
// so callers can make retry decisions without string matching. The protocol
// does not expose typed errors for these cases, so the messages are the only
// signal available.
func classify(err error, loc locator.Locator) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "Could not find node"),
		strings.Contains(msg, "No node with given id found"),
		strings.Contains(msg, "-32000"):
		// The node id refers to a detached or re-rendered DOM node.
		return fmt.Errorf("%w (%s): %v", driver.ErrStale, loc, err)
	case strings.Contains(msg, "could not compute content quads"),
		strings.Contains(msg, "Could not compute box model"),
		strings.Contains(msg, "Node does not have a layout object"),
		strings.Contains(msg, "not visible"):
		// Attached but unclickable: zero-size, display:none, or covered.
		return fmt.Errorf("%w (%s): %v", driver.ErrNotInteractable, loc, err)
	default:
		return err
	}
}
