// chrome/context.go
package chrome

import (
	"context"
)

// combineContext derives a context from tabCtx (which carries the CDP target
// values chromedp needs) that is additionally canceled when opCtx is done.
// chromedp actions must run on a descendant of the tab context, so the
// operational deadline cannot simply be passed through; it has to be merged.
func combineContext(tabCtx, opCtx context.Context) (context.Context, context.CancelFunc) {
	combined, cancel := context.WithCancel(tabCtx)

	// Link opCtx's lifecycle to the combined context. The goroutine stops
	// when either context is done.
	go func() {
		select {
		case <-opCtx.Done():
			cancel()
		case <-combined.Done():
		}
	}()

	return combined, cancel
}
