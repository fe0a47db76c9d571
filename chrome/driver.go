// chrome/driver.go

// Package chrome implements the driver contract over a Chrome DevTools
// Protocol session via chromedp. Queries are always single immediate checks
// (AtLeast(0) disables chromedp's own waiting) so that the wait layer owns
// every retry decision.
package chrome

import (
	"context"
	"encoding/json"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/locator"
)

// Driver drives one browser tab. It satisfies driver.Driver and is shared,
// unowned, by any number of component nodes.
type Driver struct {
	ctx context.Context // carries the CDP target; lifecycle managed by the session owner
	log *zap.Logger
}

var _ driver.Driver = (*Driver)(nil)

// New wraps an existing chromedp tab context. The caller keeps ownership of
// the context and its cancellation.
func New(tabCtx context.Context, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{ctx: tabCtx, log: log.Named("chrome")}
}

// run executes chromedp actions against the tab, honoring the operational
// context's deadline and cancellation while preserving the CDP connection
// values carried by the tab context.
func (d *Driver) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := combineContext(d.ctx, ctx)
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}

// Navigate loads a URL in the tab and blocks until the load event fires.
func (d *Driver) Navigate(ctx context.Context, url string) error {
	d.log.Debug("navigating", zap.String("url", url))
	return d.run(ctx, chromedp.Navigate(url))
}

// FindElement performs a single immediate query for the first match.
func (d *Driver) FindElement(ctx context.Context, loc locator.Locator) (driver.Element, error) {
	nodes, err := d.queryNodes(ctx, loc)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &driver.NotFoundError{Locator: loc}
	}
	return &element{drv: d, node: nodes[0], loc: loc}, nil
}

// FindElements performs a single immediate query for all matches.
func (d *Driver) FindElements(ctx context.Context, loc locator.Locator) ([]driver.Element, error) {
	nodes, err := d.queryNodes(ctx, loc)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &driver.NotFoundError{Locator: loc}
	}
	els := make([]driver.Element, 0, len(nodes))
	for _, n := range nodes {
		els = append(els, &element{drv: d, node: n, loc: loc})
	}
	return els, nil
}

// EvalScript evaluates a JavaScript expression in the page. A nil res
// discards the result.
func (d *Driver) EvalScript(ctx context.Context, expression string, res any) error {
	if res == nil {
		// Evaluate still needs a target for the returned value.
		var raw json.RawMessage
		return d.run(ctx, chromedp.Evaluate(expression, &raw))
	}
	return d.run(ctx, chromedp.Evaluate(expression, res))
}

func (d *Driver) queryNodes(ctx context.Context, loc locator.Locator) ([]*cdp.Node, error) {
	sel, opts, err := queryOptions(loc)
	if err != nil {
		return nil, err
	}
	var nodes []*cdp.Node
	if err := d.run(ctx, chromedp.Nodes(sel, &nodes, opts...)); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, classify(err, loc)
	}
	return nodes, nil
}

// queryOptions maps a locator onto a chromedp query. CSS and raw selectors go
// through querySelectorAll; XPath and the WebDriver-style strategies that only
// XPath can express go through DOM search. AtLeast(0) keeps chromedp from
// blocking when nothing matches yet.
func queryOptions(loc locator.Locator) (string, []chromedp.QueryOption, error) {
	switch loc.By {
	case locator.ByCSSSelector, "":
		return loc.Value, []chromedp.QueryOption{chromedp.ByQueryAll, chromedp.AtLeast(0)}, nil
	case locator.ByXPath:
		return loc.Value, []chromedp.QueryOption{chromedp.BySearch, chromedp.AtLeast(0)}, nil
	case locator.ByLinkText, locator.ByPartialLinkText:
		xp, err := locator.BuildXPath(locator.Chain{loc})
		if err != nil {
			return "", nil, err
		}
		return xp.Value, []chromedp.QueryOption{chromedp.BySearch, chromedp.AtLeast(0)}, nil
	default:
		css, err := locator.BuildCSS(locator.Chain{loc})
		if err != nil {
			return "", nil, err
		}
		return css.Value, []chromedp.QueryOption{chromedp.ByQueryAll, chromedp.AtLeast(0)}, nil
	}
}
