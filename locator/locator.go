// locator/locator.go
package locator

import "fmt"

// Strategy identifies how a selector string must be interpreted when it is
// translated into a combined query. The values mirror the WebDriver locator
// strategy names.
type Strategy string

const (
	ByCSSSelector     Strategy = "css selector"
	ByXPath           Strategy = "xpath"
	ByID              Strategy = "id"
	ByClassName       Strategy = "class name"
	ByName            Strategy = "name"
	ByTagName         Strategy = "tag name"
	ByLinkText        Strategy = "link text"
	ByPartialLinkText Strategy = "partial link text"
)

// Locator is one segment of a DOM path: a strategy plus the selector string it
// interprets. Locators are plain values; copy them freely.
//
// The zero Strategy ("") is the raw form: both translators emit the value
// verbatim without interpreting it.
type Locator struct {
	By    Strategy
	Value string
}

func CSS(value string) Locator             { return Locator{By: ByCSSSelector, Value: value} }
func XPath(value string) Locator           { return Locator{By: ByXPath, Value: value} }
func ID(value string) Locator              { return Locator{By: ByID, Value: value} }
func ClassName(value string) Locator       { return Locator{By: ByClassName, Value: value} }
func Name(value string) Locator            { return Locator{By: ByName, Value: value} }
func TagName(value string) Locator         { return Locator{By: ByTagName, Value: value} }
func LinkText(value string) Locator        { return Locator{By: ByLinkText, Value: value} }
func PartialLinkText(value string) Locator { return Locator{By: ByPartialLinkText, Value: value} }
func Raw(value string) Locator             { return Locator{Value: value} }

// IsZero reports whether the locator carries neither a strategy nor a value.
// A component node with a zero own-locator is a passthrough that resolves
// purely through its parent chain.
func (l Locator) IsZero() bool { return l.By == "" && l.Value == "" }

func (l Locator) String() string {
	if l.By == "" {
		return l.Value
	}
	return fmt.Sprintf("%s=%s", string(l.By), l.Value)
}

// Chain is an ordered sequence of locators, root to leaf. The chain itself is
// strategy-agnostic; compatibility is checked only when a combined selector is
// built.
type Chain []Locator

// Append returns a new chain with the given locators added at the leaf end.
// The receiver is never mutated, so parents can hand their chain to any number
// of children.
func (c Chain) Append(locs ...Locator) Chain {
	out := make(Chain, 0, len(c)+len(locs))
	out = append(out, c...)
	out = append(out, locs...)
	return out
}
