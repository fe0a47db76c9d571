// locator/builder.go
package locator

import (
	"fmt"
	"strings"
)

// StrategyMismatchError reports a locator whose strategy cannot be expressed
// in the requested query language. It indicates a programming error in how a
// chain was assembled and is never retried or caught internally.
type StrategyMismatchError struct {
	Locator    Locator
	Translator Strategy
}

func (e *StrategyMismatchError) Error() string {
	return fmt.Sprintf("locator %q has strategy %q which is incompatible with the %s builder",
		e.Locator.Value, string(e.Locator.By), string(e.Translator))
}

// BuildCSS translates a chain into a single combined CSS selector. Fragments
// are joined with spaces, so each segment matches a descendant of the previous
// one. An XPath segment anywhere in the chain is a mismatch.
//
// An empty chain resolves against the document root.
func BuildCSS(chain Chain) (Locator, error) {
	if len(chain) == 0 {
		return CSS(":root"), nil
	}
	frags := make([]string, 0, len(chain))
	for _, l := range chain {
		switch l.By {
		case ByXPath:
			return Locator{}, &StrategyMismatchError{Locator: l, Translator: ByCSSSelector}
		case ByID:
			frags = append(frags, fmt.Sprintf(`[id=%q]`, l.Value))
		case ByClassName:
			frags = append(frags, "."+l.Value)
		case ByName:
			frags = append(frags, fmt.Sprintf(`[name=%q]`, l.Value))
		default:
			// CSS selectors and raw values pass through verbatim.
			frags = append(frags, l.Value)
		}
	}
	return CSS(strings.Join(frags, " ")), nil
}

// BuildXPath translates a chain into a single combined XPath expression.
// Fragments are concatenated with no separator: every fragment is a full
// `//`-anchored step, so the combined expression deliberately allows matches
// in independent subtrees rather than enforcing strict descendant nesting.
// A CSS segment anywhere in the chain is a mismatch.
//
// An empty chain resolves against the document root.
func BuildXPath(chain Chain) (Locator, error) {
	if len(chain) == 0 {
		return XPath("//*"), nil
	}
	frags := make([]string, 0, len(chain))
	for _, l := range chain {
		switch l.By {
		case ByCSSSelector:
			return Locator{}, &StrategyMismatchError{Locator: l, Translator: ByXPath}
		case ByID:
			frags = append(frags, fmt.Sprintf(`//*[@id=%q]`, l.Value))
		case ByClassName:
			frags = append(frags, fmt.Sprintf(`//*[contains(concat(" ", normalize-space(@class), " "),%q)]`, l.Value))
		case ByName:
			frags = append(frags, fmt.Sprintf(`//*[@name=%q]`, l.Value))
		case ByLinkText:
			frags = append(frags, fmt.Sprintf(`//a[normalize-space()=%q]`, l.Value))
		case ByPartialLinkText:
			frags = append(frags, fmt.Sprintf(`//a[contains(normalize-space(),%q)]`, l.Value))
		case ByTagName:
			frags = append(frags, "//"+l.Value)
		default:
			// XPath expressions and raw values pass through verbatim.
			frags = append(frags, l.Value)
		}
	}
	return XPath(strings.Join(frags, "")), nil
}
