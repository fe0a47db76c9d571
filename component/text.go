// component/text.go
package component

import (
	"context"
	"fmt"
	"strings"

	"github.com/xkilldash9x/perspective-pom/driver"
	"github.com/xkilldash9x/perspective-pom/wait"
)

// TextCondition selects how a piece's text is compared while waiting.
//
// The numeric conditions exist because Numeric Entry Fields render values of
// "1000" as "1,000"; they always ignore thousands separators. They do not
// account for any other display formatting the field applies.
type TextCondition int

const (
	TextEquals TextCondition = iota
	TextNotEquals
	TextContains
	TextNotContains
	NumericEquals
	NumericNotEquals
)

// WaitOnText returns the piece's text, after potentially waiting for the text
// to satisfy the supplied condition.
//
// A nil expected value short-circuits: the current text is returned
// immediately and no condition wait occurs. When the condition never matches
// within the timeout, the last-read text is returned with a nil error (the
// wait was best-effort); when the element itself never appeared, the
// underlying not-found failure is returned instead. Callers rely on that
// distinction.
func (p *Piece) WaitOnText(ctx context.Context, expected *string, cond TextCondition, opts ...CallOption) (string, error) {
	cp := p.apply(opts)
	if expected == nil {
		// The text can never compare against nothing; return it as-is.
		return p.Text(ctx, Within(cp.timeout))
	}
	want := *expected
	var last string
	pred := func(ctx context.Context) (bool, error) {
		// The inner find uses the piece's own timeout, so an element that
		// truly never appears surfaces as a not-found failure rather than a
		// condition miss.
		text, err := p.Text(ctx, Within(p.timeout))
		if err != nil {
			if driver.IsNotFound(err) {
				return false, wait.Abort(err)
			}
			return false, err
		}
		last = text
		return compareText(text, want, cond)
	}
	if err := wait.UntilTrue(ctx, pred, cp.timeout, p.poll); err != nil {
		if wait.IsConditionNotMet(err) {
			// Condition never matched; the caller wanted the text either way.
			return last, nil
		}
		return last, err
	}
	return last, nil
}

func compareText(text, want string, cond TextCondition) (bool, error) {
	switch cond {
	case TextEquals:
		return text == want, nil
	case TextNotEquals:
		return text != want, nil
	case TextContains:
		return strings.Contains(text, want), nil
	case TextNotContains:
		return !strings.Contains(text, want), nil
	case NumericEquals:
		return stripThousands(text) == stripThousands(want), nil
	case NumericNotEquals:
		return stripThousands(text) != stripThousands(want), nil
	default:
		return false, wait.Abort(fmt.Errorf("unhandled text condition %d", cond))
	}
}

func stripThousands(s string) string { return strings.ReplaceAll(s, ",", "") }
