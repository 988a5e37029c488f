package selenium

import (
	"reflect"

	"github.com/google/uuid"
)

// DriverCapabilities lists the optional interfaces implemented by a driver.
// A nil field means the capability is absent.
type DriverCapabilities struct {
	Script     JavaScriptExecutor
	Screenshot TakesScreenshot
	Wraps      WrapsDriver
}

// DriverCapabilitiesOf queries the optional capabilities of wd.
func DriverCapabilitiesOf(wd WebDriver) DriverCapabilities {
	var c DriverCapabilities
	c.Script, _ = wd.(JavaScriptExecutor)
	c.Screenshot, _ = wd.(TakesScreenshot)
	c.Wraps, _ = wd.(WrapsDriver)
	return c
}

// ElementCapabilities lists the optional interfaces implemented by an
// element.
type ElementCapabilities struct {
	Screenshot TakesScreenshot
	Wraps      WrapsElement
	Equaler    Equaler
}

// ElementCapabilitiesOf queries the optional capabilities of elem.
func ElementCapabilitiesOf(elem WebElement) ElementCapabilities {
	var c ElementCapabilities
	c.Screenshot, _ = elem.(TakesScreenshot)
	c.Wraps, _ = elem.(WrapsElement)
	c.Equaler, _ = elem.(Equaler)
	return c
}

// UnwrapElement peels every WrapsElement layer off elem.
func UnwrapElement(elem WebElement) WebElement {
	for {
		w, ok := elem.(WrapsElement)
		if !ok {
			return elem
		}
		inner := w.WrappedElement()
		if inner == nil {
			return elem
		}
		elem = inner
	}
}

// WrapsSearchContext is implemented by search contexts, such as shadow
// roots, that wrap another search context.
type WrapsSearchContext interface {
	WrappedSearchContext() SearchContext
}

// UnwrapSearchContext peels every WrapsSearchContext layer off sc.
func UnwrapSearchContext(sc SearchContext) SearchContext {
	for {
		w, ok := sc.(WrapsSearchContext)
		if !ok {
			return sc
		}
		inner := w.WrappedSearchContext()
		if inner == nil {
			return sc
		}
		sc = inner
	}
}

// ElementsEqual reports whether a and b refer to the same DOM node. The
// left-hand side decides: an Equaler is asked directly, otherwise the two
// values are compared with == when their dynamic types allow it.
func ElementsEqual(a, b WebElement) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	return comparableEqual(a, b)
}

// SearchContextsEqual is ElementsEqual for search contexts such as shadow
// roots.
func SearchContextsEqual(a, b SearchContext) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(interface{ Equal(SearchContext) bool }); ok {
		return eq.Equal(b)
	}
	return comparableEqual(a, b)
}

func comparableEqual(a, b interface{}) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// PinnedScript is a script registered once with the session and executed
// by handle afterwards.
type PinnedScript struct {
	// Handle uniquely identifies the script within the session.
	Handle string
	// Source is the script body.
	Source string
}

// NewPinnedScript returns a pinned script with a fresh handle.
func NewPinnedScript(source string) *PinnedScript {
	return &PinnedScript{
		Handle: uuid.New().String(),
		Source: source,
	}
}
