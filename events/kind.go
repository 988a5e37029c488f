package events

import "fmt"

// Kind identifies a notification fired by the decorator.
type Kind int

// Notification kinds. Every operation that is monitored fires a "before" kind
// and, on success, the matching "after" kind. Failures of any forwarded call
// fire ExceptionThrown.
const (
	Navigating Kind = iota
	Navigated
	NavigatingBack
	NavigatedBack
	NavigatingForward
	NavigatedForward
	ElementClicking
	ElementClicked
	ElementValueChanging
	ElementValueChanged
	FindingElement
	FindElementCompleted
	GettingShadowRoot
	GetShadowRootCompleted
	ScriptExecuting
	ScriptExecuted
	ExceptionThrown

	numKinds
)

// Phase tells where a notification fires relative to the forwarded call.
type Phase int

const (
	// Before notifications fire before the call is forwarded.
	Before Phase = iota
	// After notifications fire once the forwarded call succeeded.
	After
	// Failure notifications fire once the forwarded call failed.
	Failure
)

func (p Phase) String() string {
	switch p {
	case Before:
		return "before"
	case After:
		return "after"
	case Failure:
		return "failure"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

var kinds = [numKinds]struct {
	name      string
	operation string
	phase     Phase
}{
	Navigating:             {"Navigating", "navigate", Before},
	Navigated:              {"Navigated", "navigate", After},
	NavigatingBack:         {"NavigatingBack", "navigate back", Before},
	NavigatedBack:          {"NavigatedBack", "navigate back", After},
	NavigatingForward:      {"NavigatingForward", "navigate forward", Before},
	NavigatedForward:       {"NavigatedForward", "navigate forward", After},
	ElementClicking:        {"ElementClicking", "click", Before},
	ElementClicked:         {"ElementClicked", "click", After},
	ElementValueChanging:   {"ElementValueChanging", "change value", Before},
	ElementValueChanged:    {"ElementValueChanged", "change value", After},
	FindingElement:         {"FindingElement", "find element", Before},
	FindElementCompleted:   {"FindElementCompleted", "find element", After},
	GettingShadowRoot:      {"GettingShadowRoot", "get shadow root", Before},
	GetShadowRootCompleted: {"GetShadowRootCompleted", "get shadow root", After},
	ScriptExecuting:        {"ScriptExecuting", "execute script", Before},
	ScriptExecuted:         {"ScriptExecuted", "execute script", After},
	ExceptionThrown:        {"ExceptionThrown", "", Failure},
}

// Kinds returns every notification kind.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Phase returns when the kind fires relative to the forwarded call.
func (k Kind) Phase() Phase {
	if !k.valid() {
		return Failure
	}
	return kinds[k].phase
}

// Operation names the monitored operation, e.g. "navigate back". It is
// empty for ExceptionThrown, which fires for any operation.
func (k Kind) Operation() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].operation
}
