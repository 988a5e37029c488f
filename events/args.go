package events

import "github.com/wanmail/selenium/v2"

// Args is the payload of a notification. The before and after
// notifications of one operation share a payload, so subscribers can pair
// them by identity. Payloads are never modified once fired.
//
// Drivers, elements and search contexts carried by a payload are the
// wrapped objects, not the decorators around them.
type Args interface {
	// Driver returns the wrapped driver the operation ran against.
	Driver() selenium.WebDriver
}

type driverArgs struct {
	driver selenium.WebDriver
}

func (a driverArgs) Driver() selenium.WebDriver {
	return a.driver
}

// NavigationArgs describes a navigation. URL is empty for history
// navigation.
type NavigationArgs struct {
	driverArgs
	url string
}

// URL returns the navigation target.
func (a *NavigationArgs) URL() string {
	return a.url
}

// ElementArgs describes an operation on an element, such as a click.
type ElementArgs struct {
	driverArgs
	element selenium.WebElement
}

// Element returns the element operated on.
func (a *ElementArgs) Element() selenium.WebElement {
	return a.element
}

// ElementValueArgs describes a change of an element's value.
type ElementValueArgs struct {
	ElementArgs
	value *string
}

// Value returns the keys sent to the element, or nil when the element is
// being cleared.
func (a *ElementValueArgs) Value() *string {
	if a.value == nil {
		return nil
	}
	v := *a.value
	return &v
}

// FindElementArgs describes an element lookup. At most one of Element and
// ShadowRoot is set, naming the context the lookup is scoped to; both are
// nil for a lookup from the driver.
type FindElementArgs struct {
	driverArgs
	element    selenium.WebElement
	shadowRoot selenium.SearchContext
	by, value  string
}

// Element returns the element the lookup searches below, if any.
func (a *FindElementArgs) Element() selenium.WebElement {
	return a.element
}

// ShadowRoot returns the shadow root the lookup searches in, if any.
func (a *FindElementArgs) ShadowRoot() selenium.SearchContext {
	return a.shadowRoot
}

// By returns the locator strategy, e.g. selenium.ByID.
func (a *FindElementArgs) By() string {
	return a.by
}

// Value returns the locator value.
func (a *FindElementArgs) Value() string {
	return a.value
}

// ShadowRootArgs describes a shadow root lookup. The GetShadowRootCompleted
// payload is a new value carrying the shadow root found; Origin links it to
// the GettingShadowRoot payload.
type ShadowRootArgs struct {
	driverArgs
	element    selenium.WebElement
	shadowRoot selenium.SearchContext
	before     *ShadowRootArgs
}

// Element returns the shadow host.
func (a *ShadowRootArgs) Element() selenium.WebElement {
	return a.element
}

// ShadowRoot returns the search context of the shadow root. It is nil
// until the shadow root has been obtained.
func (a *ShadowRootArgs) ShadowRoot() selenium.SearchContext {
	return a.shadowRoot
}

// ScriptArgs describes a script execution.
type ScriptArgs struct {
	driverArgs
	script string
	async  bool
}

// Script returns the script source.
func (a *ScriptArgs) Script() string {
	return a.script
}

// Async reports whether the script was run with ExecuteAsyncScript.
func (a *ScriptArgs) Async() bool {
	return a.async
}

// ExceptionArgs describes a failed call.
type ExceptionArgs struct {
	driverArgs
	err           error
	method        string
	operation     Args
	operationName string
}

// Err returns the error returned by the wrapped object. It is the very
// value the caller receives.
func (a *ExceptionArgs) Err() error {
	return a.err
}

// Method names the failed call, e.g. "FindElement" or "Alert.Accept".
func (a *ExceptionArgs) Method() string {
	return a.method
}

// Operation returns the payload of the before notification of the failed
// operation, or nil for calls that fire no before notification.
func (a *ExceptionArgs) Operation() Args {
	return a.operation
}

// OperationName names the failed operation, e.g. "navigate back", as
// Kind.Operation does for its before notification. It is empty for calls
// that fire no before notification.
func (a *ExceptionArgs) OperationName() string {
	return a.operationName
}

// Origin returns the payload the before notification of args' operation
// carried. It is args itself for before and shared after payloads, and nil
// for failures of calls without a before notification.
func Origin(args Args) Args {
	switch a := args.(type) {
	case *ShadowRootArgs:
		if a.before != nil {
			return a.before
		}
	case *ExceptionArgs:
		return a.operation
	}
	return args
}
