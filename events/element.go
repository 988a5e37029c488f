package events

import (
	"fmt"

	"github.com/wanmail/selenium/v2"
)

// EventFiringWebElement wraps an element returned through an
// EventFiringWebDriver. Two wrappers are equal when the elements they wrap
// are, so finding the same node twice yields equal, distinct wrappers.
type EventFiringWebElement struct {
	driver  *EventFiringWebDriver
	element selenium.WebElement
	caps    selenium.ElementCapabilities
}

// WrappedElement implements selenium.WrapsElement.
func (e *EventFiringWebElement) WrappedElement() selenium.WebElement {
	return e.element
}

// WrappedDriver returns the decorator the element was found through.
func (e *EventFiringWebElement) WrappedDriver() selenium.WebDriver {
	return e.driver
}

// Equal implements selenium.Equaler. A wrapped other is unwrapped before
// comparing.
func (e *EventFiringWebElement) Equal(other selenium.WebElement) bool {
	if other == nil {
		return false
	}
	return selenium.ElementsEqual(e.element, unwrapElement(other))
}

func (e *EventFiringWebElement) String() string {
	return fmt.Sprintf("EventFiringWebElement(%v)", e.element)
}

func (e *EventFiringWebElement) args() ElementArgs {
	return ElementArgs{driverArgs: driverArgs{e.driver.driver}, element: e.element}
}

func (e *EventFiringWebElement) observe(method string, err error) error {
	return e.driver.observe("Element."+method, err)
}

// FindElement looks up an element below e, firing FindingElement and
// FindElementCompleted with e's element in the payload.
func (e *EventFiringWebElement) FindElement(by, value string) (selenium.WebElement, error) {
	return e.driver.findElement(e.element, &FindElementArgs{
		driverArgs: driverArgs{e.driver.driver},
		element:    e.element,
		by:         by,
		value:      value,
	})
}

// FindElements is FindElement for many elements.
func (e *EventFiringWebElement) FindElements(by, value string) ([]selenium.WebElement, error) {
	return e.driver.findElements(e.element, &FindElementArgs{
		driverArgs: driverArgs{e.driver.driver},
		element:    e.element,
		by:         by,
		value:      value,
	})
}

func (e *EventFiringWebElement) TagName() (string, error) {
	v, err := e.element.TagName()
	return v, e.observe("TagName", err)
}

func (e *EventFiringWebElement) Text() (string, error) {
	v, err := e.element.Text()
	return v, e.observe("Text", err)
}

func (e *EventFiringWebElement) IsEnabled() (bool, error) {
	v, err := e.element.IsEnabled()
	return v, e.observe("IsEnabled", err)
}

func (e *EventFiringWebElement) IsSelected() (bool, error) {
	v, err := e.element.IsSelected()
	return v, e.observe("IsSelected", err)
}

func (e *EventFiringWebElement) IsDisplayed() (bool, error) {
	v, err := e.element.IsDisplayed()
	return v, e.observe("IsDisplayed", err)
}

func (e *EventFiringWebElement) Location() (*selenium.Point, error) {
	v, err := e.element.Location()
	return v, e.observe("Location", err)
}

func (e *EventFiringWebElement) Size() (*selenium.Size, error) {
	v, err := e.element.Size()
	return v, e.observe("Size", err)
}

// Clear fires ElementValueChanging and ElementValueChanged with a nil
// value.
func (e *EventFiringWebElement) Clear() error {
	args := &ElementValueArgs{ElementArgs: e.args()}
	return e.driver.around(ElementValueChanging, ElementValueChanged, "Element.Clear", args, e.element.Clear)
}

// SendKeys fires ElementValueChanging and ElementValueChanged with keys as
// the value.
func (e *EventFiringWebElement) SendKeys(keys string) error {
	args := &ElementValueArgs{ElementArgs: e.args(), value: &keys}
	return e.driver.around(ElementValueChanging, ElementValueChanged, "Element.SendKeys", args, func() error {
		return e.element.SendKeys(keys)
	})
}

func (e *EventFiringWebElement) Submit() error {
	return e.observe("Submit", e.element.Submit())
}

// Click fires ElementClicking and ElementClicked.
func (e *EventFiringWebElement) Click() error {
	args := e.args()
	return e.driver.around(ElementClicking, ElementClicked, "Element.Click", &args, e.element.Click)
}

func (e *EventFiringWebElement) GetAttribute(name string) (string, error) {
	v, err := e.element.GetAttribute(name)
	return v, e.observe("GetAttribute", err)
}

func (e *EventFiringWebElement) GetDOMAttribute(name string) (string, error) {
	v, err := e.element.GetDOMAttribute(name)
	return v, e.observe("GetDOMAttribute", err)
}

func (e *EventFiringWebElement) GetDOMProperty(name string) (string, error) {
	v, err := e.element.GetDOMProperty(name)
	return v, e.observe("GetDOMProperty", err)
}

func (e *EventFiringWebElement) CSSProperty(name string) (string, error) {
	v, err := e.element.CSSProperty(name)
	return v, e.observe("CSSProperty", err)
}

// ShadowRoot fires GettingShadowRoot and GetShadowRootCompleted and wraps
// the shadow root found.
func (e *EventFiringWebElement) ShadowRoot() (selenium.SearchContext, error) {
	d := e.driver
	before := &ShadowRootArgs{driverArgs: driverArgs{d.driver}, element: e.element}
	if err := d.fire(GettingShadowRoot, before); err != nil {
		return nil, err
	}
	root, err := e.element.ShadowRoot()
	if err != nil {
		return nil, d.fail("Element.ShadowRoot", GettingShadowRoot.Operation(), before, err)
	}
	after := &ShadowRootArgs{
		driverArgs: before.driverArgs,
		element:    e.element,
		shadowRoot: root,
		before:     before,
	}
	if err := d.fire(GetShadowRootCompleted, after); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	return &EventFiringShadowRoot{driver: d, root: root}, nil
}

// Screenshot implements selenium.TakesScreenshot.
func (e *EventFiringWebElement) Screenshot() ([]byte, error) {
	if e.caps.Screenshot == nil {
		return nil, selenium.Unsupported("element", "TakesScreenshot")
	}
	png, err := e.caps.Screenshot.Screenshot()
	return png, e.observe("Screenshot", err)
}

// EventFiringShadowRoot wraps a shadow root obtained through an
// EventFiringWebElement.
type EventFiringShadowRoot struct {
	driver *EventFiringWebDriver
	root   selenium.SearchContext
}

// WrappedSearchContext implements selenium.WrapsSearchContext.
func (s *EventFiringShadowRoot) WrappedSearchContext() selenium.SearchContext {
	return s.root
}

// Equal reports whether other is, or wraps, the same shadow root.
func (s *EventFiringShadowRoot) Equal(other selenium.SearchContext) bool {
	if w, ok := other.(selenium.WrapsSearchContext); ok {
		if inner := w.WrappedSearchContext(); inner != nil {
			other = inner
		}
	}
	return selenium.SearchContextsEqual(s.root, other)
}

// FindElement looks up an element in the shadow tree, firing
// FindingElement and FindElementCompleted with the shadow root in the
// payload.
func (s *EventFiringShadowRoot) FindElement(by, value string) (selenium.WebElement, error) {
	return s.driver.findElement(s.root, &FindElementArgs{
		driverArgs: driverArgs{s.driver.driver},
		shadowRoot: s.root,
		by:         by,
		value:      value,
	})
}

// FindElements is FindElement for many elements.
func (s *EventFiringShadowRoot) FindElements(by, value string) ([]selenium.WebElement, error) {
	return s.driver.findElements(s.root, &FindElementArgs{
		driverArgs: driverArgs{s.driver.driver},
		shadowRoot: s.root,
		by:         by,
		value:      value,
	})
}

var (
	_ selenium.WebElement         = (*EventFiringWebElement)(nil)
	_ selenium.WrapsElement       = (*EventFiringWebElement)(nil)
	_ selenium.WrapsDriver        = (*EventFiringWebElement)(nil)
	_ selenium.Equaler            = (*EventFiringWebElement)(nil)
	_ selenium.TakesScreenshot    = (*EventFiringWebElement)(nil)
	_ selenium.WrapsSearchContext = (*EventFiringShadowRoot)(nil)
)
