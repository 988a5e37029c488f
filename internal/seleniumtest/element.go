package seleniumtest

import (
	"strings"

	"github.com/wanmail/selenium/v2"
)

var booleanAttrs = map[string]bool{
	"checked":  true,
	"disabled": true,
	"hidden":   true,
	"multiple": true,
	"readonly": true,
	"required": true,
	"selected": true,
}

// Element is an element of a fake document. It implements
// selenium.WebElement, selenium.TakesScreenshot and selenium.Equaler.
type Element struct {
	driver *Driver
	node   *Node
}

// Node returns the document node the element refers to.
func (e *Element) Node() *Node {
	return e.node
}

// WrappedDriver returns the driver that found the element.
func (e *Element) WrappedDriver() selenium.WebDriver {
	return e.driver
}

// Equal implements selenium.Equaler. Wrapped elements are unwrapped before
// comparing.
func (e *Element) Equal(other selenium.WebElement) bool {
	o, ok := selenium.UnwrapElement(other).(*Element)
	return ok && o.driver == e.driver && o.node == e.node
}

func (e *Element) check() error {
	if err := e.driver.windowCheck(); err != nil {
		return err
	}
	if e.node == e.driver.active {
		return nil
	}
	root := e.node
	for root.parent != nil {
		root = root.parent
	}
	for _, n := range e.driver.win().document().Body {
		if n == root {
			return nil
		}
	}
	return selenium.NewError(selenium.ErrCodeStaleElementReference, "<%s> is not attached to the current document", e.node.Tag)
}

func (e *Element) record(call string) {
	e.driver.record("Element." + call)
}

// FindElement implements selenium.SearchContext.
func (e *Element) FindElement(by, value string) (selenium.WebElement, error) {
	e.record("FindElement " + by + " " + value)
	if err := e.check(); err != nil {
		return nil, err
	}
	return e.driver.findOne(e.node.Children, by, value)
}

// FindElements implements selenium.SearchContext.
func (e *Element) FindElements(by, value string) ([]selenium.WebElement, error) {
	e.record("FindElements " + by + " " + value)
	if err := e.check(); err != nil {
		return nil, err
	}
	return e.driver.findAll(e.node.Children, by, value)
}

func (e *Element) TagName() (string, error) {
	e.record("TagName")
	if err := e.check(); err != nil {
		return "", err
	}
	return strings.ToLower(e.node.Tag), nil
}

func (e *Element) Text() (string, error) {
	e.record("Text")
	if err := e.check(); err != nil {
		return "", err
	}
	return e.node.text(), nil
}

func (e *Element) IsEnabled() (bool, error) {
	e.record("IsEnabled")
	if err := e.check(); err != nil {
		return false, err
	}
	return !e.node.Disabled, nil
}

func (e *Element) IsSelected() (bool, error) {
	e.record("IsSelected")
	if err := e.check(); err != nil {
		return false, err
	}
	return e.node.isCheckable() && e.node.selected, nil
}

func (e *Element) IsDisplayed() (bool, error) {
	e.record("IsDisplayed")
	if err := e.check(); err != nil {
		return false, err
	}
	return !e.node.isHidden(), nil
}

func (e *Element) Location() (*selenium.Point, error) {
	e.record("Location")
	if err := e.check(); err != nil {
		return nil, err
	}
	p := e.node.Location
	return &p, nil
}

func (e *Element) Size() (*selenium.Size, error) {
	e.record("Size")
	if err := e.check(); err != nil {
		return nil, err
	}
	s := e.node.Size
	return &s, nil
}

func (e *Element) isEditable() bool {
	switch strings.ToLower(e.node.Tag) {
	case "textarea":
		return true
	case "input":
		return !e.node.isCheckable()
	}
	return false
}

func (e *Element) interactable() error {
	if e.node.isHidden() {
		return selenium.NewError(selenium.ErrCodeElementNotInteractable, "<%s> is not visible", e.node.Tag)
	}
	return nil
}

func (e *Element) Clear() error {
	e.record("Clear")
	if err := e.check(); err != nil {
		return err
	}
	if err := e.interactable(); err != nil {
		return err
	}
	if !e.isEditable() || e.node.Disabled {
		return selenium.NewError(selenium.ErrCodeInvalidElementState, "<%s> is not user-editable", e.node.Tag)
	}
	e.node.value = ""
	return nil
}

func (e *Element) SendKeys(keys string) error {
	e.record("SendKeys " + keys)
	if err := e.check(); err != nil {
		return err
	}
	if err := e.interactable(); err != nil {
		return err
	}
	if !e.isEditable() || e.node.Disabled {
		return selenium.NewError(selenium.ErrCodeElementNotInteractable, "<%s> is not reachable by keyboard", e.node.Tag)
	}
	e.driver.active = e.node
	e.node.value += keys
	return nil
}

func (e *Element) Submit() error {
	e.record("Submit")
	if err := e.check(); err != nil {
		return err
	}
	return e.submit()
}

func (e *Element) submit() error {
	form := e.node
	if !strings.EqualFold(form.Tag, "form") {
		form = e.node.ancestor("form")
	}
	if form == nil {
		return selenium.NewError(selenium.ErrCodeUnknownError, "<%s> is not part of a form", e.node.Tag)
	}
	return e.driver.load(form.attr("action"))
}

func (e *Element) Click() error {
	e.record("Click")
	if err := e.check(); err != nil {
		return err
	}
	if err := e.interactable(); err != nil {
		return err
	}
	n := e.node
	e.driver.active = n
	if n.Disabled {
		return nil
	}
	switch {
	case strings.EqualFold(n.Tag, "option"):
		sel := n.ancestor("select")
		if sel == nil {
			n.selected = true
			break
		}
		if _, multi := sel.Attrs["multiple"]; multi {
			n.selected = !n.selected
			break
		}
		for _, o := range descendants(sel.Children, false) {
			o.selected = false
		}
		n.selected = true
	case n.isCheckable() && strings.EqualFold(n.attr("type"), "radio"):
		n.selected = true
	case n.isCheckable():
		n.selected = !n.selected
	case n.Alert != "":
		e.driver.alert = &alert{d: e.driver, text: n.Alert}
	case n.Href != "":
		return e.driver.load(n.Href)
	case strings.EqualFold(n.Tag, "button") && n.attr("type") == "submit":
		return e.submit()
	}
	return nil
}

func (e *Element) GetAttribute(name string) (string, error) {
	e.record("GetAttribute " + name)
	if err := e.check(); err != nil {
		return "", err
	}
	switch {
	case name == "value":
		return e.node.value, nil
	case name == "checked" || name == "selected":
		if e.node.selected {
			return "true", nil
		}
		return "", nil
	case booleanAttrs[name]:
		return e.domAttribute(name), nil
	}
	if v, ok := e.node.Attrs[name]; ok {
		return v, nil
	}
	return e.node.Props[name], nil
}

func (e *Element) domAttribute(name string) string {
	v, ok := e.node.Attrs[name]
	if ok && booleanAttrs[name] {
		return "true"
	}
	return v
}

func (e *Element) GetDOMAttribute(name string) (string, error) {
	e.record("GetDOMAttribute " + name)
	if err := e.check(); err != nil {
		return "", err
	}
	return e.domAttribute(name), nil
}

func (e *Element) GetDOMProperty(name string) (string, error) {
	e.record("GetDOMProperty " + name)
	if err := e.check(); err != nil {
		return "", err
	}
	return e.node.property(name), nil
}

func (e *Element) CSSProperty(name string) (string, error) {
	e.record("CSSProperty " + name)
	if err := e.check(); err != nil {
		return "", err
	}
	if name == "display" {
		if e.node.isHidden() {
			return "none", nil
		}
		if v, ok := e.node.Style[name]; ok {
			return v, nil
		}
		return "block", nil
	}
	return e.node.Style[name], nil
}

func (e *Element) ShadowRoot() (selenium.SearchContext, error) {
	e.record("ShadowRoot")
	if err := e.check(); err != nil {
		return nil, err
	}
	if e.node.Shadow == nil {
		return nil, selenium.NewError(selenium.ErrCodeNoSuchShadowRoot, "<%s> does not host a shadow root", e.node.Tag)
	}
	return &ShadowRoot{host: e}, nil
}

// Screenshot implements selenium.TakesScreenshot.
func (e *Element) Screenshot() ([]byte, error) {
	e.record("Screenshot")
	if err := e.check(); err != nil {
		return nil, err
	}
	if err := e.interactable(); err != nil {
		return nil, err
	}
	return screenshot(e.node.Size)
}

// ShadowRoot is the search context of an element's shadow tree.
type ShadowRoot struct {
	host *Element
}

// Host returns the element hosting the shadow root.
func (s *ShadowRoot) Host() *Element {
	return s.host
}

// Equal reports whether other is the shadow root of the same host.
func (s *ShadowRoot) Equal(other selenium.SearchContext) bool {
	o, ok := selenium.UnwrapSearchContext(other).(*ShadowRoot)
	return ok && s.host.Equal(o.host)
}

// FindElement implements selenium.SearchContext.
func (s *ShadowRoot) FindElement(by, value string) (selenium.WebElement, error) {
	s.host.record("ShadowRoot.FindElement " + by + " " + value)
	if err := s.host.check(); err != nil {
		return nil, err
	}
	return s.host.driver.findOne(s.host.node.Shadow, by, value)
}

// FindElements implements selenium.SearchContext.
func (s *ShadowRoot) FindElements(by, value string) ([]selenium.WebElement, error) {
	s.host.record("ShadowRoot.FindElements " + by + " " + value)
	if err := s.host.check(); err != nil {
		return nil, err
	}
	return s.host.driver.findAll(s.host.node.Shadow, by, value)
}
