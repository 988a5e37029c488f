package events

import "github.com/wanmail/selenium/v2"

// eventFiringTargetLocator decorates selenium.TargetLocator. Switches only
// report failures. Frame and window switches return the decorator, which
// follows the wrapped driver into the new browsing context.
type eventFiringTargetLocator struct {
	driver  *EventFiringWebDriver
	locator selenium.TargetLocator
}

func (t *eventFiringTargetLocator) switched(method string, _ selenium.WebDriver, err error) (selenium.WebDriver, error) {
	if err != nil {
		return nil, t.driver.observe("SwitchTo."+method, err)
	}
	return t.driver, nil
}

func (t *eventFiringTargetLocator) Frame(index int) (selenium.WebDriver, error) {
	wd, err := t.locator.Frame(index)
	return t.switched("Frame", wd, err)
}

func (t *eventFiringTargetLocator) FrameByName(nameOrID string) (selenium.WebDriver, error) {
	wd, err := t.locator.FrameByName(nameOrID)
	return t.switched("FrameByName", wd, err)
}

// FrameByElement switches to the frame of frame. An element decorator is
// unwrapped first; any other element is passed on as is.
func (t *eventFiringTargetLocator) FrameByElement(frame selenium.WebElement) (selenium.WebDriver, error) {
	if frame == nil {
		return nil, selenium.InvalidArgument("frame")
	}
	wd, err := t.locator.FrameByElement(unwrapElement(frame))
	return t.switched("FrameByElement", wd, err)
}

func (t *eventFiringTargetLocator) ParentFrame() (selenium.WebDriver, error) {
	wd, err := t.locator.ParentFrame()
	return t.switched("ParentFrame", wd, err)
}

func (t *eventFiringTargetLocator) Window(nameOrHandle string) (selenium.WebDriver, error) {
	wd, err := t.locator.Window(nameOrHandle)
	return t.switched("Window", wd, err)
}

func (t *eventFiringTargetLocator) NewWindow(typ selenium.WindowType) (selenium.WebDriver, error) {
	wd, err := t.locator.NewWindow(typ)
	return t.switched("NewWindow", wd, err)
}

func (t *eventFiringTargetLocator) DefaultContent() (selenium.WebDriver, error) {
	wd, err := t.locator.DefaultContent()
	return t.switched("DefaultContent", wd, err)
}

// ActiveElement returns the focused element, wrapped.
func (t *eventFiringTargetLocator) ActiveElement() (selenium.WebElement, error) {
	e, err := t.locator.ActiveElement()
	if err != nil {
		return nil, t.driver.observe("SwitchTo.ActiveElement", err)
	}
	return t.driver.wrapElement(e), nil
}

// Alert returns the open alert, wrapped so its failures are reported.
func (t *eventFiringTargetLocator) Alert() (selenium.Alert, error) {
	a, err := t.locator.Alert()
	if err != nil {
		return nil, t.driver.observe("SwitchTo.Alert", err)
	}
	return &eventFiringAlert{driver: t.driver, alert: a}, nil
}

type eventFiringAlert struct {
	driver *EventFiringWebDriver
	alert  selenium.Alert
}

func (a *eventFiringAlert) Text() (string, error) {
	text, err := a.alert.Text()
	return text, a.driver.observe("Alert.Text", err)
}

func (a *eventFiringAlert) Accept() error {
	return a.driver.observe("Alert.Accept", a.alert.Accept())
}

func (a *eventFiringAlert) Dismiss() error {
	return a.driver.observe("Alert.Dismiss", a.alert.Dismiss())
}

func (a *eventFiringAlert) SendKeys(keys string) error {
	return a.driver.observe("Alert.SendKeys", a.alert.SendKeys(keys))
}
