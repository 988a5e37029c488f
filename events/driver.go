package events

import (
	"fmt"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/wanmail/selenium/v2"
)

// Option configures an EventFiringWebDriver.
type Option func(*EventFiringWebDriver) error

// WithChannel makes the decorator fire its notifications on c, which may be
// shared with other decorators.
func WithChannel(c *Channel) Option {
	return func(d *EventFiringWebDriver) error {
		if c == nil {
			return errors.Wrap(selenium.ErrInvalidArgument, "channel must not be nil")
		}
		d.events = c
		return nil
	}
}

// WithHandler subscribes h to kinds, or to every kind if none are given.
// The subscription is made on the decorator's final channel, whatever the
// position of WithChannel among the options.
func WithHandler(h Handler, kinds ...Kind) Option {
	return func(d *EventFiringWebDriver) error {
		if h == nil {
			return errors.Wrap(selenium.ErrInvalidArgument, "handler must not be nil")
		}
		d.pending = append(d.pending, func(c *Channel) { c.Subscribe(h, kinds...) })
		return nil
	}
}

// WithListener subscribes l to kinds, or to every kind if none are given.
func WithListener(l Listener, kinds ...Kind) Option {
	return func(d *EventFiringWebDriver) error {
		if l == nil {
			return errors.Wrap(selenium.ErrInvalidArgument, "listener must not be nil")
		}
		d.pending = append(d.pending, func(c *Channel) { c.SubscribeListener(l, kinds...) })
		return nil
	}
}

// EventFiringWebDriver wraps a selenium.WebDriver and fires notifications
// around the operations made through it. Elements, shadow roots, alerts and
// sub-interfaces returned by the driver are wrapped as well, so operations
// made through them are observed too.
//
// It implements selenium.JavaScriptExecutor and selenium.TakesScreenshot
// whatever the wrapped driver supports; calls to a capability the wrapped
// driver lacks fail with selenium.ErrUnsupportedOperation.
type EventFiringWebDriver struct {
	driver selenium.WebDriver
	caps   selenium.DriverCapabilities
	events *Channel

	// subscriptions requested by options, made once the channel is known
	pending []func(*Channel)

	disposeOnce sync.Once
	disposeErr  error
}

// NewEventFiringWebDriver returns a decorator owning driver. Disposing the
// decorator disposes driver.
func NewEventFiringWebDriver(driver selenium.WebDriver, opts ...Option) (*EventFiringWebDriver, error) {
	if driver == nil {
		return nil, selenium.InvalidArgument("driver")
	}
	d := &EventFiringWebDriver{
		driver: driver,
		caps:   selenium.DriverCapabilitiesOf(driver),
		events: NewChannel(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	for _, subscribe := range d.pending {
		subscribe(d.events)
	}
	d.pending = nil
	return d, nil
}

// Events returns the channel the decorator fires on.
func (d *EventFiringWebDriver) Events() *Channel {
	return d.events
}

// WrappedDriver returns the driver being decorated.
func (d *EventFiringWebDriver) WrappedDriver() selenium.WebDriver {
	return d.driver
}

func (d *EventFiringWebDriver) String() string {
	return fmt.Sprintf("EventFiringWebDriver(%T)", d.driver)
}

func (d *EventFiringWebDriver) fire(kind Kind, args Args) error {
	return d.events.Fire(kind, args)
}

// around runs f between the before and after notifications of args'
// operation. A failure of f is reported through fail.
func (d *EventFiringWebDriver) around(before, after Kind, method string, args Args, f func() error) error {
	if err := d.fire(before, args); err != nil {
		return err
	}
	if err := f(); err != nil {
		return d.fail(method, before.Operation(), args, err)
	}
	return d.fire(after, args)
}

// fail fires ExceptionThrown for err and returns the error the caller
// receives: err itself, unless a handler failed.
func (d *EventFiringWebDriver) fail(method, operation string, op Args, err error) error {
	args := &ExceptionArgs{
		driverArgs:    driverArgs{d.driver},
		err:           err,
		method:        method,
		operation:     op,
		operationName: operation,
	}
	if herr := d.fire(ExceptionThrown, args); herr != nil {
		return herr
	}
	return err
}

// observe reports a failure of an operation without a notification pair.
func (d *EventFiringWebDriver) observe(method string, err error) error {
	if err == nil {
		return nil
	}
	return d.fail(method, "", nil, err)
}

func (d *EventFiringWebDriver) wrapElement(e selenium.WebElement) selenium.WebElement {
	if e == nil {
		return nil
	}
	return &EventFiringWebElement{
		driver:  d,
		element: e,
		caps:    selenium.ElementCapabilitiesOf(e),
	}
}

func (d *EventFiringWebDriver) wrapElements(elems []selenium.WebElement) []selenium.WebElement {
	if elems == nil {
		return nil
	}
	out := make([]selenium.WebElement, len(elems))
	for i, e := range elems {
		out[i] = d.wrapElement(e)
	}
	return out
}

// findElement looks up one element in sc, reporting it with args.
func (d *EventFiringWebDriver) findElement(sc selenium.SearchContext, args *FindElementArgs) (selenium.WebElement, error) {
	if args.by == "" {
		return nil, selenium.InvalidArgument("by")
	}
	var found selenium.WebElement
	err := d.around(FindingElement, FindElementCompleted, "FindElement", args, func() error {
		e, err := sc.FindElement(args.by, args.value)
		found = d.wrapElement(e)
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (d *EventFiringWebDriver) findElements(sc selenium.SearchContext, args *FindElementArgs) ([]selenium.WebElement, error) {
	if args.by == "" {
		return nil, selenium.InvalidArgument("by")
	}
	var found []selenium.WebElement
	err := d.around(FindingElement, FindElementCompleted, "FindElements", args, func() error {
		elems, err := sc.FindElements(args.by, args.value)
		found = d.wrapElements(elems)
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// FindElement implements selenium.SearchContext.
func (d *EventFiringWebDriver) FindElement(by, value string) (selenium.WebElement, error) {
	return d.findElement(d.driver, &FindElementArgs{
		driverArgs: driverArgs{d.driver},
		by:         by,
		value:      value,
	})
}

// FindElements implements selenium.SearchContext.
func (d *EventFiringWebDriver) FindElements(by, value string) ([]selenium.WebElement, error) {
	return d.findElements(d.driver, &FindElementArgs{
		driverArgs: driverArgs{d.driver},
		by:         by,
		value:      value,
	})
}

// Get navigates to url, firing Navigating and Navigated.
func (d *EventFiringWebDriver) Get(url string) error {
	if url == "" {
		return selenium.InvalidArgument("url")
	}
	args := &NavigationArgs{driverArgs: driverArgs{d.driver}, url: url}
	return d.around(Navigating, Navigated, "Get", args, func() error {
		return d.driver.Get(url)
	})
}

func (d *EventFiringWebDriver) CurrentURL() (string, error) {
	url, err := d.driver.CurrentURL()
	return url, d.observe("CurrentURL", err)
}

func (d *EventFiringWebDriver) Title() (string, error) {
	title, err := d.driver.Title()
	return title, d.observe("Title", err)
}

func (d *EventFiringWebDriver) PageSource() (string, error) {
	src, err := d.driver.PageSource()
	return src, d.observe("PageSource", err)
}

func (d *EventFiringWebDriver) CurrentWindowHandle() (string, error) {
	h, err := d.driver.CurrentWindowHandle()
	return h, d.observe("CurrentWindowHandle", err)
}

func (d *EventFiringWebDriver) WindowHandles() ([]string, error) {
	hs, err := d.driver.WindowHandles()
	return hs, d.observe("WindowHandles", err)
}

func (d *EventFiringWebDriver) Close() error {
	return d.observe("Close", d.driver.Close())
}

func (d *EventFiringWebDriver) Quit() error {
	return d.observe("Quit", d.driver.Quit())
}

// Manage returns a decorator of the wrapped driver's options.
func (d *EventFiringWebDriver) Manage() selenium.Options {
	return &eventFiringOptions{options: d.driver.Manage()}
}

// Navigate returns a decorator of the wrapped driver's navigation.
func (d *EventFiringWebDriver) Navigate() selenium.Navigation {
	return &eventFiringNavigation{driver: d, navigation: d.driver.Navigate()}
}

// SwitchTo returns a decorator of the wrapped driver's target locator.
func (d *EventFiringWebDriver) SwitchTo() selenium.TargetLocator {
	return &eventFiringTargetLocator{driver: d, locator: d.driver.SwitchTo()}
}

// Dispose disposes the wrapped driver. Only the first call reaches it;
// later calls return the first call's result.
func (d *EventFiringWebDriver) Dispose() error {
	d.disposeOnce.Do(func() {
		glog.V(2).Infof("events: disposing %T", d.driver)
		d.disposeErr = d.driver.Dispose()
	})
	return d.disposeErr
}

// ExecuteScript implements selenium.JavaScriptExecutor, firing
// ScriptExecuting and ScriptExecuted. Element arguments are unwrapped and
// element results wrapped, including those nested in slices and maps.
func (d *EventFiringWebDriver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	return d.executeScript("ExecuteScript", script, false, args, func(js selenium.JavaScriptExecutor, a []interface{}) (interface{}, error) {
		return js.ExecuteScript(script, a)
	})
}

// ExecuteAsyncScript implements selenium.JavaScriptExecutor like
// ExecuteScript.
func (d *EventFiringWebDriver) ExecuteAsyncScript(script string, args []interface{}) (interface{}, error) {
	return d.executeScript("ExecuteAsyncScript", script, true, args, func(js selenium.JavaScriptExecutor, a []interface{}) (interface{}, error) {
		return js.ExecuteAsyncScript(script, a)
	})
}

// ExecutePinnedScript implements selenium.JavaScriptExecutor like
// ExecuteScript. The notifications carry the pinned script's source.
func (d *EventFiringWebDriver) ExecutePinnedScript(script *selenium.PinnedScript, args []interface{}) (interface{}, error) {
	if d.caps.Script == nil {
		return nil, selenium.Unsupported("driver", "JavaScriptExecutor")
	}
	if script == nil {
		return nil, selenium.InvalidArgument("script")
	}
	return d.executeScript("ExecutePinnedScript", script.Source, false, args, func(js selenium.JavaScriptExecutor, a []interface{}) (interface{}, error) {
		return js.ExecutePinnedScript(script, a)
	})
}

func (d *EventFiringWebDriver) executeScript(method, script string, async bool, args []interface{}, run func(selenium.JavaScriptExecutor, []interface{}) (interface{}, error)) (interface{}, error) {
	js := d.caps.Script
	if js == nil {
		return nil, selenium.Unsupported("driver", "JavaScriptExecutor")
	}
	if script == "" {
		return nil, selenium.InvalidArgument("script")
	}
	payload := &ScriptArgs{driverArgs: driverArgs{d.driver}, script: script, async: async}
	var result interface{}
	err := d.around(ScriptExecuting, ScriptExecuted, method, payload, func() error {
		res, err := run(js, unwrapArgs(args))
		result = d.wrapResult(res)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Screenshot implements selenium.TakesScreenshot.
func (d *EventFiringWebDriver) Screenshot() ([]byte, error) {
	if d.caps.Screenshot == nil {
		return nil, selenium.Unsupported("driver", "TakesScreenshot")
	}
	png, err := d.caps.Screenshot.Screenshot()
	return png, d.observe("Screenshot", err)
}

// unwrapArgs replaces element decorators in script arguments by the
// elements they wrap.
func unwrapArgs(args []interface{}) []interface{} {
	if args == nil {
		return nil
	}
	out := make([]interface{}, len(args))
	for i, a := range args {
		out[i] = unwrapValue(a)
	}
	return out
}

func unwrapValue(v interface{}) interface{} {
	switch x := v.(type) {
	case selenium.WrapsElement:
		if inner := x.WrappedElement(); inner != nil {
			return inner
		}
	case []interface{}:
		return unwrapArgs(x)
	case []selenium.WebElement:
		out := make([]selenium.WebElement, len(x))
		for i, e := range x {
			out[i] = unwrapElement(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, e := range x {
			out[k] = unwrapValue(e)
		}
		return out
	}
	return v
}

// unwrapElement removes one layer of wrapping from e.
func unwrapElement(e selenium.WebElement) selenium.WebElement {
	if w, ok := e.(selenium.WrapsElement); ok {
		if inner := w.WrappedElement(); inner != nil {
			return inner
		}
	}
	return e
}

// wrapResult decorates the elements in a script result.
func (d *EventFiringWebDriver) wrapResult(v interface{}) interface{} {
	switch x := v.(type) {
	case selenium.WebElement:
		return d.wrapElement(x)
	case []selenium.WebElement:
		return d.wrapElements(x)
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = d.wrapResult(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, e := range x {
			out[k] = d.wrapResult(e)
		}
		return out
	}
	return v
}

var (
	_ selenium.WebDriver          = (*EventFiringWebDriver)(nil)
	_ selenium.JavaScriptExecutor = (*EventFiringWebDriver)(nil)
	_ selenium.TakesScreenshot    = (*EventFiringWebDriver)(nil)
	_ selenium.WrapsDriver        = (*EventFiringWebDriver)(nil)
)
