package selenium

import (
	"context"
	"time"
)

// Methods by which to find elements.
const (
	ByID              = "id"
	ByXPATH           = "xpath"
	ByLinkText        = "link text"
	ByPartialLinkText = "partial link text"
	ByName            = "name"
	ByTagName         = "tag name"
	ByClassName       = "class name"
	ByCSSSelector     = "css selector"
)

// Special keyboard keys, for SendKeys.
const (
	NullKey       = string('\ue000')
	CancelKey     = string('\ue001')
	HelpKey       = string('\ue002')
	BackspaceKey  = string('\ue003')
	TabKey        = string('\ue004')
	ClearKey      = string('\ue005')
	ReturnKey     = string('\ue006')
	EnterKey      = string('\ue007')
	ShiftKey      = string('\ue008')
	ControlKey    = string('\ue009')
	AltKey        = string('\ue00a')
	PauseKey      = string('\ue00b')
	EscapeKey     = string('\ue00c')
	SpaceKey      = string('\ue00d')
	PageUpKey     = string('\ue00e')
	PageDownKey   = string('\ue00f')
	EndKey        = string('\ue010')
	HomeKey       = string('\ue011')
	LeftArrowKey  = string('\ue012')
	UpArrowKey    = string('\ue013')
	RightArrowKey = string('\ue014')
	DownArrowKey  = string('\ue015')
	InsertKey     = string('\ue016')
	DeleteKey     = string('\ue017')
	SemicolonKey  = string('\ue018')
	EqualsKey     = string('\ue019')
	Numpad0Key    = string('\ue01a')
	Numpad1Key    = string('\ue01b')
	Numpad2Key    = string('\ue01c')
	Numpad3Key    = string('\ue01d')
	Numpad4Key    = string('\ue01e')
	Numpad5Key    = string('\ue01f')
	Numpad6Key    = string('\ue020')
	Numpad7Key    = string('\ue021')
	Numpad8Key    = string('\ue022')
	Numpad9Key    = string('\ue023')
	MultiplyKey   = string('\ue024')
	AddKey        = string('\ue025')
	SeparatorKey  = string('\ue026')
	SubstractKey  = string('\ue027')
	DecimalKey    = string('\ue028')
	DivideKey     = string('\ue029')
	F1Key         = string('\ue031')
	F2Key         = string('\ue032')
	F3Key         = string('\ue033')
	F4Key         = string('\ue034')
	F5Key         = string('\ue035')
	F6Key         = string('\ue036')
	F7Key         = string('\ue037')
	F8Key         = string('\ue038')
	F9Key         = string('\ue039')
	F10Key        = string('\ue03a')
	F11Key        = string('\ue03b')
	F12Key        = string('\ue03c')
	MetaKey       = string('\ue03d')
)

// Point is a 2D point.
type Point struct {
	X, Y int
}

// Size is a size of HTML element.
type Size struct {
	Width, Height int
}

// Cookie represents an HTTP cookie.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Path   string `json:"path"`
	Domain string `json:"domain"`
	Secure bool   `json:"secure"`
	Expiry uint   `json:"expiry"`
}

// WindowType is the kind of top-level browsing context opened by
// TargetLocator.NewWindow.
type WindowType string

const (
	// TabWindow opens a new tab in the current window.
	TabWindow WindowType = "tab"
	// BrowserWindow opens a new top-level window.
	BrowserWindow WindowType = "window"
)

// SearchContext is implemented by everything elements can be searched
// from: drivers, elements and shadow roots.
type SearchContext interface {
	// FindElement finds exactly one element matching the locator.
	FindElement(by, value string) (WebElement, error)
	// FindElements finds potentially many elements matching the locator.
	FindElements(by, value string) ([]WebElement, error)
}

// WebDriver defines the base contract supported by every driver. Optional
// capabilities such as script execution are separate interfaces; see
// DriverCapabilitiesOf.
type WebDriver interface {
	SearchContext

	// Get navigates the browser to the provided URL.
	Get(url string) error
	// CurrentURL returns the browser's current URL.
	CurrentURL() (string, error)
	// Title returns the current page's title.
	Title() (string, error)
	// PageSource returns the current page's source.
	PageSource() (string, error)
	// CurrentWindowHandle returns the ID of current window handle.
	CurrentWindowHandle() (string, error)
	// WindowHandles returns the IDs of current open windows.
	WindowHandles() ([]string, error)

	// Close closes the current window.
	Close() error
	// Quit ends the current session. The browser instance will be closed.
	Quit() error

	// Manage returns the options interface for the session.
	Manage() Options
	// Navigate returns the history navigation interface.
	Navigate() Navigation
	// SwitchTo returns the interface used to change the browsing context.
	SwitchTo() TargetLocator

	// Dispose releases the driver and everything it owns. It is safe to
	// call more than once.
	Dispose() error
}

// JavaScriptExecutor is implemented by drivers able to run scripts in the
// page.
type JavaScriptExecutor interface {
	// ExecuteScript executes a script.
	ExecuteScript(script string, args []interface{}) (interface{}, error)
	// ExecuteAsyncScript asynchronously executes a script.
	ExecuteAsyncScript(script string, args []interface{}) (interface{}, error)
	// ExecutePinnedScript executes a script previously pinned to the
	// session.
	ExecutePinnedScript(script *PinnedScript, args []interface{}) (interface{}, error)
}

// TakesScreenshot is implemented by drivers and elements able to capture
// a PNG screenshot of themselves.
type TakesScreenshot interface {
	Screenshot() ([]byte, error)
}

// WrapsDriver is implemented by objects that wrap, or belong to, a driver.
type WrapsDriver interface {
	WrappedDriver() WebDriver
}

// WrapsElement is implemented by objects that wrap another element.
type WrapsElement interface {
	WrappedElement() WebElement
}

// Equaler is implemented by elements that know whether another element
// refers to the same DOM node.
type Equaler interface {
	Equal(other WebElement) bool
}

// WebElement defines the base contract supported by web elements.
type WebElement interface {
	SearchContext

	// TagName returns the element's name.
	TagName() (string, error)
	// Text returns the text of the element.
	Text() (string, error)
	// IsEnabled returns true if the element is enabled.
	IsEnabled() (bool, error)
	// IsSelected returns true if element is selected.
	IsSelected() (bool, error)
	// IsDisplayed returns true if the element is displayed.
	IsDisplayed() (bool, error)
	// Location returns the element's location.
	Location() (*Point, error)
	// Size returns the element's size.
	Size() (*Size, error)

	// Clear clears the element.
	Clear() error
	// SendKeys types into the element.
	SendKeys(keys string) error
	// Submit submits the form the element belongs to.
	Submit() error
	// Click clicks on the element.
	Click() error

	// GetAttribute returns the named attribute of the element, falling
	// back to the property of the same name.
	GetAttribute(name string) (string, error)
	// GetDOMAttribute returns the named attribute as declared in the markup.
	GetDOMAttribute(name string) (string, error)
	// GetDOMProperty returns the named JavaScript property of the element.
	GetDOMProperty(name string) (string, error)
	// CSSProperty returns the value of the specified CSS property of the
	// element.
	CSSProperty(name string) (string, error)
	// ShadowRoot returns the search context of the element's shadow root.
	ShadowRoot() (SearchContext, error)
}

// Navigation moves through the browser history. Every operation has a
// blocking form and a form taking a context.
type Navigation interface {
	Back() error
	Forward() error
	Refresh() error
	To(url string) error

	BackContext(ctx context.Context) error
	ForwardContext(ctx context.Context) error
	RefreshContext(ctx context.Context) error
	ToContext(ctx context.Context, url string) error
}

// Options manages session settings.
type Options interface {
	Timeouts() Timeouts
	Window() Window
	Cookies() CookieJar
}

// Timeouts configures the waits applied by the driver. Durations are
// rounded to the nearest millisecond by remote implementations.
type Timeouts interface {
	// ImplicitWaitTimeout returns how long the driver waits when searching
	// for elements.
	ImplicitWaitTimeout() (time.Duration, error)
	// SetImplicitWaitTimeout sets the amount of time the driver should wait
	// when searching for elements.
	SetImplicitWaitTimeout(timeout time.Duration) error
	// AsyncScriptTimeout returns how long asynchronous scripts may run.
	AsyncScriptTimeout() (time.Duration, error)
	// SetAsyncScriptTimeout sets the amount of time that asynchronous
	// scripts are permitted to run before they are aborted.
	SetAsyncScriptTimeout(timeout time.Duration) error
	// PageLoadTimeout returns how long the driver waits for a page load.
	PageLoadTimeout() (time.Duration, error)
	// SetPageLoadTimeout sets the amount of time the driver should wait
	// when loading a page.
	SetPageLoadTimeout(timeout time.Duration) error
}

// Window controls the current top-level browsing context.
type Window interface {
	Position() (*Point, error)
	SetPosition(p Point) error
	Size() (*Size, error)
	SetSize(s Size) error
	Maximize() error
	Minimize() error
	FullScreen() error
}

// CookieJar manipulates the browser's cookies.
type CookieJar interface {
	// AllCookies returns all of the cookies in the browser's jar.
	AllCookies() ([]Cookie, error)
	// GetCookie returns the named cookie in the jar, if present.
	GetCookie(name string) (*Cookie, error)
	// AddCookie adds a cookie to the browser's jar.
	AddCookie(cookie *Cookie) error
	// DeleteCookie deletes a cookie from the browser's jar.
	DeleteCookie(name string) error
	// DeleteAllCookies deletes all of the cookies in the browser's jar.
	DeleteAllCookies() error
}

// TargetLocator switches the browsing context the driver operates on. The
// frame and window switches return the driver now focused on the new
// context.
type TargetLocator interface {
	// Frame switches to the frame at the given index of the current page.
	Frame(index int) (WebDriver, error)
	// FrameByName switches to the frame with the given name or ID.
	FrameByName(nameOrID string) (WebDriver, error)
	// FrameByElement switches to the frame represented by the element.
	FrameByElement(frame WebElement) (WebDriver, error)
	// ParentFrame switches to the parent of the current frame.
	ParentFrame() (WebDriver, error)
	// Window switches to the window with the given name or handle.
	Window(nameOrHandle string) (WebDriver, error)
	// NewWindow opens and switches to a new tab or window.
	NewWindow(typ WindowType) (WebDriver, error)
	// DefaultContent switches to the top-level document.
	DefaultContent() (WebDriver, error)
	// ActiveElement returns the element that currently has focus.
	ActiveElement() (WebElement, error)
	// Alert switches to the currently open alert.
	Alert() (Alert, error)
}

// Alert is a JavaScript alert, confirm or prompt dialog.
type Alert interface {
	// Text returns the alert text.
	Text() (string, error)
	// Accept accepts the alert.
	Accept() error
	// Dismiss dismisses the alert.
	Dismiss() error
	// SendKeys sets the text of a prompt.
	SendKeys(keys string) error
}
