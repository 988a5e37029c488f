package seleniumtest

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/wanmail/selenium/v2"
)

// ScriptFunc implements a script understood by the fake browser.
type ScriptFunc func(d *Driver, args []interface{}) (interface{}, error)

// Driver is an in-memory browser implementing selenium.WebDriver and every
// optional driver capability. It is not safe for concurrent use.
type Driver struct {
	// Scripts maps script sources to their implementation. NewDriver
	// registers a few common ones.
	Scripts map[string]ScriptFunc
	// CallHook, if set, is invoked with a short description of every call
	// the driver receives, before it is handled.
	CallHook func(call string)

	pages   map[string]*Page
	windows map[string]*window
	handles []string
	current string

	alert  *alert
	active *Node

	cookies  []selenium.Cookie
	implicit time.Duration
	async    time.Duration
	pageLoad time.Duration

	quit     bool
	disposed int
}

type window struct {
	history []*Page
	pos     int
	frames  []*Page

	position selenium.Point
	size     selenium.Size
	state    string
}

func (w *window) top() *Page {
	return w.history[w.pos]
}

// document is the page the window's current browsing context shows.
func (w *window) document() *Page {
	if len(w.frames) > 0 {
		return w.frames[len(w.frames)-1]
	}
	return w.top()
}

var blank = &Page{URL: "about:blank"}

// NewDriver returns a driver serving pages, with one window open on
// about:blank.
func NewDriver(pages ...*Page) *Driver {
	d := &Driver{
		pages:    make(map[string]*Page),
		windows:  make(map[string]*window),
		pageLoad: 300 * time.Second,
		async:    30 * time.Second,
	}
	for _, p := range pages {
		d.pages[p.URL] = p
		link(nil, p.Body)
		for _, n := range descendants(p.Body, true) {
			if n.Frame != nil {
				link(nil, n.Frame.Body)
			}
		}
	}
	d.Scripts = map[string]ScriptFunc{
		"return document.title": func(d *Driver, _ []interface{}) (interface{}, error) {
			return d.win().document().Title, nil
		},
		"return arguments[0]": func(_ *Driver, args []interface{}) (interface{}, error) {
			if len(args) == 0 {
				return nil, nil
			}
			return args[0], nil
		},
		"return arguments": func(_ *Driver, args []interface{}) (interface{}, error) {
			return args, nil
		},
		"return document.activeElement": func(d *Driver, _ []interface{}) (interface{}, error) {
			return d.activeElement()
		},
		"arguments[0].click()": func(d *Driver, args []interface{}) (interface{}, error) {
			if len(args) == 0 {
				return nil, selenium.NewError(selenium.ErrCodeJavascriptError, "arguments[0] is undefined")
			}
			e, ok := args[0].(*Element)
			if !ok || e.driver != d {
				return nil, selenium.NewError(selenium.ErrCodeJavascriptError, "arguments[0] is not a web element of this session")
			}
			return nil, e.Click()
		},
	}
	d.openWindow()
	return d
}

// Disposed returns how many times Dispose released the driver.
func (d *Driver) Disposed() int {
	return d.disposed
}

func (d *Driver) record(call string) {
	glog.V(2).Infof("seleniumtest: %s", call)
	if d.CallHook != nil {
		d.CallHook(call)
	}
}

func (d *Driver) check() error {
	if d.quit {
		return selenium.NewError("invalid session id", "session has been quit")
	}
	return nil
}

func (d *Driver) openWindow() string {
	h := "fake-window-" + uuid.New().String()
	d.windows[h] = &window{
		history: []*Page{blank},
		size:    selenium.Size{Width: 1024, Height: 768},
		state:   "normal",
	}
	d.handles = append(d.handles, h)
	d.current = h
	return h
}

func (d *Driver) win() *window {
	return d.windows[d.current]
}

func (d *Driver) load(url string) error {
	p, ok := d.pages[url]
	if !ok {
		return selenium.NewError(selenium.ErrCodeUnknownError, "net::ERR_NAME_NOT_RESOLVED loading %s", url)
	}
	w := d.win()
	w.history = append(w.history[:w.pos+1], p)
	w.pos = len(w.history) - 1
	w.frames = nil
	d.active = nil
	return nil
}

func (d *Driver) windowCheck() error {
	if err := d.check(); err != nil {
		return err
	}
	if d.win() == nil {
		return selenium.NewError(selenium.ErrCodeNoSuchWindow, "current window has been closed")
	}
	if d.alert != nil {
		return selenium.NewError(selenium.ErrCodeUnexpectedAlertOpen, "alert text: %s", d.alert.text)
	}
	return nil
}

// Get implements selenium.WebDriver.
func (d *Driver) Get(url string) error {
	d.record("Get " + url)
	if err := d.windowCheck(); err != nil {
		return err
	}
	return d.load(url)
}

// CurrentURL implements selenium.WebDriver.
func (d *Driver) CurrentURL() (string, error) {
	d.record("CurrentURL")
	if err := d.windowCheck(); err != nil {
		return "", err
	}
	return d.win().top().URL, nil
}

// Title implements selenium.WebDriver.
func (d *Driver) Title() (string, error) {
	d.record("Title")
	if err := d.windowCheck(); err != nil {
		return "", err
	}
	return d.win().top().Title, nil
}

// PageSource implements selenium.WebDriver.
func (d *Driver) PageSource() (string, error) {
	d.record("PageSource")
	if err := d.windowCheck(); err != nil {
		return "", err
	}
	return d.win().document().source(), nil
}

// CurrentWindowHandle implements selenium.WebDriver.
func (d *Driver) CurrentWindowHandle() (string, error) {
	d.record("CurrentWindowHandle")
	if err := d.windowCheck(); err != nil {
		return "", err
	}
	return d.current, nil
}

// WindowHandles implements selenium.WebDriver.
func (d *Driver) WindowHandles() ([]string, error) {
	d.record("WindowHandles")
	if err := d.check(); err != nil {
		return nil, err
	}
	return append([]string(nil), d.handles...), nil
}

// Close implements selenium.WebDriver.
func (d *Driver) Close() error {
	d.record("Close")
	if err := d.windowCheck(); err != nil {
		return err
	}
	delete(d.windows, d.current)
	for i, h := range d.handles {
		if h == d.current {
			d.handles = append(d.handles[:i], d.handles[i+1:]...)
			break
		}
	}
	if len(d.handles) == 0 {
		d.quit = true
	}
	return nil
}

// Quit implements selenium.WebDriver.
func (d *Driver) Quit() error {
	d.record("Quit")
	if err := d.check(); err != nil {
		return err
	}
	d.quit = true
	return nil
}

// Dispose implements selenium.WebDriver. Only the first call releases the
// session.
func (d *Driver) Dispose() error {
	d.record("Dispose")
	if d.disposed > 0 {
		return nil
	}
	d.disposed++
	d.quit = true
	return nil
}

// Manage implements selenium.WebDriver.
func (d *Driver) Manage() selenium.Options {
	return options{d}
}

// Navigate implements selenium.WebDriver.
func (d *Driver) Navigate() selenium.Navigation {
	return navigation{d}
}

// SwitchTo implements selenium.WebDriver.
func (d *Driver) SwitchTo() selenium.TargetLocator {
	return targetLocator{d}
}

// FindElement implements selenium.SearchContext.
func (d *Driver) FindElement(by, value string) (selenium.WebElement, error) {
	d.record("FindElement " + by + " " + value)
	if err := d.windowCheck(); err != nil {
		return nil, err
	}
	return d.findOne(d.win().document().Body, by, value)
}

// FindElements implements selenium.SearchContext.
func (d *Driver) FindElements(by, value string) ([]selenium.WebElement, error) {
	d.record("FindElements " + by + " " + value)
	if err := d.windowCheck(); err != nil {
		return nil, err
	}
	return d.findAll(d.win().document().Body, by, value)
}

func (d *Driver) findOne(roots []*Node, by, value string) (selenium.WebElement, error) {
	nodes, err := find(roots, by, value)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, noSuchElement(by, value)
	}
	return d.element(nodes[0]), nil
}

func (d *Driver) findAll(roots []*Node, by, value string) ([]selenium.WebElement, error) {
	nodes, err := find(roots, by, value)
	if err != nil {
		return nil, err
	}
	elems := make([]selenium.WebElement, len(nodes))
	for i, n := range nodes {
		elems[i] = d.element(n)
	}
	return elems, nil
}

func (d *Driver) element(n *Node) *Element {
	return &Element{driver: d, node: n}
}

func (d *Driver) activeElement() (selenium.WebElement, error) {
	if d.active != nil {
		return d.element(d.active), nil
	}
	body := &Node{Tag: "body", Children: d.win().document().Body}
	d.active = body
	return d.element(body), nil
}

// ExecuteScript implements selenium.JavaScriptExecutor.
func (d *Driver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	d.record("ExecuteScript " + script)
	return d.run(script, args)
}

// ExecuteAsyncScript implements selenium.JavaScriptExecutor.
func (d *Driver) ExecuteAsyncScript(script string, args []interface{}) (interface{}, error) {
	d.record("ExecuteAsyncScript " + script)
	return d.run(script, args)
}

// ExecutePinnedScript implements selenium.JavaScriptExecutor.
func (d *Driver) ExecutePinnedScript(script *selenium.PinnedScript, args []interface{}) (interface{}, error) {
	d.record("ExecutePinnedScript " + script.Source)
	return d.run(script.Source, args)
}

func (d *Driver) run(script string, args []interface{}) (interface{}, error) {
	if err := d.windowCheck(); err != nil {
		return nil, err
	}
	if strings.HasPrefix(script, "throw ") {
		return nil, selenium.NewError(selenium.ErrCodeJavascriptError, "%s", strings.TrimPrefix(script, "throw "))
	}
	f, ok := d.Scripts[script]
	if !ok {
		return nil, selenium.NewError(selenium.ErrCodeJavascriptError, "script not understood by the fake browser: %q", script)
	}
	return f(d, args)
}

// Screenshot implements selenium.TakesScreenshot.
func (d *Driver) Screenshot() ([]byte, error) {
	d.record("Screenshot")
	if err := d.windowCheck(); err != nil {
		return nil, err
	}
	return screenshot(d.win().size)
}

func screenshot(s selenium.Size) ([]byte, error) {
	w, h := s.Width/16, s.Height/16
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.White)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BaseOnly hides every optional capability of wd, leaving the base
// selenium.WebDriver contract.
func BaseOnly(wd selenium.WebDriver) selenium.WebDriver {
	return baseDriver{wd}
}

type baseDriver struct {
	selenium.WebDriver
}

type navigation struct {
	d *Driver
}

func (n navigation) Back() error { return n.BackContext(context.Background()) }
func (n navigation) Forward() error { return n.ForwardContext(context.Background()) }
func (n navigation) Refresh() error { return n.RefreshContext(context.Background()) }
func (n navigation) To(url string) error { return n.ToContext(context.Background(), url) }

func (n navigation) BackContext(ctx context.Context) error {
	return n.step(ctx, "Back", -1)
}

func (n navigation) ForwardContext(ctx context.Context) error {
	return n.step(ctx, "Forward", 1)
}

func (n navigation) RefreshContext(ctx context.Context) error {
	return n.step(ctx, "Refresh", 0)
}

func (n navigation) ToContext(ctx context.Context, url string) error {
	n.d.record("To " + url)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.d.windowCheck(); err != nil {
		return err
	}
	return n.d.load(url)
}

func (n navigation) step(ctx context.Context, name string, delta int) error {
	n.d.record(name)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.d.windowCheck(); err != nil {
		return err
	}
	w := n.d.win()
	if pos := w.pos + delta; pos >= 0 && pos < len(w.history) {
		w.pos = pos
	}
	w.frames = nil
	n.d.active = nil
	return nil
}

type options struct {
	d *Driver
}

func (o options) Timeouts() selenium.Timeouts { return timeouts(o) }
func (o options) Window() selenium.Window { return windowControl(o) }
func (o options) Cookies() selenium.CookieJar { return cookieJar(o) }

type timeouts struct {
	d *Driver
}

func (t timeouts) ImplicitWaitTimeout() (time.Duration, error) { return t.d.implicit, t.d.check() }
func (t timeouts) AsyncScriptTimeout() (time.Duration, error) { return t.d.async, t.d.check() }
func (t timeouts) PageLoadTimeout() (time.Duration, error) { return t.d.pageLoad, t.d.check() }

func (t timeouts) SetImplicitWaitTimeout(timeout time.Duration) error {
	return t.set(&t.d.implicit, timeout)
}

func (t timeouts) SetAsyncScriptTimeout(timeout time.Duration) error {
	return t.set(&t.d.async, timeout)
}

func (t timeouts) SetPageLoadTimeout(timeout time.Duration) error {
	return t.set(&t.d.pageLoad, timeout)
}

func (t timeouts) set(field *time.Duration, timeout time.Duration) error {
	if err := t.d.check(); err != nil {
		return err
	}
	if timeout < 0 {
		return selenium.NewError(selenium.ErrCodeInvalidArgument, "timeout must not be negative: %v", timeout)
	}
	*field = timeout.Round(time.Millisecond)
	return nil
}

type windowControl struct {
	d *Driver
}

func (w windowControl) get() (*window, error) {
	if err := w.d.windowCheck(); err != nil {
		return nil, err
	}
	return w.d.win(), nil
}

func (w windowControl) Position() (*selenium.Point, error) {
	win, err := w.get()
	if err != nil {
		return nil, err
	}
	p := win.position
	return &p, nil
}

func (w windowControl) SetPosition(p selenium.Point) error {
	win, err := w.get()
	if err != nil {
		return err
	}
	win.position, win.state = p, "normal"
	return nil
}

func (w windowControl) Size() (*selenium.Size, error) {
	win, err := w.get()
	if err != nil {
		return nil, err
	}
	s := win.size
	return &s, nil
}

func (w windowControl) SetSize(s selenium.Size) error {
	win, err := w.get()
	if err != nil {
		return err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return selenium.NewError(selenium.ErrCodeInvalidArgument, "window size must be positive: %+v", s)
	}
	win.size, win.state = s, "normal"
	return nil
}

func (w windowControl) Maximize() error { return w.setState("maximized", selenium.Size{Width: 1920, Height: 1080}) }
func (w windowControl) FullScreen() error { return w.setState("fullscreen", selenium.Size{Width: 1920, Height: 1080}) }
func (w windowControl) Minimize() error { return w.setState("minimized", selenium.Size{}) }

func (w windowControl) setState(state string, s selenium.Size) error {
	win, err := w.get()
	if err != nil {
		return err
	}
	win.state = state
	if s.Width > 0 {
		win.position, win.size = selenium.Point{}, s
	}
	return nil
}

type cookieJar struct {
	d *Driver
}

func (c cookieJar) AllCookies() ([]selenium.Cookie, error) {
	if err := c.d.check(); err != nil {
		return nil, err
	}
	return append([]selenium.Cookie(nil), c.d.cookies...), nil
}

func (c cookieJar) GetCookie(name string) (*selenium.Cookie, error) {
	if err := c.d.check(); err != nil {
		return nil, err
	}
	for _, ck := range c.d.cookies {
		if ck.Name == name {
			ck := ck
			return &ck, nil
		}
	}
	return nil, selenium.NewError("no such cookie", "%s", name)
}

func (c cookieJar) AddCookie(cookie *selenium.Cookie) error {
	if err := c.d.check(); err != nil {
		return err
	}
	if cookie == nil || cookie.Name == "" {
		return selenium.NewError(selenium.ErrCodeUnableToSetCookie, "cookie must have a name")
	}
	c.remove(cookie.Name)
	c.d.cookies = append(c.d.cookies, *cookie)
	return nil
}

func (c cookieJar) DeleteCookie(name string) error {
	if err := c.d.check(); err != nil {
		return err
	}
	c.remove(name)
	return nil
}

func (c cookieJar) DeleteAllCookies() error {
	if err := c.d.check(); err != nil {
		return err
	}
	c.d.cookies = nil
	return nil
}

func (c cookieJar) remove(name string) {
	kept := c.d.cookies[:0]
	for _, ck := range c.d.cookies {
		if ck.Name != name {
			kept = append(kept, ck)
		}
	}
	c.d.cookies = kept
}

type targetLocator struct {
	d *Driver
}

func (t targetLocator) Frame(index int) (selenium.WebDriver, error) {
	t.d.record("SwitchTo Frame")
	if err := t.d.windowCheck(); err != nil {
		return nil, err
	}
	frames := t.frames()
	if index < 0 || index >= len(frames) {
		return nil, selenium.NewError(selenium.ErrCodeNoSuchFrame, "no frame at index %d", index)
	}
	return t.enter(frames[index])
}

func (t targetLocator) FrameByName(nameOrID string) (selenium.WebDriver, error) {
	t.d.record("SwitchTo FrameByName " + nameOrID)
	if err := t.d.windowCheck(); err != nil {
		return nil, err
	}
	for _, f := range t.frames() {
		if f.attr("name") == nameOrID || f.attr("id") == nameOrID {
			return t.enter(f)
		}
	}
	return nil, selenium.NewError(selenium.ErrCodeNoSuchFrame, "no frame named %q", nameOrID)
}

func (t targetLocator) FrameByElement(frame selenium.WebElement) (selenium.WebDriver, error) {
	t.d.record("SwitchTo FrameByElement")
	if err := t.d.windowCheck(); err != nil {
		return nil, err
	}
	e, ok := frame.(*Element)
	if !ok || e.driver != t.d {
		return nil, selenium.NewError(selenium.ErrCodeNoSuchFrame, "%T is not an element of this session", frame)
	}
	if e.node.Frame == nil {
		return nil, selenium.NewError(selenium.ErrCodeNoSuchFrame, "<%s> is not a frame", e.node.Tag)
	}
	return t.enter(e.node)
}

func (t targetLocator) frames() []*Node {
	var out []*Node
	for _, n := range descendants(t.d.win().document().Body, false) {
		if n.Frame != nil {
			out = append(out, n)
		}
	}
	return out
}

func (t targetLocator) enter(n *Node) (selenium.WebDriver, error) {
	w := t.d.win()
	w.frames = append(w.frames, n.Frame)
	t.d.active = nil
	return t.d, nil
}

func (t targetLocator) ParentFrame() (selenium.WebDriver, error) {
	t.d.record("SwitchTo ParentFrame")
	if err := t.d.windowCheck(); err != nil {
		return nil, err
	}
	w := t.d.win()
	if len(w.frames) > 0 {
		w.frames = w.frames[:len(w.frames)-1]
	}
	return t.d, nil
}

func (t targetLocator) Window(nameOrHandle string) (selenium.WebDriver, error) {
	t.d.record("SwitchTo Window " + nameOrHandle)
	if err := t.d.check(); err != nil {
		return nil, err
	}
	if _, ok := t.d.windows[nameOrHandle]; !ok {
		return nil, selenium.NewError(selenium.ErrCodeNoSuchWindow, "no window %q", nameOrHandle)
	}
	t.d.current = nameOrHandle
	return t.d, nil
}

func (t targetLocator) NewWindow(typ selenium.WindowType) (selenium.WebDriver, error) {
	t.d.record("SwitchTo NewWindow " + string(typ))
	if err := t.d.check(); err != nil {
		return nil, err
	}
	if typ != selenium.TabWindow && typ != selenium.BrowserWindow {
		return nil, selenium.NewError(selenium.ErrCodeInvalidArgument, "unknown window type %q", typ)
	}
	t.d.openWindow()
	return t.d, nil
}

func (t targetLocator) DefaultContent() (selenium.WebDriver, error) {
	t.d.record("SwitchTo DefaultContent")
	if err := t.d.windowCheck(); err != nil {
		return nil, err
	}
	t.d.win().frames = nil
	return t.d, nil
}

func (t targetLocator) ActiveElement() (selenium.WebElement, error) {
	t.d.record("SwitchTo ActiveElement")
	if err := t.d.windowCheck(); err != nil {
		return nil, err
	}
	return t.d.activeElement()
}

func (t targetLocator) Alert() (selenium.Alert, error) {
	t.d.record("SwitchTo Alert")
	if err := t.d.check(); err != nil {
		return nil, err
	}
	if t.d.alert == nil {
		return nil, selenium.NewError(selenium.ErrCodeNoSuchAlert, "no alert is open")
	}
	return t.d.alert, nil
}

type alert struct {
	d     *Driver
	text  string
	input string
}

func (a *alert) open() error {
	if a.d.alert != a {
		return selenium.NewError(selenium.ErrCodeNoSuchAlert, "alert has been closed")
	}
	return nil
}

func (a *alert) Text() (string, error) {
	if err := a.open(); err != nil {
		return "", err
	}
	return a.text, nil
}

func (a *alert) Accept() error {
	if err := a.open(); err != nil {
		return err
	}
	a.d.alert = nil
	return nil
}

func (a *alert) Dismiss() error {
	return a.Accept()
}

func (a *alert) SendKeys(keys string) error {
	if err := a.open(); err != nil {
		return err
	}
	a.input += keys
	return nil
}

