// Package seleniumtest provides an in-memory browser implementing the
// selenium interfaces, and a conformance suite any implementation of those
// interfaces can be run against.
package seleniumtest

import (
	"bytes"
	"context"
	"image/png"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/wanmail/selenium/v2"
)

// Config configures RunCommonTests.
type Config struct {
	// NewDriver returns the driver under test. It must be backed by a
	// browser serving the pages of Fixture.
	NewDriver func(t *testing.T) selenium.WebDriver
}

// NewFixtureDriver returns a fake driver serving Fixture.
func NewFixtureDriver() *Driver {
	return NewDriver(Fixture()...)
}

func runTest(f func(*testing.T, Config), c Config) func(*testing.T) {
	return func(t *testing.T) {
		f(t, c)
	}
}

// RunCommonTests checks the driver returned by c against the behavior
// every selenium.WebDriver is expected to have.
func RunCommonTests(t *testing.T, c Config) {
	t.Run("Get", runTest(testGet, c))
	t.Run("GetUnknownURL", runTest(testGetUnknownURL, c))
	t.Run("Navigation", runTest(testNavigation, c))
	t.Run("NavigationContext", runTest(testNavigationContext, c))
	t.Run("PageSource", runTest(testPageSource, c))
	t.Run("FindElement", runTest(testFindElement, c))
	t.Run("FindElements", runTest(testFindElements, c))
	t.Run("FindElementFromElement", runTest(testFindElementFromElement, c))
	t.Run("NoSuchElement", runTest(testNoSuchElement, c))
	t.Run("SendKeys", runTest(testSendKeys, c))
	t.Run("Clear", runTest(testClear, c))
	t.Run("Click", runTest(testClick, c))
	t.Run("Submit", runTest(testSubmit, c))
	t.Run("IsSelected", runTest(testIsSelected, c))
	t.Run("IsDisplayed", runTest(testIsDisplayed, c))
	t.Run("Attributes", runTest(testAttributes, c))
	t.Run("Geometry", runTest(testGeometry, c))
	t.Run("Equality", runTest(testEquality, c))
	t.Run("ShadowRoot", runTest(testShadowRoot, c))
	t.Run("SwitchFrame", runTest(testSwitchFrame, c))
	t.Run("Windows", runTest(testWindows, c))
	t.Run("AcceptAlert", runTest(testAcceptAlert, c))
	t.Run("ActiveElement", runTest(testActiveElement, c))
	t.Run("ExecuteScript", runTest(testExecuteScript, c))
	t.Run("ExecuteScriptOnElement", runTest(testExecuteScriptOnElement, c))
	t.Run("Screenshot", runTest(testScreenshot, c))
	t.Run("Timeouts", runTest(testTimeouts, c))
	t.Run("Cookies", runTest(testCookies, c))
	t.Run("Window", runTest(testWindow, c))
	t.Run("Select", runTest(testSelect, c))
	t.Run("Quit", runTest(testQuit, c))
}

func newHome(t *testing.T, c Config) selenium.WebDriver {
	t.Helper()
	wd := c.NewDriver(t)
	if err := wd.Get(HomeURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", HomeURL, err)
	}
	return wd
}

func mustFind(t *testing.T, sc selenium.SearchContext, by, value string) selenium.WebElement {
	t.Helper()
	elem, err := sc.FindElement(by, value)
	if err != nil {
		t.Fatalf("FindElement(%q, %q) returned error: %v", by, value, err)
	}
	return elem
}

func wantURL(t *testing.T, wd selenium.WebDriver, want string) {
	t.Helper()
	got, err := wd.CurrentURL()
	if err != nil {
		t.Fatalf("wd.CurrentURL() returned error: %v", err)
	}
	if got != want {
		t.Fatalf("wd.CurrentURL() = %q, want %q", got, want)
	}
}

func testGet(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	wantURL(t, wd, HomeURL)
	title, err := wd.Title()
	if err != nil {
		t.Fatalf("wd.Title() returned error: %v", err)
	}
	if title != "Home" {
		t.Fatalf("wd.Title() = %q, want %q", title, "Home")
	}
}

func testGetUnknownURL(t *testing.T, c Config) {
	wd := c.NewDriver(t)
	defer wd.Quit()

	const url = "http://nowhere.test/"
	err := wd.Get(url)
	if err == nil {
		t.Fatalf("wd.Get(%q) returned nil, want an error", url)
	}
	if got := selenium.ErrorCode(err); got != selenium.ErrCodeUnknownError {
		t.Fatalf("wd.Get(%q) error code = %q, want %q", url, got, selenium.ErrCodeUnknownError)
	}
}

func testNavigation(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	nav := wd.Navigate()
	if err := nav.To(NextURL); err != nil {
		t.Fatalf("nav.To(%q) returned error: %v", NextURL, err)
	}
	wantURL(t, wd, NextURL)

	if err := nav.Back(); err != nil {
		t.Fatalf("nav.Back() returned error: %v", err)
	}
	wantURL(t, wd, HomeURL)

	if err := nav.Forward(); err != nil {
		t.Fatalf("nav.Forward() returned error: %v", err)
	}
	wantURL(t, wd, NextURL)

	if err := nav.Refresh(); err != nil {
		t.Fatalf("nav.Refresh() returned error: %v", err)
	}
	wantURL(t, wd, NextURL)
}

func testNavigationContext(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	nav := wd.Navigate()
	if err := nav.ToContext(ctx, NextURL); err != nil {
		t.Fatalf("nav.ToContext(ctx, %q) returned error: %v", NextURL, err)
	}
	if err := nav.BackContext(ctx); err != nil {
		t.Fatalf("nav.BackContext(ctx) returned error: %v", err)
	}
	wantURL(t, wd, HomeURL)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if err := nav.ForwardContext(canceled); err != context.Canceled {
		t.Fatalf("nav.ForwardContext(canceled) = %v, want %v", err, context.Canceled)
	}
	wantURL(t, wd, HomeURL)
}

func testPageSource(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	src, err := wd.PageSource()
	if err != nil {
		t.Fatalf("wd.PageSource() returned error: %v", err)
	}
	for _, want := range []string{"<title>Home</title>", `<h1 id="title">Welcome</h1>`} {
		if !strings.Contains(src, want) {
			t.Errorf("wd.PageSource() does not contain %q", want)
		}
	}
}

func testFindElement(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	for _, tc := range []struct {
		by, value, text string
	}{
		{selenium.ByID, "title", "Welcome"},
		{selenium.ByName, "colors", "Red Green Light  Blue"},
		{selenium.ByCSSSelector, "div.item.last", "three"},
		{selenium.ByCSSSelector, `a[id="next"]`, "Next page"},
		{selenium.ByLinkText, "Next page", "Next page"},
		{selenium.ByPartialLinkText, "Next", "Next page"},
		{selenium.ByClassName, "first", "one"},
		{selenium.ByTagName, "h1", "Welcome"},
	} {
		elem, err := wd.FindElement(tc.by, tc.value)
		if err != nil {
			t.Errorf("wd.FindElement(%q, %q) returned error: %v", tc.by, tc.value, err)
			continue
		}
		text, err := elem.Text()
		if err != nil {
			t.Errorf("elem.Text() returned error: %v", err)
			continue
		}
		if text != tc.text {
			t.Errorf("wd.FindElement(%q, %q).Text() = %q, want %q", tc.by, tc.value, text, tc.text)
		}
	}
}

func testFindElements(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	elems, err := wd.FindElements(selenium.ByClassName, "item")
	if err != nil {
		t.Fatalf("wd.FindElements() returned error: %v", err)
	}
	var got []string
	for _, e := range elems {
		text, err := e.Text()
		if err != nil {
			t.Fatalf("e.Text() returned error: %v", err)
		}
		got = append(got, text)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, got); diff != "" {
		t.Fatalf("texts of wd.FindElements() returned diff (-want/+got):\n%s", diff)
	}

	none, err := wd.FindElements(selenium.ByClassName, "missing")
	if err != nil {
		t.Fatalf("wd.FindElements() with no match returned error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("wd.FindElements() with no match returned %d elements", len(none))
	}
}

func testFindElementFromElement(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	form := mustFind(t, wd, selenium.ByID, "login")
	button := mustFind(t, form, selenium.ByTagName, "button")
	text, err := button.Text()
	if err != nil {
		t.Fatalf("button.Text() returned error: %v", err)
	}
	if text != "Log in" {
		t.Fatalf("button.Text() = %q, want %q", text, "Log in")
	}
	if _, err := form.FindElement(selenium.ByID, "title"); !selenium.IsNoSuchElement(err) {
		t.Fatalf("form.FindElement() outside the form returned %v, want a no such element error", err)
	}
}

func testNoSuchElement(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	_, err := wd.FindElement(selenium.ByID, "missing")
	if !selenium.IsNoSuchElement(err) {
		t.Fatalf("wd.FindElement() returned %v, want a no such element error", err)
	}
	if _, err := wd.FindElement(selenium.ByXPATH, "//p"); selenium.ErrorCode(err) != selenium.ErrCodeInvalidSelector {
		t.Fatalf("wd.FindElement(ByXPATH) returned %v, want an invalid selector error", err)
	}
}

func testSendKeys(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	input := mustFind(t, wd, selenium.ByID, "name")
	for _, keys := range []string{"go", "pher", ""} {
		if err := input.SendKeys(keys); err != nil {
			t.Fatalf("input.SendKeys(%q) returned error: %v", keys, err)
		}
	}
	value, err := input.GetAttribute("value")
	if err != nil {
		t.Fatalf("input.GetAttribute(value) returned error: %v", err)
	}
	if value != "gopher" {
		t.Fatalf("input value = %q, want %q", value, "gopher")
	}

	hidden := mustFind(t, wd, selenium.ByID, "invisible")
	if err := hidden.SendKeys("x"); selenium.ErrorCode(err) != selenium.ErrCodeElementNotInteractable {
		t.Fatalf("hidden.SendKeys() returned %v, want an element not interactable error", err)
	}
}

func testClear(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	input := mustFind(t, wd, selenium.ByID, "name")
	if err := input.SendKeys("text"); err != nil {
		t.Fatalf("input.SendKeys() returned error: %v", err)
	}
	if err := input.Clear(); err != nil {
		t.Fatalf("input.Clear() returned error: %v", err)
	}
	value, err := input.GetDOMProperty("value")
	if err != nil {
		t.Fatalf("input.GetDOMProperty(value) returned error: %v", err)
	}
	if value != "" {
		t.Fatalf("input value after Clear() = %q, want empty", value)
	}

	disabled := mustFind(t, wd, selenium.ByID, "disabled")
	if err := disabled.Clear(); selenium.ErrorCode(err) != selenium.ErrCodeInvalidElementState {
		t.Fatalf("disabled.Clear() returned %v, want an invalid element state error", err)
	}
}

func testClick(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	if err := mustFind(t, wd, selenium.ByID, "next").Click(); err != nil {
		t.Fatalf("link.Click() returned error: %v", err)
	}
	wantURL(t, wd, NextURL)
	text, err := mustFind(t, wd, selenium.ByID, "message").Text()
	if err != nil {
		t.Fatalf("message.Text() returned error: %v", err)
	}
	if text != "You made it" {
		t.Fatalf("message.Text() = %q, want %q", text, "You made it")
	}
}

func testSubmit(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	if err := mustFind(t, wd, selenium.ByID, "name").Submit(); err != nil {
		t.Fatalf("input.Submit() returned error: %v", err)
	}
	wantURL(t, wd, DoneURL)

	if err := mustFind(t, wd, selenium.ByID, "message").Submit(); err == nil {
		t.Fatalf("Submit() outside a form returned nil, want an error")
	}
}

func testIsSelected(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	box := mustFind(t, wd, selenium.ByID, "remember")
	for _, want := range []bool{false, true, false} {
		got, err := box.IsSelected()
		if err != nil {
			t.Fatalf("box.IsSelected() returned error: %v", err)
		}
		if got != want {
			t.Fatalf("box.IsSelected() = %t, want %t", got, want)
		}
		if err := box.Click(); err != nil {
			t.Fatalf("box.Click() returned error: %v", err)
		}
	}
}

func testIsDisplayed(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	for _, tc := range []struct {
		id   string
		want bool
	}{
		{"title", true},
		{"invisible", false},
	} {
		got, err := mustFind(t, wd, selenium.ByID, tc.id).IsDisplayed()
		if err != nil {
			t.Fatalf("IsDisplayed() of #%s returned error: %v", tc.id, err)
		}
		if got != tc.want {
			t.Errorf("IsDisplayed() of #%s = %t, want %t", tc.id, got, tc.want)
		}
	}
}

func testAttributes(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	p := mustFind(t, wd, selenium.ByID, "styled")
	for _, tc := range []struct {
		desc string
		get  func() (string, error)
		want string
	}{
		{"TagName", p.TagName, "p"},
		{"GetAttribute(title)", func() (string, error) { return p.GetAttribute("title") }, "tip"},
		{"GetAttribute(missing)", func() (string, error) { return p.GetAttribute("missing") }, ""},
		{"GetDOMAttribute(id)", func() (string, error) { return p.GetDOMAttribute("id") }, "styled"},
		{"GetDOMProperty(lang)", func() (string, error) { return p.GetDOMProperty("lang") }, "en"},
		{"CSSProperty(color)", func() (string, error) { return p.CSSProperty("color") }, "rgba(255, 0, 0, 1)"},
	} {
		got, err := tc.get()
		if err != nil {
			t.Errorf("%s returned error: %v", tc.desc, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s = %q, want %q", tc.desc, got, tc.want)
		}
	}

	enabled, err := mustFind(t, wd, selenium.ByID, "disabled").IsEnabled()
	if err != nil {
		t.Fatalf("IsEnabled() returned error: %v", err)
	}
	if enabled {
		t.Fatalf("IsEnabled() of a disabled input = true")
	}
}

func testGeometry(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	p := mustFind(t, wd, selenium.ByID, "styled")
	loc, err := p.Location()
	if err != nil {
		t.Fatalf("p.Location() returned error: %v", err)
	}
	if diff := cmp.Diff(&selenium.Point{X: 10, Y: 20}, loc); diff != "" {
		t.Errorf("p.Location() returned diff (-want/+got):\n%s", diff)
	}
	size, err := p.Size()
	if err != nil {
		t.Fatalf("p.Size() returned error: %v", err)
	}
	if diff := cmp.Diff(&selenium.Size{Width: 100, Height: 30}, size); diff != "" {
		t.Errorf("p.Size() returned diff (-want/+got):\n%s", diff)
	}
}

func testEquality(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	a := mustFind(t, wd, selenium.ByID, "title")
	b := mustFind(t, wd, selenium.ByTagName, "h1")
	other := mustFind(t, wd, selenium.ByID, "next")
	if !selenium.ElementsEqual(a, b) {
		t.Errorf("ElementsEqual() of two lookups of the same node = false")
	}
	if selenium.ElementsEqual(a, other) {
		t.Errorf("ElementsEqual() of different nodes = true")
	}
}

func testShadowRoot(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	if _, err := wd.FindElement(selenium.ByID, "inner"); !selenium.IsNoSuchElement(err) {
		t.Fatalf("FindElement() reached into a shadow tree: %v", err)
	}
	host := mustFind(t, wd, selenium.ByID, "host")
	root, err := host.ShadowRoot()
	if err != nil {
		t.Fatalf("host.ShadowRoot() returned error: %v", err)
	}
	inner := mustFind(t, root, selenium.ByCSSSelector, ".shadowed")
	text, err := inner.Text()
	if err != nil {
		t.Fatalf("inner.Text() returned error: %v", err)
	}
	if text != "in shadow" {
		t.Fatalf("inner.Text() = %q, want %q", text, "in shadow")
	}
	again, err := host.ShadowRoot()
	if err != nil {
		t.Fatalf("host.ShadowRoot() returned error: %v", err)
	}
	if !selenium.SearchContextsEqual(root, again) {
		t.Errorf("SearchContextsEqual() of the same shadow root = false")
	}

	_, err = mustFind(t, wd, selenium.ByID, "title").ShadowRoot()
	if selenium.ErrorCode(err) != selenium.ErrCodeNoSuchShadowRoot {
		t.Fatalf("ShadowRoot() of a plain element returned %v, want a no such shadow root error", err)
	}
}

func testSwitchFrame(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	const (
		insideID  = "framed"
		outsideID = "title"
	)
	inFrame := func(desc string, wd selenium.WebDriver) {
		t.Helper()
		if _, err := wd.FindElement(selenium.ByID, insideID); err != nil {
			t.Fatalf("after %s, FindElement(ByID, %q) returned error: %v", desc, insideID, err)
		}
		if _, err := wd.FindElement(selenium.ByID, outsideID); err == nil {
			t.Fatalf("after %s, FindElement(ByID, %q) returned nil, expected an error", desc, outsideID)
		}
	}
	atTop := func(desc string, wd selenium.WebDriver) {
		t.Helper()
		if _, err := wd.FindElement(selenium.ByID, outsideID); err != nil {
			t.Fatalf("after %s, FindElement(ByID, %q) returned error: %v", desc, outsideID, err)
		}
	}

	fd, err := wd.SwitchTo().FrameByName("frame1")
	if err != nil {
		t.Fatalf("FrameByName() returned error: %v", err)
	}
	inFrame("FrameByName", fd)
	if fd, err = wd.SwitchTo().DefaultContent(); err != nil {
		t.Fatalf("DefaultContent() returned error: %v", err)
	}
	atTop("DefaultContent", fd)

	if fd, err = wd.SwitchTo().Frame(0); err != nil {
		t.Fatalf("Frame(0) returned error: %v", err)
	}
	inFrame("Frame(0)", fd)
	if fd, err = wd.SwitchTo().ParentFrame(); err != nil {
		t.Fatalf("ParentFrame() returned error: %v", err)
	}
	atTop("ParentFrame", fd)

	frame := mustFind(t, wd, selenium.ByID, "frame")
	if fd, err = wd.SwitchTo().FrameByElement(frame); err != nil {
		t.Fatalf("FrameByElement() returned error: %v", err)
	}
	inFrame("FrameByElement", fd)

	if _, err := wd.SwitchTo().Frame(5); selenium.ErrorCode(err) != selenium.ErrCodeNoSuchFrame {
		t.Fatalf("Frame(5) returned %v, want a no such frame error", err)
	}
}

func testWindows(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	first, err := wd.CurrentWindowHandle()
	if err != nil {
		t.Fatalf("wd.CurrentWindowHandle() returned error: %v", err)
	}
	nd, err := wd.SwitchTo().NewWindow(selenium.TabWindow)
	if err != nil {
		t.Fatalf("NewWindow(TabWindow) returned error: %v", err)
	}
	second, err := nd.CurrentWindowHandle()
	if err != nil {
		t.Fatalf("nd.CurrentWindowHandle() returned error: %v", err)
	}
	if second == first {
		t.Fatalf("NewWindow() did not switch to a new window")
	}
	handles, err := wd.WindowHandles()
	if err != nil {
		t.Fatalf("wd.WindowHandles() returned error: %v", err)
	}
	want := []string{first, second}
	sort.Strings(want)
	sort.Strings(handles)
	if diff := cmp.Diff(want, handles); diff != "" {
		t.Fatalf("wd.WindowHandles() returned diff (-want/+got):\n%s", diff)
	}

	if err := wd.Close(); err != nil {
		t.Fatalf("wd.Close() returned error: %v", err)
	}
	if _, err := wd.SwitchTo().Window(first); err != nil {
		t.Fatalf("Window(%q) returned error: %v", first, err)
	}
	wantURL(t, wd, HomeURL)
	if _, err := wd.SwitchTo().Window(second); selenium.ErrorCode(err) != selenium.ErrCodeNoSuchWindow {
		t.Fatalf("Window() of a closed window returned %v, want a no such window error", err)
	}
}

func testAcceptAlert(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	if _, err := wd.SwitchTo().Alert(); selenium.ErrorCode(err) != selenium.ErrCodeNoSuchAlert {
		t.Fatalf("Alert() with no alert open returned %v, want a no such alert error", err)
	}
	if err := mustFind(t, wd, selenium.ByID, "alert").Click(); err != nil {
		t.Fatalf("button.Click() returned error: %v", err)
	}
	if _, err := wd.Title(); selenium.ErrorCode(err) != selenium.ErrCodeUnexpectedAlertOpen {
		t.Fatalf("wd.Title() with an alert open returned %v, want an unexpected alert open error", err)
	}
	a, err := wd.SwitchTo().Alert()
	if err != nil {
		t.Fatalf("Alert() returned error: %v", err)
	}
	text, err := a.Text()
	if err != nil {
		t.Fatalf("a.Text() returned error: %v", err)
	}
	if text != "Hello" {
		t.Fatalf("a.Text() = %q, want %q", text, "Hello")
	}
	if err := a.Accept(); err != nil {
		t.Fatalf("a.Accept() returned error: %v", err)
	}
	if err := a.Dismiss(); selenium.ErrorCode(err) != selenium.ErrCodeNoSuchAlert {
		t.Fatalf("a.Dismiss() of a closed alert returned %v, want a no such alert error", err)
	}
	if _, err := wd.Title(); err != nil {
		t.Fatalf("wd.Title() after Accept() returned error: %v", err)
	}
}

func testActiveElement(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	input := mustFind(t, wd, selenium.ByID, "name")
	if err := input.SendKeys("x"); err != nil {
		t.Fatalf("input.SendKeys() returned error: %v", err)
	}
	active, err := wd.SwitchTo().ActiveElement()
	if err != nil {
		t.Fatalf("ActiveElement() returned error: %v", err)
	}
	if !selenium.ElementsEqual(active, input) {
		t.Fatalf("ActiveElement() is not the element that received keys")
	}
}

func testExecuteScript(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	js := selenium.DriverCapabilitiesOf(wd).Script
	if js == nil {
		t.Skip("driver does not execute scripts")
	}
	got, err := js.ExecuteScript("return document.title", nil)
	if err != nil {
		t.Fatalf("ExecuteScript() returned error: %v", err)
	}
	if got != "Home" {
		t.Fatalf("ExecuteScript() = %v, want %q", got, "Home")
	}
	got, err = js.ExecuteAsyncScript("return arguments[0]", []interface{}{float64(3)})
	if err != nil {
		t.Fatalf("ExecuteAsyncScript() returned error: %v", err)
	}
	if got != float64(3) {
		t.Fatalf("ExecuteAsyncScript() = %v, want 3", got)
	}
	pinned := selenium.NewPinnedScript("return document.title")
	if got, err = js.ExecutePinnedScript(pinned, nil); err != nil || got != "Home" {
		t.Fatalf("ExecutePinnedScript() = %v, %v, want %q, nil", got, err, "Home")
	}
	if _, err := js.ExecuteScript("throw boom", nil); selenium.ErrorCode(err) != selenium.ErrCodeJavascriptError {
		t.Fatalf("ExecuteScript(throw) returned %v, want a javascript error", err)
	}
}

func testExecuteScriptOnElement(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	js := selenium.DriverCapabilitiesOf(wd).Script
	if js == nil {
		t.Skip("driver does not execute scripts")
	}
	box := mustFind(t, wd, selenium.ByID, "remember")
	if _, err := js.ExecuteScript("arguments[0].click()", []interface{}{box}); err != nil {
		t.Fatalf("ExecuteScript(click) returned error: %v", err)
	}
	selected, err := box.IsSelected()
	if err != nil {
		t.Fatalf("box.IsSelected() returned error: %v", err)
	}
	if !selected {
		t.Fatalf("box was not clicked by the script")
	}

	got, err := js.ExecuteScript("return arguments[0]", []interface{}{box})
	if err != nil {
		t.Fatalf("ExecuteScript() returned error: %v", err)
	}
	elem, ok := got.(selenium.WebElement)
	if !ok {
		t.Fatalf("ExecuteScript() returned %T, want a selenium.WebElement", got)
	}
	if !selenium.ElementsEqual(elem, box) {
		t.Fatalf("ExecuteScript() returned a different element")
	}
}

func testScreenshot(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	shooter := selenium.DriverCapabilitiesOf(wd).Screenshot
	if shooter == nil {
		t.Skip("driver does not take screenshots")
	}
	pngBytes, err := shooter.Screenshot()
	if err != nil {
		t.Fatalf("Screenshot() returned error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(pngBytes)); err != nil {
		t.Fatalf("Screenshot() did not return a PNG: %v", err)
	}

	elemShooter := selenium.ElementCapabilitiesOf(mustFind(t, wd, selenium.ByID, "styled")).Screenshot
	if elemShooter == nil {
		t.Skip("elements do not take screenshots")
	}
	if _, err := elemShooter.Screenshot(); err != nil {
		t.Fatalf("element Screenshot() returned error: %v", err)
	}
}

func testTimeouts(t *testing.T, c Config) {
	wd := c.NewDriver(t)
	defer wd.Quit()

	timeouts := wd.Manage().Timeouts()
	for _, tc := range []struct {
		desc string
		set  func(time.Duration) error
		get  func() (time.Duration, error)
	}{
		{"ImplicitWait", timeouts.SetImplicitWaitTimeout, timeouts.ImplicitWaitTimeout},
		{"AsyncScript", timeouts.SetAsyncScriptTimeout, timeouts.AsyncScriptTimeout},
		{"PageLoad", timeouts.SetPageLoadTimeout, timeouts.PageLoadTimeout},
	} {
		const want = 1500 * time.Millisecond
		if err := tc.set(want); err != nil {
			t.Errorf("Set%sTimeout(%v) returned error: %v", tc.desc, want, err)
			continue
		}
		got, err := tc.get()
		if err != nil {
			t.Errorf("%sTimeout() returned error: %v", tc.desc, err)
			continue
		}
		if got != want {
			t.Errorf("%sTimeout() = %v, want %v", tc.desc, got, want)
		}
	}
	if err := timeouts.SetImplicitWaitTimeout(-time.Second); selenium.ErrorCode(err) != selenium.ErrCodeInvalidArgument {
		t.Errorf("SetImplicitWaitTimeout(-1s) returned %v, want an invalid argument error", err)
	}
}

func testCookies(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	jar := wd.Manage().Cookies()
	want := []selenium.Cookie{
		{Name: "a", Value: "1", Path: "/"},
		{Name: "b", Value: "2", Path: "/"},
	}
	for i := range want {
		if err := jar.AddCookie(&want[i]); err != nil {
			t.Fatalf("AddCookie(%+v) returned error: %v", want[i], err)
		}
	}
	all, err := jar.AllCookies()
	if err != nil {
		t.Fatalf("AllCookies() returned error: %v", err)
	}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Fatalf("AllCookies() returned diff (-want/+got):\n%s", diff)
	}
	got, err := jar.GetCookie("b")
	if err != nil {
		t.Fatalf("GetCookie(b) returned error: %v", err)
	}
	if diff := cmp.Diff(&want[1], got); diff != "" {
		t.Fatalf("GetCookie(b) returned diff (-want/+got):\n%s", diff)
	}
	if err := jar.DeleteCookie("a"); err != nil {
		t.Fatalf("DeleteCookie(a) returned error: %v", err)
	}
	if _, err := jar.GetCookie("a"); err == nil {
		t.Fatalf("GetCookie(a) after DeleteCookie(a) returned nil error")
	}
	if err := jar.DeleteAllCookies(); err != nil {
		t.Fatalf("DeleteAllCookies() returned error: %v", err)
	}
	if all, err = jar.AllCookies(); err != nil || len(all) != 0 {
		t.Fatalf("AllCookies() after DeleteAllCookies() = %v, %v, want empty", all, err)
	}
}

func testWindow(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	win := wd.Manage().Window()
	wantSize := selenium.Size{Width: 800, Height: 600}
	if err := win.SetSize(wantSize); err != nil {
		t.Fatalf("SetSize() returned error: %v", err)
	}
	size, err := win.Size()
	if err != nil {
		t.Fatalf("Size() returned error: %v", err)
	}
	if diff := cmp.Diff(&wantSize, size); diff != "" {
		t.Fatalf("Size() returned diff (-want/+got):\n%s", diff)
	}
	wantPos := selenium.Point{X: 5, Y: 7}
	if err := win.SetPosition(wantPos); err != nil {
		t.Fatalf("SetPosition() returned error: %v", err)
	}
	pos, err := win.Position()
	if err != nil {
		t.Fatalf("Position() returned error: %v", err)
	}
	if diff := cmp.Diff(&wantPos, pos); diff != "" {
		t.Fatalf("Position() returned diff (-want/+got):\n%s", diff)
	}
	for desc, f := range map[string]func() error{
		"Maximize":   win.Maximize,
		"Minimize":   win.Minimize,
		"FullScreen": win.FullScreen,
	} {
		if err := f(); err != nil {
			t.Errorf("%s() returned error: %v", desc, err)
		}
	}
}

func testSelect(t *testing.T, c Config) {
	wd := newHome(t, c)
	defer wd.Quit()

	colors, err := selenium.Select(mustFind(t, wd, selenium.ByID, "colors"))
	if err != nil {
		t.Fatalf("Select(#colors) returned error: %v", err)
	}
	if colors.IsMultiple() {
		t.Fatalf("#colors.IsMultiple() = true")
	}
	wantSelected := func(s selenium.SelectElement, want ...string) {
		t.Helper()
		opts, err := s.GetAllSelectedOptions()
		if err != nil {
			t.Fatalf("GetAllSelectedOptions() returned error: %v", err)
		}
		var got []string
		for _, o := range opts {
			v, err := o.GetAttribute("value")
			if err != nil {
				t.Fatalf("GetAttribute(value) returned error: %v", err)
			}
			got = append(got, v)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("selected options returned diff (-want/+got):\n%s", diff)
		}
	}
	wantSelected(colors, "green")
	if err := colors.SelectByVisibleText("Light Blue"); err != nil {
		t.Fatalf("SelectByVisibleText() returned error: %v", err)
	}
	wantSelected(colors, "blue")
	if err := colors.SelectByIndex(0); err != nil {
		t.Fatalf("SelectByIndex(0) returned error: %v", err)
	}
	wantSelected(colors, "red")
	if err := colors.DeselectAll(); err == nil {
		t.Fatalf("DeselectAll() of a single-select returned nil error")
	}

	letters, err := selenium.Select(mustFind(t, wd, selenium.ByID, "letters"))
	if err != nil {
		t.Fatalf("Select(#letters) returned error: %v", err)
	}
	if !letters.IsMultiple() {
		t.Fatalf("#letters.IsMultiple() = false")
	}
	for _, v := range []string{"a", "c"} {
		if err := letters.SelectByValue(v); err != nil {
			t.Fatalf("SelectByValue(%q) returned error: %v", v, err)
		}
	}
	wantSelected(letters, "a", "c")
	if err := letters.DeselectByValue("a"); err != nil {
		t.Fatalf("DeselectByValue(a) returned error: %v", err)
	}
	wantSelected(letters, "c")
	if err := letters.SelectByValue("z"); !selenium.IsNoSuchElement(err) {
		t.Fatalf("SelectByValue(z) returned %v, want a no such element error", err)
	}
}

func testQuit(t *testing.T, c Config) {
	wd := newHome(t, c)
	if err := wd.Quit(); err != nil {
		t.Fatalf("wd.Quit() returned error: %v", err)
	}
	if _, err := wd.Title(); err == nil {
		t.Fatalf("wd.Title() after Quit() returned nil error")
	}
	if err := wd.Dispose(); err != nil {
		t.Fatalf("wd.Dispose() returned error: %v", err)
	}
	if err := wd.Dispose(); err != nil {
		t.Fatalf("second wd.Dispose() returned error: %v", err)
	}
}
