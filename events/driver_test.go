package events_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/wanmail/selenium/v2"
	"github.com/wanmail/selenium/v2/events"
	"github.com/wanmail/selenium/v2/internal/seleniumtest"
)

func TestConformance(t *testing.T) {
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	t.Run("Decorated", func(t *testing.T) {
		seleniumtest.RunCommonTests(t, seleniumtest.Config{
			NewDriver: func(t *testing.T) selenium.WebDriver {
				return newDecorated(t, seleniumtest.NewFixtureDriver(),
					events.WithListener(events.NewLogListener(logger)))
			},
		})
	})
	t.Run("Nested", func(t *testing.T) {
		seleniumtest.RunCommonTests(t, seleniumtest.Config{
			NewDriver: func(t *testing.T) selenium.WebDriver {
				inner := newDecorated(t, seleniumtest.NewFixtureDriver(), events.WithListener(newRecorder()))
				return newDecorated(t, inner, events.WithListener(newRecorder()))
			},
		})
	})
}

func TestNavigationScenario(t *testing.T) {
	const url = "http://x.test"
	rec := newRecorder()
	d := newDecorated(t, seleniumtest.NewDriver(&seleniumtest.Page{URL: url}), events.WithListener(rec))

	if err := d.Get(url); err != nil {
		t.Fatalf("d.Get(%q) returned error: %v", url, err)
	}
	want := []string{"Navigating http://x.test", "Navigated http://x.test"}
	if diff := cmp.Diff(want, rec.entries()); diff != "" {
		t.Fatalf("notifications returned diff (-want/+got):\n%s", diff)
	}
}

func TestClickScenario(t *testing.T) {
	rec := newRecorder()
	d, _ := newHome(t, events.WithListener(rec, events.ElementClicking, events.ElementClicked))

	if err := mustFind(t, d, selenium.ByID, "remember").Click(); err != nil {
		t.Fatalf("Click() returned error: %v", err)
	}
	want := []string{"ElementClicking", "ElementClicked"}
	if diff := cmp.Diff(want, rec.entries()); diff != "" {
		t.Fatalf("notifications returned diff (-want/+got):\n%s", diff)
	}
}

func TestFailingFindScenario(t *testing.T) {
	var seen []error
	d, _ := newHome(t)
	d.OnExceptionThrown(func(a *events.ExceptionArgs) error {
		seen = append(seen, a.Err())
		return nil
	})

	_, err := d.FindElement(selenium.ByID, "x")
	if !selenium.IsNoSuchElement(err) {
		t.Fatalf("d.FindElement() returned %v, want a no such element error", err)
	}
	if len(seen) != 1 {
		t.Fatalf("ExceptionThrown fired %d times, want 1", len(seen))
	}
	if seen[0] != err {
		t.Fatalf("ExceptionThrown carried %v, want the very error returned (%v)", seen[0], err)
	}
	if !strings.Contains(seen[0].Error(), `"x"`) {
		t.Fatalf("ExceptionThrown error %q does not name the selector", seen[0])
	}
}

func TestValueScenario(t *testing.T) {
	rec := newRecorder()
	d, _ := newHome(t, events.WithListener(rec, events.ElementValueChanging, events.ElementValueChanged))

	input := mustFind(t, d, selenium.ByID, "name")
	if err := input.Clear(); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if err := input.SendKeys("abc"); err != nil {
		t.Fatalf("SendKeys() returned error: %v", err)
	}
	want := []string{
		"ElementValueChanging ''",
		"ElementValueChanged ''",
		"ElementValueChanging 'abc'",
		"ElementValueChanged 'abc'",
	}
	if diff := cmp.Diff(want, rec.entries()); diff != "" {
		t.Fatalf("notifications returned diff (-want/+got):\n%s", diff)
	}
	if v := rec.args[0].(*events.ElementValueArgs).Value(); v != nil {
		t.Fatalf("Clear() payload value = %q, want nil", *v)
	}
}

func TestOrdering(t *testing.T) {
	var log []string
	d, fake := newHome(t, events.WithHandler(func(k events.Kind, _ events.Args) error {
		log = append(log, k.String())
		return nil
	}))
	fake.CallHook = func(call string) { log = append(log, "call "+call) }

	for _, tc := range []struct {
		desc string
		run  func() error
		want []string
	}{
		{
			desc: "Get",
			run:  func() error { return d.Get(seleniumtest.HomeURL) },
			want: []string{"Navigating", "call Get " + seleniumtest.HomeURL, "Navigated"},
		},
		{
			desc: "failed find",
			run: func() error {
				_, err := d.FindElement(selenium.ByID, "missing")
				if err == nil {
					return errors.New("expected an error")
				}
				return nil
			},
			want: []string{"FindingElement", "call FindElement id missing", "ExceptionThrown"},
		},
		{
			desc: "unmonitored read",
			run: func() error {
				_, err := d.Title()
				return err
			},
			want: []string{"call Title"},
		},
		{
			desc: "script",
			run: func() error {
				_, err := d.ExecuteScript("return document.title", nil)
				return err
			},
			want: []string{"ScriptExecuting", "call ExecuteScript return document.title", "ScriptExecuted"},
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			log = nil
			if err := tc.run(); err != nil {
				t.Fatalf("run returned error: %v", err)
			}
			if diff := cmp.Diff(tc.want, log); diff != "" {
				t.Fatalf("calls and notifications returned diff (-want/+got):\n%s", diff)
			}
		})
	}
}

func TestSharedPayload(t *testing.T) {
	rec := newRecorder()
	d, _ := newHome(t, events.WithListener(rec))

	link := mustFind(t, d, selenium.ByID, "next")
	if err := link.Click(); err != nil {
		t.Fatalf("Click() returned error: %v", err)
	}
	if err := d.Navigate().Back(); err != nil {
		t.Fatalf("Back() returned error: %v", err)
	}
	if _, err := d.ExecuteScript("return document.title", nil); err != nil {
		t.Fatalf("ExecuteScript() returned error: %v", err)
	}
	if len(rec.args)%2 != 0 {
		t.Fatalf("got %d notifications, want before/after pairs: %v", len(rec.args), rec.entries())
	}
	for i := 0; i < len(rec.args); i += 2 {
		if rec.args[i] != rec.args[i+1] {
			t.Errorf("%s and %s carry different payloads", rec.entries()[i], rec.entries()[i+1])
		}
		if events.Origin(rec.args[i+1]) != rec.args[i] {
			t.Errorf("Origin() of the %s payload is not the %s payload", rec.entries()[i+1], rec.entries()[i])
		}
	}
}

func TestPayloadsCarryWrappedObjects(t *testing.T) {
	var finds []*events.FindElementArgs
	d, fake := newHome(t)
	d.OnFindingElement(func(a *events.FindElementArgs) error {
		finds = append(finds, a)
		return nil
	})

	form := mustFind(t, d, selenium.ByID, "login")
	mustFind(t, form, selenium.ByTagName, "button")
	host := mustFind(t, d, selenium.ByID, "host")
	root, err := host.ShadowRoot()
	if err != nil {
		t.Fatalf("ShadowRoot() returned error: %v", err)
	}
	mustFind(t, root, selenium.ByID, "inner")

	if len(finds) != 4 {
		t.Fatalf("FindingElement fired %d times, want 4", len(finds))
	}
	for i, a := range finds {
		if a.Driver() != selenium.WebDriver(fake) {
			t.Errorf("finds[%d].Driver() = %v, want the wrapped driver", i, a.Driver())
		}
	}
	if finds[0].Element() != nil || finds[0].ShadowRoot() != nil {
		t.Errorf("driver-scoped find has element %v and shadow root %v, want none", finds[0].Element(), finds[0].ShadowRoot())
	}
	if _, ok := finds[1].Element().(*seleniumtest.Element); !ok {
		t.Errorf("element-scoped find has element %T, want the wrapped *seleniumtest.Element", finds[1].Element())
	}
	if !selenium.ElementsEqual(finds[1].Element(), form) {
		t.Errorf("element-scoped find names another element than the one searched")
	}
	if diff := cmp.Diff([]string{selenium.ByTagName, "button"}, []string{finds[1].By(), finds[1].Value()}); diff != "" {
		t.Errorf("element-scoped find locator returned diff (-want/+got):\n%s", diff)
	}
	if _, ok := finds[3].ShadowRoot().(*seleniumtest.ShadowRoot); !ok {
		t.Errorf("shadow-scoped find has shadow root %T, want the wrapped *seleniumtest.ShadowRoot", finds[3].ShadowRoot())
	}
	if finds[3].Element() != nil {
		t.Errorf("shadow-scoped find has element %v, want nil", finds[3].Element())
	}
}

func TestShadowRootNotifications(t *testing.T) {
	var before, after []*events.ShadowRootArgs
	var failures []*events.ExceptionArgs
	d, _ := newHome(t)
	d.OnGettingShadowRoot(func(a *events.ShadowRootArgs) error {
		before = append(before, a)
		return nil
	})
	d.OnGetShadowRootCompleted(func(a *events.ShadowRootArgs) error {
		after = append(after, a)
		return nil
	})
	d.OnExceptionThrown(func(a *events.ExceptionArgs) error {
		failures = append(failures, a)
		return nil
	})

	root, err := mustFind(t, d, selenium.ByID, "host").ShadowRoot()
	if err != nil {
		t.Fatalf("ShadowRoot() returned error: %v", err)
	}
	if _, ok := root.(*events.EventFiringShadowRoot); !ok {
		t.Fatalf("ShadowRoot() returned %T, want an *events.EventFiringShadowRoot", root)
	}
	if len(before) != 1 || len(after) != 1 {
		t.Fatalf("got %d GettingShadowRoot and %d GetShadowRootCompleted, want 1 each", len(before), len(after))
	}
	if before[0].ShadowRoot() != nil {
		t.Errorf("GettingShadowRoot payload has shadow root %v, want nil", before[0].ShadowRoot())
	}
	if !selenium.SearchContextsEqual(root, after[0].ShadowRoot()) {
		t.Errorf("GetShadowRootCompleted payload does not carry the shadow root returned")
	}
	if events.Origin(after[0]) != events.Args(before[0]) {
		t.Errorf("Origin() of GetShadowRootCompleted is not the GettingShadowRoot payload")
	}

	_, err = mustFind(t, d, selenium.ByID, "title").ShadowRoot()
	if selenium.ErrorCode(err) != selenium.ErrCodeNoSuchShadowRoot {
		t.Fatalf("ShadowRoot() of a plain element returned %v, want a no such shadow root error", err)
	}
	if len(failures) != 1 {
		t.Fatalf("ExceptionThrown fired %d times, want 1", len(failures))
	}
	if failures[0].Operation() != events.Args(before[1]) {
		t.Errorf("ExceptionArgs.Operation() is not the GettingShadowRoot payload")
	}
	if got := failures[0].Method(); got != "Element.ShadowRoot" {
		t.Errorf("ExceptionArgs.Method() = %q, want %q", got, "Element.ShadowRoot")
	}
}

func TestEquality(t *testing.T) {
	d, fake := newHome(t)

	a := mustFind(t, d, selenium.ByID, "title")
	b := mustFind(t, d, selenium.ByTagName, "h1")
	raw := mustFind(t, fake, selenium.ByID, "title")
	if a == b {
		t.Fatalf("two finds returned the same wrapper")
	}
	for _, tc := range []struct {
		desc string
		x, y selenium.WebElement
		want bool
	}{
		{"wrapper and wrapper", a, b, true},
		{"wrapper and wrapped", a, raw, true},
		{"wrapped and wrapper", raw, a, true},
		{"different nodes", a, mustFind(t, d, selenium.ByID, "next"), false},
		{"wrapper and nil", a, nil, false},
	} {
		if got := selenium.ElementsEqual(tc.x, tc.y); got != tc.want {
			t.Errorf("%s: ElementsEqual() = %t, want %t", tc.desc, got, tc.want)
		}
	}
	if got := selenium.UnwrapElement(a); got == a {
		t.Errorf("UnwrapElement() of a wrapper returned the wrapper")
	}
}

func TestDispose(t *testing.T) {
	fake := seleniumtest.NewFixtureDriver()
	d := newDecorated(t, fake)
	for i := 0; i < 2; i++ {
		if err := d.Dispose(); err != nil {
			t.Fatalf("Dispose() #%d returned error: %v", i+1, err)
		}
	}
	if got := fake.Disposed(); got != 1 {
		t.Fatalf("wrapped driver disposed %d times, want 1", got)
	}
}

// plainDriver finds elements lacking every optional capability.
type plainDriver struct {
	selenium.WebDriver
}

func (p plainDriver) FindElement(by, value string) (selenium.WebElement, error) {
	e, err := p.WebDriver.FindElement(by, value)
	if err != nil {
		return nil, err
	}
	return plainElement{e}, nil
}

type plainElement struct {
	selenium.WebElement
}

func TestUnsupportedCapabilities(t *testing.T) {
	fake := seleniumtest.NewFixtureDriver()
	if err := fake.Get(seleniumtest.HomeURL); err != nil {
		t.Fatalf("fake.Get() returned error: %v", err)
	}
	var calls []string
	fake.CallHook = func(call string) { calls = append(calls, call) }
	rec := newRecorder()
	d := newDecorated(t, plainDriver{seleniumtest.BaseOnly(fake)}, events.WithListener(rec))
	elem := mustFind(t, d, selenium.ByID, "styled")
	*rec.log, calls = nil, nil

	for _, tc := range []struct {
		desc string
		call func() error
	}{
		{"ExecuteScript", func() error {
			_, err := d.ExecuteScript("return document.title", nil)
			return err
		}},
		{"ExecuteAsyncScript", func() error {
			_, err := d.ExecuteAsyncScript("return document.title", nil)
			return err
		}},
		{"ExecutePinnedScript", func() error {
			_, err := d.ExecutePinnedScript(selenium.NewPinnedScript("return document.title"), nil)
			return err
		}},
		{"Screenshot", func() error {
			_, err := d.Screenshot()
			return err
		}},
		{"element Screenshot", func() error {
			_, err := elem.(selenium.TakesScreenshot).Screenshot()
			return err
		}},
	} {
		if err := tc.call(); !errors.Is(err, selenium.ErrUnsupportedOperation) {
			t.Errorf("%s returned %v, want %v", tc.desc, err, selenium.ErrUnsupportedOperation)
		}
	}
	if len(rec.entries()) != 0 {
		t.Errorf("unsupported calls fired notifications: %v", rec.entries())
	}
	if len(calls) != 0 {
		t.Errorf("unsupported calls reached the wrapped driver: %v", calls)
	}
}

func TestInvalidArguments(t *testing.T) {
	if _, err := events.NewEventFiringWebDriver(nil); !errors.Is(err, selenium.ErrInvalidArgument) {
		t.Fatalf("NewEventFiringWebDriver(nil) returned %v, want %v", err, selenium.ErrInvalidArgument)
	}

	rec := newRecorder()
	d, fake := newHome(t, events.WithListener(rec))
	var calls []string
	fake.CallHook = func(call string) { calls = append(calls, call) }

	for _, tc := range []struct {
		desc string
		call func() error
	}{
		{"Get", func() error { return d.Get("") }},
		{"Navigate().To", func() error { return d.Navigate().To("") }},
		{"FindElement", func() error {
			_, err := d.FindElement("", "x")
			return err
		}},
		{"FindElements", func() error {
			_, err := d.FindElements("", "x")
			return err
		}},
		{"ExecuteScript", func() error {
			_, err := d.ExecuteScript("", nil)
			return err
		}},
		{"ExecutePinnedScript", func() error {
			_, err := d.ExecutePinnedScript(nil, nil)
			return err
		}},
		{"FrameByElement", func() error {
			_, err := d.SwitchTo().FrameByElement(nil)
			return err
		}},
		{"WithHandler", func() error {
			_, err := events.NewEventFiringWebDriver(fake, events.WithHandler(nil))
			return err
		}},
		{"WithChannel", func() error {
			_, err := events.NewEventFiringWebDriver(fake, events.WithChannel(nil))
			return err
		}},
	} {
		if err := tc.call(); !errors.Is(err, selenium.ErrInvalidArgument) {
			t.Errorf("%s returned %v, want %v", tc.desc, err, selenium.ErrInvalidArgument)
		}
	}
	if len(rec.entries()) != 0 {
		t.Errorf("invalid calls fired notifications: %v", rec.entries())
	}
	if len(calls) != 0 {
		t.Errorf("invalid calls reached the wrapped driver: %v", calls)
	}
}

func TestHandlerErrors(t *testing.T) {
	boom := errors.New("boom")
	failWith := func(err error) events.Handler {
		return func(events.Kind, events.Args) error { return err }
	}

	t.Run("before", func(t *testing.T) {
		var later, exceptions int
		d, fake := newHome(t,
			events.WithHandler(failWith(boom), events.Navigating),
			events.WithHandler(func(events.Kind, events.Args) error {
				later++
				return nil
			}, events.Navigating),
			events.WithHandler(func(events.Kind, events.Args) error {
				exceptions++
				return nil
			}, events.ExceptionThrown))
		var calls []string
		fake.CallHook = func(call string) { calls = append(calls, call) }

		if err := d.Get(seleniumtest.NextURL); err != boom {
			t.Fatalf("Get() returned %v, want the handler's error", err)
		}
		if later != 0 {
			t.Errorf("delivery continued after a failing handler")
		}
		if len(calls) != 0 {
			t.Errorf("the call was forwarded after a failing before handler: %v", calls)
		}
		if exceptions != 0 {
			t.Errorf("a handler failure fired ExceptionThrown")
		}
	})

	t.Run("after", func(t *testing.T) {
		d, fake := newHome(t, events.WithHandler(failWith(boom), events.Navigated))
		if err := d.Get(seleniumtest.NextURL); err != boom {
			t.Fatalf("Get() returned %v, want the handler's error", err)
		}
		url, err := fake.CurrentURL()
		if err != nil {
			t.Fatalf("CurrentURL() returned error: %v", err)
		}
		if url != seleniumtest.NextURL {
			t.Fatalf("the navigation did not happen: at %q", url)
		}
	})

	t.Run("exception", func(t *testing.T) {
		d, _ := newHome(t, events.WithHandler(failWith(boom), events.ExceptionThrown))
		if _, err := d.FindElement(selenium.ByID, "missing"); err != boom {
			t.Fatalf("FindElement() returned %v, want the handler's error", err)
		}
	})
}

func TestScripts(t *testing.T) {
	var scripts []*events.ScriptArgs
	d, fake := newHome(t)
	d.OnScriptExecuting(func(a *events.ScriptArgs) error {
		scripts = append(scripts, a)
		return nil
	})
	var received []interface{}
	fake.Scripts["inspect"] = func(_ *seleniumtest.Driver, args []interface{}) (interface{}, error) {
		received = args
		return args, nil
	}

	elem := mustFind(t, d, selenium.ByID, "title")
	got, err := d.ExecuteScript("inspect", []interface{}{
		elem,
		"text",
		[]interface{}{elem},
		map[string]interface{}{"e": elem},
	})
	if err != nil {
		t.Fatalf("ExecuteScript() returned error: %v", err)
	}

	raw := func(v interface{}) bool {
		_, ok := v.(*seleniumtest.Element)
		return ok
	}
	wrapped := func(v interface{}) bool {
		_, ok := v.(*events.EventFiringWebElement)
		return ok
	}
	if !raw(received[0]) || !raw(received[2].([]interface{})[0]) || !raw(received[3].(map[string]interface{})["e"]) {
		t.Errorf("script received %#v, want every element unwrapped", received)
	}
	res := got.([]interface{})
	if !wrapped(res[0]) || !wrapped(res[2].([]interface{})[0]) || !wrapped(res[3].(map[string]interface{})["e"]) {
		t.Errorf("script returned %#v, want every element wrapped", res)
	}
	if res[1] != "text" {
		t.Errorf("script returned %v for a string argument, want %q", res[1], "text")
	}

	pinned := selenium.NewPinnedScript("return document.title")
	if _, err := d.ExecuteAsyncScript("return document.title", nil); err != nil {
		t.Fatalf("ExecuteAsyncScript() returned error: %v", err)
	}
	if _, err := d.ExecutePinnedScript(pinned, nil); err != nil {
		t.Fatalf("ExecutePinnedScript() returned error: %v", err)
	}
	type script struct {
		Source string
		Async  bool
	}
	var gotScripts []script
	for _, s := range scripts {
		gotScripts = append(gotScripts, script{s.Script(), s.Async()})
	}
	want := []script{{"inspect", false}, {"return document.title", true}, {pinned.Source, false}}
	if diff := cmp.Diff(want, gotScripts); diff != "" {
		t.Fatalf("ScriptExecuting payloads returned diff (-want/+got):\n%s", diff)
	}
}

func TestNavigation(t *testing.T) {
	rec := newRecorder()
	d, _ := newHome(t, events.WithListener(rec))
	nav := d.Navigate()

	if err := nav.To(seleniumtest.NextURL); err != nil {
		t.Fatalf("To() returned error: %v", err)
	}
	if err := nav.Back(); err != nil {
		t.Fatalf("Back() returned error: %v", err)
	}
	if err := nav.Forward(); err != nil {
		t.Fatalf("Forward() returned error: %v", err)
	}
	if err := nav.Refresh(); err != nil {
		t.Fatalf("Refresh() returned error: %v", err)
	}
	want := []string{
		"Navigating " + seleniumtest.NextURL,
		"Navigated " + seleniumtest.NextURL,
		"NavigatingBack",
		"NavigatedBack",
		"NavigatingForward",
		"NavigatedForward",
	}
	if diff := cmp.Diff(want, rec.entries()); diff != "" {
		t.Fatalf("notifications returned diff (-want/+got):\n%s", diff)
	}
}

func TestNavigationCanceled(t *testing.T) {
	rec := newRecorder()
	d, _ := newHome(t, events.WithListener(rec))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Navigate().BackContext(ctx); err != context.Canceled {
		t.Fatalf("BackContext() returned %v, want %v", err, context.Canceled)
	}
	want := []string{"NavigatingBack", "ExceptionThrown context canceled"}
	if diff := cmp.Diff(want, rec.entries()); diff != "" {
		t.Fatalf("notifications returned diff (-want/+got):\n%s", diff)
	}
}

func TestTargetLocator(t *testing.T) {
	var failures []string
	d, fake := newHome(t)
	d.OnExceptionThrown(func(a *events.ExceptionArgs) error {
		failures = append(failures, a.Method())
		return nil
	})
	rec := newRecorder()
	d.Events().SubscribeListener(rec, events.FindingElement)

	fd, err := d.SwitchTo().FrameByName("frame1")
	if err != nil {
		t.Fatalf("FrameByName() returned error: %v", err)
	}
	if fd != selenium.WebDriver(d) {
		t.Fatalf("FrameByName() returned %v, want the decorator", fd)
	}
	mustFind(t, fd, selenium.ByID, "framed")
	if len(rec.entries()) != 1 {
		t.Errorf("a find in the frame fired %v, want FindingElement", rec.entries())
	}
	if _, err := d.SwitchTo().DefaultContent(); err != nil {
		t.Fatalf("DefaultContent() returned error: %v", err)
	}

	raw := mustFind(t, fake, selenium.ByID, "frame")
	if _, err := d.SwitchTo().FrameByElement(raw); err != nil {
		t.Fatalf("FrameByElement() of an unwrapped element returned error: %v", err)
	}
	if _, err := d.SwitchTo().ParentFrame(); err != nil {
		t.Fatalf("ParentFrame() returned error: %v", err)
	}
	if _, err := d.SwitchTo().Frame(5); selenium.ErrorCode(err) != selenium.ErrCodeNoSuchFrame {
		t.Fatalf("Frame(5) returned %v, want a no such frame error", err)
	}

	if err := mustFind(t, d, selenium.ByID, "name").SendKeys("x"); err != nil {
		t.Fatalf("SendKeys() returned error: %v", err)
	}
	active, err := d.SwitchTo().ActiveElement()
	if err != nil {
		t.Fatalf("ActiveElement() returned error: %v", err)
	}
	if _, ok := active.(*events.EventFiringWebElement); !ok {
		t.Fatalf("ActiveElement() returned %T, want an *events.EventFiringWebElement", active)
	}

	if err := mustFind(t, d, selenium.ByID, "alert").Click(); err != nil {
		t.Fatalf("Click() returned error: %v", err)
	}
	alert, err := d.SwitchTo().Alert()
	if err != nil {
		t.Fatalf("Alert() returned error: %v", err)
	}
	if err := alert.Accept(); err != nil {
		t.Fatalf("Accept() returned error: %v", err)
	}
	if err := alert.Accept(); err == nil {
		t.Fatalf("second Accept() returned nil error")
	}

	want := []string{"SwitchTo.Frame", "Alert.Accept"}
	if diff := cmp.Diff(want, failures); diff != "" {
		t.Fatalf("failed methods returned diff (-want/+got):\n%s", diff)
	}
}

func TestNestedDecorators(t *testing.T) {
	inner := newRecorder()
	outer := &recorder{prefix: "outer ", log: inner.log}
	inner.prefix = "inner "
	fake := seleniumtest.NewFixtureDriver()
	id := newDecorated(t, fake, events.WithListener(inner, events.Navigating, events.Navigated, events.ElementClicking))
	od := newDecorated(t, id, events.WithListener(outer, events.Navigating, events.Navigated, events.ElementClicking))

	if err := od.Get(seleniumtest.HomeURL); err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if err := mustFind(t, od, selenium.ByID, "remember").Click(); err != nil {
		t.Fatalf("Click() returned error: %v", err)
	}
	want := []string{
		"outer Navigating " + seleniumtest.HomeURL,
		"inner Navigating " + seleniumtest.HomeURL,
		"inner Navigated " + seleniumtest.HomeURL,
		"outer Navigated " + seleniumtest.HomeURL,
		"outer ElementClicking",
		"inner ElementClicking",
	}
	if diff := cmp.Diff(want, *inner.log); diff != "" {
		t.Fatalf("notifications returned diff (-want/+got):\n%s", diff)
	}
	if got := outer.args[0].Driver(); got != selenium.WebDriver(id) {
		t.Errorf("outer payload driver = %v, want the inner decorator", got)
	}
	if got := inner.args[0].Driver(); got != selenium.WebDriver(fake) {
		t.Errorf("inner payload driver = %v, want the fake driver", got)
	}
}

func TestSharedChannel(t *testing.T) {
	c := events.NewChannel()
	rec := newRecorder()
	c.SubscribeListener(rec, events.Navigating)
	a := newDecorated(t, seleniumtest.NewFixtureDriver(), events.WithChannel(c))
	b := newDecorated(t, seleniumtest.NewFixtureDriver(), events.WithChannel(c))

	for _, d := range []*events.EventFiringWebDriver{a, b} {
		if err := d.Get(seleniumtest.HomeURL); err != nil {
			t.Fatalf("Get() returned error: %v", err)
		}
	}
	if len(rec.entries()) != 2 {
		t.Fatalf("shared channel received %v, want two Navigating", rec.entries())
	}
	if rec.args[0].Driver() == rec.args[1].Driver() {
		t.Fatalf("payloads of different decorators carry the same driver")
	}
}

func TestOptionOrder(t *testing.T) {
	for _, tc := range []struct {
		desc string
		opts func(c *events.Channel, h events.Handler, l events.Listener) []events.Option
	}{
		{"channel first", func(c *events.Channel, h events.Handler, l events.Listener) []events.Option {
			return []events.Option{events.WithChannel(c), events.WithHandler(h, events.Navigating), events.WithListener(l, events.Navigated)}
		}},
		{"channel last", func(c *events.Channel, h events.Handler, l events.Listener) []events.Option {
			return []events.Option{events.WithHandler(h, events.Navigating), events.WithListener(l, events.Navigated), events.WithChannel(c)}
		}},
	} {
		c := events.NewChannel()
		var handled int
		h := func(events.Kind, events.Args) error {
			handled++
			return nil
		}
		rec := newRecorder()
		d := newDecorated(t, seleniumtest.NewFixtureDriver(), tc.opts(c, h, rec)...)
		if d.Events() != c {
			t.Errorf("%s: Events() is not the channel given to WithChannel", tc.desc)
		}
		if err := d.Get(seleniumtest.HomeURL); err != nil {
			t.Fatalf("%s: Get() returned error: %v", tc.desc, err)
		}
		if handled != 1 {
			t.Errorf("%s: handler called %d times, want 1", tc.desc, handled)
		}
		if diff := cmp.Diff([]string{"Navigated " + seleniumtest.HomeURL}, rec.entries()); diff != "" {
			t.Errorf("%s: listener returned diff (-want/+got):\n%s", tc.desc, diff)
		}
	}
}

// noShadowDriver finds elements whose ShadowRoot reports neither a root nor
// an error.
type noShadowDriver struct {
	selenium.WebDriver
}

func (n noShadowDriver) FindElement(by, value string) (selenium.WebElement, error) {
	e, err := n.WebDriver.FindElement(by, value)
	if err != nil {
		return nil, err
	}
	return noShadowElement{e}, nil
}

type noShadowElement struct {
	selenium.WebElement
}

func (noShadowElement) ShadowRoot() (selenium.SearchContext, error) {
	return nil, nil
}

func TestNilShadowRoot(t *testing.T) {
	fake := seleniumtest.NewFixtureDriver()
	if err := fake.Get(seleniumtest.HomeURL); err != nil {
		t.Fatalf("fake.Get(%q) returned error: %v", seleniumtest.HomeURL, err)
	}
	rec := newRecorder()
	d := newDecorated(t, noShadowDriver{fake}, events.WithListener(rec, events.GettingShadowRoot, events.GetShadowRootCompleted))

	root, err := mustFind(t, d, selenium.ByID, "host").ShadowRoot()
	if err != nil {
		t.Fatalf("ShadowRoot() returned error: %v", err)
	}
	if root != nil {
		t.Fatalf("ShadowRoot() = %v, want nil", root)
	}
	if diff := cmp.Diff([]string{"GettingShadowRoot", "GetShadowRootCompleted"}, rec.entries()); diff != "" {
		t.Fatalf("notifications returned diff (-want/+got):\n%s", diff)
	}
}

func TestCapabilities(t *testing.T) {
	d, _ := newHome(t)
	caps := selenium.DriverCapabilitiesOf(d)
	if caps.Script == nil || caps.Screenshot == nil || caps.Wraps == nil {
		t.Fatalf("DriverCapabilitiesOf(decorator) = %+v, want every capability", caps)
	}
	if caps.Wraps.WrappedDriver() != d.WrappedDriver() {
		t.Fatalf("WrappedDriver() does not return the wrapped driver")
	}
	elem := mustFind(t, d, selenium.ByID, "title")
	ecaps := selenium.ElementCapabilitiesOf(elem)
	if ecaps.Screenshot == nil || ecaps.Wraps == nil || ecaps.Equaler == nil {
		t.Fatalf("ElementCapabilitiesOf(wrapper) = %+v, want every capability", ecaps)
	}
	if owner := elem.(selenium.WrapsDriver).WrappedDriver(); owner != selenium.WebDriver(d) {
		t.Fatalf("element WrappedDriver() = %v, want the decorator", owner)
	}
}
