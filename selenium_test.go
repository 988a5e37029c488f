package selenium_test

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"

	"github.com/wanmail/selenium/v2"
	"github.com/wanmail/selenium/v2/internal/seleniumtest"
)

func TestErrorCode(t *testing.T) {
	noSuch := selenium.NewError(selenium.ErrCodeNoSuchElement, "no element matches %q", "#x")
	for _, tc := range []struct {
		desc     string
		err      error
		code     string
		noSuchEl bool
	}{
		{"nil", nil, "", false},
		{"plain", errors.New("boom"), "", false},
		{"selenium error", noSuch, selenium.ErrCodeNoSuchElement, true},
		{"wrapped with pkg/errors", errors.Wrap(noSuch, "finding"), selenium.ErrCodeNoSuchElement, true},
		{"wrapped with %w", fmt.Errorf("finding: %w", noSuch), selenium.ErrCodeNoSuchElement, true},
		{"other code", selenium.NewError(selenium.ErrCodeNoSuchFrame, "gone"), selenium.ErrCodeNoSuchFrame, false},
	} {
		if got := selenium.ErrorCode(tc.err); got != tc.code {
			t.Errorf("%s: ErrorCode() = %q, want %q", tc.desc, got, tc.code)
		}
		if got := selenium.IsNoSuchElement(tc.err); got != tc.noSuchEl {
			t.Errorf("%s: IsNoSuchElement() = %t, want %t", tc.desc, got, tc.noSuchEl)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	if got, want := selenium.NewError(selenium.ErrCodeNoSuchAlert, "").Error(), "no such alert"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := selenium.NewError(selenium.ErrCodeTimeout, "after %ds", 3).Error(), "timeout: after 3s"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSentinelErrors(t *testing.T) {
	err := selenium.InvalidArgument("url")
	if !errors.Is(err, selenium.ErrInvalidArgument) {
		t.Errorf("InvalidArgument() = %v, want it to wrap ErrInvalidArgument", err)
	}
	if got, want := err.Error(), "url must not be empty: invalid argument"; got != want {
		t.Errorf("InvalidArgument().Error() = %q, want %q", got, want)
	}

	err = selenium.Unsupported("driver", "JavaScriptExecutor")
	if !errors.Is(err, selenium.ErrUnsupportedOperation) {
		t.Errorf("Unsupported() = %v, want it to wrap ErrUnsupportedOperation", err)
	}
	if errors.Is(err, selenium.ErrInvalidArgument) {
		t.Errorf("Unsupported() = %v, unexpectedly wraps ErrInvalidArgument", err)
	}
}

// wrapper is an element decorator without an Equal method.
type wrapper struct {
	selenium.WebElement
}

func (w wrapper) WrappedElement() selenium.WebElement { return w.WebElement }

// opaque is an element of an incomparable dynamic type.
type opaque struct {
	selenium.WebElement
	tags []string
}

type contextWrapper struct {
	selenium.SearchContext
}

func (w *contextWrapper) WrappedSearchContext() selenium.SearchContext { return w.SearchContext }

func newHome(t *testing.T) *seleniumtest.Driver {
	t.Helper()
	wd := seleniumtest.NewFixtureDriver()
	if err := wd.Get(seleniumtest.HomeURL); err != nil {
		t.Fatalf("Get(%q) returned error: %v", seleniumtest.HomeURL, err)
	}
	return wd
}

func mustFind(t *testing.T, sc selenium.SearchContext, by, value string) selenium.WebElement {
	t.Helper()
	e, err := sc.FindElement(by, value)
	if err != nil {
		t.Fatalf("FindElement(%q, %q) returned error: %v", by, value, err)
	}
	return e
}

func TestElementsEqual(t *testing.T) {
	wd := newHome(t)
	title := mustFind(t, wd, selenium.ByID, "title")
	again := mustFind(t, wd, selenium.ByTagName, "h1")
	other := mustFind(t, wd, selenium.ByID, "next")
	w := wrapper{title}

	for _, tc := range []struct {
		desc string
		a, b selenium.WebElement
		want bool
	}{
		{"same node", title, again, true},
		{"different nodes", title, other, false},
		{"equaler unwraps the right-hand side", title, w, true},
		{"comparable wrapper with itself", w, w, true},
		{"comparable wrapper with its element", w, title, false},
		{"incomparable type", opaque{title, nil}, opaque{title, nil}, false},
		{"nil and element", nil, title, false},
		{"both nil", nil, nil, true},
	} {
		if got := selenium.ElementsEqual(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: ElementsEqual() = %t, want %t", tc.desc, got, tc.want)
		}
	}
}

func TestSearchContextsEqual(t *testing.T) {
	wd := newHome(t)
	host := mustFind(t, wd, selenium.ByID, "host")
	r1, err := host.ShadowRoot()
	if err != nil {
		t.Fatalf("ShadowRoot() returned error: %v", err)
	}
	r2, err := mustFind(t, wd, selenium.ByCSSSelector, "#host").ShadowRoot()
	if err != nil {
		t.Fatalf("ShadowRoot() returned error: %v", err)
	}
	w := &contextWrapper{r2}

	for _, tc := range []struct {
		desc string
		a, b selenium.SearchContext
		want bool
	}{
		{"same host", r1, r2, true},
		{"equaler unwraps the right-hand side", r1, w, true},
		{"pointer wrapper with itself", w, w, true},
		{"pointer wrapper with a copy", w, &contextWrapper{r2}, false},
		{"shadow root and driver", r1, wd, false},
		{"both nil", nil, nil, true},
	} {
		if got := selenium.SearchContextsEqual(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: SearchContextsEqual() = %t, want %t", tc.desc, got, tc.want)
		}
	}
	if got := selenium.UnwrapSearchContext(&contextWrapper{w}); got != r2 {
		t.Errorf("UnwrapSearchContext() = %v, want the shadow root", got)
	}
}

func TestUnwrapElement(t *testing.T) {
	wd := newHome(t)
	title := mustFind(t, wd, selenium.ByID, "title")
	for _, tc := range []struct {
		desc string
		elem selenium.WebElement
	}{
		{"raw", title},
		{"one layer", wrapper{title}},
		{"two layers", wrapper{wrapper{title}}},
	} {
		if got := selenium.UnwrapElement(tc.elem); got != title {
			t.Errorf("%s: UnwrapElement() = %v, want the raw element", tc.desc, got)
		}
	}
	if got := selenium.UnwrapElement(wrapper{}); got != (wrapper{}) {
		t.Errorf("UnwrapElement(empty wrapper) = %v, want the wrapper itself", got)
	}
}

func TestCapabilitiesOf(t *testing.T) {
	wd := newHome(t)
	caps := selenium.DriverCapabilitiesOf(wd)
	if caps.Script == nil || caps.Screenshot == nil {
		t.Errorf("DriverCapabilitiesOf(fake) = %+v, want script and screenshot support", caps)
	}
	if caps.Wraps != nil {
		t.Errorf("DriverCapabilitiesOf(fake).Wraps = %v, want nil", caps.Wraps)
	}
	if caps := selenium.DriverCapabilitiesOf(seleniumtest.BaseOnly(wd)); caps != (selenium.DriverCapabilities{}) {
		t.Errorf("DriverCapabilitiesOf(BaseOnly) = %+v, want no capabilities", caps)
	}

	title := mustFind(t, wd, selenium.ByID, "title")
	ecaps := selenium.ElementCapabilitiesOf(title)
	if ecaps.Screenshot == nil || ecaps.Equaler == nil || ecaps.Wraps != nil {
		t.Errorf("ElementCapabilitiesOf(fake element) = %+v, want screenshot and equality only", ecaps)
	}
	if ecaps := selenium.ElementCapabilitiesOf(wrapper{title}); ecaps.Wraps == nil || ecaps.Equaler != nil {
		t.Errorf("ElementCapabilitiesOf(wrapper) = %+v, want wrapping only", ecaps)
	}
}

func TestNewPinnedScript(t *testing.T) {
	const src = "return document.title"
	a, b := selenium.NewPinnedScript(src), selenium.NewPinnedScript(src)
	if a.Source != src {
		t.Errorf("Source = %q, want %q", a.Source, src)
	}
	if a.Handle == "" || a.Handle == b.Handle {
		t.Errorf("handles %q and %q, want distinct non-empty handles", a.Handle, b.Handle)
	}
}
