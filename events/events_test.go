package events_test

import (
	"fmt"
	"testing"

	"github.com/wanmail/selenium/v2"
	"github.com/wanmail/selenium/v2/events"
	"github.com/wanmail/selenium/v2/internal/seleniumtest"
)

// recorder logs notifications in a compact form, e.g. "Navigating http://x.test".
type recorder struct {
	prefix string
	log    *[]string
	args   []events.Args
}

func newRecorder() *recorder {
	return &recorder{log: new([]string)}
}

func (r *recorder) OnEvent(kind events.Kind, args events.Args) error {
	*r.log = append(*r.log, r.prefix+describe(kind, args))
	r.args = append(r.args, args)
	return nil
}

func (r *recorder) entries() []string {
	return *r.log
}

func describe(kind events.Kind, args events.Args) string {
	switch a := args.(type) {
	case *events.NavigationArgs:
		if a.URL() != "" {
			return fmt.Sprintf("%v %s", kind, a.URL())
		}
	case *events.ElementValueArgs:
		var v string
		if p := a.Value(); p != nil {
			v = *p
		}
		return fmt.Sprintf("%v '%s'", kind, v)
	case *events.ExceptionArgs:
		return fmt.Sprintf("%v %v", kind, a.Err())
	}
	return kind.String()
}

func newDecorated(t *testing.T, wd selenium.WebDriver, opts ...events.Option) *events.EventFiringWebDriver {
	t.Helper()
	d, err := events.NewEventFiringWebDriver(wd, opts...)
	if err != nil {
		t.Fatalf("NewEventFiringWebDriver() returned error: %v", err)
	}
	return d
}

func newHome(t *testing.T, opts ...events.Option) (*events.EventFiringWebDriver, *seleniumtest.Driver) {
	t.Helper()
	fake := seleniumtest.NewFixtureDriver()
	if err := fake.Get(seleniumtest.HomeURL); err != nil {
		t.Fatalf("fake.Get(%q) returned error: %v", seleniumtest.HomeURL, err)
	}
	return newDecorated(t, fake, opts...), fake
}

func mustFind(t *testing.T, sc selenium.SearchContext, by, value string) selenium.WebElement {
	t.Helper()
	elem, err := sc.FindElement(by, value)
	if err != nil {
		t.Fatalf("FindElement(%q, %q) returned error: %v", by, value, err)
	}
	return elem
}
