package events

import "github.com/wanmail/selenium/v2"

// eventFiringOptions passes session settings through unobserved. Timeouts
// are read from the live options on every call.
type eventFiringOptions struct {
	options selenium.Options
}

func (o *eventFiringOptions) Timeouts() selenium.Timeouts {
	return &eventFiringTimeouts{o.options.Timeouts()}
}

func (o *eventFiringOptions) Window() selenium.Window {
	return o.options.Window()
}

func (o *eventFiringOptions) Cookies() selenium.CookieJar {
	return o.options.Cookies()
}

type eventFiringTimeouts struct {
	selenium.Timeouts
}
