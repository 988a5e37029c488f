/*
Package events decorates a selenium.WebDriver so that operations made
through it fire notifications.

Wrap a driver with NewEventFiringWebDriver and subscribe handlers to the
kinds of notification of interest:

	wd, err := events.NewEventFiringWebDriver(driver,
		events.WithListener(events.NewLogListener(logrus.StandardLogger())))
	if err != nil {
		panic(err)
	}
	wd.OnNavigated(func(a *events.NavigationArgs) error {
		fmt.Println("at", a.URL())
		return nil
	})

Monitored operations fire a before notification, forward the call, and
fire the matching after notification once the call succeeded. Every
failed call fires ExceptionThrown and returns the wrapped object's error
unchanged. Elements, shadow roots, alerts and browsing contexts returned
through the decorator are decorated too.

A handler returning an error stops delivery of that notification, and the
error is returned by the decorated operation instead of its result.

Packages tracing and metrics provide listeners exporting the notifications
as OpenTelemetry spans and Prometheus metrics.
*/
package events
