package events

import (
	"context"

	"github.com/wanmail/selenium/v2"
)

// eventFiringNavigation decorates selenium.Navigation. The blocking forms
// run the context forms with context.Background().
type eventFiringNavigation struct {
	driver     *EventFiringWebDriver
	navigation selenium.Navigation
}

func (n *eventFiringNavigation) Back() error {
	return n.BackContext(context.Background())
}

func (n *eventFiringNavigation) Forward() error {
	return n.ForwardContext(context.Background())
}

func (n *eventFiringNavigation) Refresh() error {
	return n.RefreshContext(context.Background())
}

func (n *eventFiringNavigation) To(url string) error {
	return n.ToContext(context.Background(), url)
}

func (n *eventFiringNavigation) args(url string) *NavigationArgs {
	return &NavigationArgs{driverArgs: driverArgs{n.driver.driver}, url: url}
}

func (n *eventFiringNavigation) BackContext(ctx context.Context) error {
	return n.driver.around(NavigatingBack, NavigatedBack, "Navigation.Back", n.args(""), func() error {
		return n.navigation.BackContext(ctx)
	})
}

func (n *eventFiringNavigation) ForwardContext(ctx context.Context) error {
	return n.driver.around(NavigatingForward, NavigatedForward, "Navigation.Forward", n.args(""), func() error {
		return n.navigation.ForwardContext(ctx)
	})
}

func (n *eventFiringNavigation) RefreshContext(ctx context.Context) error {
	return n.driver.observe("Navigation.Refresh", n.navigation.RefreshContext(ctx))
}

func (n *eventFiringNavigation) ToContext(ctx context.Context, url string) error {
	if url == "" {
		return selenium.InvalidArgument("url")
	}
	return n.driver.around(Navigating, Navigated, "Navigation.To", n.args(url), func() error {
		return n.navigation.ToContext(ctx, url)
	})
}
