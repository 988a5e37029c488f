package events

// Typed subscriptions. Each registers h for one kind on the decorator's
// channel; use Events().Unsubscribe to remove it.

func (d *EventFiringWebDriver) OnNavigating(h func(*NavigationArgs) error) SubscriptionID {
	return d.onNavigation(Navigating, h)
}

func (d *EventFiringWebDriver) OnNavigated(h func(*NavigationArgs) error) SubscriptionID {
	return d.onNavigation(Navigated, h)
}

func (d *EventFiringWebDriver) OnNavigatingBack(h func(*NavigationArgs) error) SubscriptionID {
	return d.onNavigation(NavigatingBack, h)
}

func (d *EventFiringWebDriver) OnNavigatedBack(h func(*NavigationArgs) error) SubscriptionID {
	return d.onNavigation(NavigatedBack, h)
}

func (d *EventFiringWebDriver) OnNavigatingForward(h func(*NavigationArgs) error) SubscriptionID {
	return d.onNavigation(NavigatingForward, h)
}

func (d *EventFiringWebDriver) OnNavigatedForward(h func(*NavigationArgs) error) SubscriptionID {
	return d.onNavigation(NavigatedForward, h)
}

func (d *EventFiringWebDriver) onNavigation(k Kind, h func(*NavigationArgs) error) SubscriptionID {
	return d.events.Subscribe(func(_ Kind, a Args) error { return h(a.(*NavigationArgs)) }, k)
}

func (d *EventFiringWebDriver) OnElementClicking(h func(*ElementArgs) error) SubscriptionID {
	return d.onElement(ElementClicking, h)
}

func (d *EventFiringWebDriver) OnElementClicked(h func(*ElementArgs) error) SubscriptionID {
	return d.onElement(ElementClicked, h)
}

func (d *EventFiringWebDriver) onElement(k Kind, h func(*ElementArgs) error) SubscriptionID {
	return d.events.Subscribe(func(_ Kind, a Args) error { return h(a.(*ElementArgs)) }, k)
}

func (d *EventFiringWebDriver) OnElementValueChanging(h func(*ElementValueArgs) error) SubscriptionID {
	return d.onElementValue(ElementValueChanging, h)
}

func (d *EventFiringWebDriver) OnElementValueChanged(h func(*ElementValueArgs) error) SubscriptionID {
	return d.onElementValue(ElementValueChanged, h)
}

func (d *EventFiringWebDriver) onElementValue(k Kind, h func(*ElementValueArgs) error) SubscriptionID {
	return d.events.Subscribe(func(_ Kind, a Args) error { return h(a.(*ElementValueArgs)) }, k)
}

func (d *EventFiringWebDriver) OnFindingElement(h func(*FindElementArgs) error) SubscriptionID {
	return d.onFind(FindingElement, h)
}

func (d *EventFiringWebDriver) OnFindElementCompleted(h func(*FindElementArgs) error) SubscriptionID {
	return d.onFind(FindElementCompleted, h)
}

func (d *EventFiringWebDriver) onFind(k Kind, h func(*FindElementArgs) error) SubscriptionID {
	return d.events.Subscribe(func(_ Kind, a Args) error { return h(a.(*FindElementArgs)) }, k)
}

func (d *EventFiringWebDriver) OnGettingShadowRoot(h func(*ShadowRootArgs) error) SubscriptionID {
	return d.onShadowRoot(GettingShadowRoot, h)
}

func (d *EventFiringWebDriver) OnGetShadowRootCompleted(h func(*ShadowRootArgs) error) SubscriptionID {
	return d.onShadowRoot(GetShadowRootCompleted, h)
}

func (d *EventFiringWebDriver) onShadowRoot(k Kind, h func(*ShadowRootArgs) error) SubscriptionID {
	return d.events.Subscribe(func(_ Kind, a Args) error { return h(a.(*ShadowRootArgs)) }, k)
}

func (d *EventFiringWebDriver) OnScriptExecuting(h func(*ScriptArgs) error) SubscriptionID {
	return d.onScript(ScriptExecuting, h)
}

func (d *EventFiringWebDriver) OnScriptExecuted(h func(*ScriptArgs) error) SubscriptionID {
	return d.onScript(ScriptExecuted, h)
}

func (d *EventFiringWebDriver) onScript(k Kind, h func(*ScriptArgs) error) SubscriptionID {
	return d.events.Subscribe(func(_ Kind, a Args) error { return h(a.(*ScriptArgs)) }, k)
}

func (d *EventFiringWebDriver) OnExceptionThrown(h func(*ExceptionArgs) error) SubscriptionID {
	return d.events.Subscribe(func(_ Kind, a Args) error { return h(a.(*ExceptionArgs)) }, ExceptionThrown)
}
