/*
Package selenium defines the contract of a Selenium WebDriver client: the
base driver and element interfaces, the optional capability interfaces a
driver or element may implement, and the errors they report.

Optional capabilities are queried once with DriverCapabilitiesOf and
ElementCapabilitiesOf rather than by scattered type assertions:

	caps := selenium.DriverCapabilitiesOf(wd)
	if caps.Script == nil {
		return selenium.Unsupported("driver", "JavaScriptExecutor")
	}
	title, err := caps.Script.ExecuteScript("return document.title", nil)

Package events decorates any WebDriver so that every operation fires
notifications before and after it runs.
*/
package selenium
