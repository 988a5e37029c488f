package seleniumtest

import (
	"regexp"
	"sort"
	"strings"

	"github.com/wanmail/selenium/v2"
)

type matcher func(*Node) bool

// compound CSS selectors only: tag, #id, .class and [attr=value] parts.
var cssPart = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9-]*)?((?:#[\w-]+|\.[\w-]+|\[[\w-]+(?:="[^"]*")?\])*)$`)
var cssToken = regexp.MustCompile(`#[\w-]+|\.[\w-]+|\[[\w-]+(?:="[^"]*")?\]`)

func newMatcher(by, value string) (matcher, error) {
	switch by {
	case selenium.ByID:
		return func(n *Node) bool { return n.attr("id") == value }, nil
	case selenium.ByName:
		return func(n *Node) bool { return n.attr("name") == value }, nil
	case selenium.ByTagName:
		return func(n *Node) bool { return strings.EqualFold(n.Tag, value) }, nil
	case selenium.ByClassName:
		if strings.ContainsAny(value, " \t") {
			return nil, selenium.NewError(selenium.ErrCodeInvalidSelector, "compound class names are not permitted: %q", value)
		}
		return func(n *Node) bool { return hasClass(n, value) }, nil
	case selenium.ByLinkText:
		return func(n *Node) bool { return strings.EqualFold(n.Tag, "a") && n.text() == value }, nil
	case selenium.ByPartialLinkText:
		return func(n *Node) bool { return strings.EqualFold(n.Tag, "a") && strings.Contains(n.text(), value) }, nil
	case selenium.ByCSSSelector:
		return cssMatcher(value)
	case selenium.ByXPATH:
		return nil, selenium.NewError(selenium.ErrCodeInvalidSelector, "xpath is not supported: %q", value)
	}
	return nil, selenium.NewError(selenium.ErrCodeInvalidArgument, "unknown locator strategy %q", by)
}

func cssMatcher(sel string) (matcher, error) {
	m := cssPart.FindStringSubmatch(strings.TrimSpace(sel))
	if m == nil || (m[1] == "" && m[2] == "") {
		return nil, selenium.NewError(selenium.ErrCodeInvalidSelector, "unsupported css selector %q", sel)
	}
	tag := m[1]
	tokens := cssToken.FindAllString(m[2], -1)
	return func(n *Node) bool {
		if tag != "" && !strings.EqualFold(n.Tag, tag) {
			return false
		}
		for _, t := range tokens {
			switch t[0] {
			case '#':
				if n.attr("id") != t[1:] {
					return false
				}
			case '.':
				if !hasClass(n, t[1:]) {
					return false
				}
			case '[':
				body := strings.TrimSuffix(t[1:], "]")
				name, want, hasValue := strings.Cut(body, "=")
				got, ok := n.Attrs[name]
				if !ok || (hasValue && got != strings.Trim(want, `"`)) {
					return false
				}
			}
		}
		return true
	}, nil
}

func hasClass(n *Node, class string) bool {
	for _, c := range n.classes() {
		if c == class {
			return true
		}
	}
	return false
}

// find returns the nodes below roots matching the locator, in document
// order. Shadow trees and frame documents are not searched.
func find(roots []*Node, by, value string) ([]*Node, error) {
	m, err := newMatcher(by, value)
	if err != nil {
		return nil, err
	}
	var out []*Node
	for _, n := range descendants(roots, false) {
		if m(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

func noSuchElement(by, value string) error {
	return selenium.NewError(selenium.ErrCodeNoSuchElement, `Unable to locate element: {"method":%q,"selector":%q}`, by, value)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
