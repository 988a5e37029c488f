package seleniumtest

import (
	"strconv"
	"strings"

	"github.com/wanmail/selenium/v2"
)

// Page is a document served by the fake browser.
type Page struct {
	URL   string
	Title string
	Body  []*Node
}

// Node is one element of a fake document. The exported fields describe the
// markup; the unexported ones hold state changed by user interaction.
type Node struct {
	Tag   string
	Attrs map[string]string
	Props map[string]string
	Style map[string]string
	Text  string

	Children []*Node
	// Shadow holds the children of the element's shadow root. A nil slice
	// means the element hosts no shadow root.
	Shadow []*Node
	// Frame is the document loaded by an <iframe>.
	Frame *Page

	// Href is navigated to when the element is clicked.
	Href string
	// Alert is opened as a dialog when the element is clicked.
	Alert string

	Hidden   bool
	Disabled bool
	Location selenium.Point
	Size     selenium.Size

	parent   *Node
	value    string
	selected bool
}

// E builds a node. Attributes are given as alternating names and values.
func E(tag string, attrs ...string) *Node {
	n := &Node{Tag: tag, Attrs: make(map[string]string)}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attrs[attrs[i]] = attrs[i+1]
	}
	n.value = n.Attrs["value"]
	_, n.selected = n.Attrs["selected"]
	if _, ok := n.Attrs["checked"]; ok {
		n.selected = true
	}
	_, n.Disabled = n.Attrs["disabled"]
	return n
}

// WithText sets the node's text content.
func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

// WithChildren appends children to the node.
func (n *Node) WithChildren(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// WithShadow attaches a shadow root holding children.
func (n *Node) WithShadow(children ...*Node) *Node {
	n.Shadow = append([]*Node{}, children...)
	return n
}

func (n *Node) attr(name string) string {
	return n.Attrs[name]
}

func (n *Node) classes() []string {
	return strings.Fields(n.attr("class"))
}

func (n *Node) isHidden() bool {
	for p := n; p != nil; p = p.parent {
		if p.Hidden {
			return true
		}
	}
	return false
}

func (n *Node) ancestor(tag string) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if strings.EqualFold(p.Tag, tag) {
			return p
		}
	}
	return nil
}

func (n *Node) text() string {
	if n.isHidden() {
		return ""
	}
	parts := []string{}
	if t := strings.TrimSpace(n.Text); t != "" {
		parts = append(parts, t)
	}
	for _, c := range n.Children {
		if t := c.text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func (n *Node) isCheckable() bool {
	if strings.EqualFold(n.Tag, "option") {
		return true
	}
	t := strings.ToLower(n.attr("type"))
	return strings.EqualFold(n.Tag, "input") && (t == "checkbox" || t == "radio")
}

// optionIndex returns the position of an <option> within its <select>.
func (n *Node) optionIndex() int {
	sel := n.ancestor("select")
	if sel == nil {
		return -1
	}
	for i, o := range descendants(sel.Children, false) {
		if o == n {
			return i
		}
	}
	return -1
}

func (n *Node) property(name string) string {
	switch name {
	case "value":
		return n.value
	case "checked", "selected":
		return strconv.FormatBool(n.selected)
	case "disabled":
		return strconv.FormatBool(n.Disabled)
	case "tagName":
		return strings.ToUpper(n.Tag)
	case "textContent", "innerText":
		return n.text()
	case "index":
		if strings.EqualFold(n.Tag, "option") {
			return strconv.Itoa(n.optionIndex())
		}
	}
	return n.Props[name]
}

// link sets parent pointers below nodes.
func link(parent *Node, nodes []*Node) {
	for _, n := range nodes {
		n.parent = parent
		link(n, n.Children)
		link(n, n.Shadow)
	}
}

// descendants lists nodes and their light-DOM descendants in document
// order. Shadow trees are entered only when shadow is set.
func descendants(nodes []*Node, shadow bool) []*Node {
	var out []*Node
	for _, n := range nodes {
		out = append(out, n)
		out = append(out, descendants(n.Children, shadow)...)
		if shadow {
			out = append(out, descendants(n.Shadow, shadow)...)
		}
	}
	return out
}

func (p *Page) source() string {
	var b strings.Builder
	b.WriteString("<html><head><title>")
	b.WriteString(p.Title)
	b.WriteString("</title></head><body>")
	for _, n := range p.Body {
		writeNode(&b, n)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	b.WriteString("<" + n.Tag)
	for _, k := range sortedKeys(n.Attrs) {
		b.WriteString(" " + k + `="` + n.Attrs[k] + `"`)
	}
	b.WriteString(">")
	b.WriteString(n.Text)
	for _, c := range n.Children {
		writeNode(b, c)
	}
	b.WriteString("</" + n.Tag + ">")
}

// Fixture returns the pages the conformance tests run against. Every call
// builds fresh documents so interaction state never leaks between tests.
func Fixture() []*Page {
	return []*Page{
		{
			URL:   HomeURL,
			Title: "Home",
			Body: []*Node{
				E("h1", "id", "title").WithText("Welcome"),
				E("form", "id", "login", "action", DoneURL).WithChildren(
					E("input", "id", "name", "name", "name", "type", "text"),
					E("input", "id", "remember", "type", "checkbox"),
					E("input", "id", "disabled", "type", "text", "disabled", ""),
					E("button", "id", "submit", "type", "submit").WithText("Log in"),
				),
				&Node{Tag: "a", Attrs: map[string]string{"id": "next"}, Text: "Next page", Href: NextURL},
				&Node{Tag: "button", Attrs: map[string]string{"id": "alert"}, Text: "Greet", Alert: "Hello"},
				E("div", "class", "item first").WithText("one"),
				E("div", "class", "item").WithText("two"),
				E("div", "class", "item last").WithText("three"),
				E("select", "id", "colors", "name", "colors").WithChildren(
					E("option", "value", "red").WithText("Red"),
					E("option", "value", "green", "selected", "").WithText("Green"),
					E("option", "value", "blue").WithText("Light  Blue"),
				),
				E("select", "id", "letters", "multiple", "").WithChildren(
					E("option", "value", "a").WithText("A"),
					E("option", "value", "b").WithText("B"),
					E("option", "value", "c").WithText("C"),
				),
				E("div", "id", "host").WithShadow(
					E("span", "id", "inner", "class", "shadowed").WithText("in shadow"),
				),
				&Node{
					Tag:   "p",
					Attrs: map[string]string{"id": "styled", "title": "tip"},
					Props: map[string]string{"lang": "en"},
					Style: map[string]string{"color": "rgba(255, 0, 0, 1)"},
					Text:  "styled",
					Location: selenium.Point{X: 10, Y: 20},
					Size:     selenium.Size{Width: 100, Height: 30},
				},
				&Node{Tag: "p", Attrs: map[string]string{"id": "invisible"}, Text: "hidden", Hidden: true},
				&Node{
					Tag:   "iframe",
					Attrs: map[string]string{"id": "frame", "name": "frame1"},
					Frame: &Page{
						URL:   FrameURL,
						Title: "Frame",
						Body: []*Node{
							E("p", "id", "framed").WithText("Inside frame"),
						},
					},
				},
			},
		},
		{
			URL:   NextURL,
			Title: "Next",
			Body: []*Node{
				E("p", "id", "message").WithText("You made it"),
			},
		},
		{
			URL:   DoneURL,
			Title: "Done",
			Body: []*Node{
				E("p", "id", "message").WithText("Logged in"),
			},
		},
	}
}

// URLs served by Fixture.
const (
	HomeURL  = "http://fake.test/"
	NextURL  = "http://fake.test/next"
	DoneURL  = "http://fake.test/done"
	FrameURL = "http://fake.test/frame"
)
