// Package markup provides the render tree produced by components and its HTML
// serialization.
//
// A tree is built from three node kinds: elements, text and fragments.
// Fragments group siblings without producing an element of their own, which
// lets components return several top-level children the way a layout slot
// expects.
package markup

import (
	"github.com/alexisbeaulieu97/cellbutton/internal/classnames"
)

// Kind identifies the type of a Node.
type Kind int

const (
	ElementNode Kind = iota
	TextNode
	FragmentNode
)

// Attr is a single element attribute. Attribute order is preserved.
type Attr struct {
	Key   string
	Value string
}

// ClickHandler is invoked synchronously when a node is activated.
type ClickHandler func()

// Node is an element, a text run, or a fragment of sibling nodes.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
	OnClick  ClickHandler
}

// El creates an element node. Nil children are skipped.
func El(tag string, children ...*Node) *Node {
	return &Node{Kind: ElementNode, Tag: tag, Children: compact(children)}
}

// Text creates a text node.
func Text(content string) *Node {
	return &Node{Kind: TextNode, Text: content}
}

// Fragment groups nodes without a wrapping element. Nil children are skipped.
func Fragment(children ...*Node) *Node {
	return &Node{Kind: FragmentNode, Children: compact(children)}
}

func compact(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// SetAttr sets or replaces an attribute and returns the node for chaining.
func (n *Node) SetAttr(key, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// SetAttrIf sets the attribute only when value is non-empty.
func (n *Node) SetAttrIf(key, value string) *Node {
	if value == "" {
		return n
	}
	return n.SetAttr(key, value)
}

// SetClass sets the class attribute when the fragment is non-empty.
func (n *Node) SetClass(class classnames.Fragment) *Node {
	if class.IsEmpty() {
		return n
	}
	return n.SetAttr("class", class.String())
}

// Handle attaches a click handler.
func (n *Node) Handle(fn ClickHandler) *Node {
	n.OnClick = fn
	return n
}

// Attr returns the value of an attribute.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// Class returns the class attribute as a fragment.
func (n *Node) Class() classnames.Fragment {
	v, _ := n.Attr("class")
	return classnames.Fragment(v)
}

// HasClass reports whether the node carries the exact class.
func (n *Node) HasClass(class string) bool {
	return n.Class().Has(class)
}

// Disabled reports whether the element carries the disabled attribute.
func (n *Node) Disabled() bool {
	return n.HasAttr("disabled")
}

// Click activates the node. Disabled elements and nodes without a handler
// ignore the click; the return value reports whether a handler ran.
func (n *Node) Click() bool {
	if n == nil || n.OnClick == nil || n.Disabled() {
		return false
	}
	n.OnClick()
	return true
}

// Flatten returns the children with fragments expanded in place.
func (n *Node) Flatten() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, child := range n.Children {
		if child.Kind == FragmentNode {
			out = append(out, child.Flatten()...)
			continue
		}
		out = append(out, child)
	}
	return out
}

// Walk visits the node and its descendants depth first. Returning false from
// fn skips the visited node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// FindAll returns every node in the tree matching pred, in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		if pred(node) {
			out = append(out, node)
		}
		return true
	})
	return out
}

// Find returns the first node matching pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	matches := n.FindAll(pred)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// TextContent concatenates all text beneath the node.
func (n *Node) TextContent() string {
	var out []byte
	n.Walk(func(node *Node) bool {
		if node.Kind == TextNode {
			out = append(out, node.Text...)
		}
		return true
	})
	return string(out)
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*Node) bool {
	return func(n *Node) bool {
		return n.Kind == ElementNode && n.Tag == tag
	}
}

// ByAttr matches elements carrying the attribute with the given value.
func ByAttr(key, value string) func(*Node) bool {
	return func(n *Node) bool {
		v, ok := n.Attr(key)
		return ok && v == value
	}
}
