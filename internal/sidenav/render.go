package sidenav

import "strings"

// Class names of the rendered structure. Hosts map them onto their own
// surface (DOM classes, terminal styles) one to one.
const (
	ClassRoot           = "side-navigation"
	ClassSection        = "side-navigation__section"
	ClassSectionTitle   = "side-navigation__section-title"
	ClassMenuItem       = "side-navigation__menu-item"
	ClassMenuItemText   = "side-navigation__menu-item-text"
	ClassMenuItemActive = "side-navigation__menu-item--active"
	ClassIndicator      = "side-navigation__menu-item-indicator"
)

// AttrItemID carries the item id on every row node.
const AttrItemID = "item-id"

// Node is one element of the rendered widget tree.
type Node struct {
	Tag      string
	Classes  []string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// HasClass reports whether the node carries class c.
func (nd *Node) HasClass(c string) bool {
	for _, have := range nd.Classes {
		if have == c {
			return true
		}
	}
	return false
}

// Attr returns the value of attribute name, or "" when absent.
func (nd *Node) Attr(name string) string {
	return nd.Attrs[name]
}

// Walk visits nd and its descendants in document order. Returning false
// from fn skips the node's children.
func (nd *Node) Walk(fn func(*Node) bool) {
	if nd == nil || !fn(nd) {
		return
	}
	for _, c := range nd.Children {
		c.Walk(fn)
	}
}

// FindAll returns every node under and including nd that carries class c.
func (nd *Node) FindAll(c string) []*Node {
	var out []*Node
	nd.Walk(func(x *Node) bool {
		if x.HasClass(c) {
			out = append(out, x)
		}
		return true
	})
	return out
}

// Find returns the first node carrying class c, or nil.
func (nd *Node) Find(c string) *Node {
	if all := nd.FindAll(c); len(all) > 0 {
		return all[0]
	}
	return nil
}

// TextContent returns the concatenated text of nd and its descendants.
func (nd *Node) TextContent() string {
	var b strings.Builder
	nd.Walk(func(x *Node) bool {
		b.WriteString(x.Text)
		return true
	})
	return b.String()
}

// Render builds the widget tree for the current state. The active row is
// the only one carrying ClassMenuItemActive and the only one with an
// indicator child.
func (n *SideNavigation) Render() *Node {
	root := &Node{Tag: "nav", Classes: []string{ClassRoot}}

	for _, s := range n.sections {
		block := &Node{
			Tag:     "div",
			Classes: []string{ClassSection},
			Children: []*Node{
				{Tag: "h2", Classes: []string{ClassSectionTitle}, Text: s.Title},
			},
		}
		for _, it := range n.ItemsIn(s.ID) {
			block.Children = append(block.Children, n.renderItem(it.ID, it.Label))
		}
		root.Children = append(root.Children, block)
	}

	return root
}

func (n *SideNavigation) renderItem(id, label string) *Node {
	row := &Node{
		Tag:     "button",
		Classes: []string{ClassMenuItem},
		Attrs:   map[string]string{AttrItemID: id},
	}
	if n.IsActive(id) {
		row.Classes = append(row.Classes, ClassMenuItemActive)
		row.Children = append(row.Children, &Node{Tag: "span", Classes: []string{ClassIndicator}})
	}
	row.Children = append(row.Children, &Node{Tag: "span", Classes: []string{ClassMenuItemText}, Text: label})
	return row
}
