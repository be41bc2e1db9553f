package httpserver

import (
	"net/url"
	"strings"

	"github.com/tinytelemetry/sidenav/internal/sidenav"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const stylesheet = `
.side-navigation { width: 16rem; font-family: sans-serif; }
.side-navigation__section { margin-bottom: 1.5rem; }
.side-navigation__section-title { font-size: .75rem; letter-spacing: .08em; color: #888; }
.side-navigation__menu-item { display: flex; align-items: center; width: 100%; border: 0; background: none; padding: .5rem; cursor: pointer; text-align: left; }
.side-navigation__menu-item--active { background: #eef4ff; font-weight: bold; }
.side-navigation__menu-item-indicator { width: 4px; height: 1.25rem; margin-right: .5rem; background: #2f6fed; }
`

// Page renders a full HTML document around the navigation tree.
func Page(root *sidenav.Node) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.TitleEl(g.Text("Side navigation")),
				html.StyleEl(g.Raw(stylesheet)),
			),
			html.Body(
				html.Form(html.Method("post"), NodeToHTML(root)),
			),
		),
	)
}

// NodeToHTML maps a widget node to an element one to one: tag, classes,
// text and children. Item rows become submit buttons that post to their
// select route.
func NodeToHTML(nd *sidenav.Node) g.Node {
	children := make([]g.Node, 0, len(nd.Children)+4)

	if len(nd.Classes) > 0 {
		children = append(children, html.Class(strings.Join(nd.Classes, " ")))
	}
	if id := nd.Attr(sidenav.AttrItemID); id != "" {
		children = append(children,
			html.Data(sidenav.AttrItemID, id),
			html.Type("submit"),
			g.Attr("formaction", "/items/"+url.PathEscape(id)+"/select"),
		)
	}
	if nd.Text != "" {
		children = append(children, g.Text(nd.Text))
	}
	for _, c := range nd.Children {
		children = append(children, NodeToHTML(c))
	}

	return g.El(nd.Tag, children...)
}
