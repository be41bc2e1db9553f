package model

// Section is a named group of menu items rendered together under a heading.
type Section struct {
	ID    string
	Title string
	Order int // ascending render order
}

// MenuItem is a single clickable navigation entry.
// SectionID must name a declared Section.
type MenuItem struct {
	ID        string
	Label     string
	SectionID string
}

// Catalog is the immutable menu table a navigation widget is built from.
type Catalog struct {
	Sections []Section
	Items    []MenuItem
}
