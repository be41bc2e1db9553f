package sidenav

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tinytelemetry/sidenav/internal/model"
)

var (
	// ErrEmptyCatalog is returned when a widget is built without items.
	ErrEmptyCatalog = errors.New("sidenav: catalog has no items")
	// ErrDuplicateID is returned when two sections or two items share an id.
	ErrDuplicateID = errors.New("sidenav: duplicate id")
	// ErrDanglingSection is returned when an item names an undeclared section.
	ErrDanglingSection = errors.New("sidenav: item references unknown section")
	// ErrUnknownItem is returned when an id does not name a catalog item.
	ErrUnknownItem = errors.New("sidenav: unknown item")
)

// NavigationState is the only mutable part of a SideNavigation.
type NavigationState struct {
	ActiveItemID string
}

// SideNavigation holds a fixed, ordered menu catalog and tracks exactly one
// active item. It is owned by a single host and is not safe for concurrent use.
type SideNavigation struct {
	sections []model.Section
	items    []model.MenuItem // flat render order
	index    map[string]int   // item id -> position in items
	state    NavigationState
}

// New validates the catalog and returns a widget with activeID selected.
func New(catalog model.Catalog, activeID string) (*SideNavigation, error) {
	if len(catalog.Items) == 0 {
		return nil, ErrEmptyCatalog
	}

	sections := make([]model.Section, len(catalog.Sections))
	copy(sections, catalog.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	declared := make(map[string]bool, len(sections))
	for _, s := range sections {
		if declared[s.ID] {
			return nil, fmt.Errorf("section %q: %w", s.ID, ErrDuplicateID)
		}
		declared[s.ID] = true
	}

	seen := make(map[string]bool, len(catalog.Items))
	for _, it := range catalog.Items {
		if seen[it.ID] {
			return nil, fmt.Errorf("item %q: %w", it.ID, ErrDuplicateID)
		}
		seen[it.ID] = true
		if !declared[it.SectionID] {
			return nil, fmt.Errorf("item %q in section %q: %w", it.ID, it.SectionID, ErrDanglingSection)
		}
	}

	// Flatten into render order: sections by Order, items in declaration order.
	items := make([]model.MenuItem, 0, len(catalog.Items))
	for _, s := range sections {
		for _, it := range catalog.Items {
			if it.SectionID == s.ID {
				items = append(items, it)
			}
		}
	}

	index := make(map[string]int, len(items))
	for i, it := range items {
		index[it.ID] = i
	}

	if _, ok := index[activeID]; !ok {
		return nil, fmt.Errorf("default active item %q: %w", activeID, ErrUnknownItem)
	}

	return &SideNavigation{
		sections: sections,
		items:    items,
		index:    index,
		state:    NavigationState{ActiveItemID: activeID},
	}, nil
}

// Default returns the built-in MENU/GENERAL widget with Dashboard active.
func Default() *SideNavigation {
	nav, err := New(model.DefaultCatalog(), model.DefaultActiveItemID)
	if err != nil {
		panic(fmt.Sprintf("sidenav: built-in catalog is invalid: %v", err))
	}
	return nav
}

// Sections returns the sections in ascending render order.
func (n *SideNavigation) Sections() []model.Section {
	out := make([]model.Section, len(n.sections))
	copy(out, n.sections)
	return out
}

// Items returns every item in flat render order.
func (n *SideNavigation) Items() []model.MenuItem {
	out := make([]model.MenuItem, len(n.items))
	copy(out, n.items)
	return out
}

// ItemsIn returns the items belonging to sectionID in render order.
func (n *SideNavigation) ItemsIn(sectionID string) []model.MenuItem {
	var out []model.MenuItem
	for _, it := range n.items {
		if it.SectionID == sectionID {
			out = append(out, it)
		}
	}
	return out
}

// Len returns the number of item rows.
func (n *SideNavigation) Len() int { return len(n.items) }

// State returns a copy of the navigation state.
func (n *SideNavigation) State() NavigationState { return n.state }

// Active returns the currently active item.
func (n *SideNavigation) Active() model.MenuItem {
	return n.items[n.index[n.state.ActiveItemID]]
}

// ActiveIndex returns the flat row position of the active item.
func (n *SideNavigation) ActiveIndex() int {
	return n.index[n.state.ActiveItemID]
}

// IsActive reports whether id is the active item.
func (n *SideNavigation) IsActive(id string) bool {
	return n.state.ActiveItemID == id
}

// SelectItem makes id the active item. Selecting the already active item is
// a no-op and reports changed == false. Unknown ids leave state untouched.
func (n *SideNavigation) SelectItem(id string) (changed bool, err error) {
	if _, ok := n.index[id]; !ok {
		return false, fmt.Errorf("select %q: %w", id, ErrUnknownItem)
	}
	if n.state.ActiveItemID == id {
		return false, nil
	}
	n.state.ActiveItemID = id
	return true, nil
}

// SelectIndex selects the item rendered at flat row position i.
func (n *SideNavigation) SelectIndex(i int) (bool, error) {
	if i < 0 || i >= len(n.items) {
		return false, fmt.Errorf("select row %d of %d: %w", i, len(n.items), ErrUnknownItem)
	}
	return n.SelectItem(n.items[i].ID)
}
