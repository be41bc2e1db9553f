package model

// Shared defaults used by both the terminal and HTTP hosts.
const (
	DefaultHTTPAddr     = "127.0.0.1:3080"
	DefaultSidebarWidth = 24
	DefaultSkin         = "default"
)

// Built-in section ids.
const (
	SectionMenu    = "menu"
	SectionGeneral = "general"
)

// DefaultActiveItemID is the item selected when a widget is created.
const DefaultActiveItemID = "dashboard"

// DefaultCatalog returns the fixed side navigation table. A fresh copy is
// returned on every call so callers can never mutate the shared table.
func DefaultCatalog() Catalog {
	return Catalog{
		Sections: []Section{
			{ID: SectionMenu, Title: "MENU", Order: 0},
			{ID: SectionGeneral, Title: "GENERAL", Order: 1},
		},
		Items: []MenuItem{
			{ID: "dashboard", Label: "Dashboard", SectionID: SectionMenu},
			{ID: "my-asset", Label: "My Asset", SectionID: SectionMenu},
			{ID: "analytics", Label: "Analytics", SectionID: SectionMenu},
			{ID: "transactions", Label: "Transactions", SectionID: SectionMenu},
			{ID: "wallet", Label: "Wallet", SectionID: SectionMenu},
			{ID: "settings", Label: "Settings", SectionID: SectionGeneral},
			{ID: "help", Label: "Help", SectionID: SectionGeneral},
			{ID: "log-out", Label: "Log Out", SectionID: SectionGeneral},
		},
	}
}
