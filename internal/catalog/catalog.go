// Package catalog holds the fixed reference data the marketplace forms are
// built from: material categories with their suggested waste codes, browse
// filters, provinces and the selectable tag lists.
package catalog

import "strings"

// Category is a curated material with its suggested regulatory waste code.
// The code is a suggestion only; the poster may override it later.
type Category struct {
	Name      string `json:"name"`
	WasteCode string `json:"waste_code"`
}

// Categories is the curated list offered in the basics stage.
var Categories = []Category{
	{Name: "Folia LDPE (stretch)", WasteCode: "15 01 02"},
	{Name: "Folia kolorowa", WasteCode: "15 01 02"},
	{Name: "Tworzywa sztuczne (mix)", WasteCode: "16 01 19"},
	{Name: "Makulatura (karton)", WasteCode: "15 01 01"},
	{Name: "Makulatura (gazeta)", WasteCode: "15 01 01"},
	{Name: "Złom stalowy", WasteCode: "17 04 05"},
	{Name: "Złom kolorowy", WasteCode: "17 04 01"},
	{Name: "Drewno / Palety", WasteCode: "15 01 03"},
	{Name: "Inne", WasteCode: ""},
}

// WasteCodeFor returns the suggested waste code for a category name, empty if
// the category is unknown or carries no code.
func WasteCodeFor(category string) string {
	for _, c := range Categories {
		if c.Name == category {
			return c.WasteCode
		}
	}
	return ""
}

// IsCategory reports whether name is one of the curated categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// FilterAll is the browse-filter sentinel that disables category filtering.
const FilterAll = "Wszystko"

// BrowseFilters are the category keywords offered on the market view. Unlike
// Categories these are loose keywords matched by containment, not equality.
var BrowseFilters = []string{
	FilterAll, "Folia", "Tworzywa", "Makulatura", "Złom", "Drewno", "Inne",
}

// Provinces are the 16 administrative regions selectable for a listing.
var Provinces = []string{
	"dolnośląskie", "kujawsko-pomorskie", "lubelskie", "lubuskie",
	"łódzkie", "małopolskie", "mazowieckie", "opolskie",
	"podkarpackie", "podlaskie", "pomorskie", "śląskie",
	"świętokrzyskie", "warmińsko-mazurskie", "wielkopolskie", "zachodniopomorskie",
}

// IsProvince reports whether s names one of the 16 provinces (case-insensitive).
func IsProvince(s string) bool {
	for _, p := range Provinces {
		if strings.EqualFold(p, s) {
			return true
		}
	}
	return false
}

// CertificateTags are the selectable document/certificate tags.
var CertificateTags = []string{
	"KPO (Karta Przekazania Odpadu)",
	"Certyfikat pochodzenia",
	"Dokumentacja zdjęciowa",
	"Analiza składu",
}

// LogisticsTags are the selectable transport options.
var LogisticsTags = []string{
	"Transport sprzedającego",
	"Odbiór własny",
}

// DefaultPickupHours is the pre-filled pickup-hours text.
const DefaultPickupHours = "8-16"

// Icon returns the display icon name for a material, keyed on keywords the
// same way the market view groups categories.
func Icon(material string) string {
	m := strings.ToLower(material)
	switch {
	case strings.Contains(m, "folia"):
		return "foil"
	case strings.Contains(m, "tworzywa"), strings.Contains(m, "pet"):
		return "plastic"
	case strings.Contains(m, "makulatura"), strings.Contains(m, "karton"):
		return "paper"
	case strings.Contains(m, "złom"), strings.Contains(m, "stal"):
		return "scrap"
	case strings.Contains(m, "drewno"), strings.Contains(m, "palety"):
		return "wood"
	default:
		return "box"
	}
}
