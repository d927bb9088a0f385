package models

import (
	"strings"
	"time"
)

// TransactionType says whether the poster is selling material or looking to buy.
type TransactionType string

const (
	TransactionSell TransactionType = "sell"
	TransactionBuy  TransactionType = "buy"
)

// ParseTransactionType maps stored/legacy values onto the closed enum.
// Rows written before the field existed carry an empty string and read as sell.
func ParseTransactionType(s string) TransactionType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TransactionBuy), "kupie":
		return TransactionBuy
	default:
		return TransactionSell
	}
}

// ListingStatus is the listing lifecycle state. The only transition is
// active -> sold; nothing at the data layer backs that, only the service
// refusing the reverse update.
type ListingStatus string

const (
	StatusActive ListingStatus = "active"
	StatusSold   ListingStatus = "sold"
)

// MaterialForm is the physical form the material ships in.
type MaterialForm string

const (
	FormBaled           MaterialForm = "Bela"
	FormLoose           MaterialForm = "Luzem"
	FormRegrind         MaterialForm = "Przemiał/Mielony"
	FormPellet          MaterialForm = "Regranulat"
	FormProductionWaste MaterialForm = "Odpad poprodukcyjny"
	FormLiquid          MaterialForm = "Płynne/Szlam"
	FormOther           MaterialForm = "Inne"
)

// MaterialForms lists every selectable form, in display order.
func MaterialForms() []MaterialForm {
	return []MaterialForm{
		FormBaled, FormLoose, FormRegrind, FormPellet,
		FormProductionWaste, FormLiquid, FormOther,
	}
}

// ParseMaterialForm returns the matching form, or false for anything outside the list.
func ParseMaterialForm(s string) (MaterialForm, bool) {
	for _, f := range MaterialForms() {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// ImpurityLevel is a discrete contamination bucket, not a percentage.
// 99 means the seller could not assess it.
type ImpurityLevel int

const (
	ImpurityNone    ImpurityLevel = 0
	ImpurityUpTo2   ImpurityLevel = 2
	ImpurityUpTo5   ImpurityLevel = 5
	ImpurityUpTo10  ImpurityLevel = 10
	ImpurityAbove10 ImpurityLevel = 20
	ImpurityUnknown ImpurityLevel = 99
)

// ImpurityLevels lists the fixed scale, in display order.
func ImpurityLevels() []ImpurityLevel {
	return []ImpurityLevel{
		ImpurityNone, ImpurityUpTo2, ImpurityUpTo5,
		ImpurityUpTo10, ImpurityAbove10, ImpurityUnknown,
	}
}

// ParseImpurityLevel returns the matching bucket, or false for any other number.
func ParseImpurityLevel(n int) (ImpurityLevel, bool) {
	for _, l := range ImpurityLevels() {
		if int(l) == n {
			return l, true
		}
	}
	return 0, false
}

// Listing is the persisted marketplace record.
type Listing struct {
	ID              uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TransactionType TransactionType `gorm:"column:transaction_type;type:varchar(10);not null;default:'sell'" json:"transaction_type"`
	Title           string          `gorm:"column:title;not null" json:"title"`
	Material        string          `gorm:"column:material;not null" json:"material"`
	WasteCode       string          `gorm:"column:waste_code" json:"waste_code"`
	Form            MaterialForm    `gorm:"column:form;type:varchar(30)" json:"form"`
	PricePerTonne   float64         `gorm:"column:price_per_tonne;type:decimal(12,2)" json:"price_per_tonne"`
	WeightTonnes    float64         `gorm:"column:weight_tonnes;type:decimal(12,2)" json:"weight_tonnes"`
	ImpurityLevel   ImpurityLevel   `gorm:"column:impurity_level" json:"impurity_level"`
	Certificates    string          `gorm:"column:certificates" json:"certificates"`
	Logistics       string          `gorm:"column:logistics" json:"logistics"`
	Province        string          `gorm:"column:province" json:"province"`
	Locality        string          `gorm:"column:locality" json:"locality"`
	Phone           string          `gorm:"column:phone;not null" json:"phone"`
	Email           string          `gorm:"column:email" json:"email"`
	ImageURL        string          `gorm:"column:image_url" json:"image_url"`
	Description     string          `gorm:"column:description" json:"description"`
	PickupHours     string          `gorm:"column:pickup_hours" json:"pickup_hours"`
	HasExtraDocs    bool            `gorm:"column:has_extra_docs" json:"has_extra_docs"`
	Status          ListingStatus   `gorm:"column:status;type:varchar(10);not null;default:'active'" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (Listing) TableName() string {
	return "listings"
}

// JoinTags flattens a tag set into the comma-joined storage form.
// Order is whatever the caller passed; it carries no meaning.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// SplitTags is the inverse of JoinTags; an empty column yields no tags.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ToggleTag flips membership of tag in the set: present -> removed, absent -> appended.
func ToggleTag(tags []string, tag string) []string {
	for i, t := range tags {
		if t == tag {
			return append(tags[:i:i], tags[i+1:]...)
		}
	}
	return append(tags, tag)
}
