package models

// DraftVersion tags the serialized draft shape so a stale staged record from an
// older deploy is rejected instead of half-read.
const DraftVersion = 1

// Draft is the staged, id-less listing produced by the basics stage and
// consumed by the parameters stage. It lives only in the per-browser staging
// store and is removed on publish or cancel.
type Draft struct {
	Version         int             `json:"version"`
	TransactionType TransactionType `json:"transaction_type"`
	Title           string          `json:"title"`
	Material        string          `json:"material"`
	WasteCode       string          `json:"waste_code"`
	WeightTonnes    float64         `json:"weight_tonnes"`
	Province        string          `json:"province"`
	Locality        string          `json:"locality"`
	Phone           string          `json:"phone"`
	ImageURL        string          `json:"image_url"`
}
