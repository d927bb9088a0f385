package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWasteCodeFor(t *testing.T) {
	assert.Equal(t, "15 01 02", WasteCodeFor("Folia kolorowa"))
	assert.Equal(t, "15 01 01", WasteCodeFor("Makulatura (karton)"))
	assert.Equal(t, "", WasteCodeFor("Inne"), "the catch-all category suggests no code")
	assert.Equal(t, "", WasteCodeFor("Uran wzbogacony"))
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory("Złom stalowy"))
	assert.False(t, IsCategory("złom stalowy"), "categories match exactly, the form offers them verbatim")
	assert.False(t, IsCategory(""))
}

func TestProvinces(t *testing.T) {
	assert.Len(t, Provinces, 16)
	assert.True(t, IsProvince("śląskie"))
	assert.True(t, IsProvince("ŚLĄSKIE"), "province check is case-insensitive")
	assert.False(t, IsProvince("katowickie"))
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "foil", Icon("Folia LDPE (stretch)"))
	assert.Equal(t, "scrap", Icon("Złom kolorowy"))
	assert.Equal(t, "wood", Icon("Drewno / Palety"))
	assert.Equal(t, "box", Icon("Coś innego"))
}
