package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCategoryDeterminism(t *testing.T) {
	inputs := []string{"Lip Liner", "lip_liner", "  LIP_LINER "}
	for _, in := range inputs {
		assert.Equal(t, "lip_liner", NormalizeCategory(in), "input %q", in)
	}
}

func TestNormalizeCategoryEmpty(t *testing.T) {
	assert.Equal(t, CategoryUnknown, NormalizeCategory(""))
	assert.Equal(t, CategoryUnknown, NormalizeCategory("   "))
}

func TestStaticRecordCoercion(t *testing.T) {
	raw := `{
		"id": 42,
		"name": "Matte Lipstick",
		"brand": "glossier",
		"price": "12.99",
		"rating": null,
		"image_link": "https://cdn.example.com/lipstick.jpg",
		"product_type": "lipstick"
	}`

	var rec StaticRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	p := NormalizeStatic(rec)
	assert.Equal(t, "42", p.ID)
	assert.Equal(t, 12.99, p.Price)
	assert.Equal(t, 0.0, p.Rating)
	assert.Equal(t, "https://cdn.example.com/lipstick.jpg", p.ImageURL)
	assert.Equal(t, "lipstick", p.Category)
	assert.Equal(t, OriginStatic, p.Origin)
}

func TestStaticRecordGarbagePriceCoercesToZero(t *testing.T) {
	var rec StaticRecord
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","price":"not a number"}`), &rec))
	assert.Equal(t, 0.0, float64(rec.Price))
}

func TestNormalizeStaticImageFallback(t *testing.T) {
	p := NormalizeStatic(StaticRecord{Name: "Blush", Image: "fallback.jpg"})
	assert.Equal(t, "fallback.jpg", p.ImageURL)

	p = NormalizeStatic(StaticRecord{Name: "Blush", ImageLink: "primary.jpg", Image: "fallback.jpg"})
	assert.Equal(t, "primary.jpg", p.ImageURL)
}

func TestNormalizeStaticCategoryFieldOrder(t *testing.T) {
	p := NormalizeStatic(StaticRecord{Name: "x", ProductCategory: "Powder", Category: "other"})
	assert.Equal(t, "powder", p.Category)

	p = NormalizeStatic(StaticRecord{Name: "x", ProductType: "Lip Liner", Category: "other"})
	assert.Equal(t, "lip_liner", p.Category)

	p = NormalizeStatic(StaticRecord{Name: "x"})
	assert.Equal(t, CategoryUnknown, p.Category)
}

func TestNormalizeManaged(t *testing.T) {
	raw := `{
		"id": "77",
		"name": "Velvet Foundation",
		"brand": "fenty",
		"price": 30,
		"category": "Face Makeup",
		"source": "db"
	}`

	var rec ManagedRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	p := NormalizeManaged(rec)
	assert.Equal(t, "77", p.ID)
	assert.Equal(t, 30.0, p.Price)
	assert.Equal(t, "face_makeup", p.Category)
	assert.Equal(t, OriginManaged, p.Origin)
}

func TestNormalizeManagedPrefersProductType(t *testing.T) {
	p := NormalizeManaged(ManagedRecord{Name: "x", ProductType: "Bronzer", Category: "face"})
	assert.Equal(t, "bronzer", p.Category)
}

func TestDecodeStaticFeedShapes(t *testing.T) {
	bare := `[{"name":"a"},{"name":"b"}]`
	records, err := decodeStaticFeed([]byte(bare))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	envelope := `{"products":[{"name":"a"}]}`
	records, err = decodeStaticFeed([]byte(envelope))
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = decodeStaticFeed([]byte(`{{not json`))
	assert.Error(t, err)
}
