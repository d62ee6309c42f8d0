// Package catalog reconciles the static product feed with the managed
// catalog into one de-duplicated, normalized product list.
package catalog

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Origin tags which source produced a normalized product. Edit and delete
// operations are only valid for managed-origin records.
type Origin string

const (
	OriginStatic  Origin = "static"
	OriginManaged Origin = "managed"
)

// CategoryUnknown is the sentinel token for records carrying no usable
// category field.
const CategoryUnknown = "uncategorized"

// Product is the single normalized shape all browsing code consumes.
// Raw feed records never leave this package.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	ImageURL string  `json:"image_url"`
	Category string  `json:"category"`
	Origin   Origin  `json:"origin"`
}

// flexFloat decodes JSON fields that feeds serialize inconsistently as
// numbers, numeric strings, or null. Anything unparseable coerces to 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexID decodes ids that arrive as either numbers or strings.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	*id = flexID(strings.Trim(s, `"`))
	return nil
}

// StaticRecord mirrors the static feed schema.
type StaticRecord struct {
	ID              flexID    `json:"id"`
	Name            string    `json:"name"`
	Brand           string    `json:"brand"`
	Price           flexFloat `json:"price"`
	Rating          flexFloat `json:"rating"`
	ImageLink       string    `json:"image_link"`
	Image           string    `json:"image"`
	ProductType     string    `json:"product_type"`
	ProductCategory string    `json:"product_category"`
	Category        string    `json:"category"`
}

// ManagedRecord mirrors the managed catalog schema, which uses "category"
// and "product_type" interchangeably depending on which client wrote it.
type ManagedRecord struct {
	ID          flexID    `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Price       flexFloat `json:"price"`
	Rating      flexFloat `json:"rating"`
	Image       string    `json:"image"`
	ImageLink   string    `json:"image_link"`
	Category    string    `json:"category"`
	ProductType string    `json:"product_type"`
	Source      string    `json:"source"`
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeCategory produces the canonical category token: trimmed,
// lower-cased, inner whitespace collapsed to underscores. Empty input maps
// to CategoryUnknown.
func NormalizeCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryUnknown
	}
	return whitespaceRe.ReplaceAllString(s, "_")
}

// firstNonEmpty returns the first candidate with content after trimming.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

// NormalizeStatic maps a static feed record onto the internal Product type.
func NormalizeStatic(r StaticRecord) Product {
	return Product{
		ID:       string(r.ID),
		Name:     r.Name,
		Brand:    r.Brand,
		Price:    float64(r.Price),
		Rating:   float64(r.Rating),
		ImageURL: firstNonEmpty(r.ImageLink, r.Image),
		Category: NormalizeCategory(firstNonEmpty(r.ProductType, r.ProductCategory, r.Category)),
		Origin:   OriginStatic,
	}
}

// NormalizeManaged maps a managed catalog record onto the internal Product
// type.
func NormalizeManaged(r ManagedRecord) Product {
	return Product{
		ID:       string(r.ID),
		Name:     r.Name,
		Brand:    r.Brand,
		Price:    float64(r.Price),
		Rating:   float64(r.Rating),
		ImageURL: firstNonEmpty(r.Image, r.ImageLink),
		Category: NormalizeCategory(firstNonEmpty(r.ProductType, r.Category)),
		Origin:   OriginManaged,
	}
}

// nameKey is the dedup key: case-insensitive, trimmed display name.
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Merge de-duplicates by normalized name. Static entries insert first, then
// managed entries, so a name collision resolves to the managed version while
// keeping the slot of its first insertion. Entries without a usable name are
// dropped since they cannot be keyed.
func Merge(static, managed []Product) []Product {
	merged := make([]Product, 0, len(static)+len(managed))
	index := make(map[string]int, len(static)+len(managed))

	insert := func(p Product) {
		key := nameKey(p.Name)
		if key == "" {
			return
		}
		if i, ok := index[key]; ok {
			merged[i] = p
			return
		}
		index[key] = len(merged)
		merged = append(merged, p)
	}

	for _, p := range static {
		insert(p)
	}
	for _, p := range managed {
		insert(p)
	}
	return merged
}

// decodeStaticFeed accepts both shapes the static feed has shipped in: a
// bare array of records, or an object wrapping them in a "products" field.
func decodeStaticFeed(data []byte) ([]StaticRecord, error) {
	var records []StaticRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	var envelope struct {
		Products []StaticRecord `json:"products"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	return envelope.Products, nil
}
