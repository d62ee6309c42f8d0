package catalog

import "strings"

// Categories returns the distinct category tokens present in the list, in
// first-seen order.
func Categories(products []Product) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// FilterByCategory keeps products whose category matches the given label
// after normalization, so "Lip Liner" and "lip_liner" select the same set.
func FilterByCategory(products []Product, category string) []Product {
	token := NormalizeCategory(category)
	var filtered []Product
	for _, p := range products {
		if p.Category == token {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Paginate returns the 1-based page of the list, and the total page count.
// Out-of-range pages return an empty slice.
func Paginate(products []Product, page, perPage int) ([]Product, int) {
	if perPage < 1 {
		perPage = 1
	}
	totalPages := (len(products) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if page < 1 || start >= len(products) {
		return nil, totalPages
	}
	end := start + perPage
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], totalPages
}

// FilterByBrand keeps products of the given brand, case-insensitively.
func FilterByBrand(products []Product, brand string) []Product {
	want := strings.ToLower(strings.TrimSpace(brand))
	var filtered []Product
	for _, p := range products {
		if strings.ToLower(strings.TrimSpace(p.Brand)) == want {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
