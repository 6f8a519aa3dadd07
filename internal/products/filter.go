package products

import (
	"strings"

	"github.com/ragavibes/storefront-backend/pkg/db/models"
)

// Filter returns the products whose name or type contains the query as a
// case-insensitive substring. A blank query matches everything. Input order
// is preserved.
func Filter(rows []models.Product, query string) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return rows
	}

	matched := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), needle) ||
			strings.Contains(strings.ToLower(row.Type), needle) {
			matched = append(matched, row)
		}
	}
	return matched
}
