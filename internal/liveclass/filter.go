package liveclass

import (
	"strings"

	"fikrswap-academy-be/internal/entity"
)

// CategoryAll selects every class (no filter applied).
const CategoryAll = "all"

// FilterByCategory narrows a class listing to one category. "all" is
// the identity filter; any other value keeps only matching entries in
// their original relative order. Pure and idempotent.
func FilterByCategory(classes []*entity.LiveClass, category string) []*entity.LiveClass {
	if strings.EqualFold(category, CategoryAll) {
		return classes
	}

	filtered := make([]*entity.LiveClass, 0, len(classes))
	for _, class := range classes {
		if class.Category == category {
			filtered = append(filtered, class)
		}
	}
	return filtered
}
