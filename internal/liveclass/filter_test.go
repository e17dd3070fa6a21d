package liveclass

import (
	"testing"

	"fikrswap-academy-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func classesFixture() []*entity.LiveClass {
	return []*entity.LiveClass{
		{Title: "Legal Maxims", Category: "Islamic Studies"},
		{Title: "Pen Techniques", Category: "Arabic Calligraphy"},
		{Title: "Tajweed Rules", Category: "Quranic Sciences"},
		{Title: "Usul al-Fiqh", Category: "Islamic Studies"},
	}
}

func TestFilterByCategoryAll(t *testing.T) {
	classes := classesFixture()

	assert.Equal(t, classes, FilterByCategory(classes, "all"))
	assert.Equal(t, classes, FilterByCategory(classes, "All"))
	assert.Equal(t, classes, FilterByCategory(classes, "ALL"))
}

func TestFilterByCategoryMatches(t *testing.T) {
	classes := classesFixture()

	filtered := FilterByCategory(classes, "Islamic Studies")

	assert.Len(t, filtered, 2)
	// Relative order of the source listing is preserved.
	assert.Equal(t, "Legal Maxims", filtered[0].Title)
	assert.Equal(t, "Usul al-Fiqh", filtered[1].Title)
}

func TestFilterByCategoryNoMatches(t *testing.T) {
	assert.Empty(t, FilterByCategory(classesFixture(), "Islamic Arts & Culture"))
}

func TestFilterByCategoryEmptyInput(t *testing.T) {
	assert.Empty(t, FilterByCategory(nil, "Islamic Studies"))
	assert.Empty(t, FilterByCategory([]*entity.LiveClass{}, "Islamic Studies"))
}

func TestFilterByCategoryIdempotent(t *testing.T) {
	once := FilterByCategory(classesFixture(), "Islamic Studies")
	twice := FilterByCategory(once, "Islamic Studies")
	assert.Equal(t, once, twice)
}
