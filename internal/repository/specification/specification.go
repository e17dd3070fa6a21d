package specification

import "gorm.io/gorm"

// Specification narrows a query. Repositories accept any number of them and
// apply each in order.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
