package repository

import "gorm.io/gorm"

// Page is one slice of a larger result set.
type Page[T any] struct {
	Items []T
	Total int64
}

// Paginate executes a paginated query and returns the results.
// page is 1-based.
func Paginate[T any](db *gorm.DB, page, limit int) (*Page[T], error) {
	var totalItems int64
	if err := db.Session(&gorm.Session{}).Model(new(T)).Count(&totalItems).Error; err != nil {
		return nil, err
	}

	results := []T{}
	offset := (page - 1) * limit
	if err := db.Session(&gorm.Session{}).Offset(offset).Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}

	return &Page[T]{Items: results, Total: totalItems}, nil
}
