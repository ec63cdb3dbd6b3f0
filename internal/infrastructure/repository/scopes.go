package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/sangkips/trademarket/pkg/pagination"
)

// OperationPeriod returns a GORM scope that keeps receipts whose operation
// date lies within [start, end]. A nil bound is open. The receipts table must
// be part of the query. Bounds are compared in UTC, the zone operation dates
// are stored in; sqlite compares them as text.
func OperationPeriod(start, end *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != nil {
			db = db.Where("receipts.operation_date >= ?", start.UTC())
		}
		if end != nil {
			db = db.Where("receipts.operation_date <= ?", end.UTC())
		}
		return db
	}
}

// Paginate returns a GORM scope applying offset and limit. Nil params leave
// the query unbounded.
func Paginate(params *pagination.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params == nil {
			return db
		}
		params.Validate()
		return db.Offset(params.Offset()).Limit(params.PerPage)
	}
}
