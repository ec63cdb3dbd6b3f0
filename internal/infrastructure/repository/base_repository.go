package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sangkips/trademarket/pkg/apperror"
)

// baseRepository implements the shared CRUD contract for one entity type.
// Writes never cascade into associations: foreign keys are plain fields.
type baseRepository[T any] struct {
	db   *gorm.DB
	name string
}

func newBaseRepository[T any](db *gorm.DB, name string) baseRepository[T] {
	return baseRepository[T]{db: db, name: name}
}

func (r *baseRepository[T]) Add(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return wrapErr(err, "%s: add", r.name)
	}
	return nil
}

func (r *baseRepository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		return wrapErr(err, "%s: update", r.name)
	}
	return nil
}

func (r *baseRepository[T]) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(new(T), id).Error; err != nil {
		return wrapErr(err, "%s: delete %d", r.name, id)
	}
	return nil
}

func (r *baseRepository[T]) Delete(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		return wrapErr(err, "%s: delete", r.name)
	}
	return nil
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	return r.first(r.db.WithContext(ctx), id)
}

func (r *baseRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.find(r.db.WithContext(ctx))
}

// first loads one row by primary key from a prepared query.
// A missing row is (nil, nil).
func (r *baseRepository[T]) first(query *gorm.DB, id uint) (*T, error) {
	var out T
	err := query.First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err, "%s: get %d", r.name, id)
	}
	return &out, nil
}

// find loads every row matched by a prepared query in id order.
func (r *baseRepository[T]) find(query *gorm.DB) ([]T, error) {
	var out []T
	if err := query.Order(r.name + ".id ASC").Find(&out).Error; err != nil {
		return nil, wrapErr(err, "%s: list", r.name)
	}
	return out, nil
}

func wrapErr(err error, op string, args ...interface{}) error {
	return apperror.NewPersistenceError(errors.WithStack(err), op, args...)
}
