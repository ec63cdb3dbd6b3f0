package repository

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	domainRepo "github.com/sangkips/trademarket/internal/domain/repository"
	"github.com/sangkips/trademarket/pkg/apperror"
)

// NewRepositories binds every gateway to db, usually a transaction handle.
func NewRepositories(db *gorm.DB) *domainRepo.Repositories {
	return &domainRepo.Repositories{
		Customers:      NewCustomerRepository(db),
		Persons:        NewPersonRepository(db),
		Products:       NewProductRepository(db),
		Categories:     NewProductCategoryRepository(db),
		Receipts:       NewReceiptRepository(db),
		ReceiptDetails: NewReceiptDetailRepository(db),
	}
}

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a transactional unit of work over db
func NewUnitOfWork(db *gorm.DB) domainRepo.UnitOfWork {
	return &unitOfWork{db: db}
}

// Do commits when fn returns nil and rolls back otherwise.
func (u *unitOfWork) Do(ctx context.Context, fn func(repos *domainRepo.Repositories) error) error {
	logger := log.WithField("tx_id", uuid.NewString())
	logger.Debug("unit of work started")

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
	if err != nil {
		logger.WithError(err).Debug("unit of work rolled back")
		if apperror.IsAppError(err) {
			return err
		}
		return wrapErr(err, "unit of work")
	}

	logger.Debug("unit of work committed")
	return nil
}
