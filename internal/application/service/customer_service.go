package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sangkips/trademarket/internal/domain/entity"
	"github.com/sangkips/trademarket/internal/domain/repository"
	"github.com/sangkips/trademarket/pkg/apperror"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	uow repository.UnitOfWork
}

// NewCustomerService creates a new customer service
func NewCustomerService(uow repository.UnitOfWork) *CustomerService {
	return &CustomerService{uow: uow}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name          string    `validate:"required,max=255"`
	Surname       string    `validate:"required,max=255"`
	BirthDate     time.Time `validate:"required,birthdate"`
	DiscountValue int       `validate:"gte=0,lte=100"`
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID            uint      `validate:"required"`
	Name          string    `validate:"required,max=255"`
	Surname       string    `validate:"required,max=255"`
	BirthDate     time.Time `validate:"required,birthdate"`
	DiscountValue int       `validate:"gte=0,lte=100"`
}

// CreateCustomer stores the person and then the customer that owns it
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var customer *entity.Customer
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		person := &entity.Person{
			Name:      input.Name,
			Surname:   input.Surname,
			BirthDate: input.BirthDate,
		}
		if err := repos.Persons.Add(ctx, person); err != nil {
			return err
		}

		customer = &entity.Customer{
			PersonID:      person.ID,
			DiscountValue: input.DiscountValue,
		}
		if err := repos.Customers.Add(ctx, customer); err != nil {
			return err
		}
		customer.Person = person
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithField("customer_id", customer.ID).Info("Customer created")
	return customer, nil
}

// UpdateCustomer updates a customer and its person data
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var customer *entity.Customer
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		customer, err = repos.Customers.GetByID(ctx, input.ID)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperror.NewNotFoundError("customer")
		}

		person, err := repos.Persons.GetByID(ctx, customer.PersonID)
		if err != nil {
			return err
		}
		if person == nil {
			return apperror.NewNotFoundError("person")
		}

		person.Name = input.Name
		person.Surname = input.Surname
		person.BirthDate = input.BirthDate
		if err := repos.Persons.Update(ctx, person); err != nil {
			return err
		}

		customer.DiscountValue = input.DiscountValue
		if err := repos.Customers.Update(ctx, customer); err != nil {
			return err
		}
		customer.Person = person
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer with its person data and receipts
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*entity.Customer, error) {
	var customer *entity.Customer
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		customer, err = repos.Customers.GetByIDWithDetails(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperror.NewNotFoundError("customer")
		}
		return nil
	})
	return customer, err
}

// ListCustomers lists every customer with details
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		customers, err = repos.Customers.GetAllWithDetails(ctx)
		return err
	})
	return customers, err
}

// GetCustomersByProductID lists customers who have bought a product
func (s *CustomerService) GetCustomersByProductID(ctx context.Context, productID uint) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		customers, err = repos.Customers.ListByProduct(ctx, productID)
		return err
	})
	return customers, err
}

// DeleteCustomer deletes a customer and the person it owns
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(repos *repository.Repositories) error {
		customer, err := repos.Customers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperror.NewNotFoundError("customer")
		}

		if err := repos.Customers.DeleteByID(ctx, id); err != nil {
			return err
		}
		if err := repos.Persons.DeleteByID(ctx, customer.PersonID); err != nil {
			return err
		}

		log.WithField("customer_id", id).Info("Customer deleted")
		return nil
	})
}
