package service_test

import (
	"context"
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/trademarket/internal/domain/entity"
	"github.com/sangkips/trademarket/internal/domain/repository"
	"github.com/sangkips/trademarket/pkg/apperror"
)

// memTable is an in-memory gateway for one entity type. Stored rows never
// hold associations, matching the gorm gateway which writes scalars only.
type memTable[T any] struct {
	name   string
	rows   map[uint]T
	nextID uint
	id     func(*T) *uint
	bare   func(T) T
	store  *memStore
}

func newMemTable[T any](store *memStore, name string, id func(*T) *uint, bare func(T) T) *memTable[T] {
	return &memTable[T]{name: name, rows: map[uint]T{}, id: id, bare: bare, store: store}
}

func (t *memTable[T]) snapshot() func() {
	rows := maps.Clone(t.rows)
	nextID := t.nextID
	return func() {
		t.rows = rows
		t.nextID = nextID
	}
}

func (t *memTable[T]) get(id uint) *T {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	return &row
}

func (t *memTable[T]) all() []T {
	out := make([]T, 0, len(t.rows))
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *memTable[T]) Add(_ context.Context, e *T) error {
	if err := t.store.failure("%s: add", t.name); err != nil {
		return err
	}
	t.nextID++
	*t.id(e) = t.nextID
	t.rows[t.nextID] = t.bare(*e)
	return nil
}

func (t *memTable[T]) Update(ctx context.Context, e *T) error {
	if *t.id(e) == 0 {
		return t.Add(ctx, e)
	}
	if err := t.store.failure("%s: update", t.name); err != nil {
		return err
	}
	t.rows[*t.id(e)] = t.bare(*e)
	return nil
}

func (t *memTable[T]) DeleteByID(_ context.Context, id uint) error {
	if err := t.store.failure("%s: delete %d", t.name, id); err != nil {
		return err
	}
	delete(t.rows, id)
	return nil
}

func (t *memTable[T]) Delete(ctx context.Context, e *T) error {
	return t.DeleteByID(ctx, *t.id(e))
}

func (t *memTable[T]) GetByID(_ context.Context, id uint) (*T, error) {
	if err := t.store.failure("%s: get %d", t.name, id); err != nil {
		return nil, err
	}
	return t.get(id), nil
}

func (t *memTable[T]) GetAll(context.Context) ([]T, error) {
	if err := t.store.failure("%s: list", t.name); err != nil {
		return nil, err
	}
	return t.all(), nil
}

// memStore implements repository.UnitOfWork over memTables. A failed unit of
// work restores every table to its state before Do.
type memStore struct {
	persons    *memTable[entity.Person]
	customers  *memTable[entity.Customer]
	categories *memTable[entity.ProductCategory]
	products   *memTable[entity.Product]
	receipts   *memTable[entity.Receipt]
	details    *memTable[entity.ReceiptDetail]

	failWith  error
	commits   int
	rollbacks int
}

func newMemStore() *memStore {
	s := &memStore{}
	s.persons = newMemTable(s, "persons",
		func(p *entity.Person) *uint { return &p.ID },
		func(p entity.Person) entity.Person { return p })
	s.customers = newMemTable(s, "customers",
		func(c *entity.Customer) *uint { return &c.ID },
		func(c entity.Customer) entity.Customer { c.Person, c.Receipts = nil, nil; return c })
	s.categories = newMemTable(s, "product_categories",
		func(c *entity.ProductCategory) *uint { return &c.ID },
		func(c entity.ProductCategory) entity.ProductCategory { c.Products = nil; return c })
	s.products = newMemTable(s, "products",
		func(p *entity.Product) *uint { return &p.ID },
		func(p entity.Product) entity.Product { p.Category, p.ReceiptDetails = nil, nil; return p })
	s.receipts = newMemTable(s, "receipts",
		func(r *entity.Receipt) *uint { return &r.ID },
		func(r entity.Receipt) entity.Receipt { r.Customer, r.ReceiptDetails = nil, nil; return r })
	s.details = newMemTable(s, "receipt_details",
		func(d *entity.ReceiptDetail) *uint { return &d.ID },
		func(d entity.ReceiptDetail) entity.ReceiptDetail { d.Receipt, d.Product = nil, nil; return d })
	return s
}

func (s *memStore) failure(op string, args ...interface{}) error {
	if s.failWith == nil {
		return nil
	}
	return apperror.NewPersistenceError(s.failWith, op, args...)
}

func (s *memStore) Do(_ context.Context, fn func(repos *repository.Repositories) error) error {
	restores := []func(){
		s.persons.snapshot(), s.customers.snapshot(), s.categories.snapshot(),
		s.products.snapshot(), s.receipts.snapshot(), s.details.snapshot(),
	}

	if err := fn(s.repositories()); err != nil {
		for _, restore := range restores {
			restore()
		}
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

func (s *memStore) repositories() *repository.Repositories {
	return &repository.Repositories{
		Customers:      fakeCustomerRepo{s.customers},
		Persons:        s.persons,
		Products:       fakeProductRepo{s.products},
		Categories:     s.categories,
		Receipts:       fakeReceiptRepo{s.receipts},
		ReceiptDetails: fakeReceiptDetailRepo{s.details},
	}
}

// Eager loaders mirroring the gorm gateway's preloads.

func (s *memStore) loadCustomer(c *entity.Customer, withReceipts bool) {
	c.Person = s.persons.get(c.PersonID)
	if !withReceipts {
		return
	}
	c.Receipts = nil
	for _, r := range s.receipts.all() {
		if r.CustomerID == c.ID {
			r.ReceiptDetails = s.receiptLines(r.ID, false)
			c.Receipts = append(c.Receipts, r)
		}
	}
}

func (s *memStore) loadProduct(p *entity.Product) {
	p.Category = s.categories.get(p.ProductCategoryID)
}

func (s *memStore) receiptLines(receiptID uint, withProducts bool) []entity.ReceiptDetail {
	var lines []entity.ReceiptDetail
	for _, d := range s.details.all() {
		if d.ReceiptID != receiptID {
			continue
		}
		if withProducts {
			d.Product = s.products.get(d.ProductID)
			if d.Product != nil {
				s.loadProduct(d.Product)
			}
		}
		lines = append(lines, d)
	}
	return lines
}

func (s *memStore) loadReceipt(r *entity.Receipt) {
	r.Customer = s.customers.get(r.CustomerID)
	if r.Customer != nil {
		s.loadCustomer(r.Customer, false)
	}
	r.ReceiptDetails = s.receiptLines(r.ID, true)
}

func inPeriod(date time.Time, start, end *time.Time) bool {
	if start != nil && date.Before(*start) {
		return false
	}
	if end != nil && date.After(*end) {
		return false
	}
	return true
}

type fakeCustomerRepo struct{ *memTable[entity.Customer] }

func (r fakeCustomerRepo) GetByIDWithDetails(ctx context.Context, id uint) (*entity.Customer, error) {
	c, err := r.GetByID(ctx, id)
	if c == nil || err != nil {
		return c, err
	}
	r.store.loadCustomer(c, true)
	return c, nil
}

func (r fakeCustomerRepo) GetAllWithDetails(ctx context.Context) ([]entity.Customer, error) {
	customers, err := r.GetAll(ctx)
	for i := range customers {
		r.store.loadCustomer(&customers[i], true)
	}
	return customers, err
}

func (r fakeCustomerRepo) ListByProduct(ctx context.Context, productID uint) ([]entity.Customer, error) {
	if err := r.store.failure("customers: list by product"); err != nil {
		return nil, err
	}
	buyers := map[uint]bool{}
	for _, d := range r.store.details.all() {
		if d.ProductID != productID {
			continue
		}
		if receipt := r.store.receipts.get(d.ReceiptID); receipt != nil {
			buyers[receipt.CustomerID] = true
		}
	}

	var out []entity.Customer
	for _, c := range r.all() {
		if buyers[c.ID] {
			r.store.loadCustomer(&c, false)
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeProductRepo struct{ *memTable[entity.Product] }

func (r fakeProductRepo) GetByIDWithDetails(ctx context.Context, id uint) (*entity.Product, error) {
	p, err := r.GetByID(ctx, id)
	if p == nil || err != nil {
		return p, err
	}
	r.store.loadProduct(p)
	for _, d := range r.store.details.all() {
		if d.ProductID == id {
			p.ReceiptDetails = append(p.ReceiptDetails, d)
		}
	}
	return p, nil
}

func (r fakeProductRepo) GetAllWithDetails(ctx context.Context) ([]entity.Product, error) {
	products, err := r.GetAll(ctx)
	for i := range products {
		r.store.loadProduct(&products[i])
	}
	return products, err
}

func (r fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	var matched []entity.Product
	for _, p := range all {
		if params.CategoryID != nil && p.ProductCategoryID != *params.CategoryID {
			continue
		}
		if params.MinPrice != nil && p.Price.LessThan(*params.MinPrice) {
			continue
		}
		if params.MaxPrice != nil && p.Price.GreaterThan(*params.MaxPrice) {
			continue
		}
		r.store.loadProduct(&p)
		matched = append(matched, p)
	}

	total := int64(len(matched))
	if params.Pagination != nil {
		params.Pagination.Validate()
		from := min(params.Pagination.Offset(), len(matched))
		to := min(from+params.Pagination.PerPage, len(matched))
		matched = matched[from:to]
	}
	return matched, total, nil
}

type fakeReceiptRepo struct{ *memTable[entity.Receipt] }

func (r fakeReceiptRepo) GetByIDWithDetails(ctx context.Context, id uint) (*entity.Receipt, error) {
	receipt, err := r.GetByID(ctx, id)
	if receipt == nil || err != nil {
		return receipt, err
	}
	r.store.loadReceipt(receipt)
	return receipt, nil
}

func (r fakeReceiptRepo) GetAllWithDetails(ctx context.Context) ([]entity.Receipt, error) {
	return r.ListWithDetails(ctx, &repository.ReceiptFilterParams{})
}

func (r fakeReceiptRepo) ListWithDetails(ctx context.Context, params *repository.ReceiptFilterParams) ([]entity.Receipt, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []entity.Receipt
	for _, receipt := range all {
		if params.CustomerID != nil && receipt.CustomerID != *params.CustomerID {
			continue
		}
		if !inPeriod(receipt.OperationDate, params.StartDate, params.EndDate) {
			continue
		}
		r.store.loadReceipt(&receipt)
		out = append(out, receipt)
	}
	return out, nil
}

type fakeReceiptDetailRepo struct{ *memTable[entity.ReceiptDetail] }

func (r fakeReceiptDetailRepo) GetAllWithDetails(ctx context.Context) ([]entity.ReceiptDetail, error) {
	return r.ListWithDetails(ctx, &repository.ReceiptDetailFilterParams{})
}

func (r fakeReceiptDetailRepo) ListWithDetails(ctx context.Context, params *repository.ReceiptDetailFilterParams) ([]entity.ReceiptDetail, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []entity.ReceiptDetail
	for _, d := range all {
		receipt := r.store.receipts.get(d.ReceiptID)
		product := r.store.products.get(d.ProductID)
		if receipt == nil || product == nil {
			continue
		}
		if params.ReceiptID != nil && d.ReceiptID != *params.ReceiptID {
			continue
		}
		if params.CustomerID != nil && receipt.CustomerID != *params.CustomerID {
			continue
		}
		if params.CategoryID != nil && product.ProductCategoryID != *params.CategoryID {
			continue
		}
		if !inPeriod(receipt.OperationDate, params.StartDate, params.EndDate) {
			continue
		}
		r.store.loadProduct(product)
		d.Receipt = receipt
		d.Product = product
		out = append(out, d)
	}
	return out, nil
}

// Seed helpers write straight to the tables, outside any unit of work.

func (s *memStore) addCustomer(t *testing.T, name string, discount int) entity.Customer {
	t.Helper()
	ctx := context.Background()
	person := entity.Person{Name: name, Surname: "Smith", BirthDate: time.Date(1985, 3, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.persons.Add(ctx, &person))
	customer := entity.Customer{PersonID: person.ID, DiscountValue: discount}
	require.NoError(t, s.customers.Add(ctx, &customer))
	return customer
}

func (s *memStore) addCategory(t *testing.T, name string) entity.ProductCategory {
	t.Helper()
	category := entity.ProductCategory{CategoryName: name}
	require.NoError(t, s.categories.Add(context.Background(), &category))
	return category
}

func (s *memStore) addProduct(t *testing.T, categoryID uint, name, price string) entity.Product {
	t.Helper()
	product := entity.Product{ProductCategoryID: categoryID, ProductName: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, s.products.Add(context.Background(), &product))
	return product
}

func (s *memStore) addReceipt(t *testing.T, customerID uint, date time.Time) entity.Receipt {
	t.Helper()
	receipt := entity.Receipt{CustomerID: customerID, OperationDate: date}
	require.NoError(t, s.receipts.Add(context.Background(), &receipt))
	return receipt
}

func (s *memStore) addLine(t *testing.T, receiptID, productID uint, quantity int, discountUnitPrice string) entity.ReceiptDetail {
	t.Helper()
	price := decimal.RequireFromString(discountUnitPrice)
	detail := entity.ReceiptDetail{
		ReceiptID:         receiptID,
		ProductID:         productID,
		UnitPrice:         price,
		DiscountUnitPrice: price,
		Quantity:          quantity,
	}
	require.NoError(t, s.details.Add(context.Background(), &detail))
	return detail
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 12, 0, 0, 0, time.UTC)
}
