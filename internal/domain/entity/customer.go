package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Person holds the personal data owned by a customer
type Person struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Surname   string    `gorm:"size:255;not null" json:"surname"`
	BirthDate time.Time `gorm:"not null" json:"birth_date"`
}

// TableName returns the table name for the Person model
func (Person) TableName() string {
	return "persons"
}

// FullName joins name and surname with a single space.
func (p *Person) FullName() string {
	return p.Name + " " + p.Surname
}

// Customer represents a buyer with a percentage discount
type Customer struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	PersonID      uint `gorm:"not null;index" json:"person_id"`
	DiscountValue int  `gorm:"not null;default:0" json:"discount_value"`

	// Relationships
	Person   *Person   `gorm:"foreignKey:PersonID" json:"person,omitempty"`
	Receipts []Receipt `gorm:"foreignKey:CustomerID" json:"receipts,omitempty"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// DiscountedPrice applies the customer's percentage discount to a unit price:
// price - discount*price/100. Division by 100 is exact in decimal.
func (c *Customer) DiscountedPrice(price decimal.Decimal) decimal.Decimal {
	if c == nil || c.DiscountValue == 0 {
		return price
	}
	discount := price.Mul(decimal.NewFromInt(int64(c.DiscountValue))).Div(decimal.NewFromInt(100))
	return price.Sub(discount)
}

// DisplayName returns "Name Surname" when the person is loaded.
func (c *Customer) DisplayName() string {
	if c == nil || c.Person == nil {
		return ""
	}
	return c.Person.FullName()
}
