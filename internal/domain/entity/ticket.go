package entity

import "github.com/shopspring/decimal"

// TicketHeader holds the store header printed at the top of a ticket.
type TicketHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// TicketItem represents a single line item on a printed ticket.
type TicketItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// ReceiptTicket is a value object representing a printable receipt.
// It is composed from receipt data at print time and never persisted.
type ReceiptTicket struct {
	Header    TicketHeader    `json:"header"`
	ReceiptID uint            `json:"receipt_id"`
	Number    string          `json:"number"`
	Date      string          `json:"date"`
	Customer  string          `json:"customer,omitempty"`
	Status    string          `json:"status"`
	Items     []TicketItem    `json:"items"`
	SubTotal  decimal.Decimal `json:"sub_total"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}
