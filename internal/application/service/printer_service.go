package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/sangkips/trademarket/internal/config"
	"github.com/sangkips/trademarket/internal/domain/entity"
	"github.com/sangkips/trademarket/internal/domain/repository"
	"github.com/sangkips/trademarket/pkg/printer"
	"github.com/sangkips/trademarket/pkg/utils"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	uow         repository.UnitOfWork
	printerType string
	storeName   string
	width       int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, uow repository.UnitOfWork, cfg *config.PrinterConfig) *PrinterService {
	return &PrinterService{
		printer:     p,
		uow:         uow,
		printerType: cfg.Type,
		storeName:   cfg.StoreName,
		width:       cfg.Width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != printer.TypeNone && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// BuildTicket composes the printable ticket of a receipt. Items are shown at
// their discounted unit price; the subtotal uses list prices.
func (s *PrinterService) BuildTicket(ctx context.Context, receiptID uint) (*entity.ReceiptTicket, error) {
	var receipt *entity.Receipt
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		receipt, err = findReceiptWithDetails(ctx, repos, receiptID)
		return err
	})
	if err != nil {
		return nil, err
	}

	ticket := &entity.ReceiptTicket{
		Header:    entity.TicketHeader{StoreName: s.storeName},
		ReceiptID: receipt.ID,
		Number:    utils.ReceiptNo(receipt.ID, receipt.OperationDate),
		Date:      receipt.OperationDate.Format("2006-01-02 15:04"),
		Customer:  receipt.Customer.DisplayName(),
		Status:    receipt.State().String(),
		Items:     make([]entity.TicketItem, 0, len(receipt.ReceiptDetails)),
		SubTotal:  decimal.Zero,
		Total:     receipt.Total(),
	}

	for i := range receipt.ReceiptDetails {
		d := &receipt.ReceiptDetails[i]
		item := entity.TicketItem{
			Name:      "Product",
			Quantity:  d.Quantity,
			UnitPrice: d.DiscountUnitPrice,
			Total:     d.LineTotal(),
		}
		if d.Product != nil && d.Product.ProductName != "" {
			item.Name = d.Product.ProductName
		}
		ticket.Items = append(ticket.Items, item)
		ticket.SubTotal = ticket.SubTotal.Add(d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity))))
	}
	ticket.Discount = ticket.SubTotal.Sub(ticket.Total)

	return ticket, nil
}

// PrintReceipt builds a receipt's ticket and sends it to the printer.
// The ticket is returned even when printing fails.
func (s *PrinterService) PrintReceipt(ctx context.Context, receiptID uint) (*entity.ReceiptTicket, error) {
	ticket, err := s.BuildTicket(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	data := FormatTicket(ticket, s.width, s.printerType == printer.TypeStdout)
	if err := s.printer.Print(data); err != nil {
		log.WithError(err).WithField("receipt_id", receiptID).Error("Printer error")
		return ticket, fmt.Errorf("failed to print receipt: %w", err)
	}

	return ticket, nil
}

// FormatTicket lays a ReceiptTicket out for a width-character printer. A plain
// ticket carries the same text without ESC/POS control sequences.
func FormatTicket(t *entity.ReceiptTicket, width int, plain bool) []byte {
	doc := printer.NewDocument(width)
	if plain {
		doc = printer.NewPlainDocument(width)
	}

	// Header
	doc.Align(printer.AlignCenter).
		Bold(true).
		Size(printer.SizeDouble).
		Line(t.Header.StoreName).
		Size(printer.SizeNormal).
		Bold(false)
	if t.Header.Address != "" {
		doc.Line(t.Header.Address)
	}
	if t.Header.Phone != "" {
		doc.Line(t.Header.Phone)
	}

	doc.Align(printer.AlignLeft).
		Rule('-').
		Columns("Receipt:", t.Number).
		Columns("Date:", t.Date)
	if t.Customer != "" {
		doc.Columns("Customer:", t.Customer)
	}
	doc.Columns("Status:", t.Status).
		Rule('-')

	// Items
	for _, item := range t.Items {
		doc.Columns(fmt.Sprintf("%dx %s", item.Quantity, item.Name), printer.Money(item.Total))
		if item.Quantity > 1 {
			doc.Linef("  @ %s each", printer.Money(item.UnitPrice))
		}
	}
	doc.Rule('-')

	// Totals
	doc.Columns("Subtotal:", printer.Money(t.SubTotal))
	if t.Discount.IsPositive() {
		doc.Columns("Discount:", "-"+printer.Money(t.Discount))
	}
	doc.Bold(true).
		Columns("TOTAL:", printer.Money(t.Total)).
		Bold(false).
		Rule('-')

	// Footer
	doc.Align(printer.AlignCenter).
		Feed(1).
		Line("Thank you for your business!").
		Align(printer.AlignLeft).
		Feed(4).
		Cut(true)

	return doc.Bytes()
}
