package handler

import (
	"github.com/urfave/cli/v2"

	"github.com/sangkips/trademarket/internal/application/service"
	"github.com/sangkips/trademarket/internal/domain/entity"
	"github.com/sangkips/trademarket/internal/presentation/cli/response"
)

// PrinterHandler handles printer commands.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// PrintResult is the payload of the print command.
type PrintResult struct {
	Receipt *entity.ReceiptTicket `json:"receipt"`
	Warning string                `json:"warning,omitempty"`
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *cli.Context) error {
	return response.Success(c, "Printer status retrieved", h.printerService.GetStatus())
}

// PrintReceipt prints a receipt ticket.
func (h *PrinterHandler) PrintReceipt(c *cli.Context) error {
	ticket, err := h.printerService.PrintReceipt(c.Context, c.Uint("id"))
	if err != nil {
		// The ticket was built but the printer failed
		if ticket != nil {
			return response.Success(c, "Receipt generated but printing failed", PrintResult{
				Receipt: ticket,
				Warning: err.Error(),
			})
		}
		return response.Error(c, err)
	}
	return response.Success(c, "Receipt printed successfully", PrintResult{Receipt: ticket})
}
