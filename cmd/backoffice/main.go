package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/sangkips/trademarket/internal/application/service"
	"github.com/sangkips/trademarket/internal/config"
	"github.com/sangkips/trademarket/internal/infrastructure/database"
	"github.com/sangkips/trademarket/internal/infrastructure/repository"
	"github.com/sangkips/trademarket/internal/presentation/cli/handler"
	"github.com/sangkips/trademarket/internal/presentation/cli/routes"
	"github.com/sangkips/trademarket/pkg/logger"
	"github.com/sangkips/trademarket/pkg/printer"
)

func main() {
	os.Exit(run(os.Args))
}

// run wires the application and executes one command. It returns the process
// exit code instead of exiting so deferred cleanup always runs.
func run(args []string) int {
	// Load configuration
	cfg := config.Load()
	logger.Setup(&cfg.Log)

	// Connect to database
	db, err := database.Open(&cfg.Database, logger.GormLevel())
	if err != nil {
		log.Errorf("Failed to connect to database: %v", err)
		return 1
	}

	// Initialize unit of work
	uow := repository.NewUnitOfWork(db)

	// Initialize receipt printer
	receiptPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
		Out:     os.Stdout,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to initialize printer, printing disabled")
		receiptPrinter = printer.NewNullPrinter()
	}
	defer receiptPrinter.Close()

	// Initialize services
	customerService := service.NewCustomerService(uow)
	productService := service.NewProductService(uow)
	receiptService := service.NewReceiptService(uow)
	statisticService := service.NewStatisticService(uow)
	printerService := service.NewPrinterService(receiptPrinter, uow, &cfg.Printer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Customer:  handler.NewCustomerHandler(customerService),
		Product:   handler.NewProductHandler(productService),
		Receipt:   handler.NewReceiptHandler(receiptService),
		Statistic: handler.NewStatisticHandler(statisticService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	app := routes.Setup(handlers, &routes.Deps{Cfg: cfg, DB: db})
	app.ExitErrHandler = func(*cli.Context, error) {}

	log.WithField("env", cfg.App.Env).Debugf("Starting %s", cfg.App.Name)

	return exitCode(app.Run(args))
}

// exitCode maps a command error to a process exit code. Errors already
// reported to the user carry their own code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			log.Error(msg)
		}
		return exitErr.ExitCode()
	}
	log.Errorf("Command failed: %v", err)
	return 1
}
