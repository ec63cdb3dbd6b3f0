package routes

import (
	"time"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"github.com/sangkips/trademarket/internal/config"
	"github.com/sangkips/trademarket/internal/infrastructure/database"
	"github.com/sangkips/trademarket/internal/presentation/cli/handler"
	"github.com/sangkips/trademarket/internal/presentation/cli/middleware"
	"github.com/sangkips/trademarket/internal/presentation/cli/response"
)

// Handlers holds all the command handlers used for command registration.
type Handlers struct {
	Customer  *handler.CustomerHandler
	Product   *handler.ProductHandler
	Receipt   *handler.ReceiptHandler
	Statistic *handler.StatisticHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the commands.
type Deps struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// Setup creates the CLI application and registers all commands.
func Setup(h *Handlers, deps *Deps) *cli.App {
	return &cli.App{
		Name:  deps.Cfg.App.Name,
		Usage: "back-office accounting for receipts, customers and products",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: middleware.Logger(migrate(deps)),
			},
			customerCommands(h),
			categoryCommands(h),
			productCommands(h),
			receiptCommands(h),
			statsCommands(h),
			printerCommands(h),
		},
	}
}

func migrate(deps *Deps) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := database.AutoMigrate(deps.DB); err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, "Database migrated successfully", nil)
	}
}

func customerCommands(h *Handlers) *cli.Command {
	personFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "first name", Required: true},
			&cli.StringFlag{Name: "surname", Usage: "last name", Required: true},
			dateFlag("birth-date", "birth date (YYYY-MM-DD)", true),
			&cli.IntFlag{Name: "discount", Usage: "discount percentage, 0-100"},
		}
	}

	return &cli.Command{
		Name:  "customer",
		Usage: "manage customers",
		Subcommands: []*cli.Command{
			{
				Name:   "create",
				Usage:  "create a customer",
				Flags:  personFlags(),
				Action: middleware.Logger(h.Customer.Create),
			},
			{
				Name:   "update",
				Usage:  "update a customer",
				Flags:  append([]cli.Flag{idFlag("customer id")}, personFlags()...),
				Action: middleware.Logger(h.Customer.Update),
			},
			{
				Name:   "list",
				Usage:  "list customers",
				Action: middleware.Logger(h.Customer.List),
			},
			{
				Name:   "get",
				Usage:  "show a customer with its receipts",
				Flags:  []cli.Flag{idFlag("customer id")},
				Action: middleware.Logger(h.Customer.Get),
			},
			{
				Name:   "by-product",
				Usage:  "list customers who bought a product",
				Flags:  []cli.Flag{&cli.UintFlag{Name: "product", Usage: "product id", Required: true}},
				Action: middleware.Logger(h.Customer.ByProduct),
			},
			{
				Name:   "delete",
				Usage:  "delete a customer",
				Flags:  []cli.Flag{idFlag("customer id")},
				Action: middleware.Logger(h.Customer.Delete),
			},
		},
	}
}

func categoryCommands(h *Handlers) *cli.Command {
	return &cli.Command{
		Name:  "category",
		Usage: "manage product categories",
		Subcommands: []*cli.Command{
			{
				Name:   "create",
				Usage:  "create a category",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "name", Usage: "category name", Required: true}},
				Action: middleware.Logger(h.Product.CreateCategory),
			},
			{
				Name:   "list",
				Usage:  "list categories",
				Action: middleware.Logger(h.Product.ListCategories),
			},
			{
				Name:  "update",
				Usage: "rename a category",
				Flags: []cli.Flag{
					idFlag("category id"),
					&cli.StringFlag{Name: "name", Usage: "category name", Required: true},
				},
				Action: middleware.Logger(h.Product.UpdateCategory),
			},
			{
				Name:   "delete",
				Usage:  "delete a category",
				Flags:  []cli.Flag{idFlag("category id")},
				Action: middleware.Logger(h.Product.DeleteCategory),
			},
		},
	}
}

func productCommands(h *Handlers) *cli.Command {
	productFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.UintFlag{Name: "category", Usage: "category id", Required: true},
			&cli.StringFlag{Name: "name", Usage: "product name", Required: true},
			&cli.StringFlag{Name: "price", Usage: "list price, e.g. 12.50", Required: true},
		}
	}

	return &cli.Command{
		Name:  "product",
		Usage: "manage products",
		Subcommands: []*cli.Command{
			{
				Name:   "create",
				Usage:  "create a product",
				Flags:  productFlags(),
				Action: middleware.Logger(h.Product.Create),
			},
			{
				Name:   "update",
				Usage:  "update a product",
				Flags:  append([]cli.Flag{idFlag("product id")}, productFlags()...),
				Action: middleware.Logger(h.Product.Update),
			},
			{
				Name:  "list",
				Usage: "list products",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "category", Usage: "only products of this category"},
					&cli.StringFlag{Name: "min-price", Usage: "minimum list price"},
					&cli.StringFlag{Name: "max-price", Usage: "maximum list price"},
					&cli.IntFlag{Name: "page", Usage: "page number", Value: 1},
					&cli.IntFlag{Name: "per-page", Usage: "page size", Value: 15},
				},
				Action: middleware.Logger(h.Product.List),
			},
			{
				Name:   "get",
				Usage:  "show a product",
				Flags:  []cli.Flag{idFlag("product id")},
				Action: middleware.Logger(h.Product.Get),
			},
			{
				Name:   "delete",
				Usage:  "delete a product",
				Flags:  []cli.Flag{idFlag("product id")},
				Action: middleware.Logger(h.Product.Delete),
			},
		},
	}
}

func receiptCommands(h *Handlers) *cli.Command {
	lineFlags := func() []cli.Flag {
		return []cli.Flag{
			idFlag("receipt id"),
			&cli.UintFlag{Name: "product", Usage: "product id", Required: true},
			&cli.IntFlag{Name: "quantity", Usage: "number of units", Value: 1},
		}
	}

	return &cli.Command{
		Name:  "receipt",
		Usage: "manage receipts",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "open a receipt for a customer",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "customer", Usage: "customer id", Required: true},
					dateFlag("date", "operation date (YYYY-MM-DD), defaults to now", false),
					&cli.StringSliceFlag{Name: "item", Usage: "line item as productID:quantity, repeatable"},
				},
				Action: middleware.Logger(h.Receipt.Create),
			},
			{
				Name:   "get",
				Usage:  "show a receipt with its line items",
				Flags:  []cli.Flag{idFlag("receipt id")},
				Action: middleware.Logger(h.Receipt.Get),
			},
			{
				Name:   "list",
				Usage:  "list receipts",
				Action: middleware.Logger(h.Receipt.List),
			},
			{
				Name:  "update",
				Usage: "change a receipt's customer or operation date",
				Flags: []cli.Flag{
					idFlag("receipt id"),
					&cli.UintFlag{Name: "customer", Usage: "new customer id"},
					dateFlag("date", "new operation date (YYYY-MM-DD)", false),
				},
				Action: middleware.Logger(h.Receipt.Update),
			},
			{
				Name:   "add-product",
				Usage:  "add units of a product to a receipt",
				Flags:  lineFlags(),
				Action: middleware.Logger(h.Receipt.AddProduct),
			},
			{
				Name:   "remove-product",
				Usage:  "remove units of a product from a receipt",
				Flags:  lineFlags(),
				Action: middleware.Logger(h.Receipt.RemoveProduct),
			},
			{
				Name:   "checkout",
				Usage:  "mark a receipt as checked out",
				Flags:  []cli.Flag{idFlag("receipt id")},
				Action: middleware.Logger(h.Receipt.CheckOut),
			},
			{
				Name:   "total",
				Usage:  "amount to pay for a receipt",
				Flags:  []cli.Flag{idFlag("receipt id")},
				Action: middleware.Logger(h.Receipt.Total),
			},
			{
				Name:   "details",
				Usage:  "list a receipt's line items",
				Flags:  []cli.Flag{idFlag("receipt id")},
				Action: middleware.Logger(h.Receipt.Details),
			},
			{
				Name:   "period",
				Usage:  "list receipts within a date range",
				Flags:  periodFlags(),
				Action: middleware.Logger(h.Receipt.Period),
			},
			{
				Name:   "print",
				Usage:  "print a receipt ticket",
				Flags:  []cli.Flag{idFlag("receipt id")},
				Action: middleware.Logger(h.Printer.PrintReceipt),
			},
			{
				Name:   "delete",
				Usage:  "delete a receipt and its line items",
				Flags:  []cli.Flag{idFlag("receipt id")},
				Action: middleware.Logger(h.Receipt.Delete),
			},
		},
	}
}

func statsCommands(h *Handlers) *cli.Command {
	nFlag := &cli.IntFlag{Name: "n", Usage: "number of results", Value: 5}

	return &cli.Command{
		Name:  "stats",
		Usage: "sales statistics",
		Subcommands: []*cli.Command{
			{
				Name:   "popular-products",
				Usage:  "products sold in the largest quantities",
				Flags:  []cli.Flag{nFlag},
				Action: middleware.Logger(h.Statistic.PopularProducts),
			},
			{
				Name:  "customer-products",
				Usage: "a customer's most purchased products",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "customer", Usage: "customer id", Required: true},
					nFlag,
				},
				Action: middleware.Logger(h.Statistic.CustomerProducts),
			},
			{
				Name:   "valuable-customers",
				Usage:  "customers with the highest spend within a date range",
				Flags:  append(periodFlags(), nFlag),
				Action: middleware.Logger(h.Statistic.ValuableCustomers),
			},
			{
				Name:  "category-income",
				Usage: "income of a category within a date range",
				Flags: append(periodFlags(),
					&cli.UintFlag{Name: "category", Usage: "category id", Required: true},
				),
				Action: middleware.Logger(h.Statistic.CategoryIncome),
			},
		},
	}
}

func printerCommands(h *Handlers) *cli.Command {
	return &cli.Command{
		Name:  "printer",
		Usage: "receipt printer",
		Subcommands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "show the configured printer",
				Action: middleware.Logger(h.Printer.GetStatus),
			},
		},
	}
}

func idFlag(usage string) cli.Flag {
	return &cli.UintFlag{Name: "id", Usage: usage, Required: true}
}

func dateFlag(name, usage string, required bool) cli.Flag {
	return &cli.TimestampFlag{
		Name:     name,
		Usage:    usage,
		Layout:   handler.DateLayout,
		Timezone: time.UTC,
		Required: required,
	}
}

func periodFlags() []cli.Flag {
	return []cli.Flag{
		dateFlag("from", "start date (YYYY-MM-DD), inclusive", true),
		dateFlag("to", "end date (YYYY-MM-DD), inclusive", true),
	}
}
