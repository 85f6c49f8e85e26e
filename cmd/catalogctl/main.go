package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/catalog"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace/noop"
)

// Supported subcommands:
// - list:  Fetch the catalog and print products with their variants
// - quote: Build a cart offline and print the order transcript and hand-off link

func main() {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	quoteCmd := flag.NewFlagSet("quote", flag.ExitOnError)

	listBackend := registerBackendFlags(listCmd)

	quoteBackend := registerBackendFlags(quoteCmd)
	quoteItems := itemList{}
	quoteCmd.Var(&quoteItems, "item", "Cart item as id[:variant[:qty]], repeatable")
	quoteAddress := registerAddressFlags(quoteCmd)
	quoteCurrency := quoteCmd.String("currency", "R$", "Currency prefix for amounts")
	quoteHeader := quoteCmd.String("header", "*NOVO PEDIDO - Peluma Pijamas*", "First line of the hand-off message")
	quoteMessaging := quoteCmd.String("messaging-base-url", "https://wa.me", "Messaging link base URL")
	quoteDestination := quoteCmd.String("destination", "", "Shop phone number receiving the order")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := catalogctlFlags{
		List: listFlags{
			cmd:     listCmd,
			backend: listBackend,
		},
		Quote: quoteFlags{
			cmd:              quoteCmd,
			backend:          quoteBackend,
			items:            &quoteItems,
			address:          quoteAddress,
			currency:         quoteCurrency,
			header:           quoteHeader,
			messagingBaseURL: quoteMessaging,
			destination:      quoteDestination,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type catalogctlFlags struct {
	List  listFlags
	Quote quoteFlags
}

type backendFlags struct {
	baseURL   *string
	path      *string
	token     *string
	tokenFile *string
	timeout   *time.Duration
	typed     *string
	verbose   *bool
}

type listFlags struct {
	cmd     *flag.FlagSet
	backend backendFlags
}

type quoteFlags struct {
	cmd              *flag.FlagSet
	backend          backendFlags
	items            *itemList
	address          addressFlags
	currency         *string
	header           *string
	messagingBaseURL *string
	destination      *string
}

func registerBackendFlags(cmd *flag.FlagSet) backendFlags {
	return backendFlags{
		baseURL:   cmd.String("base-url", "", "Catalog backend base URL (required)"),
		path:      cmd.String("path", "/produtos", "Product list path"),
		token:     cmd.String("token", "", "Bearer token for the backend"),
		tokenFile: cmd.String("token-file", "", "File holding the bearer token"),
		timeout:   cmd.Duration("timeout", 10*time.Second, "Request timeout"),
		typed:     cmd.String("typed", strings.Join(config.DefaultTypedCategories, ","), "Comma-separated categories with size variants"),
		verbose:   cmd.Bool("v", false, "Log debug output to stderr"),
	}
}

func (b backendFlags) typedCategories() []string {
	var categories []string
	for _, category := range strings.Split(*b.typed, ",") {
		if category = strings.TrimSpace(category); category != "" {
			categories = append(categories, category)
		}
	}

	return categories
}

func (b backendFlags) logger() *slog.Logger {
	level := slog.LevelWarn
	if *b.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// provider builds the same HTTP catalog client the API server uses.
func (b backendFlags) provider() (service.CatalogProvider, error) {
	if *b.baseURL == "" {
		return nil, errors.New("--base-url flag is required")
	}

	cfg := &config.Config{
		Catalog: &config.CatalogConfig{
			BaseURL:   *b.baseURL,
			Path:      *b.path,
			Timeout:   *b.timeout,
			Token:     *b.token,
			TokenFile: *b.tokenFile,
		},
	}
	logger := b.logger()

	return catalog.NewHTTPProvider(catalog.ProviderParams{
		Config:         cfg,
		Tokens:         auth.NewTokenSource(cfg, logger),
		Logger:         logger,
		TracerProvider: noop.NewTracerProvider(),
	})
}

func runSubcommand(ctx context.Context, flags *catalogctlFlags) error {
	switch os.Args[1] {
	case "list":
		return handleList(ctx, flags)
	case "quote":
		return handleQuote(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleList(ctx context.Context, flags *catalogctlFlags) error {
	if err := flags.List.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse list flags")
	}

	provider, err := flags.List.backend.provider()
	if err != nil {
		return err
	}

	return runList(ctx, os.Stdout, provider, flags.List.backend.typedCategories())
}

func handleQuote(ctx context.Context, flags *catalogctlFlags) error {
	if err := flags.Quote.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse quote flags")
	}

	if len(*flags.Quote.items) == 0 {
		return errors.New("at least one --item is required for quote command")
	}
	if *flags.Quote.destination == "" {
		return errors.New("--destination flag is required for quote command")
	}

	provider, err := flags.Quote.backend.provider()
	if err != nil {
		return err
	}

	return runQuote(ctx, os.Stdout, provider, quoteOptions{
		typedCategories:  flags.Quote.backend.typedCategories(),
		items:            *flags.Quote.items,
		address:          flags.Quote.address.value(),
		currency:         *flags.Quote.currency,
		header:           *flags.Quote.header,
		messagingBaseURL: *flags.Quote.messagingBaseURL,
		destination:      *flags.Quote.destination,
	})
}

func printUsage() {
	fmt.Println("Usage: catalogctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list     Fetch the catalog and print products, variants and stock")
	fmt.Println("  quote    Build a cart offline and print the order message and link")
	fmt.Println("")
	fmt.Println("Use 'catalogctl <command> -h' for more information about a command.")
}
