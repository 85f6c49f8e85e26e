package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/order"
	"storefront/internal/domain/service"
	"storefront/internal/domain/variant"

	"github.com/pkg/errors"
)

type itemSpec struct {
	productID string
	variant   string
	quantity  int
}

// itemList collects repeated --item flags.
type itemList []itemSpec

func (l *itemList) String() string {
	parts := make([]string, 0, len(*l))
	for _, item := range *l {
		parts = append(parts, fmt.Sprintf("%s:%s:%d", item.productID, item.variant, item.quantity))
	}

	return strings.Join(parts, ",")
}

func (l *itemList) Set(value string) error {
	item, err := parseItem(value)
	if err != nil {
		return err
	}

	*l = append(*l, item)

	return nil
}

// parseItem reads id[:variant[:qty]]. The quantity defaults to 1.
func parseItem(value string) (itemSpec, error) {
	parts := strings.Split(value, ":")
	if len(parts) > 3 || strings.TrimSpace(parts[0]) == "" {
		return itemSpec{}, errors.Errorf("invalid item %q, want id[:variant[:qty]]", value)
	}

	item := itemSpec{productID: strings.TrimSpace(parts[0]), quantity: 1}
	if len(parts) > 1 {
		item.variant = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		qty, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || qty <= 0 {
			return itemSpec{}, errors.Errorf("invalid quantity in item %q", value)
		}
		item.quantity = qty
	}

	return item, nil
}

type addressFlags struct {
	nome   *string
	rua    *string
	numero *string
	bairro *string
	cidade *string
}

func registerAddressFlags(cmd *flag.FlagSet) addressFlags {
	return addressFlags{
		nome:   cmd.String("nome", "", "Customer name"),
		rua:    cmd.String("rua", "", "Street"),
		numero: cmd.String("numero", "", "House number"),
		bairro: cmd.String("bairro", "", "Neighbourhood"),
		cidade: cmd.String("cidade", "", "City"),
	}
}

func (a addressFlags) value() entity.Address {
	return entity.Address{
		Nome:   *a.nome,
		Rua:    *a.rua,
		Numero: *a.numero,
		Bairro: *a.bairro,
		Cidade: *a.cidade,
	}
}

type quoteOptions struct {
	typedCategories  []string
	items            []itemSpec
	address          entity.Address
	currency         string
	header           string
	messagingBaseURL string
	destination      string
}

func runQuote(ctx context.Context, out io.Writer, provider service.CatalogProvider, opts quoteOptions) error {
	handoff, err := order.NewHandoff(opts.messagingBaseURL, opts.destination, opts.header)
	if err != nil {
		return err
	}

	products, err := provider.FetchProducts(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch catalog")
	}

	catalog := entity.NewCatalog(products, time.Now())
	resolver := variant.NewResolver(opts.typedCategories...)
	store := cart.NewStore()

	for _, item := range opts.items {
		p, ok := catalog.Find(item.productID)
		if !ok {
			return errors.Errorf("product %s not found", item.productID)
		}

		label, err := resolver.ResolveLabel(p, item.variant)
		if err != nil {
			return err
		}

		result := store.Add(p, label, item.quantity)
		switch {
		case result.Outcome == cart.OutcomeRejected:
			fmt.Fprintf(out, "skipped %s: out of stock\n", result.Key)
		case result.Clamped:
			fmt.Fprintf(out, "clamped %s: requested %d, kept %d\n", result.Key, result.Requested, result.ClampedTo)
		}
	}

	snapshot := store.Snapshot()
	if snapshot.IsEmpty() {
		return errors.New("cart is empty, nothing to quote")
	}

	transcript := order.NewFormatter(opts.currency).Format(snapshot, opts.address.Normalized())

	fmt.Fprintln(out, handoff.Payload(transcript))
	fmt.Fprintln(out)
	fmt.Fprintln(out, handoff.URL(transcript))

	return nil
}
