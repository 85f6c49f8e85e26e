package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"storefront/internal/domain/service"
	"storefront/internal/domain/variant"

	"github.com/pkg/errors"
)

func runList(ctx context.Context, out io.Writer, provider service.CatalogProvider, typedCategories []string) error {
	products, err := provider.FetchProducts(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch catalog")
	}

	resolver := variant.NewResolver(typedCategories...)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tVARIANTS\tTOTAL\tSTATUS")

	for _, p := range products {
		variants := make([]string, 0)
		for _, label := range resolver.AvailableVariants(p) {
			variants = append(variants, fmt.Sprintf("%s=%d", label, resolver.StockFor(p, label)))
		}

		status := "available"
		if resolver.TotalStock(p) == 0 {
			status = "sold out"
		} else if resolver.IsVariantEligible(p) {
			status = "pick size"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			p.ID,
			p.Name,
			p.Price.StringFixed(2),
			p.Category,
			strings.Join(variants, " "),
			resolver.TotalStock(p),
			status,
		)
	}

	if err := w.Flush(); err != nil {
		return errors.WithStack(err)
	}

	fmt.Fprintf(out, "\n%d products\n", len(products))

	return nil
}
