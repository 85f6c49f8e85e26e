package cart

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type cartTestContext struct {
	store    *Store
	products map[string]entity.Product
	last     MutationResult
}

func (tc *cartTestContext) reset() {
	tc.store = NewStore()
	tc.products = make(map[string]entity.Product)
	tc.last = MutationResult{}
}

func (tc *cartTestContext) aProductWithStock(id, name, price string, table *godog.Table) error {
	stock := make(map[string]int)
	for _, row := range table.Rows[1:] {
		qty, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}
		stock[row.Cells[0].Value] = qty
	}

	amount, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}

	tc.products[id] = entity.Product{ID: id, Name: name, Price: amount, Category: "typed", Stock: entity.NewStockMap(stock)}

	return nil
}

func (tc *cartTestContext) product(id string) (entity.Product, error) {
	p, ok := tc.products[id]
	if !ok {
		return entity.Product{}, fmt.Errorf("unknown product %q", id)
	}

	return p, nil
}

func (tc *cartTestContext) iAdd(qty int, id, variant string) error {
	p, err := tc.product(id)
	if err != nil {
		return err
	}
	tc.last = tc.store.Add(p, variant, qty)

	return nil
}

func (tc *cartTestContext) iSetQuantity(id, variant string, qty int) error {
	tc.last = tc.store.SetQuantity(entity.LineKey{ProductID: id, Variant: variant}, qty)

	return nil
}

func (tc *cartTestContext) iRemove(id, variant string) error {
	tc.last = tc.store.Remove(entity.LineKey{ProductID: id, Variant: variant})

	return nil
}

func (tc *cartTestContext) iClearTheCart() error {
	tc.store.Clear()

	return nil
}

func (tc *cartTestContext) theOutcomeIs(outcome string) error {
	if string(tc.last.Outcome) != outcome {
		return fmt.Errorf("expected outcome %s, got %s", outcome, tc.last.Outcome)
	}

	return nil
}

func (tc *cartTestContext) theCartHasLines(n int) error {
	if got := tc.store.Len(); got != n {
		return fmt.Errorf("expected %d lines, got %d", n, got)
	}

	return nil
}

func (tc *cartTestContext) theLineHasQuantity(id, variant string, qty int) error {
	line, ok := tc.store.Line(entity.LineKey{ProductID: id, Variant: variant})
	if !ok {
		return fmt.Errorf("line %s/%s not in cart", id, variant)
	}
	if line.Quantity != qty {
		return fmt.Errorf("expected quantity %d, got %d", qty, line.Quantity)
	}

	return nil
}

func (tc *cartTestContext) theMutationWasClampedTo(qty int) error {
	if !tc.last.Clamped || tc.last.ClampedTo != qty {
		return fmt.Errorf("expected clamp to %d, got %+v", qty, tc.last)
	}

	return nil
}

func (tc *cartTestContext) theCartTotalIs(amount string) error {
	want, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	if got := tc.store.Total(); !got.Equal(want) {
		return fmt.Errorf("expected total %s, got %s", want, got)
	}

	return nil
}

func (tc *cartTestContext) theItemCountIs(n int) error {
	if got := tc.store.ItemCount(); got != n {
		return fmt.Errorf("expected item count %d, got %d", n, got)
	}

	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()

		return ctx, nil
	})

	ctx.Step(`^a product "([^"]*)" named "([^"]*)" priced ([0-9.]+) with stock:$`, tc.aProductWithStock)
	ctx.Step(`^I add (-?\d+) of "([^"]*)" variant "([^"]*)"$`, tc.iAdd)
	ctx.Step(`^I set the quantity of "([^"]*)" variant "([^"]*)" to (-?\d+)$`, tc.iSetQuantity)
	ctx.Step(`^I remove "([^"]*)" variant "([^"]*)"$`, tc.iRemove)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)
	ctx.Step(`^the mutation outcome is "([^"]*)"$`, tc.theOutcomeIs)
	ctx.Step(`^the cart has (\d+) lines$`, tc.theCartHasLines)
	ctx.Step(`^the line "([^"]*)" variant "([^"]*)" has quantity (\d+)$`, tc.theLineHasQuantity)
	ctx.Step(`^the mutation was clamped to (\d+)$`, tc.theMutationWasClampedTo)
	ctx.Step(`^the cart total is ([0-9.]+)$`, tc.theCartTotalIs)
	ctx.Step(`^the cart item count is (\d+)$`, tc.theItemCountIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
