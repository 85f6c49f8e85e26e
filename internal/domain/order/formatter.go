// Package order renders a cart into the text that is handed to the messaging channel.
package order

import (
	"strconv"
	"strings"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const itemBullet = "• "

// Formatter renders order transcripts. It is pure and safe for concurrent use.
type Formatter struct {
	currency string
}

// NewFormatter returns a formatter prefixing amounts with currency, e.g. "R$".
func NewFormatter(currency string) *Formatter {
	return &Formatter{currency: currency}
}

// FormatMoney renders an amount with two decimals and the currency prefix.
func (f *Formatter) FormatMoney(amount decimal.Decimal) string {
	return f.currency + amount.StringFixed(2)
}

// FormatLine renders one cart line.
func (f *Formatter) FormatLine(line entity.LineItem) string {
	var b strings.Builder

	b.WriteString(line.Name)
	if line.HasVariant() {
		b.WriteString(" (Size: ")
		b.WriteString(line.Key.Variant)
		b.WriteString(")")
	}
	b.WriteString(" (x")
	b.WriteString(strconv.Itoa(line.Quantity))
	b.WriteString(") - ")
	b.WriteString(f.FormatMoney(line.LineTotal()))

	return b.String()
}

// Format renders the products, the delivery block and the total. The same
// snapshot and address always produce the same text.
func (f *Formatter) Format(snapshot cart.Snapshot, addr entity.Address) string {
	var b strings.Builder

	b.WriteString("*Produtos:*\n")
	for _, line := range snapshot.Items {
		b.WriteString(itemBullet)
		b.WriteString(f.FormatLine(line))
		b.WriteString("\n")
	}

	b.WriteString("\n*Cliente:* ")
	b.WriteString(addr.Nome)
	b.WriteString("\n*Endereço:* ")
	b.WriteString(addr.Rua)
	b.WriteString(", ")
	b.WriteString(addr.Numero)
	b.WriteString(" - ")
	b.WriteString(addr.Bairro)
	b.WriteString(", ")
	b.WriteString(addr.Cidade)

	b.WriteString("\n\n*Total:* ")
	b.WriteString(f.FormatMoney(snapshot.Total))

	return b.String()
}
