// Package entity contains the core business objects of the storefront.
package entity

import "strings"

// Address is the delivery destination typed by the shopper at checkout.
// Field names follow the order form, which is in Portuguese.
type Address struct {
	Nome   string `json:"nome"`   // Customer name.
	Rua    string `json:"rua"`    // Street.
	Numero string `json:"numero"` // House number.
	Bairro string `json:"bairro"` // Neighbourhood.
	Cidade string `json:"cidade"` // City.
}

// Normalized returns a copy with surrounding whitespace removed from every field.
func (a Address) Normalized() Address {
	return Address{
		Nome:   strings.TrimSpace(a.Nome),
		Rua:    strings.TrimSpace(a.Rua),
		Numero: strings.TrimSpace(a.Numero),
		Bairro: strings.TrimSpace(a.Bairro),
		Cidade: strings.TrimSpace(a.Cidade),
	}
}

// IsComplete reports whether every field carries a value.
func (a Address) IsComplete() bool {
	n := a.Normalized()

	return n.Nome != "" && n.Rua != "" && n.Numero != "" && n.Bairro != "" && n.Cidade != ""
}
