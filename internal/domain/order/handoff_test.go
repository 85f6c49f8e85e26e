package order

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandoff_Validation(t *testing.T) {
	_, err := NewHandoff("wa.me", "5563984011186", "")
	require.Error(t, err)

	_, err = NewHandoff("https://wa.me", " ", "")
	require.Error(t, err)

	_, err = NewHandoff("https://wa.me/", "5563984011186", "")
	require.NoError(t, err)
}

func TestHandoff_URL(t *testing.T) {
	handoff, err := NewHandoff("https://wa.me/", "5563984011186", "*NOVO PEDIDO - Peluma Pijamas*")
	require.NoError(t, err)

	link := handoff.URL("*Total:* R$80.00")

	assert.Equal(t,
		"https://wa.me/5563984011186?text=%2ANOVO%20PEDIDO%20-%20Peluma%20Pijamas%2A%0A%0A%2ATotal%3A%2A%20R%2480.00",
		link,
	)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "*NOVO PEDIDO - Peluma Pijamas*\n\n*Total:* R$80.00", parsed.Query().Get("text"))
}

func TestHandoff_PayloadWithoutHeader(t *testing.T) {
	handoff, err := NewHandoff("https://wa.me", "1", "")
	require.NoError(t, err)

	assert.Equal(t, "body", handoff.Payload("body"))
}

func TestHandoff_EncodesNonASCII(t *testing.T) {
	handoff, err := NewHandoff("https://wa.me", "1", "")
	require.NoError(t, err)

	link := handoff.URL("• Endereço")

	assert.Contains(t, link, "%E2%80%A2%20Endere%C3%A7o")
}
