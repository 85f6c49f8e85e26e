package order

import (
	"net/url"
	"strings"

	"storefront/internal/errors"
)

// Handoff builds the messaging link that carries an order to the shop.
type Handoff struct {
	base        *url.URL
	destination string
	header      string
}

// NewHandoff validates the messaging base URL, e.g. "https://wa.me".
func NewHandoff(baseURL, destination, header string) (*Handoff, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "parse messaging base url %q", baseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("messaging base url %q must be absolute", baseURL)
	}

	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, errors.New("messaging destination is required")
	}

	return &Handoff{base: base, destination: destination, header: header}, nil
}

// Payload is the header, a blank line and the transcript.
func (h *Handoff) Payload(transcript string) string {
	if h.header == "" {
		return transcript
	}

	return h.header + "\n\n" + transcript
}

// URL returns <base>/<destination>?text=<percent-encoded payload>.
// Spaces are encoded as %20 rather than '+'.
func (h *Handoff) URL(transcript string) string {
	link := h.base.JoinPath(h.destination)
	link.RawQuery = "text=" + encodeComponent(h.Payload(transcript))

	return link.String()
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
