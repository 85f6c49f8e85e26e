package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

var (
	errMissingID    = errors.New("record has no id")
	errMissingName  = errors.New("record has no name")
	errMissingPrice = errors.New("record has no price")
	errNegative     = errors.New("record has a negative price")
)

// rawProduct is a product record as the backend serves it.
type rawProduct struct {
	MongoID   string           `json:"_id"`
	ID        string           `json:"id"`
	Nome      string           `json:"nome"`
	Preco     *decimal.Decimal `json:"preco"`
	Tipo      string           `json:"tipo"`
	Tamanho   json.RawMessage  `json:"tamanho"`
	Estoque   json.RawMessage  `json:"estoque"`
	Imagens   json.RawMessage  `json:"imagens"`
	Descricao string           `json:"descricao"`
}

// sizeSeparators split a size list sent as one string, e.g. "P, M, G" or "P/M/G".
var sizeSeparators = []string{",", ";", "/", "|"}

// toProduct validates the record and converts it into a product with a
// normalized stock map. The returned warnings describe tolerated defects.
func (r rawProduct) toProduct() (entity.Product, []string, error) {
	id := strings.TrimSpace(r.MongoID)
	if id == "" {
		id = strings.TrimSpace(r.ID)
	}
	if id == "" {
		return entity.Product{}, nil, errMissingID
	}

	name := strings.TrimSpace(r.Nome)
	if name == "" {
		return entity.Product{}, nil, errors.Wrapf(errMissingName, "product %s", id)
	}

	if r.Preco == nil {
		return entity.Product{}, nil, errors.Wrapf(errMissingPrice, "product %s", id)
	}
	if r.Preco.IsNegative() {
		return entity.Product{}, nil, errors.Wrapf(errNegative, "product %s", id)
	}

	var warnings []string

	stock, err := normalizeStock(r.Estoque)
	if err != nil {
		warnings = append(warnings, err.Error())
		stock = entity.SingleStock(0)
	}

	sizes, err := parseSizes(r.Tamanho)
	if err != nil {
		warnings = append(warnings, err.Error())
	}

	images, err := parseImages(r.Imagens)
	if err != nil {
		warnings = append(warnings, err.Error())
	}

	return entity.Product{
		ID:          id,
		Name:        name,
		Price:       *r.Preco,
		Category:    strings.TrimSpace(r.Tipo),
		Images:      images,
		Description: strings.TrimSpace(r.Descricao),
		Sizes:       sizes,
		Stock:       stock,
	}, warnings, nil
}

// normalizeStock turns the stock field into a stock map: a number becomes the
// sentinel quantity, absent or null becomes sentinel zero and an object is
// taken per label.
func normalizeStock(raw json.RawMessage) (entity.StockMap, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return entity.SingleStock(0), nil
	}

	switch raw[0] {
	case '{':
		var perLabel map[string]json.Number
		if err := decodeNumbers(raw, &perLabel); err != nil {
			return nil, errors.Wrap(err, "decode stock object")
		}

		stock := make(map[string]int, len(perLabel))
		for label, value := range perLabel {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			qty, err := toQuantity(value)
			if err != nil {
				return nil, errors.Wrapf(err, "stock for %q", label)
			}
			stock[label] += qty
		}

		return entity.NewStockMap(stock), nil
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, errors.Wrap(err, "decode stock string")
		}
		qty, err := toQuantity(json.Number(strings.TrimSpace(text)))
		if err != nil {
			return nil, err
		}

		return entity.SingleStock(qty), nil
	default:
		var number json.Number
		if err := decodeNumbers(raw, &number); err != nil {
			return nil, errors.Wrap(err, "decode stock number")
		}
		qty, err := toQuantity(number)
		if err != nil {
			return nil, err
		}

		return entity.SingleStock(qty), nil
	}
}

// parseSizes accepts a JSON array of labels or one delimited string.
func parseSizes(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return nil, nil
	}

	var parts []string
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &parts); err != nil {
			return nil, errors.Wrap(err, "decode size list")
		}
	} else {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, errors.Wrap(err, "decode size string")
		}
		for _, sep := range sizeSeparators[1:] {
			text = strings.ReplaceAll(text, sep, sizeSeparators[0])
		}
		parts = strings.Split(text, sizeSeparators[0])
	}

	seen := make(map[string]struct{}, len(parts))
	sizes := make([]string, 0, len(parts))
	for _, part := range parts {
		size := strings.TrimSpace(part)
		if size == "" || size == entity.SentinelLabel {
			continue
		}
		if _, dup := seen[size]; dup {
			continue
		}
		seen[size] = struct{}{}
		sizes = append(sizes, size)
	}

	return sizes, nil
}

// parseImages accepts a JSON array of references or a single string.
func parseImages(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return nil, nil
	}

	var images []string
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &images); err != nil {
			return nil, errors.Wrap(err, "decode images")
		}
	} else {
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, errors.Wrap(err, "decode image")
		}
		images = []string{single}
	}

	kept := images[:0]
	for _, img := range images {
		if img = strings.TrimSpace(img); img != "" {
			kept = append(kept, img)
		}
	}

	return kept, nil
}

// toQuantity converts a JSON number to a stock quantity, truncating fractions
// and clamping negatives to zero.
func toQuantity(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return clampQuantity(float64(i)), nil
	}

	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid stock quantity %q", string(n))
	}

	return clampQuantity(math.Trunc(f)), nil
}

func clampQuantity(f float64) int {
	if f < 0 || math.IsNaN(f) {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}

	return int(f)
}

func decodeNumbers(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	return dec.Decode(v)
}

func isNull(raw []byte) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
