package services

import (
	"math"
	"strconv"
	"strings"

	"gamestore/internal/models"
)

// NormalizeProduct reconciles synonymous field names and coerces types in a
// raw client payload, producing a canonical record for the validator:
//
//   - description falls back to the alternate-language "descripcion"
//   - price falls back to "precio"; string values are parsed, an unparsable
//     string becomes NaN (rejected by the validator, not here)
//   - stock defaults to 0 when absent; string values are parsed as integers
//   - type outside the enumeration is replaced by "consoles"
//   - imageUrl defaults to the placeholder image
//   - every other field passes through unchanged
//
// The transformation is pure and idempotent: normalizing an already
// normalized record yields the same record.
func NormalizeProduct(raw map[string]any) map[string]any {
	record := make(map[string]any, len(raw))
	for key, value := range raw {
		switch key {
		case "description", "descripcion", "price", "precio", "stock", "type", "imageUrl":
			// reconciled below
		default:
			record[key] = value
		}
	}

	description, _ := raw["description"].(string)
	if description == "" {
		description, _ = raw["descripcion"].(string)
	}
	record["description"] = strings.TrimSpace(description)

	price, ok := raw["price"]
	if !ok {
		price, ok = raw["precio"]
	}
	if ok {
		record["price"] = coerceFloat(price)
	}

	stock, ok := raw["stock"]
	if !ok {
		record["stock"] = float64(0)
	} else {
		record["stock"] = coerceInt(stock)
	}

	productType, _ := raw["type"].(string)
	if models.IsAllowedType(productType) {
		record["type"] = productType
	} else {
		record["type"] = models.TypeConsoles
	}

	imageURL, _ := raw["imageUrl"].(string)
	if imageURL == "" {
		imageURL = models.PlaceholderImageURL
	}
	record["imageUrl"] = imageURL

	return record
}

// parseFloat parses a numeric string. It is the single parsing routine for
// floating-point client input, shared by the normalizer and the query
// filter builder.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseInt parses an integer string.
func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// coerceFloat turns a raw JSON value into a float64. Unparsable or
// non-numeric values become NaN so the validator can reject them.
func coerceFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		n, err := parseFloat(v)
		if err != nil {
			return math.NaN()
		}
		return n
	default:
		return math.NaN()
	}
}

// coerceInt turns a raw JSON value into an integral float64, keeping NaN
// available as the failure marker.
func coerceInt(value any) float64 {
	switch v := value.(type) {
	case float64:
		return math.Trunc(v)
	case int:
		return float64(v)
	case string:
		n, err := parseInt(v)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	default:
		return math.NaN()
	}
}
