package services

import (
	"math"
	"strings"

	"gamestore/internal/models"
)

// ValidateProduct runs the full battery of field checks against a normalized
// record and returns every violation as a human-readable message, in a fixed
// order. It never short-circuits: a record failing several rules yields all
// of their messages. An empty slice means the record is valid.
//
// The required-vs-negative checks for price and stock are independent: a
// present but negative value triggers only the negative-value message.
func ValidateProduct(record map[string]any) []string {
	var violations []string

	name, ok := record["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		violations = append(violations, "name is required and must be a non-empty string")
	}

	price, ok := record["price"].(float64)
	if !ok || math.IsNaN(price) {
		violations = append(violations, "price is required and must be a valid number")
	} else if price < 0 {
		violations = append(violations, "price cannot be negative")
	}

	stock, ok := record["stock"].(float64)
	if !ok || math.IsNaN(stock) {
		violations = append(violations, "stock is required and must be a valid number")
	} else if stock < 0 {
		violations = append(violations, "stock cannot be negative")
	}

	// Unreachable after NormalizeProduct, which substitutes a default, but
	// the validator stays independently correct.
	productType, _ := record["type"].(string)
	if !models.IsAllowedType(productType) {
		violations = append(violations, "type must be one of: "+strings.Join(models.AllowedTypes, ", "))
	}

	return violations
}
