package services_test

import (
	"testing"

	"gamestore/internal/repositories"
	"gamestore/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestBuildProductFilter_NoParameters(t *testing.T) {
	filter := services.BuildProductFilter(map[string]string{})
	assert.Equal(t, repositories.ProductFilter{}, filter)
}

func TestBuildProductFilter_AllParameters(t *testing.T) {
	filter := services.BuildProductFilter(map[string]string{
		"type":        "accessories",
		"console":     "PS5",
		"genre":       "RPG",
		"minPrice":    "50",
		"maxPrice":    "100",
		"inStock":     "true",
		"multiplayer": "true",
	})

	assert.Equal(t, "accessories", filter.Type)
	assert.Equal(t, "PS5", filter.Console)
	assert.Equal(t, "RPG", filter.Genre)
	if assert.NotNil(t, filter.MinPrice) {
		assert.Equal(t, 50.0, *filter.MinPrice)
	}
	if assert.NotNil(t, filter.MaxPrice) {
		assert.Equal(t, 100.0, *filter.MaxPrice)
	}
	assert.True(t, filter.InStock)
	assert.True(t, filter.Multiplayer)
}

func TestBuildProductFilter_MalformedNumbersIgnored(t *testing.T) {
	filter := services.BuildProductFilter(map[string]string{
		"minPrice": "abc",
		"maxPrice": "12.5x",
	})

	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
}

func TestBuildProductFilter_BooleanLiterals(t *testing.T) {
	// Only the literal "true" activates the stock and multiplayer conditions.
	for _, value := range []string{"false", "1", "TRUE", "yes"} {
		filter := services.BuildProductFilter(map[string]string{
			"inStock":     value,
			"multiplayer": value,
		})
		assert.False(t, filter.InStock, "inStock=%q", value)
		assert.False(t, filter.Multiplayer, "multiplayer=%q", value)
	}
}
