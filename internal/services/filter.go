package services

import (
	"log"

	"gamestore/internal/repositories"
)

// BuildProductFilter translates optional query parameters into the
// structured predicate applied to catalog reads. Absent parameters
// contribute no condition. Malformed numeric parameters are ignored
// rather than silently propagating a non-number into the filter.
func BuildProductFilter(query map[string]string) repositories.ProductFilter {
	filter := repositories.ProductFilter{
		Type:    query["type"],
		Console: query["console"],
		Genre:   query["genre"],
	}

	if raw := query["minPrice"]; raw != "" {
		if v, err := parseFloat(raw); err == nil {
			filter.MinPrice = &v
		} else {
			log.Printf("Ignoring malformed minPrice %q: %v", raw, err)
		}
	}
	if raw := query["maxPrice"]; raw != "" {
		if v, err := parseFloat(raw); err == nil {
			filter.MaxPrice = &v
		} else {
			log.Printf("Ignoring malformed maxPrice %q: %v", raw, err)
		}
	}

	filter.InStock = query["inStock"] == "true"
	filter.Multiplayer = query["multiplayer"] == "true"

	return filter
}
