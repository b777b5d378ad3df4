// Package catalog is the static restaurant/menu dataset and its read-only
// queries. Nothing here is ever mutated.
package catalog

import (
	"strings"

	"github.com/Krypton102019/dk-deli/entity"
)

type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameMM string `json:"nameMM"`
	Icon   string `json:"icon"`
}

func Categories() []Category {
	return categories
}

func RestaurantByID(id string) (entity.Restaurant, bool) {
	for _, r := range restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Restaurant{}, false
}

// RestaurantsByCategory returns everything for "all", otherwise the
// restaurants whose categories list contains the given category.
func RestaurantsByCategory(category string) []entity.Restaurant {
	if category == "all" {
		return append([]entity.Restaurant(nil), restaurants...)
	}
	var out []entity.Restaurant
	for _, r := range restaurants {
		for _, c := range r.Categories {
			if c == category {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// SearchRestaurants matches case-insensitively on the English name and
// description, and by plain substring on the Myanmar name.
func SearchRestaurants(query string) []entity.Restaurant {
	lower := strings.ToLower(query)
	var out []entity.Restaurant
	for _, r := range restaurants {
		if strings.Contains(strings.ToLower(r.Name), lower) ||
			strings.Contains(r.NameMM, query) ||
			strings.Contains(strings.ToLower(r.Description), lower) {
			out = append(out, r)
		}
	}
	return out
}

func PopularRestaurants() []entity.Restaurant {
	var out []entity.Restaurant
	for _, r := range restaurants {
		if r.Rating >= 4.6 {
			out = append(out, r)
		}
	}
	return out
}

// MenuItem finds one dish inside a restaurant, for the item detail screen.
func MenuItem(restaurantID, itemID string) (entity.MenuItem, bool) {
	r, ok := RestaurantByID(restaurantID)
	if !ok {
		return entity.MenuItem{}, false
	}
	for _, m := range r.Menu {
		if m.ID == itemID {
			return m, true
		}
	}
	return entity.MenuItem{}, false
}
