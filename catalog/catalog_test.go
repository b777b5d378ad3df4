package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestaurantByID(t *testing.T) {
	r, ok := RestaurantByID("r1")
	assert.True(t, ok)
	assert.Equal(t, "Golden Rice Home Kitchen", r.Name)

	_, ok = RestaurantByID("r999")
	assert.False(t, ok)
}

func TestRestaurantsByCategory(t *testing.T) {
	all := RestaurantsByCategory("all")
	assert.Len(t, all, len(restaurants))

	shan := RestaurantsByCategory("shan")
	for _, r := range shan {
		assert.Contains(t, r.Categories, "shan")
	}
	assert.NotEmpty(t, shan)

	assert.Empty(t, RestaurantsByCategory("sushi"))
}

func TestSearchRestaurants(t *testing.T) {
	assert.NotEmpty(t, searchNames(t, "golden"))
	assert.NotEmpty(t, searchNames(t, "GOLDEN"))
	assert.NotEmpty(t, searchNames(t, "ရွှေထမင်း"))
	assert.Empty(t, searchNames(t, "pizza"))
}

func searchNames(t *testing.T, q string) []string {
	t.Helper()
	var names []string
	for _, r := range SearchRestaurants(q) {
		names = append(names, r.Name)
	}
	return names
}

func TestPopularRestaurants(t *testing.T) {
	pop := PopularRestaurants()
	assert.NotEmpty(t, pop)
	for _, r := range pop {
		assert.GreaterOrEqual(t, r.Rating, 4.6)
	}
}

func TestMenuItemLookup(t *testing.T) {
	m, ok := MenuItem("r1", "m1-1")
	assert.True(t, ok)
	assert.Equal(t, "Mohinga", m.Name)
	assert.Equal(t, int64(2500), m.Price)
	assert.Len(t, m.Toppings, 2)

	_, ok = MenuItem("r1", "m9-9")
	assert.False(t, ok)
	_, ok = MenuItem("r999", "m1-1")
	assert.False(t, ok)
}

func TestEveryEntryCarriesBothLanguages(t *testing.T) {
	for _, r := range restaurants {
		assert.NotEmpty(t, r.Name, r.ID)
		assert.NotEmpty(t, r.NameMM, r.ID)
		for _, m := range r.Menu {
			assert.NotEmpty(t, m.Name, m.ID)
			assert.NotEmpty(t, m.NameMM, m.ID)
			for _, top := range m.Toppings {
				assert.NotEmpty(t, top.Name, top.ID)
				assert.NotEmpty(t, top.NameMM, top.ID)
				assert.GreaterOrEqual(t, top.Price, int64(0), top.ID)
			}
		}
	}
}
