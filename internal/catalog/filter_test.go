package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eyewear-store/internal/models"
)

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func fixture() []models.Product {
	return []models.Product{
		{ID: "a", Name: "Zeta Round", Description: "Round frame", Category: models.CategoryMen, Type: models.TypePowerGlasses, Price: 800, Rating: 4.0},
		{ID: "b", Name: "Alpha Aviator", Description: "Polarized", Category: models.CategoryMen, Type: models.TypeSunglasses, Price: 1200, Rating: 4.5},
		{ID: "c", Name: "Cat Eye", Description: "Gradient ROUND lenses", Category: models.CategoryWomen, Type: models.TypeSunglasses, Price: 1200, Rating: 4.5},
		{ID: "d", Name: "Kid Flex", Description: "Flexible", Category: models.CategoryKids, Type: models.TypePowerGlasses, Price: 500, Rating: 3.9},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"no filters", Query{}, []string{"a", "b", "c", "d"}},
		{"search name case-insensitive", Query{Search: "AVIATOR"}, []string{"b"}},
		{"search description", Query{Search: "round"}, []string{"a", "c"}},
		{"category", Query{Category: models.CategoryMen}, []string{"a", "b"}},
		{"type", Query{Type: models.TypeSunglasses}, []string{"b", "c"}},
		{"price range inclusive", Query{MinPrice: 800, MaxPrice: 1200}, []string{"a", "b", "c"}},
		{"min only", Query{MinPrice: 1000}, []string{"b", "c"}},
		{"combined", Query{Category: models.CategoryWomen, Type: models.TypeSunglasses, Search: "cat"}, []string{"c"}},
		{"no match", Query{Search: "monocle"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(fixture(), tt.query)))
		})
	}
}

func TestFilterComposes(t *testing.T) {
	all := Default().All()
	byCategory := Query{Category: models.CategoryMen}
	byPrice := Query{MinPrice: 900, MaxPrice: 1600}
	both := Query{Category: models.CategoryMen, MinPrice: 900, MaxPrice: 1600}

	assert.Equal(t, Filter(all, both), Filter(Filter(all, byCategory), byPrice))
	assert.Equal(t, Filter(all, both), Filter(Filter(all, byPrice), byCategory))
}

func TestSortIsStable(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortNone, []string{"a", "b", "c", "d"}},
		{SortName, []string{"b", "c", "d", "a"}},
		{SortPriceAsc, []string{"d", "a", "b", "c"}},
		{SortPriceDesc, []string{"b", "c", "a", "d"}},
		{SortRating, []string{"b", "c", "a", "d"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Sort(fixture(), tt.key)))
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := fixture()
	_ = Sort(in, SortPriceAsc)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(in))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceDesc, ParseSortKey(" Price-Desc "))
	assert.Equal(t, SortNone, ParseSortKey("popularity"))
}

func TestPaginate(t *testing.T) {
	products := Default().All()
	require.Len(t, products, 12)

	p := Paginate(products, 2, 5)
	assert.Equal(t, []string{"6", "7", "8", "9", "10"}, ids(p.Products))
	assert.Equal(t, 12, p.Total)
	assert.Equal(t, 3, p.TotalPages)

	last := Paginate(products, 3, 5)
	assert.Len(t, last.Products, 2)

	beyond := Paginate(products, 9, 5)
	assert.Empty(t, beyond.Products)
	assert.NotNil(t, beyond.Products)

	defaults := Paginate(products, 0, 1000)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, DefaultPageSize, defaults.PageSize)
}

func TestPaginateExtremeValues(t *testing.T) {
	products := Default().All()

	cases := []struct {
		name     string
		page     int
		pageSize int
		want     int
	}{
		{"max page", math.MaxInt, DefaultPageSize, 0},
		{"max page, max size", math.MaxInt, MaxPageSize, 0},
		{"min page", math.MinInt, 5, 5},
		{"page just past the end", 4, 4, 0},
		{"negative size", 1, -7, DefaultPageSize},
		{"max size", 1, math.MaxInt, DefaultPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Page
			require.NotPanics(t, func() { p = Paginate(products, tc.page, tc.pageSize) })
			assert.Len(t, p.Products, tc.want)
			assert.Equal(t, len(products), p.Total)
		})
	}
}

func TestFilterNegativeAndExtremePrices(t *testing.T) {
	products := Default().All()

	assert.Len(t, Filter(products, Query{MinPrice: -500}), len(products))
	assert.Len(t, Filter(products, Query{MaxPrice: math.MaxInt}), len(products))
	assert.Empty(t, Filter(products, Query{MinPrice: math.MaxInt}))
}

func TestQueryApply(t *testing.T) {
	page := Query{Type: models.TypeSunglasses, Sort: SortPriceAsc, Page: 1, PageSize: 3}.Apply(Default().All())
	assert.Equal(t, []string{"10", "11", "2"}, ids(page.Products))
	assert.Equal(t, 7, page.Total)
}

func TestCatalogLookups(t *testing.T) {
	c := Default()

	p, ok := c.ByID("5")
	require.True(t, ok)
	assert.Equal(t, "Cat Eye Glam", p.Name)
	assert.Equal(t, 33, p.DiscountPercent())

	_, ok = c.ByID("99")
	assert.False(t, ok)

	related := c.Related("9", 5)
	assert.Equal(t, []string{"10", "11"}, ids(related))
	assert.Empty(t, c.Related("99", 3))
	assert.Empty(t, c.Related("9", -1))
	assert.NotPanics(t, func() { assert.Len(t, c.Related("9", math.MaxInt), 2) })

	featured := c.Featured(2)
	assert.Equal(t, []string{"5", "1"}, ids(featured))

	lo, hi := c.PriceBounds()
	assert.Equal(t, 499, lo)
	assert.Equal(t, 2499, hi)

	assert.Len(t, c.NewArrivals(0), 4)
}
