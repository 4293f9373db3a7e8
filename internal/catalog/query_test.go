package catalog_test

import (
	"testing"
	"time"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/catalog"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/shared/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestEngine_Query_EmptyCatalog(t *testing.T) {
	e := catalog.NewEngine()

	res := e.Query(nil, catalog.FilterSpec{}, time.June)

	assert.Empty(t, res.Products)
	assert.NotNil(t, res.Facets.Brands)
	assert.Empty(t, res.Facets.Brands)
	assert.NotNil(t, res.Facets.Colors)
	assert.Empty(t, res.Facets.Colors)
}

func TestEngine_Query_FilterConjunction(t *testing.T) {
	e := catalog.NewEngine()
	products := reference.Products()

	t.Run("tight_bucket_excludes_all", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{
			AgeBand:     catalog.AgeBand2To4Years,
			Gender:      catalog.GenderGirls,
			PriceBucket: &catalog.PriceBucket{Min: 0, Max: 500},
		}, time.June)

		assert.Empty(t, res.Products)
	})

	t.Run("bucket_admits_only_matching_product", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{
			AgeBand:     catalog.AgeBand2To4Years,
			Gender:      catalog.GenderGirls,
			PriceBucket: &catalog.PriceBucket{Min: 500, Max: 600},
		}, time.June)

		require.Len(t, res.Products, 1)
		assert.Equal(t, "gp007", res.Products[0].ID)
	})

	t.Run("every_result_satisfies_every_criterion", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{
			AgeBand:  catalog.AgeBand2To4Years,
			Gender:   catalog.GenderGirls,
			Category: "Clothing",
		}, time.June)

		require.NotEmpty(t, res.Products)
		for _, p := range res.Products {
			assert.Equal(t, catalog.AgeBand2To4Years, p.AgeBand)
			assert.Equal(t, catalog.GenderGirls, p.Gender)
			assert.Equal(t, "Clothing", p.Category)
		}
	})
}

func TestEngine_Query_InvalidBucket(t *testing.T) {
	e := catalog.NewEngine()

	res := e.Query(reference.Products(), catalog.FilterSpec{
		PriceBucket: &catalog.PriceBucket{Min: 900, Max: 100},
	}, time.June)

	assert.Empty(t, res.Products)
	assert.Empty(t, res.Facets.Brands)
}

func TestEngine_Query_FreeText(t *testing.T) {
	e := catalog.NewEngine()
	products := []catalog.Product{
		{ID: "a", Name: "Floral Frock", Brand: "BabyHug"},
		{ID: "b", Name: "Denim Dungaree", Brand: "612 League"},
		{ID: "c", Name: "Frilly Socks", Brand: "FrockStar"},
	}

	t.Run("matches_name_or_brand_case_insensitive", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{Query: "frock"}, time.June)
		assert.Equal(t, []string{"a", "c"}, ids(res.Products))
	})

	t.Run("blank_query_matches_all", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{Query: "   "}, time.June)
		assert.Len(t, res.Products, 3)
	})
}

func TestEngine_Query_BrandFilterAndFacets(t *testing.T) {
	e := catalog.NewEngine()
	products := []catalog.Product{
		{ID: "a", Brand: "Mothercare", Color: "Red"},
		{ID: "b", Brand: "BabyHug", Color: "Blue"},
		{ID: "c", Brand: "Mothercare", Color: "Blue"},
		{ID: "d", Brand: "Hopscotch", Color: "Green"},
	}

	res := e.Query(products, catalog.FilterSpec{Brands: []string{"BabyHug"}}, time.June)

	// Results honor the brand filter...
	assert.Equal(t, []string{"b"}, ids(res.Products))

	// ...but facets are extracted before it narrows the set, in
	// first-occurrence order, de-duplicated and never alphabetized.
	assert.Equal(t, []string{"Mothercare", "BabyHug", "Hopscotch"}, res.Facets.Brands)
	assert.Equal(t, []string{"Red", "Blue", "Green"}, res.Facets.Colors)
}

func TestEngine_Query_SeasonFilter(t *testing.T) {
	e := catalog.NewEngine()
	winter := catalog.SeasonWinter
	products := []catalog.Product{
		{ID: "w", Season: catalog.SeasonWinter},
		{ID: "s", Season: catalog.SeasonSummer},
		{ID: "all", Season: catalog.SeasonAllSeason},
	}

	res := e.Query(products, catalog.FilterSpec{Season: &winter}, time.June)

	assert.Equal(t, []string{"w", "all"}, ids(res.Products))
}

func TestEngine_Query_Sorting(t *testing.T) {
	e := catalog.NewEngine()
	products := []catalog.Product{
		{ID: "a", Price: 500, Rating: 4.0, DiscountPercent: 20, Season: catalog.SeasonSummer},
		{ID: "b", Price: 300, Rating: 4.8, DiscountPercent: 50, Season: catalog.SeasonWinter},
		{ID: "c", Price: 500, Rating: 3.5, DiscountPercent: 35, Season: catalog.SeasonAllSeason},
		{ID: "d", Price: 200, Rating: 4.8, DiscountPercent: 10, Season: catalog.SeasonSummer},
	}

	t.Run("price_low_stable_on_ties", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{Sort: catalog.SortPriceLow}, time.June)
		assert.Equal(t, []string{"d", "b", "a", "c"}, ids(res.Products))
	})

	t.Run("price_high", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{Sort: catalog.SortPriceHigh}, time.June)
		assert.Equal(t, []string{"a", "c", "b", "d"}, ids(res.Products))
	})

	t.Run("rating_descending_stable", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{Sort: catalog.SortRating}, time.June)
		assert.Equal(t, []string{"b", "d", "a", "c"}, ids(res.Products))
	})

	t.Run("discount_descending", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{Sort: catalog.SortDiscount}, time.June)
		assert.Equal(t, []string{"b", "c", "a", "d"}, ids(res.Products))
	})

	t.Run("newest_preserves_input_order", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{Sort: catalog.SortNewest}, time.June)
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(res.Products))
	})
}

func TestEngine_Query_RelevancePartition(t *testing.T) {
	e := catalog.NewEngine()
	products := []catalog.Product{
		{ID: "summerHigh", Season: catalog.SeasonSummer, Rating: 4.9},
		{ID: "winterLow", Season: catalog.SeasonWinter, Rating: 3.2},
		{ID: "allMid", Season: catalog.SeasonAllSeason, Rating: 4.0},
		{ID: "summerLow", Season: catalog.SeasonSummer, Rating: 2.8},
		{ID: "winterHigh", Season: catalog.SeasonWinter, Rating: 4.7},
	}

	t.Run("winter_month_ranks_winter_and_all_season_first", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{Sort: catalog.SortRelevance}, time.January)

		assert.Equal(t,
			[]string{"winterHigh", "allMid", "winterLow", "summerHigh", "summerLow"},
			ids(res.Products),
		)
	})

	t.Run("summer_month_reorders", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{Sort: catalog.SortRelevance}, time.June)

		assert.Equal(t,
			[]string{"summerHigh", "allMid", "summerLow", "winterHigh", "winterLow"},
			ids(res.Products),
		)
	})

	t.Run("rating_non_increasing_within_partitions", func(t *testing.T) {
		res := e.Query(products, catalog.FilterSpec{}, time.January)

		current := catalog.SeasonForMonth(time.January)
		boundary := false
		prev := res.Products[0]
		for _, p := range res.Products[1:] {
			if prev.EligibleForSeason(current) && !p.EligibleForSeason(current) {
				boundary = true
				prev = p
				continue
			}
			// In-season never follows out-of-season.
			require.False(t, !prev.EligibleForSeason(current) && p.EligibleForSeason(current))
			assert.LessOrEqual(t, p.Rating, prev.Rating)
			prev = p
		}
		assert.True(t, boundary)
	})
}
