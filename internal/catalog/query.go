package catalog

import (
	"sort"
	"strings"
	"time"
)

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
	SortDiscount  SortKey = "discount"
)

// PriceBucket is an inclusive price range in whole rupees.
type PriceBucket struct {
	Min int64
	Max int64
}

// FilterSpec describes one catalog query. Zero values mean "no
// constraint" for every dimension; an empty spec matches the whole
// catalog.
type FilterSpec struct {
	AgeBand     AgeBand
	Gender      Gender
	Category    string
	Subcategory string
	Query       string
	PriceBucket *PriceBucket
	Brands      []string
	Season      *Season
	Sort        SortKey
}

// Facets are the distinct brand and color values of a result set, in
// first-occurrence order, used to build the filter selection UI.
type Facets struct {
	Brands []string
	Colors []string
}

type Result struct {
	Products []Product
	Facets   Facets
}

// Engine filters, facets and orders a product collection. It holds no
// state; every call is a pure function of its inputs plus the supplied
// month.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Query applies the spec's criteria conjunctively, extracts facets from
// the result before the brand filter narrows it, then sorts. The month
// feeds the relevance sort and is read at call time, so results may
// reorder across a season boundary. A min > max price bucket matches
// nothing; this is resolved to an empty result, never an error.
func (e *Engine) Query(products []Product, spec FilterSpec, month time.Month) Result {
	if spec.PriceBucket != nil && spec.PriceBucket.Min > spec.PriceBucket.Max {
		return Result{Products: []Product{}, Facets: Facets{Brands: []string{}, Colors: []string{}}}
	}

	base := make([]Product, 0, len(products))
	for _, p := range products {
		if e.matchesBase(p, spec) {
			base = append(base, p)
		}
	}

	facets := extractFacets(base)

	results := base
	if len(spec.Brands) > 0 {
		brandSet := make(map[string]struct{}, len(spec.Brands))
		for _, b := range spec.Brands {
			brandSet[b] = struct{}{}
		}
		results = make([]Product, 0, len(base))
		for _, p := range base {
			if _, ok := brandSet[p.Brand]; ok {
				results = append(results, p)
			}
		}
	} else {
		results = append([]Product(nil), base...)
	}

	e.sortResults(results, spec.Sort, month)

	return Result{Products: results, Facets: facets}
}

// matchesBase checks every criterion except the brand set, which is
// applied after facet extraction.
func (e *Engine) matchesBase(p Product, spec FilterSpec) bool {
	if spec.AgeBand != "" && p.AgeBand != spec.AgeBand {
		return false
	}
	if spec.Gender != "" && p.Gender != spec.Gender {
		return false
	}
	if spec.Category != "" && p.Category != spec.Category {
		return false
	}
	if spec.Subcategory != "" && p.Subcategory != spec.Subcategory {
		return false
	}
	if q := strings.TrimSpace(spec.Query); q != "" {
		needle := strings.ToLower(q)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			return false
		}
	}
	if b := spec.PriceBucket; b != nil {
		if p.Price < b.Min || p.Price > b.Max {
			return false
		}
	}
	if spec.Season != nil && !p.EligibleForSeason(*spec.Season) {
		return false
	}
	return true
}

func (e *Engine) sortResults(products []Product, key SortKey, month time.Month) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortDiscount:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DiscountPercent > products[j].DiscountPercent
		})
	case SortNewest:
		// The feed carries no creation timestamp; input order stands.
	default:
		// Relevance: in-season products first, rating descending within
		// each partition.
		current := SeasonForMonth(month)
		sort.SliceStable(products, func(i, j int) bool {
			ei, ej := products[i].EligibleForSeason(current), products[j].EligibleForSeason(current)
			if ei != ej {
				return ei
			}
			return products[i].Rating > products[j].Rating
		})
	}
}

// extractFacets collects distinct brands and colors in first-occurrence
// order. The order is part of the contract; the UI relies on it being
// stable across calls.
func extractFacets(products []Product) Facets {
	brands := make([]string, 0)
	colors := make([]string, 0)
	seenBrand := make(map[string]struct{})
	seenColor := make(map[string]struct{})

	for _, p := range products {
		if p.Brand != "" {
			if _, ok := seenBrand[p.Brand]; !ok {
				seenBrand[p.Brand] = struct{}{}
				brands = append(brands, p.Brand)
			}
		}
		if p.Color != "" {
			if _, ok := seenColor[p.Color]; !ok {
				seenColor[p.Color] = struct{}{}
				colors = append(colors, p.Color)
			}
		}
	}

	return Facets{Brands: brands, Colors: colors}
}
