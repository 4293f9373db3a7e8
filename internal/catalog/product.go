package catalog

// AgeBand is one of the five ordered life-stage buckets the catalog is
// partitioned by.
type AgeBand string

const (
	AgeBand0To6Months  AgeBand = "0-6 Months"
	AgeBand6To24Months AgeBand = "6-24 Months"
	AgeBand2To4Years   AgeBand = "2-4 Years"
	AgeBand4To6Years   AgeBand = "4-6 Years"
	AgeBand6To14Years  AgeBand = "6-14 Years"
)

type Gender string

const (
	GenderGirls Gender = "Girls"
	GenderBoys  Gender = "Boys"
)

type Season string

const (
	SeasonSummer    Season = "Summer"
	SeasonWinter    Season = "Winter"
	SeasonAllSeason Season = "AllSeason"
)

// Product is immutable reference data. Prices are whole rupees.
// DiscountPercent comes straight from the source feed and is advisory;
// it is not required to match the price delta and is never recomputed.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	AgeBand         AgeBand  `json:"ageBand"`
	Gender          Gender   `json:"gender"`
	Season          Season   `json:"season"`
	Price           int64    `json:"price"`
	OriginalPrice   int64    `json:"originalPrice"`
	DiscountPercent int      `json:"discountPercent"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	Sizes           []string `json:"sizes"`
	Color           string   `json:"color"`
	InStock         bool     `json:"inStock"`
}

// EligibleForSeason reports whether the product can be offered for the
// given season. AllSeason products match every season.
func (p Product) EligibleForSeason(s Season) bool {
	return p.Season == s || p.Season == SeasonAllSeason
}

// Catalog is the static product collection loaded once at startup and
// owned by the application root. It is never mutated after construction.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

func NewCatalog(products []Product) *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products: products,
		byID:     byID,
	}
}

func (c *Catalog) Get(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns the backing collection. Callers must treat it as
// read-only.
func (c *Catalog) Products() []Product {
	return c.products
}

func (c *Catalog) Len() int {
	return len(c.products)
}
