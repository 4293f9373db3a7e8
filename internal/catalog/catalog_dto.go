package catalog

// ==================== REQUEST STRUCTS ====================

type QueryRequest struct {
	AgeBand     string   `form:"ageBand"`
	Gender      string   `form:"gender"`
	Category    string   `form:"category"`
	Subcategory string   `form:"subcategory"`
	Q           string   `form:"q"`
	MinPrice    *int64   `form:"minPrice"`
	MaxPrice    *int64   `form:"maxPrice"`
	Brands      []string `form:"brand"`
	Season      string   `form:"season"`
	Sort        string   `form:"sort"`
}

// ==================== RESPONSE STRUCTS ====================

type ProductResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory,omitempty"`
	AgeBand         string   `json:"ageBand"`
	Gender          string   `json:"gender"`
	Season          string   `json:"season"`
	Price           int64    `json:"price"`
	OriginalPrice   int64    `json:"originalPrice"`
	DiscountPercent int      `json:"discountPercent"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	Sizes           []string `json:"sizes"`
	Color           string   `json:"color"`
	InStock         bool     `json:"inStock"`
}

type FacetsResponse struct {
	Brands []string `json:"brands"`
	Colors []string `json:"colors"`
}

type QueryResponse struct {
	Products []ProductResponse `json:"products"`
	Facets   FacetsResponse    `json:"facets"`
	Total    int               `json:"total"`
}

func toProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Brand:           p.Brand,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		AgeBand:         string(p.AgeBand),
		Gender:          string(p.Gender),
		Season:          string(p.Season),
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		Sizes:           p.Sizes,
		Color:           p.Color,
		InStock:         p.InStock,
	}
}

func toQueryResponse(res Result) QueryResponse {
	products := make([]ProductResponse, 0, len(res.Products))
	for _, p := range res.Products {
		products = append(products, toProductResponse(p))
	}
	return QueryResponse{
		Products: products,
		Facets: FacetsResponse{
			Brands: res.Facets.Brands,
			Colors: res.Facets.Colors,
		},
		Total: len(products),
	}
}
