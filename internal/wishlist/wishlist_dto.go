package wishlist

import "github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/catalog"

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type WishlistItemResponse struct {
	ProductID       string  `json:"productId"`
	Name            string  `json:"name"`
	Brand           string  `json:"brand"`
	Price           int64   `json:"price"`
	OriginalPrice   int64   `json:"originalPrice"`
	DiscountPercent int     `json:"discountPercent"`
	Rating          float64 `json:"rating"`
	InStock         bool    `json:"inStock"`
}

type WishlistResponse struct {
	UserID    string                 `json:"userId"`
	Items     []WishlistItemResponse `json:"items"`
	ItemCount int                    `json:"itemCount"`
}

func toItemResponse(p catalog.Product) WishlistItemResponse {
	return WishlistItemResponse{
		ProductID:       p.ID,
		Name:            p.Name,
		Brand:           p.Brand,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent,
		Rating:          p.Rating,
		InStock:         p.InStock,
	}
}
