package cart

import "github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pricing"

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required" validate:"required"`
	Qty       int    `json:"qty"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type UpdateQtyRequest struct {
	Qty int `json:"qty"`
}

// ==================== RESPONSE STRUCTS ====================

type LineProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Brand         string `json:"brand"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"originalPrice"`
	InStock       bool   `json:"inStock"`
}

type LineResponse struct {
	ID        string              `json:"id"`
	Product   LineProductResponse `json:"product"`
	Qty       int                 `json:"qty"`
	Size      string              `json:"size,omitempty"`
	Color     string              `json:"color,omitempty"`
	LineTotal int64               `json:"lineTotal"`
}

type CartDetailResponse struct {
	Lines      []LineResponse    `json:"lines"`
	TotalItems int               `json:"totalItems"`
	TotalPrice int64             `json:"totalPrice"`
	Breakdown  pricing.Breakdown `json:"breakdown"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

func toLineResponse(l Line) LineResponse {
	return LineResponse{
		ID: l.ID,
		Product: LineProductResponse{
			ID:            l.Product.ID,
			Name:          l.Product.Name,
			Brand:         l.Product.Brand,
			Price:         l.Product.Price,
			OriginalPrice: l.Product.OriginalPrice,
			InStock:       l.Product.InStock,
		},
		Qty:       l.Quantity,
		Size:      l.Size,
		Color:     l.Color,
		LineTotal: int64(l.Quantity) * l.Product.Price,
	}
}

func toDetailResponse(snap Snapshot) CartDetailResponse {
	lines := make([]LineResponse, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		lines = append(lines, toLineResponse(l))
	}
	return CartDetailResponse{
		Lines:      lines,
		TotalItems: snap.TotalItems,
		TotalPrice: snap.TotalPrice,
		Breakdown:  snap.Breakdown,
	}
}
