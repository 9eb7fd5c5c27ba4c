package request

import "github.com/purebeach/pos-api/internal/domain/entity"

// OrderLineRequest represents one item on a submitted order
type OrderLineRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Price       float64 `json:"price" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	CustomText  string  `json:"customText" binding:"omitempty,max=255"`
	Description string  `json:"description" binding:"omitempty,max=500"`
}

// SubmitOrderRequest represents an order submission from the seat-map client
type SubmitOrderRequest struct {
	Seat      string             `json:"seat" binding:"required,max=10"`
	Items     []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	Total     float64            `json:"total" binding:"min=0"`
	Notes     string             `json:"notes" binding:"omitempty,max=500"`
	PayByCard bool               `json:"payByCard"`
}

// ToEntity converts the request into the immutable order value handed to the core.
func (r *SubmitOrderRequest) ToEntity() entity.OrderRequest {
	items := make([]entity.OrderLine, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.OrderLine{
			Name:        it.Name,
			Price:       it.Price,
			Quantity:    it.Quantity,
			CustomText:  it.CustomText,
			Description: it.Description,
		})
	}
	return entity.OrderRequest{
		Seat:      r.Seat,
		Items:     items,
		Total:     r.Total,
		Notes:     r.Notes,
		PayByCard: r.PayByCard,
	}
}
