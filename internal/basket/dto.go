package basket

import (
	"github.com/google/uuid"

	"github.com/aselbek/bazar-backend/pkg/db/models"
)

// AddItemRequest is the POST /basket/items payload. Posting a product that is
// already in the basket replaces its quantity (the request carries the new
// line total, it does not accumulate); quantity 0 removes the line.
type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"gte=0"`
}

// UpdateItemRequest is the PATCH /basket/items/{id} payload; quantity 0
// removes the line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// ItemProductDTO is the product projection embedded in a basket line.
type ItemProductDTO struct {
	ID           int64  `json:"id"`
	ProductName  string `json:"product_name"`
	ProductPrice int64  `json:"product_price"`
}

// BasketItemDTO is one basket line with its request-time total.
type BasketItemDTO struct {
	ID         int64          `json:"id"`
	Product    ItemProductDTO `json:"product"`
	Quantity   int            `json:"quantity"`
	TotalPrice int64          `json:"total_price"`
}

// BasketDTO is the full basket view; totals are computed at request time from
// current catalog prices, never stored.
type BasketDTO struct {
	ID         int64           `json:"id"`
	User       uuid.UUID       `json:"user"`
	Items      []BasketItemDTO `json:"items"`
	TotalPrice int64           `json:"total_price"`
}

func itemFromModel(item *models.BasketItem) *BasketItemDTO {
	if item == nil {
		return nil
	}
	dto := &BasketItemDTO{
		ID:       item.ID,
		Quantity: item.Quantity,
	}
	if item.Product != nil {
		dto.Product = ItemProductDTO{
			ID:           item.Product.ID,
			ProductName:  item.Product.ProductName,
			ProductPrice: item.Product.ProductPrice,
		}
		dto.TotalPrice = item.Product.ProductPrice * int64(item.Quantity)
	}
	return dto
}

func fromModel(basket *models.Basket) *BasketDTO {
	dto := &BasketDTO{
		ID:    basket.ID,
		User:  basket.UserID,
		Items: make([]BasketItemDTO, 0, len(basket.Items)),
	}
	for i := range basket.Items {
		item := itemFromModel(&basket.Items[i])
		dto.Items = append(dto.Items, *item)
		dto.TotalPrice += item.TotalPrice
	}
	return dto
}
