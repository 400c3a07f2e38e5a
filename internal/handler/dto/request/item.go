package request

import (
	"beach-reserve/internal/usecase/commands"
)

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required,gte=0"`
	TrackStock  bool   `json:"track_stock"`
	StockTotal  int32  `json:"stock_total" binding:"gte=0"`
}

func (r CreateItemRequest) ToCommand() commands.CreateItemCommand {
	return commands.CreateItemCommand{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		TrackStock:  r.TrackStock,
		StockTotal:  r.StockTotal,
	}
}

// UpdateItemRequest is a partial update; only non-nil fields are applied.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	StockTotal  *int32  `json:"stock_total,omitempty"`
}

func (r UpdateItemRequest) ToCommand() commands.UpdateItemCommand {
	return commands.UpdateItemCommand{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		IsActive:    r.IsActive,
		StockTotal:  r.StockTotal,
	}
}
