package dto

import (
	"github.com/shopspring/decimal"
)

// GeneratedProduct is what the generation endpoint returns. Every field is optional.
type GeneratedProduct struct {
	Name             string              `json:"name,omitempty"`
	Brand            string              `json:"brand,omitempty"`
	Description      string              `json:"description,omitempty"`
	Price            decimal.NullDecimal `json:"price"`
	Category         string              `json:"category,omitempty"`
	StockQuantity    *int                `json:"stockQuantity,omitempty"`
	ReleaseDate      string              `json:"releaseDate,omitempty"`
	ProductAvailable *bool               `json:"productAvailable,omitempty"`
}
