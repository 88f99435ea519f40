package dto

import (
	"encoding/json"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/utils"
)

// ProductRequest is the JSON "product" part of the create request.
type ProductRequest struct {
	Name             string      `json:"name"`
	Brand            string      `json:"brand"`
	Description      string      `json:"description"`
	Price            json.Number `json:"price"`
	Category         string      `json:"category"`
	StockQuantity    int         `json:"stockQuantity"`
	ReleaseDate      string      `json:"releaseDate"`
	ProductAvailable bool        `json:"productAvailable"`
}

func NewProductRequest(p domain.Product) ProductRequest {
	return ProductRequest{
		Name:             p.Name,
		Brand:            p.Brand,
		Description:      p.Description,
		Price:            json.Number(p.Price.String()),
		Category:         string(p.Category),
		StockQuantity:    p.StockQuantity,
		ReleaseDate:      utils.FormatReleaseDate(p.ReleaseDate),
		ProductAvailable: p.ProductAvailable,
	}
}
