package service

import (
	"context"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/internal/dto"
)

type ProductService interface {
	AddProduct(ctx context.Context, draft domain.DraftProduct, image domain.ProductImage) (err error)
	GenerateProduct(ctx context.Context, prompt string) (product *dto.GeneratedProduct, err error)
}
