package repository

import (
	"context"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/internal/dto"
)

type ProductAPIRepository interface {
	CreateProduct(ctx context.Context, product dto.ProductRequest, image domain.ProductImage) (err error)
	GenerateProduct(ctx context.Context, query string) (product *dto.GeneratedProduct, err error)
}
