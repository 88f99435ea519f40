package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/product-admin/internal/repository"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/errs"
)

type ProductServiceImpl struct {
	repository repository.ProductAPIRepository
}

func CreateProductService(repository repository.ProductAPIRepository) ProductService {
	return &ProductServiceImpl{repository: repository}
}

// AddProduct expects a draft that already passed validation.
func (s *ProductServiceImpl) AddProduct(ctx context.Context, draft domain.DraftProduct, image domain.ProductImage) (err error) {
	product, err := draft.Parse()
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidForm, err)
	}

	err = s.repository.CreateProduct(ctx, dto.NewProductRequest(product), image)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return err
	}

	log.Info().Str("component", "AddProduct").
		Str("name", product.Name).
		Str("category", string(product.Category)).
		Int64("image_size", image.Size).
		Msg("Product added")

	return nil
}

func (s *ProductServiceImpl) GenerateProduct(ctx context.Context, prompt string) (product *dto.GeneratedProduct, err error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, errs.ErrEmptyPrompt
	}

	product, err = s.repository.GenerateProduct(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("component", "GenerateProduct").Msg("")
		return nil, err
	}

	log.Info().Str("component", "GenerateProduct").
		Bool("empty", product == nil).
		Msg("Product generated")

	return product, nil
}
