// Package validator checks a draft product and its image before submission.
package validator

import (
	"strings"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/utils"
)

const (
	MsgNameRequired         = "Product name is required"
	MsgBrandRequired        = "Brand is required"
	MsgDescriptionRequired  = "Description is required"
	MsgPriceRequired        = "Price is required"
	MsgPriceInvalid         = "Price must be a valid number"
	MsgPriceNotPositive     = "Price must be greater than zero"
	MsgCategoryRequired     = "Please select a category"
	MsgStockRequired        = "Stock quantity is required"
	MsgStockInvalid         = "Stock quantity must be a whole number"
	MsgStockNegative        = "Stock quantity cannot be negative"
	MsgReleaseDateRequired  = "Release date is required"
	MsgReleaseDateInvalid   = "Release date is invalid"
	MsgImageRequired        = "Product image is required"
	MsgImageTypeNotAccepted = "Please select a valid image file (JPEG or PNG)"
	MsgImageTooLarge        = "Image size should be less than 5MB"
)

// ValidateProduct runs every rule and collects one message per failing field.
func ValidateProduct(draft domain.DraftProduct, image *domain.ProductImage) domain.FieldErrors {
	var errs domain.FieldErrors

	if isBlank(draft.Name) {
		errs.Set(domain.FieldName, MsgNameRequired)
	}
	if isBlank(draft.Brand) {
		errs.Set(domain.FieldBrand, MsgBrandRequired)
	}
	if isBlank(draft.Description) {
		errs.Set(domain.FieldDescription, MsgDescriptionRequired)
	}

	errs.Set(domain.FieldPrice, validatePrice(draft.Price))

	if !domain.Category(draft.Category).Valid() {
		errs.Set(domain.FieldCategory, MsgCategoryRequired)
	}

	errs.Set(domain.FieldStockQuantity, validateStockQuantity(draft.StockQuantity))
	errs.Set(domain.FieldReleaseDate, validateReleaseDate(draft.ReleaseDate))
	errs.Set(domain.FieldImage, ValidateImage(image))

	return errs
}

// ValidateImage returns the image message, or "" when the image is acceptable.
func ValidateImage(image *domain.ProductImage) string {
	switch {
	case image == nil:
		return MsgImageRequired
	case !image.AllowedType():
		return MsgImageTypeNotAccepted
	case image.Size > domain.MaxImageSize:
		return MsgImageTooLarge
	}
	return ""
}

func validatePrice(value string) string {
	if isBlank(value) {
		return MsgPriceRequired
	}
	price, err := domain.ParsePrice(value)
	if err != nil {
		return MsgPriceInvalid
	}
	if price.Sign() <= 0 {
		return MsgPriceNotPositive
	}
	return ""
}

func validateStockQuantity(value string) string {
	if isBlank(value) {
		return MsgStockRequired
	}
	stock, err := domain.ParseStockQuantity(value)
	if err != nil {
		return MsgStockInvalid
	}
	if stock < 0 {
		return MsgStockNegative
	}
	return ""
}

func validateReleaseDate(value string) string {
	if isBlank(value) {
		return MsgReleaseDateRequired
	}
	if _, err := utils.ParseReleaseDate(value); err != nil {
		return MsgReleaseDateInvalid
	}
	return ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
