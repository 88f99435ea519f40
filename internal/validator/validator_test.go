package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
)

const mb = 1024 * 1024

func validDraft() domain.DraftProduct {
	return domain.DraftProduct{
		Name:          "Galaxy S24",
		Brand:         "Samsung",
		Description:   "Flagship phone",
		Price:         "799.00",
		Category:      "Mobile",
		StockQuantity: "12",
		ReleaseDate:   "2024-01-17",
	}
}

func imageOf(contentType string, size int) *domain.ProductImage {
	return domain.NewImageFromBytes("photo", contentType, make([]byte, size))
}

func TestValidateProductValid(t *testing.T) {
	errs := ValidateProduct(validDraft(), imageOf(domain.MIMEImageJPEG, 2*mb))

	assert.True(t, errs.Empty(), errs.Map())
}

func TestValidateProductReportsEveryMissingField(t *testing.T) {
	errs := ValidateProduct(domain.DraftProduct{Name: "   ", Brand: "\t"}, nil)

	assert.Equal(t, map[string]string{
		"name":          MsgNameRequired,
		"brand":         MsgBrandRequired,
		"description":   MsgDescriptionRequired,
		"price":         MsgPriceRequired,
		"category":      MsgCategoryRequired,
		"stockQuantity": MsgStockRequired,
		"releaseDate":   MsgReleaseDateRequired,
		"image":         MsgImageRequired,
	}, errs.Map())
}

func TestValidateProductSingleField(t *testing.T) {
	type TestCase struct {
		Name     string
		Mutate   func(d *domain.DraftProduct)
		Field    domain.Field
		Expected string
	}

	testCases := []TestCase{
		{Name: "Zero price", Mutate: func(d *domain.DraftProduct) { d.Price = "0" }, Field: domain.FieldPrice, Expected: MsgPriceNotPositive},
		{Name: "Negative price", Mutate: func(d *domain.DraftProduct) { d.Price = "-5" }, Field: domain.FieldPrice, Expected: MsgPriceNotPositive},
		{Name: "Smallest positive price", Mutate: func(d *domain.DraftProduct) { d.Price = "0.01" }, Field: domain.FieldPrice, Expected: ""},
		{Name: "Non numeric price", Mutate: func(d *domain.DraftProduct) { d.Price = "cheap" }, Field: domain.FieldPrice, Expected: MsgPriceInvalid},
		{Name: "Negative stock", Mutate: func(d *domain.DraftProduct) { d.StockQuantity = "-1" }, Field: domain.FieldStockQuantity, Expected: MsgStockNegative},
		{Name: "Zero stock", Mutate: func(d *domain.DraftProduct) { d.StockQuantity = "0" }, Field: domain.FieldStockQuantity, Expected: ""},
		{Name: "Fractional stock", Mutate: func(d *domain.DraftProduct) { d.StockQuantity = "1.5" }, Field: domain.FieldStockQuantity, Expected: MsgStockInvalid},
		{Name: "Unknown category", Mutate: func(d *domain.DraftProduct) { d.Category = "Garden" }, Field: domain.FieldCategory, Expected: MsgCategoryRequired},
		{Name: "Unparseable date", Mutate: func(d *domain.DraftProduct) { d.ReleaseDate = "someday" }, Field: domain.FieldReleaseDate, Expected: MsgReleaseDateInvalid},
		{Name: "Blank description", Mutate: func(d *domain.DraftProduct) { d.Description = "  " }, Field: domain.FieldDescription, Expected: MsgDescriptionRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			d := validDraft()
			tc.Mutate(&d)

			errs := ValidateProduct(d, imageOf(domain.MIMEImagePNG, mb))

			assert.Equal(t, tc.Expected, errs.Get(tc.Field))
			if tc.Expected == "" {
				assert.True(t, errs.Empty(), errs.Map())
			} else {
				assert.Len(t, errs.Map(), 1)
			}
		})
	}
}

func TestValidateImage(t *testing.T) {
	type TestCase struct {
		Name     string
		Image    *domain.ProductImage
		Expected string
	}

	testCases := []TestCase{
		{Name: "Missing", Image: nil, Expected: MsgImageRequired},
		{Name: "Small gif", Image: imageOf("image/gif", 10), Expected: MsgImageTypeNotAccepted},
		{Name: "Large gif", Image: imageOf("image/gif", 6*mb), Expected: MsgImageTypeNotAccepted},
		{Name: "Six megabyte png", Image: imageOf(domain.MIMEImagePNG, 6*mb), Expected: MsgImageTooLarge},
		{Name: "Exactly five megabytes", Image: imageOf(domain.MIMEImagePNG, 5*mb), Expected: ""},
		{Name: "Two megabyte jpeg", Image: imageOf(domain.MIMEImageJPEG, 2*mb), Expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, ValidateImage(tc.Image))
		})
	}
}
