package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alimikegami/point-of-sales/product-admin/pkg/utils"
)

type Category string

const (
	CategoryLaptop      Category = "Laptop"
	CategoryHeadphone   Category = "Headphone"
	CategoryMobile      Category = "Mobile"
	CategoryElectronics Category = "Electronics"
	CategoryToys        Category = "Toys"
	CategoryFashion     Category = "Fashion"
)

// Categories is the fixed set offered by the form, in display order.
var Categories = []Category{
	CategoryLaptop,
	CategoryHeadphone,
	CategoryMobile,
	CategoryElectronics,
	CategoryToys,
	CategoryFashion,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DraftProduct is the unsaved form input, kept as typed so that absent and
// malformed values can be told apart.
type DraftProduct struct {
	Name             string
	Brand            string
	Description      string
	Price            string
	Category         string
	StockQuantity    string
	ReleaseDate      string
	ProductAvailable bool
}

// Value returns the raw input for a draft field. ProductAvailable renders as "true"/"false".
func (d DraftProduct) Value(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldBrand:
		return d.Brand
	case FieldDescription:
		return d.Description
	case FieldPrice:
		return d.Price
	case FieldCategory:
		return d.Category
	case FieldStockQuantity:
		return d.StockQuantity
	case FieldReleaseDate:
		return d.ReleaseDate
	case FieldProductAvailable:
		return strconv.FormatBool(d.ProductAvailable)
	}
	return ""
}

// Product is a draft that passed validation, with typed values.
type Product struct {
	Name             string
	Brand            string
	Description      string
	Price            decimal.Decimal
	Category         Category
	StockQuantity    int
	ReleaseDate      time.Time
	ProductAvailable bool
}

func (d DraftProduct) Parse() (Product, error) {
	price, err := ParsePrice(d.Price)
	if err != nil {
		return Product{}, fmt.Errorf("error parsing price: %w", err)
	}

	stock, err := ParseStockQuantity(d.StockQuantity)
	if err != nil {
		return Product{}, fmt.Errorf("error parsing stock quantity: %w", err)
	}

	releaseDate, err := utils.ParseReleaseDate(d.ReleaseDate)
	if err != nil {
		return Product{}, fmt.Errorf("error parsing release date: %w", err)
	}

	category := Category(d.Category)
	if !category.Valid() {
		return Product{}, fmt.Errorf("unknown category %q", d.Category)
	}

	return Product{
		Name:             d.Name,
		Brand:            d.Brand,
		Description:      d.Description,
		Price:            price,
		Category:         category,
		StockQuantity:    stock,
		ReleaseDate:      releaseDate,
		ProductAvailable: d.ProductAvailable,
	}, nil
}

func ParsePrice(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(value))
}

func ParseStockQuantity(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}
