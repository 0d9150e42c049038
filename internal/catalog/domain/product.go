package domain

import (
	"strings"

	"github.com/dwikikusuma/storefront/pkg/validation"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"productName"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imgUrl"`
}

// ProductForm is the admin create/edit form. Price stays a string until it
// has been validated.
type ProductForm struct {
	ProductName string `json:"productName"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImgURL      string `json:"imgUrl"`
}

func (f ProductForm) Validate() error {
	return validation.Check(
		validation.Required("productName", f.ProductName),
		validation.Price("price", f.Price),
		validation.Required("description", f.Description),
		validation.URL("imgUrl", f.ImgURL),
	)
}

// Normalized trims every field. Call after Validate.
func (f ProductForm) Normalized() ProductForm {
	return ProductForm{
		ProductName: strings.TrimSpace(f.ProductName),
		Description: strings.TrimSpace(f.Description),
		Price:       strings.TrimSpace(f.Price),
		ImgURL:      strings.TrimSpace(f.ImgURL),
	}
}
