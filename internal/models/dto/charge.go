package dto

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/lucaspalermo/defesapix/internal/models"
)

type Charge struct {
	ProductCode string `json:"product_code"`
	PayerName   string `json:"payer_name"`
	PayerEmail  string `json:"payer_email"`
	PayerTaxID  string `json:"payer_tax_id"`
}

func (c *Charge) Sanitize() {
	c.ProductCode = strings.ToUpper(strings.TrimSpace(c.ProductCode))
	c.PayerName = strings.TrimSpace(c.PayerName)
	c.PayerEmail = strings.ToLower(strings.TrimSpace(c.PayerEmail))
	c.PayerTaxID = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, c.PayerTaxID)
}

// Validate expects Sanitize to have run. Tax ids are CPF (11 digits) or CNPJ (14 digits).
func (c *Charge) Validate() error {
	if _, ok := models.LookupProduct(c.ProductCode); !ok {
		return &models.ValidationError{Field: "product_code", Message: "unknown product"}
	}
	if c.PayerName == "" {
		return &models.ValidationError{Field: "payer_name", Message: "is required"}
	}
	if _, err := mail.ParseAddress(c.PayerEmail); err != nil {
		return &models.ValidationError{Field: "payer_email", Message: "is not a valid e-mail address"}
	}
	if len(c.PayerTaxID) != 11 && len(c.PayerTaxID) != 14 {
		return &models.ValidationError{Field: "payer_tax_id", Message: "must be a CPF or CNPJ"}
	}
	return nil
}
