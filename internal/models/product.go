package models

import "github.com/shopspring/decimal"

type Product struct {
	Code        string
	Description string
	Price       decimal.Decimal
}

var catalog = map[string]Product{
	"RECOVERY_KIT": {
		Code:        "RECOVERY_KIT",
		Description: "Kit de documentos para recuperação de valores",
		Price:       decimal.RequireFromString("29.90"),
	},
	"RECOVERY_KIT_PLUS": {
		Code:        "RECOVERY_KIT_PLUS",
		Description: "Kit de documentos com petição para o Juizado Especial",
		Price:       decimal.RequireFromString("49.90"),
	},
}

func LookupProduct(code string) (Product, bool) {
	p, ok := catalog[code]
	return p, ok
}
