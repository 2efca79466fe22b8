package classifier

import (
	"strings"

	"github.com/lucaspalermo/defesapix/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// keywords holds lower-case phrases matched by plain substring containment.
// OTHER has no keywords; it is only reached as a fallback.
var keywords = map[models.Category][]string{
	models.CategoryPixTransfer: {
		"pix",
		"transferência",
		"transferi",
		"comprovante falso",
		"qr code",
	},
	models.CategoryWhatsAppTakeover: {
		"whatsapp",
		"zap",
		"clonaram",
		"clonado",
		"código de verificação",
		"número novo",
		"se passando",
	},
	models.CategoryFakeInvoice: {
		"boleto",
		"código de barras",
		"fatura falsa",
		"segunda via",
	},
	models.CategoryRomanceScam: {
		"namoro",
		"namorado",
		"namorada",
		"relacionamento",
		"conheci no",
		"aplicativo de encontros",
		"romance",
	},
	models.CategoryFakeJob: {
		"vaga de emprego",
		"emprego",
		"trabalho remoto",
		"renda extra",
		"curtir vídeos",
		"tarefas",
		"recrutador",
	},
	models.CategoryInvestmentScam: {
		"investimento",
		"investi",
		"criptomoeda",
		"bitcoin",
		"rendimento",
		"lucro garantido",
		"pirâmide",
		"corretora",
	},
	models.CategoryFakeStore: {
		"loja virtual",
		"site falso",
		"comprei",
		"produto não chegou",
		"nunca recebi",
		"aplicativo falso",
		"anúncio",
	},
	models.CategoryPhishing: {
		"link",
		"e-mail",
		"email",
		"sms",
		"senha",
		"dados bancários",
		"atualizar cadastro",
	},
	models.CategoryCardFraud: {
		"cartão",
		"compra não reconhecida",
		"fatura do cartão",
		"crédito",
	},
	models.CategoryLoanFraud: {
		"empréstimo",
		"consignado",
		"financiamento",
		"taxa antecipada",
		"liberação de crédito",
	},
}

// Score counts how many of the category's keyword phrases appear in text.
// Each phrase counts once no matter how often it repeats.
func Score(text string, category models.Category) int {
	return score(normalize(text), category)
}

func score(lowered string, category models.Category) int {
	matches := 0
	for _, phrase := range keywords[category] {
		if strings.Contains(lowered, phrase) {
			matches++
		}
	}
	return matches
}

// normalize lower-cases with Portuguese rules. A Caser keeps state, so one is
// built per call to stay safe for concurrent classification.
func normalize(text string) string {
	return cases.Lower(language.BrazilianPortuguese).String(text)
}
