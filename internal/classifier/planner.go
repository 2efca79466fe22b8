package classifier

import "github.com/lucaspalermo/defesapix/internal/models"

const (
	regulatorThreshold = 5000
	petitionThreshold  = 10000

	centralBankLink = "https://www.bcb.gov.br/meubc/registrar_reclamacao"
	securitiesLink  = "https://www.gov.br/cvm/pt-br/canais_atendimento/denuncias"
)

// Plan returns the remediation steps in the order they must be taken. Later
// steps assume the earlier ones are done.
func Plan(category models.Category, amount float64) []models.RecommendedAction {
	var plan []models.RecommendedAction
	add := func(action models.RecommendedAction) {
		action.Order = len(plan) + 1
		plan = append(plan, action)
	}

	add(models.RecommendedAction{
		Title:                 "File a police report (Boletim de Ocorrência)",
		Description:           "File a police report online describing the fraud, the amounts and the accounts that received the money. Every later step asks for its number.",
		Deadline:              "24 hours",
		Mandatory:             true,
		GeneratedDocumentType: models.DocumentIncidentReport,
	})

	if category.IsRapidTransfer() {
		add(models.RecommendedAction{
			Title:                 "Request a MED reversal",
			Description:           "Ask your bank to open a Special Refund Mechanism (MED) request so the receiving account is frozen before the money is moved again.",
			Deadline:              "72 hours",
			Mandatory:             true,
			GeneratedDocumentType: models.DocumentReversalContest,
		})
	}

	add(models.RecommendedAction{
		Title:                 "Send a formal notice to the bank",
		Description:           "Send a formal notice to your bank and to the receiving institution asking them to block the funds and preserve the transaction records.",
		Deadline:              "24 hours",
		Mandatory:             true,
		GeneratedDocumentType: models.DocumentFormalNotice,
	})

	if amount > regulatorThreshold {
		add(models.RecommendedAction{
			Title:       "Complain to the Central Bank",
			Description: "Register a complaint with the Central Bank against the institutions involved; it obliges them to answer within 10 business days.",
			Deadline:    "48 hours",
			Mandatory:   true,
			Link:        centralBankLink,
		})
	}

	add(models.RecommendedAction{
		Title:                 "File a Procon complaint",
		Description:           "File a consumer complaint with Procon or consumidor.gov.br to put additional pressure on the bank.",
		Deadline:              "72 hours",
		Mandatory:             false,
		GeneratedDocumentType: models.DocumentConsumerComplaint,
	})

	if category == models.CategoryInvestmentScam {
		add(models.RecommendedAction{
			Title:       "Report to CVM and the Federal Police",
			Description: "Report the unauthorised investment offer to the securities regulator and the Federal Police, who handle financial pyramid schemes.",
			Deadline:    "48 hours",
			Mandatory:   true,
			Link:        securitiesLink,
		})
	}

	if amount > petitionThreshold {
		add(models.RecommendedAction{
			Title:                 "Consider a Small Claims Court petition",
			Description:           "Consider a claim at the Small Claims Court against the bank for failing to prevent the fraud.",
			Deadline:              "7 days",
			Mandatory:             false,
			GeneratedDocumentType: models.DocumentPetition,
		})
	}

	return plan
}
