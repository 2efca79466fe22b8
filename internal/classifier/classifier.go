// Package classifier turns an incident description and the amount lost into a
// fraud category, a recovery estimate and an ordered plan of actions.
//
// Everything here is a pure function of its inputs and is safe for concurrent use.
package classifier

import "github.com/lucaspalermo/defesapix/internal/models"

const (
	fallbackConfidence = 40
	baseConfidence     = 50
	confidencePerMatch = 15
	maxConfidence      = 95

	// The bonus and penalty ranges must not overlap: one amount gets at most one of them.
	lowAmountThreshold  = 1000
	lowAmountBonus      = 10
	highAmountThreshold = 50000
	highAmountPenalty   = 15

	minRecovery = 10
	maxRecovery = 90
)

type profile struct {
	baseRecovery int
	deadlineNote string
}

var profiles = map[models.Category]profile{
	models.CategoryPixTransfer: {
		baseRecovery: 65,
		deadlineNote: "Request the MED reversal within 72 hours of the transfer; the bank has up to 7 days to analyse it.",
	},
	models.CategoryWhatsAppTakeover: {
		baseRecovery: 55,
		deadlineNote: "Payments made by Pix to the impostor can be contested through MED within 72 hours; report the cloned account to WhatsApp immediately.",
	},
	models.CategoryFakeInvoice: {
		baseRecovery: 40,
		deadlineNote: "Contest the payment with the issuing bank within 24 hours; the bank has 10 business days to answer.",
	},
	models.CategoryRomanceScam: {
		baseRecovery: 25,
		deadlineNote: "Criminal complaints must be filed within 6 months of identifying the author (art. 38 CPP).",
	},
	models.CategoryFakeJob: {
		baseRecovery: 35,
		deadlineNote: "Report within 6 months of identifying the author; keep every task and payment receipt.",
	},
	models.CategoryInvestmentScam: {
		baseRecovery: 20,
		deadlineNote: "Refer the case to CVM and the Federal Police as soon as possible; civil claims prescribe in 3 years.",
	},
	models.CategoryFakeStore: {
		baseRecovery: 45,
		deadlineNote: "Consumer claims for defective service prescribe in 5 years (art. 27 CDC); chargeback windows are usually 90 days.",
	},
	models.CategoryPhishing: {
		baseRecovery: 50,
		deadlineNote: "Notify the bank within 24 hours so it can block access and contest the transactions.",
	},
	models.CategoryCardFraud: {
		baseRecovery: 75,
		deadlineNote: "Dispute unrecognised purchases before the card statement due date.",
	},
	models.CategoryLoanFraud: {
		baseRecovery: 60,
		deadlineNote: "Contest the contract with the bank and INSS within 30 days of the first discount.",
	},
	models.CategoryOther: {
		baseRecovery: 30,
		deadlineNote: "File the police report as soon as possible; most remedies prescribe within 3 years.",
	},
}

// Classify scores every category, keeps the best one and builds the action plan.
// An empty or keyword-free text falls back to OTHER.
func Classify(text string, amount float64) models.Classification {
	lowered := normalize(text)

	best := models.CategoryOther
	bestScore := 0
	for _, category := range models.Categories {
		s := score(lowered, category)
		if s > bestScore {
			best = category
			bestScore = s
		}
	}

	return build(best, confidence(bestScore), amount)
}

// Fallback is the classification used when classification itself failed.
func Fallback(amount float64) models.Classification {
	return build(models.CategoryOther, fallbackConfidence, amount)
}

func build(category models.Category, conf int, amount float64) models.Classification {
	return models.Classification{
		Category:            category,
		Confidence:          conf,
		RecoveryProbability: RecoveryProbability(category, amount),
		LegalDeadlineNote:   profiles[category].deadlineNote,
		ActionPlan:          Plan(category, amount),
	}
}

func confidence(matches int) int {
	if matches == 0 {
		return fallbackConfidence
	}
	return min(maxConfidence, baseConfidence+confidencePerMatch*matches)
}

// RecoveryProbability applies, in order: category base, low-amount bonus,
// high-amount penalty, clamp to [10, 90].
func RecoveryProbability(category models.Category, amount float64) int {
	p, ok := profiles[category]
	if !ok {
		p = profiles[models.CategoryOther]
	}

	probability := p.baseRecovery
	if amount < lowAmountThreshold {
		probability = min(probability+lowAmountBonus, maxRecovery)
	}
	if amount > highAmountThreshold {
		probability = max(probability-highAmountPenalty, minRecovery)
	}
	return max(minRecovery, min(probability, maxRecovery))
}
