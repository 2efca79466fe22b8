package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Category string
type DocumentType string

const (
	CategoryPixTransfer      Category = "PIX_TRANSFER"
	CategoryWhatsAppTakeover Category = "WHATSAPP_TAKEOVER"
	CategoryFakeInvoice      Category = "FAKE_INVOICE"
	CategoryRomanceScam      Category = "ROMANCE_SCAM"
	CategoryFakeJob          Category = "FAKE_JOB"
	CategoryInvestmentScam   Category = "INVESTMENT_SCAM"
	CategoryFakeStore        Category = "FAKE_STORE"
	CategoryPhishing         Category = "PHISHING"
	CategoryCardFraud        Category = "CARD_FRAUD"
	CategoryLoanFraud        Category = "LOAN_FRAUD"
	CategoryOther            Category = "OTHER"

	DocumentIncidentReport    DocumentType = "INCIDENT_REPORT"
	DocumentReversalContest   DocumentType = "REVERSAL_CONTEST"
	DocumentFormalNotice      DocumentType = "FORMAL_NOTICE"
	DocumentConsumerComplaint DocumentType = "CONSUMER_COMPLAINT"
	DocumentPetition          DocumentType = "PETITION"

	MinDescriptionLength = 20
)

// Categories is the canonical ordering. When two categories score the same,
// the one declared first here wins.
var Categories = []Category{
	CategoryPixTransfer,
	CategoryWhatsAppTakeover,
	CategoryFakeInvoice,
	CategoryRomanceScam,
	CategoryFakeJob,
	CategoryInvestmentScam,
	CategoryFakeStore,
	CategoryPhishing,
	CategoryCardFraud,
	CategoryLoanFraud,
	CategoryOther,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IsRapidTransfer reports whether the funds moved through an instant transfer
// that the bank can still freeze through the special refund mechanism (MED).
func (c Category) IsRapidTransfer() bool {
	switch c {
	case CategoryPixTransfer, CategoryWhatsAppTakeover:
		return true
	default:
		return false
	}
}

type RecommendedAction struct {
	Order                 int          `json:"order"`
	Title                 string       `json:"title"`
	Description           string       `json:"description"`
	Deadline              string       `json:"deadline"`
	Mandatory             bool         `json:"mandatory"`
	GeneratedDocumentType DocumentType `json:"generated_document_type,omitempty"`
	Link                  string       `json:"link,omitempty"`
}

type Classification struct {
	Category            Category            `json:"category"`
	Confidence          int                 `json:"confidence"`
	RecoveryProbability int                 `json:"recovery_probability"`
	LegalDeadlineNote   string              `json:"legal_deadline_note"`
	ActionPlan          []RecommendedAction `json:"action_plan"`
}

type IncidentReport struct {
	Description string
	Amount      float64
	OccurredAt  time.Time
}

func (r *IncidentReport) Validate(now time.Time) error {
	description := strings.TrimSpace(r.Description)
	if description == "" {
		return &ValidationError{Field: "description", Message: "is required"}
	}
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return &ValidationError{Field: "description", Message: "must describe what happened in at least 20 characters"}
	}
	if r.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	if r.OccurredAt.After(now) {
		return &ValidationError{Field: "occurred_at", Message: "cannot be in the future"}
	}
	return nil
}
