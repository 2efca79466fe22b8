package dto

import (
	"strings"
	"time"

	"github.com/lucaspalermo/defesapix/internal/models"
)

type Incident struct {
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (i *Incident) Sanitize() {
	i.Description = strings.TrimSpace(i.Description)
}

// ToEntity defaults a missing occurrence date to now.
func (i *Incident) ToEntity(now time.Time) models.IncidentReport {
	occurredAt := i.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = now
	}
	return models.IncidentReport{
		Description: i.Description,
		Amount:      i.Amount,
		OccurredAt:  occurredAt,
	}
}
