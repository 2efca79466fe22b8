package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lucaspalermo/defesapix/internal/classifier"
	"github.com/lucaspalermo/defesapix/internal/metrics"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/lucaspalermo/defesapix/internal/models/dto"
	"github.com/sirupsen/logrus"
)

const envDevelopment = "development"

// IncidentService classifies incident reports and builds their action plan.
type IncidentService struct {
	Publisher Publisher
	Env       string
	Classify  func(text string, amount float64) models.Classification
	Now       func() time.Time
}

func NewIncidentService(publisher Publisher, env string) *IncidentService {
	return &IncidentService{
		Publisher: publisher,
		Env:       env,
		Classify:  classifier.Classify,
		Now:       time.Now,
	}
}

// Assess validates the report and classifies it. A panic inside the
// classifier crashes in development and degrades to OTHER anywhere else.
// The incidents.classified event is best-effort.
func (s *IncidentService) Assess(ctx context.Context, incidentDTO *dto.Incident) (*models.Classification, error) {
	now := s.Now()
	incidentDTO.Sanitize()
	report := incidentDTO.ToEntity(now)
	if err := report.Validate(now); err != nil {
		return nil, err
	}

	classification := s.classify(report)

	metrics.IncidentsClassifiedTotal.WithLabelValues(string(classification.Category)).Inc()
	metrics.IncidentAmounts.WithLabelValues(string(classification.Category)).Observe(report.Amount)

	event := models.IncidentClassifiedEvent{
		Category:            classification.Category,
		Confidence:          classification.Confidence,
		RecoveryProbability: classification.RecoveryProbability,
		Amount:              report.Amount,
		Actions:             len(classification.ActionPlan),
		TraceID:             uuid.NewString(),
		ClassifiedAt:        now.UTC(),
	}
	if err := s.Publisher.Publish(ctx, models.IncidentClassifiedTopic, event); err != nil {
		logrus.WithField("trace_id", event.TraceID).Errorf("error publishing classification: %s", err.Error())
	}

	return &classification, nil
}

func (s *IncidentService) classify(report models.IncidentReport) (c models.Classification) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if s.Env == envDevelopment {
			panic(r)
		}
		metrics.ClassificationFallbacksTotal.Inc()
		logrus.WithField("panic", fmt.Sprint(r)).Error("classification failed, falling back to OTHER")
		c = classifier.Fallback(report.Amount)
	}()
	return s.Classify(report.Description, report.Amount)
}
