package classifier_test

import (
	"sync"
	"testing"

	"github.com/lucaspalermo/defesapix/internal/classifier"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_CountsEachPhraseOnce(t *testing.T) {
	text := "Fiz um PIX, depois outro pix e mais um Pix para a chave que me passaram"

	assert.Equal(t, 1, classifier.Score(text, models.CategoryPixTransfer))
}

func TestScore_IsCaseInsensitive(t *testing.T) {
	text := "CLONARAM meu WhatsApp e pediram dinheiro aos meus contatos"

	assert.Equal(t, 2, classifier.Score(text, models.CategoryWhatsAppTakeover))
}

func TestScore_LowersAccentedCapitals(t *testing.T) {
	text := "Pediram uma TRANSFERÊNCIA urgente"

	assert.Equal(t, 1, classifier.Score(text, models.CategoryPixTransfer))
}

func TestScore_OtherHasNoKeywords(t *testing.T) {
	assert.Equal(t, 0, classifier.Score("pix boleto whatsapp", models.CategoryOther))
}

func TestScore_EmptyText(t *testing.T) {
	for _, category := range models.Categories {
		assert.Equal(t, 0, classifier.Score("", category))
	}
}

func TestClassify_NoKeywords_FallsBackToOther(t *testing.T) {
	c := classifier.Classify("Aconteceu algo estranho ontem à noite e perdi dinheiro", 2000)

	assert.Equal(t, models.CategoryOther, c.Category)
	assert.Equal(t, 40, c.Confidence)
}

func TestClassify_EmptyText_FallsBackToOther(t *testing.T) {
	c := classifier.Classify("", 0)

	assert.Equal(t, models.CategoryOther, c.Category)
	assert.Equal(t, 40, c.Confidence)
	require.NotEmpty(t, c.ActionPlan)
}

func TestClassify_TwoKeywords_Confidence80(t *testing.T) {
	c := classifier.Classify("Recebi um boleto com código de barras adulterado", 2000)

	assert.Equal(t, models.CategoryFakeInvoice, c.Category)
	assert.Equal(t, 80, c.Confidence)
}

func TestClassify_ConfidenceCappedAt95(t *testing.T) {
	text := "Invest em criptomoeda e bitcoin numa corretora com lucro garantido e rendimento alto, um investimento em pirâmide"

	c := classifier.Classify(text, 2000)

	assert.Equal(t, models.CategoryInvestmentScam, c.Category)
	assert.Equal(t, 95, c.Confidence)
}

func TestClassify_TieGoesToCanonicalOrder(t *testing.T) {
	// one PIX_TRANSFER keyword and one FAKE_INVOICE keyword
	c := classifier.Classify("paguei um boleto e depois fiz um pix", 2000)

	assert.Equal(t, models.CategoryPixTransfer, c.Category)
	assert.Equal(t, 65, c.Confidence)
}

func TestClassify_TieBreakIgnoresAmount(t *testing.T) {
	text := "paguei um boleto e depois fiz um pix"

	for _, amount := range []float64{1, 999, 5000, 60000} {
		assert.Equal(t, models.CategoryPixTransfer, classifier.Classify(text, amount).Category)
	}
}

func TestClassify_HigherScoreWins(t *testing.T) {
	text := "Clonaram meu whatsapp e um golpista pediu um pix se passando por mim"

	c := classifier.Classify(text, 800)

	assert.Equal(t, models.CategoryWhatsAppTakeover, c.Category)
	assert.Equal(t, 95, c.Confidence)
	assert.NotEmpty(t, c.LegalDeadlineNote)
}

func TestRecoveryProbability_AmountAdjustments(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int
	}{
		{"low amount bonus", 500, 75},
		{"high amount penalty", 100000, 50},
		{"no adjustment", 5000, 65},
		{"exactly 1000 has no bonus", 1000, 65},
		{"exactly 50000 has no penalty", 50000, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.RecoveryProbability(models.CategoryPixTransfer, tt.amount))
		})
	}
}

func TestRecoveryProbability_Clamped(t *testing.T) {
	// CARD_FRAUD base 75 + 10 stays under the cap
	assert.Equal(t, 85, classifier.RecoveryProbability(models.CategoryCardFraud, 10))
	// INVESTMENT_SCAM base 20 - 15 hits the floor
	assert.Equal(t, 10, classifier.RecoveryProbability(models.CategoryInvestmentScam, 1_000_000))
}

func TestRecoveryProbability_UnknownCategoryUsesOther(t *testing.T) {
	assert.Equal(t,
		classifier.RecoveryProbability(models.CategoryOther, 5000),
		classifier.RecoveryProbability(models.Category("UNKNOWN"), 5000),
	)
}

func TestFallback(t *testing.T) {
	c := classifier.Fallback(200)

	assert.Equal(t, models.CategoryOther, c.Category)
	assert.Equal(t, 40, c.Confidence)
	assert.Equal(t, 40, c.RecoveryProbability)
	assert.Equal(t, models.DocumentIncidentReport, c.ActionPlan[0].GeneratedDocumentType)
}

func TestClassify_ConcurrentCallsAgree(t *testing.T) {
	text := "Clonaram meu whatsapp e pediram um pix"
	want := classifier.Classify(text, 3000)

	var wg sync.WaitGroup
	results := make([]models.Classification, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = classifier.Classify(text, 3000)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
