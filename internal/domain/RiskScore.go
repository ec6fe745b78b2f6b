package domain

import "time"

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// RiskWeights define o peso de cada sub-score na composição do score geral
type RiskWeights struct {
	Financial   float64 `json:"financial"`
	Performance float64 `json:"performance"`
	Operational float64 `json:"operational"`
	Market      float64 `json:"market"`
}

// DefaultRiskWeights são os pesos 40/30/20/10 herdados da operação manual.
// Valores empíricos, configuráveis, não invariantes.
func DefaultRiskWeights() RiskWeights {
	return RiskWeights{
		Financial:   0.4,
		Performance: 0.3,
		Operational: 0.2,
		Market:      0.1,
	}
}

// RiskScore é o resultado da avaliação de risco de uma entidade em um ciclo.
// Derivado e imutável: um novo registro é criado a cada ciclo, nunca mutado.
type RiskScore struct {
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`

	// Sub-scores em [0,100]
	Financial   float64 `json:"financial"`
	Performance float64 `json:"performance"`
	Operational float64 `json:"operational"`
	Market      float64 `json:"market"`

	// Overall é sempre recomposto pela soma ponderada dos quatro sub-scores
	Overall float64 `json:"overall"`

	Level RiskLevel `json:"level"`

	// RiskFactors lista os fatores que contribuíram para o score
	RiskFactors []string `json:"risk_factors,omitempty"`
}

// ComposeOverall recalcula o score geral como soma ponderada dos sub-scores
func (s *RiskScore) ComposeOverall(w RiskWeights) {
	s.Overall = s.Financial*w.Financial +
		s.Performance*w.Performance +
		s.Operational*w.Operational +
		s.Market*w.Market
}
