package scoring

import (
	"fmt"
	"time"

	"github.com/vfg2006/campaign-guardian/internal/config"
	"github.com/vfg2006/campaign-guardian/internal/domain"
	"github.com/vfg2006/campaign-guardian/pkg/utils"
)

// Scorer calcula o score de risco de uma entidade a partir do registro
// normalizado de desempenho. Função pura: sem efeitos colaterais, apenas o
// registro de entrada e os limiares estáticos de configuração.
type Scorer interface {
	Score(record *domain.PerformanceRecord) *domain.RiskScore
}

// Thresholds são os limiares de pontuação do motor. Valores empíricos herdados
// da operação manual, sempre configuráveis.
type Thresholds struct {
	TargetROAS             float64
	BudgetUtilizationWarn  float64
	BudgetUtilizationLimit float64
	MinCTR                 float64
	MaxFrequency           float64
	MinQualityScore        float64
	StaleAfterDays         int
	MediumRiskScore        float64
	HighRiskScore          float64
	CriticalRiskScore      float64
}

// DefaultThresholds retorna os limiares padrão do motor
func DefaultThresholds() Thresholds {
	return Thresholds{
		TargetROAS:             2.0,
		BudgetUtilizationWarn:  80.0,
		BudgetUtilizationLimit: 95.0,
		MinCTR:                 0.8,
		MaxFrequency:           3.0,
		MinQualityScore:        6.0,
		StaleAfterDays:         30,
		MediumRiskScore:        40.0,
		HighRiskScore:          70.0,
		CriticalRiskScore:      85.0,
	}
}

type Service struct {
	thresholds Thresholds
	weights    domain.RiskWeights
}

// NewService cria o serviço de pontuação de risco a partir da configuração global
func NewService(appConfig *config.Config) *Service {
	engine := appConfig.Engine

	return &Service{
		thresholds: Thresholds{
			TargetROAS:             engine.TargetROAS,
			BudgetUtilizationWarn:  engine.BudgetUtilizationWarn,
			BudgetUtilizationLimit: engine.BudgetUtilizationLimit,
			MinCTR:                 engine.MinCTR,
			MaxFrequency:           engine.MaxFrequency,
			MinQualityScore:        engine.MinQualityScore,
			StaleAfterDays:         engine.StaleAfterDays,
			MediumRiskScore:        engine.MediumRiskScore,
			HighRiskScore:          engine.HighRiskScore,
			CriticalRiskScore:      engine.CriticalRiskScore,
		},
		weights: domain.RiskWeights{
			Financial:   engine.WeightFinancial,
			Performance: engine.WeightPerformance,
			Operational: engine.WeightOperational,
			Market:      engine.WeightMarket,
		},
	}
}

// NewServiceWithThresholds cria o serviço com limiares e pesos explícitos
func NewServiceWithThresholds(thresholds Thresholds, weights domain.RiskWeights) *Service {
	return &Service{thresholds: thresholds, weights: weights}
}

// Score calcula os quatro sub-scores e compõe o score geral pela soma
// ponderada. Todos os sub-scores são limitados a [0,100].
func (s *Service) Score(record *domain.PerformanceRecord) *domain.RiskScore {
	score := &domain.RiskScore{
		EntityID:  record.EntityID,
		Timestamp: record.WindowEnd,
	}

	var factors []string

	score.Financial, factors = s.financialRisk(record, factors)
	score.Performance, factors = s.performanceRisk(record, factors)
	score.Operational, factors = s.operationalRisk(record, factors)
	score.Market, factors = s.marketRisk(record, factors)

	score.ComposeOverall(s.weights)
	score.Overall = utils.RoundWithTwoDecimalPlace(score.Overall)
	score.Level = s.riskLevel(score.Overall)
	score.RiskFactors = factors

	return score
}

// financialRisk cresce conforme o ROAS cai abaixo da meta (penalidade linear,
// saturando em 100 quando ROAS <= 0) e conforme a utilização do orçamento
// ultrapassa o limiar de alerta. Entidade sem gasto não gera risco de ROAS.
func (s *Service) financialRisk(record *domain.PerformanceRecord, factors []string) (float64, []string) {
	if !record.IsDelivering() {
		return 0, factors
	}

	risk := 0.0

	if record.Spend > 0 {
		roas := record.ROAS()
		if roas < s.thresholds.TargetROAS {
			risk += (1 - roas/s.thresholds.TargetROAS) * 100
			factors = append(factors, fmt.Sprintf("ROAS baixo: %.2f (meta: %.2f)", roas, s.thresholds.TargetROAS))
		}
	}

	utilization := record.BudgetUtilization()
	if utilization > s.thresholds.BudgetUtilizationWarn {
		// Até 25 pontos adicionais entre o limiar de alerta e 100% de utilização
		span := 100.0 - s.thresholds.BudgetUtilizationWarn
		excess := utilization - s.thresholds.BudgetUtilizationWarn
		risk += clamp(excess/span, 0, 1) * 25
		factors = append(factors, fmt.Sprintf("Utilização de orçamento alta: %.1f%%", utilization))
	}

	return utils.RoundWithTwoDecimalPlace(clamp(risk, 0, 100)), factors
}

// performanceRisk cresce conforme o CTR cai abaixo do benchmark e a frequência
// ultrapassa o limiar de fadiga de audiência
func (s *Service) performanceRisk(record *domain.PerformanceRecord, factors []string) (float64, []string) {
	if !record.IsDelivering() {
		return 0, factors
	}

	risk := 0.0

	if record.Impressions > 0 {
		ctr := record.CTR()
		if ctr < s.thresholds.MinCTR {
			risk += (1 - ctr/s.thresholds.MinCTR) * 50
			factors = append(factors, fmt.Sprintf("CTR baixo: %.2f%% (mínimo: %.2f%%)", ctr, s.thresholds.MinCTR))
		}
	}

	if record.Frequency > s.thresholds.MaxFrequency {
		risk += clamp((record.Frequency-s.thresholds.MaxFrequency)*20, 0, 30)
		factors = append(factors, fmt.Sprintf("Frequência alta: %.2f (fadiga acima de %.1f)", record.Frequency, s.thresholds.MaxFrequency))
	}

	// QualityScore zero significa indisponível, não penaliza
	if record.QualityScore > 0 && record.QualityScore < s.thresholds.MinQualityScore {
		risk += (1 - record.QualityScore/s.thresholds.MinQualityScore) * 20
		factors = append(factors, fmt.Sprintf("Quality score baixo: %.1f", record.QualityScore))
	}

	return utils.RoundWithTwoDecimalPlace(clamp(risk, 0, 100)), factors
}

// operationalRisk cresce com a idade da entidade sem eventos de otimização e
// com a estagnação criativa. Entidade sem entrega só gera risco operacional.
func (s *Service) operationalRisk(record *domain.PerformanceRecord, factors []string) (float64, []string) {
	risk := 0.0
	stale := s.thresholds.StaleAfterDays

	if !record.IsDelivering() {
		risk += 40
		factors = append(factors, "Entidade sem entrega: nenhum gasto e nenhuma impressão na janela")
	}

	if record.EntityAgeDays > stale {
		risk += 25
		factors = append(factors, fmt.Sprintf("Entidade rodando há %d dias, possível fadiga criativa", record.EntityAgeDays))
	}

	if record.DaysSinceOptimization > stale {
		risk += 25
		factors = append(factors, fmt.Sprintf("Sem otimização há %d dias", record.DaysSinceOptimization))
	} else if stale > 0 && record.DaysSinceOptimization > stale/2 {
		risk += 10
		factors = append(factors, fmt.Sprintf("Última otimização há %d dias", record.DaysSinceOptimization))
	}

	return utils.RoundWithTwoDecimalPlace(clamp(risk, 0, 100)), factors
}

// marketRisk é um ajuste de menor peso para fatores sazonais. Sem dados de
// mercado disponíveis o componente é zero.
func (s *Service) marketRisk(record *domain.PerformanceRecord, factors []string) (float64, []string) {
	risk := 0.0

	// Entrega de fim de semana historicamente converte menos no varejo
	switch record.WindowEnd.Weekday() {
	case time.Saturday, time.Sunday:
		risk += 10
		factors = append(factors, "Janela de fim de semana: desempenho tipicamente menor")
	}

	return utils.RoundWithTwoDecimalPlace(clamp(risk, 0, 100)), factors
}

func (s *Service) riskLevel(overall float64) domain.RiskLevel {
	switch {
	case overall >= s.thresholds.CriticalRiskScore:
		return domain.RiskLevelCritical
	case overall >= s.thresholds.HighRiskScore:
		return domain.RiskLevelHigh
	case overall >= s.thresholds.MediumRiskScore:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
