package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-guardian/internal/domain"
)

// quarta-feira, janela encerrando em dia útil
var wednesday = time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)
var saturday = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func newService() *Service {
	return NewServiceWithThresholds(DefaultThresholds(), domain.DefaultRiskWeights())
}

func healthyRecord() *domain.PerformanceRecord {
	return &domain.PerformanceRecord{
		EntityID:              "ENT001",
		EntityType:            domain.EntityTypeCampaign,
		WindowStart:           wednesday.Add(-24 * time.Hour),
		WindowEnd:             wednesday,
		Spend:                 500.0,
		Revenue:               2500.0,
		Impressions:           100000,
		Clicks:                1200,
		Conversions:           30,
		Frequency:             1.8,
		QualityScore:          8.0,
		DailyBudget:           1000.0,
		EntityAgeDays:         10,
		DaysSinceOptimization: 5,
	}
}

func TestService_Score(t *testing.T) {
	tests := []struct {
		name     string
		record   func() *domain.PerformanceRecord
		validate func(t *testing.T, score *domain.RiskScore)
	}{
		{
			name:   "Campanha saudável - nenhum sub-score de risco",
			record: healthyRecord,
			validate: func(t *testing.T, score *domain.RiskScore) {
				assert.Equal(t, 0.0, score.Financial)
				assert.Equal(t, 0.0, score.Performance)
				assert.Equal(t, 0.0, score.Operational)
				assert.Equal(t, 0.0, score.Market)
				assert.Equal(t, 0.0, score.Overall)
				assert.Equal(t, domain.RiskLevelLow, score.Level)
				assert.Empty(t, score.RiskFactors)
			},
		},
		{
			name: "Entidade sem gasto e sem impressões - sem divisão por zero, só risco operacional",
			record: func() *domain.PerformanceRecord {
				record := healthyRecord()
				record.Spend = 0
				record.Revenue = 0
				record.Impressions = 0
				record.Clicks = 0
				record.Conversions = 0
				record.Frequency = 0
				return record
			},
			validate: func(t *testing.T, score *domain.RiskScore) {
				assert.Equal(t, 0.0, score.Financial)
				assert.Equal(t, 0.0, score.Performance)
				assert.Equal(t, 40.0, score.Operational)
				assert.Equal(t, 0.0, score.Market)
				assert.Equal(t, 8.0, score.Overall)
				assert.Equal(t, domain.RiskLevelLow, score.Level)
				assert.Contains(t, score.RiskFactors, "Entidade sem entrega: nenhum gasto e nenhuma impressão na janela")
			},
		},
		{
			name: "ROAS 0.70 com orçamento quase todo consumido - risco financeiro alto",
			record: func() *domain.PerformanceRecord {
				record := healthyRecord()
				record.Spend = 14500.0
				record.Revenue = 10150.0
				record.DailyBudget = 15000.0
				return record
			},
			validate: func(t *testing.T, score *domain.RiskScore) {
				// ROAS 0.70 contra meta 2.0: (1 - 0.35) * 100 = 65
				// Utilização 96.67%: clamp(16.67/20) * 25 = 20.83
				assert.InDelta(t, 85.83, score.Financial, 0.01)
				assert.Equal(t, 0.0, score.Performance)
				assert.Equal(t, 0.0, score.Operational)
			},
		},
		{
			name: "Desempenho degradado - CTR, frequência e quality score penalizados",
			record: func() *domain.PerformanceRecord {
				record := healthyRecord()
				record.Clicks = 400 // CTR 0.4%
				record.Frequency = 4.0
				record.QualityScore = 3.0
				return record
			},
			validate: func(t *testing.T, score *domain.RiskScore) {
				// CTR: (1 - 0.4/0.8) * 50 = 25
				// Frequência: clamp((4.0 - 3.0) * 20, 0, 30) = 20
				// Quality: (1 - 3.0/6.0) * 20 = 10
				assert.InDelta(t, 55.0, score.Performance, 0.01)
				assert.Len(t, score.RiskFactors, 3)
			},
		},
		{
			name: "Quality score indisponível - não penaliza",
			record: func() *domain.PerformanceRecord {
				record := healthyRecord()
				record.QualityScore = 0
				return record
			},
			validate: func(t *testing.T, score *domain.RiskScore) {
				assert.Equal(t, 0.0, score.Performance)
			},
		},
		{
			name: "Entidade estagnada - idade e falta de otimização somam risco operacional",
			record: func() *domain.PerformanceRecord {
				record := healthyRecord()
				record.EntityAgeDays = 45
				record.DaysSinceOptimization = 40
				return record
			},
			validate: func(t *testing.T, score *domain.RiskScore) {
				assert.Equal(t, 50.0, score.Operational)
			},
		},
		{
			name: "Otimização entre metade e o limite de estagnação - penalidade parcial",
			record: func() *domain.PerformanceRecord {
				record := healthyRecord()
				record.DaysSinceOptimization = 20
				return record
			},
			validate: func(t *testing.T, score *domain.RiskScore) {
				assert.Equal(t, 10.0, score.Operational)
			},
		},
		{
			name: "Janela de fim de semana - risco de mercado fixo",
			record: func() *domain.PerformanceRecord {
				record := healthyRecord()
				record.WindowStart = saturday.Add(-24 * time.Hour)
				record.WindowEnd = saturday
				return record
			},
			validate: func(t *testing.T, score *domain.RiskScore) {
				assert.Equal(t, 10.0, score.Market)
			},
		},
		{
			name: "Tudo no pior caso - sub-scores limitados a 100",
			record: func() *domain.PerformanceRecord {
				record := healthyRecord()
				record.Spend = 2000.0
				record.Revenue = 0
				record.Clicks = 0
				record.Frequency = 10.0
				record.QualityScore = 1.0
				record.DailyBudget = 1000.0
				record.EntityAgeDays = 90
				record.DaysSinceOptimization = 90
				return record
			},
			validate: func(t *testing.T, score *domain.RiskScore) {
				assert.Equal(t, 100.0, score.Financial)
				assert.LessOrEqual(t, score.Performance, 100.0)
				assert.LessOrEqual(t, score.Operational, 100.0)
				assert.LessOrEqual(t, score.Overall, 100.0)
			},
		},
	}

	service := newService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := service.Score(tt.record())

			assert.Equal(t, "ENT001", score.EntityID)
			tt.validate(t, score)
		})
	}
}

func TestService_Score_OverallIsWeightedSum(t *testing.T) {
	service := newService()

	record := healthyRecord()
	record.Spend = 1000.0
	record.Revenue = 900.0 // ROAS 0.9
	record.Clicks = 500    // CTR 0.5%
	record.EntityAgeDays = 45
	record.WindowStart = saturday.Add(-24 * time.Hour)
	record.WindowEnd = saturday

	score := service.Score(record)

	weights := domain.DefaultRiskWeights()
	expected := score.Financial*weights.Financial +
		score.Performance*weights.Performance +
		score.Operational*weights.Operational +
		score.Market*weights.Market

	assert.InDelta(t, expected, score.Overall, 0.01)
}

func TestService_Score_Determinism(t *testing.T) {
	service := newService()

	record := healthyRecord()
	record.Revenue = 600.0
	record.Frequency = 3.5

	first := service.Score(record)
	second := service.Score(record)

	assert.Equal(t, first, second)
}

func TestService_Score_RiskLevelBands(t *testing.T) {
	// Peso total no financeiro para controlar o score geral diretamente
	weights := domain.RiskWeights{Financial: 1.0}

	tests := []struct {
		name    string
		revenue float64
		level   domain.RiskLevel
	}{
		{
			name:    "ROAS na meta - nível low",
			revenue: 2000.0,
			level:   domain.RiskLevelLow,
		},
		{
			name:    "ROAS 1.0 - penalidade 50, nível medium",
			revenue: 1000.0,
			level:   domain.RiskLevelMedium,
		},
		{
			name:    "ROAS 0.5 - penalidade 75, nível high",
			revenue: 500.0,
			level:   domain.RiskLevelHigh,
		},
		{
			name:    "ROAS zero - penalidade 100, nível critical",
			revenue: 0.0,
			level:   domain.RiskLevelCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewServiceWithThresholds(DefaultThresholds(), weights)

			record := healthyRecord()
			record.Spend = 1000.0
			record.Revenue = tt.revenue
			record.DailyBudget = 10000.0

			score := service.Score(record)

			assert.Equal(t, tt.level, score.Level)
		})
	}
}
