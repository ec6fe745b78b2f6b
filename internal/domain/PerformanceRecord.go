package domain

import (
	"fmt"
	"time"
)

// PerformanceRecord é o registro normalizado de desempenho de uma entidade em
// uma janela de apuração. Imutável depois de ingerido: um registro por entidade
// por janela.
type PerformanceRecord struct {
	EntityID    string     `json:"entity_id"`
	EntityType  EntityType `json:"entity_type"`
	WindowStart time.Time  `json:"window_start"`
	WindowEnd   time.Time  `json:"window_end"`

	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Frequency   float64 `json:"frequency"`

	// QualityScore vem do ranking de qualidade do anúncio (0 quando indisponível)
	QualityScore float64 `json:"quality_score"`

	// DailyBudget é o orçamento diário vigente da entidade na janela
	DailyBudget float64 `json:"daily_budget"`

	// EntityAgeDays e DaysSinceOptimization são preenchidos pelo coletor a
	// partir dos metadados da entidade
	EntityAgeDays         int `json:"entity_age_days"`
	DaysSinceOptimization int `json:"days_since_optimization"`
}

// ROAS calcula o retorno sobre o investimento em anúncios. Retorna zero quando
// não há gasto, nunca propaga divisão por zero.
func (r *PerformanceRecord) ROAS() float64 {
	if r.Spend <= 0 {
		return 0
	}
	return r.Revenue / r.Spend
}

// CTR calcula a taxa de cliques em porcentagem
func (r *PerformanceRecord) CTR() float64 {
	if r.Impressions <= 0 {
		return 0
	}
	return (float64(r.Clicks) / float64(r.Impressions)) * 100
}

// BudgetUtilization calcula a porcentagem do orçamento diário consumida
func (r *PerformanceRecord) BudgetUtilization() float64 {
	if r.DailyBudget <= 0 {
		return 0
	}
	return (r.Spend / r.DailyBudget) * 100
}

// IsDelivering indica se a entidade está entregando anúncios na janela.
// Entidades sem gasto e sem impressões são tratadas como "ainda não entregando"
// e não como perda crítica.
func (r *PerformanceRecord) IsDelivering() bool {
	return r.Spend > 0 || r.Impressions > 0
}

// Validate verifica os campos obrigatórios do registro antes da ingestão
func (r *PerformanceRecord) Validate() error {
	if r == nil {
		return fmt.Errorf("registro de desempenho nulo")
	}
	if r.EntityID == "" {
		return fmt.Errorf("registro de desempenho sem entity_id")
	}
	if !IsValidEntityType(r.EntityType) {
		return fmt.Errorf("tipo de entidade inválido: %q", r.EntityType)
	}
	if r.WindowStart.IsZero() || r.WindowEnd.IsZero() {
		return fmt.Errorf("janela de apuração ausente para a entidade %s", r.EntityID)
	}
	if r.WindowEnd.Before(r.WindowStart) {
		return fmt.Errorf("janela de apuração invertida para a entidade %s", r.EntityID)
	}
	if r.Spend < 0 || r.Revenue < 0 || r.Impressions < 0 || r.Clicks < 0 || r.Conversions < 0 {
		return fmt.Errorf("métricas negativas no registro da entidade %s", r.EntityID)
	}
	return nil
}
