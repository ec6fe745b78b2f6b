package domain

import "time"

type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdSet    EntityType = "ad_set"
	EntityTypeAd       EntityType = "ad"
)

type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "ACTIVE"
	EntityStatusPaused   EntityStatus = "PAUSED"
	EntityStatusArchived EntityStatus = "ARCHIVED"
)

// MonitoredEntity representa uma unidade de anúncio (campanha, conjunto ou anúncio)
// sob monitoramento do motor de decisão
type MonitoredEntity struct {
	ID          string       `json:"id"`
	ExternalID  string       `json:"external_id"`
	AccountID   string       `json:"account_id"`
	Name        string       `json:"name"`
	Type        EntityType   `json:"type"`
	Status      EntityStatus `json:"status"`
	DailyBudget float64      `json:"daily_budget"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsValidEntityType verifica se o tipo de entidade é um dos tipos monitoráveis
func IsValidEntityType(t EntityType) bool {
	switch t {
	case EntityTypeCampaign, EntityTypeAdSet, EntityTypeAd:
		return true
	}
	return false
}

// RegisterEntityRequest representa o corpo da requisição de cadastro de entidade
type RegisterEntityRequest struct {
	ExternalID  string     `json:"external_id"`
	AccountID   string     `json:"account_id"`
	Name        string     `json:"name"`
	Type        EntityType `json:"type"`
	DailyBudget float64    `json:"daily_budget"`
}

// UpdateEntityRequest representa o corpo da requisição de atualização de entidade
type UpdateEntityRequest struct {
	ID          string        `json:"id"`
	Name        *string       `json:"name,omitempty"`
	Status      *EntityStatus `json:"status,omitempty"`
	DailyBudget *float64      `json:"daily_budget,omitempty"`
}
