package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Action representa um par action_type/value das respostas de insights do Meta
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Tipos de ação de compra usados para derivar receita e conversões
var purchaseActionTypes = []string{
	"offsite_conversion.fb_pixel_purchase",
	"purchase",
	"omni_purchase",
}

// EntityInsight é a linha bruta de /{id}/insights da Graph API. Campos
// numéricos chegam como string e são convertidos na normalização.
type EntityInsight struct {
	AccountID      string   `json:"account_id"`
	Spend          string   `json:"spend"`
	Impressions    string   `json:"impressions"`
	Clicks         string   `json:"clicks"`
	Frequency      string   `json:"frequency"`
	Actions        []Action `json:"actions"`
	ActionValues   []Action `json:"action_values"`
	QualityRanking string   `json:"quality_ranking"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
}

// ParsedFloat converte um campo string da API para float64, zero em caso de erro
func ParsedFloat(field, value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Warn("Erro ao converter campo numérico da API do Meta")
		return 0
	}

	return parsed
}

// ParsedInt converte um campo string da API para int, zero em caso de erro
func ParsedInt(field, value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Warn("Erro ao converter campo inteiro da API do Meta")
		return 0
	}

	return parsed
}

// Conversions soma as ações de compra do insight
func (i *EntityInsight) Conversions() int {
	total := 0
	for _, action := range i.Actions {
		if isPurchaseAction(action.ActionType) {
			total += ParsedInt("actions."+action.ActionType, action.Value)
		}
	}
	return total
}

// Revenue soma os valores das ações de compra (action_values)
func (i *EntityInsight) Revenue() float64 {
	total := 0.0
	for _, action := range i.ActionValues {
		if isPurchaseAction(action.ActionType) {
			total += ParsedFloat("action_values."+action.ActionType, action.Value)
		}
	}
	return total
}

// QualityScore traduz o quality_ranking do Meta para a escala numérica do
// motor. Zero significa indisponível.
func (i *EntityInsight) QualityScore() float64 {
	switch i.QualityRanking {
	case "ABOVE_AVERAGE":
		return 8
	case "AVERAGE":
		return 6.5
	case "BELOW_AVERAGE_10":
		return 5
	case "BELOW_AVERAGE_20":
		return 4
	case "BELOW_AVERAGE_35":
		return 3
	default:
		return 0
	}
}

func isPurchaseAction(actionType string) bool {
	for _, t := range purchaseActionTypes {
		if actionType == t {
			return true
		}
	}
	return false
}
