package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsedFloat(t *testing.T) {
	assert.Equal(t, 14500.75, ParsedFloat("spend", "14500.75"))
	assert.Equal(t, 0.0, ParsedFloat("spend", ""))
	assert.Equal(t, 0.0, ParsedFloat("spend", "não numérico"))
}

func TestParsedInt(t *testing.T) {
	assert.Equal(t, 100000, ParsedInt("impressions", "100000"))
	assert.Equal(t, 0, ParsedInt("impressions", ""))
	assert.Equal(t, 0, ParsedInt("impressions", "12.5"))
}

func TestEntityInsight_Conversions(t *testing.T) {
	insight := &EntityInsight{
		Actions: []Action{
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "12"},
			{ActionType: "purchase", Value: "3"},
			{ActionType: "link_click", Value: "950"},
			{ActionType: "landing_page_view", Value: "700"},
		},
	}

	// Só ações de compra contam, cliques e visualizações ficam de fora
	assert.Equal(t, 15, insight.Conversions())
}

func TestEntityInsight_Revenue(t *testing.T) {
	insight := &EntityInsight{
		ActionValues: []Action{
			{ActionType: "omni_purchase", Value: "10150.50"},
			{ActionType: "offsite_conversion.fb_pixel_add_to_cart", Value: "999.99"},
		},
	}

	assert.Equal(t, 10150.50, insight.Revenue())
}

func TestEntityInsight_Revenue_SemAcoesDeCompra(t *testing.T) {
	insight := &EntityInsight{}

	assert.Equal(t, 0.0, insight.Revenue())
}

func TestEntityInsight_QualityScore(t *testing.T) {
	tests := []struct {
		ranking  string
		expected float64
	}{
		{ranking: "ABOVE_AVERAGE", expected: 8},
		{ranking: "AVERAGE", expected: 6.5},
		{ranking: "BELOW_AVERAGE_10", expected: 5},
		{ranking: "BELOW_AVERAGE_20", expected: 4},
		{ranking: "BELOW_AVERAGE_35", expected: 3},
		{ranking: "UNKNOWN", expected: 0},
		{ranking: "", expected: 0},
	}

	for _, tt := range tests {
		insight := &EntityInsight{QualityRanking: tt.ranking}
		assert.Equal(t, tt.expected, insight.QualityScore(), "ranking %q", tt.ranking)
	}
}
