package domain

import "fmt"

type CommandType string

const (
	CommandNoOp            CommandType = "noop"
	CommandAlert           CommandType = "alert"
	CommandAdjustBudget    CommandType = "adjust_budget"
	CommandPause           CommandType = "pause"
	CommandRequireApproval CommandType = "require_approval"
)

// Command é a representação abstrata da ação escolhida, pronta para o
// colaborador de execução. O motor nunca chama a rede: a execução pertence ao
// Ads Client.
type Command struct {
	Type     CommandType `json:"type"`
	EntityID string      `json:"entity_id,omitempty"`

	// Alert
	Severity Severity `json:"severity,omitempty"`
	Message  string   `json:"message,omitempty"`

	// AdjustBudget: variação percentual sobre o orçamento diário vigente
	BudgetDeltaPct float64 `json:"budget_delta_pct,omitempty"`

	// RequireApproval: valor de orçamento que depende de aprovação manual
	RequestedAmount float64 `json:"requested_amount,omitempty"`
}

// IsNoOp indica se o comando não produz nenhum efeito
func (c Command) IsNoOp() bool {
	return c.Type == CommandNoOp || c.Type == ""
}

func (c Command) String() string {
	switch c.Type {
	case CommandAdjustBudget:
		return fmt.Sprintf("%s(%s, %+.0f%%)", c.Type, c.EntityID, c.BudgetDeltaPct)
	case CommandAlert:
		return fmt.Sprintf("%s(%s, %s)", c.Type, c.Severity, c.Message)
	case CommandPause, CommandRequireApproval:
		return fmt.Sprintf("%s(%s)", c.Type, c.EntityID)
	default:
		return string(CommandNoOp)
	}
}
