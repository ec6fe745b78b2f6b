package domain

import "time"

// Window é a janela de apuração de um ciclo de avaliação
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LastHours cria uma janela terminando em end e cobrindo as últimas n horas
func LastHours(end time.Time, hours int) Window {
	return Window{
		Start: end.Add(-time.Duration(hours) * time.Hour),
		End:   end,
	}
}
