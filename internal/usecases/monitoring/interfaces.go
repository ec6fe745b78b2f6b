package monitoring

import (
	"github.com/vfg2006/campaign-guardian/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// AdsClient é o colaborador externo que conversa com a plataforma de anúncios.
// O motor nunca embute credenciais, endpoints ou schemas de payload: busca de
// métricas e execução de comandos pertencem ao colaborador.
type AdsClient interface {
	// FetchPerformance busca o registro normalizado de desempenho da entidade
	// para a janela informada
	FetchPerformance(entity *domain.MonitoredEntity, window domain.Window) (*domain.PerformanceRecord, error)

	// Execute aplica um comando na plataforma de anúncios. A entidade é
	// necessária porque a plataforma endereça pelo identificador externo.
	Execute(entity *domain.MonitoredEntity, command domain.Command) error
}
