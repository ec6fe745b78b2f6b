package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	metadomain "github.com/vfg2006/campaign-guardian/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-guardian/internal/config"
	"github.com/vfg2006/campaign-guardian/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

type Client interface {
	GetEntityInsights(externalID string, entityType domain.EntityType, window domain.Window) (*metadomain.EntityInsight, error)
	GetEntityDailyBudget(externalID string) (float64, error)
	UpdateEntityStatus(externalID string, status string) error
	UpdateEntityDailyBudget(externalID string, dailyBudget float64) error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &MetaClient{
		Cfg:        cfg,
		httpClient: &http.Client{},
	}
	return client
}

// HandleResponse manipula a resposta HTTP da Graph API e traduz erros
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResp metadomain.ErrorResponse
	if parseErr := json.Unmarshal(body, &errorResp); parseErr == nil && errorResp.Error.Message != "" {
		if errorResp.IsTokenExpired() {
			return nil, fmt.Errorf("token de acesso expirado ou inválido. Código: %d, Subcódigo: %d",
				errorResp.Error.Code, errorResp.Error.ErrorSubcode)
		}
		if errorResp.IsRateLimited() {
			return nil, fmt.Errorf("limite de requisições da API atingido. Código: %d", errorResp.Error.Code)
		}
		return nil, fmt.Errorf("erro na resposta da API. Código: %d, Mensagem: %s",
			errorResp.Error.Code, errorResp.Error.Message)
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}
