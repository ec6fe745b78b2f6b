package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-guardian/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-guardian/internal/domain"
)

type ResponseEntityInsights struct {
	Data []metadomain.EntityInsight `json:"data"`
}

var insightFields = "spend,impressions,clicks,frequency,actions,action_values,quality_ranking,date_start,date_stop"

// InsightLevel traduz o tipo de entidade para o token de level da Graph API,
// que usa "adset" sem underscore
func InsightLevel(entityType domain.EntityType) string {
	if entityType == domain.EntityTypeAdSet {
		return "adset"
	}
	return string(entityType)
}

// GetEntityInsights busca os insights consolidados de uma entidade
// (campanha, conjunto ou anúncio) na janela informada
func (c *MetaClient) GetEntityInsights(externalID string, entityType domain.EntityType, window domain.Window) (*metadomain.EntityInsight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, externalID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", window.Start.Format(time.DateOnly), window.End.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", insightFields)
	params.Add("level", InsightLevel(entityType))
	params.Add("time_range", timeRange)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response ResponseEntityInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, errors.New("no data found")
	}

	return &response.Data[0], nil
}
