package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type responseEntityBudget struct {
	ID          string `json:"id"`
	DailyBudget string `json:"daily_budget"`
}

type responseUpdateResult struct {
	Success bool `json:"success"`
}

// GetEntityDailyBudget busca o orçamento diário atual de uma entidade.
// A Graph API retorna o valor em centavos da moeda da conta.
func (c *MetaClient) GetEntityDailyBudget(externalID string) (float64, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, externalID)

	params := url.Values{}
	params.Add("fields", "daily_budget")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	resp, err := c.httpClient.Get(baseURL + "?" + params.Encode())
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return 0, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return 0, err
	}

	var response responseEntityBudget
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return 0, err
	}

	cents, err := strconv.ParseFloat(response.DailyBudget, 64)
	if err != nil {
		return 0, fmt.Errorf("erro ao converter orçamento diário: %w", err)
	}

	return cents / 100, nil
}

// UpdateEntityStatus altera o status de entrega de uma entidade (ex: PAUSED)
func (c *MetaClient) UpdateEntityStatus(externalID string, status string) error {
	params := url.Values{}
	params.Add("status", status)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	return c.postEntityUpdate(externalID, params)
}

// UpdateEntityDailyBudget altera o orçamento diário de uma entidade
func (c *MetaClient) UpdateEntityDailyBudget(externalID string, dailyBudget float64) error {
	cents := int64(dailyBudget * 100)

	params := url.Values{}
	params.Add("daily_budget", strconv.FormatInt(cents, 10))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	return c.postEntityUpdate(externalID, params)
}

func (c *MetaClient) postEntityUpdate(externalID string, params url.Values) error {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, externalID)

	req, err := http.NewRequest("POST", baseURL, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return err
	}

	var result responseUpdateResult
	if err := json.Unmarshal(body, &result); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	if !result.Success {
		return fmt.Errorf("a API do Meta não confirmou a atualização da entidade %s", externalID)
	}

	return nil
}
