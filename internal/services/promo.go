package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"commerce-gateway/internal/models"
)

// PromoConfig represents downstream promo API configuration
type PromoConfig struct {
	BaseURL string
}

// PromoService looks up promotion codes on the downstream promo API
type PromoService struct {
	config PromoConfig
	client *http.Client
}

// NewPromoService creates a new promo client
func NewPromoService(config PromoConfig, client *http.Client) *PromoService {
	return &PromoService{
		config: config,
		client: client,
	}
}

// GetPromoCode fetches a promo code by its code string
func (s *PromoService) GetPromoCode(ctx context.Context, code string) (*models.PromoCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: promo code is required", models.ErrInvalidInput)
	}

	reqURL := strings.TrimRight(s.config.BaseURL, "/") + "/promos/" + url.PathEscape(code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create promo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrPromoUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %s", models.ErrPromoUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var promo models.PromoCode
		if err := json.Unmarshal(body, &promo); err != nil {
			return nil, fmt.Errorf("%w: failed to decode promo: %s", models.ErrPromoUnavailable, err)
		}
		return &promo, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, models.ErrPromoNotFound
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", models.ErrPromoUnavailable, resp.StatusCode)
	}
}
