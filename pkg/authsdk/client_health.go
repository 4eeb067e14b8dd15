package authsdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

// GetReadiness checks if the service and its credential store are ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

// GetStatus reads the public /api/v1/status endpoint.
func (c *SDKClient) GetStatus(ctx context.Context) (*StatusResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/status", nil)
	if err != nil {
		return nil, err
	}

	var status StatusResponse
	if err := decodeJSON(resp, &status, http.StatusOK); err != nil {
		return nil, err
	}

	return &status, nil
}
