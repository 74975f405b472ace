// Package pool queries the external prize pool service for the current
// pool balance.
package pool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/koquifi/lottoframe/pkg/clients"
)

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

type Client struct {
	addr   string
	client clients.HTTPClientI
}

func New(addr string, client clients.HTTPClientI) *Client {
	return &Client{
		addr:   addr,
		client: client,
	}
}

// Balance returns the current balance reported by the pool service.
func (c *Client) Balance(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	statusCode, respBody, _, err := c.client.Get(c.addr+"/api/pool/balance", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch pool balance: %w", err)
	}
	if statusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code from pool service: %d", statusCode)
	}

	var response balanceResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return 0, fmt.Errorf("failed to parse pool balance response: %w", err)
	}
	if response.Balance < 0 {
		return 0, fmt.Errorf("pool service reported negative balance: %f", response.Balance)
	}
	return response.Balance, nil
}
