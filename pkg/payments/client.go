package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// defaultTimeout bounds every call to the provider. A slow provider must not
// hold up bid submissions or polls, so the charge path treats hitting this
// limit as a failed charge.
const defaultTimeout = 15 * time.Second

// Client is the HTTP implementation of the Gateway interface.
type Client struct {
	HTTPClient *http.Client
	Endpoint   string
	APIKey     string
}

// NewClient creates a payment provider client for the given API endpoint.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		Endpoint:   endpoint,
		APIKey:     apiKey,
	}
}

// Make sure we conform to the interface
var _ Gateway = (*Client)(nil)

type chargeRequest struct {
	Action         string `json:"action"`
	Amount         string `json:"amount"`
	PreapprovalKey string `json:"preapproval_key"`
}

type chargeResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Charge executes a one-shot payment against a stored credential.
func (c *Client) Charge(ctx context.Context, amount decimal.Decimal, preapprovalKey string) (Status, error) {
	reqBody := chargeRequest{
		Action:         "PAY",
		Amount:         amount.StringFixed(2),
		PreapprovalKey: preapprovalKey,
	}

	var respBody chargeResponse
	if err := c.post(ctx, "/pay", reqBody, &respBody); err != nil {
		return StatusError, fmt.Errorf("charge request failed: %w", err)
	}

	return Status(respBody.Status), nil
}

type preapprovalRequest struct {
	Amount    string `json:"amount"`
	Expiry    string `json:"expiry"`
	ReturnURL string `json:"return_url"`
}

type preapprovalResponse struct {
	PreapprovalKey string `json:"preapproval_key"`
	ApprovalURL    string `json:"approval_url"`
}

// CreatePreapproval asks the provider to set up a new spending authorization.
func (c *Client) CreatePreapproval(ctx context.Context, amount decimal.Decimal, expiry time.Time, returnURL string) (*PreapprovalResult, error) {
	reqBody := preapprovalRequest{
		Amount:    amount.StringFixed(2),
		Expiry:    expiry.Format(time.RFC3339),
		ReturnURL: returnURL,
	}

	rawReq, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preapproval request: %w", err)
	}

	rawResp, err := c.postRaw(ctx, "/preapprovals", rawReq)
	if err != nil {
		return nil, fmt.Errorf("preapproval request failed: %w", err)
	}

	var respBody preapprovalResponse
	if err := json.Unmarshal(rawResp, &respBody); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preapproval response: %w", err)
	}

	return &PreapprovalResult{
		Key:         respBody.PreapprovalKey,
		ApprovalURL: respBody.ApprovalURL,
		RawRequest:  string(rawReq),
		RawResponse: string(rawResp),
	}, nil
}

func (c *Client) post(ctx context.Context, path string, reqBody, respBody any) error {
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	rawResp, err := c.postRaw(ctx, path, raw)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(rawResp, respBody); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func (c *Client) postRaw(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, raw)
	}

	return raw, nil
}
