// Package gateway is the HTTP client for the PIX payment gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const dueDateLayout = "2006-01-02"

type Payer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	TaxID string `json:"cpfCnpj"`
}

type ChargeRequest struct {
	PayerID           string
	Amount            decimal.Decimal
	DueDate           time.Time
	Description       string
	ExternalReference string
}

type Charge struct {
	ID     string               `json:"id"`
	Status models.GatewayStatus `json:"status"`
}

type RedeemablePayload struct {
	Image     string `json:"encodedImage"`
	Payload   string `json:"payload"`
	ExpiresAt string `json:"expirationDate"`
}

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithRateLimit caps outgoing requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// FindOrCreatePayer reuses the payer registered with the same e-mail.
func (c *Client) FindOrCreatePayer(ctx context.Context, name, email, taxID string) (*Payer, error) {
	var list struct {
		Data []Payer `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/customers?email="+url.QueryEscape(email), nil, &list); err != nil {
		return nil, err
	}
	if len(list.Data) > 0 {
		return &list.Data[0], nil
	}

	var payer Payer
	body := Payer{Name: name, Email: email, TaxID: taxID}
	if err := c.do(ctx, http.MethodPost, "/customers", body, &payer); err != nil {
		return nil, err
	}
	return &payer, nil
}

func (c *Client) CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	body := map[string]interface{}{
		"customer":          req.PayerID,
		"billingType":       "PIX",
		"value":             req.Amount.InexactFloat64(),
		"dueDate":           req.DueDate.Format(dueDateLayout),
		"description":       req.Description,
		"externalReference": req.ExternalReference,
	}

	var charge Charge
	if err := c.do(ctx, http.MethodPost, "/payments", body, &charge); err != nil {
		return nil, err
	}
	if charge.ID == "" {
		return nil, &GatewayError{Message: "charge created without id"}
	}
	return &charge, nil
}

func (c *Client) GetRedeemablePayload(ctx context.Context, chargeID string) (*RedeemablePayload, error) {
	var payload RedeemablePayload
	if err := c.do(ctx, http.MethodGet, "/payments/"+url.PathEscape(chargeID)+"/pixQrCode", nil, &payload); err != nil {
		return nil, err
	}
	if payload.Payload == "" {
		return nil, &GatewayError{Message: "empty pix payload"}
	}
	return &payload, nil
}

func (c *Client) GetChargeStatus(ctx context.Context, chargeID string) (models.GatewayStatus, error) {
	var out struct {
		Status models.GatewayStatus `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/payments/"+url.PathEscape(chargeID)+"/status", nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &GatewayError{Message: "rate limiter: " + err.Error(), Err: err}
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &GatewayError{Message: "error marshaling gateway request: " + err.Error(), Err: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return &GatewayError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &GatewayError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		gwErr := &GatewayError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var apiErr apiErrors
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && len(apiErr.Errors) > 0 {
			gwErr.Code = apiErr.Errors[0].Code
			gwErr.Message = apiErr.Errors[0].Description
		}
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn(gwErr.Message)
		return gwErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &GatewayError{StatusCode: resp.StatusCode, Message: "malformed response: " + err.Error(), Err: err}
		}
	}
	return nil
}
