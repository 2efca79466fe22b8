package gateway

import "fmt"

// GatewayError is any failure talking to the payment gateway. Message carries
// the gateway's own description when it sent one.
type GatewayError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gateway: %s", e.Message)
	}
	if e.Code != "" {
		return fmt.Sprintf("gateway %d: %s (%s)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("gateway %d: %s", e.StatusCode, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

type apiErrors struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
}
