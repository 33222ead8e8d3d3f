package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError treats 403 as a regular answer: it carries a reject decision.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if (code >= http.StatusOK && code < http.StatusMultipleChoices) || code == http.StatusForbidden {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusGone:
		return fmt.Errorf("%w: %s", ErrRequestAbandoned, body)
	case http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrDecisionTimeout, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrSignerBusy, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, body)
	}
}
