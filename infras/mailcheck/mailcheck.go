package mailcheck

//go:generate go run go.uber.org/mock/mockgen -source=./mailcheck.go -destination=./mocks/mailcheck_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"resort/config"
	"resort/infras/otel"
	"resort/shared/constant"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// MailCheck asks an external reputation service whether an email address
// belongs to a disposable mailbox provider.
type MailCheck interface {
	IsDisposable(ctx context.Context, email string) (bool, error)
}

type checkResponse struct {
	Disposable string `json:"disposable"`
}

type Client struct {
	config *config.Config
	http   *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) MailCheck {
	return &Client{
		config: cfg,
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
		otel: otl,
	}
}

// IsDisposable checks the address against the configured endpoint. When no
// endpoint is configured the check is skipped and the address is treated as
// not disposable.
func (c *Client) IsDisposable(ctx context.Context, email string) (bool, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, "MailCheck.IsDisposable")
	defer scope.End()

	endpoint := c.config.External.MailCheck.Endpoint
	if endpoint == "" {
		return false, nil
	}

	reqURL := fmt.Sprintf("%s?email=%s", endpoint, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		scope.TraceError(err)
		return false, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("[MailCheck] lookup failed")
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("mail check returned status %d", resp.StatusCode)
		scope.TraceError(err)
		return false, err
	}

	var body checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		scope.TraceError(err)
		return false, err
	}

	disposable, err := strconv.ParseBool(body.Disposable)
	if err != nil {
		return false, nil
	}

	return disposable, nil
}
