// Package notify delivers reply messages to the sender over the Twilio
// WhatsApp API.
package notify

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"docinho/internal/config"
)

const messagesEndpoint = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"

type Client struct {
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg config.Config) (*Client, error) {
	if err := cfg.Require("TWILIO_ACCOUNT_SID", cfg.TwilioAccountSID); err != nil {
		return nil, err
	}
	if err := cfg.Require("TWILIO_AUTH_TOKEN", cfg.TwilioAuthToken); err != nil {
		return nil, err
	}

	rps := cfg.TwilioRPS
	if rps <= 0 {
		rps = 1
	}

	return &Client{
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioFromNumber,
		httpClient: &http.Client{Timeout: time.Duration(cfg.TwilioTimeoutMs) * time.Millisecond},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Send posts one outbound WhatsApp message. Transient Twilio errors are
// retried with backoff; the caller treats any returned error as
// fire-and-forget.
func (c *Client) Send(ctx context.Context, to, body string) error {
	if !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf(messagesEndpoint, c.accountSID)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return err
		}
		req.SetBasicAuth(c.accountSID, c.authToken)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		payload, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}

		if isRetryableStatus(resp.StatusCode) && attempt < 3 {
			backoff := time.Duration(250*(1<<(attempt-1))+rand.Intn(100)) * time.Millisecond
			time.Sleep(backoff)
			lastErr = fmt.Errorf("twilio status %d", resp.StatusCode)
			continue
		}

		return fmt.Errorf("twilio send failed: status=%d body=%s", resp.StatusCode, string(payload))
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("twilio send failed")
	}
	return lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}
