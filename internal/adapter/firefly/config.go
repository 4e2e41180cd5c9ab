package firefly

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/khmm12/firefly-exporter/internal/ports"
)

const DefaultTimeout = 10 * time.Second

type Config struct {
	// BaseURL is the root of the Firefly III installation, without /api/v1.
	BaseURL   string
	Token     string
	VerifyTLS bool
	Timeout   time.Duration
	// RateLimit caps outgoing requests per second. Zero disables the limit.
	RateLimit float64
	UserAgent string
}

func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.BaseURL) == "" {
		errs = append(errs, &ports.ConfigurationError{Field: "base url", Reason: "must not be empty"})
	} else if _, err := parseBaseURL(c.BaseURL); err != nil {
		errs = append(errs, &ports.ConfigurationError{Field: "base url", Reason: err.Error()})
	}

	if strings.TrimSpace(c.Token) == "" {
		errs = append(errs, &ports.ConfigurationError{Field: "token", Reason: "must not be empty"})
	}

	if c.Timeout <= 0 {
		errs = append(errs, &ports.ConfigurationError{Field: "timeout", Reason: "must be greater than zero"})
	}

	if c.RateLimit < 0 {
		errs = append(errs, &ports.ConfigurationError{Field: "rate limit", Reason: "must not be negative"})
	}

	return errors.Join(errs...)
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New("scheme must be http or https")
	}

	if u.Host == "" {
		return nil, errors.New("host must not be empty")
	}

	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""

	return u, nil
}
