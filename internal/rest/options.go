package rest

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-realms/internal/logger"
)

const (
	DefaultMaxRetries     = 4
	DefaultRetryBaseDelay = time.Second
)

// Options configures a [Rest] dispatcher.
type Options struct {
	// MaxRetries is how many times a 5xx answer is retried. Zero disables
	// retries.
	MaxRetries int

	// RetryBaseDelay is the wait before the first retry; each further retry
	// doubles it.
	RetryBaseDelay time.Duration

	// SkipAuth sends requests without an authentication header.
	SkipAuth bool

	// Host overrides the platform host, e.g. to target a test server.
	Host string

	// Timeout bounds a single HTTP attempt against the Realms API and the
	// world storage backend. Zero means no timeout beyond the request context.
	Timeout time.Duration

	Logger *logger.Logger
}

// DefaultOptions returns the options used when the caller sets nothing.
func DefaultOptions() Options {
	return Options{
		MaxRetries:     DefaultMaxRetries,
		RetryBaseDelay: DefaultRetryBaseDelay,
	}
}

// Validate checks the numeric bounds of o.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.MaxRetries, validation.Min(0), validation.Max(maxRetriesLimit)),
		validation.Field(&o.RetryBaseDelay, validation.Min(time.Duration(0))),
		validation.Field(&o.Timeout, validation.Min(time.Duration(0))),
	)
}

// maxRetriesLimit keeps RetryBaseDelay<<MaxRetries from overflowing.
const maxRetriesLimit = 16

type requestOptions struct {
	body    any
	hasBody bool
	headers map[string]string
}

// RequestOption customises a single request.
type RequestOption func(*requestOptions)

// WithBody attaches v as the JSON request body. A nil v is sent as null.
func WithBody(v any) RequestOption {
	return func(o *requestOptions) {
		o.body = v
		o.hasBody = true
	}
}

// WithHeader sets an extra header; it overrides the defaults.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}
