package realmapi

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-realms/internal/logger"
	"github.com/MKhiriev/go-realms/internal/rest"
)

type options struct {
	rest rest.Options
	fs   afero.Fs
}

// Option configures a [RealmAPI] built by [New].
type Option func(*options)

func defaultOptions() options {
	return options{
		rest: rest.DefaultOptions(),
		fs:   afero.NewOsFs(),
	}
}

// WithMaxRetries sets how many times a 5xx answer is retried. Zero disables
// retries.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		o.rest.MaxRetries = n
	}
}

// WithRetryBaseDelay sets the wait before the first retry. Each further
// retry doubles it.
func WithRetryBaseDelay(d time.Duration) Option {
	return func(o *options) {
		o.rest.RetryBaseDelay = d
	}
}

// WithSkipAuth sends requests without authentication headers. The authflow
// is still required by [New].
func WithSkipAuth(skip bool) Option {
	return func(o *options) {
		o.rest.SkipAuth = skip
	}
}

// WithHost replaces the platform host.
func WithHost(host string) Option {
	return func(o *options) {
		o.rest.Host = host
	}
}

// WithTimeout bounds a single HTTP attempt.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.rest.Timeout = d
	}
}

// WithLogger routes request logs to l. Requests are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.rest.Logger = logger.Wrap(l)
	}
}

// WithFs sets the filesystem [Download.WriteToDirectory] writes to.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}
