// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Fetch downloads rawURL from the world storage backend. The Realms
// authentication header is never sent there; token, when non-empty, is sent
// as a bearer token instead. 5xx answers and transport errors, including a
// per-attempt Options.Timeout expiring, are retried with the same schedule
// and limit as API requests.
func (r *Rest) Fetch(ctx context.Context, rawURL, token string) ([]byte, error) {
	log := r.logger.With().
		Str("request_id", r.ids.Generate()).
		Str("download", redactQuery(rawURL)).
		Logger()

	var body []byte
	operation := func() error {
		req := r.storage.R().SetContext(ctx)
		if token != "" {
			req.SetAuthToken(token)
		}

		resp, err := req.Get(rawURL)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return fmt.Errorf("fetch world: %w", err)
		}

		switch code := resp.StatusCode(); {
		case code >= http.StatusOK && code < http.StatusMultipleChoices:
			body = resp.Body()
			return nil
		case isServerStatus(code):
			return fmt.Errorf("%w: %s", ErrDownloadFailed, resp.Status())
		default:
			return backoff.Permanent(fmt.Errorf("%w: %s", ErrDownloadFailed, resp.Status()))
		}
	}

	notify := func(err error, d time.Duration) {
		log.Debug().Err(err).Dur("delay", d).Msg("retrying download")
	}

	if err := backoff.RetryNotify(operation, r.downloadBackOff(ctx), notify); err != nil {
		return nil, err
	}

	log.Debug().Int("bytes", len(body)).Msg("download done")
	return body, nil
}

func (r *Rest) downloadBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.retryBaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = r.delay(r.maxRetries)
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.maxRetries)), ctx)
}

// redactQuery drops the query of a signed URL before it is logged.
func redactQuery(rawURL string) string {
	base, _, _ := strings.Cut(rawURL, "?")
	return base
}
