// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rest executes requests against the Realms API.
//
// A [Rest] is bound to one platform: it knows the platform host and user
// agent, fetches the matching authentication header from the caller's
// authflow for every request, JSON-encodes bodies and retries 5xx answers
// with exponential backoff. Non-2xx answers surface as [*StatusError], which
// unwraps to the sentinel errors defined in errors.go.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-realms/internal/auth"
	"github.com/MKhiriev/go-realms/internal/logger"
	"github.com/MKhiriev/go-realms/internal/utils"
	"github.com/MKhiriev/go-realms/models"
)

// Rest dispatches requests for one platform.
type Rest struct {
	client  *utils.HTTPClient
	storage *utils.HTTPClient

	platform   models.Platform
	authHeader auth.HeaderFunc
	skipAuth   bool

	maxRetries     int
	retryBaseDelay time.Duration

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// New builds a dispatcher for platform. flow may be nil only when
// opts.SkipAuth is set.
func New(flow auth.Authflow, platform models.Platform, opts Options) (*Rest, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rest options: %w", err)
	}

	constants, err := ConstantsFor(platform)
	if err != nil {
		return nil, err
	}

	host := constants.Host
	if opts.Host != "" {
		if host, err = utils.NormalizeBaseURL(opts.Host); err != nil {
			return nil, fmt.Errorf("invalid host: %w", err)
		}
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("platform", platform.String())
	})

	if opts.RetryBaseDelay <= 0 {
		opts.RetryBaseDelay = DefaultRetryBaseDelay
	}

	r := &Rest{
		platform:       platform,
		skipAuth:       opts.SkipAuth,
		maxRetries:     opts.MaxRetries,
		retryBaseDelay: opts.RetryBaseDelay,
		ids:            utils.NewUUIDGenerator(),
		logger:         log,
	}

	if !opts.SkipAuth {
		if flow == nil {
			return nil, fmt.Errorf("authflow is required unless auth is skipped")
		}
		if r.authHeader, err = auth.HeaderFor(flow, platform); err != nil {
			return nil, err
		}
	}

	r.client = utils.NewHTTPClient()
	r.client.
		SetBaseURL(host).
		SetTimeout(opts.Timeout).
		SetLogger(log).
		SetHeader("Client-Version", ClientVersion).
		SetHeader("User-Agent", constants.UserAgent).
		SetRetryCount(opts.MaxRetries).
		SetRetryWaitTime(opts.RetryBaseDelay).
		SetRetryMaxWaitTime(r.delay(opts.MaxRetries)).
		AddRetryCondition(retryOnServerError).
		SetRetryAfter(r.retryAfter)

	r.storage = utils.NewHTTPClient()
	r.storage.
		SetTimeout(opts.Timeout).
		SetLogger(log)

	return r, nil
}

// Platform returns the platform the dispatcher is bound to.
func (r *Rest) Platform() models.Platform {
	return r.platform
}

// Get sends a GET request to route (a path, optionally with a query).
func (r *Rest) Get(ctx context.Context, route string, opts ...RequestOption) (*Response, error) {
	return r.do(ctx, http.MethodGet, route, opts)
}

// Post sends a POST request to route.
func (r *Rest) Post(ctx context.Context, route string, opts ...RequestOption) (*Response, error) {
	return r.do(ctx, http.MethodPost, route, opts)
}

// Put sends a PUT request to route.
func (r *Rest) Put(ctx context.Context, route string, opts ...RequestOption) (*Response, error) {
	return r.do(ctx, http.MethodPut, route, opts)
}

// Delete sends a DELETE request to route.
func (r *Rest) Delete(ctx context.Context, route string, opts ...RequestOption) (*Response, error) {
	return r.do(ctx, http.MethodDelete, route, opts)
}

func (r *Rest) do(ctx context.Context, method, route string, opts []RequestOption) (*Response, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := r.logger.With().
		Str("request_id", r.ids.Generate()).
		Str("method", method).
		Str("route", route).
		Logger()

	req := r.client.R().SetContext(log.WithContext(ctx))

	if !r.skipAuth {
		h, err := r.authHeader(ctx)
		if err != nil {
			return nil, fmt.Errorf("authenticate %s %s: %w", method, route, err)
		}
		req.SetHeader(h.Key, h.Value)
	}

	if o.hasBody {
		payload, err := json.Marshal(o.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, route, err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}

	for k, v := range o.headers {
		req.SetHeader(k, v)
	}

	resp, err := req.Execute(method, route)
	if err != nil {
		log.Debug().Err(err).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, route, err)
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Int("attempt", resp.Request.Attempt).
		Dur("took", resp.Time()).
		Msg("request done")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &Response{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}

func retryOnServerError(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return false
	}
	var statusErr *StatusError
	return errors.As(mapHTTPError(resp), &statusErr) && statusErr.Retryable()
}

// retryAfter is consulted by resty before every retry. Attempt is 1 for the
// first try, so the n-th retry waits RetryBaseDelay * 2^(n-1).
func (r *Rest) retryAfter(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	retry := resp.Request.Attempt - 1
	d := r.delay(retry)

	logger.FromContext(resp.Request.Context()).Debug().
		Int("status", resp.StatusCode()).
		Int("retry", retry).
		Dur("delay", d).
		Msg("retrying request")

	return d, nil
}

func (r *Rest) delay(retry int) time.Duration {
	if retry < 0 {
		retry = 0
	}
	if retry > maxRetriesLimit {
		retry = maxRetriesLimit
	}
	return r.retryBaseDelay << retry
}
