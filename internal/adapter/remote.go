// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

// Request describes a raw call against the data API. Path is relative to
// /services/data/{version}; paths starting with /services/ are taken as
// relative to the instance URL (e.g. query continuation links).
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

type attempt int

const (
	firstAttempt attempt = iota
	retryAfterRefresh
)

type remoteAdapter struct {
	client   *utils.HTTPClient
	tokens   TokenSource
	registry *models.ObjectTypeRegistry
	cfg      config.Remote

	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
}

// NewRemoteAdapter creates a [RemoteAdapter]. Every owner gets its own
// token bucket sized by cfg.RateLimit and cfg.RateBurst.
func NewRemoteAdapter(cfg config.Remote, tokens TokenSource, registry *models.ObjectTypeRegistry) RemoteAdapter {
	return &remoteAdapter{
		client:   utils.NewHTTPClient(cfg.RequestTimeout),
		tokens:   tokens,
		registry: registry,
		cfg:      cfg,
		limiters: make(map[int64]*rate.Limiter),
	}
}

func (a *remoteAdapter) limiter(ownerID int64) *rate.Limiter {
	a.mu.Lock()
	defer a.mu.Unlock()

	l, ok := a.limiters[ownerID]
	if !ok {
		limit := rate.Limit(a.cfg.RateLimit)
		if a.cfg.RateLimit <= 0 {
			limit = rate.Inf
		}
		burst := a.cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		l = rate.NewLimiter(limit, burst)
		a.limiters[ownerID] = l
	}
	return l
}

// Do sends req with the owner's current token. A 401 on the first attempt
// forces one refresh and one retry; a 401 on the retry is final.
func (a *remoteAdapter) Do(ctx context.Context, ownerID int64, req Request, result any) error {
	log := logger.FromContext(ctx)

	token, err := a.tokens.GetValidToken(ctx, ownerID)
	if err != nil {
		return err
	}

	state := firstAttempt
	for {
		err = a.send(ctx, token, req, result)
		if !errors.Is(err, errUnauthorized) {
			return err
		}

		switch state {
		case firstAttempt:
			log.Warn().Str("func", "remoteAdapter.Do").Int64("owner_id", ownerID).
				Str("path", req.Path).Msg("remote rejected token, refreshing")

			token, err = a.tokens.RefreshToken(ctx, token)
			if err != nil {
				return err
			}
			state = retryAfterRefresh
		case retryAfterRefresh:
			log.Error().Str("func", "remoteAdapter.Do").Int64("owner_id", ownerID).
				Str("path", req.Path).Msg("remote rejected refreshed token")
			return fmt.Errorf("%w: %s %s", ErrRemoteAuthFailed, req.Method, req.Path)
		}
	}
}

func (a *remoteAdapter) send(ctx context.Context, token models.AccessToken, req Request, result any) error {
	if err := a.limiter(token.OwnerID).Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	r := a.client.R().
		SetContext(ctx).
		SetAuthToken(token.Value)
	if req.Query != nil {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	resp, err := r.Execute(method, a.endpoint(token.InstanceURL, req.Path))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: decoding response: %w", ErrRemoteUnavailable, err)
	}
	return nil
}

func (a *remoteAdapter) endpoint(instanceURL, path string) string {
	base := normalizeBaseURL(instanceURL)
	if strings.HasPrefix(path, "/services/") {
		return base + path
	}
	return base + "/services/data/" + a.cfg.APIVersion + path
}

func (a *remoteAdapter) GetRecord(ctx context.Context, ownerID int64, objectType models.ObjectType, id string) (models.RemoteRecord, error) {
	desc, err := a.registry.Describe(objectType)
	if err != nil {
		return models.RemoteRecord{}, err
	}

	var raw map[string]any
	err = a.Do(ctx, ownerID, Request{
		Method: http.MethodGet,
		Path:   sobjectPath(desc, id),
		Query:  url.Values{"fields": {strings.Join(selectFields(desc), ",")}},
	}, &raw)
	if err != nil {
		return models.RemoteRecord{}, err
	}

	return toRemoteRecord(desc, raw), nil
}

func (a *remoteAdapter) CreateRecord(ctx context.Context, ownerID int64, objectType models.ObjectType, fields models.Fields) (string, error) {
	desc, err := a.registry.Describe(objectType)
	if err != nil {
		return "", err
	}

	var resp saveResult
	err = a.Do(ctx, ownerID, Request{
		Method: http.MethodPost,
		Path:   sobjectPath(desc, ""),
		Body:   fields.Only(desc.Writable()),
	}, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success || resp.ID == "" {
		return "", fmt.Errorf("%w: %s", ErrRemoteBadRequest, resp.errorMessage())
	}

	return resp.ID, nil
}

func (a *remoteAdapter) UpdateRecord(ctx context.Context, ownerID int64, objectType models.ObjectType, id string, fields models.Fields) error {
	desc, err := a.registry.Describe(objectType)
	if err != nil {
		return err
	}

	return a.Do(ctx, ownerID, Request{
		Method: http.MethodPatch,
		Path:   sobjectPath(desc, id),
		Body:   fields.Only(desc.Writable()),
	}, nil)
}

func (a *remoteAdapter) DeleteRecord(ctx context.Context, ownerID int64, objectType models.ObjectType, id string) error {
	desc, err := a.registry.Describe(objectType)
	if err != nil {
		return err
	}

	return a.Do(ctx, ownerID, Request{
		Method: http.MethodDelete,
		Path:   sobjectPath(desc, id),
	}, nil)
}

func (a *remoteAdapter) QueryModifiedSince(ctx context.Context, ownerID int64, objectType models.ObjectType, since time.Time, limit int) ([]models.RemoteRecord, error) {
	desc, err := a.registry.Describe(objectType)
	if err != nil {
		return nil, err
	}

	where := "LastModifiedDate >= " + soqlDateTime(since)
	return a.query(ctx, ownerID, desc, buildSOQL(desc, where, limit), limit)
}

func (a *remoteAdapter) QueryRecent(ctx context.Context, ownerID int64, objectType models.ObjectType, limit int) ([]models.RemoteRecord, error) {
	desc, err := a.registry.Describe(objectType)
	if err != nil {
		return nil, err
	}

	return a.query(ctx, ownerID, desc, buildSOQL(desc, "", limit), limit)
}

func (a *remoteAdapter) query(ctx context.Context, ownerID int64, desc models.ObjectDescriptor, soql string, limit int) ([]models.RemoteRecord, error) {
	req := Request{Method: http.MethodGet, Path: "/query", Query: url.Values{"q": {soql}}}

	var out []models.RemoteRecord
	for {
		var page queryPage
		if err := a.Do(ctx, ownerID, req, &page); err != nil {
			return nil, err
		}

		for _, raw := range page.Records {
			out = append(out, toRemoteRecord(desc, raw))
		}

		if page.Done || page.NextRecordsURL == "" || (limit > 0 && len(out) >= limit) {
			break
		}
		req = Request{Method: http.MethodGet, Path: page.NextRecordsURL}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (a *remoteAdapter) Search(ctx context.Context, ownerID int64, objectType models.ObjectType, term string) ([]models.RemoteRecord, error) {
	desc, err := a.registry.Describe(objectType)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}

	sosl := fmt.Sprintf("FIND {%s} IN ALL FIELDS RETURNING %s(%s) LIMIT %d",
		escapeSearchTerm(term), desc.RemoteName, strings.Join(selectFields(desc), ", "), MaxBatchSize)

	var resp searchResult
	if err = a.Do(ctx, ownerID, Request{
		Method: http.MethodGet,
		Path:   "/search",
		Query:  url.Values{"q": {sosl}},
	}, &resp); err != nil {
		return nil, err
	}

	out := make([]models.RemoteRecord, 0, len(resp.SearchRecords))
	for _, raw := range resp.SearchRecords {
		out = append(out, toRemoteRecord(desc, raw))
	}
	return out, nil
}

func (a *remoteAdapter) CreateRecords(ctx context.Context, ownerID int64, objectType models.ObjectType, records []models.Fields) ([]models.RecordResult, error) {
	if len(records) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d records, limit %d", ErrBatchTooLarge, len(records), MaxBatchSize)
	}
	if len(records) == 0 {
		return nil, nil
	}

	desc, err := a.registry.Describe(objectType)
	if err != nil {
		return nil, err
	}

	body := compositeRequest{AllOrNone: false, Records: make([]map[string]any, 0, len(records))}
	for _, fields := range records {
		body.Records = append(body.Records, compositeRecord(desc, "", fields))
	}

	return a.composite(ctx, ownerID, http.MethodPost, body)
}

func (a *remoteAdapter) UpdateRecords(ctx context.Context, ownerID int64, objectType models.ObjectType, updates []RecordUpdate) ([]models.RecordResult, error) {
	if len(updates) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d records, limit %d", ErrBatchTooLarge, len(updates), MaxBatchSize)
	}
	if len(updates) == 0 {
		return nil, nil
	}

	desc, err := a.registry.Describe(objectType)
	if err != nil {
		return nil, err
	}

	body := compositeRequest{AllOrNone: false, Records: make([]map[string]any, 0, len(updates))}
	for _, u := range updates {
		body.Records = append(body.Records, compositeRecord(desc, u.ID, u.Fields))
	}

	return a.composite(ctx, ownerID, http.MethodPatch, body)
}

func (a *remoteAdapter) composite(ctx context.Context, ownerID int64, method string, body compositeRequest) ([]models.RecordResult, error) {
	var resp []saveResult
	if err := a.Do(ctx, ownerID, Request{
		Method: method,
		Path:   "/composite/sobjects",
		Body:   body,
	}, &resp); err != nil {
		return nil, err
	}

	if len(resp) != len(body.Records) {
		return nil, fmt.Errorf("%w: composite returned %d results for %d records",
			ErrRemoteUnavailable, len(resp), len(body.Records))
	}

	out := make([]models.RecordResult, len(resp))
	for i, r := range resp {
		out[i] = models.RecordResult{Index: i, ID: r.ID, Success: r.Success}
		if !r.Success {
			out[i].Error = r.errorMessage()
		}
	}
	return out, nil
}
