package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang-stock-screener/internal/screener/config"
	"golang-stock-screener/internal/screener/dto"
	"golang-stock-screener/pkg/logger"

	"github.com/go-resty/resty/v2"
)

// kvRestRepository talks to an Upstash-compatible REST API:
// GET /get/<key> and POST /set/<key>, bearer-token auth, string values.
type kvRestRepository struct {
	log    *logger.Logger
	client *resty.Client
}

// NewKVRestRepository creates a SnapshotStore backed by the KV REST API.
func NewKVRestRepository(cfg config.KV, log *logger.Logger) SnapshotStore {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.RestAPIURL, "/")).
		SetAuthToken(cfg.RestAPIToken).
		SetTimeout(cfg.Timeout)

	return &kvRestRepository{log: log, client: client}
}

func (r *kvRestRepository) Get(ctx context.Context, key string) (string, bool, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		Get("/get/{key}")
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to send KV get request", logger.StringField("key", key), logger.ErrorField(err))
		return "", false, fmt.Errorf("kv get: %w", err)
	}
	if !resp.IsSuccess() {
		r.log.ErrorContext(ctx, "Received non-OK response from KV get", logger.StringField("key", key), logger.IntField("status_code", resp.StatusCode()))
		return "", false, &StatusError{Op: "kv get", StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var envelope dto.KVResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return "", false, fmt.Errorf("kv get: failed to parse response: %w", err)
	}

	raw := strings.TrimSpace(string(envelope.Result))
	if raw == "" || raw == "null" {
		return "", false, nil
	}

	// The API hands back the stored value as a JSON string.
	var value string
	if err := json.Unmarshal(envelope.Result, &value); err != nil {
		return raw, true, nil
	}
	return value, true, nil
}

func (r *kvRestRepository) Set(ctx context.Context, key, value string) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		SetBody(value).
		Post("/set/{key}")
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to send KV set request", logger.StringField("key", key), logger.ErrorField(err))
		return fmt.Errorf("kv set: %w", err)
	}
	if !resp.IsSuccess() {
		r.log.ErrorContext(ctx, "Received non-OK response from KV set", logger.StringField("key", key), logger.IntField("status_code", resp.StatusCode()))
		return &StatusError{Op: "kv set", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}
