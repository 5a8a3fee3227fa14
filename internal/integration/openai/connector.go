package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sitebrief/requirements-backend/internal/config"
	"github.com/sitebrief/requirements-backend/internal/entity"
	pkghttp "github.com/sitebrief/requirements-backend/pkg/http"
	"go.uber.org/zap"
)

// Connector issues one chat-completion request per call against an Azure
// OpenAI deployment. There is no retry, no caching and no rate limiting:
// a failed call is terminal for the current workflow stage.
type Connector struct {
	config    config.OpenAIConfig
	connector *pkghttp.Connector
	endpoint  string
	logger    *zap.Logger
}

func NewConnector(
	cfg config.OpenAIConfig,
	logger *zap.Logger,
) *Connector {
	connCfg := &pkghttp.ConnectorConfig{
		Logger:  logger,
		BaseURL: strings.TrimSuffix(cfg.Endpoint, "/"),
	}

	connector := pkghttp.NewConnector(
		connCfg,
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
		pkghttp.WithClientKeepAlive(cfg.KeepAlive),
		pkghttp.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkghttp.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkghttp.WithRequestLogging(),
		pkghttp.WithAPIKey(cfg.APIKey),
	)

	return &Connector{
		config:    cfg,
		connector: connector,
		endpoint:  fmt.Sprintf("/openai/deployments/%s/chat/completions", cfg.DeploymentName),
		logger:    logger,
	}
}

// Complete sends a two-message conversation and returns the first choice's
// message content.
func (c *Connector) Complete(ctx context.Context, systemPrompt, userPrompt string, opts entity.CompletionOptions) (string, error) {
	ctxzap.Info(ctx, "calling completion backend",
		zap.Float64("temperature", opts.Temperature),
		zap.Bool("force_json", opts.ForceJSON),
	)

	req := &entity.ChatCompletionRequest{
		Messages: []entity.ChatMessage{
			{Role: entity.RoleSystem, Content: systemPrompt},
			{Role: entity.RoleUser, Content: userPrompt},
		},
		Temperature: opts.Temperature,
	}
	if opts.ForceJSON {
		req.ResponseFormat = &entity.ResponseFormat{Type: "json_object"}
	}

	var resp entity.ChatCompletionResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.endpoint, req, &resp,
		pkghttp.WithQueryParam("api-version", c.config.APIVersion),
	)
	if err != nil {
		var httpErr *pkghttp.HTTPError
		var netErr *pkghttp.NetworkError
		switch {
		case errors.As(err, &httpErr):
			return "", &entity.BackendError{
				StatusCode: httpErr.StatusCode,
				Body:       httpErr.Message,
			}
		case errors.As(err, &netErr):
			return "", fmt.Errorf("completion request: %w", err)
		default:
			// A 2xx response whose body did not decode as a completion
			return "", &entity.MalformedResponseError{Reason: "undecodable completion response", Err: err}
		}
	}

	if len(resp.Choices) == 0 {
		return "", &entity.MalformedResponseError{Reason: "no choices in completion response"}
	}

	content := resp.Choices[0].Message.Content

	ctxzap.Info(ctx, "completion received", zap.Int("content_length", len(content)))

	return content, nil
}

// CompleteJSON runs a JSON-mode completion and parses the content into out.
func (c *Connector) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64, out any) error {
	content, err := c.Complete(ctx, systemPrompt, userPrompt, entity.CompletionOptions{
		Temperature: temperature,
		ForceJSON:   true,
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		return &entity.MalformedResponseError{Reason: "response is not valid JSON", Err: err}
	}

	return nil
}
