// Package llm submits a prompt to a chat-completions API and tolerates
// transient failures and truncated model output, returning a complete
// response or a definitive error after a bounded number of attempts.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/sandstream/llm-ask/internal/completeness"
)

// DefaultEndpoint is the OpenRouter chat-completions URL.
const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// DefaultBackoff is the pause applied after an incomplete-but-received
// response before the next attempt.
const DefaultBackoff = 2 * time.Second

// Client drives the attempt loop against a chat-completions endpoint.
//
// Retry policy: timeouts and transport failures retry immediately, since the
// next attempt is independent of the last. An incomplete response instead
// waits Backoff first — truncation may reflect transient API-side load that
// needs a cool-down. Do not unify the two paths.
type Client struct {
	// Endpoint overrides DefaultEndpoint when non-empty.
	Endpoint string

	// HTTPClient defaults to http.DefaultClient. Per-attempt deadlines are
	// applied via request contexts, not the client's Timeout field.
	HTTPClient *http.Client

	// Classifier judges whether response text was cut off. Defaults to
	// completeness.Heuristic{}.
	Classifier completeness.Classifier

	// Backoff is the pause after an incomplete response. Defaults to
	// DefaultBackoff.
	Backoff time.Duration

	// OnAttempt, when set, observes every failed attempt. Used for logging.
	OnAttempt func(attempt, maxRetries int, outcome *AttemptError)
}

// Complete performs up to req.MaxRetries attempts and returns the first
// response whose content is classified complete.
//
// Invalid input yields a *PreconditionError before any network call. When
// the budget is spent without an accepted response, the error is an
// *ExhaustedError carrying the last attempt's outcome. Truncated content is
// never returned as success.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := checkPreconditions(req); err != nil {
		return "", err
	}

	payload, err := json.Marshal(wireRequest{
		Model:     req.Model,
		Messages:  req.Messages,
		MaxTokens: maxOutputTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "encode request payload")
	}

	var last *AttemptError
	for attempt := 0; attempt < req.MaxRetries; attempt++ {
		content, outcome := c.doAttempt(ctx, req, payload, attempt)
		if outcome == nil {
			return content, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		last = outcome
		if c.OnAttempt != nil {
			c.OnAttempt(attempt, req.MaxRetries, outcome)
		}

		if outcome.Kind == FailureIncomplete {
			if err := c.sleep(ctx); err != nil {
				return "", err
			}
		}
	}

	return "", &ExhaustedError{Attempts: req.MaxRetries, Last: last}
}

func checkPreconditions(req CompletionRequest) error {
	switch {
	case req.APIKey == "":
		return &PreconditionError{Reason: "API key is required"}
	case len(req.Messages) == 0:
		return &PreconditionError{Reason: "at least one message is required"}
	case req.MaxRetries < 1:
		return &PreconditionError{Reason: "max retries must be at least 1"}
	case req.Timeout <= 0:
		return &PreconditionError{Reason: "timeout must be positive"}
	}
	return nil
}

// doAttempt performs one request-response cycle. A nil outcome means the
// returned content was accepted.
func (c *Client) doAttempt(ctx context.Context, req CompletionRequest, payload []byte, attempt int) (string, *AttemptError) {
	attemptCtx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", &AttemptError{Attempt: attempt, Kind: FailureTransport, Err: errors.Wrap(err, "build request")}
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		kind := FailureTransport
		if attemptCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			kind = FailureTimeout
		}
		return "", &AttemptError{Attempt: attempt, Kind: kind, Err: errors.Wrap(err, "send request")}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &AttemptError{
			Attempt: attempt,
			Kind:    FailureTransport,
			Err:     errors.Errorf("unexpected status %s", resp.Status),
		}
	}

	var result wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &AttemptError{Attempt: attempt, Kind: FailureTransport, Err: errors.Wrap(err, "decode response")}
	}
	if len(result.Choices) == 0 {
		return "", &AttemptError{Attempt: attempt, Kind: FailureTransport, Err: errors.New("response contained no choices")}
	}

	content := result.Choices[0].Message.Content
	if c.classifier().IsIncomplete(content) {
		return "", &AttemptError{Attempt: attempt, Kind: FailureIncomplete}
	}

	return content, nil
}

// sleep blocks for the incomplete-response backoff, honoring ctx.
func (c *Client) sleep(ctx context.Context) error {
	backoff := c.Backoff
	if backoff <= 0 {
		backoff = DefaultBackoff
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(backoff):
		return nil
	}
}

func (c *Client) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return DefaultEndpoint
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) classifier() completeness.Classifier {
	if c.Classifier != nil {
		return c.Classifier
	}
	return completeness.Heuristic{}
}
