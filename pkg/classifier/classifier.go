package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Status calls the status endpoint of the sentiment service.
func (c *classifierImpl) Status(ctx context.Context) (StatusOutput, error) {
	body, statusCode, err := c.httpClient.Get(ctx, c.baseURL+statusPath, nil)
	if err != nil {
		return StatusOutput{}, fmt.Errorf("%w: %v", ErrUnhealthy, err)
	}
	if statusCode != http.StatusOK {
		return StatusOutput{}, fmt.Errorf("%w: status endpoint returned %d", ErrUnhealthy, statusCode)
	}

	var out StatusOutput
	if err := json.Unmarshal(body, &out); err != nil {
		return StatusOutput{}, fmt.Errorf("failed to unmarshal status response: %w", err)
	}
	return out, nil
}

// Classify sends one batch of texts to the sentiment service.
func (c *classifierImpl) Classify(ctx context.Context, texts []string) (ClassifyOutput, error) {
	if len(texts) == 0 {
		return ClassifyOutput{}, nil
	}

	body, statusCode, err := c.httpClient.Post(ctx, c.baseURL+sentimentPath, Request{Texts: texts}, nil)
	if err != nil {
		return ClassifyOutput{}, fmt.Errorf("failed to call sentiment service: %w", err)
	}
	if statusCode != http.StatusOK {
		return ClassifyOutput{}, fmt.Errorf("sentiment service returned status: %d, body: %s", statusCode, string(body))
	}

	var out ClassifyOutput
	if err := json.Unmarshal(body, &out); err != nil {
		return ClassifyOutput{}, fmt.Errorf("failed to unmarshal sentiment response: %w", err)
	}
	return out, nil
}
