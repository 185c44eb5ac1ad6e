package image

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fitforge/fitforge/internal/errors"
)

const (
	replicateBaseURL = "https://api.replicate.com/v1"

	// Stable Diffusion text-to-image.
	replicateModelVersion = "ac732df83cea7fff18b8472768c88ad041fa750ff7682a21affe81863cbe77e4"

	replicatePollInterval = 2 * time.Second
	replicateMaxPolls     = 15
)

// replicateClient generates bespoke images through Replicate's prediction
// API. Predictions are asynchronous: creation returns a status URL which is
// polled until the prediction settles.
type replicateClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newReplicateClient(token string, logger *slog.Logger) *replicateClient {
	return &replicateClient{
		token:      token,
		baseURL:    replicateBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type replicatePrediction struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Output []string `json:"output"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
	Error any `json:"error"`
}

func (c *replicateClient) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"version": replicateModelVersion,
		"input": map[string]any{
			"prompt":              prompt,
			"negative_prompt":     "blurry, bad quality, distorted",
			"width":               512,
			"height":              512,
			"num_inference_steps": 20,
			"guidance_scale":      7.5,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal prediction request")
	}

	prediction, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/predictions", payload)
	if err != nil {
		return "", err
	}
	if prediction.URLs.Get == "" {
		return "", errors.New("prediction response missing status url")
	}

	for poll := 0; poll < replicateMaxPolls; poll++ {
		switch prediction.Status {
		case "succeeded":
			if len(prediction.Output) == 0 {
				return "", errors.New("prediction succeeded without output")
			}
			return prediction.Output[0], nil
		case "failed", "canceled":
			return "", errors.New(fmt.Sprintf("prediction %s: %v", prediction.Status, prediction.Error))
		}

		select {
		case <-ctx.Done():
			return "", errors.Wrap(ctx.Err(), "prediction poll interrupted")
		case <-time.After(replicatePollInterval):
		}

		prediction, err = c.doJSON(ctx, http.MethodGet, prediction.URLs.Get, nil)
		if err != nil {
			return "", err
		}
	}
	return "", errors.Wrap(nil, "prediction did not settle in time",
		slog.String("prediction_id", prediction.ID))
}

func (c *replicateClient) doJSON(ctx context.Context, method, url string, payload []byte) (replicatePrediction, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return replicatePrediction{}, errors.Wrap(err, "create replicate request")
	}
	req.Header.Set("Authorization", "Token "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return replicatePrediction{}, errors.Wrap(err, "call replicate api")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return replicatePrediction{}, errors.New(
			fmt.Sprintf("replicate api error: %d", resp.StatusCode))
	}

	var prediction replicatePrediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return replicatePrediction{}, errors.Wrap(err, "decode replicate response")
	}
	return prediction, nil
}
