package safety

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
)

// DefaultAPIVersion is the Azure AI Content Safety API version in use
const DefaultAPIVersion = "2023-10-01"

const maxErrorBody = 4096

// AzureClient calls the Azure AI Content Safety REST API. Each method
// issues exactly one request and never retries.
type AzureClient struct {
	endpoint   string
	apiKey     string
	apiVersion string
	httpClient *http.Client
}

var _ interfaces.ContentSafetyClient = (*AzureClient)(nil)

// AzureOption configures AzureClient
type AzureOption func(*AzureClient)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(client *http.Client) AzureOption {
	return func(c *AzureClient) {
		c.httpClient = client
	}
}

// WithAPIVersion overrides the api-version query parameter
func WithAPIVersion(version string) AzureOption {
	return func(c *AzureClient) {
		c.apiVersion = version
	}
}

// NewAzureClient creates a client for the resource endpoint, e.g.
// https://<resource>.cognitiveservices.azure.com
func NewAzureClient(endpoint, apiKey string, opts ...AzureOption) (*AzureClient, error) {
	if endpoint == "" {
		return nil, goerr.New("content safety endpoint is required", goerr.T(model.ErrTagConfiguration))
	}
	if apiKey == "" {
		return nil, goerr.New("content safety key is required", goerr.T(model.ErrTagConfiguration))
	}

	c := &AzureClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		apiVersion: DefaultAPIVersion,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type analyzeTextRequest struct {
	Text string `json:"text"`
}

type imageData struct {
	Content string `json:"content"`
}

type analyzeImageRequest struct {
	Image imageData `json:"image"`
}

type categoryAnalysis struct {
	Category string `json:"category"`
	Severity *int   `json:"severity"`
}

type analyzeResponse struct {
	CategoriesAnalysis []categoryAnalysis `json:"categoriesAnalysis"`
}

// AnalyzeText classifies a text body
func (c *AzureClient) AnalyzeText(ctx context.Context, text string) ([]model.CategoryScore, error) {
	return c.analyze(ctx, "text:analyze", analyzeTextRequest{Text: text})
}

// AnalyzeImage classifies one image. The image is sent base64 encoded.
func (c *AzureClient) AnalyzeImage(ctx context.Context, image []byte) ([]model.CategoryScore, error) {
	req := analyzeImageRequest{
		Image: imageData{Content: base64.StdEncoding.EncodeToString(image)},
	}
	return c.analyze(ctx, "image:analyze", req)
}

func (c *AzureClient) analyze(ctx context.Context, operation string, body any) ([]model.CategoryScore, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode content safety request",
			goerr.T(model.ErrTagClassificationFailure),
			goerr.V("operation", operation))
	}

	url := c.endpoint + "/contentsafety/" + operation + "?api-version=" + c.apiVersion
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create content safety request",
			goerr.T(model.ErrTagClassificationFailure),
			goerr.V("operation", operation))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call content safety service",
			goerr.T(model.ErrTagClassificationFailure),
			goerr.V("operation", operation))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, goerr.New("content safety service returned error status",
			goerr.T(model.ErrTagClassificationFailure),
			goerr.V("operation", operation),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(msg)))
	}

	var result analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode content safety response",
			goerr.T(model.ErrTagClassificationFailure),
			goerr.V("operation", operation))
	}

	scores := make([]model.CategoryScore, 0, len(result.CategoriesAnalysis))
	for _, ca := range result.CategoriesAnalysis {
		if ca.Category == "" || ca.Severity == nil {
			return nil, goerr.New("malformed category analysis in content safety response",
				goerr.T(model.ErrTagClassificationFailure),
				goerr.V("operation", operation),
				goerr.V("category", ca.Category))
		}
		scores = append(scores, model.CategoryScore{Name: ca.Category, Severity: *ca.Severity})
	}

	return scores, nil
}
