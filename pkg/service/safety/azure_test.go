package safety_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/service/safety"
)

func newAzureServer(t *testing.T, handler http.HandlerFunc) *safety.AzureClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := safety.NewAzureClient(srv.URL+"/", "test-key", safety.WithHTTPClient(srv.Client()))
	gt.NoError(t, err).Required()
	return client
}

func TestAzureClientAnalyzeText(t *testing.T) {
	client := newAzureServer(t, func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Method, http.MethodPost)
		gt.Equal(t, r.URL.Path, "/contentsafety/text:analyze")
		gt.Equal(t, r.URL.Query().Get("api-version"), safety.DefaultAPIVersion)
		gt.Equal(t, r.Header.Get("Ocp-Apim-Subscription-Key"), "test-key")

		var body map[string]any
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gt.Equal(t, body["text"], any("hello world"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"blocklistsMatch":[],"categoriesAnalysis":[
			{"category":"Hate","severity":2},
			{"category":"SelfHarm","severity":0},
			{"category":"Sexual","severity":0},
			{"category":"Violence","severity":4}
		]}`))
	})

	scores, err := client.AnalyzeText(context.Background(), "hello world")
	gt.NoError(t, err).Required()
	gt.Equal(t, len(scores), 4)
	gt.Equal(t, scores[0], model.CategoryScore{Name: "Hate", Severity: 2})
	gt.Equal(t, scores[3], model.CategoryScore{Name: "Violence", Severity: 4})
}

func TestAzureClientAnalyzeImage(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}

	client := newAzureServer(t, func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.URL.Path, "/contentsafety/image:analyze")

		var body struct {
			Image struct {
				Content string `json:"content"`
			} `json:"image"`
		}
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gt.Equal(t, body.Image.Content, base64.StdEncoding.EncodeToString(raw))

		_, _ = w.Write([]byte(`{"categoriesAnalysis":[{"category":"Sexual","severity":6}]}`))
	})

	scores, err := client.AnalyzeImage(context.Background(), raw)
	gt.NoError(t, err).Required()
	gt.Equal(t, scores, []model.CategoryScore{{Name: "Sexual", Severity: 6}})
}

func TestAzureClientFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"code":"InternalError"}}`},
		{"unauthorized", http.StatusUnauthorized, `{"error":{"code":"401"}}`},
		{"malformed json", http.StatusOK, `{"categoriesAnalysis":[`},
		{"missing severity", http.StatusOK, `{"categoriesAnalysis":[{"category":"Hate"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newAzureServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			})

			_, err := client.AnalyzeText(context.Background(), "hello")
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, model.ErrTagClassificationFailure))
		})
	}
}

func TestAzureClientNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := safety.NewAzureClient(url, "key")
	gt.NoError(t, err).Required()

	_, err = client.AnalyzeImage(context.Background(), []byte("img"))
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagClassificationFailure))
}

func TestNewAzureClientRequiresConfiguration(t *testing.T) {
	_, err := safety.NewAzureClient("", "key")
	gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))

	_, err = safety.NewAzureClient("https://example.cognitiveservices.azure.com", "")
	gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
}
