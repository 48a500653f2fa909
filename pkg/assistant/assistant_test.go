package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/pkg/config"
)

func newTestClient(baseURL, apiKey string) *Client {
	return New(config.AssistantConfig{
		APIKey:  apiKey,
		Model:   "gemini-2.5-flash",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestTutorResponseUnconfiguredKey(t *testing.T) {
	c := newTestClient("http://localhost", "")
	assert.Equal(t, "Error: API Key no configurada.", c.TutorResponse(context.Background(), "¿Qué es un puntero?", "Programación I"))
}

func TestTutorResponseSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "¿Qué es un puntero?")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "Un puntero guarda una dirección de memoria."}},
				}},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "test-key")
	got := c.TutorResponse(context.Background(), "¿Qué es un puntero?", "Programación I")
	assert.Equal(t, "Un puntero guarda una dirección de memoria.", got)
}

func TestLessonPlanUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "test-key")
	got := c.LessonPlan(context.Background(), "Fracciones", "1° Año")
	assert.Equal(t, "Ocurrió un error al conectar con el asistente de planificación.", got)
}

func TestAnalyzeEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "test-key")
	got := c.AnalyzeInstitutionalData(context.Background(), "Asistencia 80%")
	assert.Equal(t, "Error al analizar datos.", got)
}
