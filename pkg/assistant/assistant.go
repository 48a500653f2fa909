package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/pkg/config"
)

// Client talks to the Gemini generateContent REST endpoint. Every method
// returns user-facing text, never an error: failures surface as fixed
// Spanish strings so the portal UI can render them directly.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New builds an assistant client from configuration.
func New(cfg config.AssistantConfig, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// TutorResponse answers a student question in the voice of a patient tutor.
func (c *Client) TutorResponse(ctx context.Context, question, subject string) string {
	if c.apiKey == "" {
		return "Error: API Key no configurada."
	}

	prompt := fmt.Sprintf(`Eres un tutor educativo amable y paciente para estudiantes de secundaria.
La materia es: %s.
El estudiante pregunta: "%s".
Responde de manera clara, concisa y alentadora. Usa formato Markdown para resaltar puntos clave.`, subject, question)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("assistant tutor call failed", zap.Error(err))
		return "Lo siento, tuve un problema al procesar tu consulta."
	}
	if text == "" {
		return "No se pudo generar una respuesta."
	}
	return text
}

// LessonPlan drafts a short lesson plan for teachers.
func (c *Client) LessonPlan(ctx context.Context, topic, gradeLevel string) string {
	if c.apiKey == "" {
		return "Error: API Key no configurada."
	}

	prompt := fmt.Sprintf(`Actúa como un coordinador pedagógico experto. Crea un plan de clase breve para docentes.
Tema: %s
Nivel/Año: %s

Estructura requerida (en Markdown):
1. Objetivos de aprendizaje
2. Actividad de inicio (5 min)
3. Desarrollo (20 min)
4. Cierre y evaluación (10 min)
5. Recursos necesarios`, topic, gradeLevel)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("assistant lesson plan call failed", zap.Error(err))
		return "Ocurrió un error al conectar con el asistente de planificación."
	}
	if text == "" {
		return "Error al generar la planificación."
	}
	return text
}

// AnalyzeInstitutionalData summarises school-wide figures for directors.
func (c *Client) AnalyzeInstitutionalData(ctx context.Context, dataDescription string) string {
	if c.apiKey == "" {
		return "Error: API Key no configurada."
	}

	prompt := fmt.Sprintf(`Eres un asesor educativo analizando datos de una escuela.
Datos actuales: "%s"

Proporciona un resumen ejecutivo breve (máximo 3 párrafos) con:
1. Análisis de la situación.
2. Una recomendación estratégica para mejorar.
Usa un tono profesional y directivo.`, dataDescription)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("assistant analysis call failed", zap.Error(err))
		return "No se pudo realizar el análisis en este momento."
	}
	if text == "" {
		return "Error al analizar datos."
	}
	return text
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call assistant: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
