package hevy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Client is a thin wrapper around the Hevy REST API:
// https://api.hevyapp.com/docs/
//
// Every call is attempted exactly once, no retries. A non-2xx response
// is returned as an error carrying the response body.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// ExerciseTemplates returns a single page of the exercise templates catalog.
func (c *Client) ExerciseTemplates(ctx context.Context, page, pageSize int) (_ *ExerciseTemplatesPage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.exerciseTemplates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))

	url := fmt.Sprintf("%s/v1/exercise_templates?page=%d&pageSize=%d", c.baseURL, page, pageSize)
	respBytes, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	templatesPage := &ExerciseTemplatesPage{}
	if err := json.Unmarshal(respBytes, templatesPage); err != nil {
		return nil, fmt.Errorf("unmarshal exercise templates page %d: %w", page, err)
	}

	return templatesPage, nil
}

// RoutineFolders lists all routine folders.
func (c *Client) RoutineFolders(ctx context.Context) (_ []RoutineFolder, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.routineFolders")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respBytes, err := c.do(ctx, http.MethodGet, c.baseURL+"/v1/routine_folders", nil)
	if err != nil {
		return nil, err
	}

	var response struct {
		RoutineFolders []RoutineFolder `json:"routine_folders"`
	}
	if err := json.Unmarshal(respBytes, &response); err != nil {
		return nil, fmt.Errorf("unmarshal routine folders: %w", err)
	}

	return response.RoutineFolders, nil
}

// CreateRoutineFolder creates a new routine folder with the given title.
func (c *Client) CreateRoutineFolder(ctx context.Context, title string) (_ *RoutineFolder, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.createRoutineFolder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payload := map[string]any{
		"routine_folder": map[string]any{
			"title": title,
		},
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal routine folder payload: %w", err)
	}

	respBytes, err := c.do(ctx, http.MethodPost, c.baseURL+"/v1/routine_folders", payloadBytes)
	if err != nil {
		return nil, err
	}

	var response struct {
		RoutineFolder RoutineFolder `json:"routine_folder"`
	}
	if err := json.Unmarshal(respBytes, &response); err != nil {
		return nil, fmt.Errorf("unmarshal created routine folder: %w", err)
	}

	log.Debugf("created routine folder %q: %d", title, response.RoutineFolder.ID)

	return &response.RoutineFolder, nil
}

// RoutinesInFolder lists the routines scoped to the given folder.
func (c *Client) RoutinesInFolder(ctx context.Context, folderID int) (_ []RoutineRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.routinesInFolder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("folder_id", folderID))

	url := fmt.Sprintf("%s/v1/routines?routine_folder_id=%d", c.baseURL, folderID)
	respBytes, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var response struct {
		Routines []RoutineRef `json:"routines"`
	}
	if err := json.Unmarshal(respBytes, &response); err != nil {
		return nil, fmt.Errorf("unmarshal routines: %w", err)
	}

	return response.Routines, nil
}

// CreateRoutine posts a single routine payload. The payload is expected to be
// already wrapped as {"routine": {...}} by the caller.
func (c *Client) CreateRoutine(ctx context.Context, payload map[string]any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.createRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal routine payload: %w", err)
	}

	if _, err := c.do(ctx, http.MethodPost, c.baseURL+"/v1/routines", payloadBytes); err != nil {
		return err
	}

	return nil
}

// DeleteRoutine deletes a routine by its id.
func (c *Client) DeleteRoutine(ctx context.Context, routineID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.deleteRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine_id", routineID))

	if _, err := c.do(ctx, http.MethodDelete, c.baseURL+"/v1/routines/"+routineID, nil); err != nil {
		return err
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("api-key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debugf("hevy api call: %s %s", method, url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response bytes: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, respBytes)
	}

	return respBytes, nil
}
