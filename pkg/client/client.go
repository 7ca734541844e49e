package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"renderdeck/pkg/types"
)

// Client talks to the render service. Both calls are single-attempt: no
// retries, no client-side timeout (the service's own bound is the only
// bound on a render).
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// FetchCatalog issues the startup GET /scenarios call and returns the
// ordered scenario identifiers. Called exactly once per session.
func (c *Client) FetchCatalog() ([]string, error) {
	resp, err := c.http.Get(c.baseURL + "/scenarios")
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint returned %s: %s", resp.Status, trim(body))
	}

	var parsed types.CatalogResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w\nResponse body: %s", err, trim(body))
	}
	return parsed.Values, nil
}

// SubmitRender posts the payload to the endpoint for the selected scenario
// and waits for the encoded image. Every failure mode is folded into the
// RenderResult so the caller never sees a fault, only a message.
func (c *Client) SubmitRender(scenario string, req types.RenderRequest) types.RenderResult {
	payload, err := json.Marshal(req)
	if err != nil {
		return types.RenderResult{Err: fmt.Sprintf("failed to encode render request: %v", err)}
	}

	endpoint := c.baseURL + "/render/" + url.PathEscape(scenario)
	resp, err := c.http.Post(endpoint, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return types.RenderResult{Err: fmt.Sprintf("render request failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.RenderResult{Err: fmt.Sprintf("reading render response: %v", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return types.RenderResult{Err: fmt.Sprintf("render endpoint returned %s: %s", resp.Status, trim(body))}
	}

	var parsed types.RenderResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return types.RenderResult{Err: fmt.Sprintf("failed to decode render response: %v", err)}
	}
	if parsed.Base64Image == "" {
		return types.RenderResult{Err: "render response contained no image"}
	}
	return types.RenderResult{Base64Image: parsed.Base64Image}
}

// trim keeps error messages readable when the server sends a large body.
func trim(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
