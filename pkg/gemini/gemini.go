package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// statusMapper turns a non-2xx status into a typed error. Returning nil
// falls through to *HTTPError.
type statusMapper func(status int) error

// BaseURL returns the base URL with trailing slashes removed.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsVertexEndpoint reports whether the base URL host is VertexHost or a
// regional "<region>-aiplatform.googleapis.com" host.
func (c *Client) IsVertexEndpoint() bool {
	_, ok := c.endpoint.(vertexEndpoint)
	return ok
}

// ListModels lists available models with the "models/" prefix removed.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	body, err := c.do(ctx, http.MethodGet, c.url("models"), nil, func(status int) error {
		if status == http.StatusUnauthorized {
			return ErrInvalidAPIKey
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var resp modelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &JSONError{Err: err}
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, ParseModelName(m.Name).Bare())
	}
	return names, nil
}

// GetModel fetches the descriptor for model.
func (c *Client) GetModel(ctx context.Context, model string) (*ModelInfo, error) {
	path := ParseModelName(model).Resource()

	body, err := c.do(ctx, http.MethodGet, c.url(path), nil, notFoundOrUnauthorized(model))
	if err != nil {
		return nil, err
	}

	var info ModelInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, &JSONError{Err: err}
	}
	return &info, nil
}

// GenerateContent sends prompt to model and returns the response body as is.
// On Vertex the body is the streamGenerateContent output, which the caller
// must interpret.
func (c *Client) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	path := c.endpoint.generatePath(model)
	req := c.endpoint.generateBody(prompt)

	body, err := c.do(ctx, http.MethodPost, c.url(path), req, notFoundOrUnauthorized(model))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func notFoundOrUnauthorized(model string) statusMapper {
	return func(status int) error {
		switch status {
		case http.StatusNotFound:
			return &ModelNotFoundError{Model: model}
		case http.StatusUnauthorized:
			return ErrInvalidAPIKey
		}
		return nil
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + path + "?key=" + url.QueryEscape(c.apiKey)
}

// do performs one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, target string, payload any, mapStatus statusMapper) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, &JSONError{Err: err}
		}
		reqBody = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, &HTTPError{Err: err}
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &HTTPError{Err: redactKey(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if mapStatus != nil {
			if mapped := mapStatus(resp.StatusCode); mapped != nil {
				return nil, mapped
			}
		}
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(raw),
			API:        parseAPIError(raw),
		}
	}

	return raw, nil
}

// redactKey strips the API key from *url.Error messages, which embed the
// full request URL.
func redactKey(err error) error {
	urlErr, ok := err.(*url.Error)
	if !ok {
		return err
	}
	redacted := *urlErr
	if u, perr := url.Parse(urlErr.URL); perr == nil {
		q := u.Query()
		if q.Has("key") {
			q.Set("key", "REDACTED")
			u.RawQuery = q.Encode()
		}
		redacted.URL = u.String()
	}
	return &redacted
}
