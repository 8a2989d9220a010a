package gemini

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEndpointShapes(t *testing.T) {
	studio, _ := json.Marshal(studioEndpoint{}.generateBody("hi"))
	if string(studio) != `{"contents":[{"parts":[{"text":"hi"}]}]}` {
		t.Errorf("studio body = %s", studio)
	}
	if got := (studioEndpoint{}).generatePath("foo"); got != "models/foo:generateContent" {
		t.Errorf("studio path = %q", got)
	}

	vertex, _ := json.Marshal(vertexEndpoint{}.generateBody("hi"))
	if !strings.Contains(string(vertex), `"role":"user"`) {
		t.Errorf("vertex body missing role: %s", vertex)
	}
	if got := (vertexEndpoint{}).generatePath("models/foo"); got != "models/foo:streamGenerateContent" {
		t.Errorf("vertex path must keep the id verbatim, got %q", got)
	}
}

func TestEndpointFor(t *testing.T) {
	if _, ok := endpointFor(VertexAPIURL).(vertexEndpoint); !ok {
		t.Errorf("expected vertexEndpoint for %s", VertexAPIURL)
	}
	if _, ok := endpointFor(DefaultAPIURL).(studioEndpoint); !ok {
		t.Errorf("expected studioEndpoint for %s", DefaultAPIURL)
	}
	if _, ok := endpointFor("::not a url").(studioEndpoint); !ok {
		t.Errorf("unparseable URLs fall back to studioEndpoint")
	}
}

func TestIsVertexURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{VertexAPIURL, true},
		{"https://us-central1-aiplatform.googleapis.com/v1/projects/p/locations/us-central1/publishers/google/models", true},
		{"https://EUROPE-WEST4-aiplatform.googleapis.com/v1", true},
		{"https://aiplatform.googleapis.com:443/v1", true},
		{DefaultAPIURL, false},
		{"https://aiplatform.googleapis.com.evil.example/v1", false},
		{"https://notaiplatform.googleapis.com/v1", false},
		{"http://127.0.0.1:8080/aiplatform.googleapis.com", false},
	}
	for _, tt := range tests {
		if got := isVertexURL(tt.url); got != tt.want {
			t.Errorf("isVertexURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
