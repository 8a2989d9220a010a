package gemini

import (
	"net/url"
	"strings"
)

// endpoint shapes generation requests for one endpoint family. It is picked
// once from the base URL when the Client is built.
type endpoint interface {
	generatePath(model string) string
	generateBody(prompt string) generateRequest
}

// studioEndpoint targets generativelanguage.googleapis.com and compatible
// deployments.
type studioEndpoint struct{}

func (studioEndpoint) generatePath(model string) string {
	return ParseModelName(model).Resource() + ":" + MethodGenerateContent
}

func (studioEndpoint) generateBody(prompt string) generateRequest {
	return generateRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	}
}

// vertexEndpoint targets aiplatform.googleapis.com. The model id is used
// verbatim since the base URL already ends in ".../models".
type vertexEndpoint struct{}

func (vertexEndpoint) generatePath(model string) string {
	return model + ":" + MethodStreamGenerateContent
}

func (vertexEndpoint) generateBody(prompt string) generateRequest {
	return generateRequest{
		Contents: []Content{{Role: roleUser, Parts: []Part{{Text: prompt}}}},
	}
}

func endpointFor(baseURL string) endpoint {
	if isVertexURL(baseURL) {
		return vertexEndpoint{}
	}
	return studioEndpoint{}
}

func isVertexURL(baseURL string) bool {
	u, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == VertexHost || strings.HasSuffix(host, "-"+VertexHost)
}
