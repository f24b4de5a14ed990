//go:build integration

package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiMock is a scripted HTTP server that records every request it receives.
// It stands in for third-party APIs such as the email provider.
type ApiMock struct {
	mu               sync.Mutex
	server           *httptest.Server
	requestsReceived map[string][]map[string]any
	headersReceived  map[string][]http.Header
	responses        map[string]cannedResponse
}

type cannedResponse struct {
	status int
	body   any
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requestsReceived: map[string][]map[string]any{},
		headersReceived:  map[string][]http.Header{},
		responses:        map[string]cannedResponse{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + r.URL.Path

		body, _ := io.ReadAll(r.Body)
		var request map[string]any
		_ = json.Unmarshal(body, &request)
		if request == nil {
			request = map[string]any{}
		}

		a.mu.Lock()
		a.requestsReceived[key] = append(a.requestsReceived[key], request)
		a.headersReceived[key] = append(a.headersReceived[key], r.Header.Clone())
		response, ok := a.responses[key]
		a.mu.Unlock()

		if !ok {
			response = cannedResponse{status: http.StatusOK, body: map[string]any{}}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(response.status)
		_ = json.NewEncoder(w).Encode(response.body)
	}))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// SetResponse scripts the reply for every request to method and path.
func (a *ApiMock) SetResponse(method, path string, status int, response any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = cannedResponse{status: status, body: response}
}

// GetRequests returns the decoded JSON bodies received on method and path.
func (a *ApiMock) GetRequests(method, path string) []map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]map[string]any(nil), a.requestsReceived[method+path]...)
}

// GetRequestHeaders returns the headers of the index-th request on method and path.
func (a *ApiMock) GetRequestHeaders(method, path string, index int) http.Header {
	a.mu.Lock()
	defer a.mu.Unlock()
	headers := a.headersReceived[method+path]
	if index < 0 || index >= len(headers) {
		return nil
	}
	return headers[index]
}

// Clear forgets recorded requests and scripted responses.
func (a *ApiMock) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requestsReceived = map[string][]map[string]any{}
	a.headersReceived = map[string][]http.Header{}
	a.responses = map[string]cannedResponse{}
}
