package llmsdk_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/picatz/llmsdk"
	"github.com/shoenig/test/must"
)

// testServer starts an HTTP test server and returns a client pointed at it.
func testServer(t *testing.T, handler http.HandlerFunc) *llmsdk.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return llmsdk.NewClient("test-key", llmsdk.WithBaseURL(srv.URL))
}

func TestClientAuthHeaders(t *testing.T) {
	var (
		gotAuth string
		gotOrg  string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotOrg = r.Header.Get("OpenAI-Organization")
		fmt.Fprint(w, `{"object":"list","data":[]}`)
	}))
	t.Cleanup(srv.Close)

	client := llmsdk.NewClient("secret-key",
		llmsdk.WithBaseURL(srv.URL),
		llmsdk.WithOrganization("org-123"),
	)

	_, err := client.ListModels(t.Context())
	must.NoError(t, err)
	must.Eq(t, "Bearer secret-key", gotAuth)
	must.Eq(t, "org-123", gotOrg)
}

func TestClientBaseURLTrailingSlash(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"object":"list","data":[]}`)
	}))
	t.Cleanup(srv.Close)

	client := llmsdk.NewClient("test-key", llmsdk.WithBaseURL(srv.URL+"/"))

	_, err := client.ListModels(t.Context())
	must.NoError(t, err)
	must.Eq(t, "/models", gotPath)
}

func TestClientAPIError(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key","type":"invalid_request_error","code":"invalid_api_key"}}`)
	})

	_, err := client.ChatCompletion(t.Context(), llmsdk.NewChatCompletionRequest(
		llmsdk.UserMessage("hello", ""),
	))
	must.Error(t, err)

	var apiErr *llmsdk.APIError
	must.True(t, errors.As(err, &apiErr))
	must.Eq(t, http.StatusUnauthorized, apiErr.StatusCode)
	must.Eq(t, "invalid api key", apiErr.Message)
	must.Eq(t, "invalid_request_error", apiErr.Type)
	must.Eq(t, "invalid_api_key", apiErr.Code)
}

func TestClientAPIErrorNullCode(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limit exceeded","type":"rate_limit_error","code":null}}`)
	})

	_, err := client.CreateEmbedding(t.Context(), llmsdk.NewEmbeddingRequest("hello"))
	must.Error(t, err)

	var apiErr *llmsdk.APIError
	must.True(t, errors.As(err, &apiErr))
	must.Eq(t, http.StatusTooManyRequests, apiErr.StatusCode)
	must.Eq(t, "", apiErr.Code)
}

func TestClientDecodeErrorMalformedSuccess(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	})

	_, err := client.ChatCompletion(t.Context(), llmsdk.NewChatCompletionRequest(
		llmsdk.UserMessage("hello", ""),
	))
	must.Error(t, err)

	var decodeErr *llmsdk.DecodeError
	must.True(t, errors.As(err, &decodeErr))
	must.Eq(t, http.StatusOK, decodeErr.StatusCode)
	must.Eq(t, `<html>not json</html>`, string(decodeErr.Body))
}

func TestClientDecodeErrorNonEnvelopeFailure(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `upstream exploded`)
	})

	_, err := client.ListModels(t.Context())
	must.Error(t, err)

	var decodeErr *llmsdk.DecodeError
	must.True(t, errors.As(err, &decodeErr))
	must.Eq(t, http.StatusBadGateway, decodeErr.StatusCode)
	must.Eq(t, "upstream exploded", string(decodeErr.Body))
}

func TestClientDecodeErrorEmptyEnvelope(t *testing.T) {
	// Valid JSON on an error status, but not the documented envelope.
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"detail":"boom"}`)
	})

	_, err := client.ListModels(t.Context())
	must.Error(t, err)

	var decodeErr *llmsdk.DecodeError
	must.True(t, errors.As(err, &decodeErr))
	must.Eq(t, http.StatusInternalServerError, decodeErr.StatusCode)
}

func TestClientTransportError(t *testing.T) {
	// A server that is already closed guarantees a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := llmsdk.NewClient("test-key", llmsdk.WithBaseURL(srv.URL))

	_, err := client.ChatCompletion(t.Context(), llmsdk.NewChatCompletionRequest(
		llmsdk.UserMessage("hello", ""),
	))
	must.Error(t, err)

	var transportErr *llmsdk.TransportError
	must.True(t, errors.As(err, &transportErr))
	must.Eq(t, "chat completion", transportErr.Op)
	must.NotNil(t, transportErr.Unwrap())
}

func TestClientNonStandardSuccessStatus(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprint(w, `{"object":"list","data":[{"id":"gpt-4o","object":"model","created":1,"owned_by":"openai"}]}`)
	})

	resp, err := client.ListModels(t.Context())
	must.NoError(t, err)
	must.Len(t, 1, resp.Data)
	must.Eq(t, "gpt-4o", resp.Data[0].ID)
}

func TestClientConcurrentRequests(t *testing.T) {
	// The echoed model proves responses are never delivered to the
	// wrong in-flight call.
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req llmsdk.ChatCompletionRequest
		must.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		resp := llmsdk.ChatCompletionResponse{
			Model: req.Model,
			Choices: []llmsdk.ChatCompletionChoice{
				{Message: llmsdk.AssistantMessage("echo:" + req.Messages[0].Content)},
			},
		}
		must.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			model := fmt.Sprintf("model-%d", i)
			content := fmt.Sprintf("message-%d", i)

			resp, err := client.ChatCompletion(t.Context(), llmsdk.NewChatCompletionRequest(
				llmsdk.UserMessage(content, ""),
			).WithModel(model))
			must.NoError(t, err)
			must.Eq(t, model, resp.Model)
			must.Eq(t, "echo:"+content, resp.Choices[0].Message.Content)
		}()
	}
	wg.Wait()
}
