package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/najimt9-dotcom/PortfolioNT/internal/assistant"
)

func fakeProviderServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

func TestCompleteSendsFixedDecodingParams(t *testing.T) {
	var got map[string]interface{}
	srv := fakeProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"Hello there"}}]}`))
	})
	defer srv.Close()

	client := NewClient("test-key", srv.URL, "gpt-3.5-turbo", zerolog.Nop())
	reply, err := client.Complete(context.Background(), []assistant.PayloadMessage{
		{Role: "user", Content: "hi"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if reply != "Hello there" {
		t.Fatalf("reply = %q", reply)
	}

	if got["model"] != "gpt-3.5-turbo" {
		t.Fatalf("model = %v", got["model"])
	}
	if got["max_tokens"] != float64(300) {
		t.Fatalf("max_tokens = %v, want 300", got["max_tokens"])
	}
	if got["temperature"] != 0.7 {
		t.Fatalf("temperature = %v, want 0.7", got["temperature"])
	}
	msgs, _ := got["messages"].([]interface{})
	if len(msgs) != 1 {
		t.Fatalf("messages not forwarded verbatim: %v", got["messages"])
	}
}

func TestCompleteEmptyChoicesIsNotAnError(t *testing.T) {
	srv := fakeProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})
	defer srv.Close()

	client := NewClient("k", srv.URL, "m", zerolog.Nop())
	reply, err := client.Complete(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if reply != "" {
		t.Fatalf("reply = %q, want empty", reply)
	}
}

func TestCompleteSurfacesProviderRejection(t *testing.T) {
	srv := fakeProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	})
	defer srv.Close()

	client := NewClient("bad", srv.URL, "m", zerolog.Nop())
	if _, err := client.Complete(context.Background(), nil); err == nil {
		t.Fatal("expected an error for 401")
	}
}

func TestCompleteSurfacesNetworkFailure(t *testing.T) {
	srv := fakeProviderServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	client := NewClient("k", srv.URL, "m", zerolog.Nop())
	if _, err := client.Complete(context.Background(), nil); err == nil {
		t.Fatal("expected an error for unreachable provider")
	}
}
