package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendReturnsReply(t *testing.T) {
	var gotBody struct {
		Messages []Message `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"I build web apps."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/api/chat")
	payload := []Message{
		{Role: "system", Content: "ctx"},
		{Role: "user", Content: "what do you do?"},
	}

	reply, ok := client.Send(context.Background(), payload)
	if !ok {
		t.Fatal("ok = false for healthy endpoint")
	}
	if reply != "I build web apps." {
		t.Fatalf("reply = %q", reply)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[1].Content != "what do you do?" {
		t.Fatalf("payload not forwarded intact: %+v", gotBody.Messages)
	}
}

func TestSendAbsentReplyFieldIsOk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	reply, ok := NewClient(srv.URL).Send(context.Background(), nil)
	if !ok || reply != "" {
		t.Fatalf("got (%q, %v), want (\"\", true)", reply, ok)
	}
}

func TestSendAbsorbsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, ok := NewClient(srv.URL).Send(context.Background(), nil); ok {
		t.Fatal("ok = true for 500 response")
	}
}

func TestSendAbsorbsMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json`))
	}))
	defer srv.Close()

	if _, ok := NewClient(srv.URL).Send(context.Background(), nil); ok {
		t.Fatal("ok = true for malformed response")
	}
}

func TestSendAbsorbsUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	if _, ok := NewClient(srv.URL).Send(context.Background(), nil); ok {
		t.Fatal("ok = true for unreachable endpoint")
	}
}

func TestNewClientDefaultEndpoint(t *testing.T) {
	t.Setenv("CHAT_API_URL", "")
	if got := NewClient("").Endpoint; got != DefaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", got, DefaultEndpoint)
	}
}
