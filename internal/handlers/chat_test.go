package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/najimt9-dotcom/PortfolioNT/internal/api"
	"github.com/najimt9-dotcom/PortfolioNT/internal/assistant"
	"github.com/najimt9-dotcom/PortfolioNT/internal/handlers"
	"github.com/najimt9-dotcom/PortfolioNT/internal/store"
)

// fakeProvider is a canned CompletionProvider.
type fakeProvider struct {
	content string
	err     error
	calls   int
}

func (f *fakeProvider) Complete(ctx context.Context, messages []assistant.PayloadMessage) (string, error) {
	f.calls++
	return f.content, f.err
}

func newTestServer(t *testing.T, provider *fakeProvider) (http.Handler, *store.MemoryArchive) {
	t.Helper()
	archive := store.NewMemoryArchive()
	h := handlers.NewHandler(provider, archive, nil, zerolog.Nop())
	return api.NewRouter(zerolog.Nop(), h), archive
}

func postChat(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	return out
}

func TestChatMethodNotAllowed(t *testing.T) {
	provider := &fakeProvider{content: "x"}
	router, _ := newTestServer(t, provider)

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Method not allowed" {
		t.Fatalf("error = %q", got)
	}
	if provider.calls != 0 {
		t.Fatal("provider called for non-POST request")
	}
}

func TestChatRejectsNonArrayMessages(t *testing.T) {
	provider := &fakeProvider{content: "x"}
	router, _ := newTestServer(t, provider)

	for _, body := range []string{
		`{"messages": "not-an-array"}`,
		`{"messages": 42}`,
		`{}`,
		`not json at all`,
	} {
		rec := postChat(t, router, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status %d, want 400", body, rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Messages must be a non-empty array" {
			t.Fatalf("body %q: error = %q", body, got)
		}
	}
	if provider.calls != 0 {
		t.Fatal("provider called despite invalid input")
	}
}

func TestChatSuccess(t *testing.T) {
	provider := &fakeProvider{content: "Hello there"}
	router, archive := newTestServer(t, provider)

	rec := postChat(t, router, `{"messages":[{"role":"system","content":"ctx"},{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec)["reply"]; got != "Hello there" {
		t.Fatalf("reply = %q", got)
	}
	if provider.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls)
	}

	// the exchange lands in the archive
	recent, err := archive.RecentExchanges(context.Background(), 1)
	if err != nil || len(recent) != 1 {
		t.Fatalf("archive recent = %v, %v", recent, err)
	}
	if recent[0].Question != "hi" || recent[0].Source != store.SourceRemote {
		t.Fatalf("unexpected exchange: %+v", recent[0])
	}
}

func TestChatSubstitutesApologyForEmptyCompletion(t *testing.T) {
	provider := &fakeProvider{content: ""}
	router, archive := newTestServer(t, provider)

	rec := postChat(t, router, `{"messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec)["reply"]; got != "I'm sorry, I couldn't generate a response." {
		t.Fatalf("reply = %q", got)
	}

	count, err := archive.CountBySource(context.Background(), store.SourceApology)
	if err != nil || count != 1 {
		t.Fatalf("apology count = %d, %v", count, err)
	}
}

func TestChatHidesProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("rate limit: key sk-secret rejected")}
	router, _ := newTestServer(t, provider)

	rec := postChat(t, router, `{"messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Internal Server Error" {
		t.Fatalf("error = %q", got)
	}
	if strings.Contains(rec.Body.String(), "sk-secret") {
		t.Fatal("provider error detail leaked to the client")
	}
}

func TestChatAllowsEmptyMessagesArray(t *testing.T) {
	// Validation only requires an array; an empty one still reaches the
	// provider.
	provider := &fakeProvider{content: "ok"}
	router, _ := newTestServer(t, provider)

	rec := postChat(t, router, `{"messages":[]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if provider.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls)
	}
}

func TestQuestionsEndpoint(t *testing.T) {
	router, _ := newTestServer(t, &fakeProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var out struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if len(out.Questions) == 0 {
		t.Fatal("no quick questions returned")
	}
}

func TestStatsEndpoint(t *testing.T) {
	provider := &fakeProvider{content: "a reply"}
	router, _ := newTestServer(t, provider)

	postChat(t, router, `{"messages":[{"role":"user","content":"what skills?"}]}`)
	postChat(t, router, `{"messages":[{"role":"user","content":"available?"}]}`)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var out struct {
		TotalExchanges  int64 `json:"total_exchanges"`
		RecentQuestions []struct {
			Question string `json:"question"`
		} `json:"recent_questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if out.TotalExchanges != 2 {
		t.Fatalf("total exchanges = %d, want 2", out.TotalExchanges)
	}
	if len(out.RecentQuestions) != 2 || out.RecentQuestions[0].Question != "available?" {
		t.Fatalf("unexpected recent questions: %+v", out.RecentQuestions)
	}
}
