package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/llm"
)

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"model":"llama3","message":{"role":"assistant","content":"hello there"},"done":true}`)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	got, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if got != "hello there" {
		t.Errorf("Chat() = %q, want %q", got, "hello there")
	}
}

func TestChatStream(t *testing.T) {
	chunks := []string{"Hey", " there", ", style", " seeker!"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, c := range chunks {
			fmt.Fprintf(w, `{"message":{"role":"assistant","content":%q},"done":false}`+"\n", c)
		}
		fmt.Fprint(w, `{"message":{"role":"assistant","content":""},"done":true}`+"\n")
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")

	var received []string
	full, err := p.ChatStream(context.Background(), []llm.Message{{Role: "user", Content: "pitch"}}, func(chunk string) error {
		received = append(received, chunk)
		return nil
	})
	if err != nil {
		t.Fatalf("ChatStream() error = %v", err)
	}

	want := strings.Join(chunks, "")
	if full != want {
		t.Errorf("full = %q, want %q", full, want)
	}
	if len(received) != len(chunks) {
		t.Fatalf("received %d chunks, want %d", len(received), len(chunks))
	}
	for i, c := range chunks {
		if received[i] != c {
			t.Errorf("chunk[%d] = %q, want %q", i, received[i], c)
		}
	}
}

func TestChatStreamHandlerAbort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message":{"role":"assistant","content":"a"},"done":false}`+"\n")
		fmt.Fprint(w, `{"message":{"role":"assistant","content":"b"},"done":true}`+"\n")
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	_, err := p.ChatStream(context.Background(), nil, func(chunk string) error {
		return errors.New("client gone")
	})
	if err == nil {
		t.Fatal("expected error when token handler aborts")
	}

	var ce *llm.CompletionError
	if !errors.As(err, &ce) {
		t.Errorf("error = %T, want *llm.CompletionError", err)
	}
}

func TestChatErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "missing")
	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}

	var ce *llm.CompletionError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %T, want *llm.CompletionError", err)
	}
	if ce.Provider != "ollama" {
		t.Errorf("Provider = %q, want %q", ce.Provider, "ollama")
	}
}
