package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/camillescott/cryptic/internal/summary"
)

// fakeOpenAI captures the request body and replies with a canned chat
// completion whose content is the given string.
func fakeOpenAI(t *testing.T, content string, tokens int, lastBody *map[string]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		*lastBody = body

		resp := map[string]any{
			"choices": []any{
				map[string]any{
					"message": map[string]any{"content": content},
				},
			},
			"usage": map[string]any{"total_tokens": tokens},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	t.Cleanup(server.Close)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", server.URL)
	return server
}

func TestSummarize(t *testing.T) {
	reply := "```json\n" + `{
		"category": "software",
		"tags": ["golang", "cli"],
		"info": {"category": "software", "summary": "A Go CLI tool.", "language": "Go"}
	}` + "\n```"

	var lastBody map[string]any
	fakeOpenAI(t, reply, 1234, &lastBody)

	svc, err := NewService("openai", "gpt-4o-mini")
	if err != nil {
		t.Fatal(err)
	}

	sum, tokens, err := svc.Summarize(context.Background(), "<html>some page</html>", "")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.Category != summary.CategorySoftware {
		t.Errorf("category = %q", sum.Category)
	}
	info, ok := sum.Info.(*summary.SoftwareInfo)
	if !ok {
		t.Fatalf("info = %T", sum.Info)
	}
	if info.Language != "Go" {
		t.Errorf("language = %q", info.Language)
	}
	if tokens != 1234 {
		t.Errorf("tokens = %d", tokens)
	}

	if lastBody["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v", lastBody["model"])
	}
	messages := lastBody["messages"].([]any)
	system := messages[0].(map[string]any)
	if system["role"] != "system" {
		t.Errorf("first message role = %v", system["role"])
	}
	if system["content"] != systemPrompt {
		t.Errorf("system prompt = %v", system["content"])
	}
	format := lastBody["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format type = %v", format["type"])
	}
}

func TestSummarizeForcedCategory(t *testing.T) {
	reply := `{
		"category": "paper",
		"tags": ["biology"],
		"info": {
			"category": "paper", "summary": "s", "title": "t",
			"authors": ["a"], "journal": "j", "abstract": "ab",
			"doi": "doi.org/x", "takeaways": ["one"], "foundations": "f"
		}
	}`

	var lastBody map[string]any
	fakeOpenAI(t, reply, 10, &lastBody)

	svc, err := NewService("openai", "gpt-4o-mini")
	if err != nil {
		t.Fatal(err)
	}
	sum, _, err := svc.Summarize(context.Background(), "page", summary.CategoryPaper)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if _, ok := sum.Info.(*summary.PaperInfo); !ok {
		t.Fatalf("info = %T", sum.Info)
	}

	format := lastBody["response_format"].(map[string]any)
	schema := format["json_schema"].(map[string]any)["schema"].(map[string]any)
	category := schema["properties"].(map[string]any)["category"].(map[string]any)
	enum := category["enum"].([]any)
	if len(enum) != 1 || enum[0] != "paper" {
		t.Errorf("category enum = %v, want pinned to paper", enum)
	}
}

func TestSummarizeUnknownForcedCategory(t *testing.T) {
	svc, err := NewService("openai", "gpt-4o-mini")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Summarize(context.Background(), "page", summary.Category("banana")); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
}

func TestSummarizeBadReply(t *testing.T) {
	var lastBody map[string]any
	fakeOpenAI(t, "sorry, I cannot do that", 5, &lastBody)

	svc, err := NewService("openai", "gpt-4o-mini")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Summarize(context.Background(), "page", ""); err == nil {
		t.Fatal("expected a parse error for a non-JSON reply")
	}
}

func TestNewService(t *testing.T) {
	if _, err := NewService("carrier-pigeon", ""); err == nil {
		t.Fatal("expected an error for an unsupported provider")
	}

	t.Setenv("CRYPTIC_PROVIDER", "ollama")
	t.Setenv("OLLAMA_MODEL", "")
	svc, err := NewService("", "")
	if err != nil {
		t.Fatal(err)
	}
	if svc.ProviderName() != "ollama" {
		t.Errorf("provider = %q", svc.ProviderName())
	}
	if svc.Model() != "llama3.1" {
		t.Errorf("model = %q", svc.Model())
	}

	t.Setenv("OLLAMA_MODEL", "qwen2.5")
	svc, err = NewService("", "")
	if err != nil {
		t.Fatal(err)
	}
	if svc.Model() != "qwen2.5" {
		t.Errorf("model = %q", svc.Model())
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"padded", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
