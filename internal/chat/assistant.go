// Package chat forwards user questions to the Gemini API with the full
// itinerary embedded as context. One request, one reply, no streaming and
// no retry: any failure is converted at this boundary into a fixed
// user-readable message in the display locale.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"

	"tabi/internal/catalog"
)

const DefaultModel = "models/gemini-2.5-flash"

// Fallback replies shown in place of errors.
const (
	msgNoKey      = "很抱歉，我現在無法連線。請檢查您的 API 金鑰設定。"
	msgFailed     = "抱歉，處理您的請求時發生錯誤。"
	msgEmptyReply = "無法產生回應，請再試一次。"
)

const systemPrompt = `
You are an expert local guide and travel assistant for a user visiting Tokyo from Taiwan.
The user has a specific itinerary loaded into their app, which is provided below in JSON format.

ITINERARY_CONTEXT:
%s

Your Goal:
Answer the user's questions about their trip, providing navigation advice, cultural tips, or weather info relevant to their specific schedule.
If they ask "Where do I go next?", check the time context or explain the sequence.
Keep answers concise and mobile-friendly (short paragraphs, bullet points).
Be enthusiastic and polite.
If the user asks about a location not in the itinerary, provide general advice but mention it's an extra stop.

IMPORTANT:
Always respond in Traditional Chinese (Taiwanese Mandarin usage).
`

// Assistant answers a single user message. Implementations never return
// an error to the caller; failures surface as localized fallback text.
type Assistant interface {
	Send(ctx context.Context, userText string) string
}

// Gemini is the live assistant backed by the Generative Language API.
type Gemini struct {
	svc    *generativelanguage.Service
	model  string
	system string
}

// NewGemini builds the client and bakes the serialized itinerary into
// the system instruction attached to every call.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if model == "" {
		model = DefaultModel
	}
	itinerary, err := catalog.Context()
	if err != nil {
		return nil, err
	}
	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create generativelanguage service: %w", err)
	}
	return &Gemini{
		svc:    svc,
		model:  model,
		system: fmt.Sprintf(systemPrompt, itinerary),
	}, nil
}

// Send performs the single round-trip. The catalog is read-only context;
// nothing in the request mutates application state.
func (g *Gemini) Send(ctx context.Context, userText string) string {
	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{Role: "user", Parts: []*generativelanguage.Part{{Text: userText}}},
		},
		SystemInstruction: &generativelanguage.Content{
			Parts: []*generativelanguage.Part{{Text: g.system}},
		},
	}

	resp, err := g.svc.Models.GenerateContent(g.model, req).Context(ctx).Do()
	if err != nil {
		slog.ErrorContext(ctx, "Gemini request failed", "error", err, "model", g.model)
		return msgFailed
	}
	return replyText(resp)
}

// replyText extracts the first candidate's text, falling back to the
// retry message when the model produced nothing usable.
func replyText(resp *generativelanguage.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return msgEmptyReply
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return msgEmptyReply
	}
	var b strings.Builder
	for _, p := range content.Parts {
		b.WriteString(p.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return msgEmptyReply
	}
	return b.String()
}

// Disabled is the assistant used when no API key is configured. It
// always apologizes, matching the no-credential behavior of the UI.
type Disabled struct{}

func (Disabled) Send(context.Context, string) string { return msgNoKey }
