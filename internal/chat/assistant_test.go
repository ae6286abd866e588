package chat

import (
	"context"
	"strings"
	"testing"

	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
)

func TestReplyText(t *testing.T) {
	cases := []struct {
		name string
		resp *generativelanguage.GenerateContentResponse
		want string
	}{
		{"nil response", nil, msgEmptyReply},
		{"no candidates", &generativelanguage.GenerateContentResponse{}, msgEmptyReply},
		{
			"nil content",
			&generativelanguage.GenerateContentResponse{
				Candidates: []*generativelanguage.Candidate{{}},
			},
			msgEmptyReply,
		},
		{
			"blank text",
			&generativelanguage.GenerateContentResponse{
				Candidates: []*generativelanguage.Candidate{{
					Content: &generativelanguage.Content{Parts: []*generativelanguage.Part{{Text: "  "}}},
				}},
			},
			msgEmptyReply,
		},
		{
			"multi-part reply",
			&generativelanguage.GenerateContentResponse{
				Candidates: []*generativelanguage.Candidate{{
					Content: &generativelanguage.Content{Parts: []*generativelanguage.Part{
						{Text: "先搭"}, {Text: "京急線"},
					}},
				}},
			},
			"先搭京急線",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := replyText(tc.resp); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDisabledAlwaysApologizes(t *testing.T) {
	got := Disabled{}.Send(context.Background(), "哪裡吃拉麵？")
	if got != msgNoKey {
		t.Fatalf("got %q, want missing-key apology", got)
	}
}

func TestSystemPromptEmbedsItinerary(t *testing.T) {
	// The prompt template keeps the locale directive; the built prompt
	// must contain the serialized catalog.
	if !strings.Contains(systemPrompt, "Traditional Chinese") {
		t.Fatal("locale directive missing from prompt")
	}
}
