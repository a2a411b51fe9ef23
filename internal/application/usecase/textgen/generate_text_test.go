package textgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-studio/pkg/apperror"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

type fakeLLM struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeLLM) GenerateChatResponse(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func TestFeatures(t *testing.T) {
	assert.Equal(t, []string{
		"birthday-wishes", "blog-ideas", "creative-writing", "event-captions", "gift-messages",
		"instagram-captions", "jokes", "letter", "names", "nicknames", "quotes", "speech", "story",
	}, Features())
}

func TestGenerateTextAcceptsValidReplies(t *testing.T) {
	tests := []struct {
		feature string
		reply   string
	}{
		{"jokes", `[{"type":"standard","setup":"Why?","punchline":"Because."},{"type":"riddle","question":"Q","answer":"A"}]`},
		{"quotes", "```json\n{\"quotes\":[{\"text\":\"Keep going\",\"analysis\":\"a\",\"usage\":\"u\"}]}\n```"},
		{"nicknames", `{"nicknames":[{"nickname":"Jay","meaning":"short for Jane"}]}`},
		{"names", "```\n{\"names\":[{\"name\":\"Mira\",\"meaning\":\"wonder\"}]}\n```"},
		{"blog-ideas", `[{"title":"T","description":"D","outline":["a","b"],"estimatedWordCount":1200}]`},
		{"birthday-wishes", `["Happy birthday!", "Many happy returns"]`},
		{"instagram-captions", `{"captions":[{"caption":"Golden hour","hashtags":["#sunset"]}]}`},
		{"event-captions", `["Join us at the Spring Fair!"]`},
		{"gift-messages", `["A little something for a big heart"]`},
		{"letter", `{"content":"Dear Ms. Smith,\n...","formatting":"block"}`},
		{"speech", `{"versions":[{"speech":"Good evening everyone","speakerNotes":"pause here"}]}`},
		{"story", `{"title":"The Kind Fox","story":"Once upon a time..."}`},
		{"creative-writing", "```json\n{\"versions\":[{\"content\":\"Rain on tin\",\"notes\":\"imagery\",\"outline\":\"one stanza\"}]}\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.feature, func(t *testing.T) {
			uc := NewGenerateTextUseCase(&fakeLLM{reply: tt.reply}, logger.NewNop())
			out, err := uc.Execute(context.Background(), GenerateTextInput{Feature: tt.feature})
			require.NoError(t, err)
			assert.Equal(t, tt.feature, out.Feature)
			assert.JSONEq(t, stripMarkdownCodeFences(tt.reply), string(out.Result))
		})
	}
}

func TestGenerateTextRejectsMalformedReplies(t *testing.T) {
	tests := []struct {
		name    string
		feature string
		reply   string
	}{
		{"prose around json", "birthday-wishes", `Sure! Here you go: ["Happy birthday"]`},
		{"trailing value", "birthday-wishes", `["a"] ["b"]`},
		{"wrong shape", "quotes", `{"quotes":"not an array"}`},
		{"missing field", "nicknames", `{"nicknames":[{"nickname":"Jay"}]}`},
		{"unknown joke type", "jokes", `[{"type":"pun","content":"x"}]`},
		{"empty array", "blog-ideas", `[]`},
		{"not json", "names", `names: Mira`},
		{"plain prose story", "story", `Once upon a time there was a fox.`},
		{"letter without content", "letter", `{"formatting":"block"}`},
		{"empty speech versions", "speech", `{"versions":[]}`},
		{"caption object instead of list", "event-captions", `{"captions":["a"]}`},
		{"empty gift message", "gift-messages", `[""]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewGenerateTextUseCase(&fakeLLM{reply: tt.reply}, logger.NewNop())
			out, err := uc.Execute(context.Background(), GenerateTextInput{Feature: tt.feature})
			assert.Nil(t, out)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.ErrorIs(t, err, apperror.ErrUpstream)
		})
	}
}

func TestGenerateTextPromptUsesParams(t *testing.T) {
	llm := &fakeLLM{reply: `["Happy birthday, Sam!"]`}
	uc := NewGenerateTextUseCase(llm, logger.NewNop())

	_, err := uc.Execute(context.Background(), GenerateTextInput{
		Feature: "birthday-wishes",
		Params:  map[string]string{"Name": "Sam", "Age": "30"},
	})
	require.NoError(t, err)
	assert.Contains(t, llm.prompt, "- Name: Sam")
	assert.Contains(t, llm.prompt, "- Age: 30")
	assert.Contains(t, llm.prompt, "- Language: English")
	assert.NotContains(t, llm.prompt, "<no value>")
}

func TestGenerateTextOptionalParamsAreOmitted(t *testing.T) {
	llm := &fakeLLM{reply: `{"content":"Dear team"}`}
	uc := NewGenerateTextUseCase(llm, logger.NewNop())

	_, err := uc.Execute(context.Background(), GenerateTextInput{
		Feature: "letter",
		Params:  map[string]string{"SenderName": "Ana", "RecipientName": "Bo", "Subject": "Thanks", "Purpose": "Gratitude"},
	})
	require.NoError(t, err)
	assert.Contains(t, llm.prompt, "Generate a formal letter")
	assert.Contains(t, llm.prompt, "From: Ana\n")
	assert.NotContains(t, llm.prompt, "Date:")
	assert.NotContains(t, llm.prompt, "Additional Details")
}

func TestGenerateTextFailures(t *testing.T) {
	_, err := NewGenerateTextUseCase(&fakeLLM{}, logger.NewNop()).
		Execute(context.Background(), GenerateTextInput{Feature: "poems"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = NewGenerateTextUseCase(nil, logger.NewNop()).
		Execute(context.Background(), GenerateTextInput{Feature: "jokes"})
	assert.ErrorIs(t, err, apperror.ErrUnavailable)

	cause := errors.New("connection refused")
	_, err = NewGenerateTextUseCase(&fakeLLM{err: cause}, logger.NewNop()).
		Execute(context.Background(), GenerateTextInput{Feature: "jokes"})
	assert.ErrorIs(t, err, apperror.ErrUpstream)
	assert.ErrorIs(t, err, cause)
}

func TestStripMarkdownCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripMarkdownCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `[1]`, stripMarkdownCodeFences("  ```\n[1]\n```  "))
	assert.Equal(t, `{"a":1}`, stripMarkdownCodeFences(`{"a":1}`))
	assert.Equal(t, `[]`, stripMarkdownCodeFences("```[]```"))
}
