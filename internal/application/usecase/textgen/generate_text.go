package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/internal/application/service"
	"github.com/khoahotran/resume-studio/pkg/apperror"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

// ErrMalformedResponse marks a model reply that is not exactly one JSON value
// matching the feature's schema.
var ErrMalformedResponse = errors.New("malformed model response")

type GenerateTextUseCase struct {
	llm    service.LLMService
	logger logger.Logger
}

// NewGenerateTextUseCase accepts a nil llm; every call then reports the
// generator as unavailable.
func NewGenerateTextUseCase(llm service.LLMService, log logger.Logger) *GenerateTextUseCase {
	return &GenerateTextUseCase{llm: llm, logger: log}
}

type GenerateTextInput struct {
	Feature string
	Params  map[string]string
}

type GenerateTextOutput struct {
	Feature string
	Result  json.RawMessage
}

func (uc *GenerateTextUseCase) Execute(ctx context.Context, input GenerateTextInput) (*GenerateTextOutput, error) {
	feature, ok := catalog[input.Feature]
	if !ok {
		return nil, apperror.NewNotFound("feature", input.Feature)
	}
	if uc.llm == nil {
		return nil, apperror.NewUnavailable("text generation", nil)
	}

	params := input.Params
	if params == nil {
		params = map[string]string{}
	}
	var prompt strings.Builder
	if err := feature.prompt.Execute(&prompt, params); err != nil {
		return nil, apperror.NewInvalidInput("cannot build prompt from params", err)
	}

	reply, err := uc.llm.GenerateChatResponse(ctx, prompt.String())
	if err != nil {
		return nil, apperror.NewUpstream("model request failed", err)
	}

	result, err := feature.decode(reply)
	if err != nil {
		uc.logger.Warn("Rejected model response",
			zap.String("feature", feature.Name),
			zap.Int("reply_bytes", len(reply)),
			zap.Error(err),
		)
		return nil, apperror.NewUpstream("model response did not match the expected format", err)
	}

	return &GenerateTextOutput{Feature: feature.Name, Result: result}, nil
}

// decode accepts exactly one JSON value, optionally wrapped in a markdown
// code fence, that satisfies the feature's schema.
func (f *Feature) decode(reply string) (json.RawMessage, error) {
	cleaned := []byte(stripMarkdownCodeFences(reply))

	dec := json.NewDecoder(bytes.NewReader(cleaned))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedResponse)
	}

	res, err := f.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(msgs, "; "))
	}
	return raw, nil
}

// stripMarkdownCodeFences removes a surrounding ``` or ```json fence.
func stripMarkdownCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	if nl := strings.IndexByte(cleaned, '\n'); nl >= 0 {
		cleaned = cleaned[nl+1:]
	} else {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
