// Package extraction turns free-text chat messages into partial quote requests
// with a Gemini model.
package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/infrastructure/resilience"
	"fukuro_studio/internal/usecase/interfaces"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const serviceName = "gemini"

var errMalformedResponse = errors.New("malformed extraction response")

// generator is the part of *genai.Models the extractor uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type errorCounter interface {
	IncrExternalError(service string)
}

type Options struct {
	Model      string
	Timeout    time.Duration
	Resilience resilience.Config
}

// GeminiExtractor implements IExtractor. Each call is bounded by Timeout,
// retried with backoff on transport errors and guarded by a circuit breaker.
type GeminiExtractor struct {
	models  generator
	opts    Options
	clock   interfaces.IClock
	breaker *gobreaker.CircuitBreaker
	errors  errorCounter
	log     *zap.Logger
}

var _ interfaces.IExtractor = (*GeminiExtractor)(nil)

// NewGeminiExtractor creates a Gemini API client for apiKey.
func NewGeminiExtractor(ctx context.Context, apiKey string, opts Options, clock interfaces.IClock, counter errorCounter, log *zap.Logger) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newExtractor(client.Models, opts, clock, counter, log), nil
}

func newExtractor(models generator, opts Options, clock interfaces.IClock, counter errorCounter, log *zap.Logger) *GeminiExtractor {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	return &GeminiExtractor{
		models:  models,
		opts:    opts,
		clock:   clock,
		breaker: resilience.NewCircuitBreaker("gemini-extractor"),
		errors:  counter,
		log:     log,
	}
}

func (e *GeminiExtractor) Extract(ctx context.Context, text string, history []entities.ConversationTurn) (entities.IntakeData, error) {
	contents := buildContents(text, history)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt(e.clock.Now())}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    intakeSchema(),
		Temperature:       genai.Ptr[float32](0.1),
	}

	start := time.Now()
	result, err := e.breaker.Execute(func() (interface{}, error) {
		var data entities.IntakeData
		err := resilience.RetryWithBackoff(ctx, e.opts.Resilience, retryable, func() error {
			callCtx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
			defer cancel()

			resp, err := e.models.GenerateContent(callCtx, e.opts.Model, contents, config)
			if err != nil {
				return err
			}
			data, err = parseFragment(resp.Text())
			return err
		})
		return data, err
	})
	if err != nil {
		if e.errors != nil {
			e.errors.IncrExternalError(serviceName)
		}
		e.log.Warn("[intake][extractor] extraction failed",
			zap.Duration("latency", time.Since(start)),
			zap.String("breaker", e.breaker.State().String()),
			zap.Error(err))
		return entities.IntakeData{}, &entities.ErrExternalService{Service: serviceName, Err: err}
	}

	e.log.Debug("[intake][extractor] extraction done", zap.Duration("latency", time.Since(start)))
	return result.(entities.IntakeData), nil
}

// retryable skips errors a new attempt cannot fix.
func retryable(err error) bool {
	return !errors.Is(err, errMalformedResponse) && !errors.Is(err, context.Canceled)
}

func buildContents(text string, history []entities.ConversationTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		if turn.Role == entities.TurnRoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []*genai.Part{{Text: turn.Text}}})
	}
	return append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: text}}})
}

// parseFragment decodes the model output, tolerating markdown code fences.
func parseFragment(raw string) (entities.IntakeData, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if s == "" {
		return entities.IntakeData{}, fmt.Errorf("%w: empty body", errMalformedResponse)
	}

	var data entities.IntakeData
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return entities.IntakeData{}, fmt.Errorf("%w: %v", errMalformedResponse, err)
	}
	return data, nil
}

func systemPrompt(now time.Time) string {
	return fmt.Sprintf(`You extract quote details for Fukuro, an audio and video production studio.
Today is %s (%s). Read the latest user message in the context of the conversation and
return ONLY the fields the latest message states or corrects. Omit everything else.

Fields:
- client_name, client_email: contact details.
- project_name: the production name. existing_project: true when the client says the
  project already exists with the studio; keep project_name when they also name it.
- audio / video: the requested service. quantity is the number of pieces.
  duration is the approximate length of each piece as written by the client ("1:30",
  "45 segundos"). individual_durations lists one length per piece when they differ.
  format and resolution are free text (e.g. "wav", "1080p").
- delivery_date: YYYY-MM-DD. Resolve relative dates ("next Friday") against today.
- brief: what the client needs, in their words. assets_link: a URL with material.

Never invent values and never price anything.`, now.Format("2006-01-02"), now.Weekday())
}

func intakeSchema() *genai.Schema {
	str := func(desc string) *genai.Schema { return &genai.Schema{Type: genai.TypeString, Description: desc} }
	service := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"quantity":             {Type: genai.TypeInteger},
			"duration":             str("approximate length of each piece"),
			"individual_durations": {Type: genai.TypeArray, Items: str("length of one piece")},
			"format":               str(""),
			"resolution":           str(""),
		},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"client_name":      str(""),
			"client_email":     str(""),
			"project_name":     str(""),
			"existing_project": {Type: genai.TypeBoolean},
			"audio":            service,
			"video":            service,
			"delivery_date":    str("YYYY-MM-DD"),
			"brief":            str(""),
			"assets_link":      str(""),
		},
	}
}
