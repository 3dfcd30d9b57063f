// Package ai wraps the Vertex AI generative model used to draft
// document body text.
package ai

import (
	"context"
	"strings"
	"sync"

	"cloud.google.com/go/vertexai/genai"
	"github.com/bisagn/formalgen/internal/config"
	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/types"
)

// Drafter produces body text for a document from a topic prompt.
type Drafter interface {
	DraftBody(ctx context.Context, docType types.DocumentType, lang types.Language, topic string) (string, error)
	Close() error
}

// Client holds the process-wide generative model handle. The
// underlying Vertex client is initialised on first use and reused for
// every subsequent draft.
type Client struct {
	cfg *config.VertexConfig
	log *logger.Logger

	initOnce sync.Once
	initErr  error
	base     *genai.Client
	model    *genai.GenerativeModel
}

// NewClient returns an uninitialised drafting client. No network
// connection is made until the first DraftBody call.
func NewClient(cfg *config.Configuration, log *logger.Logger) *Client {
	return &Client{cfg: &cfg.Vertex, log: log}
}

func (c *Client) init(ctx context.Context) error {
	c.initOnce.Do(func() {
		if c.cfg.ProjectID == "" {
			c.log.Warnf("vertex project id is not set, body drafting will fail")
		}
		base, err := genai.NewClient(ctx, c.cfg.ProjectID, c.cfg.Region)
		if err != nil {
			c.initErr = err
			return
		}
		c.base = base
		c.model = base.GenerativeModel(c.cfg.Model)
		c.model.GenerationConfig = genai.GenerationConfig{
			Temperature: genai.Ptr[float32](0.4),
		}
		c.log.Infof("vertex generative model %s initialised", c.cfg.Model)
	})
	return c.initErr
}

// DraftBody asks the model for the body text of a document. Any
// failure, connection, quota or empty response, comes back as an
// upstream error with a flat user-facing message.
func (c *Client) DraftBody(ctx context.Context, docType types.DocumentType, lang types.Language, topic string) (string, error) {
	if err := c.init(ctx); err != nil {
		return "", ierr.WithError(err).
			WithMessage("vertex client initialisation failed").
			WithHint("AI generation failed. Please try again.").
			Mark(ierr.ErrUpstream)
	}

	prompt := SystemPrompt(docType, lang) + "\n\nTopic:\n" + topic

	res, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", ierr.WithError(err).
			WithMessagef("generate content failed for %s", docType).
			WithHint("AI generation failed. Please try again.").
			Mark(ierr.ErrUpstream)
	}

	text := responseText(res)
	if text == "" {
		return "", ierr.NewError("model returned no text").
			WithHint("AI generation failed. Please try again.").
			Mark(ierr.ErrUpstream)
	}
	return text, nil
}

func responseText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return strings.TrimSpace(sb.String())
}

// Close releases the underlying Vertex client if it was initialised.
func (c *Client) Close() error {
	if c.base != nil {
		return c.base.Close()
	}
	return nil
}
