package provider

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// Generator issues one generation call against a single provider endpoint.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
}

type geminiGenerator struct {
	name   string
	client *genai.Client
}

// NewGeminiGenerator creates a Gemini-backed Generator for one credential.
// The name carries the credential's position for failover diagnostics, never
// the key itself.
func NewGeminiGenerator(ctx context.Context, cred Credential, ordinal int) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cred.Secret,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiGenerator{
		name:   fmt.Sprintf("gemini-%d", ordinal),
		client: client,
	}, nil
}

func (g *geminiGenerator) Name() string {
	return g.name
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if systemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// NewGenerators builds one Generator per configured credential.
func NewGenerators(ctx context.Context, creds []Credential) ([]Generator, error) {
	generators := make([]Generator, 0, len(creds))
	for i, cred := range creds {
		gen, err := NewGeminiGenerator(ctx, cred, i+1)
		if err != nil {
			return nil, err
		}
		generators = append(generators, gen)
	}
	return generators, nil
}
