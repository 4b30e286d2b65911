package agents

import (
	"context"
	"fmt"
	"os"

	"campconnect/internal/config"
	"campconnect/internal/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// PersonaModel puts an agent's persona in front of every conversation
// sent to a shared model
type PersonaModel struct {
	agent models.Agent
	model llms.Model
}

var _ llms.Model = (*PersonaModel)(nil)

// NewPersonaModel wraps model so it answers as agent
func NewPersonaModel(agent models.Agent, model llms.Model) *PersonaModel {
	return &PersonaModel{agent: agent, model: model}
}

// SystemPrompt describes the agent to the model
func (p *PersonaModel) SystemPrompt() string {
	return fmt.Sprintf("You are %s, an advisory agent for a refugee camp kitchen supply team. %s. "+
		"Answer in two or three sentences about camp logistics.", p.agent.Name, p.agent.Description)
}

// GenerateContent implements llms.Model
func (p *PersonaModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	withPersona := make([]llms.MessageContent, 0, len(messages)+1)
	withPersona = append(withPersona, llms.TextParts(schema.ChatMessageTypeSystem, p.SystemPrompt()))
	withPersona = append(withPersona, messages...)
	return p.model.GenerateContent(ctx, withPersona, options...)
}

// Call implements llms.Model
func (p *PersonaModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, p, prompt, options...)
}

// WithSharedModel makes model answer for every agent not given its own,
// each behind its persona
func WithSharedModel(model llms.Model) RegistryOption {
	return func(r *Registry) {
		for _, a := range r.roster {
			if _, ok := r.instances[a.ID]; !ok {
				r.instances[a.ID] = NewPersonaModel(a, model)
			}
		}
	}
}

// NewModel builds the chat model selected by cfg. The canned provider
// returns nil so the registry falls back to per-agent canned replies.
func NewModel(cfg config.AgentsConfig) (llms.Model, error) {
	switch cfg.Provider {
	case "", config.ProviderCanned:
		return nil, nil
	case config.ProviderOpenAI:
		opts := []openai.Option{openai.WithModel(cfg.Model)}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		if cfg.TokenEnv != "" {
			token := os.Getenv(cfg.TokenEnv)
			if token == "" {
				return nil, fmt.Errorf("agent provider %s: %s is not set", cfg.Provider, cfg.TokenEnv)
			}
			opts = append(opts, openai.WithToken(token))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize %s model %s: %w", cfg.Provider, cfg.Model, err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("unsupported agent provider: %s", cfg.Provider)
	}
}
