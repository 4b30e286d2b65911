package agents

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"campconnect/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"
)

var (
	// ErrUnknownAgent is returned for agent ids outside the roster
	ErrUnknownAgent = errors.New("unknown agent")
	// ErrEmptyMessage is returned when a chat message is blank
	ErrEmptyMessage = errors.New("empty message")
)

// Registry maps roster agents to the models that answer for them
type Registry struct {
	roster    []models.Agent
	instances map[string]llms.Model
	memories  map[string]*Memory
	now       func() time.Time
	log       logrus.FieldLogger
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithModel makes model answer for agentID instead of the canned replies
func WithModel(agentID string, model llms.Model) RegistryOption {
	return func(r *Registry) {
		r.instances[agentID] = model
	}
}

// WithClock overrides the reply timestamp source
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry creates a registry over roster. Agents without an explicit
// model get a CannedModel drawing from rng.
func NewRegistry(roster []models.Agent, rng *rand.Rand, log logrus.FieldLogger, opts ...RegistryOption) *Registry {
	r := &Registry{
		roster:    roster,
		instances: make(map[string]llms.Model, len(roster)),
		memories:  make(map[string]*Memory, len(roster)),
		now:       time.Now,
		log:       log.WithField("module", "agents"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for _, a := range roster {
		r.memories[a.ID] = NewMemory(defaultShortTermLimit)
		if _, ok := r.instances[a.ID]; ok {
			continue
		}
		// each model gets its own source so they never contend
		r.instances[a.ID] = NewCannedModel(CannedReplies(a.Name), rand.New(rand.NewSource(rng.Int63())))
	}
	return r
}

// Roster returns the agents in display order
func (r *Registry) Roster() []models.Agent {
	return r.roster
}

// Get looks up an agent by id
func (r *Registry) Get(id string) (models.Agent, error) {
	for _, a := range r.roster {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Agent{}, fmt.Errorf("agent %s: %w", id, ErrUnknownAgent)
}

// Greeting is the first message of a chat with the agent
func (r *Registry) Greeting(id string) (models.AgentReply, error) {
	agent, err := r.Get(id)
	if err != nil {
		return models.AgentReply{}, err
	}
	return r.reply(agent, fmt.Sprintf("Hello! I'm %s. How can I assist you with camp logistics today?", agent.Name)), nil
}

// Chat asks the agent's model to answer message
func (r *Registry) Chat(ctx context.Context, id, message string) (models.AgentReply, error) {
	agent, err := r.Get(id)
	if err != nil {
		return models.AgentReply{}, err
	}
	if strings.TrimSpace(message) == "" {
		return models.AgentReply{}, ErrEmptyMessage
	}

	memory := r.memories[id]
	memory.Add(Event{Timestamp: r.now().UTC(), Type: EventQuestion, Content: message})

	content, err := llms.GenerateFromSinglePrompt(ctx, r.instances[id], message)
	if err != nil {
		r.log.WithFields(logrus.Fields{"agent": agent.Name, "op": "Chat"}).WithError(err).Error("agent failed to reply")
		return models.AgentReply{}, fmt.Errorf("agent %s failed to reply: %w", agent.Name, err)
	}

	memory.Add(Event{Timestamp: r.now().UTC(), Type: EventReply, Content: content})
	return r.reply(agent, content), nil
}

// History returns up to limit of the agent's latest chat events
func (r *Registry) History(id string, limit int) ([]Event, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}
	return r.memories[id].Recent(limit), nil
}

// Recall returns the agent's k significant events closest to query
func (r *Registry) Recall(id, query string, k int) ([]Event, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}
	return r.memories[id].Recall(query, k), nil
}

func (r *Registry) reply(agent models.Agent, content string) models.AgentReply {
	return models.AgentReply{
		AgentID:   agent.ID,
		AgentName: agent.Name,
		Content:   content,
		Timestamp: r.now().UTC().Format(time.RFC3339),
	}
}
