package agents

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/tmc/langchaingo/llms"
)

var cannedReplies = map[string][]string{
	"Supply Chain Orchestrator": {
		"Based on current consumption patterns, I predict you'll need to order rice within 5 days. Should I prepare a procurement draft?",
		"I've analyzed 3 vendors for the beef order. Ahmed's Farm offers the best combination of price, reliability, and proximity.",
		"Alert: Milk inventory is critically low. I recommend an urgent order from Mama Grace Dairy - they have 200L available.",
	},
	"Vendor Assistant": {
		"I've sent an SMS to Ahmed's Farm confirming the delivery for Friday. They responded within 30 minutes.",
		"Mama Grace Dairy has updated their inventory - fresh milk is now available at KES 50/L.",
		"I can help coordinate with vendors. What product are you looking for?",
	},
	"Sustainability Agent": {
		"Choosing local vendor Ahmed's Farm over international suppliers saves 45kg CO₂ per delivery.",
		"This month's net carbon impact: +2,835 kg CO₂ saved (including 12kg AI operational cost).",
		"I recommend prioritizing Fresh Harvest Vegetables - they have the highest sustainability score at 95%.",
	},
	"Cultural Liaison": {
		"78% of the camp population requires halal food. I've flagged all non-halal products in pending orders.",
		"Ahmed's Farm and Mama Grace Dairy are both halal certified - safe for procurement.",
		"I can help ensure all orders meet cultural and dietary requirements. What would you like to check?",
	},
	"Economic Empowerment": {
		"Vendor income distribution is currently at 92% equity score. Ali Cooking Supplies needs more orders for balance.",
		"This month, local vendors have received $4,250 in income from camp procurement.",
		"I recommend spreading the next grain order across Turkana Grains Cooperative to improve equity.",
	},
	OrchestratorName: {
		"I've synthesized recommendations from all 5 agents. The consensus is to order from Ahmed's Farm for meat products.",
		"Coordinating agent inputs... Supply Chain prioritizes speed, Sustainability recommends local, Cultural confirms halal. All agents agree on Ahmed's Farm.",
		"How can I help coordinate the AI agents for you today?",
	},
}

// CannedReplies returns the reply table for an agent name, falling back
// to the orchestrator's table for names without one
func CannedReplies(agentName string) []string {
	if replies, ok := cannedReplies[agentName]; ok {
		return replies
	}
	return cannedReplies[OrchestratorName]
}

var errNoReplies = errors.New("no canned replies")

// CannedModel is an llms.Model that answers from a fixed reply table.
// The prompt is ignored; no inference happens.
type CannedModel struct {
	replies []string

	mu  sync.Mutex
	rng *rand.Rand
}

var _ llms.Model = (*CannedModel)(nil)

// NewCannedModel creates a model over replies. A nil rng gets a fresh
// random source.
func NewCannedModel(replies []string, rng *rand.Rand) *CannedModel {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &CannedModel{replies: replies, rng: rng}
}

// GenerateContent implements llms.Model
func (m *CannedModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(m.replies) == 0 {
		return nil, errNoReplies
	}

	m.mu.Lock()
	reply := m.replies[m.rng.Intn(len(m.replies))]
	m.mu.Unlock()

	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: reply, StopReason: "stop"}},
	}, nil
}

// Call implements llms.Model
func (m *CannedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}
