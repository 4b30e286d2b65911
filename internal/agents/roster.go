// Package agents serves the advisory agent roster and its chat replies.
package agents

import (
	"math"

	"campconnect/internal/models"
)

// Agent colours used by the dashboard
const (
	ColorSupplyChain     = "#004E8C"
	ColorVendorAssistant = "#CA5010"
	ColorSustainability  = "#498205"
	ColorCultural        = "#8764B8"
	ColorEconomic        = "#038387"
	ColorOrchestrator    = "#C19C00"
)

// OrchestratorName is the agent that answers when no other agent is selected
const OrchestratorName = "Meta Orchestrator"

func task(s string) *string { return &s }

// Roster returns the built-in agent roster
func Roster() []models.Agent {
	return []models.Agent{
		{
			ID:           "1",
			Name:         "Supply Chain Orchestrator",
			Description:  "Predicts demand, detects shortages, generates procurement recommendations",
			Status:       models.AgentActive,
			Color:        ColorSupplyChain,
			Predictions:  127,
			Accuracy:     89,
			UserApproval: 87,
			CurrentTask:  task("Analyzing weekly consumption patterns"),
		},
		{
			ID:           "2",
			Name:         "Vendor Assistant",
			Description:  "Manages vendor communications, processes orders via SMS/WhatsApp",
			Status:       models.AgentActive,
			Color:        ColorVendorAssistant,
			Predictions:  2340,
			Accuracy:     94,
			UserApproval: 91,
			CurrentTask:  task("Confirming delivery with Mama Grace Dairy"),
		},
		{
			ID:           "3",
			Name:         "Sustainability Agent",
			Description:  "Calculates carbon footprint, recommends eco-friendly options",
			Status:       models.AgentActive,
			Color:        ColorSustainability,
			Predictions:  94,
			Accuracy:     92,
			UserApproval: 94,
			CurrentTask:  task("Calculating emissions for pending orders"),
		},
		{
			ID:           "4",
			Name:         "Cultural Liaison",
			Description:  "Ensures cultural appropriateness of food items and vendors",
			Status:       models.AgentActive,
			Color:        ColorCultural,
			Predictions:  43,
			Accuracy:     97,
			UserApproval: 98,
		},
		{
			ID:           "5",
			Name:         "Economic Empowerment",
			Description:  "Promotes fair distribution of orders among local vendors",
			Status:       models.AgentActive,
			Color:        ColorEconomic,
			Predictions:  67,
			Accuracy:     85,
			UserApproval: 81,
			CurrentTask:  task("Reviewing vendor income distribution"),
		},
		{
			ID:           "6",
			Name:         OrchestratorName,
			Description:  "Coordinates all agents, resolves conflicts, produces final recommendations",
			Status:       models.AgentActive,
			Color:        ColorOrchestrator,
			Predictions:  156,
			Accuracy:     91,
			UserApproval: 89,
			CurrentTask:  task("Synthesizing multi-agent recommendation"),
		},
	}
}

// RosterSummary is the headline block of the agents page
type RosterSummary struct {
	Active           int `json:"active"`
	TotalPredictions int `json:"totalPredictions"`
	AverageAccuracy  int `json:"averageAccuracy"`
}

// Summarize counts active agents and totals predictions. The average
// accuracy is rounded to a whole percent and is 0 for an empty roster.
func Summarize(roster []models.Agent) RosterSummary {
	var s RosterSummary
	if len(roster) == 0 {
		return s
	}

	var accuracy float64
	for _, a := range roster {
		if a.Status == models.AgentActive {
			s.Active++
		}
		s.TotalPredictions += a.Predictions
		accuracy += a.Accuracy
	}
	s.AverageAccuracy = int(math.Round(accuracy / float64(len(roster))))
	return s
}
