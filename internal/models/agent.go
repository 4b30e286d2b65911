package models

// AgentStatus represents the activity state of an AI agent
type AgentStatus string

const (
	AgentActive   AgentStatus = "active"
	AgentIdle     AgentStatus = "idle"
	AgentLearning AgentStatus = "learning"
)

// Agent represents one of the advisory agents shown on the dashboard
type Agent struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	Description  string      `json:"description" yaml:"description"`
	Status       AgentStatus `json:"status" yaml:"status"`
	Color        string      `json:"color" yaml:"color"`
	Predictions  int         `json:"predictions" yaml:"predictions"`
	Accuracy     float64     `json:"accuracy" yaml:"accuracy"`
	UserApproval float64     `json:"userApproval" yaml:"userApproval"`
	CurrentTask  *string     `json:"currentTask" yaml:"currentTask"`
}

// AgentReply is a chat message produced by an agent
type AgentReply struct {
	AgentID   string `json:"agentId"`
	AgentName string `json:"agentName"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}
