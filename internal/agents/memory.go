package agents

import (
	"hash/fnv"
	"math"
	"sort"
	"strings"
	"sync"
	"time"
)

// Event types recorded in an agent's memory
const (
	EventQuestion = "question"
	EventReply    = "reply"
)

const (
	defaultShortTermLimit = 50
	embeddingDims         = 256
)

// significantKeywords promote an event into long-term memory
var significantKeywords = []string{
	"shortage", "critical", "urgent", "emergency", "delay",
	"low stock", "out of stock", "failure", "alert",
}

// Event is a single exchange line in an agent's memory
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
}

// Memory keeps an agent's recent conversation plus the significant events
// worth recalling later
type Memory struct {
	mu        sync.Mutex
	shortTerm []Event
	limit     int
	longTerm  *vectorStore
}

// NewMemory creates a memory that keeps the last limit events short-term
func NewMemory(limit int) *Memory {
	if limit <= 0 {
		limit = defaultShortTermLimit
	}
	return &Memory{
		shortTerm: make([]Event, 0, limit),
		limit:     limit,
		longTerm:  newVectorStore(),
	}
}

// Add records an event, dropping the oldest short-term event when full
func (m *Memory) Add(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.shortTerm) == m.limit {
		copy(m.shortTerm, m.shortTerm[1:])
		m.shortTerm = m.shortTerm[:m.limit-1]
	}
	m.shortTerm = append(m.shortTerm, event)

	if isSignificant(event) {
		m.longTerm.add(event)
	}
}

// Recent returns up to n of the latest events, oldest first. n <= 0
// returns everything held short-term.
func (m *Memory) Recent(n int) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := 0
	if n > 0 && n < len(m.shortTerm) {
		start = len(m.shortTerm) - n
	}
	return append([]Event(nil), m.shortTerm[start:]...)
}

// Recall returns the k significant events most similar to query
func (m *Memory) Recall(query string, k int) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.longTerm.query(query, k)
}

type vectorStore struct {
	events     []Event
	embeddings [][]float32
}

func newVectorStore() *vectorStore {
	return &vectorStore{}
}

func (vs *vectorStore) add(event Event) {
	vs.events = append(vs.events, event)
	vs.embeddings = append(vs.embeddings, embed(event.Content))
}

func (vs *vectorStore) query(query string, k int) []Event {
	if k <= 0 || len(vs.events) == 0 {
		return nil
	}
	q := embed(query)

	type similarity struct {
		index int
		score float32
	}
	similarities := make([]similarity, len(vs.events))
	for i, e := range vs.embeddings {
		similarities[i] = similarity{i, cosineSimilarity(q, e)}
	}
	// newest first among equal scores
	sort.SliceStable(similarities, func(i, j int) bool {
		if similarities[i].score != similarities[j].score {
			return similarities[i].score > similarities[j].score
		}
		return similarities[i].index > similarities[j].index
	})

	n := min(k, len(similarities))
	results := make([]Event, 0, n)
	for _, s := range similarities[:n] {
		if s.score <= 0 {
			break
		}
		results = append(results, vs.events[s.index])
	}
	return results
}

func isSignificant(event Event) bool {
	content := strings.ToLower(event.Content)
	for _, keyword := range significantKeywords {
		if strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}

// embed hashes each word into a fixed number of buckets
func embed(text string) []float32 {
	v := make([]float32, embeddingDims)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if word == "" {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(word))
		v[h.Sum32()%embeddingDims]++
	}
	normalize(v)
	return v
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / float32(math.Sqrt(float64(normA)*float64(normB)))
}

func normalize(v []float32) {
	var norm float32
	for _, x := range v {
		norm += x * x
	}
	norm = float32(math.Sqrt(float64(norm)))
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] /= norm
	}
}
