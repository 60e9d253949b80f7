package curriculum

import (
	"fmt"
	"slices"
)

// catalog holds the curriculum hierarchy with precomputed indices.
type catalog struct {
	modules    []Module
	subtopics  []Subtopic
	sequence   []Topic // flattened, in curriculum order
	byID       map[string]*Topic
	bySubtopic map[string][]Topic
	byModule   map[string][]Topic
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog from seed data, assigning each topic
// its position in the flattened sequence. Seed order is curriculum order.
func buildCatalog(modules []Module, subtopics []Subtopic, topics []Topic) *catalog {
	ct := &catalog{
		modules:    modules,
		subtopics:  subtopics,
		sequence:   make([]Topic, len(topics)),
		byID:       make(map[string]*Topic, len(topics)),
		bySubtopic: make(map[string][]Topic),
		byModule:   make(map[string][]Topic),
	}

	copy(ct.sequence, topics)
	for i := range ct.sequence {
		ct.sequence[i].Position = i
	}

	for i := range ct.sequence {
		t := &ct.sequence[i]
		ct.byID[t.ID] = t
		ct.bySubtopic[t.SubtopicID] = append(ct.bySubtopic[t.SubtopicID], *t)
		ct.byModule[t.ModuleID] = append(ct.byModule[t.ModuleID], *t)
	}

	return ct
}

// Sequence returns the flattened curriculum in order. The result is a copy;
// callers may not mutate catalog state.
func Sequence() []Topic {
	return slices.Clone(c.sequence)
}

// Len returns the number of topics in the flattened sequence.
func Len() int {
	return len(c.sequence)
}

// TopicAt returns the topic at the given sequence position.
func TopicAt(i int) (Topic, bool) {
	if i < 0 || i >= len(c.sequence) {
		return Topic{}, false
	}
	return c.sequence[i], true
}

// GetTopic returns a topic by ID, or an error if not found.
func GetTopic(id string) (Topic, error) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("topic not found: %q", id)
	}
	return *t, nil
}

// Modules returns all modules in display order.
func Modules() []Module {
	return slices.Clone(c.modules)
}

// Subtopics returns all subtopics in display order.
func Subtopics() []Subtopic {
	return slices.Clone(c.subtopics)
}

// BySubtopic returns the topics of a subtopic in sequence order.
func BySubtopic(id string) []Topic {
	return slices.Clone(c.bySubtopic[id])
}

// ByModule returns the topics of a module in sequence order.
func ByModule(id string) []Topic {
	return slices.Clone(c.byModule[id])
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateCatalog(c)
}
