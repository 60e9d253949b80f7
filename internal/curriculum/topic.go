package curriculum

// Topic is a single problem archetype in the curriculum, the unit the
// adaptive run walks through. Topics are immutable for the lifetime of
// the app version.
type Topic struct {
	ID         string
	Name       string
	Summary    string
	ModuleID   string
	SubtopicID string

	// Position is the topic's fixed index in the flattened curriculum
	// sequence. Assigned by buildCatalog; never set in seed data.
	Position int

	// Keywords steer question generation toward the archetype.
	Keywords []string
}

// Subtopic groups related topics within a module.
type Subtopic struct {
	ID       string
	Name     string
	ModuleID string
}

// Module is a top-level curriculum unit.
type Module struct {
	ID   string
	Name string
}
