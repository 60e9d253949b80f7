package curriculum

import (
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(ct *catalog) error {
	var errs []string

	moduleSet := make(map[string]bool, len(ct.modules))
	for _, m := range ct.modules {
		if moduleSet[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		moduleSet[m.ID] = true
	}

	subtopicSet := make(map[string]bool, len(ct.subtopics))
	for _, st := range ct.subtopics {
		if subtopicSet[st.ID] {
			errs = append(errs, fmt.Sprintf("duplicate subtopic ID: %q", st.ID))
		}
		subtopicSet[st.ID] = true
		if !moduleSet[st.ModuleID] {
			errs = append(errs, fmt.Sprintf("subtopic %q references nonexistent module %q", st.ID, st.ModuleID))
		}
	}

	idSet := make(map[string]bool, len(ct.sequence))
	for i, t := range ct.sequence {
		if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", t.ID))
		}
		idSet[t.ID] = true

		if !subtopicSet[t.SubtopicID] {
			errs = append(errs, fmt.Sprintf("topic %q references nonexistent subtopic %q", t.ID, t.SubtopicID))
		}
		if !moduleSet[t.ModuleID] {
			errs = append(errs, fmt.Sprintf("topic %q references nonexistent module %q", t.ID, t.ModuleID))
		}
		if t.Position != i {
			errs = append(errs, fmt.Sprintf("topic %q: position %d does not match sequence index %d", t.ID, t.Position, i))
		}
		if t.Name == "" {
			errs = append(errs, fmt.Sprintf("topic %q has no name", t.ID))
		}
	}

	if len(ct.sequence) == 0 {
		errs = append(errs, "curriculum has no topics")
	}

	// Every subtopic must contribute at least one topic.
	for _, st := range ct.subtopics {
		if len(ct.bySubtopic[st.ID]) == 0 {
			errs = append(errs, fmt.Sprintf("subtopic %q has no topics", st.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
