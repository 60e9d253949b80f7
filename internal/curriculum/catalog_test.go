package curriculum

import "testing"

func TestSeedValidates(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}

func TestSequencePositionsAreContiguous(t *testing.T) {
	seq := Sequence()
	if len(seq) == 0 {
		t.Fatal("empty sequence")
	}
	for i, topic := range seq {
		if topic.Position != i {
			t.Errorf("topic %q: position = %d, want %d", topic.ID, topic.Position, i)
		}
	}
}

func TestTopicAt(t *testing.T) {
	first, ok := TopicAt(0)
	if !ok {
		t.Fatal("expected topic at position 0")
	}
	if first.Position != 0 {
		t.Errorf("position = %d, want 0", first.Position)
	}

	if _, ok := TopicAt(-1); ok {
		t.Error("expected no topic at position -1")
	}
	if _, ok := TopicAt(Len()); ok {
		t.Error("expected no topic at position Len()")
	}
}

func TestGetTopic(t *testing.T) {
	seq := Sequence()
	got, err := GetTopic(seq[0].ID)
	if err != nil {
		t.Fatalf("get topic: %v", err)
	}
	if got.ID != seq[0].ID {
		t.Errorf("ID = %q, want %q", got.ID, seq[0].ID)
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestEverySubtopicBelongsToAModule(t *testing.T) {
	modules := make(map[string]bool)
	for _, m := range Modules() {
		modules[m.ID] = true
	}
	for _, st := range Subtopics() {
		if !modules[st.ModuleID] {
			t.Errorf("subtopic %q references unknown module %q", st.ID, st.ModuleID)
		}
	}
}

func TestBySubtopicOrderMatchesSequence(t *testing.T) {
	for _, st := range Subtopics() {
		topics := BySubtopic(st.ID)
		if len(topics) == 0 {
			t.Errorf("subtopic %q has no topics", st.ID)
			continue
		}
		for i := 1; i < len(topics); i++ {
			if topics[i].Position <= topics[i-1].Position {
				t.Errorf("subtopic %q topics out of sequence order", st.ID)
			}
		}
	}
}

func TestValidateCatalogCatchesDuplicates(t *testing.T) {
	bad := buildCatalog(
		[]Module{{ID: "m", Name: "M"}},
		[]Subtopic{{ID: "s", Name: "S", ModuleID: "m"}},
		[]Topic{
			{ID: "dup", Name: "A", ModuleID: "m", SubtopicID: "s"},
			{ID: "dup", Name: "B", ModuleID: "m", SubtopicID: "s"},
		},
	)
	if err := validateCatalog(bad); err == nil {
		t.Error("expected validation error for duplicate topic IDs")
	}
}
