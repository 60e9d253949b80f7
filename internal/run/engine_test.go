package run

import (
	"testing"
	"time"
)

const testCurriculumLen = 24

func activeRun(pointer, streak int) Run {
	r := New("test-slot")
	r.TopicPointer = pointer
	r.Streak = streak
	return r
}

func TestAdvanceAlwaysCountsQuestions(t *testing.T) {
	r := activeRun(0, 0)
	outcomes := []Outcome{
		OutcomeCorrect, OutcomeIncorrect, OutcomeCorrect,
		OutcomeIncorrect, OutcomeIncorrect,
	}
	for i, o := range outcomes {
		prev := r.CompletedQuestions
		r = Advance(r, o, testCurriculumLen)
		if r.CompletedQuestions != prev+1 {
			t.Fatalf("after outcome %d: completedQuestions = %d, want %d", i, r.CompletedQuestions, prev+1)
		}
		if r.Streak < 0 {
			t.Fatalf("after outcome %d: streak = %d, want >= 0", i, r.Streak)
		}
	}
}

func TestPromotionAtDefaultThreshold(t *testing.T) {
	r := activeRun(5, DefaultThreshold-1)
	r = Advance(r, OutcomeCorrect, testCurriculumLen)

	if r.TopicPointer != 6 {
		t.Errorf("topicPointer = %d, want 6", r.TopicPointer)
	}
	if r.Streak != 0 {
		t.Errorf("streak = %d, want 0 after promotion", r.Streak)
	}
}

func TestAggressiveModePromotesEarlier(t *testing.T) {
	normal := activeRun(5, AggressiveThreshold-1)
	aggressive := WithAggressiveProgression(activeRun(5, AggressiveThreshold-1), true)

	normal = Advance(normal, OutcomeCorrect, testCurriculumLen)
	aggressive = Advance(aggressive, OutcomeCorrect, testCurriculumLen)

	if normal.TopicPointer != 5 {
		t.Errorf("default mode promoted at streak %d", AggressiveThreshold)
	}
	if aggressive.TopicPointer != 6 {
		t.Errorf("aggressive mode did not promote: pointer = %d, want 6", aggressive.TopicPointer)
	}
	if aggressive.Streak != 0 {
		t.Errorf("aggressive streak = %d, want 0", aggressive.Streak)
	}
}

func TestIncorrectNeverAdvancesPointer(t *testing.T) {
	tests := []struct {
		name        string
		aggressive  bool
		remediation bool
	}{
		{"default", false, false},
		{"aggressive", true, false},
		{"remediation", false, true},
		{"both", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := activeRun(3, 2)
			r.AggressiveProgression = tt.aggressive
			r.RemediationMode = tt.remediation

			r = Advance(r, OutcomeIncorrect, testCurriculumLen)
			if r.TopicPointer != 3 {
				t.Errorf("topicPointer = %d, want 3", r.TopicPointer)
			}
			if r.Streak != 0 {
				t.Errorf("streak = %d, want 0", r.Streak)
			}
		})
	}
}

func TestThreeCorrectFromFresh(t *testing.T) {
	r := New("fresh")
	for i := 0; i < 3; i++ {
		r = Advance(r, OutcomeCorrect, testCurriculumLen)
	}
	if r.TopicPointer != 1 {
		t.Errorf("topicPointer = %d, want 1", r.TopicPointer)
	}
	if r.Streak != 0 {
		t.Errorf("streak = %d, want 0", r.Streak)
	}
	if r.CompletedQuestions != 3 {
		t.Errorf("completedQuestions = %d, want 3", r.CompletedQuestions)
	}
}

func TestTwoCorrectFromFreshAggressive(t *testing.T) {
	r := WithAggressiveProgression(New("fresh"), true)
	for i := 0; i < 2; i++ {
		r = Advance(r, OutcomeCorrect, testCurriculumLen)
	}
	if r.TopicPointer != 1 {
		t.Errorf("topicPointer = %d, want 1", r.TopicPointer)
	}
	if r.Streak != 0 {
		t.Errorf("streak = %d, want 0", r.Streak)
	}
	if r.CompletedQuestions != 2 {
		t.Errorf("completedQuestions = %d, want 2", r.CompletedQuestions)
	}
}

func TestIncorrectAtStreakTwo(t *testing.T) {
	r := activeRun(0, 2)
	r = Advance(r, OutcomeIncorrect, testCurriculumLen)

	if r.Streak != 0 {
		t.Errorf("streak = %d, want 0", r.Streak)
	}
	if r.TopicPointer != 0 {
		t.Errorf("topicPointer = %d, want 0", r.TopicPointer)
	}
	if r.CompletedQuestions != 1 {
		t.Errorf("completedQuestions = %d, want 1", r.CompletedQuestions)
	}
}

func TestPromotionPastLastTopicCompletes(t *testing.T) {
	r := activeRun(testCurriculumLen-1, DefaultThreshold-1)
	r = Advance(r, OutcomeCorrect, testCurriculumLen)

	if r.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", r.Status)
	}
	if r.TopicPointer != testCurriculumLen {
		t.Errorf("topicPointer = %d, want terminal index %d", r.TopicPointer, testCurriculumLen)
	}
}

func TestCompletedRunStillCountsFreePractice(t *testing.T) {
	r := activeRun(testCurriculumLen, 0)
	r.Status = StatusCompleted
	r.CompletedQuestions = 100

	for _, o := range []Outcome{OutcomeCorrect, OutcomeCorrect, OutcomeIncorrect, OutcomeCorrect} {
		r = Advance(r, o, testCurriculumLen)
		if r.TopicPointer != testCurriculumLen {
			t.Fatalf("topicPointer moved on completed run: %d", r.TopicPointer)
		}
		if r.Status != StatusCompleted {
			t.Fatalf("status changed on completed run: %q", r.Status)
		}
	}
	if r.CompletedQuestions != 104 {
		t.Errorf("completedQuestions = %d, want 104", r.CompletedQuestions)
	}
}

func TestTogglesPassThroughAdvance(t *testing.T) {
	r := activeRun(0, 0)
	r = WithAggressiveProgression(r, true)
	r = WithRemediationMode(r, true)

	r = Advance(r, OutcomeCorrect, testCurriculumLen)
	if !r.AggressiveProgression || !r.RemediationMode {
		t.Error("toggles did not pass through Advance unchanged")
	}
}

func TestToggleRefreshesLastUpdatedAt(t *testing.T) {
	r := New("slot")
	before := r.LastUpdatedAt
	time.Sleep(time.Millisecond)

	r = WithRemediationMode(r, true)
	if !r.LastUpdatedAt.After(before) {
		t.Error("LastUpdatedAt not refreshed by toggle setter")
	}
}

func TestThreshold(t *testing.T) {
	r := New("slot")
	if got := Threshold(r); got != DefaultThreshold {
		t.Errorf("default threshold = %d, want %d", got, DefaultThreshold)
	}
	r.AggressiveProgression = true
	if got := Threshold(r); got != AggressiveThreshold {
		t.Errorf("aggressive threshold = %d, want %d", got, AggressiveThreshold)
	}
}
