package store

import (
	"context"
	"errors"
	"testing"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleQuestion(id string) *question.Definition {
	return &question.Definition{
		ID:         id,
		Format:     curriculum.FormatDirectCalculation,
		ModelID:    "ADDITION",
		LevelLabel: "3.2",
		Text:       "Sam buys a pencil for £0.35 and a ruler for £0.80. How much does Sam spend?",
		Solution: question.Solution{
			Answer:        "1.15",
			AnswerDisplay: "£1.15",
			Distractors: []question.Distractor{
				{Value: "1.05", DisplayText: "£1.05", Strategy: "add-no-carry"},
			},
		},
	}
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, sampleQuestion("q-1"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Status != StatusDraft {
		t.Errorf("status = %s, want draft", saved.Status)
	}

	got, err := s.Get(ctx, "q-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Question.Text != saved.Question.Text {
		t.Errorf("text round-trip mismatch: %q vs %q", got.Question.Text, saved.Question.Text)
	}
	if got.Question.Solution.Answer != "1.15" {
		t.Errorf("answer = %q, want 1.15", got.Question.Solution.Answer)
	}
	if len(got.Question.Solution.Distractors) != 1 {
		t.Errorf("distractors = %d, want 1", len(got.Question.Solution.Distractors))
	}
}

func TestSaveMintsIDWhenMissing(t *testing.T) {
	s := openTestStore(t)

	q := sampleQuestion("")
	saved, err := s.Save(context.Background(), q)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected a minted id")
	}
}

func TestResaveReturnsApprovedToDraft(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Save(ctx, sampleQuestion("q-resave")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SetStatus(ctx, "q-resave", StatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}

	revised := sampleQuestion("q-resave")
	revised.Text = "Sam buys a pencil for £0.40 and a ruler for £0.80. How much does Sam spend?"
	saved, err := s.Save(ctx, revised)
	if err != nil {
		t.Fatalf("resave: %v", err)
	}
	if saved.Status != StatusDraft {
		t.Errorf("resave returned status %s, want draft", saved.Status)
	}

	got, err := s.Get(ctx, "q-resave")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusDraft {
		t.Errorf("stored status = %s, want draft after content change", got.Status)
	}
	if got.Question.Text != revised.Text {
		t.Errorf("stored text = %q, want the revised text", got.Question.Text)
	}
}

func TestSetStatus(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Save(ctx, sampleQuestion("q-2")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SetStatus(ctx, "q-2", StatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}
	got, err := s.Get(ctx, "q-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusApproved {
		t.Errorf("status = %s, want approved", got.Status)
	}
}

func TestSetStatusUnknownID(t *testing.T) {
	s := openTestStore(t)
	err := s.SetStatus(context.Background(), "missing", StatusApproved)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetStatusRejectsUnknownState(t *testing.T) {
	s := openTestStore(t)
	if err := s.SetStatus(context.Background(), "q", Status("published")); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestListFiltersByStatus(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := s.Save(ctx, sampleQuestion(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	if err := s.SetStatus(ctx, "b", StatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}

	approved, err := s.List(ctx, StatusApproved)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != "b" {
		t.Errorf("approved list = %+v, want just b", approved)
	}

	all, err := s.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all list has %d entries, want 3", len(all))
	}
}

func TestGetUnknownID(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
