package task

import "testing"

func TestSubmitAssignsMonotonicIDs(t *testing.T) {
	s := NewStore()
	a := s.Submit()
	b := s.Submit()
	if a.ID != "1" || b.ID != "2" {
		t.Fatalf("got ids %q, %q, want 1, 2", a.ID, b.ID)
	}
	if a.State != StateRunning || b.State != StateRunning {
		t.Fatalf("new tasks should start RUNNING")
	}
}

func TestCompleteTransitionsToDone(t *testing.T) {
	s := NewStore()
	tk := s.Submit()
	s.Complete(tk.ID, "42")

	got, ok := s.Get(tk.ID)
	if !ok {
		t.Fatal("task not found after Complete")
	}
	if got.State != StateDone || got.Stdout != "42" {
		t.Fatalf("got %+v, want State=DONE Stdout=42", got)
	}
}

func TestFailTransitionsToError(t *testing.T) {
	s := NewStore()
	tk := s.Submit()
	s.Fail(tk.ID, "boom")

	got, _ := s.Get(tk.ID)
	if got.State != StateError || got.Error != "boom" {
		t.Fatalf("got %+v, want State=ERROR Error=boom", got)
	}
}

func TestCompleteAfterFailIsANoOp(t *testing.T) {
	s := NewStore()
	tk := s.Submit()
	s.Fail(tk.ID, "timed out")
	s.Complete(tk.ID, "late result")

	got, _ := s.Get(tk.ID)
	if got.State != StateError {
		t.Fatalf("a terminal task must not be overwritten, got state %v", got.State)
	}
}
