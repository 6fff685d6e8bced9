package pages

import "testing"

func TestDialogGuardConsumesOneArmPerDialog(t *testing.T) {
	g := &DialogGuard{}

	if g.consume() {
		t.Error("consume() = true on an unarmed guard")
	}

	g.ArmAccept()
	if g.Pending() != 1 {
		t.Fatalf("Pending() = %d after arming, want 1", g.Pending())
	}

	if !g.consume() {
		t.Error("consume() = false on an armed guard")
	}
	if g.Pending() != 0 {
		t.Errorf("Pending() = %d after consuming, want 0", g.Pending())
	}

	// The arm is one-shot: a second dialog is not accepted.
	if g.consume() {
		t.Error("consume() = true after the arm was already consumed")
	}
}

func TestDialogGuardDisarmToleratesMissingDialog(t *testing.T) {
	g := &DialogGuard{}

	// A step arms for an optional confirmation, but the app completes
	// the action without asking. Disarming clears the unfired arm so
	// the suite does not fail a valid run.
	g.ArmAccept()
	if cleared := g.Disarm(); cleared != 1 {
		t.Fatalf("Disarm() = %d, want 1 unfired arm cleared", cleared)
	}
	if g.Pending() != 0 {
		t.Errorf("Pending() = %d after disarming, want 0", g.Pending())
	}

	// A dialog arriving after the disarm is no longer expected.
	if g.consume() {
		t.Error("consume() = true after the arm was disarmed")
	}
	if g.Disarm() != 0 {
		t.Error("Disarm() cleared arms on an unarmed guard")
	}
}

func TestDialogGuardCountsUnexpectedDismissals(t *testing.T) {
	g := &DialogGuard{}

	// A dialog with no arm waiting is dismissed and counted.
	if g.consume() {
		t.Fatal("consume() = true on an unarmed guard")
	}
	g.recordDismissed()
	if g.Dismissed() != 1 {
		t.Errorf("Dismissed() = %d, want 1", g.Dismissed())
	}

	// An armed accept is not a dismissal.
	g.ArmAccept()
	if !g.consume() {
		t.Fatal("consume() = false on an armed guard")
	}
	if g.Dismissed() != 1 {
		t.Errorf("Dismissed() = %d after an accepted dialog, want 1", g.Dismissed())
	}
}

func TestDialogGuardArmsStack(t *testing.T) {
	g := &DialogGuard{}

	g.ArmAccept()
	g.ArmAccept()

	if !g.consume() || !g.consume() {
		t.Error("two arms should accept two dialogs")
	}
	if g.consume() {
		t.Error("third dialog should not be accepted")
	}
}
