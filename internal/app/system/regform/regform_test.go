package regform_test

import (
	"testing"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/regform"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

func teamEvent(min, max int) *models.Event {
	return &models.Event{GroupSizeMin: min, GroupSizeMax: max}
}

func TestAddSlot_BoundedByGroupSizeMax(t *testing.T) {
	f := regform.New(teamEvent(2, 3))

	// Creator + 2 invitees = 3, the maximum.
	if err := f.AddSlot(); err != nil {
		t.Fatalf("first AddSlot: %v", err)
	}
	if err := f.AddSlot(); err != nil {
		t.Fatalf("second AddSlot: %v", err)
	}

	err := f.AddSlot()
	if err == nil {
		t.Fatal("expected error adding slot past groupSizeMax")
	}
	if len(f.Emails) != 2 {
		t.Errorf("slot list length changed on rejected add: got %d, want 2", len(f.Emails))
	}
}

func TestAddSlot_SoloEvent(t *testing.T) {
	f := regform.New(teamEvent(1, 1))

	if err := f.AddSlot(); err == nil {
		t.Error("expected error: solo event has no invitee slots")
	}
}

func TestMemberCount_IgnoresBlankSlots(t *testing.T) {
	f := regform.New(teamEvent(1, 4))
	f.AddSlot()
	f.AddSlot()
	f.AddSlot()
	f.SetEmail(0, "a@vit.ac.in")
	f.SetEmail(2, "  ")

	if got := f.MemberCount(); got != 2 {
		t.Errorf("MemberCount = %d, want 2 (creator + one non-blank invitee)", got)
	}
	if emails := f.TeamEmails(); len(emails) != 1 || emails[0] != "a@vit.ac.in" {
		t.Errorf("TeamEmails = %v, want [a@vit.ac.in]", emails)
	}
}

func TestValidate_BelowMinimum(t *testing.T) {
	f := regform.New(teamEvent(3, 5))
	f.AddSlot()
	f.SetEmail(0, "b@vit.ac.in")

	// Total members = 2, below groupSizeMin = 3.
	if err := f.Validate(); err == nil {
		t.Error("expected local validation failure below groupSizeMin")
	}
	if f.Status != regform.NotRegistered {
		t.Errorf("status changed on rejected submit: %v", f.Status)
	}
}

func TestValidate_WithinBounds(t *testing.T) {
	f := regform.New(teamEvent(2, 4))
	f.AddSlot()
	f.SetEmail(0, "b@vit.ac.in")

	if err := f.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestRemoveSlot(t *testing.T) {
	f := regform.New(teamEvent(1, 4))
	f.AddSlot()
	f.AddSlot()
	f.SetEmail(0, "first@x.com")
	f.SetEmail(1, "second@x.com")

	f.RemoveSlot(0)

	if len(f.Emails) != 1 || f.Emails[0] != "second@x.com" {
		t.Errorf("Emails after remove = %v, want [second@x.com]", f.Emails)
	}

	// Out-of-range removals are no-ops.
	f.RemoveSlot(5)
	f.RemoveSlot(-1)
	if len(f.Emails) != 1 {
		t.Errorf("out-of-range RemoveSlot changed state: %v", f.Emails)
	}
}

func TestStatusTransitions_ForwardOnly(t *testing.T) {
	f := regform.New(teamEvent(1, 1))

	f.MarkPaid() // not valid from NotRegistered
	if f.Status != regform.NotRegistered {
		t.Errorf("status = %v, want not_registered", f.Status)
	}

	f.MarkPending()
	if f.Status != regform.Pending {
		t.Errorf("status = %v, want pending", f.Status)
	}

	f.MarkPending() // no-op once past NotRegistered
	f.MarkPaid()
	if f.Status != regform.Paid {
		t.Errorf("status = %v, want paid", f.Status)
	}
}
