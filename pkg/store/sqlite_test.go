package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/charlie0129/battrack/pkg/utils/ptr"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close test store: %v", err)
		}
	})

	return s
}

func TestBatteryCRUD(t *testing.T) {
	s := openTestStore(t)

	b := &Battery{
		Label:         "Drill Pack",
		Voltage:       18,
		AhRating:      5.0,
		IsOEM:         true,
		Status:        StatusNew,
		StatusChanged: "2024-01-15",
		Price:         ptr.To(199.0),
	}
	if err := s.CreateBattery(b); err != nil {
		t.Fatalf("CreateBattery failed: %v", err)
	}
	if b.ID == 0 {
		t.Fatal("battery ID should be set after creation")
	}

	got, err := s.GetBattery(b.ID)
	if err != nil {
		t.Fatalf("GetBattery failed: %v", err)
	}
	if got.Label != "Drill Pack" || got.Voltage != 18 || got.AhRating != 5.0 {
		t.Errorf("unexpected battery: %+v", got)
	}
	if got.Price == nil || *got.Price != 199.0 {
		t.Errorf("price not persisted: %v", got.Price)
	}
	if got.PurchaseDate != nil {
		t.Errorf("purchase date should be null, got %v", *got.PurchaseDate)
	}

	got.Status = StatusInUse
	got.StatusChanged = "2024-02-01"
	got.Price = nil
	if err := s.UpdateBattery(got); err != nil {
		t.Fatalf("UpdateBattery failed: %v", err)
	}

	updated, err := s.GetBattery(b.ID)
	if err != nil {
		t.Fatalf("GetBattery after update failed: %v", err)
	}
	if updated.Status != StatusInUse || updated.StatusChanged != "2024-02-01" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Price != nil {
		t.Errorf("price should have been cleared, got %v", *updated.Price)
	}

	if err := s.DeleteBattery(b.ID); err != nil {
		t.Fatalf("DeleteBattery failed: %v", err)
	}
	if _, err := s.GetBattery(b.ID); !errors.Is(err, ErrBatteryNotFound) {
		t.Errorf("expected ErrBatteryNotFound after delete, got %v", err)
	}
}

func TestGetBatteryNotFound(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.GetBattery(42); !errors.Is(err, ErrBatteryNotFound) {
		t.Errorf("expected ErrBatteryNotFound, got %v", err)
	}
}

func TestDeleteBatteryNotFound(t *testing.T) {
	s := openTestStore(t)

	if err := s.DeleteBattery(42); !errors.Is(err, ErrBatteryNotFound) {
		t.Errorf("expected ErrBatteryNotFound, got %v", err)
	}
}

func TestListBatteriesOrderAndFilter(t *testing.T) {
	s := openTestStore(t)

	seed := []Battery{
		{Label: "Bravo", Voltage: 18, AhRating: 5.0, Status: StatusInUse},
		{Label: "Alpha", Voltage: 12, AhRating: 2.0, Status: StatusNew},
		{Label: "Alpha", Voltage: 18, AhRating: 4.0, Status: StatusDead},
	}
	for i := range seed {
		if err := s.CreateBattery(&seed[i]); err != nil {
			t.Fatalf("seed %d failed: %v", i, err)
		}
	}

	all, err := s.ListBatteries("")
	if err != nil {
		t.Fatalf("ListBatteries failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 batteries, got %d", len(all))
	}
	// Label ascending, most recently created first among equal labels.
	if all[0].Label != "Alpha" || all[0].AhRating != 4.0 {
		t.Errorf("unexpected first battery: %+v", all[0])
	}
	if all[1].Label != "Alpha" || all[1].AhRating != 2.0 {
		t.Errorf("unexpected second battery: %+v", all[1])
	}
	if all[2].Label != "Bravo" {
		t.Errorf("unexpected third battery: %+v", all[2])
	}

	dead, err := s.ListBatteries(StatusDead)
	if err != nil {
		t.Fatalf("ListBatteries(filter) failed: %v", err)
	}
	if len(dead) != 1 || dead[0].Status != StatusDead {
		t.Errorf("unexpected filtered result: %+v", dead)
	}
}

func TestSettingUpsert(t *testing.T) {
	s := openTestStore(t)

	got, err := s.GetSetting("brand", "Makita")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if got != "Makita" {
		t.Errorf("expected default for unset key, got %q", got)
	}

	if err := s.SetSetting("brand", "DeWalt"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := s.SetSetting("brand", "Ryobi"); err != nil {
		t.Fatalf("SetSetting (overwrite) failed: %v", err)
	}

	got, err = s.GetSetting("brand", "Makita")
	if err != nil {
		t.Fatalf("GetSetting after set failed: %v", err)
	}
	if got != "Ryobi" {
		t.Errorf("expected last written value, got %q", got)
	}
}

func TestCreateFeedback(t *testing.T) {
	s := openTestStore(t)

	f := &Feedback{Message: "Great app!"}
	if err := s.CreateFeedback(f); err != nil {
		t.Fatalf("CreateFeedback failed: %v", err)
	}
	if f.ID == 0 {
		t.Error("feedback ID should be set after creation")
	}
	if f.CreatedAt.IsZero() {
		t.Error("feedback CreatedAt should be set")
	}
}

func TestValidators(t *testing.T) {
	for _, ah := range ValidAhRatings {
		if !IsValidAhRating(ah) {
			t.Errorf("%v should be a valid Ah rating", ah)
		}
	}
	for _, ah := range []float64{0, 1.0, 2.5, 7.0, 100} {
		if IsValidAhRating(ah) {
			t.Errorf("%v should not be a valid Ah rating", ah)
		}
	}

	for _, st := range ValidStatuses {
		if !IsValidStatus(st) {
			t.Errorf("%q should be a valid status", st)
		}
	}
	for _, st := range []string{"", "new", "Broken", "in use"} {
		if IsValidStatus(st) {
			t.Errorf("%q should not be a valid status", st)
		}
	}
}
