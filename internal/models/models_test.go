package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestEnumsAreExhaustive(t *testing.T) {
	for _, pt := range AllPlantTypes() {
		if label, ok := pt.Label(); !ok || label == "" {
			t.Errorf("PlantType %q has no label", pt)
		}
	}
	for _, s := range AllStatuses() {
		if d, ok := s.Display(); !ok || d.Label == "" || d.Color == "" {
			t.Errorf("Status %q has no display", s)
		}
	}
	for _, rt := range AllRecordTypes() {
		if d, ok := rt.Display(); !ok || d.Label == "" || d.Icon == "" {
			t.Errorf("RecordType %q has no display", rt)
		}
	}
	for _, rt := range AllReminderTypes() {
		if title, ok := rt.Title(); !ok || title == "" {
			t.Errorf("ReminderType %q has no title", rt)
		}
	}

	if Status("wilting").Valid() {
		t.Error("unknown status reported valid")
	}
	if RecordType("pruning").Valid() {
		t.Error("unknown record type reported valid")
	}
	if PlantType("").Valid() {
		t.Error("empty plant type reported valid")
	}
}

func TestPlant_Validate(t *testing.T) {
	valid := Plant{Name: "Fern", Type: PlantTypeHerb, Status: StatusHealthy}

	tests := []struct {
		name      string
		mutate    func(*Plant)
		wantField string
	}{
		{name: "valid", mutate: func(*Plant) {}},
		{name: "blank name", mutate: func(p *Plant) { p.Name = "   " }, wantField: "name"},
		{name: "empty type", mutate: func(p *Plant) { p.Type = "" }, wantField: "type"},
		{name: "unknown type", mutate: func(p *Plant) { p.Type = "cactus" }, wantField: "type"},
		{name: "unknown status", mutate: func(p *Plant) { p.Status = "sad" }, wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", verr.Field, tt.wantField)
			}
		})
	}
}

func TestRecordAndReminder_Validate(t *testing.T) {
	if err := (Record{PlantID: "p", Type: RecordWatering, RecordTime: 1}).Validate(); err != nil {
		t.Errorf("valid record error = %v", err)
	}
	if err := (Record{PlantID: "p", Type: "pruning", RecordTime: 1}).Validate(); err == nil {
		t.Error("record with unknown type should fail")
	}
	if err := (Record{Type: RecordWatering, RecordTime: 1}).Validate(); err == nil {
		t.Error("record without plant should fail")
	}
	if err := (Reminder{PlantID: "p", Type: ReminderWatering, Frequency: 3}).Validate(); err != nil {
		t.Errorf("valid reminder error = %v", err)
	}
	if err := (Reminder{PlantID: "p", Type: ReminderWatering}).Validate(); err == nil {
		t.Error("reminder without frequency should fail")
	}
}

func TestPlantPatch_Apply(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := Plant{ID: "1", Name: "Fern", Type: PlantTypeHerb, Status: StatusHealthy, Description: "corner", CreateTime: created}

	name := "Boston fern"
	status := StatusNeedCare
	got := PlantPatch{Name: &name, Status: &status}.Apply(p)

	if got.Name != name || got.Status != status {
		t.Errorf("patched fields not applied: %+v", got)
	}
	if got.ID != "1" || got.Type != PlantTypeHerb || got.Description != "corner" || !got.CreateTime.Equal(created) {
		t.Errorf("unpatched fields changed: %+v", got)
	}
}

func TestRecord_DecodesLegacyStrings(t *testing.T) {
	raw := `{"_id":"r1","plantId":"p1","type":"watering","recordTime":"2024-03-05T08:30:00","createTime":"2024-03-05T08:31:00Z","localCreated":true}`

	var r Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := time.Date(2024, 3, 5, 8, 30, 0, 0, time.Local).UnixMilli()
	if int64(r.RecordTime) != want {
		t.Errorf("RecordTime = %d, want %d", r.RecordTime, want)
	}
}
