package models

import "plantdiary/internal/timeutil"

// PlantPatch holds the plant fields to overwrite. Nil fields are kept.
type PlantPatch struct {
	Name        *string    `json:"name,omitempty"`
	Type        *PlantType `json:"type,omitempty"`
	PlantDate   *string    `json:"plantDate,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	Description *string    `json:"description,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
}

// Apply returns p with the patch merged in.
func (pp PlantPatch) Apply(p Plant) Plant {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Type != nil {
		p.Type = *pp.Type
	}
	if pp.PlantDate != nil {
		p.PlantDate = *pp.PlantDate
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.ImageURL != nil {
		p.ImageURL = *pp.ImageURL
	}
	return p
}

// RecordPatch holds the record fields to overwrite. Nil fields are kept.
type RecordPatch struct {
	Type       *RecordType         `json:"type,omitempty"`
	RecordTime *timeutil.Timestamp `json:"recordTime,omitempty"`
	Notes      *string             `json:"notes,omitempty"`
	ImageURL   *string             `json:"imageUrl,omitempty"`
}

// Apply returns r with the patch merged in.
func (rp RecordPatch) Apply(r Record) Record {
	if rp.Type != nil {
		r.Type = *rp.Type
	}
	if rp.RecordTime != nil {
		r.RecordTime = *rp.RecordTime
	}
	if rp.Notes != nil {
		r.Notes = *rp.Notes
	}
	if rp.ImageURL != nil {
		r.ImageURL = *rp.ImageURL
	}
	return r
}

// ReminderPatch holds the reminder fields to overwrite. Nil fields are kept.
type ReminderPatch struct {
	Type           *ReminderType       `json:"type,omitempty"`
	Frequency      *int                `json:"frequency,omitempty"`
	NextRemindTime *timeutil.Timestamp `json:"nextRemindTime,omitempty"`
	IsEnabled      *bool               `json:"isEnabled,omitempty"`
}

// Apply returns r with the patch merged in.
func (rp ReminderPatch) Apply(r Reminder) Reminder {
	if rp.Type != nil {
		r.Type = *rp.Type
	}
	if rp.Frequency != nil {
		r.Frequency = *rp.Frequency
	}
	if rp.NextRemindTime != nil {
		next := *rp.NextRemindTime
		r.NextRemindTime = &next
	}
	if rp.IsEnabled != nil {
		r.IsEnabled = *rp.IsEnabled
	}
	return r
}
