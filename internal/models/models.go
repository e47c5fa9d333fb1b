// Package models defines the stored entities and the closed enumerations they use.
package models

import (
	"encoding/json"
	"time"

	"plantdiary/internal/timeutil"
)

// Plant is a tracked plant.
type Plant struct {
	ID            string     `json:"_id"`
	Name          string     `json:"name"`
	Type          PlantType  `json:"type"`
	PlantDate     string     `json:"plantDate"` // YYYY-MM-DD
	Status        Status     `json:"status"`
	Description   string     `json:"description,omitempty"`
	ImageURL      string     `json:"imageUrl,omitempty"` // local file reference
	CreateTime    time.Time  `json:"createTime"`
	LocalModified bool       `json:"localModified"`
	SyncStatus    SyncStatus `json:"syncStatus,omitempty"`
}

// Record is a care event on a plant.
type Record struct {
	ID           string             `json:"_id"`
	PlantID      string             `json:"plantId"`
	Type         RecordType         `json:"type"`
	RecordTime   timeutil.Timestamp `json:"recordTime"`
	Notes        string             `json:"notes,omitempty"`
	ImageURL     string             `json:"imageUrl,omitempty"`
	CreateTime   time.Time          `json:"createTime"`
	LocalCreated bool               `json:"localCreated"`
}

// Reminder schedules recurring care for a plant.
type Reminder struct {
	ID             string              `json:"_id"`
	PlantID        string              `json:"plantId"`
	Type           ReminderType        `json:"type"`
	Frequency      int                 `json:"frequency"` // days
	NextRemindTime *timeutil.Timestamp `json:"nextRemindTime"`
	IsEnabled      bool                `json:"isEnabled"`
	CreateTime     time.Time           `json:"createTime"`
}

// SyncState is the singleton sync bookkeeping record.
type SyncState struct {
	LastSyncTime *timeutil.Timestamp `json:"lastSyncTime"`
	PendingCount int                 `json:"pendingCount"`
	IsSyncing    bool                `json:"isSyncing"`
}

// UserInfo is the singleton profile record.
type UserInfo struct {
	OpenID       string              `json:"openid"`
	Nickname     string              `json:"nickname"`
	AvatarURL    string              `json:"avatarUrl"`
	LastSyncTime *timeutil.Timestamp `json:"lastSyncTime"`
}

// OfflineOperation is a queued change awaiting sync.
type OfflineOperation struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Op        string          `json:"op"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entityId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}
