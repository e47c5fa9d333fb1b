package models

// PlantType is the closed set of plant categories.
type PlantType string

const (
	PlantTypeFlower    PlantType = "flower"
	PlantTypeVegetable PlantType = "vegetable"
	PlantTypeFruitTree PlantType = "fruit-tree"
	PlantTypeSucculent PlantType = "succulent"
	PlantTypeHerb      PlantType = "herb"
	PlantTypeWoody     PlantType = "woody"
	PlantTypeOther     PlantType = "other"
)

// AllPlantTypes lists every PlantType in display order.
func AllPlantTypes() []PlantType {
	return []PlantType{
		PlantTypeFlower, PlantTypeVegetable, PlantTypeFruitTree, PlantTypeSucculent,
		PlantTypeHerb, PlantTypeWoody, PlantTypeOther,
	}
}

// Label returns the display name. ok is false for values outside the set.
func (t PlantType) Label() (label string, ok bool) {
	switch t {
	case PlantTypeFlower:
		return "Flower", true
	case PlantTypeVegetable:
		return "Vegetable", true
	case PlantTypeFruitTree:
		return "Fruit tree", true
	case PlantTypeSucculent:
		return "Succulent", true
	case PlantTypeHerb:
		return "Herb", true
	case PlantTypeWoody:
		return "Woody", true
	case PlantTypeOther:
		return "Other", true
	}
	return "", false
}

// Valid reports whether t is a member of the set.
func (t PlantType) Valid() bool {
	_, ok := t.Label()
	return ok
}

// Status is the health state of a plant.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusGrowing  Status = "growing"
	StatusNeedCare Status = "need-care"
	StatusDiseased Status = "diseased"
)

// AllStatuses lists every Status in display order.
func AllStatuses() []Status {
	return []Status{StatusHealthy, StatusGrowing, StatusNeedCare, StatusDiseased}
}

// Display holds the presentation attributes of an enum value.
type Display struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Display returns the presentation attributes. ok is false for values outside the set.
func (s Status) Display() (d Display, ok bool) {
	switch s {
	case StatusHealthy:
		return Display{Label: "Healthy", Icon: "🌿", Color: "#4CAF50"}, true
	case StatusGrowing:
		return Display{Label: "Growing", Icon: "🌱", Color: "#8BC34A"}, true
	case StatusNeedCare:
		return Display{Label: "Needs care", Icon: "⚠️", Color: "#FF9800"}, true
	case StatusDiseased:
		return Display{Label: "Diseased", Icon: "🚨", Color: "#F44336"}, true
	}
	return Display{}, false
}

// Valid reports whether s is a member of the set.
func (s Status) Valid() bool {
	_, ok := s.Display()
	return ok
}

// RecordType is the kind of care event.
type RecordType string

const (
	RecordWatering    RecordType = "watering"
	RecordFertilizing RecordType = "fertilizing"
	RecordGrowth      RecordType = "growth"
	RecordPhoto       RecordType = "photo"
)

// AllRecordTypes lists every RecordType in display order.
func AllRecordTypes() []RecordType {
	return []RecordType{RecordWatering, RecordFertilizing, RecordGrowth, RecordPhoto}
}

// Display returns the presentation attributes. ok is false for values outside the set.
func (t RecordType) Display() (d Display, ok bool) {
	switch t {
	case RecordWatering:
		return Display{Label: "Watering", Icon: "💧", Color: "#2196F3"}, true
	case RecordFertilizing:
		return Display{Label: "Fertilizing", Icon: "🌱", Color: "#FF9800"}, true
	case RecordGrowth:
		return Display{Label: "Growth", Icon: "🌿", Color: "#4CAF50"}, true
	case RecordPhoto:
		return Display{Label: "Photo", Icon: "📷", Color: "#E91E63"}, true
	}
	return Display{}, false
}

// Valid reports whether t is a member of the set.
func (t RecordType) Valid() bool {
	_, ok := t.Display()
	return ok
}

// ReminderType is the kind of care a reminder schedules.
type ReminderType string

const (
	ReminderWatering    ReminderType = "watering"
	ReminderFertilizing ReminderType = "fertilizing"
)

// AllReminderTypes lists every ReminderType.
func AllReminderTypes() []ReminderType {
	return []ReminderType{ReminderWatering, ReminderFertilizing}
}

// Title returns the reminder heading. ok is false for values outside the set.
func (t ReminderType) Title() (title string, ok bool) {
	switch t {
	case ReminderWatering:
		return "Watering reminder", true
	case ReminderFertilizing:
		return "Fertilizing reminder", true
	}
	return "", false
}

// Valid reports whether t is a member of the set.
func (t ReminderType) Valid() bool {
	_, ok := t.Title()
	return ok
}

// SyncStatus tracks whether a local change has reached a remote. Sync is not implemented,
// so values stay pending.
type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSynced  SyncStatus = "synced"
)
