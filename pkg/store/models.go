package store

import "time"

// Battery statuses, in lifecycle order.
const (
	StatusNew       = "New"
	StatusInUse     = "In Use"
	StatusForRepair = "For Repair"
	StatusRepaired  = "Repaired"
	StatusDead      = "Dead"
)

// ValidStatuses is the fixed status set, in the order forms present it.
var ValidStatuses = []string{
	StatusNew,
	StatusInUse,
	StatusForRepair,
	StatusRepaired,
	StatusDead,
}

// ValidAhRatings are the capacities packs are actually sold in.
var ValidAhRatings = []float64{1.5, 2.0, 3.0, 4.0, 5.0, 6.0, 9.0, 12.0}

// IsValidStatus reports whether s is one of the fixed statuses.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidAhRating reports whether ah is one of the fixed capacity values.
func IsValidAhRating(ah float64) bool {
	for _, v := range ValidAhRatings {
		if v == ah {
			return true
		}
	}
	return false
}

// Battery is one tracked battery pack. Dates (StatusChanged, PurchaseDate)
// are stored as ISO YYYY-MM-DD strings, matching what date inputs submit.
// Notes doubles as an append-only history log of status transitions.
type Battery struct {
	ID            uint    `gorm:"primaryKey"`
	Label         string  `gorm:"not null"`
	Voltage       int     `gorm:"not null"`
	AhRating      float64 `gorm:"column:ah_rating;not null"`
	// No schema-level defaults: gorm would skip zero values (false, "")
	// on insert and let a column default win, so every write sets these
	// explicitly.
	IsOEM         bool   `gorm:"column:is_oem;not null"`
	Status        string `gorm:"not null"`
	StatusChanged string
	PurchaseDate  *string
	Price         *float64
	Notes         *string
	CreatedAt     time.Time
}

// Setting is a single persisted key-value configuration entry. The only key
// currently written is "brand".
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Feedback is an append-only user-submitted message. There is no read path
// in the UI; rows are inspected straight from the database.
type Feedback struct {
	ID        uint   `gorm:"primaryKey"`
	Message   string `gorm:"not null"`
	CreatedAt time.Time
}
