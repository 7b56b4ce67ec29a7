package habit

import "time"

// Frequency says how often a habit is meant to be performed.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

// Habit is a tracked habit owned by a single account.
type Habit struct {
	ID                string    `bson:"_id" json:"id"`
	UserID            string    `bson:"user_id" json:"user_id"`
	Name              string    `bson:"name" json:"name"`
	Color             string    `bson:"color" json:"color"`
	Category          string    `bson:"category,omitempty" json:"category,omitempty"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	Frequency         Frequency `bson:"frequency" json:"frequency"`
	TargetDaysPerWeek int       `bson:"target_days_per_week" json:"target_days_per_week"`
	ReminderTime      string    `bson:"reminder_time,omitempty" json:"reminder_time,omitempty"`
	ReminderEnabled   bool      `bson:"reminder_enabled" json:"reminder_enabled"`
	IsArchived        bool      `bson:"is_archived" json:"is_archived"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}

// Patch describes a partial habit update. Nil fields are left untouched.
type Patch struct {
	Name              *string
	Color             *string
	Category          *string
	Description       *string
	Frequency         *Frequency
	TargetDaysPerWeek *int
	ReminderTime      *string
	ReminderEnabled   *bool
	IsArchived        *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Color == nil && p.Category == nil &&
		p.Description == nil && p.Frequency == nil && p.TargetDaysPerWeek == nil &&
		p.ReminderTime == nil && p.ReminderEnabled == nil && p.IsArchived == nil
}

// CompletionRecord marks whether a habit was completed on a given date.
// Date is a calendar day in YYYY-MM-DD form, deliberately free of time
// zone information.
type CompletionRecord struct {
	ID        string `bson:"_id" json:"id"`
	UserID    string `bson:"user_id" json:"user_id"`
	HabitID   string `bson:"habit_id" json:"habit_id"`
	Date      string `bson:"date" json:"date"`
	Completed bool   `bson:"completed" json:"completed"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
}
