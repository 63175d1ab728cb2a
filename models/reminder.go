package models

// ReminderFlag selects one of the two monotonic reminder flags on an
// appointment. Values double as the persisted field names.
type ReminderFlag string

const (
	ReminderOneDay    ReminderFlag = "reminder_1day_sent"
	ReminderFiveHours ReminderFlag = "reminder_5hour_sent"
)
