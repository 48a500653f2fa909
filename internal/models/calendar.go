package models

// EventType classifies calendar events.
type EventType string

const (
	EventExam     EventType = "exam"
	EventHoliday  EventType = "holiday"
	EventDeadline EventType = "deadline"
	EventMeeting  EventType = "meeting"
	EventOther    EventType = "other"
)

// CalendarEvent is a single-day institutional event. Date is YYYY-MM-DD.
type CalendarEvent struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Date        string    `db:"date" json:"date"`
	Type        EventType `db:"type" json:"type"`
	Description string    `db:"description" json:"description,omitempty"`
}
