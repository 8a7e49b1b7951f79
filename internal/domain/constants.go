package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
	DefaultSlotCapacity        = 10
	DefaultParticipants        = 1
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxSlotCapacity        = 500
	MaxNotesLength         = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// FilterAll значение фильтра, которое ничего не отфильтровывает
const FilterAll = "all"
