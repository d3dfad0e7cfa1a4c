package domain

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ValidPriorities is the canonical set of accepted task priority strings.
var ValidPriorities = map[string]bool{
	"high": true, "medium": true, "low": true,
}

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
)

// ValidCategories is the canonical set of accepted task category strings.
var ValidCategories = map[string]bool{
	"work": true, "personal": true, "study": true,
}

// ValidEventTypes is the canonical set of accepted calendar event type strings.
var ValidEventTypes = map[string]bool{
	"meeting": true, "appointment": true, "focus": true,
	"personal": true, "reminder": true,
}
