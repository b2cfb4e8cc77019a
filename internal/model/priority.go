package model

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned to new cards.
const DefaultPriority = PriorityMedium

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// OrDefault returns p when valid, otherwise DefaultPriority.
func (p Priority) OrDefault() Priority {
	if p.Valid() {
		return p
	}
	return DefaultPriority
}
