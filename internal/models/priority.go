package models

// Priority is the issue urgency as the REST API spells it
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMed      Priority = "Med"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)
