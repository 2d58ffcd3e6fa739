package models

// MentorExchange is one turn of the mentor conversation.
type MentorExchange struct {
	Timestamp      Timestamp `json:"timestamp"`
	UserMessage    string    `json:"userMessage"`
	MentorResponse string    `json:"mentorResponse"`
}

// MentorRecord is the per-token mentor session.
type MentorRecord struct {
	Conversations []MentorExchange `json:"conversations"`
	Plan90Days    string           `json:"plan90Days,omitempty"`
	PlanCreatedAt Timestamp        `json:"planCreatedAt,omitzero"`
}
