package dtos

import "time"

// JobProjection is the slice of a Job attached to a candidate's own
// applications: enough to render the list, not the full record.
type JobProjection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
}

// ApplicantProjection is the slice of a User attached to a job's
// applications, shown to the owning company.
type ApplicantProjection struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MyApplication struct {
	ID        string        `json:"id"`
	CV        string        `json:"cv"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	Job       JobProjection `json:"job"`
}

type JobApplication struct {
	ID        string              `json:"id"`
	CV        string              `json:"cv"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	User      ApplicantProjection `json:"user"`
}
