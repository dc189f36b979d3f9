package dtos

type JobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional fields
	Location string `json:"location"`
	Salary   *int   `json:"salary"`
	Type     string `json:"type" binding:"omitempty,oneof=Full-time Part-time Remote Internship"`
}

// JobFilter holds the optional query parameters of the job list endpoint.
type JobFilter struct {
	Title    string `form:"title"`
	Location string `form:"location"`
	Type     string `form:"type"`
}
