package dtos

// Mentee roster entry derived by grouping a mentor's sessions by student
type MenteeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	AvatarURL   string `json:"avatarUrl"`
	Goal        string `json:"goal"`
	Progress    int    `json:"progress"` // completed/total as a percentage
	LastSession string `json:"lastSession"`
	NextSession string `json:"nextSession,omitempty"`
	Status      string `json:"status"` // Active, Paused or New
	StudentID   string `json:"studentId,omitempty"`
}

type MenteeListResponse struct {
	Mentees []MenteeResponse `json:"mentees"`
	Total   int              `json:"total"`
}

type MenteeMilestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"dueDate"`
}

type MenteeSessionSummary struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Title  string `json:"title"`
	Status string `json:"status"` // completed, upcoming or cancelled
}

// Per-mentee detail view
type MenteeDetailResponse struct {
	MenteeResponse
	Milestones []MenteeMilestone      `json:"milestones"`
	Sessions   []MenteeSessionSummary `json:"sessions"`
	Notes      string                 `json:"notes,omitempty"`
}
