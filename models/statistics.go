package models

// LearnerStatistics aggregates per-organization learner counters returned by
// the learner-statistics router action.
type LearnerStatistics struct {
	TotalLearners      int `json:"total_learners"`
	ActiveLearners     int `json:"active_learners"`
	CertificatesIssued int `json:"certificates_issued"`
	CoursesInProgress  int `json:"courses_in_progress"`
	CompletedThisMonth int `json:"completed_this_month"`
}
