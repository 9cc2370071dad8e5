package models

type JobApplication struct {
	ID        string `gorm:"primaryKey" json:"id"`
	JobID     string `gorm:"uniqueIndex:idx_job_applicant;not null" json:"jobId"`
	Applicant string `gorm:"uniqueIndex:idx_job_applicant;index;not null" json:"applicant"`
	Status    string `json:"status"` // "pending" | "accepted" | "rejected"
	AppliedAt int64  `json:"appliedAt"` // наносекунды с эпохи
}
