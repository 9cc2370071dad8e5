package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type JobListing struct {
	ID               string         `gorm:"primaryKey" json:"id"`
	Company          string         `gorm:"index;not null" json:"company"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Category         string         `json:"category"`
	JobType          string         `json:"jobType"`
	Location         string         `json:"location"`
	Compensation     string         `json:"compensation"`
	Responsibilities datatypes.JSON `gorm:"type:jsonb" json:"responsibilities"`
	Requirements     datatypes.JSON `gorm:"type:jsonb" json:"requirements"`
	PostedAt         int64          `json:"postedAt"` // наносекунды с эпохи
}

// GetResponsibilities возвращает обязанности как slice строк
func (l *JobListing) GetResponsibilities() []string {
	var items []string
	if len(l.Responsibilities) > 0 {
		_ = json.Unmarshal(l.Responsibilities, &items)
	}
	return items
}

// SetResponsibilities устанавливает обязанности
func (l *JobListing) SetResponsibilities(items []string) {
	data, _ := json.Marshal(items)
	l.Responsibilities = datatypes.JSON(data)
}

// GetRequirements возвращает требования как slice строк
func (l *JobListing) GetRequirements() []string {
	var items []string
	if len(l.Requirements) > 0 {
		_ = json.Unmarshal(l.Requirements, &items)
	}
	return items
}

// SetRequirements устанавливает требования
func (l *JobListing) SetRequirements(items []string) {
	data, _ := json.Marshal(items)
	l.Requirements = datatypes.JSON(data)
}
