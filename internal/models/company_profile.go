package models

type CompanyProfile struct {
	Owner       string `gorm:"primaryKey" json:"owner"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Industry    string `json:"industry"`
}
