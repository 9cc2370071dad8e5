package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type UserProfile struct {
	Principal  string         `gorm:"primaryKey" json:"principal"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Experience string         `json:"experience"`
	Portfolio  datatypes.JSON `gorm:"type:jsonb" json:"portfolio"`
	IsCompany  bool           `json:"isCompany"`
}

// GetSkills возвращает навыки как slice строк
func (p *UserProfile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

// SetSkills устанавливает навыки
func (p *UserProfile) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}

// GetPortfolio возвращает портфолио как slice строк
func (p *UserProfile) GetPortfolio() []string {
	var portfolio []string
	if len(p.Portfolio) > 0 {
		_ = json.Unmarshal(p.Portfolio, &portfolio)
	}
	return portfolio
}

// SetPortfolio устанавливает портфолио
func (p *UserProfile) SetPortfolio(portfolio []string) {
	data, _ := json.Marshal(portfolio)
	p.Portfolio = datatypes.JSON(data)
}
