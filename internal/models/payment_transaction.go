package models

type PaymentTransaction struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	User         string  `gorm:"index;not null" json:"user"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	PaymentModel string  `json:"paymentModel"`
	Timestamp    int64   `json:"timestamp"` // наносекунды с эпохи
	Status       string  `json:"status"` // "pending", "completed", "failed"
}
