package models

import "time"

// Coach — запись тренера. Первый вид спорта из заявки хранится в Sport,
// полный список — в Specializations. Страна при регистрации не
// запрашивается и по умолчанию "USA".
type Coach struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Sport           string    `json:"sport"`
	CoachingLevel   string    `json:"coaching_level"`
	CurrentOrg      string    `json:"current_organization"`
	Specializations []string  `json:"specializations"`
	Country         string    `json:"country"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
