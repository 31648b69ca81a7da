package models

import "time"

// Player — нормализованная запись игрока. Создаётся один раз при
// регистрации и этим сервисом больше не изменяется (кроме photo_key).
type Player struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Sex               string    `json:"sex"`
	Sport             string    `json:"sport"`
	Position          string    `json:"position"`
	GPA               float64   `json:"gpa"`
	Country           string    `json:"country"`
	State             *string   `json:"state,omitempty"`
	Region            *string   `json:"region,omitempty"`
	ScholarshipAmount *float64  `json:"scholarship_amount,omitempty"`
	TestScores        *string   `json:"test_scores,omitempty"`
	PhotoKey          *string   `json:"photo_key,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
