package services

import "golang.org/x/crypto/bcrypt"

// PasswordHasher — внешний коллаборатор для хеширования учётных данных.
// Вынесен в интерфейс, чтобы в тестах можно было имитировать сбой хеширования.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type bcryptHasher struct {
	cost int
}

func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
