package models

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"` // "user" or "admin"
	CreatedAt    string `json:"createdAt"`
}
