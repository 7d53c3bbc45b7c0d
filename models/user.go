package models

const RoleAdmin = "admin"

type User struct {
	ID           int
	Email        string
	PasswordHash string
	Role         string
}
