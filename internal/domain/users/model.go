package users

import "github.com/Spok95/uniformhub/internal/domain/access"

type User struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   access.Role `json:"role"`
	Branch string      `json:"branch"`
}
