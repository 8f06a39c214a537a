package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User é o registro de usuário mantido na coleção "users" do store externo.
// O id é atribuído pelo store na criação.
type User struct {
	ID        int    `json:"id,omitempty"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
