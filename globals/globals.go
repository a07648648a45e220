package globals

import (
	"os"
)

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const ClaimsKey ContextKey = "claims"

var (
	JwtSecret   []byte
	ResetSecret []byte
	ClientURL   string
)

// Setup reads signing secrets and the client origin after the env file has
// been loaded. Must run before the router starts serving.
func Setup() {
	JwtSecret = []byte(os.Getenv("JWT_KEY"))
	ResetSecret = []byte(os.Getenv("PASSWORD_RESET_KEY"))
	ClientURL = os.Getenv("CLIENT_URL")
	if ClientURL == "" {
		ClientURL = "http://localhost:3000"
	}
}
