package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"

	"inkwell/globals"
	"inkwell/utils"
)

const TokenTTL = 24 * time.Hour

// JWT claims
type Claims struct {
	UserID    string `json:"userId"`
	FirstName string `json:"userFirstName"`
	LastName  string `json:"userLastName"`
	Email     string `json:"userEmail"`
	IsAdmin   bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// SignToken issues the 1-day auth token embedding the user's identity.
func SignToken(userID, firstName, lastName, email string, isAdmin bool) (string, error) {
	claims := Claims{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
}

// ValidateJWT parses a raw "Bearer <token>" header value.
func ValidateJWT(tokenString string) (*Claims, error) {
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return nil, fmt.Errorf("invalid token format")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(tokenString, "Bearer "), claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}

// Authenticate rejects requests without a valid bearer token and stores the
// claims in the request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := ValidateJWT(r.Header.Get("Authorization"))
		if err != nil {
			utils.RespondErr(w, utils.KindUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.ClaimsKey, claims)
		ctx = context.WithValue(ctx, globals.UserIDKey, claims.UserID)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuth attaches claims when a valid token is present but never
// rejects. List and search stay readable anonymously; their audit entries
// then carry an empty user id.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if claims, err := ValidateJWT(r.Header.Get("Authorization")); err == nil {
			ctx := context.WithValue(r.Context(), globals.ClaimsKey, claims)
			ctx = context.WithValue(ctx, globals.UserIDKey, claims.UserID)
			r = r.WithContext(ctx)
		}
		next(w, r, ps)
	}
}

// RequireAdmin gates a route to admin accounts. Must run inside Authenticate.
func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || !claims.IsAdmin {
			utils.RespondErr(w, utils.KindForbidden)
			return
		}
		next(w, r, ps)
	}
}

func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(globals.ClaimsKey).(*Claims)
	return claims
}

func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(globals.UserIDKey).(string)
	return id
}
