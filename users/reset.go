package users

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"inkwell/audit"
	"inkwell/db"
	"inkwell/globals"
	"inkwell/mailer"
	"inkwell/models"
	"inkwell/rdx"
	"inkwell/utils"
)

const resetTokenTTL = 20 * time.Minute

// Mail is the outgoing mailer; wired from main, replaced in tests.
var Mail *mailer.Mailer

type resetClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"userEmail"`
	jwt.RegisteredClaims
}

// SignResetToken issues the short-lived reset token with the dedicated reset
// secret, separate from the auth signing key.
func SignResetToken(userID, email string) (string, error) {
	claims := resetClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(resetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.ResetSecret)
}

// VerifyResetToken checks signature and expiry of a redeemed token.
func VerifyResetToken(token string) (*resetClaims, error) {
	claims := &resetClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return globals.ResetSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// ResetPasswordLink emails a 20-minute reset URL and stores the token on the
// account so the redeem step can find it.
func ResetPasswordLink(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}
	if err := validate.Struct(input); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondErr(w, utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	token, err := SignResetToken(user.UserID, user.Email)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	_, err = db.UserCollection.UpdateOne(ctx, bson.M{"userid": user.UserID},
		bson.M{"$set": bson.M{"resetLink": token, "updatedAt": time.Now()}})
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if err := rdx.CacheResetToken(ctx, user.UserID, token, resetTokenTTL); err != nil {
		log.Printf("users: reset token cache failed: %v", err)
	}

	link := globals.ClientURL + "/reset-password/" + token
	if err := Mail.SendResetLink(user.Email, link); err != nil {
		log.Printf("users: reset mail to %s failed: %v", user.Email, err)
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if err := audit.Record(ctx, user.UserID, "Password reset link requested"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, nil)
}

// ResetPassword redeems a reset token: new hash stored, token cleared.
func ResetPassword(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resetLink := ps.ByName("resetLink")

	var input struct {
		Password string `json:"password" validate:"required,min=6"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}
	if err := validate.Struct(input); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"resetLink": resetLink}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondErr(w, utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if _, err := VerifyResetToken(resetLink); err != nil {
		utils.RespondErr(w, utils.KindUnauthorized)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	_, err = db.UserCollection.UpdateOne(ctx, bson.M{"userid": user.UserID},
		bson.M{"$set": bson.M{"password": string(hashed), "resetLink": "", "updatedAt": time.Now()}})
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if err := rdx.DropResetToken(ctx, user.UserID); err != nil {
		log.Printf("users: reset token drop failed: %v", err)
	}

	if err := audit.Record(ctx, user.UserID, "Password reset committed"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, nil)
}
