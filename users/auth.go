package users

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"inkwell/audit"
	"inkwell/db"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/rdx"
	"inkwell/utils"
)

var validate = validator.New()

type newUserInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10"`
	IsAdmin     bool   `json:"isAdmin"`
}

// NewUser registers an account. The stored password is a bcrypt hash and is
// never echoed back.
func NewUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input newUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}
	if err := validate.Struct(input); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}

	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Err()
	if err == nil {
		utils.RespondErr(w, utils.KindConflict)
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		log.Printf("users: hash error: %v", err)
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	now := time.Now()
	user := models.User{
		UserID:      "u" + utils.GenerateRandomString(10),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    string(hashed),
		IsAdmin:     input.IsAdmin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if err := audit.Record(ctx, user.UserID, "New user registered"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindCreated, utils.M{"user": user})
}

// Auth checks email/password and issues the 1-day token.
func Auth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
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

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondErr(w, utils.KindForbidden)
		return
	}

	token, err := middleware.SignToken(user.UserID, user.FirstName, user.LastName, user.Email, user.IsAdmin)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if err := rdx.CacheSession(ctx, user.UserID, token); err != nil {
		log.Printf("users: session cache failed: %v", err)
	}

	if err := audit.Record(ctx, user.UserID, "User authenticated"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, utils.M{"Token": token})
}
