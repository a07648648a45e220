package users

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/audit"
	"inkwell/db"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/pagination"
	"inkwell/trash"
	"inkwell/utils"
)

// DefaultRoute returns the service banner.
func DefaultRoute(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondErr(w, utils.KindBanner)
}

// GetAllUsers lists accounts paginated. Admin only.
func GetAllUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	params := pagination.Parse(r)
	results, meta, err := pagination.Find[models.User](ctx, db.UserCollection, bson.M{}, params)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	links := pagination.BuildLinks(r.Host, "/api/v1/user/allUsers", params, nil)
	utils.Respond(w, utils.KindSuccess, utils.M{
		"results":    results,
		"pagination": meta,
		"links":      links,
	})

	audit.RecordAsync(middleware.UserIDFromContext(r.Context()), "Admin viewed all users")
}

// UserDetails fetches one account, password excluded by the model tags.
func UserDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := ps.ByName("userId")

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondErr(w, utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, utils.M{"user": user})

	audit.RecordAsync(middleware.UserIDFromContext(r.Context()), "Viewed user details")
}

// SearchUser matches a case-insensitive substring against first or last name,
// paginated. Admin only.
func SearchUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	search := r.URL.Query().Get("search")
	pattern := primitive.Regex{Pattern: utils.QuoteSearch(search), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"firstName": pattern},
		{"lastName": pattern},
	}}

	params := pagination.Parse(r)
	results, meta, err := pagination.Find[models.User](ctx, db.UserCollection, filter, params)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	links := pagination.BuildLinks(r.Host, "/api/v1/user/searchUser/search", params, map[string][]string{"search": {search}})
	utils.Respond(w, utils.KindSuccess, utils.M{
		"user":       results,
		"pagination": meta,
		"links":      links,
	})

	audit.RecordAsync(middleware.UserIDFromContext(r.Context()), "Admin searched users")
}

type editUserInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// SetFields builds the partial $set document: empty fields keep the stored
// value.
func (in editUserInput) SetFields() bson.M {
	set := bson.M{}
	if in.FirstName != "" {
		set["firstName"] = in.FirstName
	}
	if in.LastName != "" {
		set["lastName"] = in.LastName
	}
	if in.PhoneNumber != "" {
		set["phoneNumber"] = in.PhoneNumber
	}
	return set
}

// EditUser applies a partial update to an account.
func EditUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := ps.ByName("userId")

	var input editUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}

	set := input.SetFields()
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := db.UserCollection.FindOneAndUpdate(ctx, bson.M{"userid": userID}, bson.M{"$set": set}, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondErr(w, utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if err := audit.Record(ctx, middleware.UserIDFromContext(r.Context()), "User details edited"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, utils.M{"user": user})
}

// SoftDeleteUser moves the account into trash. Admin only.
func SoftDeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := ps.ByName("userId")

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondErr(w, utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	record := models.TrashFromUser("t"+utils.GenerateRandomString(10), user)
	if err := trash.Move(ctx, db.UserCollection, bson.M{"userid": userID}, record); err != nil {
		if err == trash.ErrNotFound {
			utils.RespondErr(w, utils.KindNotFound)
			return
		}
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if err := audit.Record(ctx, middleware.UserIDFromContext(r.Context()), "User deleted and moved to trash"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, utils.M{"user": user})
}
