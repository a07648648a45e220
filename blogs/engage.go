package blogs

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"inkwell/audit"
	"inkwell/db"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/utils"
)

// CommentPost appends a comment sub-record to a post. Comments are unbounded.
func CommentPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	postID := ps.ByName("postId")

	var input struct {
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}
	if strings.TrimSpace(input.Comment) == "" {
		utils.RespondErr(w, utils.KindInputError)
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	comment := models.Comment{
		Comment:    input.Comment,
		Username:   claims.LastName,
		Timestamps: time.Now(),
	}

	res, err := db.PostsCollection.UpdateOne(ctx, bson.M{"postid": postID},
		bson.M{"$push": bson.M{"comments": comment}, "$set": bson.M{"updatedAt": time.Now()}})
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondErr(w, utils.KindNotFound)
		return
	}

	if err := audit.Record(ctx, claims.UserID, "User comment on a post"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, nil)
}

// LikePost adds the requester to the like set. The conditional filter makes
// the duplicate check and the write one atomic operation, so two concurrent
// likes cannot both land: a matched-but-unmodified update means the user
// already liked the post.
func LikePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	postID := ps.ByName("postId")
	userID := middleware.UserIDFromContext(r.Context())

	res, err := db.PostsCollection.UpdateOne(ctx,
		bson.M{"postid": postID, "likes": bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{"likes": userID}})
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}
	if res.MatchedCount == 0 {
		// Either the post is gone or the user already liked it.
		err := db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Err()
		if err == mongo.ErrNoDocuments {
			utils.RespondErr(w, utils.KindNotFound)
			return
		}
		if err != nil {
			utils.RespondErr(w, utils.KindServerError)
			return
		}
		utils.RespondErr(w, utils.KindConflict)
		return
	}

	if err := audit.Record(ctx, userID, "User liked a post"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, nil)
}
