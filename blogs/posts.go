package blogs

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/audit"
	"inkwell/db"
	"inkwell/filemgr"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/pagination"
	"inkwell/trash"
	"inkwell/utils"
)

var validate = validator.New()

const maxFormMemory = 10 << 20

// DefaultRoute returns the service banner.
func DefaultRoute(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondErr(w, utils.KindBanner)
}

// GetAllPosts lists posts paginated; open to anonymous readers.
func GetAllPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	params := pagination.Parse(r)
	posts, meta, err := pagination.Find[models.BlogPost](ctx, db.PostsCollection, bson.M{}, params)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	links := pagination.BuildLinks(r.Host, "/api/v1/blog/allPosts", params, nil)
	utils.Respond(w, utils.KindSuccess, utils.M{
		"blogs":      posts,
		"pagination": meta,
		"links":      links,
	})

	audit.RecordAsync(middleware.UserIDFromContext(r.Context()), "Viewed all blogs")
}

type newPostInput struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
}

// NewPost creates a post from a multipart form carrying title, body and an
// image file.
func NewPost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}

	input := newPostInput{
		Title: r.FormValue("title"),
		Body:  r.FormValue("body"),
	}
	if err := validate.Struct(input); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}
	defer file.Close()

	asset, err := filemgr.SaveImage(file, header)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	now := time.Now()
	post := models.BlogPost{
		PostID:    "p" + utils.GenerateRandomString(10),
		Image:     asset.URL,
		Title:     input.Title,
		Body:      input.Body,
		Creator:   userID,
		AssetID:   asset.AssetID,
		Comments:  []models.Comment{},
		Likes:     []string{},
		Count:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := db.PostsCollection.InsertOne(ctx, post); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if err := audit.Record(ctx, userID, "User added new post"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindCreated, utils.M{"post": post})
}

// PostDetails fetches one post and records the requester into the view set.
// The $addToSet keeps view tracking idempotent per user.
func PostDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	postID := ps.ByName("postId")
	userID := middleware.UserIDFromContext(r.Context())

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.BlogPost
	err := db.PostsCollection.FindOneAndUpdate(ctx, bson.M{"postid": postID},
		bson.M{"$addToSet": bson.M{"count": userID}}, opts).Decode(&post)
	if err == mongo.ErrNoDocuments {
		utils.RespondErr(w, utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if err := audit.Record(ctx, userID, "User viewed post details"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, utils.M{"post": post})
}

// EditPost partially updates a post. A new image replaces and destroys the
// old asset; omitted fields keep their stored values. Admin only.
func EditPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	postID := ps.ByName("postId")

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		utils.RespondErr(w, utils.KindInputError)
		return
	}

	var existing models.BlogPost
	err := db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		utils.RespondErr(w, utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if title := r.FormValue("title"); title != "" {
		set["title"] = title
	}
	if body := r.FormValue("body"); body != "" {
		set["body"] = body
	}

	var replacedAsset string
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		asset, err := filemgr.SaveImage(file, header)
		if err != nil {
			utils.RespondErr(w, utils.KindServerError)
			return
		}
		set["image"] = asset.URL
		set["asset_id"] = asset.AssetID
		replacedAsset = existing.AssetID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.BlogPost
	err = db.PostsCollection.FindOneAndUpdate(ctx, bson.M{"postid": postID}, bson.M{"$set": set}, opts).Decode(&post)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	// The old asset goes away only once the post stopped pointing at it.
	if replacedAsset != "" {
		if err := filemgr.Destroy(replacedAsset); err != nil {
			log.Printf("blogs: destroy replaced asset %s: %v", replacedAsset, err)
		}
	}

	if err := audit.Record(ctx, middleware.UserIDFromContext(r.Context()), "Admin edited a post"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, utils.M{"post": post})
}

// SoftDeletePost moves the post into trash.
func SoftDeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	postID := ps.ByName("postId")

	var post models.BlogPost
	err := db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		utils.RespondErr(w, utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	record := models.TrashFromPost("t"+utils.GenerateRandomString(10), post)
	if err := trash.Move(ctx, db.PostsCollection, bson.M{"postid": postID}, record); err != nil {
		if err == trash.ErrNotFound {
			utils.RespondErr(w, utils.KindNotFound)
			return
		}
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	if err := audit.Record(ctx, middleware.UserIDFromContext(r.Context()), "User deleted a post"); err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	utils.Respond(w, utils.KindSuccess, utils.M{"post": post})
}
