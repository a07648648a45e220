package trash

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/audit"
	"inkwell/db"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/pagination"
	"inkwell/utils"
)

// TrashedUsers lists archived users. Admin only.
func TrashedUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listTrash(w, r, models.DeletedFromUser, "/api/v1/user/softDelete", "results",
		// hide the blog-side fields of the union record
		bson.M{"image": 0, "title": 0, "body": 0, "creator": 0, "asset_id": 0, "comments": 0, "likes": 0, "count": 0})
}

// TrashedPosts lists archived posts with user identity fields excluded.
// Admin only.
func TrashedPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listTrash(w, r, models.DeletedFromBlog, "/api/v1/blog/softDelete", "results",
		bson.M{"firstName": 0, "lastName": 0, "phoneNumber": 0, "email": 0})
}

func listTrash(w http.ResponseWriter, r *http.Request, origin, route, payloadKey string, projection bson.M) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	params := pagination.Parse(r)
	opts := options.Find().SetProjection(projection)
	records, meta, err := pagination.Find[models.Trash](ctx, db.TrashCollection, bson.M{"deletedFrom": origin}, params, opts)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	links := pagination.BuildLinks(r.Host, route, params, nil)
	utils.Respond(w, utils.KindSuccess, utils.M{
		payloadKey:   records,
		"pagination": meta,
		"links":      links,
	})

	audit.RecordAsync(middleware.UserIDFromContext(r.Context()), "Viewed trash ("+origin+")")
}
