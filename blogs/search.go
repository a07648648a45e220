package blogs

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/audit"
	"inkwell/db"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/pagination"
	"inkwell/utils"
)

// SearchPost matches a case-insensitive substring against title or body,
// paginated like the list endpoint.
func SearchPost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	search := r.URL.Query().Get("search")
	pattern := primitive.Regex{Pattern: utils.QuoteSearch(search), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"title": pattern},
		{"body": pattern},
	}}

	params := pagination.Parse(r)
	posts, meta, err := pagination.Find[models.BlogPost](ctx, db.PostsCollection, filter, params)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	links := pagination.BuildLinks(r.Host, "/api/v1/blog/searchPost/search", params, map[string][]string{"search": {search}})
	utils.Respond(w, utils.KindSuccess, utils.M{
		"post":       posts,
		"pagination": meta,
		"links":      links,
	})

	audit.RecordAsync(middleware.UserIDFromContext(r.Context()), "User searched a post")
}
