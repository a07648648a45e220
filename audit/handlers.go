package audit

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"

	"inkwell/db"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/pagination"
	"inkwell/utils"
)

// AllLogs returns the paginated audit trail. Admin only.
func AllLogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	params := pagination.Parse(r)
	logs, meta, err := pagination.Find[models.Log](ctx, db.LogsCollection, bson.M{}, params)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	links := pagination.BuildLinks(r.Host, "/api/v1/log/allLogs", params, nil)
	utils.Respond(w, utils.KindSuccess, utils.M{
		"log":        logs,
		"pagination": meta,
		"links":      links,
	})

	RecordAsync(middleware.UserIDFromContext(r.Context()), "Admin view all logs")
}

// UserLogs returns the paginated trail for a single user.
func UserLogs(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := ps.ByName("userId")
	params := pagination.Parse(r)
	logs, meta, err := pagination.Find[models.Log](ctx, db.LogsCollection, bson.M{"user": userID}, params)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	links := pagination.BuildLinks(r.Host, "/api/v1/log/userLog/"+userID, params, nil)
	utils.Respond(w, utils.KindSuccess, utils.M{
		"userLogs":   logs,
		"pagination": meta,
		"links":      links,
	})

	RecordAsync(middleware.UserIDFromContext(r.Context()), "Viewed user logs")
}
