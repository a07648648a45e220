package blogs

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"inkwell/db"
	"inkwell/globals"
	"inkwell/utils"
)

// PostQR returns a QR code PNG pointing at the public post page.
func PostQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	postID := ps.ByName("postId")

	err := db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Err()
	if err == mongo.ErrNoDocuments {
		utils.RespondErr(w, utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	png, err := qrcode.Encode(globals.ClientURL+"/blog/"+postID, qrcode.Medium, 256)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
