package audit

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/db"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/utils"
)

const exportLimit = 500

// ExportLogs streams the most recent audit entries as a PDF attachment.
// Admin only.
func ExportLogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(exportLimit)
	logs, err := utils.FindAndDecode[models.Log](ctx, db.LogsCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	buf, err := RenderLogsPDF(logs)
	if err != nil {
		utils.RespondErr(w, utils.KindServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=audit-log.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf)

	RecordAsync(middleware.UserIDFromContext(r.Context()), "Admin exported audit logs")
}

// RenderLogsPDF lays the entries out on A4 pages, newest first.
func RenderLogsPDF(logs []models.Log) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Audit Trail")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	for _, entry := range logs {
		line := fmt.Sprintf("%s  %s  %s",
			entry.Timestamp.Format(time.RFC3339), entry.User, entry.Description)
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
