package admin

import (
	"fmt"
	"net/http"
	"time"

	"bigode_server/handling"

	"github.com/MonkyMars/gecho"
)

func (arm *AdminRoutesManager) HandleReport(w http.ResponseWriter, r *http.Request) {
	filter, err := handling.ParseReportFilter(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid report filter"), gecho.Send())
		return
	}

	rows, summary, err := arm.reportService.Report(r.Context(), filter)
	if err != nil {
		handling.HandleError(err, "Failed to build report", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"rows":    rows,
			"summary": summary,
		}),
		gecho.Send(),
	)
}

// HandleExportReport streams the filtered sales rows as a spreadsheet
// download.
func (arm *AdminRoutesManager) HandleExportReport(w http.ResponseWriter, r *http.Request) {
	filter, err := handling.ParseReportFilter(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid report filter"), gecho.Send())
		return
	}

	rows, err := arm.reportService.SalesRows(r.Context(), filter)
	if err != nil {
		handling.HandleError(err, "Failed to build report rows", arm.logger, w)
		return
	}

	payload, err := arm.reportService.ExportXLSX(rows)
	if err != nil {
		handling.HandleError(err, "Failed to render spreadsheet", arm.logger, w)
		return
	}

	filename := fmt.Sprintf("vendas-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(payload)))

	if _, err := w.Write(payload); err != nil {
		arm.logger.Warn("Failed to stream spreadsheet", gecho.Field("error", err))
	}
}
