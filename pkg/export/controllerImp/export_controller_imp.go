package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	expService "transledger/pkg/export/service"
	sheetService "transledger/pkg/sheet/service"
)

type ExportCtrl struct {
	sheets sheetService.SheetService
	exp    expService.ExportService
}

func New(sheets sheetService.SheetService, exp expService.ExportService) *ExportCtrl {
	return &ExportCtrl{sheets: sheets, exp: exp}
}

// Export streams the sheet as a csv or xlsx attachment. A pure read over a
// snapshot: totals are whatever the last summarize left behind.
func (h *ExportCtrl) Export(c echo.Context) error {
	sh, err := h.sheets.Open(c.Param("id"))
	if err != nil {
		if errors.Is(err, sheetService.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	snap := h.sheets.Snapshot(sh)

	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}

	var (
		body []byte
		mime string
	)
	switch format {
	case "csv":
		body, err = h.exp.CSV(snap)
		mime = "text/csv; charset=utf-8"
	case "xlsx":
		body, err = h.exp.XLSX(snap)
		mime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "format must be csv or xlsx"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(h.exp.FileName(snap, format))))
	return c.Blob(http.StatusOK, mime, body)
}
