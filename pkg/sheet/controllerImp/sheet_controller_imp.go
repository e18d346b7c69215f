package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"transledger/entities"
	"transledger/pkg/calc"
	"transledger/pkg/sheet/service"
)

type SheetCtrl struct{ svc service.SheetService }

func New(svc service.SheetService) *SheetCtrl { return &SheetCtrl{svc} }

func httpError(c echo.Context, err error) error {
	var pe *service.PersistenceError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrEmptySheet), errors.Is(err, service.ErrInvalidChain):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &pe):
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
}

type createReq struct {
	StartDate string `json:"startDate"`
	Rows      int    `json:"rows"`
}

func (h *SheetCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	sh, err := h.svc.Create(req.StartDate, req.Rows)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, sh)
}

func (h *SheetCtrl) CreateNext(c echo.Context) error {
	prev, err := h.svc.Open(c.Param("id"))
	if err != nil {
		return httpError(c, err)
	}
	sh, err := h.svc.CreateNext(prev)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, sh)
}

func (h *SheetCtrl) Get(c echo.Context) error {
	sh, err := h.svc.Open(c.Param("id"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, sh)
}

type saveReq struct {
	Name      string         `json:"name"`
	StartDate string         `json:"startDate"`
	Rows      []entities.Row `json:"rows"`
}

// Save takes the editor's full current state. Derived cells in the payload
// are ignored and recomputed.
func (h *SheetCtrl) Save(c echo.Context) error {
	sh, err := h.svc.Open(c.Param("id"))
	if err != nil {
		return httpError(c, err)
	}
	var req saveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		sh.Name = req.Name
	}
	if req.StartDate != "" {
		if err := h.svc.SetStartDate(sh, req.StartDate); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}
	if req.Rows != nil {
		sh.Rows = req.Rows
	}
	if err := h.svc.Save(sh); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, sh)
}

func (h *SheetCtrl) AppendRow(c echo.Context) error {
	sh, err := h.svc.Open(c.Param("id"))
	if err != nil {
		return httpError(c, err)
	}
	h.svc.AppendRow(sh)
	if err := h.svc.Save(sh); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, sh)
}

func (h *SheetCtrl) TrimLastRow(c echo.Context) error {
	sh, err := h.svc.Open(c.Param("id"))
	if err != nil {
		return httpError(c, err)
	}
	h.svc.TrimLastRow(sh)
	if err := h.svc.Save(sh); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, sh)
}

func (h *SheetCtrl) SetStartDate(c echo.Context) error {
	sh, err := h.svc.Open(c.Param("id"))
	if err != nil {
		return httpError(c, err)
	}
	var req struct {
		StartDate string `json:"startDate"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.SetStartDate(sh, req.StartDate); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.svc.Save(sh); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, sh)
}

func (h *SheetCtrl) Summarize(c echo.Context) error {
	sh, err := h.svc.Open(c.Param("id"))
	if err != nil {
		return httpError(c, err)
	}
	total, err := h.svc.Summarize(sh)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"sheet": sh, "total": calc.Format2(total)})
}

func (h *SheetCtrl) List(c echo.Context) error {
	var (
		metas []entities.SheetMeta
		err   error
	)
	if c.QueryParam("list") == "recent" {
		metas, err = h.svc.ListRecent()
	} else {
		metas, err = h.svc.ListAll()
	}
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, metas)
}

// Delete is the confirmation boundary: without confirm=true the engine is
// never reached. Past this point deletion is unconditional and irreversible.
func (h *SheetCtrl) Delete(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return c.JSON(http.StatusConflict, map[string]string{"error": "deletion requires confirm=true"})
	}
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
