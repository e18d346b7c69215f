package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	sheetCtrl interface {
		Create(echo.Context) error
		CreateNext(echo.Context) error
		Get(echo.Context) error
		Save(echo.Context) error
		AppendRow(echo.Context) error
		TrimLastRow(echo.Context) error
		SetStartDate(echo.Context) error
		Summarize(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
	},
	exportFn func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/sheets", sheetCtrl.Create)
	e.GET("/sheets", sheetCtrl.List)

	g := e.Group("/sheets")
	g.GET("/:id", sheetCtrl.Get)
	g.PUT("/:id", sheetCtrl.Save)
	g.DELETE("/:id", sheetCtrl.Delete)
	g.POST("/:id/next", sheetCtrl.CreateNext)
	g.POST("/:id/rows", sheetCtrl.AppendRow)
	g.DELETE("/:id/rows/last", sheetCtrl.TrimLastRow)
	g.PATCH("/:id/start-date", sheetCtrl.SetStartDate)
	g.POST("/:id/summarize", sheetCtrl.Summarize)
	g.GET("/:id/export", exportFn)

	return e
}
