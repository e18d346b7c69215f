package main

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"transledger/config"
	"transledger/database"
	"transledger/router"

	exportCtrlImp "transledger/pkg/export/controllerImp"
	exportSvcImp "transledger/pkg/export/serviceImp"
	healthCtrlImp "transledger/pkg/health/controllerImp"
	sheetCtrlImp "transledger/pkg/sheet/controllerImp"
	sheetRepoImp "transledger/pkg/sheet/repositoryImp"
	sheetSvcImp "transledger/pkg/sheet/serviceImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	log := config.GetLogger(cfg.LogLevel)
	log.WithField("db", cfg.DBPath).Info("starting transledger")

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath, log)

	// 3) Repos / services / controllers
	repo := sheetRepoImp.New(db)
	sheets := sheetSvcImp.NewSheetService(repo, cfg.Settings, log)
	exports := exportSvcImp.NewExportService()

	shCtrl := sheetCtrlImp.New(sheets)
	exCtrl := exportCtrlImp.New(sheets, exports)
	heCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	router.New(e, shCtrl, exCtrl.Export, heCtrl)

	log.Fatal(e.Start(":" + cfg.Port))
}
