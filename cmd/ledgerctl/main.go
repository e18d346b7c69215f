// Package main provides the ledgerctl CLI: list, export and summarize
// sheets against the same sqlite file the server uses.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"transledger/config"
	"transledger/database"
	"transledger/entities"
	"transledger/pkg/calc"
	exportSvcImp "transledger/pkg/export/serviceImp"
	sheetRepoImp "transledger/pkg/sheet/repositoryImp"
	"transledger/pkg/sheet/service"
	sheetSvcImp "transledger/pkg/sheet/serviceImp"
)

var (
	recentOnly bool
	outDir     string
	format     string
)

func open() (service.SheetService, config.AppConfig) {
	cfg := config.Load()
	log := config.GetLogger("error")
	db := database.OpenSQLite(cfg.DBPath, log)
	return sheetSvcImp.NewSheetService(sheetRepoImp.New(db), cfg.Settings, log), cfg
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Manage transport ledger sheets from the command line",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sheets (metadata only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, _ := open()
			return runList(sheets)
		},
	}
	listCmd.Flags().BoolVar(&recentOnly, "recent", false, "Only recently opened sheets, most recent first")

	exportCmd := &cobra.Command{
		Use:   "export <sheet-id>",
		Short: "Export a sheet to CSV or XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, cfg := open()
			return runExport(sheets, cfg, args[0])
		},
	}
	exportCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: EXPORT_DIR)")
	exportCmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or xlsx")

	summarizeCmd := &cobra.Command{
		Use:   "summarize <sheet-id>",
		Short: "Backfill amounts, compute the total and finalize the sheet name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, _ := open()
			return runSummarize(sheets, args[0])
		},
	}

	rootCmd.AddCommand(listCmd, exportCmd, summarizeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runList(sheets service.SheetService) error {
	var (
		metas []entities.SheetMeta
		err   error
	)
	if recentOnly {
		metas, err = sheets.ListRecent()
	} else {
		metas, err = sheets.ListAll()
	}
	if err != nil {
		return err
	}
	for _, m := range metas {
		fmt.Printf("%s\t%s\t%s\t%d rows\t%s\n",
			m.ID, m.Name, m.StartDate, m.RowCount, m.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runExport(sheets service.SheetService, cfg config.AppConfig, id string) error {
	sh, err := sheets.Open(id)
	if err != nil {
		return err
	}
	exp := exportSvcImp.NewExportService()

	var body []byte
	switch format {
	case "csv":
		body, err = exp.CSV(sh)
	case "xlsx":
		body, err = exp.XLSX(sh)
	default:
		return fmt.Errorf("invalid format: %s (must be csv or xlsx)", format)
	}
	if err != nil {
		return err
	}

	dir := outDir
	if dir == "" {
		dir = cfg.ExportDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(dir, exp.FileName(sh, format))
	if err := writeFileAtomic(out, body); err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runSummarize(sheets service.SheetService, id string) error {
	sh, err := sheets.Open(id)
	if err != nil {
		return err
	}
	total, err := sheets.Summarize(sh)
	if err != nil {
		return err
	}
	fmt.Printf("%s\ttotal %s\n", sh.Name, calc.Format2(total))
	return nil
}

// writeFileAtomic writes to a temp file in the target directory then
// renames, so an interrupted export never leaves a torn file behind.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
