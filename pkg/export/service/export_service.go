package service

import "transledger/entities"

// ExportService serializes a sheet's live-derived view. Pure reads: the
// sheet is never mutated and no summarization is triggered.
type ExportService interface {
	CSV(s *entities.Sheet) ([]byte, error)
	XLSX(s *entities.Sheet) ([]byte, error)
	FileName(s *entities.Sheet, ext string) string
}
