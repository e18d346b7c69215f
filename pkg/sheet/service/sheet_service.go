package service

import (
	"github.com/shopspring/decimal"

	"transledger/entities"
)

// SheetService is the table engine: sheet lifecycle, row editing helpers
// and summarization. All derived fields a caller sees are freshly computed.
type SheetService interface {
	Create(startDate string, rowCount int) (*entities.Sheet, error)
	CreateNext(prev *entities.Sheet) (*entities.Sheet, error)
	Open(id string) (*entities.Sheet, error)
	Save(s *entities.Sheet) error
	Summarize(s *entities.Sheet) (decimal.Decimal, error)
	Delete(id string) error
	ListRecent() ([]entities.SheetMeta, error)
	ListAll() ([]entities.SheetMeta, error)

	AppendRow(s *entities.Sheet)
	TrimLastRow(s *entities.Sheet)
	SetStartDate(s *entities.Sheet, startDate string) error

	// Normalize re-derives every projection (load dates, amounts, defaults)
	// in place. Idempotent.
	Normalize(s *entities.Sheet)

	// Snapshot returns a deep copy safe to hand to an exporter while the
	// original keeps being edited.
	Snapshot(s *entities.Sheet) *entities.Sheet
}
