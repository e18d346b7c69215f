package serviceImp

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"transledger/config"
	"transledger/entities"
	"transledger/pkg/calc"
	repo "transledger/pkg/sheet/repository"
	"transledger/pkg/sheet/service"
)

type sheetSvc struct {
	r        repo.SheetRepository
	settings config.Settings
	log      *logrus.Logger

	// one exclusive lock per sheet id; held across persisted writes so a
	// save and an export snapshot never interleave on the same sheet
	locks sync.Map
}

func NewSheetService(r repo.SheetRepository, settings config.Settings, log *logrus.Logger) service.SheetService {
	return &sheetSvc{r: r, settings: settings, log: log}
}

func (s *sheetSvc) lock(id string) *sync.Mutex {
	m, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return m.(*sync.Mutex)
}

func newSheetID() string {
	return "tbl_" + uuid.NewString()
}

func (s *sheetSvc) Create(startDate string, rowCount int) (*entities.Sheet, error) {
	start, ok := calc.ParseDate(startDate)
	if !ok {
		start = time.Now().Truncate(24 * time.Hour)
	}
	if rowCount < 1 {
		rowCount = s.settings.InitialRows
	}

	startISO := calc.FormatDate(start)
	sh := &entities.Sheet{
		ID:        newSheetID(),
		Name:      entities.OpenName(startISO),
		StartDate: startISO,
		Rows:      make([]entities.Row, rowCount),
	}
	for i := range sh.Rows {
		sh.Rows[i].Idx = i
		sh.Rows[i].Vehicle = s.settings.DefaultVehicle
		sh.Rows[i].Model = s.settings.DefaultModel
	}
	s.Normalize(sh)

	if err := s.r.Create(sh); err != nil {
		return nil, &service.PersistenceError{Op: "create", Err: err}
	}
	if err := s.r.TouchRecent(sh.ID, s.settings.RecentLimit); err != nil {
		return nil, &service.PersistenceError{Op: "touch recent", Err: err}
	}
	s.log.WithFields(logrus.Fields{"sheet": sh.ID, "rows": rowCount}).Info("sheet created")
	return sh, nil
}

func (s *sheetSvc) CreateNext(prev *entities.Sheet) (*entities.Sheet, error) {
	if prev == nil || len(prev.Rows) == 0 {
		return nil, service.ErrInvalidChain
	}
	s.Normalize(prev)
	last, ok := calc.ParseDate(prev.Rows[len(prev.Rows)-1].LoadDate)
	if !ok {
		return nil, service.ErrInvalidChain
	}
	return s.Create(calc.FormatDate(last.AddDate(0, 0, 1)), len(prev.Rows))
}

func (s *sheetSvc) Open(id string) (*entities.Sheet, error) {
	sh, err := s.r.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.PersistenceError{Op: "open", Err: err}
	}
	s.Normalize(sh)
	if err := s.r.TouchRecent(id, s.settings.RecentLimit); err != nil {
		return nil, &service.PersistenceError{Op: "touch recent", Err: err}
	}
	return sh, nil
}

func (s *sheetSvc) Save(sh *entities.Sheet) error {
	// a sheet never goes empty after creation
	if len(sh.Rows) == 0 {
		return service.ErrEmptySheet
	}
	s.Normalize(sh)
	mu := s.lock(sh.ID)
	mu.Lock()
	defer mu.Unlock()
	if err := s.r.Save(sh); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return &service.PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Summarize backfills every row's amount, totals them, finalizes the name
// when it is still in the open form, and persists the result.
func (s *sheetSvc) Summarize(sh *entities.Sheet) (decimal.Decimal, error) {
	if len(sh.Rows) == 0 {
		return decimal.Zero, service.ErrEmptySheet
	}
	s.Normalize(sh)

	total := decimal.Zero
	for i := range sh.Rows {
		total = total.Add(calc.Amount(sh.Rows[i].Freight, sh.Rows[i].SettleTons))
	}
	total = total.Round(2)

	endDate := sh.Rows[len(sh.Rows)-1].LoadDate
	if entities.ClassifyName(sh.Name, sh.StartDate, endDate) == entities.NameOpen {
		sh.Name = entities.FinalizedName(sh.StartDate, endDate)
	}
	sh.TotalAmount = &total

	mu := s.lock(sh.ID)
	mu.Lock()
	defer mu.Unlock()
	if err := s.r.Save(sh); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, service.ErrNotFound
		}
		return decimal.Zero, &service.PersistenceError{Op: "summarize", Err: err}
	}
	s.log.WithFields(logrus.Fields{"sheet": sh.ID, "total": calc.Format2(total)}).Info("sheet summarized")
	return total, nil
}

func (s *sheetSvc) Delete(id string) error {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()
	if err := s.r.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return &service.PersistenceError{Op: "delete", Err: err}
	}
	s.locks.Delete(id)
	s.log.WithField("sheet", id).Info("sheet deleted")
	return nil
}

func (s *sheetSvc) ListRecent() ([]entities.SheetMeta, error) {
	ids, err := s.r.RecentIDs()
	if err != nil {
		return nil, &service.PersistenceError{Op: "list recent", Err: err}
	}
	metas, err := s.r.ListAll()
	if err != nil {
		return nil, &service.PersistenceError{Op: "list recent", Err: err}
	}
	byID := make(map[string]entities.SheetMeta, len(metas))
	for _, m := range metas {
		byID[m.ID] = m
	}
	out := make([]entities.SheetMeta, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *sheetSvc) ListAll() ([]entities.SheetMeta, error) {
	metas, err := s.r.ListAll()
	if err != nil {
		return nil, &service.PersistenceError{Op: "list all", Err: err}
	}
	return metas, nil
}

func (s *sheetSvc) AppendRow(sh *entities.Sheet) {
	sh.Rows = append(sh.Rows, entities.Row{
		Idx:     len(sh.Rows),
		Vehicle: s.settings.DefaultVehicle,
		Model:   s.settings.DefaultModel,
	})
	s.Normalize(sh)
}

func (s *sheetSvc) TrimLastRow(sh *entities.Sheet) {
	if len(sh.Rows) <= 1 {
		return
	}
	sh.Rows = sh.Rows[:len(sh.Rows)-1]
	s.Normalize(sh)
}

func (s *sheetSvc) SetStartDate(sh *entities.Sheet, startDate string) error {
	start, ok := calc.ParseDate(startDate)
	if !ok {
		return fmt.Errorf("invalid start date %q, want YYYY-MM-DD", startDate)
	}
	sh.StartDate = calc.FormatDate(start)
	s.Normalize(sh)
	return nil
}

// Normalize re-derives load dates and amounts and re-applies row defaults.
// Load dates come only from StartDate + row position, amounts only from
// freight × settled tons, so projections can never go stale.
func (s *sheetSvc) Normalize(sh *entities.Sheet) {
	start, ok := calc.ParseDate(sh.StartDate)
	if !ok {
		start = time.Now().Truncate(24 * time.Hour)
		sh.StartDate = calc.FormatDate(start)
	}
	for i := range sh.Rows {
		r := &sh.Rows[i]
		r.Idx = i
		if r.Vehicle == "" {
			r.Vehicle = s.settings.DefaultVehicle
		}
		if r.Model == "" {
			r.Model = s.settings.DefaultModel
		}
		r.LoadDate = calc.FormatDate(calc.LoadDate(start, i))
		r.Amount = calc.Format2(calc.Amount(r.Freight, r.SettleTons))
	}
}

func (s *sheetSvc) Snapshot(sh *entities.Sheet) *entities.Sheet {
	cp := *sh
	cp.Rows = make([]entities.Row, len(sh.Rows))
	copy(cp.Rows, sh.Rows)
	if sh.TotalAmount != nil {
		t := *sh.TotalAmount
		cp.TotalAmount = &t
	}
	return &cp
}
