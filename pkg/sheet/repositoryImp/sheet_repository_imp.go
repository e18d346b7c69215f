package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"transledger/entities"
	"transledger/pkg/sheet/repository"
)

type sheetRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SheetRepository { return &sheetRepo{db} }

func (r *sheetRepo) Create(s *entities.Sheet) error {
	return r.db.Create(s).Error
}

func (r *sheetRepo) Get(id string) (*entities.Sheet, error) {
	var s entities.Sheet
	err := r.db.Preload("Rows", func(db *gorm.DB) *gorm.DB {
		return db.Order("idx ASC")
	}).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Save replaces the sheet's rows and metadata in one transaction so a crash
// mid-save never leaves the catalog pointing at half-written rows.
func (r *sheetRepo) Save(s *entities.Sheet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		s.UpdatedAt = time.Now()
		res := tx.Model(&entities.Sheet{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
			"name":         s.Name,
			"start_date":   s.StartDate,
			"total_amount": s.TotalAmount,
			"updated_at":   s.UpdatedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("sheet_id = ?", s.ID).Delete(&entities.Row{}).Error; err != nil {
			return err
		}
		for i := range s.Rows {
			s.Rows[i].ID = 0
			s.Rows[i].SheetID = s.ID
			s.Rows[i].Idx = i
		}
		if len(s.Rows) > 0 {
			if err := tx.Create(&s.Rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the sheet, its rows and its recent entry atomically.
// Any failure rolls the whole removal back.
func (r *sheetRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entities.Sheet{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("sheet_id = ?", id).Delete(&entities.Row{}).Error; err != nil {
			return err
		}
		return tx.Where("sheet_id = ?", id).Delete(&entities.RecentEntry{}).Error
	})
}

func (r *sheetRepo) ListAll() ([]entities.SheetMeta, error) {
	var metas []entities.SheetMeta
	err := r.db.Model(&entities.Sheet{}).
		Select("sheets.id, sheets.name, sheets.start_date, sheets.updated_at, count(sheet_rows.id) as row_count").
		Joins("left join sheet_rows on sheet_rows.sheet_id = sheets.id").
		Group("sheets.id").
		Order("sheets.updated_at DESC").
		Scan(&metas).Error
	if err != nil {
		return nil, err
	}
	return metas, nil
}

// TouchRecent promotes id to the front of the recent list and evicts the
// oldest entries past limit, all in one transaction.
func (r *sheetRepo) TouchRecent(id string, limit int) error {
	if limit < 1 {
		limit = 1
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sheet_id = ?", id).Delete(&entities.RecentEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&entities.RecentEntry{SheetID: id, OpenedAt: time.Now()}).Error; err != nil {
			return err
		}
		var stale []entities.RecentEntry
		if err := tx.Order("opened_at DESC, id DESC").Offset(limit).Find(&stale).Error; err != nil {
			return err
		}
		for _, e := range stale {
			if err := tx.Delete(&entities.RecentEntry{}, e.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sheetRepo) RecentIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&entities.RecentEntry{}).
		Order("opened_at DESC, id DESC").
		Pluck("sheet_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
