package repository

import "transledger/entities"

type SheetRepository interface {
	Create(s *entities.Sheet) error
	Get(id string) (*entities.Sheet, error)
	Save(s *entities.Sheet) error
	Delete(id string) error
	ListAll() ([]entities.SheetMeta, error)
	TouchRecent(id string, limit int) error
	RecentIDs() ([]string, error)
}
