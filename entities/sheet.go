package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sheet is one transport-ledger table: an ordered run of rows plus naming
// and total metadata. Rows belong to exactly one sheet and die with it.
type Sheet struct {
	ID          string           `gorm:"primaryKey;size:64" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	StartDate   string           `gorm:"size:10;not null" json:"startDate"`
	TotalAmount *decimal.Decimal `gorm:"type:decimal(20,2)" json:"totalAmount"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`

	Rows []Row `gorm:"foreignKey:SheetID;constraint:OnDelete:CASCADE" json:"rows"`
}

// Row is one shipment line. Only source fields are persisted; LoadDate and
// Amount are projections recomputed from StartDate+Idx and Freight×SettleTons
// on every load, so a stale stored copy can never leak out.
// Editable numerics stay raw strings: blank or malformed input round-trips
// untouched and only collapses to zero inside the amount rule.
type Row struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	SheetID string `gorm:"index;size:64;not null" json:"-"`
	Idx     int    `gorm:"not null" json:"-"`

	LoadPlace     string `json:"loadPlace"`
	Vehicle       string `json:"vehicle"`
	Model         string `json:"model"`
	LoadNetWeight string `json:"loadNetWeight"`
	UnloadDate    string `gorm:"size:10" json:"unloadDate"`
	UnloadPlace   string `json:"unloadPlace"`
	UnloadTons    string `json:"unloadTons"`
	Freight       string `json:"freight"`
	SettleTons    string `json:"settleTons"`

	LoadDate string `gorm:"-" json:"loadDate"`
	Amount   string `gorm:"-" json:"amount"`
}

// TableName avoids the sqlite ROWS keyword.
func (Row) TableName() string { return "sheet_rows" }

// RecentEntry marks one sheet as recently opened. Recency order is OpenedAt
// descending; the set is bounded by the configured recent limit.
type RecentEntry struct {
	ID       uint      `gorm:"primaryKey"`
	SheetID  string    `gorm:"uniqueIndex;size:64;not null"`
	OpenedAt time.Time `gorm:"index;not null"`
}

// SheetMeta is the listing projection: catalog data without row payloads.
type SheetMeta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"startDate"`
	RowCount  int       `json:"rowCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}
