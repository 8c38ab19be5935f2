package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Budgets serialize as JSON numbers, matching what clients send.
	decimal.MarshalJSONWithoutQuotes = true
}

// Status represents the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusOnHold    Status = "ON_HOLD"
	StatusCompleted Status = "COMPLETED"
)

// Valid reports whether s is a known project status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnHold, StatusCompleted:
		return true
	}
	return false
}

// Project represents a work item owned by exactly one user.
type Project struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string          `json:"name" gorm:"size:100;not null"`
	Description string          `json:"description" gorm:"size:500"`
	Status      Status          `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Deadline    time.Time       `json:"deadline" gorm:"not null"`
	TeamMember  string          `json:"teamMember" gorm:"size:100;not null"`
	Budget      decimal.Decimal `json:"budget" gorm:"type:decimal(20,2);not null"`
	UserID      uuid.UUID       `json:"userId" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID and default status before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	return nil
}
