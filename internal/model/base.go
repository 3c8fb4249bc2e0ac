package model

import (
	"time"
)

// GORM이 CreatedAt, UpdatedAt을 자동으로 관리
// CreatedBy, UpdatedBy는 Service에서 인증된 운영자 ID로 명시적으로 설정
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"` // GORM이 자동 관리
	UpdatedAt time.Time `gorm:"column:updated_at;not null"` // GORM이 자동 관리
	CreatedBy *uint32   `gorm:"column:created_by"`
	UpdatedBy *uint32   `gorm:"column:updated_by"`
}

// SetCreatedBy stamps both audit columns for a new row.
func (b *BaseEntity) SetCreatedBy(operatorID uint32) {
	b.CreatedBy = &operatorID
	b.UpdatedBy = &operatorID
}

// SetUpdatedBy stamps the updater audit column.
func (b *BaseEntity) SetUpdatedBy(operatorID uint32) {
	b.UpdatedBy = &operatorID
}
