package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one append-only audit row. Rows are never updated or deleted.
type Entry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Timestamp      time.Time `gorm:"not null;index:idx_audit_logs_timestamp"`
	Action         string    `gorm:"type:varchar(50);not null"`
	ActorEmail     string    `gorm:"type:varchar(255);not null"`
	Details        string    `gorm:"type:text"`
	RelatedLeaveID *string   `gorm:"type:varchar(64);index:idx_audit_logs_leave_id"`
}

func (Entry) TableName() string {
	return "audit_logs"
}
