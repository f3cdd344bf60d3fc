package kafka

import "time"

// OutboxRecord is the table layout behind OutboxRepository, used for migrations.
type OutboxRecord struct {
	ID            string  `gorm:"type:uuid;primaryKey"`
	RequestID     string  `gorm:"type:varchar(64)"`
	AggregateType string  `gorm:"type:varchar(50);not null"`
	AggregateID   string  `gorm:"type:varchar(255);not null"`
	EventType     string  `gorm:"type:varchar(100);not null"`
	Topic         string  `gorm:"type:varchar(150);not null"`
	Payload       []byte  `gorm:"type:jsonb;not null"`
	Status        string  `gorm:"type:varchar(20);not null;default:pending;index:idx_outbox_events_status"`
	RetryCount    int     `gorm:"not null;default:0"`
	ErrorMessage  *string `gorm:"type:varchar(500)"`
	NextRetryAt   *time.Time
	ProcessedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OutboxRecord) TableName() string {
	return "outbox_events"
}
