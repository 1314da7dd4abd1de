package domain

import "time"

// TimestampPrecision is the finest resolution both storage backends keep.
const TimestampPrecision = time.Microsecond

// NormalizeTime converts t to UTC at storage precision.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(TimestampPrecision)
}

// AuditFields holds the record timestamps shared by persisted entities.
// UpdatedAt is never earlier than CreatedAt.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAuditFields stamps both timestamps with the same instant.
func NewAuditFields(now time.Time) AuditFields {
	now = NormalizeTime(now)
	return AuditFields{CreatedAt: now, UpdatedAt: now}
}

// Touch refreshes UpdatedAt, clamping it so it never precedes CreatedAt.
func (a *AuditFields) Touch(now time.Time) {
	now = NormalizeTime(now)
	if now.Before(a.CreatedAt) {
		now = a.CreatedAt
	}
	a.UpdatedAt = now
}
