package models

import "time"

// RateLimitCounter backs the TTL store when Redis is not configured.
// A row whose ExpiresAt has passed is treated as absent.
type RateLimitCounter struct {
	Key       string    `gorm:"column:counter_key;type:varchar(255);primary_key" json:"key"`
	Count     int64     `gorm:"column:hits;not null;default:0" json:"count"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (c *RateLimitCounter) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

func (c *RateLimitCounter) TableName() string {
	return "rate_limit_counters"
}
