package models

import "time"

// SessionType distinguishes a full recount from a quick restock check.
type SessionType string

const (
	SessionFullCount    SessionType = "full_count"
	SessionQuickRestock SessionType = "quick_restock"
)

// StockSession is a named stock-count checkpoint.
type StockSession struct {
	ID          string      `bson:"_id" json:"id"`
	SessionName string      `bson:"session_name" json:"session_name"`
	SessionDate time.Time   `bson:"session_date" json:"session_date"`
	IsActive    bool        `bson:"is_active" json:"is_active"`
	SessionType SessionType `bson:"session_type" json:"session_type"`
	Notes       string      `bson:"notes,omitempty" json:"notes,omitempty"`
}

// StockSessionInput is the create payload for sessions.
type StockSessionInput struct {
	SessionName string      `json:"session_name" binding:"required"`
	SessionType SessionType `json:"session_type" binding:"omitempty,oneof=full_count quick_restock"`
	Notes       string      `json:"notes"`
}
