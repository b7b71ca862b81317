package models

import "time"

// LocationCounts holds the per-location quantities of one item.
type LocationCounts struct {
	MainBar     int `bson:"main_bar" json:"main_bar"`
	BeerBar     int `bson:"beer_bar" json:"beer_bar"`
	Lobby       int `bson:"lobby" json:"lobby"`
	StorageRoom int `bson:"storage_room" json:"storage_room"`
}

// StockCount is the current count of one item. TotalCount is always derived
// from the embedded location counts.
type StockCount struct {
	ID             string `bson:"_id" json:"id"`
	ItemID         string `bson:"item_id" json:"item_id"`
	LocationCounts `bson:",inline"`
	TotalCount     int       `bson:"total_count" json:"total_count"`
	CountDate      time.Time `bson:"count_date" json:"count_date"`
	CountedBy      string    `bson:"counted_by" json:"counted_by"`
}

// StockCountInput creates or overwrites the count of an item.
type StockCountInput struct {
	ItemID      string `json:"item_id" binding:"required"`
	MainBar     int    `json:"main_bar" binding:"gte=0"`
	BeerBar     int    `json:"beer_bar" binding:"gte=0"`
	Lobby       int    `json:"lobby" binding:"gte=0"`
	StorageRoom int    `json:"storage_room" binding:"gte=0"`
	CountedBy   string `json:"counted_by"`
}

// Locations returns the location part of the input.
func (in StockCountInput) Locations() LocationCounts {
	return LocationCounts{MainBar: in.MainBar, BeerBar: in.BeerBar, Lobby: in.Lobby, StorageRoom: in.StorageRoom}
}

// StockCountUpdate is a partial update; nil fields keep their stored value.
type StockCountUpdate struct {
	MainBar     *int   `json:"main_bar" binding:"omitempty,gte=0"`
	BeerBar     *int   `json:"beer_bar" binding:"omitempty,gte=0"`
	Lobby       *int   `json:"lobby" binding:"omitempty,gte=0"`
	StorageRoom *int   `json:"storage_room" binding:"omitempty,gte=0"`
	CountedBy   string `json:"counted_by"`
}

// Apply overlays the provided fields onto base.
func (u StockCountUpdate) Apply(base LocationCounts) LocationCounts {
	if u.MainBar != nil {
		base.MainBar = *u.MainBar
	}
	if u.BeerBar != nil {
		base.BeerBar = *u.BeerBar
	}
	if u.Lobby != nil {
		base.Lobby = *u.Lobby
	}
	if u.StorageRoom != nil {
		base.StorageRoom = *u.StorageRoom
	}
	return base
}

// CaseSingles is a location count expressed as full cases plus loose units.
type CaseSingles struct {
	Cases   int `json:"cases" binding:"gte=0"`
	Singles int `json:"singles" binding:"gte=0"`
}

// CaseCountInput records a count where every location is given in cases and singles.
type CaseCountInput struct {
	MainBar     CaseSingles `json:"main_bar"`
	BeerBar     CaseSingles `json:"beer_bar"`
	Lobby       CaseSingles `json:"lobby"`
	StorageRoom CaseSingles `json:"storage_room"`
	CountedBy   string      `json:"counted_by"`
}

// StockSnapshot is a historical copy of a StockCount taken when a session's counts are saved.
type StockSnapshot struct {
	ID             string `bson:"_id" json:"id"`
	SessionID      string `bson:"session_id" json:"session_id"`
	ItemID         string `bson:"item_id" json:"item_id"`
	LocationCounts `bson:",inline"`
	TotalCount     int       `bson:"total_count" json:"total_count"`
	CountDate      time.Time `bson:"count_date" json:"count_date"`
	CountedBy      string    `bson:"counted_by" json:"counted_by"`
	SnapshotDate   time.Time `bson:"snapshot_date" json:"snapshot_date"`
}
