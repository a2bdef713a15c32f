package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// QuotaMap is the per-category cap table, stored as a JSON column. The
// reserved "ANY" key is the wildcard pool cap.
type QuotaMap map[string]int

func (q QuotaMap) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *QuotaMap) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	case nil:
		*q = nil
		return nil
	default:
		return fmt.Errorf("unsupported quota column type %T", src)
	}
}

// TeamOrder is the draft order, stored as a JSON column ("order" is a
// reserved word, so the column is draft_order).
type TeamOrder []string

func (o TeamOrder) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *TeamOrder) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	case nil:
		*o = nil
		return nil
	default:
		return fmt.Errorf("unsupported draft order column type %T", src)
	}
}

type League struct {
	Name         string `gorm:"primaryKey"`
	PasswordHash string
	AdminTeam    string
	CreatedAt    time.Time
}

type Team struct {
	ID      uint   `gorm:"primaryKey"`
	League  string `gorm:"uniqueIndex:idx_team_league_name"`
	Name    string `gorm:"uniqueIndex:idx_team_league_name"`
	IsAdmin bool
}

// Player transitions from unclaimed to claimed exactly once; ClaimedBy is
// never cleared again.
type Player struct {
	ID        uint   `gorm:"primaryKey"`
	League    string `gorm:"index"`
	Name      string
	Position  string
	ClaimedBy *string
	ClaimedAt *time.Time
}

// DraftConfig is owned by its league and only mutated through the draft
// session: quotas and order at configuration time, PickCount and Started
// during the draft.
type DraftConfig struct {
	League    string    `gorm:"primaryKey"`
	Quotas    QuotaMap  `gorm:"type:jsonb"`
	Order     TeamOrder `gorm:"column:draft_order;type:jsonb"`
	PickCount int
	Started   bool
}
