package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/draftdesk/fantasy-draft-backend/internal/engine"
)

// Store wraps the shared database handle. It is constructed once in main
// and injected everywhere; Close is the teardown boundary.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func Open(dsn string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.AutoMigrate(&League{}, &Team{}, &Player{}, &DraftConfig{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetConfig returns nil without error when the league has no draft config.
func (s *Store) GetConfig(ctx context.Context, league string) (*DraftConfig, error) {
	var cfg DraftConfig
	err := s.db.WithContext(ctx).First(&cfg, "league = ?", league).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Store) SaveConfig(ctx context.Context, cfg *DraftConfig) error {
	return s.db.WithContext(ctx).Save(cfg).Error
}

func (s *Store) FindPlayer(ctx context.Context, league string, id uint) (*Player, error) {
	var p Player
	err := s.db.WithContext(ctx).First(&p, "id = ? AND league = ?", id, league).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ClaimedCounts rebuilds the team's per-position ledger from the drafted
// players, never from a cached counter.
func (s *Store) ClaimedCounts(ctx context.Context, league, team string) (map[string]int, error) {
	var rows []struct {
		Position string
		N        int
	}
	err := s.db.WithContext(ctx).Model(&Player{}).
		Select("position, count(*) as n").
		Where("league = ? AND claimed_by = ?", league, team).
		Group("position").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ledger := make(map[string]int, len(rows))
	for _, r := range rows {
		ledger[r.Position] = r.N
	}
	return ledger, nil
}

// ClaimPlayer commits a claim: a conditional write that only succeeds while
// the player is still unclaimed, and the pick counter advance, in one
// transaction. A lost race surfaces as ErrAlreadyClaimed.
func (s *Store) ClaimPlayer(ctx context.Context, league string, id uint, team string) error {
	now := time.Now().UTC()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Player{}).
			Where("id = ? AND league = ? AND claimed_by IS NULL", id, league).
			Updates(map[string]any{"claimed_by": team, "claimed_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return engine.ErrAlreadyClaimed
		}

		res = tx.Model(&DraftConfig{}).
			Where("league = ?", league).
			UpdateColumn("pick_count", gorm.Expr("pick_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return engine.ErrNotConfigured
		}
		return nil
	})
}

func (s *Store) AvailablePlayers(ctx context.Context, league string) ([]Player, error) {
	var players []Player
	err := s.db.WithContext(ctx).
		Where("league = ? AND claimed_by IS NULL", league).
		Order("name").
		Find(&players).Error
	return players, err
}

func (s *Store) Roster(ctx context.Context, league, team string) ([]Player, error) {
	var players []Player
	err := s.db.WithContext(ctx).
		Where("league = ? AND claimed_by = ?", league, team).
		Order("name").
		Find(&players).Error
	return players, err
}

// ReplacePlayers loads an ingested player pool. With overwrite set the
// league's existing pool is dropped first, claims included, so it is only
// offered to admins before a draft.
func (s *Store) ReplacePlayers(ctx context.Context, league string, players []Player, overwrite bool) (int, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if overwrite {
			if err := tx.Where("league = ?", league).Delete(&Player{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(&players).Error
	})
	if err != nil {
		return 0, err
	}
	return len(players), nil
}

func (s *Store) GetLeague(ctx context.Context, name string) (*League, error) {
	var l League
	err := s.db.WithContext(ctx).First(&l, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLeague inserts the league and its admin team together.
func (s *Store) CreateLeague(ctx context.Context, league *League, admin *Team) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(league).Error; err != nil {
			return err
		}
		return tx.Create(admin).Error
	})
}

func (s *Store) GetTeam(ctx context.Context, league, name string) (*Team, error) {
	var t Team
	err := s.db.WithContext(ctx).First(&t, "league = ? AND name = ?", league, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) CreateTeam(ctx context.Context, team *Team) error {
	return s.db.WithContext(ctx).Create(team).Error
}
