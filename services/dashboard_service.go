package services

import (
	"context"
	"database/sql"

	"github.com/Dosada05/recruiting-platform/models"
	"github.com/Dosada05/recruiting-platform/repositories"
	"golang.org/x/sync/errgroup"
)

// PoolStats отдаёт статистику пула соединений для панели.
type PoolStats interface {
	Stats() sql.DBStats
}

type DashboardService interface {
	GetStats(ctx context.Context) (models.RegistrationStats, error)
}

type dashboardService struct {
	playerRepo repositories.PlayerRepository
	coachRepo  repositories.CoachRepository
	pool       PoolStats
}

func NewDashboardService(
	playerRepo repositories.PlayerRepository,
	coachRepo repositories.CoachRepository,
	pool PoolStats,
) DashboardService {
	return &dashboardService{
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
		pool:       pool,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.RegistrationStats, error) {
	var stats models.RegistrationStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.playerRepo.Count(gctx)
		stats.PlayersTotal = count
		return err
	})
	g.Go(func() error {
		count, err := s.coachRepo.Count(gctx)
		stats.CoachesTotal = count
		return err
	})
	if err := g.Wait(); err != nil {
		return models.RegistrationStats{}, err
	}

	if s.pool != nil {
		dbStats := s.pool.Stats()
		stats.PoolOpenConns = dbStats.OpenConnections
		stats.PoolInUse = dbStats.InUse
		stats.PoolIdle = dbStats.Idle
		stats.PoolWaitCount = int(dbStats.WaitCount)
	}
	return stats, nil
}
