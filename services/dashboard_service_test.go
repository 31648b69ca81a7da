package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsCountsBothKinds(t *testing.T) {
	playerRepo := &fakePlayerRepo{countResult: 12}
	coachRepo := &fakeCoachRepo{countResult: 4}
	service := NewDashboardService(playerRepo, coachRepo, nil)

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, stats.PlayersTotal)
	assert.Equal(t, 4, stats.CoachesTotal)
}

func TestGetStatsPropagatesCountFailure(t *testing.T) {
	playerRepo := &fakePlayerRepo{countErr: errors.New("connection refused")}
	coachRepo := &fakeCoachRepo{}
	service := NewDashboardService(playerRepo, coachRepo, nil)

	_, err := service.GetStats(context.Background())
	assert.Error(t, err)
}
