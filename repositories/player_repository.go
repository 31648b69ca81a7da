package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/recruiting-platform/db"
	"github.com/Dosada05/recruiting-platform/models"
	"github.com/Dosada05/recruiting-platform/validation"
	"github.com/google/uuid"
)

type PlayerRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, player *models.Player) error
	GetByEmail(ctx context.Context, email string) (*models.Player, error)
	UpdatePhotoKey(ctx context.Context, id string, key string) error
	Count(ctx context.Context) (int, error)
}

type postgresPlayerRepository struct {
	pool *db.Pool
}

func NewPostgresPlayerRepository(pool *db.Pool) PlayerRepository {
	return &postgresPlayerRepository{pool: pool}
}

// EmailExists нормализует email и проверяет его наличие без учёта регистра.
// Любой сбой запроса превращается в ошибку проверки доступности с
// сохранённой причиной.
func (r *postgresPlayerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM players WHERE LOWER(email) = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, validation.NormalizeEmail(email)).Scan(&exists)
	if err != nil {
		return false, availabilityError(err)
	}
	return exists, nil
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (id, first_name, last_name, email, password_hash, sex, sport,
			position, gpa, country, state, region, scholarship_amount, test_scores)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	player.ID = uuid.NewString()
	player.Email = validation.NormalizeEmail(player.Email)

	err := r.pool.QueryRow(ctx, query,
		player.ID,
		player.FirstName,
		player.LastName,
		player.Email,
		player.PasswordHash,
		player.Sex,
		player.Sport,
		player.Position,
		player.GPA,
		player.Country,
		player.State,
		player.Region,
		player.ScholarshipAmount,
		player.TestScores,
	).Scan(&player.CreatedAt, &player.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailConflict
		}
		return fmt.Errorf("failed to create player record: %w", err)
	}
	return nil
}

func (r *postgresPlayerRepository) GetByEmail(ctx context.Context, email string) (*models.Player, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, sex, sport, position,
			gpa, country, state, region, scholarship_amount, test_scores, photo_key,
			created_at, updated_at
		FROM players
		WHERE LOWER(email) = $1`

	player := &models.Player{}
	err := r.pool.QueryRow(ctx, query, validation.NormalizeEmail(email)).Scan(
		&player.ID,
		&player.FirstName,
		&player.LastName,
		&player.Email,
		&player.PasswordHash,
		&player.Sex,
		&player.Sport,
		&player.Position,
		&player.GPA,
		&player.Country,
		&player.State,
		&player.Region,
		&player.ScholarshipAmount,
		&player.TestScores,
		&player.PhotoKey,
		&player.CreatedAt,
		&player.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}
	return player, nil
}

func (r *postgresPlayerRepository) UpdatePhotoKey(ctx context.Context, id string, key string) error {
	query := `UPDATE players SET photo_key = $1, updated_at = now() WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, key, id)
	if err != nil {
		return fmt.Errorf("failed to update player photo: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (r *postgresPlayerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}
