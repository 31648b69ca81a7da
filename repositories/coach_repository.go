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
	"github.com/lib/pq"
)

type CoachRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, coach *models.Coach) error
	GetByEmail(ctx context.Context, email string) (*models.Coach, error)
	Count(ctx context.Context) (int, error)
}

type postgresCoachRepository struct {
	pool *db.Pool
}

func NewPostgresCoachRepository(pool *db.Pool) CoachRepository {
	return &postgresCoachRepository{pool: pool}
}

func (r *postgresCoachRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM coaches WHERE LOWER(email) = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, validation.NormalizeEmail(email)).Scan(&exists)
	if err != nil {
		return false, availabilityError(err)
	}
	return exists, nil
}

// Create сохраняет тренера. Первый вид спорта из заявки хранится в колонке
// sport, полный список — в specializations.
func (r *postgresCoachRepository) Create(ctx context.Context, coach *models.Coach) error {
	query := `
		INSERT INTO coaches (id, first_name, last_name, email, password_hash, sport,
			coaching_level, current_organization, specializations, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	coach.ID = uuid.NewString()
	coach.Email = validation.NormalizeEmail(coach.Email)
	if len(coach.Specializations) > 0 {
		coach.Sport = coach.Specializations[0]
	}
	if coach.Country == "" {
		coach.Country = "USA"
	}

	err := r.pool.QueryRow(ctx, query,
		coach.ID,
		coach.FirstName,
		coach.LastName,
		coach.Email,
		coach.PasswordHash,
		coach.Sport,
		coach.CoachingLevel,
		coach.CurrentOrg,
		pq.Array(coach.Specializations),
		coach.Country,
	).Scan(&coach.CreatedAt, &coach.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailConflict
		}
		return fmt.Errorf("failed to create coach record: %w", err)
	}
	return nil
}

func (r *postgresCoachRepository) GetByEmail(ctx context.Context, email string) (*models.Coach, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, sport, coaching_level,
			current_organization, specializations, country, created_at, updated_at
		FROM coaches
		WHERE LOWER(email) = $1`

	coach := &models.Coach{}
	err := r.pool.QueryRow(ctx, query, validation.NormalizeEmail(email)).Scan(
		&coach.ID,
		&coach.FirstName,
		&coach.LastName,
		&coach.Email,
		&coach.PasswordHash,
		&coach.Sport,
		&coach.CoachingLevel,
		&coach.CurrentOrg,
		pq.Array(&coach.Specializations),
		&coach.Country,
		&coach.CreatedAt,
		&coach.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to scan coach: %w", err)
	}
	return coach, nil
}

func (r *postgresCoachRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM coaches`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count coaches: %w", err)
	}
	return count, nil
}
