package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Dosada05/recruiting-platform/models"
	"github.com/Dosada05/recruiting-platform/repositories"
	"github.com/Dosada05/recruiting-platform/validation"
)

const (
	msgEmailConflict      = "Email already registered"
	msgRegistrationFailed = "An error occurred during registration"
)

// RegistrationOutcome — результат одной попытки регистрации вместе с
// HTTP-статусом. Сервис не возвращает ошибок: каждый исход уже
// классифицирован, а причины зависимых сбоев остаются в логах.
type RegistrationOutcome struct {
	Status  int
	Success bool
	Message string
	Errors  []validation.Error
	ID      string
}

// EventPublisher получает события об успешных регистрациях.
// Публикация не влияет на исход запроса.
type EventPublisher interface {
	Publish(eventType string, payload interface{})
}

type RegistrationService interface {
	RegisterPlayer(ctx context.Context, payload validation.Payload) RegistrationOutcome
	RegisterCoach(ctx context.Context, payload validation.Payload) RegistrationOutcome
}

type registrationService struct {
	playerRepo repositories.PlayerRepository
	coachRepo  repositories.CoachRepository
	hasher     PasswordHasher
	events     EventPublisher
	logger     *slog.Logger
}

func NewRegistrationService(
	playerRepo repositories.PlayerRepository,
	coachRepo repositories.CoachRepository,
	hasher PasswordHasher,
	events EventPublisher,
	logger *slog.Logger,
) RegistrationService {
	return &registrationService{
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
		hasher:     hasher,
		events:     events,
		logger:     logger,
	}
}

// RegisterPlayer проводит заявку игрока по всему конвейеру:
// валидация → проверка уникальности → хеширование → запись.
// Уникальность проверяется до хеширования, хеширование — до вставки,
// так что отклонённая или конфликтующая заявка не тратит хеш и не пишет в БД.
func (s *registrationService) RegisterPlayer(ctx context.Context, payload validation.Payload) RegistrationOutcome {
	if result := validation.ValidatePlayer(payload); !result.Valid {
		return rejected(result.Errors)
	}

	email := validation.NormalizeEmail(validation.StringField(payload, "email"))

	exists, err := s.playerRepo.EmailExists(ctx, email)
	if err != nil {
		s.logger.Error("player email availability check failed", slog.Any("error", err))
		return failed()
	}
	if exists {
		s.logger.Info("player registration conflict", slog.String("reason", "email exists"))
		return conflict()
	}

	passwordHash, err := s.hasher.Hash(rawPassword(payload))
	if err != nil {
		s.logger.Error("password hashing failed", slog.Any("error", err))
		return failed()
	}

	player := buildPlayer(payload)
	player.Email = email
	player.PasswordHash = passwordHash

	if err := s.playerRepo.Create(ctx, player); err != nil {
		// Проверка существования не атомарна со вставкой: гонка двух заявок
		// с одним email разрешается уникальным ограничением БД.
		if errors.Is(err, repositories.ErrEmailConflict) {
			s.logger.Info("player registration conflict", slog.String("reason", "unique constraint"))
			return conflict()
		}
		s.logger.Error("player insert failed", slog.Any("error", err))
		return failed()
	}

	s.publish("player.registered", player.ID)

	return RegistrationOutcome{
		Status:  http.StatusCreated,
		Success: true,
		Message: "Player registered successfully",
		ID:      player.ID,
	}
}

// RegisterCoach — тот же конвейер для тренера.
func (s *registrationService) RegisterCoach(ctx context.Context, payload validation.Payload) RegistrationOutcome {
	if result := validation.ValidateCoach(payload); !result.Valid {
		return rejected(result.Errors)
	}

	email := validation.NormalizeEmail(validation.StringField(payload, "email"))

	exists, err := s.coachRepo.EmailExists(ctx, email)
	if err != nil {
		s.logger.Error("coach email availability check failed", slog.Any("error", err))
		return failed()
	}
	if exists {
		s.logger.Info("coach registration conflict", slog.String("reason", "email exists"))
		return conflict()
	}

	passwordHash, err := s.hasher.Hash(rawPassword(payload))
	if err != nil {
		s.logger.Error("password hashing failed", slog.Any("error", err))
		return failed()
	}

	coach := buildCoach(payload)
	coach.Email = email
	coach.PasswordHash = passwordHash

	if err := s.coachRepo.Create(ctx, coach); err != nil {
		if errors.Is(err, repositories.ErrEmailConflict) {
			s.logger.Info("coach registration conflict", slog.String("reason", "unique constraint"))
			return conflict()
		}
		s.logger.Error("coach insert failed", slog.Any("error", err))
		return failed()
	}

	s.publish("coach.registered", coach.ID)

	return RegistrationOutcome{
		Status:  http.StatusCreated,
		Success: true,
		Message: "Coach registered successfully",
		ID:      coach.ID,
	}
}

func (s *registrationService) publish(eventType, id string) {
	if s.events == nil {
		return
	}
	s.events.Publish(eventType, map[string]string{"id": id})
}

func rejected(errs []validation.Error) RegistrationOutcome {
	return RegistrationOutcome{Status: http.StatusBadRequest, Errors: errs}
}

func conflict() RegistrationOutcome {
	return RegistrationOutcome{Status: http.StatusConflict, Message: msgEmailConflict}
}

func failed() RegistrationOutcome {
	return RegistrationOutcome{Status: http.StatusInternalServerError, Message: msgRegistrationFailed}
}

// buildPlayer собирает нормализованную запись из уже проверенного payload'а.
// Ровно одно из полей state/region заполняется в зависимости от страны.
func buildPlayer(p validation.Payload) *models.Player {
	player := &models.Player{
		FirstName: validation.StringField(p, "firstName"),
		LastName:  validation.StringField(p, "lastName"),
		Sex:       strings.ToLower(validation.StringField(p, "sex")),
		Sport:     validation.StringField(p, "sport"),
		Position:  validation.StringField(p, "position"),
		Country:   validation.StringField(p, "country"),
	}
	player.GPA, _ = validation.NumberField(p, "gpa")

	if strings.EqualFold(player.Country, "USA") {
		state := validation.StringField(p, "state")
		player.State = &state
	} else {
		region := validation.StringField(p, "region")
		player.Region = &region
	}

	if _, present := p["scholarshipAmount"]; present && p["scholarshipAmount"] != nil {
		if amount, ok := validation.NumberField(p, "scholarshipAmount"); ok {
			player.ScholarshipAmount = &amount
		}
	}
	if scores := validation.StringField(p, "testScores"); scores != "" {
		player.TestScores = &scores
	}
	return player
}

func buildCoach(p validation.Payload) *models.Coach {
	sports, _ := validation.StringList(p, "sports")
	return &models.Coach{
		FirstName:       validation.StringField(p, "firstName"),
		LastName:        validation.StringField(p, "lastName"),
		CoachingLevel:   strings.ToLower(validation.StringField(p, "coachingCategory")),
		CurrentOrg:      validation.StringField(p, "university"),
		Specializations: sports,
	}
}

// rawPassword: пробелы в пароле значимы, поэтому без обрезки.
func rawPassword(p validation.Payload) string {
	password, _ := p["password"].(string)
	return password
}
