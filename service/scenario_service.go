package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"deal-analyzer/domain"
	"deal-analyzer/repository"
)

const maxScenarioNameLength = 200

var ErrScenarioNotFound = repository.ErrScenarioNotFound

type SaveScenarioInput struct {
	PropertyID int64               `json:"propertyId"`
	UserID     int64               `json:"-"`
	Name       string              `json:"scenarioName"`
	Strategy   domain.StrategyType `json:"strategyType"`
	Input      json.RawMessage     `json:"input"`
}

type ScenarioService struct {
	repo       repository.ScenarioRepository
	cache      repository.CacheRepository
	calculator *CalculatorService
	logger     *slog.Logger
}

func NewScenarioService(
	repo repository.ScenarioRepository,
	cache repository.CacheRepository,
	calculator *CalculatorService,
	logger *slog.Logger,
) *ScenarioService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScenarioService{repo: repo, cache: cache, calculator: calculator, logger: logger}
}

func propertyCacheKey(propertyID int64) string {
	return fmt.Sprintf("scenarios:property:%d", propertyID)
}

// Save analyzes the scenario's input and stores it together with the
// resulting headline metrics. Results are always recomputed here; callers
// cannot supply them.
func (s *ScenarioService) Save(ctx context.Context, input SaveScenarioInput) (domain.Scenario, error) {
	input.Name = strings.TrimSpace(input.Name)
	switch {
	case input.PropertyID <= 0:
		return domain.Scenario{}, invalid("propertyId", "must be greater than zero")
	case input.UserID <= 0:
		return domain.Scenario{}, invalid("userId", "must be greater than zero")
	case input.Name == "":
		return domain.Scenario{}, invalid("scenarioName", "is required")
	case len(input.Name) > maxScenarioNameLength:
		return domain.Scenario{}, invalid("scenarioName", "must be at most %d characters", maxScenarioNameLength)
	case !input.Strategy.Valid():
		return domain.Scenario{}, invalid("strategyType", "must be one of rental, flip, brrrr")
	}

	analysis, err := s.calculator.Analyze(input.Strategy, input.Input)
	if err != nil {
		return domain.Scenario{}, err
	}

	saved, err := s.repo.Create(ctx, domain.Scenario{
		PropertyID: input.PropertyID,
		UserID:     input.UserID,
		Name:       input.Name,
		Strategy:   input.Strategy,
		Input:      input.Input,
		Metrics:    analysis.Metrics,
	})
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("save scenario: %w", err)
	}

	s.invalidate(saved.PropertyID)
	s.logger.Info("scenario saved",
		"scenarioId", saved.ID, "propertyId", saved.PropertyID, "strategy", saved.Strategy)
	return saved, nil
}

// ListByProperty returns the property's scenarios, served from cache when
// possible.
func (s *ScenarioService) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Scenario, error) {
	key := propertyCacheKey(propertyID)
	if cached, ok := s.cache.Get(key); ok {
		var scenarios []domain.Scenario
		if err := json.Unmarshal([]byte(cached), &scenarios); err == nil {
			return scenarios, nil
		}
		s.logger.Warn("discarding unreadable cached scenarios", "key", key)
	}

	scenarios, err := s.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list scenarios for property %d: %w", propertyID, err)
	}

	if encoded, err := json.Marshal(scenarios); err == nil {
		if err := s.cache.Set(key, string(encoded)); err != nil {
			s.logger.Warn("failed to cache scenarios", "key", key, "error", err)
		}
	}
	return scenarios, nil
}

func (s *ScenarioService) ListByUser(ctx context.Context, userID int64) ([]domain.Scenario, error) {
	scenarios, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list scenarios for user %d: %w", userID, err)
	}
	return scenarios, nil
}

func (s *ScenarioService) Get(ctx context.Context, id int64) (domain.Scenario, error) {
	scenario, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrScenarioNotFound) {
			return domain.Scenario{}, err
		}
		return domain.Scenario{}, fmt.Errorf("get scenario %d: %w", id, err)
	}
	return scenario, nil
}

// Delete removes a scenario owned by userID. Scenarios owned by someone else
// are reported as not found.
func (s *ScenarioService) Delete(ctx context.Context, id, userID int64) error {
	scenario, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if scenario.UserID != userID {
		return ErrScenarioNotFound
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrScenarioNotFound) {
			return err
		}
		return fmt.Errorf("delete scenario %d: %w", id, err)
	}

	s.invalidate(scenario.PropertyID)
	s.logger.Info("scenario deleted", "scenarioId", id, "propertyId", scenario.PropertyID)
	return nil
}

func (s *ScenarioService) invalidate(propertyID int64) {
	key := propertyCacheKey(propertyID)
	if err := s.cache.Delete(key); err != nil {
		s.logger.Warn("failed to invalidate cached scenarios", "key", key, "error", err)
	}
}
