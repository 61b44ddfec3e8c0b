// Package planner ties the recipe collection and the weekly plan to a
// storage provider. A Session is the single owner of in-memory state; every
// mutation is written through to the store before the call returns.
package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/recipeplanner/internal/constants"
	"github.com/julianstephens/recipeplanner/internal/logger"
	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/recipes"
	"github.com/julianstephens/recipeplanner/internal/storage"
	"github.com/julianstephens/recipeplanner/internal/validation"
)

// ErrPersist marks a mutation that was applied in memory but could not be
// written to the store
var ErrPersist = errors.New("failed to persist change")

// weekStartFormat matches JavaScript's Date.toISOString
const weekStartFormat = "2006-01-02T15:04:05.000Z07:00"

// Session is not safe for concurrent use
type Session struct {
	store        storage.Provider
	repo         *recipes.Repository
	plan         models.MealPlan
	validator    *validation.Validator
	now          func() time.Time
	newID        func() string
	beforeImport func()
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDs replaces the uuid generator used for new recipes and plans
func WithIDs(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// WithBeforeImport registers a hook run once an import file has been
// accepted and just before it replaces the current state
func WithBeforeImport(hook func()) Option {
	return func(s *Session) { s.beforeImport = hook }
}

// Open reads both collections from store. Missing keys start empty; a
// missing plan is created and written immediately.
func Open(store storage.Provider, opts ...Option) (*Session, error) {
	s := &Session{
		store:     store,
		validator: validation.New(),
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	var stored []models.Recipe
	found, err := s.read(constants.KeyRecipes, &stored)
	if err != nil {
		return nil, err
	}
	if !found {
		stored = []models.Recipe{}
	}
	s.repo = recipes.NewWithIDs(stored, s.newID)

	var plan models.MealPlan
	found, err = s.read(constants.KeyMealPlan, &plan)
	if err != nil {
		return nil, err
	}
	if found {
		s.plan = plan.Clone()
	} else {
		s.plan = s.freshPlan()
		logger.Info("Created meal plan", "id", s.plan.ID)
		if err := s.persistPlan(); err != nil {
			return nil, err
		}
	}

	logger.Debug("Session opened", "recipes", s.repo.Len(), "store", store.GetConfigPath())
	return s, nil
}

func (s *Session) read(key string, v interface{}) (bool, error) {
	data, err := s.store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode stored %s: %w", key, err)
	}
	return true, nil
}

func (s *Session) freshPlan() models.MealPlan {
	return models.NewMealPlan(s.newID(), s.now().UTC().Format(weekStartFormat))
}

func (s *Session) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err == nil {
		err = s.store.Put(key, data)
	}
	if err != nil {
		logger.Warn("Write-through failed", "key", key, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrPersist, key, err)
	}
	return nil
}

func (s *Session) persistRecipes() error {
	return s.write(constants.KeyRecipes, s.repo.All())
}

func (s *Session) persistPlan() error {
	return s.write(constants.KeyMealPlan, s.plan)
}

// Store returns the provider backing the session
func (s *Session) Store() storage.Provider {
	return s.store
}
