// Package services implements the mutation operations and the report
// aggregator on top of the store repository.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmarques/skilltrack/internal/common"
	"github.com/dmarques/skilltrack/internal/models"
	"github.com/dmarques/skilltrack/internal/repositories/users"
)

// nowFn is a test seam for session timestamps.
var nowFn = models.Now

// Tracker exposes every operation the console surface needs. Mutating
// operations validate first, then apply the change in memory, then persist
// the whole store; a persistence failure is returned (common.ErrSaveFailed)
// but never rolls the in-memory change back.
type Tracker interface {
	UserCount() int
	UserNames() []string
	Register(ctx context.Context, name string) error
	UpsertSkill(ctx context.Context, userIdx int, name string, level int) error
	AddPlanItem(ctx context.Context, userIdx int, targetSkill, resource string, hours int) error
	RecordSession(ctx context.Context, userIdx int, skill string, minutes int, notes string) error
	Report(userIdx int) (models.ReportView, error)
}

type tracker struct {
	store    *models.Store
	repo     users.Repository
	validate *validator.Validate
}

// NewTracker returns a Tracker operating on the given in-memory store and
// persisting through repo.
func NewTracker(store *models.Store, repo users.Repository) Tracker {
	return &tracker{
		store:    store,
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type registerInput struct {
	Name string `validate:"required"`
}

type skillInput struct {
	Name  string `validate:"required"`
	Level int    `validate:"min=0,max=100"`
}

type planInput struct {
	Hours int `validate:"min=1,max=2000"`
}

type sessionInput struct {
	Minutes int `validate:"min=1,max=1440"`
}

func (t *tracker) UserCount() int {
	return t.store.UserCount()
}

// UserNames lists display names in stored order, substituting a placeholder
// for users persisted without a name.
func (t *tracker) UserNames() []string {
	names := make([]string, 0, t.store.UserCount())
	for i := 0; i < t.store.UserCount(); i++ {
		name := t.store.UserAt(i).Name
		if name == "" {
			name = "(unnamed)"
		}
		names = append(names, name)
	}
	return names
}

func (t *tracker) Register(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := t.check(registerInput{Name: name}); err != nil {
		return err
	}

	t.store.AppendUser(models.NewUser(name))
	return t.repo.Save(ctx, t.store)
}

func (t *tracker) UpsertSkill(ctx context.Context, userIdx int, name string, level int) error {
	name = strings.TrimSpace(name)
	if err := t.check(skillInput{Name: name, Level: level}); err != nil {
		return err
	}
	u := t.store.UserAt(userIdx)
	if u == nil {
		return common.ErrUserNotFound
	}

	if i := u.FindSkill(name); i >= 0 {
		// Existing entry keeps its original casing; only the level moves.
		u.Skills[i].Level = level
	} else {
		u.Skills = append(u.Skills, models.Skill{Name: name, Level: level})
	}
	return t.repo.Save(ctx, t.store)
}

func (t *tracker) AddPlanItem(ctx context.Context, userIdx int, targetSkill, resource string, hours int) error {
	if err := t.check(planInput{Hours: hours}); err != nil {
		return err
	}
	u := t.store.UserAt(userIdx)
	if u == nil {
		return common.ErrUserNotFound
	}

	u.Plan = append(u.Plan, models.PlanItem{
		TargetSkill: strings.TrimSpace(targetSkill),
		Resource:    strings.TrimSpace(resource),
		Hours:       hours,
	})
	return t.repo.Save(ctx, t.store)
}

func (t *tracker) RecordSession(ctx context.Context, userIdx int, skill string, minutes int, notes string) error {
	if err := t.check(sessionInput{Minutes: minutes}); err != nil {
		return err
	}
	u := t.store.UserAt(userIdx)
	if u == nil {
		return common.ErrUserNotFound
	}

	u.Sessions = append(u.Sessions, models.Session{
		Timestamp: nowFn(),
		Skill:     strings.TrimSpace(skill),
		Minutes:   models.Minutes(minutes),
		Notes:     strings.TrimSpace(notes),
	})
	return t.repo.Save(ctx, t.store)
}

func (t *tracker) Report(userIdx int) (models.ReportView, error) {
	u := t.store.UserAt(userIdx)
	if u == nil {
		return models.ReportView{}, common.ErrUserNotFound
	}
	return BuildReport(u), nil
}

// check runs struct validation and converts the first violation into a
// human-readable message wrapped in common.ErrValidation.
func (t *tracker) check(in any) error {
	err := t.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", common.ErrValidation, messageFor(verrs[0]))
	}
	return fmt.Errorf("%w: %v", common.ErrValidation, err)
}

func messageFor(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
