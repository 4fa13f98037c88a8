package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarques/skilltrack/internal/models"
)

func TestBuildReport_MinutesFirstSeenOrder(t *testing.T) {
	u := models.NewUser("Ana")
	u.Sessions = []models.Session{
		{Skill: "Go", Minutes: 30},
		{Skill: "Go", Minutes: 15},
		{Skill: "Rust", Minutes: 10},
	}

	view := BuildReport(&u)

	assert.Equal(t, []models.SkillMinutes{
		{Skill: "Go", Minutes: 45},
		{Skill: "Rust", Minutes: 10},
	}, view.Minutes)
}

func TestBuildReport_OrderIsFirstAppearanceNotTotals(t *testing.T) {
	u := models.NewUser("Ana")
	u.Sessions = []models.Session{
		{Skill: "Zig", Minutes: 5},
		{Skill: "Ada", Minutes: 500},
		{Skill: "Zig", Minutes: 5},
	}

	view := BuildReport(&u)

	require.Len(t, view.Minutes, 2)
	assert.Equal(t, "Zig", view.Minutes[0].Skill, "neither alphabetical nor total-descending")
	assert.Equal(t, 10, view.Minutes[0].Minutes)
	assert.Equal(t, "Ada", view.Minutes[1].Skill)
}

func TestBuildReport_EmptyUser(t *testing.T) {
	u := models.NewUser("Ana")

	view := BuildReport(&u)

	assert.Equal(t, "Ana", view.Name)
	assert.Empty(t, view.Skills)
	assert.Empty(t, view.Plan)
	assert.Empty(t, view.Minutes)
	assert.NotNil(t, view.Skills)
	assert.NotNil(t, view.Plan)
	assert.NotNil(t, view.Minutes)
}

func TestBuildReport_MissingSkillGoesToUnknown(t *testing.T) {
	u := models.NewUser("Ana")
	u.Sessions = []models.Session{
		{Minutes: 20},
		{Skill: "Go", Minutes: 30},
		{Minutes: 10},
	}

	view := BuildReport(&u)

	assert.Equal(t, []models.SkillMinutes{
		{Skill: UnknownSkill, Minutes: 30},
		{Skill: "Go", Minutes: 30},
	}, view.Minutes)
}

func TestBuildReport_MalformedMinutesContributeZero(t *testing.T) {
	// A session loaded from a file with a non-numeric "minutos" decodes to
	// zero minutes; it must still claim its slot in the order.
	u := models.NewUser("Ana")
	u.Sessions = []models.Session{
		{Skill: "Go", Minutes: 0},
		{Skill: "Go", Minutes: 45},
	}

	view := BuildReport(&u)

	assert.Equal(t, []models.SkillMinutes{{Skill: "Go", Minutes: 45}}, view.Minutes)
}

func TestBuildReport_SectionsKeepStoredOrder(t *testing.T) {
	u := models.NewUser("Ana")
	u.Skills = []models.Skill{{Name: "UX", Level: 10}, {Name: "Go", Level: 90}}
	u.Plan = []models.PlanItem{
		{TargetSkill: "Go", Resource: "livro", Hours: 20},
		{TargetSkill: "UX", Resource: "curso", Hours: 5},
	}

	view := BuildReport(&u)

	assert.Equal(t, u.Skills, view.Skills)
	assert.Equal(t, u.Plan, view.Plan)
}

func TestBuildReport_DoesNotMutateUser(t *testing.T) {
	u := models.NewUser("Ana")
	u.Sessions = []models.Session{{Skill: "Go", Minutes: 30}}

	first := BuildReport(&u)
	second := BuildReport(&u)

	assert.Equal(t, first, second)
	assert.Len(t, u.Sessions, 1)

	// Appending to a view section must not leak into the user's data.
	first.Skills = append(first.Skills, models.Skill{Name: "X", Level: 1})
	assert.Empty(t, u.Skills)
}
