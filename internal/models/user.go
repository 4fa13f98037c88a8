package models

import "strings"

// User is one tracked person: a display name plus three append-only logs.
// Sequences may be nil after loading an older file; operations treat nil and
// empty the same way.
type User struct {
	Name     string     `json:"nome"`
	Skills   []Skill    `json:"habilidades"`
	Plan     []PlanItem `json:"plano"`
	Sessions []Session  `json:"sessoes"`
}

// NewUser returns a user with the given name and empty logs, matching the
// shape the data file uses for freshly registered users.
func NewUser(name string) User {
	return User{
		Name:     name,
		Skills:   []Skill{},
		Plan:     []PlanItem{},
		Sessions: []Session{},
	}
}

// Skill is a named competency with a 0–100 proficiency level. At most one
// skill per user may carry the same name under case-insensitive comparison.
type Skill struct {
	Name  string `json:"nome"`
	Level int    `json:"nivel"`
}

// FindSkill returns the index of the first skill whose name equals name
// case-insensitively, or -1 when there is none.
func (u *User) FindSkill(name string) int {
	for i, s := range u.Skills {
		if strings.EqualFold(s.Name, name) {
			return i
		}
	}
	return -1
}

// PlanItem is a planned learning activity targeting a skill. The plan is an
// append-only log with no uniqueness constraint.
type PlanItem struct {
	TargetSkill string `json:"habilidade"`
	Resource    string `json:"recurso"`
	Hours       int    `json:"horas"`
}
