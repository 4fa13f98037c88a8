package services

import "github.com/dmarques/skilltrack/internal/models"

// UnknownSkill is the bucket for sessions persisted without a skill name.
const UnknownSkill = "Unknown"

// BuildReport assembles the read-only view of one user: skills and plan in
// stored order and studied minutes folded per skill. Presentation order of
// the minutes section is first appearance across the session log, which is
// the order users of the original data files expect.
//
// BuildReport is pure: no side effects and no persistence.
func BuildReport(u *models.User) models.ReportView {
	view := models.ReportView{
		Name:    u.Name,
		Skills:  make([]models.Skill, 0, len(u.Skills)),
		Plan:    make([]models.PlanItem, 0, len(u.Plan)),
		Minutes: make([]models.SkillMinutes, 0),
	}

	view.Skills = append(view.Skills, u.Skills...)
	view.Plan = append(view.Plan, u.Plan...)

	seen := make(map[string]int)
	for _, sess := range u.Sessions {
		name := sess.Skill
		if name == "" {
			name = UnknownSkill
		}
		if i, ok := seen[name]; ok {
			view.Minutes[i].Minutes += int(sess.Minutes)
		} else {
			seen[name] = len(view.Minutes)
			view.Minutes = append(view.Minutes, models.SkillMinutes{
				Skill:   name,
				Minutes: int(sess.Minutes),
			})
		}
	}

	return view
}
