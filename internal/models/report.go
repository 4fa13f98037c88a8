package models

// SkillMinutes is one row of a report's minutes-by-skill summary.
type SkillMinutes struct {
	Skill   string
	Minutes int
}

// ReportView is the read-only aggregated presentation of one user: skills and
// plan in stored order, plus total studied minutes per skill in first-seen
// order across the session log. Empty sections are empty (non-nil) slices;
// rendering decides how to mark them.
type ReportView struct {
	Name    string
	Skills  []Skill
	Plan    []PlanItem
	Minutes []SkillMinutes
}
