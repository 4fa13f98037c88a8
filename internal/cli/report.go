package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmarques/skilltrack/internal/models"
)

func (a *App) ShowReport(ctx context.Context) error {
	idx, ok := a.chooseUser()
	if !ok {
		return nil
	}

	view, err := a.tracker.Report(idx)
	if err != nil {
		a.reportErr(err)
		return err
	}

	renderReport(a.out, view)
	return nil
}

// renderReport prints the three report sections, marking empty ones
// explicitly instead of omitting them.
func renderReport(w io.Writer, view models.ReportView) {
	fmt.Fprintf(w, "\n=== REPORT: %s ===\n", view.Name)

	fmt.Fprintln(w, "\n-- Skills --")
	if len(view.Skills) == 0 {
		fmt.Fprintln(w, "No skills.")
	}
	for _, s := range view.Skills {
		fmt.Fprintf(w, "- %s: %d/100\n", s.Name, s.Level)
	}

	fmt.Fprintln(w, "\n-- Study Plan --")
	if len(view.Plan) == 0 {
		fmt.Fprintln(w, "No plan items.")
	}
	for _, p := range view.Plan {
		fmt.Fprintf(w, "- %s | %s | %dh\n", p.TargetSkill, p.Resource, p.Hours)
	}

	fmt.Fprintln(w, "\n-- Minutes studied per skill --")
	if len(view.Minutes) == 0 {
		fmt.Fprintln(w, "No sessions recorded.")
	}
	for _, m := range view.Minutes {
		fmt.Fprintf(w, "- %s: %d min\n", m.Skill, m.Minutes)
	}
}
