package cli

import (
	"context"
	"fmt"
)

func (a *App) PlanStudy(ctx context.Context) error {
	idx, ok := a.chooseUser()
	if !ok {
		return nil
	}

	target, err := GetSimpleText(a.reader, "Target skill:", a.out)
	if err != nil {
		return err
	}
	resource, err := GetSimpleText(a.reader, "Resource (course, playlist, book...):", a.out)
	if err != nil {
		return err
	}
	hours, err := GetIntInRange(a.reader, "Estimated workload (h): ", 1, 2000, a.out)
	if err != nil {
		return err
	}

	if err := a.tracker.AddPlanItem(ctx, idx, target, resource, hours); err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Plan updated.")
	return nil
}
