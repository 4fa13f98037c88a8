package cli

import (
	"context"
	"fmt"
)

func (a *App) RecordSession(ctx context.Context) error {
	idx, ok := a.chooseUser()
	if !ok {
		return nil
	}

	skill, err := GetSimpleText(a.reader, "Skill studied:", a.out)
	if err != nil {
		return err
	}
	minutes, err := GetIntInRange(a.reader, "Minutes studied: ", 1, 1440, a.out)
	if err != nil {
		return err
	}
	notes, err := GetSimpleText(a.reader, "Notes/remarks:", a.out)
	if err != nil {
		return err
	}

	if err := a.tracker.RecordSession(ctx, idx, skill, minutes, notes); err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Session recorded.")
	return nil
}
