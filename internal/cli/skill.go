package cli

import (
	"context"
	"fmt"
)

func (a *App) AddSkill(ctx context.Context) error {
	idx, ok := a.chooseUser()
	if !ok {
		return nil
	}

	name, err := GetSimpleText(a.reader, "Skill (e.g. Go, UX, Data):", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(a.out, "Skill must not be empty.")
		return nil
	}

	level, err := GetIntInRange(a.reader, "Level (0-100): ", 0, 100, a.out)
	if err != nil {
		return err
	}

	if err := a.tracker.UpsertSkill(ctx, idx, name, level); err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Skill recorded.")
	return nil
}
