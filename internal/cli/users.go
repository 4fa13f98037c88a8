package cli

import (
	"context"
	"fmt"
)

func (a *App) RegisterUser(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "User name:", a.out)
	if err != nil {
		return err
	}

	if err := a.tracker.Register(ctx, name); err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintln(a.out, "User registered.")
	return nil
}

// listUsers prints every user as "[index] name" in stored order.
func (a *App) listUsers() {
	fmt.Fprintln(a.out, "\n=== USERS ===")
	names := a.tracker.UserNames()
	if len(names) == 0 {
		fmt.Fprintln(a.out, "No users registered.")
		return
	}
	for i, name := range names {
		fmt.Fprintf(a.out, "[%d] %s\n", i, name)
	}
}

// chooseUser lists users and prompts for an in-range index. The second
// return is false when there are no users or input ended.
func (a *App) chooseUser() (int, bool) {
	if a.tracker.UserCount() == 0 {
		fmt.Fprintln(a.out, "Register a user first.")
		return 0, false
	}
	a.listUsers()
	idx, err := GetIntInRange(a.reader, "Select user index: ", 0, a.tracker.UserCount()-1, a.out)
	if err != nil {
		return 0, false
	}
	return idx, true
}
