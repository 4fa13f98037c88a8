package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// menuActions defines the minimal command surface the menu loop needs. The
// real App type satisfies this interface; tests can provide a lightweight
// stub.
type menuActions interface {
	RegisterUser(ctx context.Context) error
	AddSkill(ctx context.Context) error
	PlanStudy(ctx context.Context) error
	RecordSession(ctx context.Context) error
	ShowReport(ctx context.Context) error
	ShowQuote(ctx context.Context) error
	ShowHeadlines(ctx context.Context) error
}

// runMenu drives the numbered main menu until the user picks 0 or input ends.
//
// Options:
//
//	[1] Register user        [5] User report
//	[2] Add/update skill     [6] Motivational quote
//	[3] Plan study           [7] Tech headlines
//	[4] Record session       [0] Exit
//
// Errors returned by the handlers are ignored here; handlers report their
// own errors to the user.
func runMenu(ctx context.Context, a menuActions, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "=========== SKILLTRACK ===========")
		fmt.Fprintln(w, "[1] Register user")
		fmt.Fprintln(w, "[2] Add/update skill")
		fmt.Fprintln(w, "[3] Plan study")
		fmt.Fprintln(w, "[4] Record session")
		fmt.Fprintln(w, "[5] User report")
		fmt.Fprintln(w, "[6] Motivational quote")
		fmt.Fprintln(w, "[7] Tech headlines")
		fmt.Fprintln(w, "[0] Exit")

		choice, err := GetIntInRange(reader, "Choose an option: ", 0, 7, w)
		if err != nil {
			return
		}

		switch choice {
		case 1:
			_ = a.RegisterUser(ctx)
		case 2:
			_ = a.AddSkill(ctx)
		case 3:
			_ = a.PlanStudy(ctx)
		case 4:
			_ = a.RecordSession(ctx)
		case 5:
			_ = a.ShowReport(ctx)
		case 6:
			_ = a.ShowQuote(ctx)
		case 7:
			_ = a.ShowHeadlines(ctx)
		case 0:
			fmt.Fprintln(w, "Bye!")
			return
		}

		pause(reader, w)
	}
}
