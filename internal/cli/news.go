package cli

import (
	"context"
	"fmt"
)

func (a *App) ShowQuote(ctx context.Context) error {
	fmt.Fprintln(a.out, "\nQuote of the moment:")

	quote, err := a.feeds.Quote(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "(Could not fetch a quote right now.)")
		return nil
	}

	fmt.Fprintln(a.out, "-", quote)
	return nil
}

func (a *App) ShowHeadlines(ctx context.Context) error {
	fmt.Fprintln(a.out, "\nTop headlines:")

	titles := a.feeds.Headlines(ctx, a.config.HeadlineLimit)
	if len(titles) == 0 {
		fmt.Fprintln(a.out, "(Could not fetch headlines.)")
		return nil
	}

	for _, title := range titles {
		fmt.Fprintln(a.out, "-", title)
	}
	return nil
}
