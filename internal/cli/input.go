package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetIntInRange prints a prompt and reads integers until one inside
// [minimum, maximum] is entered. Non-integer and out-of-range input each get
// a short correction line and another prompt. The only error returned is a
// read failure (typically EOF), which callers treat as "stop asking".
func GetIntInRange(reader *bufio.Reader, prompt string, minimum, maximum int, w io.Writer) (int, error) {
	for {
		if _, err := fmt.Fprint(w, prompt); err != nil {
			return 0, err
		}
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
			return 0, err
		}

		v, convErr := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case convErr != nil:
			fmt.Fprintln(w, "Enter an integer.")
		case v < minimum || v > maximum:
			fmt.Fprintf(w, "Value out of range (%d-%d).\n", minimum, maximum)
		default:
			return v, nil
		}

		// A partial line at EOF was consumed above; nothing more will come.
		if err != nil {
			return 0, io.EOF
		}
	}
}

// pause waits for Enter so output stays on screen before the menu redraws.
func pause(reader *bufio.Reader, w io.Writer) {
	fmt.Fprint(w, "\n[Enter] to continue...")
	_, _ = reader.ReadString('\n')
	fmt.Fprintln(w)
}
