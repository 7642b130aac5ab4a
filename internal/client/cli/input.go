package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// getSimpleText, getPassword and confirm are indirections that tests swap
// out.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
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

// GetPassword reads a password from the terminal without echo.
// The returned slice should be wiped by the caller.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) bool {
	answer, err := GetSimpleText(reader, prompt+" [y/N]", w)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

// getWithDefault prompts for a field showing its current value. An empty
// answer keeps the current value; a single "-" clears it.
func getWithDefault(reader *bufio.Reader, label, current string, w io.Writer) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	switch v {
	case "":
		return current, nil
	case "-":
		return "", nil
	}
	return v, nil
}
