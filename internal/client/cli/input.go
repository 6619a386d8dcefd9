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

// GetSimpleText prints a prompt to w and reads a single line of input.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
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

// GetPassword prompts for a secret and reads it from the terminal without
// echo. The returned byte slice should be wiped by the caller when no
// longer needed.
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetYesNo prompts for a yes/no answer. An empty line keeps the current
// value; anything starting with y/Y is true, n/N false; other input
// re-prompts once and then keeps the current value.
func GetYesNo(reader *bufio.Reader, prompt string, current bool, w io.Writer) (bool, error) {
	def := "y/N"
	if current {
		def = "Y/n"
	}

	for attempts := 0; attempts < 2; attempts++ {
		answer, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, def), w)
		if err != nil {
			return current, err
		}
		switch {
		case answer == "":
			return current, nil
		case strings.HasPrefix(strings.ToLower(answer), "y"):
			return true, nil
		case strings.HasPrefix(strings.ToLower(answer), "n"):
			return false, nil
		}
		fmt.Fprintln(w, "Please answer y or n.")
	}
	return current, nil
}
