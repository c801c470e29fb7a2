package cmd

import (
	"bufio"
	"fmt"
	"os"
)

// confirmIfExists checks that a file exists and asks the user for
// confirmation before letting a caller overwrite it. It returns true if the
// file doesn't exist, or the user answered yes to msg. If ok is false or err
// is non-nil, the caller should abort.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation prints msg and reads a y/n answer from stdin. Pressing
// ENTER defaults to no.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	const defaultAnswer = 'N'

	for {
		input, _ := reader.ReadString('\n')
		if len(input) == 0 {
			return defaultAnswer == 'Y'
		}
		switch input[0] {
		case '\n':
			return defaultAnswer == 'Y'
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}
