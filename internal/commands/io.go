package commands

import (
	"bufio"
	"fmt"
	"github.com/pkg/errors"
	"io"
	"os"
	"strings"
)

// Output is where the commands write their results
var Output io.Writer = os.Stdout

// Input is read by the commands when no arguments are given
var Input io.Reader = os.Stdin

// Values returns the arguments, or the non-empty lines of Input with surrounding whitespace
// removed if there are no arguments
func Values(args []string) ([]string, error) {
	return readInput(args, true)
}

// Lines returns the arguments, or every line of Input exactly as given (minus the line terminator)
// if there are no arguments. Blank lines are kept.
func Lines(args []string) ([]string, error) {
	return readInput(args, false)
}

func readInput(args []string, trim bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	res := make([]string, 0)
	scanner := bufio.NewScanner(Input)
	for scanner.Scan() {
		line := scanner.Text()
		if trim {
			if line = strings.TrimSpace(line); line == "" {
				continue
			}
		}
		res = append(res, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "Could not read input")
	}
	return res, nil
}

// Println writes one result line to Output
func Println(a ...interface{}) error {
	_, err := fmt.Fprintln(Output, a...)
	return errors.WithStack(err)
}
