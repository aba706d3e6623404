package recipe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads recipe text into an executable Recipe. name labels the
// source in error messages. Parsing fails fast on the first unknown
// command or wrong argument count, with its file and line.
func Parse(r io.Reader, name string) (*Recipe, error) {
	var steps []Step

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		cmd, ok := commandsByName[fields[0]]
		if !ok {
			return nil, fmt.Errorf("%w: %q (line %d in %s)", ErrUnknownCommand, fields[0], line, name)
		}
		if !cmd.validArgCount(len(fields) - 1) {
			return nil, fmt.Errorf("%w: %s takes %v arguments, got %d (line %d in %s)",
				ErrArgCount, cmd, argCounts[cmd], len(fields)-1, line, name)
		}

		args := make([]Value, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
				args = append(args, IntValue(n))
			} else {
				args = append(args, StringValue(tok))
			}
		}
		steps = append(steps, Step{Cmd: cmd, Args: args, Line: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("recipe: reading %s: %w", name, err)
	}

	return New(steps), nil
}

// FromFile loads a recipe from a text file.
func FromFile(path string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}
	defer f.Close()

	return Parse(f, path)
}
