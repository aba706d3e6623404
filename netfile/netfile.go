// Package netfile loads and saves network topology files: one node per
// line as three space-separated nonnegative integers "x y z". Blank lines
// and lines starting with '#' are ignored. Robot nodes never appear in
// network files; recipes add those.
package netfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/latticelabs/cubesim/cube"
)

// ErrBadLine indicates a non-comment line that is not exactly three
// nonnegative integers.
var ErrBadLine = errors.New("netfile: line must hold three nonnegative integers")

// Load reads cubes from network-file text. name labels the source in
// error messages. The returned cubes are unwired; the caller inserts them
// into a grid with WithCube.
func Load(r io.Reader, name string) ([]*cube.RoutingCube, error) {
	var cubes []*cube.RoutingCube

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: got %d fields (line %d in %s)", ErrBadLine, len(fields), line, name)
		}

		var xyz [3]int
		for i, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: %q (line %d in %s)", ErrBadLine, tok, line, name)
			}
			xyz[i] = n
		}
		cubes = append(cubes, cube.NewRoutingCube(cube.Position{X: xyz[0], Y: xyz[1], Z: xyz[2]}))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("netfile: reading %s: %w", name, err)
	}

	return cubes, nil
}

// LoadFile loads cubes from a network file on disk.
func LoadFile(path string) ([]*cube.RoutingCube, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: %w", err)
	}
	defer f.Close()

	return Load(f, path)
}

// Save writes cube positions in loader format, one "x y z" line per cube.
func Save(w io.Writer, cubes []*cube.RoutingCube) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Leave comments with '#'")
	for _, c := range cubes {
		p := c.Position()
		fmt.Fprintf(bw, "%d %d %d\n", p.X, p.Y, p.Z)
	}

	return bw.Flush()
}

// SaveFile writes a network file to disk, creating or truncating it.
func SaveFile(path string, cubes []*cube.RoutingCube) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("netfile: %w", err)
	}
	if err := Save(f, cubes); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
