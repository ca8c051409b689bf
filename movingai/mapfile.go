package movingai

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ParseMap reads a .map file and returns the grid it describes.
//
// Only the "octile" map type is accepted; it yields an 8-connected grid.
// Trailing blank lines after the last terrain row are ignored.
func ParseMap(r io.Reader) (*grid.GridGraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		width, height = -1, -1
		line          int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "type":
			if len(fields) != 2 || fields[1] != "octile" {
				return nil, fmt.Errorf("line %d: %q: %w", line, sc.Text(), ErrBadHeader)
			}
		case "height", "width":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: %q: %w", line, sc.Text(), ErrBadHeader)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("line %d: %q: %w", line, sc.Text(), ErrBadHeader)
			}
			if fields[0] == "height" {
				height = n
			} else {
				width = n
			}
		case "map":
			if width < 0 || height < 0 {
				return nil, fmt.Errorf("line %d: map before width/height: %w", line, ErrBadHeader)
			}
			return parseTerrain(sc, line, width, height)
		default:
			return nil, fmt.Errorf("line %d: unexpected %q: %w", line, fields[0], ErrBadHeader)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("no map section: %w", ErrBadHeader)
}

// parseTerrain reads exactly height rows of width runes.
func parseTerrain(sc *bufio.Scanner, line, width, height int) (*grid.GridGraph, error) {
	rows := make([]string, 0, height)
	for len(rows) < height && sc.Scan() {
		line++
		row := strings.TrimRight(sc.Text(), "\r")
		if len(row) != width {
			return nil, fmt.Errorf("line %d: width %d, want %d: %w", line, len(row), width, ErrBadDimensions)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) != height {
		return nil, fmt.Errorf("%d rows, want %d: %w", len(rows), height, ErrBadDimensions)
	}
	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, fmt.Errorf("line %d: extra row: %w", line, ErrBadDimensions)
		}
	}

	g, err := grid.FromStrings(rows, grid.Conn8)
	if err != nil {
		return nil, fmt.Errorf("movingai: terrain: %w", err)
	}
	return g, nil
}

// LoadMap opens path and parses it with ParseMap.
func LoadMap(path string) (*grid.GridGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
