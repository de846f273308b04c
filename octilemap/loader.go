package octilemap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads and parses the octile map file at path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	return parse(f, path)
}

// parse reads one octile map from r, naming name in any returned error.
func parse(r io.Reader, name string) (*Map, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	header, err := readHeader(scanner, name)
	if err != nil {
		return nil, err
	}

	passable := make([]bool, header.width*header.height)
	for y := 0; y < header.height; y++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: %s: expected %d rows, found %d", ErrRowCount, name, header.height, y)
		}
		row := scanner.Text()
		if len(row) != header.width {
			return nil, fmt.Errorf("%w: %s: row %d has %d characters, want %d", ErrRowLength, name, y+1, len(row), header.width)
		}
		for x, ch := range row {
			passable[y*header.width+x] = strings.ContainsRune(passableChars, ch)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, name, err)
	}

	return &Map{Width: header.width, Height: header.height, Passable: passable}, nil
}

type header struct {
	width, height int
}

// readHeader consumes and validates the four fixed header lines of §6.2:
// "type octile", "height <H>", "width <W>", "map".
func readHeader(scanner *bufio.Scanner, name string) (header, error) {
	line1, err := nextLine(scanner, name)
	if err != nil {
		return header{}, err
	}
	if line1 != "type octile" {
		return header{}, fmt.Errorf("%w: %s: line 1: expected %q, got %q", ErrMalformedHeader, name, "type octile", line1)
	}

	line2, err := nextLine(scanner, name)
	if err != nil {
		return header{}, err
	}
	height, err := parseKeywordInt(line2, "height")
	if err != nil {
		return header{}, fmt.Errorf("%w: %s: line 2: %v", ErrMalformedHeader, name, err)
	}

	line3, err := nextLine(scanner, name)
	if err != nil {
		return header{}, err
	}
	width, err := parseKeywordInt(line3, "width")
	if err != nil {
		return header{}, fmt.Errorf("%w: %s: line 3: %v", ErrMalformedHeader, name, err)
	}

	line4, err := nextLine(scanner, name)
	if err != nil {
		return header{}, err
	}
	if line4 != "map" {
		return header{}, fmt.Errorf("%w: %s: line 4: expected %q, got %q", ErrMalformedHeader, name, "map", line4)
	}

	return header{width: width, height: height}, nil
}

func nextLine(scanner *bufio.Scanner, name string) (string, error) {
	if !scanner.Scan() {
		return "", fmt.Errorf("%w: %s: unexpected end of file in header", ErrMalformedHeader, name)
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

func parseKeywordInt(line, keyword string) (int, error) {
	prefix := keyword + " "
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("expected %q, got %q", prefix, line)
	}
	v, err := strconv.Atoi(strings.TrimSpace(line[len(prefix):]))
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", keyword, err)
	}
	return v, nil
}
