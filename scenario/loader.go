package scenario

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// versionPrefix marks a version-1.0 scenario file's first line; its absence
// means version 0.0, whose first line is itself the first experiment
// record (§6.1).
const versionPrefix = "version"

// Load reads and parses the scenario file at path.
func Load(path string) ([]Experiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	return parse(f, path)
}

// parse reads experiments from r, sniffing version 0.0 vs 1.0 from the
// first line, and naming name in any returned error.
func parse(r io.Reader, name string) ([]Experiment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: %s: empty file", ErrMalformed, name)
	}

	lineNo := 1
	firstLine := scanner.Text()
	versioned := strings.HasPrefix(firstLine, versionPrefix)

	var experiments []Experiment
	if !versioned {
		exp, err := parseLine(firstLine, versioned)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: %v", ErrMalformed, name, lineNo, err)
		}
		experiments = append(experiments, exp)
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		exp, err := parseLine(line, versioned)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: %v", ErrMalformed, name, lineNo, err)
		}
		experiments = append(experiments, exp)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}

	return experiments, nil
}

// parseLine parses one whitespace-separated experiment record: 9 fields
// under version 1.0 (bucket, map, scaleW, scaleH, startx, starty, goalx,
// goaly, optimal), 7 fields under version 0.0 (bucket, map, startx, starty,
// goalx, goaly, optimal).
func parseLine(line string, versioned bool) (Experiment, error) {
	fields := strings.Fields(line)
	want := 7
	if versioned {
		want = 9
	}
	if len(fields) != want {
		return Experiment{}, fmt.Errorf("expected %d fields, got %d", want, len(fields))
	}

	var exp Experiment
	var err error
	i := 0

	if exp.Bucket, err = strconv.Atoi(fields[i]); err != nil {
		return Experiment{}, fmt.Errorf("bucket: %w", err)
	}
	i++
	exp.Map = fields[i]
	i++

	exp.ScaleWidth, exp.ScaleHeight = -1, -1
	if versioned {
		if exp.ScaleWidth, err = strconv.Atoi(fields[i]); err != nil {
			return Experiment{}, fmt.Errorf("scale width: %w", err)
		}
		i++
		if exp.ScaleHeight, err = strconv.Atoi(fields[i]); err != nil {
			return Experiment{}, fmt.Errorf("scale height: %w", err)
		}
		i++
	}

	if exp.StartX, err = strconv.Atoi(fields[i]); err != nil {
		return Experiment{}, fmt.Errorf("start x: %w", err)
	}
	i++
	if exp.StartY, err = strconv.Atoi(fields[i]); err != nil {
		return Experiment{}, fmt.Errorf("start y: %w", err)
	}
	i++
	if exp.GoalX, err = strconv.Atoi(fields[i]); err != nil {
		return Experiment{}, fmt.Errorf("goal x: %w", err)
	}
	i++
	if exp.GoalY, err = strconv.Atoi(fields[i]); err != nil {
		return Experiment{}, fmt.Errorf("goal y: %w", err)
	}
	i++

	if exp.OptimalCost, err = strconv.ParseFloat(fields[i], 64); err != nil {
		return Experiment{}, fmt.Errorf("optimal cost: %w", err)
	}

	return exp, nil
}
