package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/spatialmap"
)

// ErrSyntax signals a malformed line in a point list.
var ErrSyntax = errors.New("textfile: syntax error")

// PointMap is the kind of map point lists are loaded into.
type PointMap = spatialmap.Map[float64, float64, string]

// Loaded is published to subscribers of a Loader for every point put into
// a map.
type Loaded struct {
	Line     int                                // line number within the input, starting at 1
	Key      spatialmap.Point[float64, float64] // the point's coordinates
	Value    string                             // the point's value
	Replaced bool                               // a previous entry for Key has been overwritten
}

// Loader reads point lists and broadcasts a Loaded message for every point.
//
// Subscribers have to drain their channels, otherwise loading will block.
type Loader struct {
	cast *caster.Caster // broadcaster for loaded points
}

// NewLoader creates a loader without subscribers.
func NewLoader() *Loader {
	return &Loader{
		cast: caster.New(nil),
	}
}

// Subscribe returns a channel which receives a Loaded message for every point
// subsequently loaded. The subscription ends when ctx is done or the loader is
// closed, which closes the channel.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.cast.Sub(ctx, capacity)
}

// Close ends all subscriptions.
func (l *Loader) Close() {
	l.cast.Close()
}

// Read parses a point list from r and puts every point into m. It returns the
// number of points read. Reading stops at the first malformed line.
func (l *Loader) Read(r io.Reader, m *PointMap) (int, error) {
	if r == nil || m == nil {
		return 0, spatialmap.ErrIllegalArguments
	}
	scanner := bufio.NewScanner(r)
	lineno, count := 0, 0
	for scanner.Scan() {
		lineno++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return count, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineno, err)
		}
		if !ok {
			continue
		}
		_, replaced, err := m.Put(key, value)
		if err != nil {
			return count, fmt.Errorf("line %d: %w", lineno, err)
		}
		count++
		l.cast.Pub(Loaded{Line: lineno, Key: key, Value: value, Replaced: replaced})
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	tracer().Debugf("textfile: read %d points from %d lines", count, lineno)
	return count, nil
}

// parseLine returns ok=false for blank lines and comments.
func parseLine(line string) (key spatialmap.Point[float64, float64], value string, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		err = fmt.Errorf("expected x and y coordinate, have %q", line)
		return
	}
	if key.X, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return
	}
	if key.Y, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return
	}
	return key, strings.Join(fields[2:], " "), true, nil
}

// LoadFile reads a point list from a file into a new map.
func (l *Loader) LoadFile(name string) (*PointMap, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	m := spatialmap.New[float64, float64, string]()
	if _, err := l.Read(file, m); err != nil {
		tracer().Errorf("textfile: loading %s: %v", name, err)
		return nil, err
	}
	return m, nil
}

// Load reads a point list from a file into a new map, without notifications.
func Load(name string) (*PointMap, error) {
	l := NewLoader()
	defer l.Close()
	return l.LoadFile(name)
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	return os.Open(name)
}
