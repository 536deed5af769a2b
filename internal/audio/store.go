// Package audio persists and serves generated recap clips. Files follow the
// recap_week_{N}.mp3 convention, one per week, overwritten on regeneration.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// ErrNotFound is returned when the requested clip does not exist.
var ErrNotFound = errors.New("audio file not found")

var filenamePattern = regexp.MustCompile(`^recap_week_([0-9]+)\.mp3$`)

// File describes one stored clip for the listing endpoint.
type File struct {
	Filename string    `json:"filename"`
	Week     int       `json:"week"`
	Size     int64     `json:"size"`
	Created  time.Time `json:"created"`
}

// Store is a filesystem-backed clip store rooted at one directory.
type Store struct {
	dir string
}

// NewStore constructs a store rooted at dir; an empty dir means the working
// directory, matching the CLI contract.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// Filename returns the canonical clip name for a week.
func Filename(week int) string {
	return fmt.Sprintf("recap_week_%d.mp3", week)
}

// Save writes the clip for a week and returns its filename. The write goes
// through a temp file and rename so a failed synthesis never truncates an
// existing clip.
func (s *Store) Save(week int, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := Filename(week)
	target := filepath.Join(s.dir, name)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, target); err != nil {
		return "", err
	}
	return name, nil
}

// Path validates a requested filename and resolves it inside the store.
// Only canonical clip names are served, which also rules out traversal.
func (s *Store) Path(filename string) (string, error) {
	if !filenamePattern.MatchString(filename) {
		return "", fmt.Errorf("invalid audio filename %q", filename)
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return path, nil
}

// List returns all stored clips sorted by week.
func (s *Store) List() ([]File, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []File{}, nil
		}
		return nil, err
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := filenamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		week, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, File{
			Filename: entry.Name(),
			Week:     week,
			Size:     info.Size(),
			Created:  info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Week < files[j].Week })
	return files, nil
}
