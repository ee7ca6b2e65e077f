// Package projectfile stores a project as JSON next to its video. An open
// File holds an advisory lock so two editors cannot work on the same project.
package projectfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/flock"

	"github.com/aschmelyun/tcaption/internal/project"
)

// Extension is appended to a video's basename to name its project file.
const Extension = ".tcaption.json"

// ErrLocked is returned by Open when another process holds the project.
var ErrLocked = errors.New("project is open in another editor")

var validate = validator.New()

// ProjectPath returns the project file path for a video.
func ProjectPath(videoPath string) string {
	dir := filepath.Dir(videoPath)
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	return filepath.Join(dir, base+Extension)
}

// File is a locked project file.
type File struct {
	path string
	lock *flock.Flock
}

// Open locks the project file at path. The file itself does not need to
// exist yet.
func Open(path string) (*File, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire project lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return &File{path: path, lock: lock}, nil
}

func (f *File) Path() string { return f.path }

// Exists reports whether a saved project is present.
func (f *File) Exists() bool {
	info, err := os.Stat(f.path)
	return err == nil && !info.IsDir()
}

// Load reads and validates the project.
func (f *File) Load() (*project.Project, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	return Decode(data)
}

// Save writes the project atomically.
func (f *File) Save(p *project.Project) error {
	if p == nil {
		return nil
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write project: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace project: %w", err)
	}
	return nil
}

// Close releases the lock. The lock file stays on disk; removing it would let
// a later editor lock a fresh inode while another still holds the old one.
func (f *File) Close() error {
	if err := f.lock.Unlock(); err != nil {
		return fmt.Errorf("release project lock: %w", err)
	}
	return nil
}

// Decode parses and validates a project document.
func Decode(data []byte) (*project.Project, error) {
	var p project.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("invalid project: %s", strings.Join(formatValidationErrors(err), ", "))
	}
	normalize(&p)
	return &p, nil
}

func formatValidationErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("field '%s' failed on the '%s' tag", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s (value: %s)", msg, fe.Param())
		}
		out = append(out, msg)
	}
	return out
}

func normalize(p *project.Project) {
	if p.Captions == nil {
		p.Captions = []project.Caption{}
	}
	if p.BRollClips == nil {
		p.BRollClips = []project.BRollClip{}
	}
	if p.ZoomEffects == nil {
		p.ZoomEffects = []project.Effect{}
	}
	if p.SoundEffects == nil {
		p.SoundEffects = []project.Effect{}
	}
	if p.Resolution == "" {
		p.Resolution = project.DefaultResolution
	}
}
