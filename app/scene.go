package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"quarkview/models"
	"quarkview/quarkgl"
)

// LoadScene builds the scene cfg asks for: the OBJ file when OBJPath is set,
// the named built-in otherwise. The returned name labels the scene in the HUD and logs.
func LoadScene(cfg Config) (quarkgl.Scene, string, error) {
	if cfg.OBJPath == "" {
		s, err := models.Scene(cfg.Model, cfg.Seed)
		return s, cfg.Model, err
	}
	f, err := os.Open(cfg.OBJPath)
	if err != nil {
		return nil, "", errors.Wrap(err, "open obj")
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(cfg.OBJPath), filepath.Ext(cfg.OBJPath))
	m, err := models.LoadOBJ(f, name, cfg.Seed)
	if err != nil {
		return nil, "", err
	}
	return quarkgl.Scene{m}, name, nil
}

// sceneList is the cycle of scenes the model key steps through. Built-ins are
// built on first visit.
type sceneList struct {
	seed    uint64
	names   []string
	scenes  []quarkgl.Scene
	current int
}

func newSceneList(cfg Config) (*sceneList, error) {
	first, name, err := LoadScene(cfg)
	if err != nil {
		return nil, err
	}
	l := &sceneList{seed: cfg.Seed}
	builtins := models.Names()
	if cfg.OBJPath != "" {
		l.names = append(l.names, name)
		l.scenes = append(l.scenes, first)
	}
	for _, n := range builtins {
		l.names = append(l.names, n)
		if n == name && cfg.OBJPath == "" {
			l.current = len(l.names) - 1
			l.scenes = append(l.scenes, first)
			continue
		}
		l.scenes = append(l.scenes, nil)
	}
	return l, nil
}

func (l *sceneList) name() string         { return l.names[l.current] }
func (l *sceneList) scene() quarkgl.Scene { return l.scenes[l.current] }

// step moves by delta (wrapping) and builds the scene if needed.
func (l *sceneList) step(delta int) error {
	n := len(l.names)
	next := ((l.current+delta)%n + n) % n
	if l.scenes[next] == nil {
		s, err := models.Scene(l.names[next], l.seed)
		if err != nil {
			return err
		}
		l.scenes[next] = s
	}
	l.current = next
	return nil
}
