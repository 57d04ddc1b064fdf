package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ErrNoTuningFile is returned by Reload and Watch before a successful Load.
var ErrNoTuningFile = errors.New("no tuning file loaded")

var (
	loadedMu   sync.Mutex
	loadedPath string
)

// Load resets tuning to its defaults and overlays the file at path. Any
// format viper understands by extension works (yaml, json, toml). Keys that
// are absent keep their default values.
func Load(path string) error {
	if err := read(path); err != nil {
		return err
	}
	setLoaded(path)
	return nil
}

// Reload re-reads the file given to Load. Call it from the goroutine that
// owns the tuning values.
func Reload() error {
	path := LoadedFile()
	if path == "" {
		return fmt.Errorf("reload: %w", ErrNoTuningFile)
	}
	return read(path)
}

// LoadedFile is the path of the last successful Load.
func LoadedFile() string {
	loadedMu.Lock()
	defer loadedMu.Unlock()
	return loadedPath
}

func setLoaded(path string) {
	loadedMu.Lock()
	loadedPath = path
	loadedMu.Unlock()
}

// read decodes path with a fresh viper instance, so nothing is shared with
// a watcher goroutine.
func read(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return apply(v)
}

// Watcher reports writes to the loaded tuning file.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
}

// Watch calls onChange whenever the loaded file is written. onChange runs
// on the watcher goroutine and must only signal the game loop, which then
// calls Reload itself.
func Watch(onChange func()) (*Watcher, error) {
	path := LoadedFile()
	if path == "" {
		return nil, fmt.Errorf("watch: %w", ErrNoTuningFile)
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	// Watch the directory; editors often replace the file instead of
	// writing it in place.
	if err := fw.Add(filepath.Dir(target)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch: %w", err)
	}

	w := &Watcher{fs: fw, done: make(chan struct{})}
	go w.run(target, onChange)
	return w, nil
}

func (w *Watcher) run(target string, onChange func()) {
	defer close(w.done)
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			if name, err := filepath.Abs(e.Name); err != nil || name != target {
				continue
			}
			onChange()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("tuning watcher error")
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func apply(v *viper.Viper) error {
	Reset()

	if v.IsSet("player") {
		if v.IsSet("player.combo.multipliers") {
			Player.Combo.Multipliers = nil
		}
		if v.IsSet("player.attacks") {
			Player.Attacks = nil
		}
		if err := v.UnmarshalKey("player", &Player); err != nil {
			return fmt.Errorf("decode player: %w", err)
		}
	}

	if v.IsSet("enemy.defaultType") {
		Enemy.DefaultType = v.GetString("enemy.defaultType")
	}
	for name := range v.GetStringMap("enemy.types") {
		key := "enemy.types." + name
		current, ok := Enemy.lookup(name)
		if !ok {
			current = Enemy.Type(Enemy.DefaultType)
			current.Name = name
		}
		typeName := current.Name
		if v.IsSet(key + ".combo.multipliers") {
			current.Combo.Multipliers = nil
		}
		if err := v.UnmarshalKey(key, &current); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		current.Name = typeName
		Enemy.Types[typeName] = current
	}

	if v.IsSet("arena") {
		if err := v.UnmarshalKey("arena", &Arena); err != nil {
			return fmt.Errorf("decode arena: %w", err)
		}
	}
	if v.IsSet("sim") {
		if err := v.UnmarshalKey("sim", &Sim); err != nil {
			return fmt.Errorf("decode sim: %w", err)
		}
	}
	return nil
}
