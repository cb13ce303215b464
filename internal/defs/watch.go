// internal/defs/watch.go
package defs

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher следит за yaml-файлом определений оружия. Сам он ничего не
// перезагружает: события складываются в канал, а игровой цикл забирает их
// через TryReload между шагами, чтобы библиотека не менялась посреди шага.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan struct{}
	closeCh chan struct{}
	once    sync.Once
}

// WatchWeaponDefinitions запускает наблюдение за yaml-файлом определений.
func WatchWeaponDefinitions(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Следим за каталогом: редакторы часто пересоздают файл при сохранении
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		events:  make(chan struct{}, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default: // уже есть непрочитанное событие
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("defs: watcher error: %v", err)
		}
	}
}

// TryReload перечитывает определения, если файл менялся с прошлого вызова.
// Вызывается игровым циклом между шагами симуляции; не блокируется.
func (w *Watcher) TryReload() {
	select {
	case <-w.events:
		if err := LoadWeaponDefinitions(w.path); err != nil {
			log.Printf("defs: reload %s: %v", w.path, err)
		}
	default:
	}
}

// Close останавливает наблюдение.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}
