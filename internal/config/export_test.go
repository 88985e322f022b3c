package config

import "github.com/fsnotify/fsnotify"

// NotifyChange runs the config file change handler directly.
func NotifyChange(loader *Loader, event fsnotify.Event) {
	loader.onConfigChange(event)
}
