// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dropsync/internal/adapters/config"
	_ "go.trai.ch/dropsync/internal/adapters/fs"
	_ "go.trai.ch/dropsync/internal/adapters/logger"
	_ "go.trai.ch/dropsync/internal/adapters/storage"
	_ "go.trai.ch/dropsync/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/dropsync/internal/app"
)
