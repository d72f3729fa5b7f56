// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/SeKiZo0/NotesApp/internal/config"
	"github.com/SeKiZo0/NotesApp/internal/logger"
	"github.com/SeKiZo0/NotesApp/internal/store"
)

// Services bundles all application services consumed by the HTTP handlers.
type Services struct {
	NotesService   NotesService
	AppInfoService AppInfoService
}

// NewServices wires the services to their repositories and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		NotesService:   NewNotesService(storages.NoteRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
