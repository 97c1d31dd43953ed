package service

import (
	"github.com/MKhiriev/go-task-tracker/internal/adapter"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/store"
)

// ClientServices bundles the client core for injection into the presentation
// layer.
type ClientServices struct {
	SessionService    SessionService
	TaskService       TaskService
	PreferenceService PreferenceService
}

// NewClientServices wires the services onto the shared gateway and local
// storages. The session service registers itself as the gateway's
// unauthorized hook during construction.
func NewClientServices(storages *store.ClientStorages, gateway adapter.Gateway, log *logger.Logger) *ClientServices {
	prefSvc := NewPreferenceService(storages, log)
	sessionSvc := NewSessionService(storages, gateway, log)
	taskSvc := NewTaskService(gateway, prefSvc, log)

	return &ClientServices{
		SessionService:    sessionSvc,
		TaskService:       taskSvc,
		PreferenceService: prefSvc,
	}
}
