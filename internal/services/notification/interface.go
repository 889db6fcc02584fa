package notification

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wheelrift/internal/services/notification Service

import "github.com/KirkDiggler/wheelrift/internal/models"

// Service holds transient player-facing messages. Game logic writes to it
// but never reads from it.
type Service interface {
	// Add posts a message that removes itself after the configured TTL
	Add(message string, severity models.Severity) *models.Notification

	// List returns the live notifications, oldest first
	List() []*models.Notification

	// Dismiss removes one notification early
	Dismiss(id string) bool

	// Clear removes every notification
	Clear()
}
