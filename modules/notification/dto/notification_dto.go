package dto

import (
	"github.com/google/uuid"
)

// Notification types produced by the system.
const (
	TypeAutoDeactivation = "auto_deactivation"
)

type CreateNotificationRequest struct {
	ParticipantID uuid.UUID              `json:"participant_id"`
	Title         string                 `json:"title"`
	Message       string                 `json:"message"`
	Type          string                 `json:"type"`
	Data          map[string]interface{} `json:"data"`
}

type MarkAsReadRequest struct {
	IDs []string `json:"ids" validate:"required"`
}
