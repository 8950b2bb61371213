package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

// SecurityLogWriter persists security events.
type SecurityLogWriter interface {
	Save(ctx context.Context, event models.SecurityEventDB) error
}

// SecurityLogReader reads security events back for the admin viewer.
type SecurityLogReader interface {
	GetFiltered(ctx context.Context, filter models.SecurityEventFilter) ([]models.SecurityEventDB, error)
	GetStats(ctx context.Context) (*models.SecurityEventStats, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AuditService records security events. Recording must never fail a
// request: persistence errors are logged and swallowed.
type AuditService struct {
	writeRepo   SecurityLogWriter
	readRepo    SecurityLogReader
	kafkaWriter KafkaWriter
}

// NewAuditService creates a new AuditService.
func NewAuditService(writeRepo SecurityLogWriter, readRepo SecurityLogReader, kafkaWriter KafkaWriter) *AuditService {
	return &AuditService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
	}
}

type auditMessage struct {
	EventID   string  `json:"event_id"`
	Timestamp int64   `json:"timestamp"`
	Action    string  `json:"action"`
	UserID    *int64  `json:"user_id,omitempty"`
	Success   bool    `json:"success"`
	Details   string  `json:"details,omitempty"`
	IPAddress *string `json:"ip_address,omitempty"`
}

// publishEvent mirrors a security event to Kafka, fire and forget.
func (s *AuditService) publishEvent(ctx context.Context, event models.SecurityEventDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "action", event.Action)
		return
	}

	msg := auditMessage{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Action:    event.Action,
		UserID:    event.UserID,
		Success:   event.Success,
		Details:   event.Details,
		IPAddress: event.IPAddress,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("Failed to marshal security event for Kafka", "action", event.Action, "error", err)
		return
	}

	if err := s.kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.EventID),
		Value: data,
	}); err != nil {
		logger.Log.Errorw("Failed to publish security event to Kafka", "action", event.Action, "error", err)
	}
}

// Record persists a security event and mirrors it to Kafka. It never
// returns an error; the audit trail must not break the request path.
func (s *AuditService) Record(ctx context.Context, event models.SecurityEventDB) {
	if err := s.writeRepo.Save(ctx, event); err != nil {
		logger.Log.Errorw("failed to persist security event",
			"action", event.Action, "user_id", event.UserID, "error", err)
	}
	s.publishEvent(ctx, event)
}

// GetEvents lists security events for the admin log viewer.
func (s *AuditService) GetEvents(ctx context.Context, filter models.SecurityEventFilter) ([]models.SecurityEventDB, error) {
	events, err := s.readRepo.GetFiltered(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list security events", "error", err)
		return nil, err
	}
	return events, nil
}

// GetStats summarizes the audit trail.
func (s *AuditService) GetStats(ctx context.Context) (*models.SecurityEventStats, error) {
	stats, err := s.readRepo.GetStats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to aggregate security events", "error", err)
		return nil, err
	}
	return stats, nil
}

// Actions lists the recognized event action types for filter dropdowns.
func (s *AuditService) Actions() []string {
	return models.SecurityEventActions
}
