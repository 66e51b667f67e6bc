package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmartinrc/salachat/internal/domain"
)

// RoomAuditLogRepository is an in-memory domain.RoomAuditRepository.
type RoomAuditLogRepository struct {
	mu   sync.RWMutex
	logs []domain.RoomAuditLog
}

func NewRoomAuditLogRepository() *RoomAuditLogRepository {
	return &RoomAuditLogRepository{}
}

func (r *RoomAuditLogRepository) Log(_ context.Context, log *domain.RoomAuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = append(r.logs, *log)
	return nil
}

func (r *RoomAuditLogRepository) GetByRoomID(_ context.Context, roomID string, limit int) ([]domain.RoomAuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := []domain.RoomAuditLog{}
	for _, log := range r.logs {
		if log.RoomID == roomID {
			logs = append(logs, log)
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})

	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}

	return logs, nil
}

func (r *RoomAuditLogRepository) DeleteOlderThan(_ context.Context, before time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.logs[:0]
	for _, log := range r.logs {
		if !log.Timestamp.Before(before) {
			kept = append(kept, log)
		}
	}
	r.logs = kept

	return nil
}

func (r *RoomAuditLogRepository) EnsureIndexes(_ context.Context) error {
	return nil
}
