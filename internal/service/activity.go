package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"aihub.app/api/common/id"
	"aihub.app/api/common/logger"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/queue"
	"aihub.app/api/internal/store"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ActivityService interface {
	// Record inserts the activity and announces it on the activity stream.
	// Publishing is best effort.
	Record(ctx context.Context, orgID int64, profileID *int64, action string, toolSlug *string, metadata map[string]any) (*model.Activity, error)
	List(ctx context.Context, actor *model.Profile, limit, offset int32) ([]model.Activity, error)
}

type activityService struct {
	activityStore store.ActivityStore
	producer      queue.Producer
}

// NewActivityService builds the audit log. producer may be nil.
func NewActivityService(activityStore store.ActivityStore, producer queue.Producer) ActivityService {
	return &activityService{activityStore: activityStore, producer: producer}
}

func (s *activityService) Record(ctx context.Context, orgID int64, profileID *int64, action string, toolSlug *string, metadata map[string]any) (*model.Activity, error) {
	var raw json.RawMessage
	if len(metadata) > 0 {
		b, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("encoding activity metadata: %w", err)
		}
		raw = b
	}

	activity := &model.Activity{
		ID:             id.New(),
		OrganizationID: orgID,
		ProfileID:      profileID,
		Action:         action,
		ToolSlug:       toolSlug,
		Metadata:       raw,
	}
	if err := s.activityStore.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("creating activity: %w", err)
	}

	if s.producer != nil {
		msg := queue.ActivityMessage{
			ActivityID:     activity.ID,
			OrganizationID: orgID,
			Action:         action,
			ToolSlug:       toolSlug,
			RequestID:      logger.GetLogFields(ctx).RequestID,
		}
		if err := s.producer.Publish(ctx, msg); err != nil {
			slog.WarnContext(ctx, "failed to publish activity",
				"error", err,
				"activity_id", activity.ID,
				"action", action)
		}
	}

	return activity, nil
}

func (s *activityService) List(ctx context.Context, actor *model.Profile, limit, offset int32) ([]model.Activity, error) {
	orgID, err := managerOrg(actor)
	if err != nil {
		return nil, err
	}
	limit, offset = page(limit, offset)

	activities, err := s.activityStore.List(ctx, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return activities, nil
}

// recordActivity logs instead of failing the caller's operation.
func recordActivity(ctx context.Context, activities ActivityService, orgID int64, profileID int64, action string, toolSlug *string, metadata map[string]any) {
	if activities == nil {
		return
	}
	if _, err := activities.Record(ctx, orgID, &profileID, action, toolSlug, metadata); err != nil {
		slog.ErrorContext(ctx, "failed to record activity", "error", err, "action", action)
	}
}

func page(limit, offset int32) (int32, int32) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
