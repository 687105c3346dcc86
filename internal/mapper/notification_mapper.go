package mapper

import (
	"encoding/json"

	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/model"

	"gorm.io/datatypes"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	var metadata map[string]interface{}
	if len(n.Metadata) > 0 {
		// Ignore malformed metadata rather than failing the whole listing.
		_ = json.Unmarshal(n.Metadata, &metadata)
	}
	return &entity.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Title:     n.Title,
		Message:   n.Message,
		TypeCode:  n.TypeCode,
		Metadata:  metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}
	var metadata datatypes.JSON
	if n.Metadata != nil {
		raw, err := json.Marshal(n.Metadata)
		if err == nil {
			metadata = datatypes.JSON(raw)
		}
	}
	return &model.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Title:     n.Title,
		Message:   n.Message,
		TypeCode:  n.TypeCode,
		Metadata:  metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(rows []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, len(rows))
	for i, n := range rows {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
