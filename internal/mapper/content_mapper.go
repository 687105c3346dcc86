package mapper

import (
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/model"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) PolicyToEntity(p *model.Policy) *entity.Policy {
	if p == nil {
		return nil
	}
	return &entity.Policy{
		Id:        p.Id,
		Type:      p.Type,
		Content:   p.Content,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *ContentMapper) PolicyToModel(p *entity.Policy) *model.Policy {
	if p == nil {
		return nil
	}
	return &model.Policy{
		Id:        p.Id,
		Type:      p.Type,
		Content:   p.Content,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *ContentMapper) FAQToEntity(f *model.FAQ) *entity.FAQ {
	if f == nil {
		return nil
	}
	return &entity.FAQ{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *ContentMapper) FAQToModel(f *entity.FAQ) *model.FAQ {
	if f == nil {
		return nil
	}
	return &model.FAQ{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *ContentMapper) FAQsToEntities(faqs []*model.FAQ) []*entity.FAQ {
	entities := make([]*entity.FAQ, len(faqs))
	for i, f := range faqs {
		entities[i] = m.FAQToEntity(f)
	}
	return entities
}

func (m *ContentMapper) ContactInfoToEntity(c *model.ContactInfo) *entity.ContactInfo {
	if c == nil {
		return nil
	}
	return &entity.ContactInfo{
		Id:             c.Id,
		OfficeLocation: c.OfficeLocation,
		Email:          c.Email,
		Phone:          c.Phone,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *ContentMapper) ContactInfoToModel(c *entity.ContactInfo) *model.ContactInfo {
	if c == nil {
		return nil
	}
	return &model.ContactInfo{
		Id:             c.Id,
		OfficeLocation: c.OfficeLocation,
		Email:          c.Email,
		Phone:          c.Phone,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *ContentMapper) ContactMessageToEntity(c *model.ContactMessage) *entity.ContactMessage {
	if c == nil {
		return nil
	}
	return &entity.ContactMessage{
		Id:        c.Id,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContentMapper) ContactMessageToModel(c *entity.ContactMessage) *model.ContactMessage {
	if c == nil {
		return nil
	}
	return &model.ContactMessage{
		Id:        c.Id,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContentMapper) ContactMessagesToEntities(msgs []*model.ContactMessage) []*entity.ContactMessage {
	entities := make([]*entity.ContactMessage, len(msgs))
	for i, c := range msgs {
		entities[i] = m.ContactMessageToEntity(c)
	}
	return entities
}
