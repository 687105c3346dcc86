package mapper

import (
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/model"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		Id:            t.Id,
		TransactionId: t.TransactionId,
		UserId:        t.UserId,
		Kind:          entity.TransactionKind(t.Kind),
		Amount:        t.Amount,
		Status:        entity.PaymentStatus(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		Id:            t.Id,
		TransactionId: t.TransactionId,
		UserId:        t.UserId,
		Kind:          string(t.Kind),
		Amount:        t.Amount,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToEntities(rows []*model.Transaction) []*entity.Transaction {
	entities := make([]*entity.Transaction, len(rows))
	for i, t := range rows {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
