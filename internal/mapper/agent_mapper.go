package mapper

import (
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/model"
)

type AgentMapper struct{}

func NewAgentMapper() *AgentMapper {
	return &AgentMapper{}
}

func (m *AgentMapper) ToEntity(a *model.Agent) *entity.Agent {
	if a == nil {
		return nil
	}
	return &entity.Agent{
		Id:                a.Id,
		FullName:          a.FullName,
		AgentEmail:        a.AgentEmail,
		Gender:            entity.Gender(a.Gender),
		Phone:             a.Phone,
		Sector:            a.Sector,
		AadharNumber:      a.AadharNumber,
		AadharFrontImage:  a.AadharFrontImage,
		AadharBackImage:   a.AadharBackImage,
		ProfileImage:      a.ProfileImage,
		EmailOtp:          a.EmailOtp,
		EmailOtpExpiresAt: a.EmailOtpExpiresAt,
		EmailVerified:     a.EmailVerified,
		PhoneOtp:          a.PhoneOtp,
		PhoneOtpExpiresAt: a.PhoneOtpExpiresAt,
		PhoneVerified:     a.PhoneVerified,
		FirebaseToken:     a.FirebaseToken,
		Wallet:            a.Wallet,
		AdminVerified:     entity.AdminVerification(a.AdminVerified),
		PaymentId:         a.PaymentId,
		PaymentStatus:     entity.PaymentStatus(a.PaymentStatus),
		PaymentDate:       a.PaymentDate,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func (m *AgentMapper) ToModel(a *entity.Agent) *model.Agent {
	if a == nil {
		return nil
	}
	return &model.Agent{
		Id:                a.Id,
		FullName:          a.FullName,
		AgentEmail:        a.AgentEmail,
		Gender:            string(a.Gender),
		Phone:             a.Phone,
		Sector:            a.Sector,
		AadharNumber:      a.AadharNumber,
		AadharFrontImage:  a.AadharFrontImage,
		AadharBackImage:   a.AadharBackImage,
		ProfileImage:      a.ProfileImage,
		EmailOtp:          a.EmailOtp,
		EmailOtpExpiresAt: a.EmailOtpExpiresAt,
		EmailVerified:     a.EmailVerified,
		PhoneOtp:          a.PhoneOtp,
		PhoneOtpExpiresAt: a.PhoneOtpExpiresAt,
		PhoneVerified:     a.PhoneVerified,
		FirebaseToken:     a.FirebaseToken,
		Wallet:            a.Wallet,
		AdminVerified:     string(a.AdminVerified),
		PaymentId:         a.PaymentId,
		PaymentStatus:     string(a.PaymentStatus),
		PaymentDate:       a.PaymentDate,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func (m *AgentMapper) ToEntities(agents []*model.Agent) []*entity.Agent {
	entities := make([]*entity.Agent, len(agents))
	for i, a := range agents {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
