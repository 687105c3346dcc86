package mapper

import (
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:            u.Id,
		FullName:      u.FullName,
		UserEmail:     u.UserEmail,
		Dob:           u.Dob,
		Gender:        entity.Gender(u.Gender),
		Phone:         u.Phone,
		ProfileImage:  u.ProfileImage,
		Otp:           u.Otp,
		OtpExpiresAt:  u.OtpExpiresAt,
		IsVerified:    u.IsVerified,
		FirebaseToken: u.FirebaseToken,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:            u.Id,
		FullName:      u.FullName,
		UserEmail:     u.UserEmail,
		Dob:           u.Dob,
		Gender:        string(u.Gender),
		Phone:         u.Phone,
		ProfileImage:  u.ProfileImage,
		Otp:           u.Otp,
		OtpExpiresAt:  u.OtpExpiresAt,
		IsVerified:    u.IsVerified,
		FirebaseToken: u.FirebaseToken,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
