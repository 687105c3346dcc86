package service

import (
	"context"
	"time"

	"service-marketplace-be/internal/config"
	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/pkg/random"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/repository/specification"
	"service-marketplace-be/internal/repository/unitofwork"
	"service-marketplace-be/pkg/events"

	"github.com/google/uuid"
)

type IUserService interface {
	GenerateOtp(ctx context.Context, req *dto.GenerateOtpRequest) (*dto.GenerateOtpResponse, error)
	VerifyOtp(ctx context.Context, req *dto.VerifyOtpRequest) (*dto.VerifyOtpResponse, error)
	ResendOtp(ctx context.Context, req *dto.GenerateOtpRequest) (*dto.GenerateOtpResponse, error)

	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileData, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileData, error)
	UpdateProfileImage(ctx context.Context, userId uuid.UUID, imageURL string) (*dto.UserProfileData, error)

	ListTransactions(ctx context.Context, userId uuid.UUID) ([]*dto.TransactionResponse, error)
	ListNotifications(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error)
}

type userService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	cfg              *config.Config
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	cfg *config.Config,
) IUserService {
	return &userService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		cfg:              cfg,
	}
}

func (s *userService) otpTTL() time.Duration {
	return time.Duration(s.cfg.Auth.OtpTTLMinutes) * time.Minute
}

// GenerateOtp registers the phone on first contact: an unknown number gets a
// stub user row, so verify can always look it up by phone.
func (s *userService) GenerateOtp(ctx context.Context, req *dto.GenerateOtpRequest) (*dto.GenerateOtpResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: req.Phone})
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &entity.User{
			Id:        uuid.New(),
			Phone:     req.Phone,
			FullName:  "Dummy",
			CreatedAt: time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	}

	otp := random.SixDigitOTP()
	expiresAt := time.Now().Add(s.otpTTL())
	if err := uow.UserRepository().SetOtp(ctx, user.Id, otp, expiresAt); err != nil {
		return nil, err
	}

	return &dto.GenerateOtpResponse{Otp: otp}, nil
}

func (s *userService) VerifyOtp(ctx context.Context, req *dto.VerifyOtpRequest) (*dto.VerifyOtpResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: req.Phone})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}
	if user.Otp == nil || *user.Otp != req.Otp {
		return nil, serverutils.Unauthorized("Invalid OTP")
	}
	if user.OtpExpiresAt == nil || time.Now().After(*user.OtpExpiresAt) {
		return nil, serverutils.Unauthorized("OTP expired")
	}

	if err := uow.UserRepository().MarkVerified(ctx, user.Id); err != nil {
		return nil, err
	}
	if req.FirebaseToken != "" {
		user.FirebaseToken = req.FirebaseToken
		user.Otp = nil
		user.OtpExpiresAt = nil
		user.IsVerified = true
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := issueToken(s.cfg.Auth.JwtSecret, user.Id, user.Phone, serverutils.RoleUser)
	if err != nil {
		return nil, err
	}

	s.publisherService.Emit(ctx, events.BaseEvent{
		Type: events.TypeUserVerified,
		Data: map[string]interface{}{
			"user_id":     user.Id,
			"phone":       user.Phone,
			"occurred_at": time.Now(),
		},
		OccurredAt: time.Now(),
	})

	user.IsVerified = true
	return &dto.VerifyOtpResponse{
		Token: token,
		User:  s.toProfileData(user),
	}, nil
}

// ResendOtp only refreshes the code for an already-known phone.
func (s *userService) ResendOtp(ctx context.Context, req *dto.GenerateOtpRequest) (*dto.GenerateOtpResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: req.Phone})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	otp := random.SixDigitOTP()
	expiresAt := time.Now().Add(s.otpTTL())
	if err := uow.UserRepository().SetOtp(ctx, user.Id, otp, expiresAt); err != nil {
		return nil, err
	}

	return &dto.GenerateOtpResponse{Otp: otp}, nil
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}
	return s.toProfileData(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.UserEmail != "" {
		user.UserEmail = req.UserEmail
	}
	if req.Dob != "" {
		user.Dob = req.Dob
	}
	if req.Gender != "" {
		user.Gender = entity.Gender(req.Gender)
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.FirebaseToken != "" {
		user.FirebaseToken = req.FirebaseToken
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return s.toProfileData(user), nil
}

func (s *userService) UpdateProfileImage(ctx context.Context, userId uuid.UUID, imageURL string) (*dto.UserProfileData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	if err := uow.UserRepository().UpdateProfileImage(ctx, userId, imageURL); err != nil {
		return nil, err
	}
	user.ProfileImage = imageURL
	return s.toProfileData(user), nil
}

func (s *userService) ListTransactions(ctx context.Context, userId uuid.UUID) ([]*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	transactions, err := uow.TransactionRepository().FindAll(ctx,
		specification.Filter("user_id", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, &dto.TransactionResponse{
			Id:            t.Id,
			TransactionId: t.TransactionId,
			Kind:          string(t.Kind),
			Amount:        t.Amount,
			Status:        string(t.Status),
			CreatedAt:     t.CreatedAt,
		})
	}
	return result, nil
}

func (s *userService) ListNotifications(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.Filter("user_id", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, &dto.NotificationResponse{
			Id:        n.Id,
			Title:     n.Title,
			Message:   n.Message,
			TypeCode:  n.TypeCode,
			Metadata:  n.Metadata,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return result, nil
}

func (s *userService) toProfileData(user *entity.User) *dto.UserProfileData {
	return &dto.UserProfileData{
		Id:           user.Id,
		FullName:     user.FullName,
		UserEmail:    user.UserEmail,
		Dob:          user.Dob,
		Gender:       string(user.Gender),
		Phone:        user.Phone,
		ProfileImage: user.ProfileImage,
		IsVerified:   user.IsVerified,
		CreatedAt:    user.CreatedAt,
	}
}
