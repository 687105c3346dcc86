package service

import (
	"context"
	"fmt"
	"time"

	"service-marketplace-be/internal/config"
	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/pkg/logger"
	"service-marketplace-be/internal/pkg/mailer"
	"service-marketplace-be/internal/pkg/random"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/repository/specification"
	"service-marketplace-be/internal/repository/unitofwork"
	"service-marketplace-be/pkg/events"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IAgentService interface {
	GenerateOtp(ctx context.Context, req *dto.AgentGenerateOtpRequest) (*dto.AgentGenerateOtpResponse, error)
	VerifyOtp(ctx context.Context, req *dto.AgentVerifyOtpRequest) (*dto.AgentVerifyOtpResponse, error)
	ResendOtp(ctx context.Context, req *dto.AgentGenerateOtpRequest) (*dto.AgentGenerateOtpResponse, error)

	CompleteRegistration(ctx context.Context, req *dto.CompleteRegistrationRequest, frontImageURL, backImageURL string) (*dto.CompleteRegistrationResponse, error)

	GetProfile(ctx context.Context, agentId uuid.UUID) (*dto.AgentProfileData, error)
	UpdateProfileImage(ctx context.Context, agentId uuid.UUID, imageURL string) (*dto.AgentProfileData, error)
}

type agentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	emailService     mailer.IEmailService
	logger           logger.ILogger
	cfg              *config.Config
}

func NewAgentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	emailService mailer.IEmailService,
	logger logger.ILogger,
	cfg *config.Config,
) IAgentService {
	return &agentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		emailService:     emailService,
		logger:           logger,
		cfg:              cfg,
	}
}

func (s *agentService) otpTTL() time.Duration {
	return time.Duration(s.cfg.Auth.OtpTTLMinutes) * time.Minute
}

func (s *agentService) findByChannel(ctx context.Context, uow unitofwork.UnitOfWork, email, phone string) (*entity.Agent, error) {
	if email != "" {
		return uow.AgentRepository().FindOne(ctx, specification.ByEmail{Field: "agent_email", Email: email})
	}
	return uow.AgentRepository().FindOne(ctx, specification.ByPhone{Phone: phone})
}

// GenerateOtp issues a code on whichever channel identified the agent. The
// two channels keep separate OTP fields, so an in-flight email login cannot
// clobber a phone login.
func (s *agentService) GenerateOtp(ctx context.Context, req *dto.AgentGenerateOtpRequest) (*dto.AgentGenerateOtpResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent, err := s.findByChannel(ctx, uow, req.AgentEmail, req.Phone)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, serverutils.NotFound("Agent not found")
	}

	otp := random.SixDigitOTP()
	expiresAt := time.Now().Add(s.otpTTL())

	if req.AgentEmail != "" {
		if err := uow.AgentRepository().SetEmailOtp(ctx, agent.Id, otp, expiresAt); err != nil {
			return nil, err
		}
		if err := s.emailService.SendOTP(agent.AgentEmail, otp); err != nil {
			s.logger.Error("AgentService", "failed to send OTP email", map[string]interface{}{
				"agentId": agent.Id,
				"error":   err.Error(),
			})
		}
		return &dto.AgentGenerateOtpResponse{Otp: otp, Type: "email"}, nil
	}

	if err := uow.AgentRepository().SetPhoneOtp(ctx, agent.Id, otp, expiresAt); err != nil {
		return nil, err
	}
	return &dto.AgentGenerateOtpResponse{Otp: otp, Type: "phone"}, nil
}

func (s *agentService) VerifyOtp(ctx context.Context, req *dto.AgentVerifyOtpRequest) (*dto.AgentVerifyOtpResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent, err := s.findByChannel(ctx, uow, req.AgentEmail, req.Phone)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, serverutils.NotFound("Agent not found")
	}

	if req.AgentEmail != "" {
		if agent.EmailOtp == nil || *agent.EmailOtp != req.Otp {
			return nil, serverutils.Unauthorized("Invalid OTP")
		}
		if agent.EmailOtpExpiresAt == nil || time.Now().After(*agent.EmailOtpExpiresAt) {
			return nil, serverutils.Unauthorized("OTP expired")
		}
		if err := uow.AgentRepository().MarkEmailVerified(ctx, agent.Id); err != nil {
			return nil, err
		}
	} else {
		if agent.PhoneOtp == nil || *agent.PhoneOtp != req.Otp {
			return nil, serverutils.Unauthorized("Invalid OTP")
		}
		if agent.PhoneOtpExpiresAt == nil || time.Now().After(*agent.PhoneOtpExpiresAt) {
			return nil, serverutils.Unauthorized("OTP expired")
		}
		if err := uow.AgentRepository().MarkPhoneVerified(ctx, agent.Id); err != nil {
			return nil, err
		}
	}

	if agent.AdminVerified != entity.AdminVerificationApproved {
		return nil, serverutils.Forbidden("Agent not approved by admin")
	}

	if req.FirebaseToken != "" {
		agent.FirebaseToken = req.FirebaseToken
		if err := uow.AgentRepository().Update(ctx, agent); err != nil {
			return nil, err
		}
	}

	token, err := issueToken(s.cfg.Auth.JwtSecret, agent.Id, agent.Phone, serverutils.RoleAgent)
	if err != nil {
		return nil, err
	}

	return &dto.AgentVerifyOtpResponse{
		Token: token,
		Agent: s.toProfileData(agent),
	}, nil
}

func (s *agentService) ResendOtp(ctx context.Context, req *dto.AgentGenerateOtpRequest) (*dto.AgentGenerateOtpResponse, error) {
	return s.GenerateOtp(ctx, req)
}

// CompleteRegistration creates the agent row and opens a Snap checkout for
// the registration fee. The agent stays pending until the admin verdict and
// the payment both land.
func (s *agentService) CompleteRegistration(ctx context.Context, req *dto.CompleteRegistrationRequest, frontImageURL, backImageURL string) (*dto.CompleteRegistrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AgentRepository().FindOne(ctx, specification.ByPhone{Phone: req.Phone})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.Conflict("Agent already registered with this phone")
	}

	agent := entity.Agent{
		Id:               uuid.New(),
		FullName:         req.FullName,
		AgentEmail:       req.AgentEmail,
		Phone:            req.Phone,
		Sector:           req.Sector,
		AadharNumber:     req.AadharNumber,
		AadharFrontImage: frontImageURL,
		AadharBackImage:  backImageURL,
		FirebaseToken:    req.FirebaseToken,
		AdminVerified:    entity.AdminVerificationPending,
		PaymentStatus:    entity.PaymentStatusPending,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	transactionId := random.TransactionID()
	transaction := entity.Transaction{
		Id:            uuid.New(),
		TransactionId: transactionId,
		UserId:        agent.Id,
		Kind:          entity.TransactionKindRegistrationFee,
		Amount:        s.cfg.Payment.RegistrationFee,
		Status:        entity.PaymentStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AgentRepository().Create(ctx, &agent); err != nil {
		return nil, err
	}
	if err := uow.TransactionRepository().Create(ctx, &transaction); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := &dto.CompleteRegistrationResponse{
		Agent:   s.toProfileData(&agent),
		OrderId: transactionId,
	}

	// External checkout happens after the commit so a Snap failure never
	// leaves a half-registered agent.
	if s.cfg.Payment.MidtransServerKey != "" {
		var client snap.Client
		env := midtrans.Sandbox
		if s.cfg.Payment.MidtransIsProduction {
			env = midtrans.Production
		}
		client.New(s.cfg.Payment.MidtransServerKey, env)

		snapReq := &snap.Request{
			TransactionDetails: midtrans.TransactionDetails{
				OrderID:  transactionId,
				GrossAmt: s.cfg.Payment.RegistrationFee,
			},
			CustomerDetail: &midtrans.CustomerDetails{
				FName: req.FullName,
				Email: req.AgentEmail,
				Phone: req.Phone,
			},
			Items: &[]midtrans.ItemDetails{
				{
					ID:    agent.Id.String(),
					Price: s.cfg.Payment.RegistrationFee,
					Qty:   1,
					Name:  "Agent registration fee",
				},
			},
			EnabledPayments: snap.AllSnapPaymentType,
		}

		snapResp, midErr := client.CreateTransaction(snapReq)
		if midErr != nil {
			return nil, serverutils.Unavailable("payment gateway error", fmt.Errorf("midtrans: %v", midErr.GetMessage()))
		}
		res.SnapToken = snapResp.Token
		res.RedirectURL = snapResp.RedirectURL
	}

	s.publisherService.Emit(ctx, events.BaseEvent{
		Type: events.TypeAgentRegistered,
		Data: map[string]interface{}{
			"agent_id":    agent.Id,
			"full_name":   agent.FullName,
			"phone":       agent.Phone,
			"sector":      agent.Sector,
			"occurred_at": time.Now(),
		},
		OccurredAt: time.Now(),
	})

	return res, nil
}

func (s *agentService) GetProfile(ctx context.Context, agentId uuid.UUID) (*dto.AgentProfileData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: agentId})
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, serverutils.NotFound("Agent not found")
	}
	return s.toProfileData(agent), nil
}

func (s *agentService) UpdateProfileImage(ctx context.Context, agentId uuid.UUID, imageURL string) (*dto.AgentProfileData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: agentId})
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, serverutils.NotFound("Agent not found")
	}

	agent.ProfileImage = imageURL
	agent.UpdatedAt = time.Now()
	if err := uow.AgentRepository().Update(ctx, agent); err != nil {
		return nil, err
	}
	return s.toProfileData(agent), nil
}

func (s *agentService) toProfileData(agent *entity.Agent) *dto.AgentProfileData {
	return &dto.AgentProfileData{
		Id:            agent.Id,
		FullName:      agent.FullName,
		AgentEmail:    agent.AgentEmail,
		Phone:         agent.Phone,
		Sector:        agent.Sector,
		ProfileImage:  agent.ProfileImage,
		AdminVerified: string(agent.AdminVerified),
		PaymentStatus: string(agent.PaymentStatus),
		CreatedAt:     agent.CreatedAt,
	}
}
