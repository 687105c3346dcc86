package service

import (
	"context"
	"time"

	"service-marketplace-be/internal/config"
	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/repository/specification"
	"service-marketplace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	Signup(ctx context.Context, req *dto.AdminSignupRequest) (*dto.AdminAuthResponse, error)
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminAuthResponse, error)
	GetDetail(ctx context.Context, adminId uuid.UUID) (*dto.AdminData, error)
	UpdateDetail(ctx context.Context, adminId uuid.UUID, req *dto.UpdateAdminRequest) (*dto.AdminData, error)
	ResetPassword(ctx context.Context, adminId uuid.UUID, req *dto.ResetAdminPasswordRequest) error

	ListUsers(ctx context.Context, req *dto.ListUsersRequest) (*dto.ListUsersResponse, error)
	ListAgents(ctx context.Context) (*dto.AdminListAgentsResponse, error)
	SetAgentVerdict(ctx context.Context, req *dto.AgentVerdictRequest) error
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		cfg:        cfg,
	}
}

func (s *adminService) Signup(ctx context.Context, req *dto.AdminSignupRequest) (*dto.AdminAuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Field: "email", Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.Conflict("Admin already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := entity.Admin{
		Id:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uow.AdminRepository().Create(ctx, &admin); err != nil {
		return nil, err
	}

	token, err := issueToken(s.cfg.Auth.JwtSecret, admin.Id, "", serverutils.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.AdminAuthResponse{
		Admin: s.toAdminData(&admin),
		Token: token,
	}, nil
}

func (s *adminService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminAuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Field: "email", Email: req.Email})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, serverutils.Unauthorized("Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return nil, serverutils.Unauthorized("Invalid credentials")
	}

	token, err := issueToken(s.cfg.Auth.JwtSecret, admin.Id, "", serverutils.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.AdminAuthResponse{
		Admin: s.toAdminData(admin),
		Token: token,
	}, nil
}

func (s *adminService) GetDetail(ctx context.Context, adminId uuid.UUID) (*dto.AdminData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, serverutils.NotFound("Admin not found")
	}
	return s.toAdminData(admin), nil
}

func (s *adminService) UpdateDetail(ctx context.Context, adminId uuid.UUID, req *dto.UpdateAdminRequest) (*dto.AdminData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, serverutils.NotFound("Admin not found")
	}

	admin.Name = req.Name
	admin.Email = req.Email
	admin.UpdatedAt = time.Now()
	if err := uow.AdminRepository().Update(ctx, admin); err != nil {
		return nil, err
	}
	return s.toAdminData(admin), nil
}

func (s *adminService) ResetPassword(ctx context.Context, adminId uuid.UUID, req *dto.ResetAdminPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return serverutils.ValidationFailed("Passwords do not match")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return err
	}
	if admin == nil {
		return serverutils.NotFound("Admin not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uow.AdminRepository().UpdatePassword(ctx, adminId, string(hash))
}

func (s *adminService) ListUsers(ctx context.Context, req *dto.ListUsersRequest) (*dto.ListUsersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}

	specs := []specification.Specification{}
	if req.Search != "" {
		specs = append(specs, specification.SearchByNameOrPhone{NameField: "full_name", Term: req.Search})
	}

	total, err := uow.UserRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	users, err := uow.UserRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	data := make([]*dto.UserProfileData, 0, len(users))
	for _, user := range users {
		data = append(data, &dto.UserProfileData{
			Id:           user.Id,
			FullName:     user.FullName,
			UserEmail:    user.UserEmail,
			Dob:          user.Dob,
			Gender:       string(user.Gender),
			Phone:        user.Phone,
			ProfileImage: user.ProfileImage,
			IsVerified:   user.IsVerified,
			CreatedAt:    user.CreatedAt,
		})
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &dto.ListUsersResponse{
		Users:       data,
		TotalUsers:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (s *adminService) ListAgents(ctx context.Context) (*dto.AdminListAgentsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agents, err := uow.AgentRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	data := make([]*dto.AgentProfileData, 0, len(agents))
	for _, agent := range agents {
		data = append(data, &dto.AgentProfileData{
			Id:            agent.Id,
			FullName:      agent.FullName,
			AgentEmail:    agent.AgentEmail,
			Phone:         agent.Phone,
			Sector:        agent.Sector,
			ProfileImage:  agent.ProfileImage,
			AdminVerified: string(agent.AdminVerified),
			PaymentStatus: string(agent.PaymentStatus),
			CreatedAt:     agent.CreatedAt,
		})
	}
	return &dto.AdminListAgentsResponse{Agents: data}, nil
}

func (s *adminService) SetAgentVerdict(ctx context.Context, req *dto.AgentVerdictRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: req.AgentId})
	if err != nil {
		return err
	}
	if agent == nil {
		return serverutils.NotFound("Agent not found")
	}

	return uow.AgentRepository().SetAdminVerdict(ctx, req.AgentId, entity.AdminVerification(req.Verdict))
}

func (s *adminService) toAdminData(admin *entity.Admin) *dto.AdminData {
	return &dto.AdminData{
		Id:    admin.Id,
		Name:  admin.Name,
		Email: admin.Email,
	}
}
