// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/pkg/currencypkg"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/go-petr/pet-invest/pkg/passpkg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	UpdateRiskAppetite(ctx context.Context, id uuid.UUID, level *domain.RiskLevel) (domain.User, error)
}

// WalletReader provides the wallet balance of a user.
type WalletReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo          Repo
	wallet        WalletReader
	formatter     currencypkg.Formatter
	signupBalance decimal.Decimal
}

// New return user service struct to manage user bussines logic.
//
// New wallets are credited with signupBalance.
func New(ur Repo, wallet WalletReader, formatter currencypkg.Formatter, signupBalance decimal.Decimal) *Service {
	return &Service{
		repo:          ur,
		wallet:        wallet,
		formatter:     formatter,
		signupBalance: signupBalance,
	}
}

// Create creates and returns user.
func (s *Service) Create(ctx context.Context, username, password, fullname, email string, riskAppetite *domain.RiskLevel) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.User{}, errorspkg.ErrInternal
	}

	arg := domain.CreateUserParams{
		Username:       username,
		HashedPassword: hashedPassword,
		FullName:       fullname,
		Email:          email,
		Balance:        s.signupBalance,
		RiskAppetite:   riskAppetite,
	}

	return s.repo.Create(ctx, arg)
}

// CheckPassword checks if the password is valid for the given username.
func (s *Service) CheckPassword(ctx context.Context, username, pass string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	gotUser, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return domain.User{}, err
	}

	err = passpkg.Check(pass, gotUser.HashedPassword)
	if err != nil {
		l.Warn().Err(err).Send()
		return domain.User{}, domain.ErrWrongPassword
	}

	return gotUser, nil
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateRiskAppetite sets or clears the risk appetite used for alerts and recommendations.
func (s *Service) UpdateRiskAppetite(ctx context.Context, id uuid.UUID, level *domain.RiskLevel) (domain.User, error) {
	if level != nil && !level.Valid() {
		return domain.User{}, domain.ErrInvalidRiskLevel
	}

	return s.repo.UpdateRiskAppetite(ctx, id, level)
}

// Wallet returns the current wallet balance of the user.
func (s *Service) Wallet(ctx context.Context, id uuid.UUID) (domain.Wallet, error) {
	balance, err := s.wallet.GetBalance(ctx, id)
	if err != nil {
		return domain.Wallet{}, err
	}

	return domain.Wallet{
		Balance:   balance,
		Currency:  s.formatter.Code(),
		Formatted: s.formatter.Format(balance),
	}, nil
}
