// Package helpers seeds database rows for integration tests.
package helpers

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/internal/investmentrepo"
	"github.com/go-petr/pet-invest/internal/productrepo"
	"github.com/go-petr/pet-invest/internal/sessionrepo"
	"github.com/go-petr/pet-invest/internal/userrepo"
	"github.com/go-petr/pet-invest/pkg/dbpkg"
	"github.com/go-petr/pet-invest/pkg/passpkg"
	"github.com/go-petr/pet-invest/pkg/randompkg"
)

// SeedPassword is the plain password of every seeded user.
const SeedPassword = "qwerty123"

// SeedUser creates a random user with the given wallet balance.
func SeedUser(t *testing.T, db dbpkg.SQLInterface, balance decimal.Decimal, appetite *domain.RiskLevel) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(SeedPassword)
	if err != nil {
		t.Fatalf("passpkg.Hash(%q) returned error: %v", SeedPassword, err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Username(),
		HashedPassword: hashedPassword,
		FullName:       randompkg.String(10),
		Email:          randompkg.Email(),
		Balance:        balance,
		RiskAppetite:   appetite,
	}

	user, err := userrepo.NewRepoPGS(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("userRepo.Create(%+v) returned error: %v", arg, err)
	}

	return user
}

// SeedAdmin creates a random user with catalog management rights.
func SeedAdmin(t *testing.T, db dbpkg.SQLInterface) domain.User {
	t.Helper()

	user := SeedUser(t, db, decimal.Zero, nil)

	if _, err := db.ExecContext(context.Background(), `UPDATE users SET is_admin = TRUE WHERE id = $1`, user.ID); err != nil {
		t.Fatalf("promoting %v to admin returned error: %v", user.ID, err)
	}

	user.IsAdmin = true

	return user
}

// SeedProduct creates an active product. Zero fields of arg get defaults.
func SeedProduct(t *testing.T, db dbpkg.SQLInterface, arg domain.CreateProductParams) domain.Product {
	t.Helper()

	if arg.Name == "" {
		arg.Name = "Bond " + randompkg.String(6)
	}
	if arg.InvestmentType == "" {
		arg.InvestmentType = domain.TypeBond
	}
	if arg.TenureMonths == 0 {
		arg.TenureMonths = 12
	}
	if arg.AnnualYield.IsZero() {
		arg.AnnualYield = decimal.RequireFromString("12.00")
	}
	if arg.RiskLevel == "" {
		arg.RiskLevel = domain.RiskLow
	}
	if arg.MinInvestment.IsZero() {
		arg.MinInvestment = decimal.NewFromInt(1000)
	}

	arg.IsActive = true

	product, err := productrepo.NewRepoPGS(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("productRepo.Create(%+v) returned error: %v", arg, err)
	}

	return product
}

// SeedSession stores a refresh token session.
func SeedSession(t *testing.T, db dbpkg.SQLInterface, arg domain.CreateSessionParams) domain.Session {
	t.Helper()

	session, err := sessionrepo.NewRepoPGS(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("sessionRepo.Create(%+v) returned error: %v", arg, err)
	}

	return session
}

// SeedInvestment books an investment through the ledger so the wallet is debited.
func SeedInvestment(t *testing.T, db *sql.DB, user domain.User, product domain.Product, amount decimal.Decimal, maturity time.Time) domain.Investment {
	t.Helper()

	arg := domain.CreateInvestmentParams{
		UserID:         user.ID,
		ProductID:      product.ID,
		Amount:         amount,
		ExpectedReturn: domain.ExpectedReturn(amount, product.AnnualYield, product.TenureMonths),
		MaturityDate:   maturity,
	}

	result, err := investmentrepo.NewRepoPGS(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("investmentRepo.Create(%+v) returned error: %v", arg, err)
	}

	return result.Investment
}
