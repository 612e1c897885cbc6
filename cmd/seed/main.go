// Package main provides a CLI tool for seeding the database with
// initial data: the admin user, default payment methods, and the
// starter procedure catalog.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"protheo/internal/core/apperror"
	"protheo/internal/domain/auth"
	"protheo/internal/domain/catalogs/paymentmethod"
	"protheo/internal/domain/catalogs/procedure"
	"protheo/internal/domain/settings"
	"protheo/internal/infrastructure/storage/postgres"
	"protheo/internal/infrastructure/storage/postgres/auth_repo"
	"protheo/internal/infrastructure/storage/postgres/catalog_repo"
	"protheo/internal/infrastructure/storage/postgres/settings_repo"
	"protheo/pkg/logger"
	"protheo/pkg/numerator"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)
	numeratorService := numerator.New(pool)

	if err := seedAdminUser(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}
	if err := seedProcedures(ctx, txManager, numeratorService, log); err != nil {
		log.Fatalw("failed to seed procedures", "error", err)
	}
	if err := seedPaymentMethods(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed payment methods", "error", err)
	}
	if err := seedCompanySettings(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed company settings", "error", err)
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, txm *postgres.TxManager, log *logger.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@protheo.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	jwtService := auth.NewJWTService(auth.DefaultJWTConfig("seed-only"))
	service := auth.NewService(auth_repo.NewUserRepo(txm), jwtService, auth.DefaultServiceConfig())

	user, err := service.Register(ctx, auth.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     "Administrador",
		Role:     auth.RoleAdmin,
	})
	if err != nil {
		if apperror.IsConflict(err) {
			log.Infow("admin user already exists", "email", email)
			return nil
		}
		return err
	}

	log.Infow("admin user created", "email", email, "user_id", user.ID)
	return nil
}

func seedProcedures(ctx context.Context, txm *postgres.TxManager, num *numerator.Service, log *logger.Logger) error {
	repo := catalog_repo.NewProcedureRepo(txm)
	service := procedure.NewService(repo, num)

	catalog := []struct {
		code     string
		name     string
		price    string
		category string
		order    int
	}{
		{"PRO-001", "Coroa Zircônia Monolítica", "220.00", "Prótese Fixa", 1},
		{"PRO-002", "Prótese Total Convencional", "1100.00", "Prótese Removível", 2},
		{"PRO-003", "Protocolo Cerâmico Superior", "3500.00", "Implante", 3},
		{"PRO-004", "Placa Miorrelaxante Acetato", "180.00", "Ortodontia", 4},
		{"PRO-005", "Inlay/Onlay E-max", "280.00", "Estética", 5},
	}

	for _, entry := range catalog {
		exists, err := repo.ExistsByCode(ctx, entry.code)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		p := procedure.New(entry.code, entry.name, decimal.RequireFromString(entry.price))
		category := entry.category
		p.Category = &category
		p.DisplayOrder = entry.order

		if err := service.Create(ctx, p); err != nil {
			return err
		}
		log.Infow("procedure seeded", "code", entry.code, "name", entry.name)
	}

	return nil
}

func seedPaymentMethods(ctx context.Context, txm *postgres.TxManager, log *logger.Logger) error {
	service := paymentmethod.NewService(catalog_repo.NewPaymentMethodRepo(txm))

	methods := []struct {
		name   string
		typ    paymentmethod.Type
		active bool
	}{
		{"PIX à Vista", paymentmethod.TypePix, true},
		{"Cartão de Crédito 1x", paymentmethod.TypeCredit, true},
		{"Boleto Bancário", paymentmethod.TypeTransfer, false},
		{"Dinheiro", paymentmethod.TypeCash, true},
	}

	for _, entry := range methods {
		_, err := service.GetByName(ctx, entry.name)
		if err == nil {
			continue
		}
		if !apperror.IsNotFound(err) {
			return err
		}

		m := paymentmethod.New(entry.name, entry.typ)
		m.Active = entry.active

		if err := service.Create(ctx, m); err != nil {
			return err
		}
		log.Infow("payment method seeded", "name", entry.name, "type", entry.typ)
	}

	return nil
}

func seedCompanySettings(ctx context.Context, txm *postgres.TxManager, log *logger.Logger) error {
	repo := settings_repo.NewSettingsRepo(txm)

	_, err := repo.Get(ctx)
	if err == nil {
		log.Info("company settings already present")
		return nil
	}
	if !apperror.IsNotFound(err) {
		return err
	}

	service := settings.NewService(repo)
	if _, err := service.Save(ctx, settings.Default()); err != nil {
		return err
	}

	log.Info("company settings seeded")
	return nil
}
