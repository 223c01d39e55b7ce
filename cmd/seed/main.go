package main

import (
	"fmt"
	"os"

	"reconstruction/internal/config"
	"reconstruction/internal/database"
	"reconstruction/internal/logger"
	"reconstruction/internal/models"
	"reconstruction/internal/pagination"
	"reconstruction/internal/services"
)

type payment struct {
	phase   int
	method  string
	amount  float64
	invoice bool
}

type article struct {
	name     string
	budget   float64
	notes    string
	payments []payment
}

type category struct {
	name     string
	budget   float64
	articles []article
}

// sample is an opening ledger taken from an architect's cost sheet. Every
// payment is dated the first day of the project.
var sample = []category{
	{name: "Architect", budget: 6130.75, articles: []article{
		{name: "Architecture project", budget: 5500, notes: "Paid in several phases", payments: []payment{
			{1, models.PaymentMethodCash, 1100, false},
			{2, models.PaymentMethodCash, 1100, false},
			{3, models.PaymentMethodCash, 1100, false},
			{4, models.PaymentMethodCash, 1100, false},
			{5, models.PaymentMethodBankTransfer, 1100, true},
		}},
		{name: "Materials review and assistance", budget: 300, payments: []payment{
			{1, models.PaymentMethodBankTransfer, 300, false},
		}},
		{name: "Permit sign", budget: 30.75, notes: "25 + VAT", payments: []payment{
			{1, models.PaymentMethodMobileWallet, 30.75, false},
		}},
	}},
	{name: "Contractor", budget: 35530, articles: []article{
		{name: "Contract signature", budget: 8500, payments: []payment{
			{0, models.PaymentMethodCash, 8500, false},
		}},
		{name: "Phase 1", budget: 27030, payments: []payment{
			{1, models.PaymentMethodBankTransfer, 27030, true},
		}},
	}},
	{name: "Electrician", budget: 850, articles: []article{
		{name: "Service Drop", budget: 850, notes: "900 + VAT", payments: []payment{
			{0, models.PaymentMethodCash, 850, false},
		}},
	}},
	{name: "Plumber", budget: 80, articles: []article{
		{name: "Water point and AC lines", budget: 80, payments: []payment{
			{1, models.PaymentMethodMobileWallet, 80, false},
		}},
	}},
	{name: "Machinery", budget: 1777.22, articles: []article{
		{name: "Excavator", budget: 595, payments: []payment{{0, models.PaymentMethodCash, 595, false}}},
		{name: "Vans", budget: 752.5, payments: []payment{{0, models.PaymentMethodCash, 752.5, false}}},
		{name: "Machine transport", budget: 70, payments: []payment{{0, models.PaymentMethodCash, 70, false}}},
		{name: "Aggregate mix", budget: 359.72, notes: "DST", payments: []payment{{0, models.PaymentMethodCash, 359.72, true}}},
	}},
	{name: "Municipality", budget: 613, articles: []article{
		{name: "Public road occupancy - application", budget: 8.35, payments: []payment{
			{1, models.PaymentMethodCard, 8.35, true},
		}},
		{name: "Public road occupancy - licence", budget: 565.4, payments: []payment{
			{1, models.PaymentMethodServiceFee, 565.4, false},
		}},
		{name: "Reduced VAT request - application", budget: 26.35, payments: []payment{
			{1, models.PaymentMethodCard, 26.35, false},
		}},
		{name: "Reduced VAT request - fee", budget: 12.9, payments: []payment{
			{1, models.PaymentMethodServiceFee, 12.9, false},
		}},
	}},
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	categories := services.NewCategoryService(db)
	articles := services.NewArticleService(db)
	transactions := services.NewTransactionService(db)

	existing, err := categories.ListCategories(pagination.PageRequest{Page: 1, PageSize: 1})
	if err != nil {
		return err
	}
	if existing.TotalItems > 0 {
		log.Info("Database already has data, skipping seed")
		return nil
	}

	day := models.NewDate(2025, 1, 1)
	var txnCount int
	for _, c := range sample {
		budget := c.budget
		cat, err := categories.CreateCategory(c.name, nil, &budget)
		if err != nil {
			return fmt.Errorf("category %q: %w", c.name, err)
		}
		for _, a := range c.articles {
			amount := a.budget
			var notes *string
			if a.notes != "" {
				n := a.notes
				notes = &n
			}
			art, err := articles.CreateArticle(cat.ID, a.name, &amount, notes)
			if err != nil {
				return fmt.Errorf("article %q: %w", a.name, err)
			}
			for _, p := range a.payments {
				value := p.amount
				var phase *int
				if p.phase > 0 {
					ph := p.phase
					phase = &ph
				}
				if _, err := transactions.CreateTransaction(services.NewTransaction{
					ArticleID:       art.ID,
					TransactionDate: day,
					PaymentMethod:   p.method,
					Amount:          &value,
					HasInvoice:      p.invoice,
					PhaseNumber:     phase,
				}); err != nil {
					return fmt.Errorf("payment for %q: %w", a.name, err)
				}
				txnCount++
			}
		}
	}

	log.Infow("Seed complete", "categories", len(sample), "transactions", txnCount)
	return nil
}
