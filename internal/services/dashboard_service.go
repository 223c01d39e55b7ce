package services

import (
	"time"

	"gorm.io/gorm"

	"reconstruction/internal/ledger"
	"reconstruction/internal/models"
)

// RecentLimit is how many transactions the dashboard lists as recent.
const RecentLimit = 10

// dashboardService composes dashboard views from a ledger snapshot and the
// reminder store. The reminder queries run outside the snapshot
// transaction, so a view may combine two slightly different instants.
type dashboardService struct {
	db        *gorm.DB
	reminders PendingReminderSource
	now       func() time.Time
	loc       *time.Location
}

// NewDashboardService creates a new DashboardServicer. now and loc decide
// what "today" is when a view is requested without an explicit day.
func NewDashboardService(db *gorm.DB, reminders PendingReminderSource, now func() time.Time, loc *time.Location) DashboardServicer {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &dashboardService{db: db, reminders: reminders, now: now, loc: loc}
}

func (s *dashboardService) resolve(day *models.Date) models.Date {
	if day != nil {
		return *day
	}
	return ledger.Today(s.now(), s.loc)
}

// Today returns the spend of one day together with pending reminders and
// the most recent transactions.
func (s *dashboardService) Today(day *models.Date) (*TodayView, error) {
	d := s.resolve(day)

	snap, err := loadSnapshot(s.db)
	if err != nil {
		return nil, err
	}
	count, err := s.reminders.CountPending()
	if err != nil {
		return nil, err
	}
	pending, err := s.reminders.ListPending()
	if err != nil {
		return nil, err
	}

	totals := ledger.Day(snap, d)
	split := ledger.ReportSplit(totals.Spent, totals.Invoices)

	return &TodayView{
		Date:                d,
		TotalSpent:          split.Total,
		TotalWithInvoice:    split.With,
		TotalWithoutInvoice: split.Without,
		Transactions:        snap.Annotate(totals.Transactions),
		PendingReminders:    count,
		Reminders:           pending,
		RecentTransactions:  snap.Annotate(ledger.MostRecent(snap.Transactions, RecentLimit)),
	}, nil
}

// Week returns the spend of the Monday..Sunday week containing day.
func (s *dashboardService) Week(day *models.Date) (*WeekView, error) {
	d := s.resolve(day)

	snap, err := loadSnapshot(s.db)
	if err != nil {
		return nil, err
	}

	totals := ledger.Week(snap, d)
	split := ledger.ReportSplit(totals.Spent, totals.Invoices)

	days := make([]DaySummary, 0, len(totals.Days))
	for _, dt := range totals.Days {
		ds := ledger.ReportSplit(dt.Spent, dt.Invoices)
		days = append(days, DaySummary{
			Date:                dt.Date,
			TotalSpent:          ds.Total,
			TotalWithInvoice:    ds.With,
			TotalWithoutInvoice: ds.Without,
			TransactionCount:    len(dt.Transactions),
		})
	}

	return &WeekView{
		StartOfWeek:         totals.Start,
		EndOfWeek:           totals.End,
		TotalSpent:          split.Total,
		TotalWithInvoice:    split.With,
		TotalWithoutInvoice: split.Without,
		Days:                days,
		Transactions:        snap.Annotate(totals.Transactions),
	}, nil
}

// Overview returns whole-project totals, a per-category breakdown and the
// most recent transactions.
func (s *dashboardService) Overview() (*OverviewView, error) {
	snap, err := loadSnapshot(s.db)
	if err != nil {
		return nil, err
	}
	count, err := s.reminders.CountPending()
	if err != nil {
		return nil, err
	}

	report := ledger.Summarize(snap).Report()

	categories := make([]CategoryOverview, 0, len(report.Categories))
	for _, c := range report.Categories {
		categories = append(categories, CategoryOverview{
			ID:          c.ID,
			Name:        c.Name,
			Budgeted:    c.BudgetedTotal,
			Spent:       c.TotalSpent,
			Invoiced:    c.TotalWithInvoice,
			NotInvoiced: c.TotalWithoutInvoice,
			Articles:    c.ArticleCount,
		})
	}

	return &OverviewView{
		TotalBudgeted:      report.TotalBudgeted,
		TotalSpent:         report.TotalSpent,
		TotalInvoiced:      report.TotalWithInvoice,
		TotalNotInvoiced:   report.TotalWithoutInvoice,
		PendingReminders:   count,
		Categories:         categories,
		RecentTransactions: snap.Annotate(ledger.MostRecent(snap.Transactions, RecentLimit)),
	}, nil
}
