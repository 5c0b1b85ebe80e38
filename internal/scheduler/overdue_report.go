package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/catalog/internal/entities"
)

// DefaultOverdueSchedule runs the report every morning at 08:00.
const DefaultOverdueSchedule = "0 8 * * *"

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks that schedule is a five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// NextRunTime returns the first activation of schedule after from.
func NextRunTime(schedule string, from time.Time) (time.Time, error) {
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(from), nil
}

// OverdueStore lists copies whose loan has expired.
type OverdueStore interface {
	ListOverdueInstances(ctx context.Context, asOf time.Time) ([]entities.BookInstance, error)
}

// OverdueReport is the outcome of one report run.
type OverdueReport struct {
	CheckedAt time.Time
	Overdue   []entities.BookInstance
}

// OverdueReportScheduler periodically logs the copies that are on loan past their due date.
// It only reads: statuses are never changed.
type OverdueReportScheduler struct {
	store    OverdueStore
	schedule string
	now      func() time.Time

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc

	// guards isChecking separately so Stop can wait for a running report
	checkMu    sync.Mutex
	isChecking bool
}

// NewOverdueReportScheduler creates a new scheduler instance.
// An empty schedule falls back to DefaultOverdueSchedule.
func NewOverdueReportScheduler(store OverdueStore, schedule string) *OverdueReportScheduler {
	if schedule == "" {
		schedule = DefaultOverdueSchedule
	}
	return &OverdueReportScheduler{
		store:    store,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start schedules the report. It stops by itself when ctx is cancelled.
func (s *OverdueReportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runScheduled()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule overdue report: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunTime(s.schedule, s.now())
	log.Printf("Overdue report scheduler: started with schedule '%s'. Next run: %v", s.schedule, nextRun)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running report to finish and stops the scheduler.
func (s *OverdueReportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("Overdue report scheduler: stopped")
}

func (s *OverdueReportScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the report will run next, or nil when stopped.
func (s *OverdueReportScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *OverdueReportScheduler) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		log.Printf("Overdue report: %v", err)
	}
}

// RunOnce produces the report immediately and logs one line per overdue copy.
// Concurrent runs are skipped and return an empty report.
func (s *OverdueReportScheduler) RunOnce(ctx context.Context) (OverdueReport, error) {
	s.checkMu.Lock()
	if s.isChecking {
		s.checkMu.Unlock()
		log.Printf("Overdue report: skipped (already running)")
		return OverdueReport{}, nil
	}
	s.isChecking = true
	s.checkMu.Unlock()

	defer func() {
		s.checkMu.Lock()
		s.isChecking = false
		s.checkMu.Unlock()
	}()

	report := OverdueReport{CheckedAt: s.now()}
	overdue, err := s.store.ListOverdueInstances(ctx, report.CheckedAt)
	if err != nil {
		return OverdueReport{}, fmt.Errorf("list overdue copies: %w", err)
	}
	report.Overdue = overdue

	if len(overdue) == 0 {
		log.Printf("Overdue report: no copies past due")
		return report, nil
	}

	for _, instance := range overdue {
		log.Printf("Overdue report: %s due back %s", instance.String(), instance.DueBack.Format("2006-01-02"))
	}
	log.Printf("Overdue report: %d copies past due", len(overdue))
	return report, nil
}
