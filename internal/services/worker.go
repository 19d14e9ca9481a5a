package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pmportal/internship-matcher/internal/repositories"
)

// Worker drains a queue of student IDs and regenerates matches for each.
// Generation is idempotent, so duplicate or concurrent enqueues are
// harmless. A ticker periodically enqueues the whole population so matches
// stay fresh as internships come and go.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueStudent(studentID uuid.UUID)
}

type worker struct {
	engine       MatchingEngine
	studentRepo  repositories.StudentRepository
	queue        chan uuid.UUID
	concurrency  int
	refreshEvery time.Duration
	logger       *zap.Logger
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewWorker(
	engine MatchingEngine,
	studentRepo repositories.StudentRepository,
	concurrency int,
	queueSize int,
	refreshEvery time.Duration,
	logger *zap.Logger,
) Worker {
	return &worker{
		engine:       engine,
		studentRepo:  studentRepo,
		queue:        make(chan uuid.UUID, queueSize),
		concurrency:  concurrency,
		refreshEvery: refreshEvery,
		logger:       logger,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.logger.Info("starting match refresh worker", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processQueue(ctx, i+1)
	}

	w.wg.Add(1)
	go w.refreshLoop(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("match refresh worker stopped")
}

// EnqueueStudent implements Worker.
func (w *worker) EnqueueStudent(studentID uuid.UUID) {
	select {
	case w.queue <- studentID:
	case <-w.stopChan:
		w.logger.Warn("worker stopped, dropping refresh request",
			zap.String("student_id", studentID.String()))
	default:
		// Queue is full; the periodic refresh will catch this student.
		w.logger.Warn("refresh queue full, dropping request",
			zap.String("student_id", studentID.String()))
	}
}

func (w *worker) processQueue(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case studentID := <-w.queue:
			if _, err := w.engine.GenerateMatchesForStudent(ctx, studentID); err != nil {
				w.logger.Warn("background match generation failed",
					zap.Int("worker", workerID),
					zap.String("student_id", studentID.String()),
					zap.Error(err))
			}
		}
	}
}

func (w *worker) refreshLoop(ctx context.Context) {
	defer w.wg.Done()

	if w.refreshEvery <= 0 {
		return
	}

	ticker := time.NewTicker(w.refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			students, err := w.studentRepo.FindAll()
			if err != nil {
				w.logger.Warn("refresh tick failed to list students", zap.Error(err))
				continue
			}
			for i := range students {
				w.EnqueueStudent(students[i].ID)
			}
			w.logger.Debug("enqueued full match refresh", zap.Int("students", len(students)))
		}
	}
}
