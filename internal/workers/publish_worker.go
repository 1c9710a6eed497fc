package workers

import (
	"context"
	"time"

	"newsroom_backend/internal/logger"
	"newsroom_backend/internal/repositories"

	"gorm.io/gorm"
)

// PublishWorker переводит созревшие отложенные посты в published.
// Единственное место, где происходит переход scheduled -> published.
// Рассчитан на один экземпляр приложения; батч атомарен на уровне
// одного UPDATE, поэтому повторный прогон безопасен.
type PublishWorker struct {
	db       *gorm.DB
	postRepo repositories.PostRepository
	interval time.Duration
	now      func() time.Time
}

func NewPublishWorker(db *gorm.DB, postRepo repositories.PostRepository, interval time.Duration) *PublishWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PublishWorker{
		db:       db,
		postRepo: postRepo,
		interval: interval,
		now:      time.Now,
	}
}

// Start запускает фоновую публикацию отложенных постов
func (w *PublishWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *PublishWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("publish worker started", "interval", w.interval.String())

	for {
		select {
		case <-ctx.Done():
			logger.Info("publish worker stopped")
			return
		case <-ticker.C:
			// Ошибка не фатальна: следующий тик повторит попытку
			if _, err := w.RunOnce(); err != nil {
				logger.WorkerLog("publish_worker", "publish_due", err)
			}
		}
	}
}

// RunOnce публикует один батч и возвращает число затронутых постов
func (w *PublishWorker) RunOnce() (int64, error) {
	published, err := w.postRepo.PublishDue(w.db, w.now())
	if err != nil {
		return 0, err
	}
	if published > 0 {
		logger.Info("scheduled posts published", "count", published)
	}
	return published, nil
}
