package workers

import (
	"testing"
	"time"

	"newsroom_backend/internal/models"
	"newsroom_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

// schedulerFakeRepo реализует только то, что нужно воркеру
type schedulerFakeRepo struct {
	posts []*models.Post
}

func (f *schedulerFakeRepo) PublishDue(_ *gorm.DB, now time.Time) (int64, error) {
	var published int64
	for _, p := range f.posts {
		if p.Status == models.PostStatusScheduled && p.ScheduledAt != nil && !p.ScheduledAt.After(now) {
			p.Status = models.PostStatusPublished
			published++
		}
	}
	return published, nil
}

func (f *schedulerFakeRepo) Create(*gorm.DB, *models.Post) error { return nil }
func (f *schedulerFakeRepo) FindByID(*gorm.DB, uint) (*models.Post, error) {
	return nil, repositories.ErrPostNotFound
}
func (f *schedulerFakeRepo) FindScoped(*gorm.DB, repositories.Scope, int, int) ([]models.Post, error) {
	return nil, nil
}
func (f *schedulerFakeRepo) FindSince(*gorm.DB, repositories.Scope, uint, int) ([]models.Post, error) {
	return nil, nil
}
func (f *schedulerFakeRepo) Save(*gorm.DB, *models.Post) error { return nil }
func (f *schedulerFakeRepo) ReplaceTopics(*gorm.DB, *models.Post, []models.Category) error {
	return nil
}
func (f *schedulerFakeRepo) UpdateStatus(*gorm.DB, uint, models.PostStatus) error { return nil }
func (f *schedulerFakeRepo) Delete(*gorm.DB, uint) error                          { return nil }
func (f *schedulerFakeRepo) CountPublishedByCategory(*gorm.DB) (map[uint]int64, error) {
	return nil, nil
}

func scheduledPost(at time.Time) *models.Post {
	return &models.Post{Status: models.PostStatusScheduled, ScheduledAt: &at}
}

func TestPublishWorkerPublishesDuePosts(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	due := scheduledPost(now.Add(-time.Minute))
	exactlyNow := scheduledPost(now)
	notYet := scheduledPost(now.Add(time.Hour))
	draft := &models.Post{Status: models.PostStatusDraft}

	repo := &schedulerFakeRepo{posts: []*models.Post{due, exactlyNow, notYet, draft}}
	worker := NewPublishWorker(nil, repo, time.Minute)
	worker.now = func() time.Time { return now }

	published, err := worker.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, int64(2), published)

	assert.Equal(t, models.PostStatusPublished, due.Status)
	assert.Equal(t, models.PostStatusPublished, exactlyNow.Status)
	assert.Equal(t, models.PostStatusScheduled, notYet.Status)
	assert.Equal(t, models.PostStatusDraft, draft.Status)
}

func TestPublishWorkerRunOnceIsIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := &schedulerFakeRepo{posts: []*models.Post{scheduledPost(now.Add(-time.Second))}}

	worker := NewPublishWorker(nil, repo, time.Minute)
	worker.now = func() time.Time { return now }

	published, err := worker.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, int64(1), published)

	// Повторный прогон ничего не находит
	published, err = worker.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, int64(0), published)
}

func TestPublishWorkerDefaultsInterval(t *testing.T) {
	worker := NewPublishWorker(nil, &schedulerFakeRepo{}, 0)
	assert.Equal(t, time.Minute, worker.interval)
}
