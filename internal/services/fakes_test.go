package services

import (
	"sort"
	"time"

	"newsroom_backend/internal/email"
	"newsroom_backend/internal/models"
	"newsroom_backend/internal/repositories"

	"gorm.io/gorm"
)

// Фейковые репозитории для юнит-тестов доменной логики.
// Параметр db игнорируется; scope фейк применить не может,
// поэтому тесты, которым нужна видимость, проверяют visibleTo напрямую.

type fakePostRepo struct {
	nextID uint
	posts  map[uint]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint]*models.Post)}
}

func (f *fakePostRepo) Create(_ *gorm.DB, post *models.Post) error {
	f.nextID++
	post.ID = f.nextID
	clone := *post
	f.posts[post.ID] = &clone
	return nil
}

func (f *fakePostRepo) FindByID(_ *gorm.DB, id uint) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, repositories.ErrPostNotFound
	}
	clone := *post
	return &clone, nil
}

func (f *fakePostRepo) sorted() []models.Post {
	out := make([]models.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakePostRepo) FindScoped(_ *gorm.DB, _ repositories.Scope, limit, offset int) ([]models.Post, error) {
	all := f.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakePostRepo) FindSince(_ *gorm.DB, _ repositories.Scope, lastID uint, limit int) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.sorted() {
		if p.ID > lastID {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakePostRepo) Save(_ *gorm.DB, post *models.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return repositories.ErrPostNotFound
	}
	clone := *post
	f.posts[post.ID] = &clone
	return nil
}

func (f *fakePostRepo) ReplaceTopics(_ *gorm.DB, post *models.Post, topics []models.Category) error {
	stored, ok := f.posts[post.ID]
	if !ok {
		return repositories.ErrPostNotFound
	}
	stored.Topics = topics
	post.Topics = topics
	return nil
}

func (f *fakePostRepo) UpdateStatus(_ *gorm.DB, id uint, status models.PostStatus) error {
	post, ok := f.posts[id]
	if !ok {
		return repositories.ErrPostNotFound
	}
	post.Status = status
	return nil
}

func (f *fakePostRepo) Delete(_ *gorm.DB, id uint) error {
	if _, ok := f.posts[id]; !ok {
		return repositories.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) CountPublishedByCategory(_ *gorm.DB) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	for _, p := range f.posts {
		if p.Status == models.PostStatusPublished && p.CategoryID != nil {
			counts[*p.CategoryID]++
		}
	}
	return counts, nil
}

func (f *fakePostRepo) PublishDue(_ *gorm.DB, now time.Time) (int64, error) {
	var published int64
	for _, p := range f.posts {
		if p.Status == models.PostStatusScheduled && p.ScheduledAt != nil && !p.ScheduledAt.After(now) {
			p.Status = models.PostStatusPublished
			published++
		}
	}
	return published, nil
}

type fakeUserRepo struct {
	nextID uint
	users  map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ *gorm.DB, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if _, ok := f.users[user.Username]; ok {
		return repositories.ErrUserAlreadyExists
	}
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.users[user.Username] = &clone
	return nil
}

func (f *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	if _, ok := f.users[user.Username]; !ok {
		return repositories.ErrUserNotFound
	}
	clone := *user
	f.users[user.Username] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(_ *gorm.DB, id uint) error {
	for username, u := range f.users {
		if u.ID == id {
			delete(f.users, username)
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(_ *gorm.DB, limit, offset int) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(f.users)), nil
}

// recordingEmailProvider запоминает отправленные коды
type recordingEmailProvider struct {
	lastVerificationTo   string
	lastVerificationCode string
	lastResetTo          string
	lastResetCode        string
	sent                 int
}

func (p *recordingEmailProvider) Send(*email.Email) error { p.sent++; return nil }

func (p *recordingEmailProvider) SendVerification(to, code string) error {
	p.sent++
	p.lastVerificationTo = to
	p.lastVerificationCode = code
	return nil
}

func (p *recordingEmailProvider) SendPasswordReset(to, code string) error {
	p.sent++
	p.lastResetTo = to
	p.lastResetCode = code
	return nil
}

type fakeCategoryRepo struct {
	nextID     uint
	categories map[uint]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint]*models.Category)}
}

func (f *fakeCategoryRepo) add(name string, parentID *uint) *models.Category {
	f.nextID++
	c := &models.Category{Name: name, ParentID: parentID}
	c.ID = f.nextID
	f.categories[c.ID] = c
	return c
}

func (f *fakeCategoryRepo) FindByID(_ *gorm.DB, id uint) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, repositories.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCategoryRepo) FindByIDs(_ *gorm.DB, ids []uint) ([]models.Category, error) {
	seen := make(map[uint]bool)
	var out []models.Category
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if c, ok := f.categories[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindAll(_ *gorm.DB, limit, offset int) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryRepo) Create(_ *gorm.DB, category *models.Category) error {
	f.nextID++
	category.ID = f.nextID
	clone := *category
	f.categories[category.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) Update(_ *gorm.DB, category *models.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return repositories.ErrCategoryNotFound
	}
	clone := *category
	f.categories[category.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) Delete(_ *gorm.DB, id uint) error {
	if _, ok := f.categories[id]; !ok {
		return repositories.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) HasAny(_ *gorm.DB) (bool, error) {
	return len(f.categories) > 0, nil
}

type bookmarkKey struct {
	userID uint
	postID uint
}

type fakeBookmarkRepo struct {
	nextID    uint
	bookmarks map[bookmarkKey]*models.Bookmark
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{bookmarks: make(map[bookmarkKey]*models.Bookmark)}
}

func (f *fakeBookmarkRepo) Create(_ *gorm.DB, bookmark *models.Bookmark) error {
	key := bookmarkKey{bookmark.UserID, bookmark.PostID}
	if _, ok := f.bookmarks[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	bookmark.ID = f.nextID
	clone := *bookmark
	f.bookmarks[key] = &clone
	return nil
}

func (f *fakeBookmarkRepo) FindByUser(_ *gorm.DB, userID uint) ([]models.Bookmark, error) {
	var out []models.Bookmark
	for key, b := range f.bookmarks {
		if key.userID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBookmarkRepo) FindByUserAndPost(_ *gorm.DB, userID, postID uint) (*models.Bookmark, error) {
	b, ok := f.bookmarks[bookmarkKey{userID, postID}]
	if !ok {
		return nil, repositories.ErrBookmarkNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookmarkRepo) Delete(_ *gorm.DB, userID, postID uint) error {
	key := bookmarkKey{userID, postID}
	if _, ok := f.bookmarks[key]; !ok {
		return repositories.ErrBookmarkNotFound
	}
	delete(f.bookmarks, key)
	return nil
}
