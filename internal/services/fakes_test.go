package services

import (
	"context"
	"io"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"acsp_backend/internal/models"
	"acsp_backend/internal/repositories"
)

// In-memory stand-ins for the Mongo repositories, the image host and the
// mail relay. They mimic the real implementations closely enough for
// service-level tests: sentinel errors, duplicate detection, copies on
// read so mutations only persist through Update.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}

	user.ID = primitive.NewObjectID()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.findBy(func(u *models.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) FindByVerificationToken(_ context.Context, token string) (*models.User, error) {
	return r.findBy(func(u *models.User) bool {
		return token != "" && u.VerificationToken == token
	})
}

func (r *fakeUserRepo) FindByResetToken(_ context.Context, token string) (*models.User, error) {
	return r.findBy(func(u *models.User) bool {
		return token != "" && u.ResetToken == token
	})
}

func (r *fakeUserRepo) findBy(match func(*models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if match(user) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) matching(filter repositories.UserFilter) []models.User {
	var out []models.User
	for _, user := range r.users {
		if filter.Status != "" && user.Status != filter.Status {
			continue
		}
		if filter.Role != "" && user.Role != filter.Role {
			continue
		}
		out = append(out, *user)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *fakeUserRepo) FindAll(_ context.Context, filter repositories.UserFilter) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.matching(filter)
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * filter.Limit
		if start > len(out) {
			start = len(out)
		}
		end := start + filter.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context, filter repositories.UserFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.matching(filter))), nil
}

// seed stores a user directly, bypassing Create's duplicate check.
func (r *fakeUserRepo) seed(user *models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	r.users[user.ID] = &stored
	return user
}

type fakeMailService struct {
	mu                sync.Mutex
	verificationSent  int
	welcomeSent       int
	resetSent         int
	profileVerified   int
	accountStatusSent int
	adminNotified     int
	lastToken         string
	lastReason        string
}

func (m *fakeMailService) SendVerificationEmail(_ *models.User, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verificationSent++
	m.lastToken = token
}

func (m *fakeMailService) SendWelcomeEmail(_ *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.welcomeSent++
}

func (m *fakeMailService) SendPasswordResetEmail(_ *models.User, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetSent++
	m.lastToken = token
}

func (m *fakeMailService) SendProfileVerifiedEmail(_ *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profileVerified++
}

func (m *fakeMailService) SendAccountStatusEmail(_ *models.User, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountStatusSent++
	m.lastReason = reason
}

func (m *fakeMailService) SendAdminNewUserNotification(_ *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adminNotified++
}

type fakeForumRepo struct {
	mu      sync.Mutex
	forums  map[primitive.ObjectID]*models.Forum
	threads map[primitive.ObjectID]*models.ForumThread
	posts   map[primitive.ObjectID]*models.ForumPost
}

func newFakeForumRepo() *fakeForumRepo {
	return &fakeForumRepo{
		forums:  make(map[primitive.ObjectID]*models.Forum),
		threads: make(map[primitive.ObjectID]*models.ForumThread),
		posts:   make(map[primitive.ObjectID]*models.ForumPost),
	}
}

func (r *fakeForumRepo) ListForums(_ context.Context) ([]models.Forum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Forum
	for _, f := range r.forums {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeForumRepo) CreateForum(_ context.Context, forum *models.Forum) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.forums {
		if existing.Name == forum.Name {
			return repositories.ErrForumAlreadyExists
		}
	}

	forum.ID = primitive.NewObjectID()
	stored := *forum
	r.forums[forum.ID] = &stored
	return nil
}

func (r *fakeForumRepo) FindForum(_ context.Context, id primitive.ObjectID) (*models.Forum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	forum, ok := r.forums[id]
	if !ok {
		return nil, repositories.ErrForumNotFound
	}
	clone := *forum
	return &clone, nil
}

func (r *fakeForumRepo) DeleteForum(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.forums[id]; !ok {
		return repositories.ErrForumNotFound
	}
	delete(r.forums, id)

	for tid, thread := range r.threads {
		if thread.ForumID == id {
			delete(r.threads, tid)
			for pid, post := range r.posts {
				if post.ThreadID == tid {
					delete(r.posts, pid)
				}
			}
		}
	}
	return nil
}

func (r *fakeForumRepo) ListThreads(_ context.Context, forumID primitive.ObjectID) ([]models.ForumThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ForumThread
	for _, t := range r.threads {
		if t.ForumID == forumID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeForumRepo) CreateThread(_ context.Context, thread *models.ForumThread) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	thread.ID = primitive.NewObjectID()
	stored := *thread
	r.threads[thread.ID] = &stored
	return nil
}

func (r *fakeForumRepo) FindThread(_ context.Context, id primitive.ObjectID) (*models.ForumThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	thread, ok := r.threads[id]
	if !ok {
		return nil, repositories.ErrThreadNotFound
	}
	clone := *thread
	return &clone, nil
}

func (r *fakeForumRepo) DeleteThread(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.threads[id]; !ok {
		return repositories.ErrThreadNotFound
	}
	delete(r.threads, id)

	for pid, post := range r.posts {
		if post.ThreadID == id {
			delete(r.posts, pid)
		}
	}
	return nil
}

func (r *fakeForumRepo) ListPosts(_ context.Context, threadID primitive.ObjectID, statuses []models.PostStatus) ([]models.ForumPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ForumPost
	for _, post := range r.posts {
		if post.ThreadID != threadID {
			continue
		}
		if len(statuses) > 0 {
			match := false
			for _, s := range statuses {
				if post.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *post)
	}
	return out, nil
}

func (r *fakeForumRepo) ListPostsByStatus(_ context.Context, status models.PostStatus) ([]models.ForumPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ForumPost
	for _, post := range r.posts {
		if post.Status == status {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (r *fakeForumRepo) CreatePost(_ context.Context, post *models.ForumPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = primitive.NewObjectID()
	stored := *post
	r.posts[post.ID] = &stored

	if thread, ok := r.threads[post.ThreadID]; ok {
		thread.ReplyCount++
	}
	return nil
}

func (r *fakeForumRepo) FindPost(_ context.Context, id primitive.ObjectID) (*models.ForumPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrPostNotFound
	}
	clone := *post
	return &clone, nil
}

func (r *fakeForumRepo) UpdatePost(_ context.Context, post *models.ForumPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return repositories.ErrPostNotFound
	}
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *fakeForumRepo) DeletePost(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return repositories.ErrPostNotFound
	}
	delete(r.posts, id)

	if thread, ok := r.threads[post.ThreadID]; ok && thread.ReplyCount > 0 {
		thread.ReplyCount--
	}
	return nil
}

func (r *fakeForumRepo) ToggleLike(_ context.Context, postID, userID primitive.ObjectID) (*models.ForumPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[postID]
	if !ok {
		return nil, repositories.ErrPostNotFound
	}

	liked := -1
	for i, id := range post.LikedBy {
		if id == userID {
			liked = i
			break
		}
	}

	if liked >= 0 {
		post.LikedBy = append(post.LikedBy[:liked], post.LikedBy[liked+1:]...)
		post.Likes--
	} else {
		post.LikedBy = append(post.LikedBy, userID)
		post.Likes++
	}

	clone := *post
	return &clone, nil
}

type fakeStorage struct {
	mu       sync.Mutex
	uploads  []string
	uploaded map[string]string // path -> content type
	err      error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploaded: make(map[string]string)}
}

func (s *fakeStorage) Upload(_ context.Context, path string, reader io.Reader, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return "", s.err
	}
	if _, err := io.ReadAll(reader); err != nil {
		return "", err
	}
	s.uploads = append(s.uploads, path)
	s.uploaded[path] = contentType
	return "https://img.example.com/" + path, nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.uploaded, path)
	return nil
}
