package service

import (
	"context"
	"sync"

	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// mockUserRepo is an in-memory UserRepository for service tests.
type mockUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return utils.NewDuplicateError("User", constants.ColumnUsername, user.Username)
		}
		if existing.Email == user.Email {
			return utils.NewDuplicateError("User", constants.ColumnEmail, user.Email)
		}
	}

	user.ID = m.nextID
	m.nextID++
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, utils.NewNotFoundError("User", id)
	}
	clone := *user
	return &clone, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, utils.NewNotFoundError("User", username)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, utils.NewNotFoundError("User", email)
}

func (m *mockUserRepo) Update(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return utils.NewNotFoundError("User", user.ID)
	}

	for id, existing := range m.users {
		if id == user.ID {
			continue
		}
		if existing.Username == user.Username {
			return utils.NewDuplicateError("User", constants.ColumnUsername, user.Username)
		}
		if existing.Email == user.Email {
			return utils.NewDuplicateError("User", constants.ColumnEmail, user.Email)
		}
	}

	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepo) UpdateImage(_ context.Context, id int64, imageFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.ImageFile = imageFile
	return nil
}

func (m *mockUserRepo) ChangePassword(_ context.Context, id int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.PasswordHash = passwordHash
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return utils.NewNotFoundError("User", id)
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// mockSessionRepo is an in-memory SessionRepository for service tests.
type mockSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: map[string]*models.Session{}}
}

func (m *mockSessionRepo) Create(_ context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *session
	m.sessions[session.JWTID] = &clone
	return nil
}

func (m *mockSessionRepo) GetByJWTID(_ context.Context, jwtID string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[jwtID]
	if !ok {
		return nil, utils.NewNotFoundError("Session", jwtID)
	}
	clone := *session
	return &clone, nil
}

func (m *mockSessionRepo) IsValidSession(_ context.Context, jwtID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[jwtID]
	return ok && !session.IsExpired(), nil
}

func (m *mockSessionRepo) DeleteByJWTID(_ context.Context, jwtID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[jwtID]; !ok {
		return utils.NewNotFoundError("Session", jwtID)
	}
	delete(m.sessions, jwtID)
	return nil
}

func (m *mockSessionRepo) DeleteByUserID(_ context.Context, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for jwtID, session := range m.sessions {
		if session.UserID == userID {
			delete(m.sessions, jwtID)
			deleted++
		}
	}
	return deleted, nil
}

func (m *mockSessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for jwtID, session := range m.sessions {
		if session.IsExpired() {
			delete(m.sessions, jwtID)
			deleted++
		}
	}
	return deleted, nil
}

func (m *mockSessionRepo) GetActiveByUserID(_ context.Context, userID int64) ([]*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessions := []*models.Session{}
	for _, session := range m.sessions {
		if session.UserID == userID && !session.IsExpired() {
			clone := *session
			sessions = append(sessions, &clone)
		}
	}
	return sessions, nil
}

func (m *mockSessionRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// mockPostRepo is an in-memory PostRepository for service tests.
type mockPostRepo struct {
	mu     sync.Mutex
	posts  map[int64]*models.Post
	nextID int64
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: map[int64]*models.Post{}, nextID: 1}
}

func (m *mockPostRepo) Create(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	post.ID = m.nextID
	m.nextID++
	clone := *post
	m.posts[post.ID] = &clone
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id int64) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, utils.NewNotFoundError("Post", id)
	}
	clone := *post
	return &clone, nil
}

func (m *mockPostRepo) Update(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.posts[post.ID]
	if !ok {
		return utils.NewNotFoundError("Post", post.ID)
	}
	stored.Title = post.Title
	stored.Content = post.Content
	return nil
}

func (m *mockPostRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return utils.NewNotFoundError("Post", id)
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) sortedNewestFirst() []*models.Post {
	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	for i := 0; i < len(posts); i++ {
		for j := i + 1; j < len(posts); j++ {
			if posts[j].CreatedAt.After(posts[i].CreatedAt) {
				posts[i], posts[j] = posts[j], posts[i]
			}
		}
	}
	return posts
}

func (m *mockPostRepo) List(_ context.Context, limit, offset int) ([]*models.PostWithAuthor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return pageOf(m.sortedNewestFirst(), limit, offset), nil
}

func (m *mockPostRepo) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts), nil
}

func (m *mockPostRepo) ListByAuthor(_ context.Context, userID int64, limit, offset int) ([]*models.PostWithAuthor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byAuthor := []*models.Post{}
	for _, post := range m.sortedNewestFirst() {
		if post.UserID == userID {
			byAuthor = append(byAuthor, post)
		}
	}
	return pageOf(byAuthor, limit, offset), nil
}

func (m *mockPostRepo) CountByAuthor(_ context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, post := range m.posts {
		if post.UserID == userID {
			count++
		}
	}
	return count, nil
}

func pageOf(posts []*models.Post, limit, offset int) []*models.PostWithAuthor {
	page := []*models.PostWithAuthor{}
	for i := offset; i < len(posts) && len(page) < limit; i++ {
		page = append(page, &models.PostWithAuthor{Post: *posts[i]})
	}
	return page
}

// mockEmailSender captures outgoing reset emails.
type mockEmailSender struct {
	mu   sync.Mutex
	sent []sentEmail
}

type sentEmail struct {
	to    string
	token string
}

func (m *mockEmailSender) SendPasswordReset(toEmail, _ string, resetToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, sentEmail{to: toEmail, token: resetToken})
	return nil
}

func (m *mockEmailSender) lastSent() (sentEmail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return sentEmail{}, false
	}
	return m.sent[len(m.sent)-1], true
}
