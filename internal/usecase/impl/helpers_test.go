package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore is an in-memory credential and recipe store used to check
// behavior across several calls.
type memoryStore struct {
	mu      sync.Mutex
	nextID  int64
	users   map[string]*entity.User
	recipes []*entity.Recipe
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: map[string]*entity.User{}}
}

func (s *memoryStore) id() int64 {
	s.nextID++

	return s.nextID
}

func (s *memoryStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *user

	return &found, nil
}

func (s *memoryStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return repository.ErrUserEmailTaken
	}
	user.ID = s.id()
	stored := *user
	s.users[user.Email] = &stored

	return nil
}

func (s *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memoryStore) NewUserRepository() repository.UserRepository { return s }

func (s *memoryStore) NewRecipeRepository() repository.RecipeRepository { return (*memoryRecipes)(s) }

func (s *memoryStore) userCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}

// memoryRecipes is the recipe view of memoryStore.
type memoryRecipes memoryStore

func (r *memoryRecipes) Create(_ context.Context, recipe *entity.Recipe) error {
	s := (*memoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe.ID = s.id()
	stored := *recipe
	s.recipes = append(s.recipes, &stored)

	return nil
}

func (r *memoryRecipes) FindByUser(_ context.Context, userID int64) ([]*entity.Recipe, error) {
	s := (*memoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var owned []*entity.Recipe
	for _, recipe := range s.recipes {
		if recipe.UserID == userID {
			found := *recipe
			owned = append(owned, &found)
		}
	}

	return owned, nil
}

func (r *memoryRecipes) Delete(_ context.Context, id, userID int64) error {
	s := (*memoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, recipe := range s.recipes {
		if recipe.ID == id && recipe.UserID == userID {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)

			return nil
		}
	}

	return repository.ErrRecipeNotFound
}
