package api

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/jwhitley/storefront-api/internal/domain"
	"github.com/jwhitley/storefront-api/internal/store"
)

// fakeUserStore is an in-memory store.UserStore used by handler tests.
// Setting failWith makes every operation fail with that error, simulating
// storage failures.
type fakeUserStore struct {
	mu       sync.Mutex
	users    map[int64]domain.User
	nextID   int64
	failWith error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]domain.User)}
}

var _ store.UserStore = (*fakeUserStore)(nil)

func (f *fakeUserStore) List(ctx context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) Create(ctx context.Context, params domain.CreateUser) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.nextID++
	u := domain.User{ID: f.nextID, Name: params.Name, Email: params.Email}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserStore) Update(
	ctx context.Context,
	id int64,
	params domain.UpdateUser,
) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	existing, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	resolved := params.Apply(existing)
	f.users[id] = resolved
	return &resolved, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

// fakeProductStore is the product counterpart of fakeUserStore.
type fakeProductStore struct {
	mu       sync.Mutex
	products map[int64]domain.Product
	nextID   int64
	failWith error
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[int64]domain.Product)}
}

var _ store.ProductStore = (*fakeProductStore)(nil)

func (f *fakeProductStore) List(ctx context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.products[id]
	if !ok {
		return nil, store.ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeProductStore) Create(
	ctx context.Context,
	params domain.CreateProduct,
) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.nextID++
	p := domain.Product{
		ID:          f.nextID,
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
	}
	f.products[p.ID] = p
	return &p, nil
}

func (f *fakeProductStore) Update(
	ctx context.Context,
	id int64,
	params domain.UpdateProduct,
) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	existing, ok := f.products[id]
	if !ok {
		return nil, store.ErrProductNotFound
	}
	resolved := params.Apply(existing)
	f.products[id] = resolved
	return &resolved, nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.products[id]; !ok {
		return store.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

// newTestRouter mounts the handlers on the same route shapes production
// uses so path-parameter parsing is exercised for real.
func newTestRouter(users *fakeUserStore, products *fakeProductStore) http.Handler {
	r := chi.NewRouter()

	if users != nil {
		h := NewUserHandler(users, nil)
		r.Route("/api/v1/users", func(r chi.Router) {
			r.Get("/", h.List)
			r.Post("/", h.Create)
			r.Get("/{id}", h.Get)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	}

	if products != nil {
		h := NewProductHandler(products, nil)
		r.Route("/api/v1/products", func(r chi.Router) {
			r.Get("/", h.List)
			r.Post("/", h.Create)
			r.Get("/{id}", h.Get)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	}

	return r
}
