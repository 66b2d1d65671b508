package echo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	e "github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	addressapp "github.com/mohammadpnp/contact-book/internal/application/address"
	contactapp "github.com/mohammadpnp/contact-book/internal/application/contact"
	userapp "github.com/mohammadpnp/contact-book/internal/application/user"
	addressdomain "github.com/mohammadpnp/contact-book/internal/domain/address"
	contactdomain "github.com/mohammadpnp/contact-book/internal/domain/contact"
	userdomain "github.com/mohammadpnp/contact-book/internal/domain/user"
	api "github.com/mohammadpnp/contact-book/internal/interfaces/http/echo"
)

// stores back the whole API with in-memory state so handler tests exercise
// the real use cases end to end.
type stores struct {
	users     map[string]userdomain.User
	contacts  map[int64]contactdomain.Contact
	addresses map[int64]addressdomain.Address

	nextContactID int64
	nextAddressID int64
}

func newStores() *stores {
	return &stores{
		users:         map[string]userdomain.User{},
		contacts:      map[int64]contactdomain.Contact{},
		addresses:     map[int64]addressdomain.Address{},
		nextContactID: 1,
		nextAddressID: 1,
	}
}

type userStore struct{ s *stores }

func (r userStore) Create(ctx context.Context, u userdomain.User) error {
	if _, ok := r.s.users[u.Username]; ok {
		return userdomain.ErrUsernameTaken
	}
	r.s.users[u.Username] = u
	return nil
}

func (r userStore) FindByUsername(ctx context.Context, username string) (*userdomain.User, error) {
	u, ok := r.s.users[username]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return &u, nil
}

func (r userStore) FindByToken(ctx context.Context, token string) (*userdomain.User, error) {
	for _, u := range r.s.users {
		if u.Token != nil && *u.Token == token {
			matched := u
			return &matched, nil
		}
	}
	return nil, userdomain.ErrUserNotFound
}

func (r userStore) CountByUsername(ctx context.Context, username string) (int64, error) {
	if _, ok := r.s.users[username]; ok {
		return 1, nil
	}
	return 0, nil
}

func (r userStore) Update(ctx context.Context, u userdomain.User) error {
	stored := r.s.users[u.Username]
	stored.Name = u.Name
	stored.Password = u.Password
	stored.Username = u.Username
	r.s.users[u.Username] = stored
	return nil
}

func (r userStore) UpdateToken(ctx context.Context, username string, token *string) error {
	stored := r.s.users[username]
	stored.Token = token
	r.s.users[username] = stored
	return nil
}

type contactStore struct{ s *stores }

func (r contactStore) Create(ctx context.Context, c *contactdomain.Contact) error {
	c.ID = r.s.nextContactID
	r.s.nextContactID++
	r.s.contacts[c.ID] = *c
	return nil
}

func (r contactStore) FindByIDAndOwner(ctx context.Context, id int64, username string) (*contactdomain.Contact, error) {
	c, ok := r.s.contacts[id]
	if !ok || c.Username != username {
		return nil, contactdomain.ErrContactNotFound
	}
	return &c, nil
}

func (r contactStore) Update(ctx context.Context, c contactdomain.Contact) error {
	r.s.contacts[c.ID] = c
	return nil
}

func (r contactStore) Delete(ctx context.Context, id int64, username string) error {
	delete(r.s.contacts, id)
	return nil
}

func (r contactStore) matches(c contactdomain.Contact, username string, f contactdomain.SearchFilter) bool {
	if c.Username != username {
		return false
	}
	contains := func(field *string, term string) bool {
		return field != nil && strings.Contains(strings.ToLower(*field), strings.ToLower(term))
	}
	if f.Name != nil && !contains(c.FirstName, *f.Name) && !contains(c.LastName, *f.Name) {
		return false
	}
	if f.Email != nil && !contains(c.Email, *f.Email) {
		return false
	}
	if f.Phone != nil && !contains(c.Phone, *f.Phone) {
		return false
	}
	return true
}

func (r contactStore) Search(ctx context.Context, username string, f contactdomain.SearchFilter, limit, offset int) ([]contactdomain.Contact, error) {
	var all []contactdomain.Contact
	for id := int64(1); id < r.s.nextContactID; id++ {
		if c, ok := r.s.contacts[id]; ok && r.matches(c, username, f) {
			all = append(all, c)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r contactStore) Count(ctx context.Context, username string, f contactdomain.SearchFilter) (int64, error) {
	var total int64
	for _, c := range r.s.contacts {
		if r.matches(c, username, f) {
			total++
		}
	}
	return total, nil
}

type addressStore struct{ s *stores }

func (r addressStore) Create(ctx context.Context, a *addressdomain.Address) error {
	a.ID = r.s.nextAddressID
	r.s.nextAddressID++
	r.s.addresses[a.ID] = *a
	return nil
}

func (r addressStore) FindByIDAndContact(ctx context.Context, id, contactID int64) (*addressdomain.Address, error) {
	a, ok := r.s.addresses[id]
	if !ok || a.ContactID != contactID {
		return nil, addressdomain.ErrAddressNotFound
	}
	return &a, nil
}

func (r addressStore) ListByContact(ctx context.Context, contactID int64) ([]addressdomain.Address, error) {
	var out []addressdomain.Address
	for id := int64(1); id < r.s.nextAddressID; id++ {
		if a, ok := r.s.addresses[id]; ok && a.ContactID == contactID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r addressStore) Update(ctx context.Context, a addressdomain.Address) error {
	r.s.addresses[a.ID] = a
	return nil
}

func (r addressStore) Delete(ctx context.Context, id, contactID int64) error {
	delete(r.s.addresses, id)
	return nil
}

func newTestServer(t *testing.T) (*e.Echo, *stores) {
	t.Helper()

	s := newStores()
	logger := zap.NewNop()
	users := userStore{s}
	contacts := contactStore{s}
	addresses := addressStore{s}

	userHandler := api.NewUserHandler(
		userapp.NewRegister(users, bcrypt.MinCost, logger),
		userapp.NewLogin(users, logger),
		userapp.NewCurrent(logger),
		userapp.NewUpdateCurrent(users, bcrypt.MinCost, logger),
		userapp.NewLogout(users, logger),
	)
	contactHandler := api.NewContactHandler(
		contactapp.NewCreate(contacts, logger),
		contactapp.NewGet(contacts, logger),
		contactapp.NewUpdate(contacts, logger),
		contactapp.NewDelete(contacts, logger),
		contactapp.NewSearch(contacts, logger),
	)
	addressHandler := api.NewAddressHandler(
		addressapp.NewCreate(contacts, addresses, logger),
		addressapp.NewGet(contacts, addresses, logger),
		addressapp.NewUpdate(contacts, addresses, logger),
		addressapp.NewDelete(contacts, addresses, logger),
		addressapp.NewList(contacts, addresses, logger),
	)

	server := e.New()
	api.RegisterRoutes(server, users, userHandler, contactHandler, addressHandler)

	return server, s
}

// seedSession registers a user with an active token, bypassing the API.
func seedSession(t *testing.T, s *stores, username, token string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	tok := token
	s.users[username] = userdomain.User{
		Username: username,
		Password: string(hashed),
		Name:     strings.ToUpper(username[:1]) + username[1:],
		Token:    &tok,
	}
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     string          `json:"errors"`
	Paging     *struct {
		CurrentPage int64 `json:"current_page"`
		TotalPage   int64 `json:"total_page"`
		Size        int64 `json:"size"`
	} `json:"paging"`
}

func doRequest(t *testing.T, server *e.Echo, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(e.HeaderContentType, e.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, env envelope, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("expected status %d, got %d (%s)", want, rec.Code, rec.Body.String())
	}
	if env.StatusCode != want {
		t.Fatalf("envelope status %d does not match %d", env.StatusCode, want)
	}
}
