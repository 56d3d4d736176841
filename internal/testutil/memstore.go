package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/delivery-marketplace/internal/audit"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/verification"
	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

// MemStore is an in-memory fake of the account and verification
// repositories. Listing calls ignore filters and return every record.
type MemStore struct {
	mu       sync.Mutex
	seq      uint
	Users    map[uint]*models.User
	Boys     map[uint]*models.DeliveryBoy
	Shops    map[uint]*models.RetailerShop
	Profiles map[uint]*models.Customer

	// Err, when set, is returned by every call.
	Err error
}

func NewMemStore() *MemStore {
	return &MemStore{
		Users:    map[uint]*models.User{},
		Boys:     map[uint]*models.DeliveryBoy{},
		Shops:    map[uint]*models.RetailerShop{},
		Profiles: map[uint]*models.Customer{},
	}
}

func (m *MemStore) next() uint {
	m.seq++
	return m.seq
}

// --------------------------------------------------
// account.Repository
// --------------------------------------------------

func (m *MemStore) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MemStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MemStore) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createUser(u)
}

func (m *MemStore) createUser(u *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Users {
		if existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	u.ID = m.next()
	cp := *u
	m.Users[u.ID] = &cp
	return nil
}

func (m *MemStore) RegisterCustomer(_ context.Context, u *models.User, c *models.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.createUser(u); err != nil {
		return err
	}
	c.ID = m.next()
	c.UserID = u.ID
	cp := *c
	m.Profiles[c.ID] = &cp
	return nil
}

func (m *MemStore) RegisterRetailer(_ context.Context, u *models.User, shop *models.RetailerShop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.createUser(u); err != nil {
		return err
	}
	shop.ID = m.next()
	shop.UserID = u.ID
	cp := *shop
	m.Shops[shop.ID] = &cp
	return nil
}

func (m *MemStore) RegisterDeliveryBoy(_ context.Context, u *models.User, d *models.DeliveryBoy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.createUser(u); err != nil {
		return err
	}
	d.ID = m.next()
	d.UserID = u.ID
	cp := *d
	m.Boys[d.ID] = &cp
	return nil
}

func (m *MemStore) UpdateUserName(_ context.Context, id uint, name string) error {
	return m.updateUser(id, func(u *models.User) { u.Name = name })
}

func (m *MemStore) SetUserBlocked(_ context.Context, id uint, blocked bool) error {
	return m.updateUser(id, func(u *models.User) { u.IsBlocked = blocked })
}

func (m *MemStore) updateUser(id uint, fn func(*models.User)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	u, ok := m.Users[id]
	if !ok {
		return domain.ErrNotFound
	}
	fn(u)
	return nil
}

func (m *MemStore) ListUsers(_ context.Context, _ listing.Params) ([]models.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, 0, m.Err
	}
	out := make([]models.User, 0, len(m.Users))
	for _, id := range sortedKeys(m.Users) {
		out = append(out, *m.Users[id])
	}
	return out, int64(len(out)), nil
}

func (m *MemStore) CountUsersByRole(_ context.Context) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]int64{}
	for _, u := range m.Users {
		out[u.Role]++
	}
	return out, m.Err
}

func (m *MemStore) CountBlockedUsers(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, u := range m.Users {
		if u.IsBlocked {
			n++
		}
	}
	return n, m.Err
}

// --------------------------------------------------
// verification repositories
// --------------------------------------------------

func (m *MemStore) GetDeliveryBoyByID(_ context.Context, id uint) (*models.DeliveryBoy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	d, ok := m.Boys[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	if u, ok := m.Users[d.UserID]; ok {
		cp.User = *u
	}
	return &cp, nil
}

func (m *MemStore) UpdateDeliveryBoyVerification(_ context.Context, d *models.DeliveryBoy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	stored, ok := m.Boys[d.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.VerificationStatus = d.VerificationStatus
	stored.IsVerified = d.IsVerified
	return nil
}

func (m *MemStore) ListPendingDeliveryBoys(_ context.Context) ([]models.DeliveryBoy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.DeliveryBoy
	for _, id := range sortedKeys(m.Boys) {
		if d := m.Boys[id]; d.VerificationStatus == string(verification.StatusPending) {
			out = append(out, *d)
		}
	}
	return out, m.Err
}

func (m *MemStore) ListDeliveryBoys(_ context.Context, _ listing.Params) ([]models.DeliveryBoy, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.DeliveryBoy, 0, len(m.Boys))
	for _, id := range sortedKeys(m.Boys) {
		out = append(out, *m.Boys[id])
	}
	return out, int64(len(out)), m.Err
}

func (m *MemStore) CountDeliveryBoysByStatus(_ context.Context) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]int64{}
	for _, d := range m.Boys {
		out[d.VerificationStatus]++
	}
	return out, m.Err
}

func (m *MemStore) GetRetailerByID(_ context.Context, id uint) (*models.RetailerShop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	s, ok := m.Shops[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MemStore) GetRetailerByUserID(_ context.Context, userID uint) (*models.RetailerShop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, s := range m.Shops {
		if s.UserID == userID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MemStore) UpdateRetailerVerification(_ context.Context, shop *models.RetailerShop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	stored, ok := m.Shops[shop.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.VerificationStatus = shop.VerificationStatus
	stored.IsVerified = shop.IsVerified
	return nil
}

func (m *MemStore) ListRetailers(_ context.Context, _ listing.Params) ([]models.RetailerShop, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.RetailerShop, 0, len(m.Shops))
	for _, id := range sortedKeys(m.Shops) {
		out = append(out, *m.Shops[id])
	}
	return out, int64(len(out)), m.Err
}

func (m *MemStore) CountRetailersByStatus(_ context.Context) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]int64{}
	for _, s := range m.Shops {
		out[s.VerificationStatus]++
	}
	return out, m.Err
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// --------------------------------------------------
// audit
// --------------------------------------------------

// Recorder collects dispatched audit events.
type Recorder struct {
	mu     sync.Mutex
	Events []audit.Event
}

func (r *Recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
}

func (r *Recorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Events))
	for _, ev := range r.Events {
		out = append(out, ev.Action)
	}
	return out
}

var (
	_ account.Repository                 = (*MemStore)(nil)
	_ verification.DeliveryBoyRepository = (*MemStore)(nil)
	_ verification.RetailerRepository    = (*MemStore)(nil)
	_ audit.Recorder                     = (*Recorder)(nil)
)
