package customer

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaincustomer "github.com/BruksfildServices01/delivery-marketplace/internal/domain/customer"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/delivery-marketplace/internal/infra/storage"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
	"github.com/BruksfildServices01/delivery-marketplace/internal/testutil"
)

type fakeImages struct {
	calls int
	url   string
	err   error
}

func (f *fakeImages) SaveProfileImage(_ context.Context, _ uint, r io.Reader) (string, error) {
	f.calls++
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	return f.url, f.err
}

type env struct {
	users     *repository.UserGormRepository
	customers *repository.CustomerGormRepository
	images    *fakeImages
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)
	return &env{
		users:     repository.NewUserGormRepository(db),
		customers: repository.NewCustomerGormRepository(db),
		images:    &fakeImages{url: "https://cdn.example.com/profiles/1/a.webp"},
	}
}

// bareUser creates a customer user without a customer row.
func (e *env) bareUser(t *testing.T) *models.User {
	t.Helper()
	u := &models.User{Name: "Cara", Email: "cara@example.com", PasswordHash: "x", Role: "customer"}
	require.NoError(t, e.users.CreateUser(context.Background(), u))
	return u
}

func ptr[T any](v T) *T { return &v }

func defaults(addrs []models.Address) []uint {
	var out []uint
	for _, a := range addrs {
		if a.IsDefault {
			out = append(out, a.ID)
		}
	}
	return out
}

// ===============================
// Profile
// ===============================

func TestGetProfile_MissingCustomerReadsAsDefaults(t *testing.T) {
	e := newEnv(t)
	u := e.bareUser(t)

	p, err := NewGetProfile(e.users, e.customers).Execute(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cara", p.Name)
	assert.Equal(t, "", p.Phone)
	assert.NotNil(t, p.Addresses)
	assert.Empty(t, p.Addresses)

	// Reading did not create the row.
	_, err = e.customers.GetCustomerByUserID(context.Background(), u.ID)
	assert.Error(t, err)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	e := newEnv(t)
	_, err := NewGetProfile(e.users, e.customers).Execute(context.Background(), 42)
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestUpdateProfile_LazyCreateWithImage(t *testing.T) {
	e := newEnv(t)
	u := e.bareUser(t)
	ctx := context.Background()

	p, err := NewUpdateProfile(e.users, e.customers, e.images).Execute(ctx, u.ID, ProfileUpdate{
		Name:  ptr(" Cara Lee "),
		Phone: ptr("5559876"),
		Image: strings.NewReader("png bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cara Lee", p.Name)
	assert.Equal(t, "5559876", p.Phone)
	assert.Equal(t, e.images.url, p.ProfileImageURL)
	assert.Equal(t, 1, e.images.calls)

	c, err := e.customers.GetCustomerByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "5559876", c.Phone)
	assert.Equal(t, e.images.url, c.ProfileImageURL)

	got, err := e.users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cara Lee", got.Name)
}

func TestUpdateProfile_Rejections(t *testing.T) {
	e := newEnv(t)
	u := e.bareUser(t)
	ctx := context.Background()
	uc := NewUpdateProfile(e.users, e.customers, e.images)

	_, err := uc.Execute(ctx, u.ID, ProfileUpdate{Name: ptr("  ")})
	assert.True(t, httperr.IsBusiness(err, "invalid_request"))

	_, err = uc.Execute(ctx, u.ID, ProfileUpdate{Phone: ptr("abc")})
	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))

	e.images.err = storage.ErrInvalidImage
	_, err = uc.Execute(ctx, u.ID, ProfileUpdate{Image: strings.NewReader("x")})
	assert.True(t, httperr.IsBusiness(err, "invalid_image"))

	boom := errors.New("s3 down")
	e.images.err = boom
	_, err = uc.Execute(ctx, u.ID, ProfileUpdate{Image: strings.NewReader("x")})
	assert.ErrorIs(t, err, boom)
}

// ===============================
// Addresses
// ===============================

func TestAddresses_ExactlyOneDefault(t *testing.T) {
	e := newEnv(t)
	u := e.bareUser(t)
	ctx := context.Background()
	uc := NewAddresses(e.customers)

	first, err := uc.Add(ctx, u.ID, models.Address{Street: "1 Main", City: "Pune"})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := uc.Add(ctx, u.ID, models.Address{Street: "2 Main", City: "Pune", IsDefault: true})
	require.NoError(t, err)

	list, err := uc.List(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{second.ID}, defaults(list))

	list, err = uc.SetDefault(ctx, u.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{first.ID}, defaults(list))

	_, err = uc.Update(ctx, u.ID, second.ID, domaincustomer.AddressPatch{IsDefault: ptr(true), City: ptr("Mumbai")})
	require.NoError(t, err)
	list, err = uc.List(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{second.ID}, defaults(list))
	assert.Equal(t, "Mumbai", list[1].City)
}

func TestAddresses_UnsetOnlyDefaultAndDelete(t *testing.T) {
	e := newEnv(t)
	u := e.bareUser(t)
	ctx := context.Background()
	uc := NewAddresses(e.customers)

	a, err := uc.Add(ctx, u.ID, models.Address{Street: "1 Main", City: "Pune"})
	require.NoError(t, err)
	b, err := uc.Add(ctx, u.ID, models.Address{Street: "2 Main", City: "Pune"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, u.ID, a.ID, domaincustomer.AddressPatch{IsDefault: ptr(false)})
	require.NoError(t, err)
	list, err := uc.List(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, defaults(list))

	_, err = uc.SetDefault(ctx, u.ID, b.ID)
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, u.ID, b.ID))

	list, err = uc.List(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, defaults(list))
}

func TestAddresses_ForeignAndMissing(t *testing.T) {
	e := newEnv(t)
	owner := e.bareUser(t)
	ctx := context.Background()
	uc := NewAddresses(e.customers)

	other := &models.User{Name: "Olly", Email: "olly@example.com", PasswordHash: "x", Role: "customer"}
	require.NoError(t, e.users.CreateUser(ctx, other))

	a, err := uc.Add(ctx, owner.ID, models.Address{Street: "1 Main", City: "Pune"})
	require.NoError(t, err)

	// other has no customer row yet.
	assert.True(t, httperr.IsBusiness(uc.Delete(ctx, other.ID, a.ID), "address_not_found"))

	_, err = uc.Add(ctx, other.ID, models.Address{Street: "9 Side", City: "Pune"})
	require.NoError(t, err)

	assert.True(t, httperr.IsBusiness(uc.Delete(ctx, other.ID, a.ID), "address_not_found"))
	_, err = uc.SetDefault(ctx, other.ID, a.ID)
	assert.True(t, httperr.IsBusiness(err, "address_not_found"))
	_, err = uc.Update(ctx, other.ID, a.ID, domaincustomer.AddressPatch{City: ptr("X")})
	assert.True(t, httperr.IsBusiness(err, "address_not_found"))

	empty, err := uc.List(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
}

func TestAddresses_Validation(t *testing.T) {
	e := newEnv(t)
	u := e.bareUser(t)
	uc := NewAddresses(e.customers)

	_, err := uc.Add(context.Background(), u.ID, models.Address{City: "Pune"})
	assert.True(t, httperr.IsBusiness(err, "invalid_address"))

	_, err = uc.Add(context.Background(), u.ID, models.Address{Street: "1 Main", City: "Pune", ZipCode: "#"})
	assert.True(t, httperr.IsBusiness(err, "invalid_address"))
}

// ===============================
// Dashboard
// ===============================

func TestDashboard(t *testing.T) {
	e := newEnv(t)
	u := e.bareUser(t)
	ctx := context.Background()

	d, err := NewDashboard(e.users, e.customers).Execute(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cara", d.Name)
	assert.Zero(t, d.AddressCount)
	assert.Nil(t, d.DefaultAddress)

	uc := NewAddresses(e.customers)
	first, err := uc.Add(ctx, u.ID, models.Address{Street: "1 Main", City: "Pune"})
	require.NoError(t, err)
	_, err = uc.Add(ctx, u.ID, models.Address{Street: "2 Main", City: "Pune"})
	require.NoError(t, err)

	d, err = NewDashboard(e.users, e.customers).Execute(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, d.AddressCount)
	require.NotNil(t, d.DefaultAddress)
	assert.Equal(t, first.ID, d.DefaultAddress.ID)
}
