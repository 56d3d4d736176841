package customer

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	domaincustomer "github.com/BruksfildServices01/delivery-marketplace/internal/domain/customer"
	"github.com/BruksfildServices01/delivery-marketplace/internal/dto"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/infra/storage"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
	"github.com/BruksfildServices01/delivery-marketplace/internal/validators"
)

// ImageStore transcodes and uploads a profile picture and returns its URL.
type ImageStore interface {
	SaveProfileImage(ctx context.Context, userID uint, r io.Reader) (string, error)
}

// ===============================
// Get profile
// ===============================

type GetProfile struct {
	users     account.Repository
	customers domaincustomer.Repository
}

func NewGetProfile(users account.Repository, customers domaincustomer.Repository) *GetProfile {
	return &GetProfile{users: users, customers: customers}
}

// Execute never creates the customer row; a missing row reads as defaults.
func (uc *GetProfile) Execute(ctx context.Context, userID uint) (dto.Profile, error) {
	u, c, err := load(ctx, uc.users, uc.customers, userID)
	if err != nil {
		return dto.Profile{}, err
	}
	return dto.NewProfile(u, c), nil
}

// load returns the user and its customer row, which may be nil.
func load(
	ctx context.Context,
	users account.Repository,
	customers domaincustomer.Repository,
	userID uint,
) (*models.User, *models.Customer, error) {

	u, err := users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, notFound(err, "user_not_found")
	}

	c, err := customers.GetCustomerByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return u, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return u, c, nil
}

// ===============================
// Update profile
// ===============================

type ProfileUpdate struct {
	Name  *string
	Phone *string
	Image io.Reader
}

type UpdateProfile struct {
	users     account.Repository
	customers domaincustomer.Repository
	images    ImageStore
}

func NewUpdateProfile(
	users account.Repository,
	customers domaincustomer.Repository,
	images ImageStore,
) *UpdateProfile {
	return &UpdateProfile{users: users, customers: customers, images: images}
}

// Execute creates the customer row on first write.
func (uc *UpdateProfile) Execute(ctx context.Context, userID uint, in ProfileUpdate) (dto.Profile, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return dto.Profile{}, httperr.ErrBusinessMsg("invalid_request", "Name cannot be empty")
	}
	if in.Phone != nil && *in.Phone != "" && !validators.IsPhone(*in.Phone) {
		return dto.Profile{}, httperr.ErrBusinessMsg("invalid_phone", "Phone number is not valid")
	}

	u, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		return dto.Profile{}, notFound(err, "user_not_found")
	}

	var imageURL string
	if in.Image != nil {
		imageURL, err = uc.images.SaveProfileImage(ctx, userID, in.Image)
		if errors.Is(err, storage.ErrInvalidImage) {
			return dto.Profile{}, httperr.ErrBusiness("invalid_image")
		}
		if err != nil {
			return dto.Profile{}, err
		}
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := uc.users.UpdateUserName(ctx, userID, name); err != nil {
			return dto.Profile{}, notFound(err, "user_not_found")
		}
		u.Name = name
	}

	c, err := uc.customers.GetOrCreateCustomer(ctx, userID)
	if err != nil {
		return dto.Profile{}, err
	}

	if in.Phone != nil || imageURL != "" {
		if in.Phone != nil {
			c.Phone = strings.TrimSpace(*in.Phone)
		}
		if imageURL != "" {
			c.ProfileImageURL = imageURL
		}
		if err := uc.customers.UpdateCustomer(ctx, c); err != nil {
			return dto.Profile{}, err
		}
	}

	addrs, err := uc.customers.ListAddresses(ctx, c.ID)
	if err != nil {
		return dto.Profile{}, err
	}
	c.Addresses = addrs

	return dto.NewProfile(u, c), nil
}

func notFound(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
