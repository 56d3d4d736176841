package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/verification"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
	"github.com/BruksfildServices01/delivery-marketplace/internal/validators"
)

const minPasswordLen = 6

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string

	// Retailer only.
	ShopName    string
	Description string
	ShopAddress models.ShopAddress

	// Delivery boy only.
	Address       string
	City          string
	State         string
	ZipCode       string
	DOB           *time.Time
	VehicleType   string
	VehicleNumber string
	DLNumber      string
}

type Register struct {
	users       account.Repository
	checkDomain func(email string) bool
}

// NewRegister builds the sign-up use case. When checkDomain is true the
// email domain must resolve.
func NewRegister(users account.Repository, checkDomain bool) *Register {
	uc := &Register{users: users}
	if checkDomain {
		uc.checkDomain = validators.IsEmailDomainValid
	}
	return uc
}

func (uc *Register) Execute(ctx context.Context, role account.Role, in RegisterInput) (*models.User, error) {
	if !role.SelfRegistrable() {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	email := validators.NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)

	switch {
	case name == "":
		return nil, httperr.ErrBusinessMsg("invalid_request", "Name is required")
	case !validators.IsEmail(email):
		return nil, httperr.ErrBusinessMsg("invalid_email", "Email is not valid")
	case len(in.Password) < minPasswordLen:
		return nil, httperr.ErrBusinessMsg("weak_password", "Password must have at least 6 characters")
	case in.Phone != "" && !validators.IsPhone(in.Phone):
		return nil, httperr.ErrBusinessMsg("invalid_phone", "Phone number is not valid")
	case role == account.RoleRetailer && strings.TrimSpace(in.ShopName) == "":
		return nil, httperr.ErrBusinessMsg("invalid_request", "Shop name is required")
	}

	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, httperr.ErrBusinessMsg("invalid_email_domain", "The email domain does not look valid")
	}

	if _, err := uc.users.GetUserByEmail(ctx, email); err == nil {
		return nil, httperr.ErrBusiness("email_already_registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
		Role:         string(role),
	}

	switch role {
	case account.RoleRetailer:
		err = uc.users.RegisterRetailer(ctx, u, &models.RetailerShop{
			ShopName:           strings.TrimSpace(in.ShopName),
			Phone:              u.Phone,
			Description:        in.Description,
			Address:            in.ShopAddress,
			VerificationStatus: string(verification.InitialStatus()),
		})
	case account.RoleDeliveryBoy:
		err = uc.users.RegisterDeliveryBoy(ctx, u, &models.DeliveryBoy{
			Phone:              u.Phone,
			Address:            in.Address,
			City:               in.City,
			State:              in.State,
			ZipCode:            in.ZipCode,
			DOB:                in.DOB,
			VehicleType:        in.VehicleType,
			VehicleNumber:      in.VehicleNumber,
			DLNumber:           in.DLNumber,
			VerificationStatus: string(verification.InitialStatus()),
		})
	default:
		err = uc.users.RegisterCustomer(ctx, u, &models.Customer{Phone: u.Phone})
	}

	// Two sign-ups racing past the lookup meet the unique index.
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, httperr.ErrBusiness("email_already_registered")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
