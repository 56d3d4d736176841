package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domaincustomer "github.com/BruksfildServices01/delivery-marketplace/internal/domain/customer"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/delivery-marketplace/internal/logging"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
	uccustomer "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/customer"
)

const maxProfileForm = 12 << 20

type UserHandler struct {
	dashboard     *uccustomer.Dashboard
	getProfile    *uccustomer.GetProfile
	updateProfile *uccustomer.UpdateProfile
	addresses     *uccustomer.Addresses
	log           logging.Logger
}

func NewUserHandler(
	dashboard *uccustomer.Dashboard,
	getProfile *uccustomer.GetProfile,
	updateProfile *uccustomer.UpdateProfile,
	addresses *uccustomer.Addresses,
	log logging.Logger,
) *UserHandler {
	return &UserHandler{
		dashboard:     dashboard,
		getProfile:    getProfile,
		updateProfile: updateProfile,
		addresses:     addresses,
		log:           log,
	}
}

// --------- Requests ---------

type AddressRequest struct {
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

type AddressPatchRequest struct {
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
	Country   *string `json:"country"`
	IsDefault *bool   `json:"isDefault"`
}

// --------- Dashboard / profile ---------

func (h *UserHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	d, err := h.dashboard.Execute(c.Request.Context(), userID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, "Dashboard fetched successfully", d)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	p, err := h.getProfile.Execute(c.Request.Context(), userID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, "Profile fetched successfully", p)
}

// UpdateProfile reads a multipart form with optional name, phone and
// profileImage fields.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxProfileForm)

	var in uccustomer.ProfileUpdate
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("phone"); ok {
		in.Phone = &v
	}

	fh, err := c.FormFile("profileImage")
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			badRequest(c, err)
			return
		}
		defer f.Close()
		in.Image = f
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		badRequest(c, err)
		return
	}

	p, err := h.updateProfile.Execute(c.Request.Context(), userID, in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, "Profile updated successfully", p)
}

// --------- Addresses ---------

func (h *UserHandler) ListAddresses(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	out, err := h.addresses.List(c.Request.Context(), userID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, "Addresses fetched successfully", out)
}

func (h *UserHandler) AddAddress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	a, err := h.addresses.Add(c.Request.Context(), userID, models.Address{
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Created(c, "Address added successfully", a)
}

func (h *UserHandler) UpdateAddress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AddressPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	a, err := h.addresses.Update(c.Request.Context(), userID, id, domaincustomer.AddressPatch{
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, "Address updated successfully", a)
}

func (h *UserHandler) DeleteAddress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.addresses.Delete(c.Request.Context(), userID, id); err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, "Address deleted successfully", nil)
}

func (h *UserHandler) SetDefaultAddress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.addresses.SetDefault(c.Request.Context(), userID, id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, "Default address updated successfully", out)
}
