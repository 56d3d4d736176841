package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/delivery-marketplace/internal/config"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/dto"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/delivery-marketplace/internal/logging"
	"github.com/BruksfildServices01/delivery-marketplace/internal/middleware"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
	ucauth "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucauth.Register
	login    *ucauth.LoginUser
	refresh  *ucauth.RefreshSession
	logout   *ucauth.Logout
	me       *ucauth.CurrentUser

	cfg *config.Config
	log logging.Logger
}

func NewAuthHandler(
	register *ucauth.Register,
	login *ucauth.LoginUser,
	refresh *ucauth.RefreshSession,
	logout *ucauth.Logout,
	me *ucauth.CurrentUser,
	cfg *config.Config,
	log logging.Logger,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		refresh:  refresh,
		logout:   logout,
		me:       me,
		cfg:      cfg,
		log:      log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`

	ShopName    string             `json:"shopName"`
	Description string             `json:"description"`
	ShopAddress models.ShopAddress `json:"shopAddress"`

	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	DOB           string `json:"dob"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
	DLNumber      string `json:"dlNumber"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(role account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		in := ucauth.RegisterInput{
			Name:          req.Name,
			Email:         req.Email,
			Password:      req.Password,
			Phone:         req.Phone,
			ShopName:      req.ShopName,
			Description:   req.Description,
			ShopAddress:   req.ShopAddress,
			Address:       req.Address,
			City:          req.City,
			State:         req.State,
			ZipCode:       req.ZipCode,
			VehicleType:   req.VehicleType,
			VehicleNumber: req.VehicleNumber,
			DLNumber:      req.DLNumber,
		}
		if req.DOB != "" {
			dob, err := time.Parse("2006-01-02", req.DOB)
			if err != nil {
				badRequest(c, err)
				return
			}
			in.DOB = &dob
		}

		u, err := h.register.Execute(c.Request.Context(), role, in)
		if err != nil {
			fail(c, h.log, err)
			return
		}

		httpresp.Created(c, "Registered successfully", dto.NewUserSummary(u))
	}
}

// Login serves one login endpoint; only the given roles may use it.
func (h *AuthHandler) Login(allowed ...account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		s, err := h.login.Execute(c.Request.Context(), req.Email, req.Password, allowed)
		if err != nil {
			fail(c, h.log, err)
			return
		}

		h.setSession(c, s)
		httpresp.OK(c, "Logged in successfully", dto.NewUserSummary(s.User))
	}
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	token, _ := c.Cookie(middleware.RefreshCookie)

	s, err := h.refresh.Execute(c.Request.Context(), token)
	if err != nil {
		h.clearSession(c)
		fail(c, h.log, err)
		return
	}

	h.setSession(c, s)
	httpresp.OK(c, "Token refreshed", dto.NewUserSummary(s.User))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.RefreshCookie)

	if err := h.logout.Execute(c.Request.Context(), token); err != nil {
		h.log.Warn(c.Request.Context(), "refresh token revoke failed", "err", err)
	}

	h.clearSession(c)
	httpresp.OK(c, "Logged out successfully", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	u, err := h.me.Execute(c.Request.Context(), userID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, "", dto.NewUserSummary(u))
}

// --------- Cookies ---------

func (h *AuthHandler) setSession(c *gin.Context, s *ucauth.Session) {
	h.setCookie(c, middleware.AccessCookie, s.AccessToken, h.cfg.AccessTokenTTL)
	h.setCookie(c, middleware.RefreshCookie, s.RefreshToken, h.cfg.RefreshTokenTTL)
}

func (h *AuthHandler) clearSession(c *gin.Context) {
	h.setCookie(c, middleware.AccessCookie, "", -1)
	h.setCookie(c, middleware.RefreshCookie, "", -1)
}

func (h *AuthHandler) setCookie(c *gin.Context, name, value string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}
