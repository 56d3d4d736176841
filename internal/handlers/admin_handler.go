package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/verification"
	"github.com/BruksfildServices01/delivery-marketplace/internal/dto"
	"github.com/BruksfildServices01/delivery-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/logging"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
	ucaccount "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/account"
	ucadmin "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/admin"
	ucverification "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/verification"
)

// AdminUseCases bundles everything the admin routes call.
type AdminUseCases struct {
	Dashboard *ucadmin.Dashboard

	Users        *ucadmin.List[models.User]
	Customers    *ucadmin.List[dto.CustomerRow]
	Retailers    *ucadmin.List[models.RetailerShop]
	DeliveryBoys *ucadmin.List[models.DeliveryBoy]
	AuditLogs    *ucadmin.ListAuditLogs

	GetDeliveryBoy      *ucverification.GetDeliveryBoy
	PendingDeliveryBoys *ucverification.ListPendingDeliveryBoys
	DeliveryBoyStatus   *ucverification.SetDeliveryBoyStatus
	RetailerStatus      *ucverification.SetRetailerStatus

	BlockUser        *ucaccount.SetUserBlocked
	BlockDeliveryBoy *ucaccount.SetDeliveryBoyBlocked
	BlockRetailer    *ucaccount.SetRetailerBlocked
}

type AdminHandler struct {
	uc  AdminUseCases
	log logging.Logger
}

func NewAdminHandler(uc AdminUseCases, log logging.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

// ======================================================
// DASHBOARD / LISTINGS
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.uc.Dashboard.Execute(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, "Dashboard fetched successfully", d)
}

func (h *AdminHandler) ListUsers(c *gin.Context)        { serveList(c, h.log, h.uc.Users) }
func (h *AdminHandler) ListCustomers(c *gin.Context)    { serveList(c, h.log, h.uc.Customers) }
func (h *AdminHandler) ListRetailers(c *gin.Context)    { serveList(c, h.log, h.uc.Retailers) }
func (h *AdminHandler) ListDeliveryBoys(c *gin.Context) { serveList(c, h.log, h.uc.DeliveryBoys) }

func serveList[T any](c *gin.Context, log logging.Logger, uc *ucadmin.List[T]) {
	page, err := uc.Execute(c.Request.Context(), listing.FromQuery(c.Request.URL.Query()))
	if err != nil {
		fail(c, log, err)
		return
	}
	httpresp.Page(c, page)
}

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	page, err := h.uc.AuditLogs.Execute(
		c.Request.Context(),
		listing.FromQuery(c.Request.URL.Query()),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Page(c, page)
}

// ======================================================
// DELIVERY BOYS
// ======================================================

func (h *AdminHandler) PendingDeliveryBoys(c *gin.Context) {
	out, err := h.uc.PendingDeliveryBoys.Execute(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, "Pending delivery boys fetched successfully", out)
}

func (h *AdminHandler) GetDeliveryBoy(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := h.uc.GetDeliveryBoy.Execute(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, "", d)
}

func (h *AdminHandler) ApproveDeliveryBoy(c *gin.Context) {
	h.setDeliveryBoyStatus(c, verification.StatusApproved, "Delivery boy approved successfully")
}

func (h *AdminHandler) RejectDeliveryBoy(c *gin.Context) {
	h.setDeliveryBoyStatus(c, verification.StatusRejected, "Delivery boy rejected successfully")
}

func (h *AdminHandler) setDeliveryBoyStatus(c *gin.Context, status verification.Status, msg string) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := h.uc.DeliveryBoyStatus.Execute(c.Request.Context(), actorID, id, status)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, msg, d)
}

// ======================================================
// RETAILERS
// ======================================================

// ApproveRetailer takes the retailer's user id in the path.
func (h *AdminHandler) ApproveRetailer(c *gin.Context) {
	h.setRetailerStatus(c, verification.StatusApproved, "Retailer approved successfully")
}

func (h *AdminHandler) RejectRetailer(c *gin.Context) {
	h.setRetailerStatus(c, verification.StatusRejected, "Retailer rejected successfully")
}

func (h *AdminHandler) setRetailerStatus(c *gin.Context, status verification.Status, msg string) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	shop, err := h.uc.RetailerStatus.Execute(c.Request.Context(), actorID, userID, status)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, msg, shop)
}

// ======================================================
// BLOCK / UNBLOCK
// ======================================================

type blockFunc func(ctx context.Context, actorID, id uint, blocked bool) (*models.User, error)

func (h *AdminHandler) BlockUser(blocked bool) gin.HandlerFunc {
	return h.block(h.uc.BlockUser.Execute, blocked)
}

func (h *AdminHandler) BlockDeliveryBoy(blocked bool) gin.HandlerFunc {
	return h.block(h.uc.BlockDeliveryBoy.Execute, blocked)
}

func (h *AdminHandler) BlockRetailer(blocked bool) gin.HandlerFunc {
	return h.block(h.uc.BlockRetailer.Execute, blocked)
}

func (h *AdminHandler) block(exec blockFunc, blocked bool) gin.HandlerFunc {
	msg := "User unblocked successfully"
	if blocked {
		msg = "User blocked successfully"
	}

	return func(c *gin.Context) {
		actorID, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		u, err := exec(c.Request.Context(), actorID, id, blocked)
		if err != nil {
			fail(c, h.log, err)
			return
		}
		httpresp.OK(c, msg, dto.NewUserSummary(u))
	}
}
