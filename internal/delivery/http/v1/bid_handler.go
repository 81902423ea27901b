package v1

import (
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	bidUC domain.BidUsecase
}

// NewBidHandler registers bid routes; all of them require authentication.
func NewBidHandler(protected *gin.RouterGroup, bidUC domain.BidUsecase) {
	handler := &BidHandler{bidUC: bidUC}

	protected.POST("/jobs/:id/bids", handler.PlaceBid)
	protected.GET("/jobs/:id/bids", handler.ListJobBids)
	protected.POST("/bids/:id/accept", handler.AcceptBid)
	protected.POST("/bids/:id/withdraw", handler.WithdrawBid)
	protected.GET("/professionals/bids", handler.ListMyBids)
}

// PlaceBidRequest is the payload for bidding on a job
type PlaceBidRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Message       *string `json:"message"`
	EstimatedDays *int    `json:"estimated_days" binding:"omitempty,gt=0"`
}

// PlaceBid godoc
// @Summary      Bid on a job
// @Description  Place a pending bid on an open job; approved professionals only, one active bid per job
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Job ID"
// @Param        body  body      PlaceBidRequest  true  "Bid data"
// @Success      201   {object}  response.Response{data=domain.Bid}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /jobs/{id}/bids [post]
// @Security     BearerAuth
func (h *BidHandler) PlaceBid(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleProfessional {
		c.Error(apperror.Forbidden("Only professionals can bid on jobs"))
		return
	}

	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	bid := &domain.Bid{
		Amount:        req.Amount,
		Message:       req.Message,
		EstimatedDays: req.EstimatedDays,
	}

	professionalID := c.GetString(string(domain.KeyUserID))
	bid, err = h.bidUC.PlaceBid(c.Request.Context(), professionalID, jobID, bid)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Bid placed", bid)
}

// ListJobBids godoc
// @Summary      List bids on a job
// @Description  All bids on a job; job owner only
// @Tags         bids
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=[]domain.Bid}
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id}/bids [get]
// @Security     BearerAuth
func (h *BidHandler) ListJobBids(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	customerID := c.GetString(string(domain.KeyUserID))
	bids, err := h.bidUC.ListJobBids(c.Request.Context(), customerID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bids retrieved", bids)
}

// AcceptBid godoc
// @Summary      Accept a bid
// @Description  Accept a pending bid: the job moves to in_progress and every other pending bid is rejected
// @Tags         bids
// @Produce      json
// @Param        id   path      int  true  "Bid ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /bids/{id}/accept [post]
// @Security     BearerAuth
func (h *BidHandler) AcceptBid(c *gin.Context) {
	bidID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid bid id"))
		return
	}

	customerID := c.GetString(string(domain.KeyUserID))
	if err := h.bidUC.AcceptBid(c.Request.Context(), customerID, bidID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bid accepted", nil)
}

// WithdrawBid godoc
// @Summary      Withdraw a bid
// @Description  Withdraw a pending bid; bid owner only
// @Tags         bids
// @Produce      json
// @Param        id   path      int  true  "Bid ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /bids/{id}/withdraw [post]
// @Security     BearerAuth
func (h *BidHandler) WithdrawBid(c *gin.Context) {
	bidID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid bid id"))
		return
	}

	professionalID := c.GetString(string(domain.KeyUserID))
	if err := h.bidUC.WithdrawBid(c.Request.Context(), professionalID, bidID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bid withdrawn", nil)
}

// ListMyBids godoc
// @Summary      List my bids
// @Description  All bids placed by the authenticated professional, with job titles
// @Tags         bids
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Bid}
// @Failure      401  {object}  response.Response
// @Router       /professionals/bids [get]
// @Security     BearerAuth
func (h *BidHandler) ListMyBids(c *gin.Context) {
	professionalID := c.GetString(string(domain.KeyUserID))
	bids, err := h.bidUC.ListMyBids(c.Request.Context(), professionalID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bids retrieved", bids)
}
