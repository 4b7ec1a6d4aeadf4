package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/MartPlace/MartPlace-Backend/api/apistrings"
	apimodels "github.com/MartPlace/MartPlace-Backend/api/models"
	basemodels "github.com/MartPlace/MartPlace-Backend/models"
	db "github.com/MartPlace/MartPlace-Backend/db/sqlc"
	"github.com/MartPlace/MartPlace-Backend/services/kyc"
	user_service "github.com/MartPlace/MartPlace-Backend/services/user"
	"github.com/MartPlace/MartPlace-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type KYC struct {
	server      *Server
	userService *user_service.UserService
}

func (k KYC) router(server *Server) {
	k.server = server
	k.userService = user_service.NewUserService(server.store, server.logger)

	serverGroupV1 := server.router.Group("/api/v1/kyc")
	serverGroupV1.GET("banks", AuthenticatedMiddleware(), k.getBanks)
	serverGroupV1.GET("progress", AuthenticatedMiddleware(), k.getProgress)
	serverGroupV1.GET("notifications", AuthenticatedMiddleware(), k.getNotifications)
	serverGroupV1.DELETE("notifications/:id", AuthenticatedMiddleware(), k.deleteNotification)
	serverGroupV1.POST("customer", AuthenticatedMiddleware(), k.submitCustomerInfo)
	serverGroupV1.POST("bank-account", AuthenticatedMiddleware(), k.submitBankAccount)
	serverGroupV1.POST("bank-account/resolve", AuthenticatedMiddleware(), k.resolveBankAccount)
	serverGroupV1.POST("bvn", AuthenticatedMiddleware(), k.submitBVN)
	serverGroupV1.POST("review", AuthenticatedMiddleware(), k.setReviewStatus)
}

// ownerID extracts the authenticated subject's opaque owner identity
func (k *KYC) ownerID(ctx *gin.Context) (string, bool) {
	user, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return "", false
	}
	return strconv.FormatInt(user.UserID, 10), true
}

// respondWorkflowError translates the workflow error taxonomy to HTTP.
// Persistence failures are deliberately NOT handled here: verification
// succeeded, so the caller reports success with a warning instead.
func (k *KYC) respondWorkflowError(ctx *gin.Context, err error) {
	var validationErr *kyc.ValidationError
	var rejected *kyc.VerificationRejected
	var providerErr *kyc.ProviderError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(validationErr.Error()))
	case errors.As(err, &rejected):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.VerificationFailed))
	case errors.As(err, &providerErr):
		ctx.JSON(http.StatusBadGateway, basemodels.NewError(apistrings.ProviderUnavailable))
	case errors.Is(err, kyc.ErrUnderReview):
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.KYCUnderReview))
	case errors.Is(err, kyc.ErrAlreadyVerified):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.KYCAlreadyVerified))
	default:
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}

func (k *KYC) getBanks(ctx *gin.Context) {
	banks := k.server.directory.Load(ctx)

	if query := ctx.Query("query"); query != "" {
		banks = *banks.FindBanks(query)
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Banks Retrieved", banks))
}

func (k *KYC) getProgress(ctx *gin.Context) {
	owner, ok := k.ownerID(ctx)
	if !ok {
		return
	}

	session, err := k.server.workflow.Resume(ctx, owner, ctx.Query("store_id"))
	if err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("KYC Progress", apimodels.ToKYCProgressResponse(session)))
}

func (k *KYC) getNotifications(ctx *gin.Context) {
	owner, ok := k.ownerID(ctx)
	if !ok {
		return
	}

	notifications, err := k.server.notifications.Get(ctx, owner)
	if err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Notifications", apimodels.ToNotificationResponses(notifications)))
}

func (k *KYC) deleteNotification(ctx *gin.Context) {
	owner, ok := k.ownerID(ctx)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError("invalid notification id"))
		return
	}

	if err := k.server.notifications.Delete(ctx, owner, id); err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Notification Removed", nil))
}

func (k *KYC) submitCustomerInfo(ctx *gin.Context) {
	owner, ok := k.ownerID(ctx)
	if !ok {
		return
	}

	var request apimodels.CustomerInfoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidCustomerInput))
		return
	}

	// Resume first so review states set by an operator gate this stage
	// the same way they gate the later ones
	session, err := k.server.workflow.Resume(ctx, owner, request.StoreID)
	if err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	err = k.server.workflow.SubmitCustomerInfo(ctx, session, kyc.CustomerInfo{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	})
	if err != nil {
		k.respondWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Customer Created", apimodels.CustomerInfoResponse{
		CustomerID: session.CustomerID,
		Stage:      string(session.Stage),
	}))
}

func (k *KYC) submitBankAccount(ctx *gin.Context) {
	owner, ok := k.ownerID(ctx)
	if !ok {
		return
	}

	var request apimodels.BankAccountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidBankAccountInput))
		return
	}

	session, err := k.server.workflow.Resume(ctx, owner, request.StoreID)
	if err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	// Nothing is persisted before this stage, so the wizard carries the
	// Stage 1 context forward itself
	if request.CustomerID != "" {
		session.CustomerID = request.CustomerID
	}
	if request.FirstName != "" || request.LastName != "" {
		session.Customer = &kyc.CustomerInfo{
			FirstName: request.FirstName,
			LastName:  request.LastName,
		}
	}

	err = k.server.workflow.SubmitBankAccount(ctx, session, kyc.BankAccountInfo{
		AccountNumber: request.AccountNumber,
		BankCode:      request.BankCode,
		AccountName:   request.AccountName,
		AutoDetected:  request.AutoDetected,
	})

	var persistenceErr *kyc.PersistenceError
	if errors.As(err, &persistenceErr) {
		ctx.JSON(http.StatusOK, basemodels.NewSuccess(apistrings.ProgressSaveWarning, apimodels.ToKYCProgressResponse(session)))
		return
	}
	if err != nil {
		k.respondWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Bank Account Verified", apimodels.ToKYCProgressResponse(session)))
}

func (k *KYC) resolveBankAccount(ctx *gin.Context) {
	if _, ok := k.ownerID(ctx); !ok {
		return
	}

	var request apimodels.ResolveAccountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidBankAccountInput))
		return
	}

	result, err := k.server.workflow.DetectBankAccount(ctx, request.AccountNumber, request.BankCode, request.FullName)
	if err != nil {
		k.respondWorkflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Account Resolved", apimodels.AccountInfoResponse{
		AccountName:   result.AccountName,
		AccountNumber: result.AccountNumber,
		BankName:      result.BankName,
		BankCode:      result.BankCode,
	}))
}

func (k *KYC) submitBVN(ctx *gin.Context) {
	owner, ok := k.ownerID(ctx)
	if !ok {
		return
	}

	var request apimodels.BVNRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidBVNInput))
		return
	}

	session, err := k.server.workflow.Resume(ctx, owner, request.StoreID)
	if err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	err = k.server.workflow.SubmitBVN(ctx, session, kyc.BVNInfo{BVN: request.BVN})

	var persistenceErr *kyc.PersistenceError
	if errors.As(err, &persistenceErr) {
		ctx.JSON(http.StatusOK, basemodels.NewSuccess(apistrings.ProgressSaveWarning, apimodels.ToKYCProgressResponse(session)))
		return
	}
	if err != nil {
		k.respondWorkflowError(ctx, err)
		return
	}

	k.markUserVerified(ctx)

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Identity Verified", apimodels.ToKYCProgressResponse(session)))
}

// Tokens carry a verified claim, flip the flag so the next login
// reflects the completed verification. Failure only costs freshness.
func (k *KYC) markUserVerified(ctx *gin.Context) {
	user, err := utils.GetActiveUser(ctx)
	if err != nil {
		return
	}
	if err := k.userService.MarkVerified(ctx, user.UserID); err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
	}
}

// setReviewStatus lets an operator park a subject in a review state or
// reopen it. Verification itself never passes through here.
func (k *KYC) setReviewStatus(ctx *gin.Context) {
	user, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}
	if user.Role != apimodels.ADMIN {
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.AdminOnly))
		return
	}

	var request apimodels.ReviewStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(err.Error()))
		return
	}

	progress, err := k.server.store.SetKYCStatusByOwnerID(ctx, db.SetKYCStatusByOwnerIDParams{
		OwnerID: request.OwnerID,
		Status:  request.Status,
	})
	if err == sql.ErrNoRows {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoKYC))
		return
	}
	if err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if _, err := k.server.store.SetTenantKYCStatus(ctx, db.SetTenantKYCStatusParams{
		OwnerID:   request.OwnerID,
		KycStatus: request.Status,
	}); err != nil {
		k.server.logger.Log(logrus.ErrorLevel, err.Error())
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Review Status Updated", gin.H{
		"owner_id": progress.OwnerID,
		"status":   progress.Status,
	}))
}
