package transport

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/datagate7000-backend/internal/ledger"
	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
	"github.com/goodnatureofminers/datagate7000-backend/internal/signature"
	"github.com/goodnatureofminers/datagate7000-backend/internal/utils"
	"github.com/goodnatureofminers/datagate7000-backend/pkg/safe"
)

// SignatureFunc checks a personal-sign signature; see signature.Verify.
type SignatureFunc func(address, signatureHex, message, nonce string) signature.Outcome

// ProviderHandler serves the nonce, initialize and compute endpoints.
type ProviderHandler struct {
	verifier  OrderVerifier
	validator ComputeValidator
	assets    AssetResolver
	nonces    NonceStore
	claims    AccessClaims
	audit     AuditSink
	metrics   ValidationMetrics
	verify    SignatureFunc
	logger    *zap.Logger
}

// NewProviderHandler wires a ProviderHandler.
func NewProviderHandler(
	verifier OrderVerifier,
	validator ComputeValidator,
	assets AssetResolver,
	nonces NonceStore,
	claims AccessClaims,
	audit AuditSink,
	metrics ValidationMetrics,
	logger *zap.Logger,
) *ProviderHandler {
	return &ProviderHandler{
		verifier:  verifier,
		validator: validator,
		assets:    assets,
		nonces:    nonces,
		claims:    claims,
		audit:     audit,
		metrics:   metrics,
		verify:    signature.Verify,
		logger:    logger,
	}
}

// Register mounts the service routes on the router.
func (h *ProviderHandler) Register(router *gin.Engine) {
	services := router.Group("/api/v1/services")
	services.GET("/nonce", h.nonce)
	services.POST("/initialize", h.initialize)
	services.POST("/compute", h.compute)
}

func (h *ProviderHandler) nonce(c *gin.Context) {
	address := c.Query("userAddress")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userAddress is required"})
		return
	}

	nonce, err := h.nonces.CurrentNonce(c.Request.Context(), address)
	if err != nil {
		h.logger.Error("nonce lookup failed", zap.String("address", address), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "nonce lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userAddress": address,
		"nonce":       strconv.FormatUint(nonce, 10),
	})
}

func (h *ProviderHandler) initialize(c *gin.Context) {
	var req initializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if fields := req.missingFields(); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: " + strings.Join(fields, ", ")})
		return
	}

	ctx := c.Request.Context()
	verified, asset, _, denial := h.authorizeOrder(ctx, orderParams{
		consumer:     req.ConsumerAddress,
		documentID:   req.DocumentID,
		serviceIndex: req.ServiceIndex,
		transferTxID: req.TransferTxID,
		signature:    req.Signature,
		signedMsg:    req.DocumentID,
	})
	if denial != nil {
		c.JSON(denial.status, gin.H{"error": denial.message})
		return
	}

	assetID := utils.NormalizeAssetID(req.DocumentID)
	claimed, err := h.claims.ClaimIfUnique(ctx, assetID, req.ConsumerAddress, req.TransferTxID)
	if err != nil {
		h.logger.Error("access claim failed", zap.String("assetId", assetID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "access claim failed"})
		return
	}
	if !claimed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "There is already a token with these parameters"})
		return
	}

	h.consumeNonce(ctx, req.ConsumerAddress)
	h.enqueueAudit(ctx, req, asset, verified)

	c.JSON(http.StatusOK, gin.H{
		"documentId":   req.DocumentID,
		"serviceId":    req.ServiceIndex,
		"transferTxId": req.TransferTxID,
		"settled":      verified.Settlement.Value.String(),
	})
}

func (h *ProviderHandler) compute(c *gin.Context) {
	started := time.Now()

	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if fields := req.missingFields(); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: " + strings.Join(fields, ", ")})
		return
	}

	ctx := c.Request.Context()
	_, asset, service, denial := h.authorizeOrder(ctx, orderParams{
		consumer:     req.ConsumerAddress,
		documentID:   req.DocumentID,
		serviceIndex: req.ServiceIndex,
		transferTxID: req.TransferTxID,
		signature:    req.Signature,
		signedMsg:    req.ConsumerAddress + req.DocumentID,
	})
	if denial != nil {
		c.JSON(denial.status, gin.H{"error": denial.message})
		return
	}

	stages, fail := h.validator.Validate(ctx, &req.ComputeJobRequest, asset, service)
	h.metrics.ObserveRequest(fail != nil, started)
	if fail != nil {
		h.metrics.ObserveFailure(fail.Stage, string(fail.Kind))
		c.JSON(http.StatusBadRequest, gin.H{"error": fail.Message, "validation": fail})
		return
	}

	h.consumeNonce(ctx, req.ConsumerAddress)

	c.JSON(http.StatusOK, gin.H{
		"documentId": req.DocumentID,
		"stages":     stages,
	})
}

type orderParams struct {
	consumer     string
	documentID   string
	serviceIndex int
	transferTxID string
	signature    string
	signedMsg    string
}

type requestDenial struct {
	status  int
	message string
}

// authorizeOrder runs the checks shared by initialize and compute: signature
// against the consumer's current nonce, asset and service resolution, and
// on-chain order verification against the service cost.
func (h *ProviderHandler) authorizeOrder(ctx context.Context, p orderParams) (*model.VerifiedOrder, *model.Asset, *model.Service, *requestDenial) {
	nonce, err := h.nonces.CurrentNonce(ctx, p.consumer)
	if err != nil {
		h.logger.Error("nonce lookup failed", zap.String("address", p.consumer), zap.Error(err))
		return nil, nil, nil, &requestDenial{http.StatusInternalServerError, "nonce lookup failed"}
	}

	outcome := h.verify(p.consumer, p.signature, p.signedMsg, strconv.FormatUint(nonce, 10))
	if !outcome.Valid {
		h.logger.Warn("signature rejected",
			zap.String("address", p.consumer),
			zap.String("reason", outcome.Reason),
		)
		return nil, nil, nil, &requestDenial{http.StatusForbidden, "Invalid signature provided."}
	}

	if _, err := safe.Uint64(p.serviceIndex); err != nil {
		return nil, nil, nil, &requestDenial{http.StatusBadRequest, "serviceId must be a non-negative index"}
	}

	asset, err := h.assets.ResolveAsset(ctx, p.documentID)
	if err != nil {
		h.logger.Error("asset resolution failed", zap.String("did", p.documentID), zap.Error(err))
		return nil, nil, nil, &requestDenial{http.StatusInternalServerError, "metadata store unavailable"}
	}
	if asset == nil {
		return nil, nil, nil, &requestDenial{http.StatusBadRequest, fmt.Sprintf("asset %s not found", p.documentID)}
	}

	service := asset.ServiceByIndex(p.serviceIndex)
	if service == nil {
		return nil, nil, nil, &requestDenial{http.StatusBadRequest, fmt.Sprintf("no service with index %d in asset %s", p.serviceIndex, p.documentID)}
	}

	cost, ok := new(big.Int).SetString(service.Cost, 10)
	if !ok {
		h.logger.Error("unparsable service cost",
			zap.String("did", p.documentID),
			zap.String("cost", service.Cost),
		)
		return nil, nil, nil, &requestDenial{http.StatusInternalServerError, "service cost is not set"}
	}

	verified, err := h.verifier.VerifyOrder(ctx, model.Order{
		TxID:      common.HexToHash(p.transferTxID),
		AssetDID:  p.documentID,
		ServiceID: strconv.Itoa(p.serviceIndex),
		Amount:    cost,
		Sender:    common.HexToAddress(p.consumer),
		Receiver:  common.HexToAddress(asset.Owner),
	})
	if err != nil {
		if ledger.IsDenial(err) {
			return nil, nil, nil, &requestDenial{http.StatusForbidden, err.Error()}
		}
		h.logger.Error("order verification failed",
			zap.String("transferTxId", p.transferTxID),
			zap.Error(err),
		)
		return nil, nil, nil, &requestDenial{http.StatusInternalServerError, "order verification failed"}
	}
	return verified, asset, service, nil
}

// consumeNonce bumps the consumer nonce after a successfully used signature
// so the same signature cannot be replayed.
func (h *ProviderHandler) consumeNonce(ctx context.Context, address string) {
	if _, err := h.nonces.BumpNonce(ctx, address); err != nil {
		h.logger.Error("nonce bump failed", zap.String("address", address), zap.Error(err))
	}
}

func (h *ProviderHandler) enqueueAudit(ctx context.Context, req initializeRequest, asset *model.Asset, verified *model.VerifiedOrder) {
	audit := model.OrderAudit{
		TxID:       req.TransferTxID,
		AssetID:    utils.NormalizeAssetID(req.DocumentID),
		ServiceID:  strconv.Itoa(req.ServiceIndex),
		Sender:     req.ConsumerAddress,
		Receiver:   asset.Owner,
		Amount:     verified.Event.Amount.String(),
		Settled:    verified.Settlement.Value.String(),
		VerifiedAt: time.Now().UTC(),
	}
	if err := h.audit.Add(ctx, audit); err != nil {
		h.logger.Error("audit enqueue failed", zap.String("txId", audit.TxID), zap.Error(err))
	}
}
