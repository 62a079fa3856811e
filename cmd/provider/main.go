package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gin-gonic/gin"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/datagate7000-backend/internal/ledger"
	"github.com/goodnatureofminers/datagate7000-backend/internal/metrics"
	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
	repository "github.com/goodnatureofminers/datagate7000-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/datagate7000-backend/internal/resolver"
	"github.com/goodnatureofminers/datagate7000-backend/internal/transport"
	"github.com/goodnatureofminers/datagate7000-backend/internal/validation"
	"github.com/goodnatureofminers/datagate7000-backend/pkg/batcher"
)

var config struct {
	Addr        string `long:"addr" env:"PROVIDER_ADDR" description:"service addr" default:":8030"`
	MetricsAddr string `long:"metrics-addr" env:"PROVIDER_METRICS_ADDR" description:"metrics addr" default:":8031"`

	LedgerRPCURL  string `long:"ledger-rpc-url" env:"PROVIDER_LEDGER_RPC_URL" description:"ledger node RPC url" default:"http://localhost:8545"`
	TokenContract string `long:"token-contract" env:"PROVIDER_TOKEN_CONTRACT" description:"data token contract address"`
	Network       string `long:"network" env:"PROVIDER_NETWORK" description:"ledger network label" default:"mainnet"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"PROVIDER_CLICKHOUSE_DSN" description:"ClickHouse DSN" default:"clickhouse://localhost:9000/default"`
	MetadataURL   string `long:"metadata-url" env:"PROVIDER_METADATA_URL" description:"metadata store base url" default:"http://localhost:5000"`

	NodeURI         string `long:"node-uri" env:"PROVIDER_NODE_URI" description:"default compute output node uri"`
	ProviderURI     string `long:"provider-uri" env:"PROVIDER_PROVIDER_URI" description:"default provider uri"`
	ProviderAddress string `long:"provider-address" env:"PROVIDER_PROVIDER_ADDRESS" description:"default provider address"`
	MetadataURI     string `long:"metadata-uri" env:"PROVIDER_METADATA_URI" description:"default metadata publish uri"`

	AuditFlushSize     int           `long:"audit-flush-size" env:"PROVIDER_AUDIT_FLUSH_SIZE" description:"audit batch size" default:"64"`
	AuditFlushInterval time.Duration `long:"audit-flush-interval" env:"PROVIDER_AUDIT_FLUSH_INTERVAL" description:"audit flush interval" default:"5s"`
	AuditFlushRPS      int           `long:"audit-flush-rps" env:"PROVIDER_AUDIT_FLUSH_RPS" description:"audit flushes per second" default:"1"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	ethClient, err := ethclient.DialContext(ctx, config.LedgerRPCURL)
	if err != nil {
		logger.Fatal("Dial ledger node", zap.Error(err))
	}
	defer ethClient.Close()

	token, err := ledger.NewTokenContract(common.HexToAddress(config.TokenContract))
	if err != nil {
		logger.Fatal("Parse token contract ABI", zap.Error(err))
	}

	verifier := ledger.NewVerifier(ethClient, token, metrics.NewLedgerRPC(config.Network), logger.Named("verifier"))

	repo, err := repository.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Open ClickHouse", zap.Error(err))
	}

	store := resolver.NewMetadataStore(config.MetadataURL, metrics.NewMetadataStore(), logger.Named("metadata"))
	files := resolver.NewFileResolver(logger.Named("files"))

	validator := validation.NewRequestValidator(store, files, validation.OutputDefaults{
		NodeURI:         config.NodeURI,
		ProviderURI:     config.ProviderURI,
		ProviderAddress: config.ProviderAddress,
		MetadataURI:     config.MetadataURI,
	}, logger.Named("validation"))

	audit := batcher.New[model.OrderAudit](
		logger.Named("audit"),
		repo.InsertVerifiedOrders,
		config.AuditFlushSize,
		config.AuditFlushInterval,
		config.AuditFlushRPS,
	)
	audit.Start(ctx)
	defer audit.Stop()

	handler := transport.NewProviderHandler(
		verifier,
		validator,
		store,
		repo,
		repo,
		audit,
		metrics.NewValidation(),
		logger.Named("http"),
	)

	router := gin.New()
	router.Use(gin.Recovery())
	handler.Register(router)

	api := &http.Server{
		Addr:              config.Addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the api server")
		if err := api.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown api server", zap.Error(err))
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	ops := &http.Server{
		Addr:              config.MetricsAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", config.MetricsAddr))
		if err := ops.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve metrics", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the metrics server")
		if err := ops.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("Starting provider server", zap.String("addr", config.Addr))
	if err := api.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
