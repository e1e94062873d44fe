package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"

	"github.com/pricy-xyz/goauction/base/clock"
	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/database/mongoclient"
	"github.com/pricy-xyz/goauction/base/goroutine"
	"github.com/pricy-xyz/goauction/base/log"
	"github.com/pricy-xyz/goauction/base/metrics"
	bValidator "github.com/pricy-xyz/goauction/base/validator"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/auction"
	"github.com/pricy-xyz/goauction/domain/settings"
	mmiddleware "github.com/pricy-xyz/goauction/middleware"
	"github.com/pricy-xyz/goauction/service/chain"
	"github.com/pricy-xyz/goauction/service/chain/contract"
	"github.com/pricy-xyz/goauction/service/query"
	auction_delivery "github.com/pricy-xyz/goauction/stores/auction/delivery/http"
	auction_repository "github.com/pricy-xyz/goauction/stores/auction/repository"
	auction_usecase "github.com/pricy-xyz/goauction/stores/auction/usecase"
	auth_delivery "github.com/pricy-xyz/goauction/stores/auth/delivery/http"
	auth_middleware "github.com/pricy-xyz/goauction/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/pricy-xyz/goauction/stores/auth/usecase"
	hc_delivery "github.com/pricy-xyz/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/pricy-xyz/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/pricy-xyz/goauction/stores/healthcheck/usecase"
	paytoken_delivery "github.com/pricy-xyz/goauction/stores/paytoken/delivery/http"
	paytoken_repository "github.com/pricy-xyz/goauction/stores/paytoken/repository"
	paytoken_usecase "github.com/pricy-xyz/goauction/stores/paytoken/usecase"
	settings_delivery "github.com/pricy-xyz/goauction/stores/settings/delivery/http"
	settings_repository "github.com/pricy-xyz/goauction/stores/settings/repository"
	settings_usecase "github.com/pricy-xyz/goauction/stores/settings/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:           rpcs,
		OperatorKey:       viper.GetString("escrow.operatorKey"),
		MaxRpcConcurrency: viper.GetInt("escrow.maxRpcConcurrency"),
	})
	if chainService == nil {
		log.Log().WithField("err", err).Panic("failed to init chain service")
	} else if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc721Service := contract.NewErc721(chainService)
	erc20Service := contract.NewErc20(chainService)
	accountService := contract.NewAccount(chainService)
	operator := domain.Address(chainService.Operator().Hex()).ToLower()
	context.WithField("operator", operator).Info("escrow operator account")

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	paytokenRepo := paytoken_repository.NewPayTokenRepo(q)
	settingsRepo := settings_repository.NewSettingsRepo(q)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	highestBidRepo := auction_repository.NewHighestBidRepo(q)
	eventRepo := auction_repository.NewEventRepo(q)

	hc := hc_usecase.New(hcRepo)
	paytoken := paytoken_usecase.New(paytokenRepo)
	adminAddresses := viper.GetStringSlice("admin.addresses")
	settingsUsecase := settings_usecase.New(settingsRepo, adminAddresses)

	// seed the engine configuration; refuse to boot without a fee sink
	feeRecipient := domain.Address(viper.GetString("fees.recipient")).ToLower()
	if feeRecipient.IsEmpty() {
		log.Log().Panic(domain.ErrInvalidConfiguration.Error())
	}
	if err := settingsRepo.Init(context, &settings.Settings{
		PlatformFeeRecipient:     feeRecipient,
		PlatformFeeBps:           viper.GetInt64("fees.platformBps"),
		BidWithdrawalLockSeconds: viper.GetInt64("bids.withdrawalLockSeconds"),
		MinBidIncrement:          viper.GetString("bids.minIncrement"),
	}); err != nil {
		log.Log().WithField("err", err).Panic("failed to seed settings")
	}

	engine := auction_usecase.New(&auction_usecase.AuctionUsecaseCfg{
		Auction:    auctionRepo,
		HighestBid: highestBidRepo,
		Event:      eventRepo,
		Settings:   settingsUsecase,
		PayToken:   paytoken,
		Asset:      erc721Service,
		Payment:    erc20Service,
		Account:    accountService,
		Operator:   operator,
		Clock:      clock.New(),
		Metrics:    metrics.New("auction"),
	})

	auth := auth_usecase.New(
		viper.GetString("auth.jwtSecret"),
		viper.GetString("auth.signatureMsg"),
		clock.New(),
	)
	authMiddleware := auth_middleware.New(auth, settingsUsecase)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	auction_delivery.New(e, engine, eventRepo, authMiddleware)
	settings_delivery.New(e, settingsUsecase, authMiddleware)
	paytoken_delivery.New(e, paytoken, authMiddleware)

	// periodically surface auctions that ended but were never resulted
	monitorInterval := viper.GetDuration("monitor.interval")
	if monitorInterval > 0 {
		goroutine.RecoverableGo(func() {
			monitorUnresulted(context, auctionRepo, monitorInterval)
		})
	}

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

func monitorUnresulted(context ctx.Ctx, auctions auction.Repo, interval time.Duration) {
	met := metrics.New("auction.monitor")
	clk := clock.New()
	ticker := clk.Ticker(interval)
	defer ticker.Stop()
	for range ticker.C {
		open, err := auctions.FindAll(context, auction.WithResulted(false))
		if err != nil {
			context.WithField("err", err).Warn("auctions.FindAll failed")
			continue
		}
		now := clk.Now().Unix()
		stale := 0
		for _, a := range open {
			if a.EndTime < now {
				stale++
			}
		}
		met.BumpAvg("open", float64(len(open)))
		met.BumpAvg("endedUnresulted", float64(stale))
		if stale > 0 {
			context.WithField("count", stale).Info("auctions ended but not resulted")
		}
	}
}
