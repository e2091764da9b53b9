package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"dealershub/internal/config"
	"dealershub/internal/database"
	"dealershub/internal/middleware"
	"dealershub/internal/modules/activity"
	"dealershub/internal/modules/booking"
	"dealershub/internal/modules/delivery"
	"dealershub/internal/modules/inventory"
	"dealershub/internal/modules/invitation"
	"dealershub/internal/modules/jobcard"
	"dealershub/internal/modules/lead"
	"dealershub/internal/modules/notification"
	"dealershub/internal/modules/payroll"
	"dealershub/internal/modules/quotation"
	jwtsvc "dealershub/internal/pkg/jwt"
	"dealershub/internal/pkg/logger"
	"dealershub/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Env)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// Repositories
	tx := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	jobCardRepo := repository.NewJobCardRepository(db)
	sparePartRepo := repository.NewSparePartRepository(db)
	historyRepo := repository.NewServiceHistoryRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)

	// Shared infrastructure
	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := notification.NewHub()

	// NewSMTPMailer returns a typed nil without SMTP config; assign through
	// the nil check so the interface itself stays nil.
	var mailer notification.Mailer
	if m := notification.NewSMTPMailer(cfg.SMTP); m != nil {
		mailer = m
	}

	// Services
	auditService := activity.NewService(activityRepo, log)
	notificationService := notification.NewService(notificationRepo, userRepo, mailer, hub, log)
	inventoryService := inventory.NewService(sparePartRepo, notificationService, log)
	leadService := lead.NewService(leadRepo, userRepo, tx, notificationService, auditService, log)
	quotationService := quotation.NewService(quotationRepo, leadRepo, tx, auditService, log)
	bookingService := booking.NewService(bookingRepo, quotationRepo, leadRepo, tx, notificationService, auditService, log)
	deliveryService := delivery.NewService(deliveryRepo, bookingRepo, appointmentRepo, historyRepo, tx, notificationService, auditService, log)
	jobCardService := jobcard.NewService(jobCardRepo, appointmentRepo, inventoryService, historyRepo, tx, notificationService, auditService, log)
	payrollService := payroll.NewService(employeeRepo, payrollRepo, tx, notificationService, auditService, log)
	invitationService := invitation.NewService(invitationRepo, userRepo, tx, mailer, jwtService, auditService, cfg.BaseURL, log)

	// Router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	public := api.Group("")
	authed := api.Group("", middleware.JWTAuth(jwtService))
	admin := authed.Group("/admin", middleware.AdminOnly())
	hr := authed.Group("", middleware.RequireRole("hr", "admin"))

	activity.NewHandler(auditService).RegisterRoutes(authed)
	notification.NewHandler(notificationService, hub).RegisterRoutes(authed)
	inventory.NewHandler(inventoryService).RegisterRoutes(authed)
	lead.NewHandler(leadService).RegisterRoutes(authed, admin)
	quotation.NewHandler(quotationService).RegisterRoutes(authed)
	booking.NewHandler(bookingService).RegisterRoutes(authed)
	delivery.NewHandler(deliveryService).RegisterRoutes(authed)
	jobcard.NewHandler(jobCardService).RegisterRoutes(authed)
	payroll.NewHandler(payrollService).RegisterRoutes(hr)
	invitation.NewHandler(invitationService).RegisterRoutes(public, admin)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
