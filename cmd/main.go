package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clearSlotHandler "github.com/uncensored-studios/studio-booking-service/internal/api/handlers/clear_slot"
	createSessionHandler "github.com/uncensored-studios/studio-booking-service/internal/api/handlers/create_session"
	getDaySlotsHandler "github.com/uncensored-studios/studio-booking-service/internal/api/handlers/get_day_slots"
	getMonthAvailabilityHandler "github.com/uncensored-studios/studio-booking-service/internal/api/handlers/get_month_availability"
	getQuoteHandler "github.com/uncensored-studios/studio-booking-service/internal/api/handlers/get_quote"
	getServicesHandler "github.com/uncensored-studios/studio-booking-service/internal/api/handlers/get_services"
	selectSlotHandler "github.com/uncensored-studios/studio-booking-service/internal/api/handlers/select_slot"
	submitBookingHandler "github.com/uncensored-studios/studio-booking-service/internal/api/handlers/submit_booking"
	updateFormHandler "github.com/uncensored-studios/studio-booking-service/internal/api/handlers/update_form"
	"github.com/uncensored-studios/studio-booking-service/internal/api/middleware"
	"github.com/uncensored-studios/studio-booking-service/internal/booking"
	"github.com/uncensored-studios/studio-booking-service/internal/booking/sessions"
	"github.com/uncensored-studios/studio-booking-service/internal/config"
	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	calendarFeedClient "github.com/uncensored-studios/studio-booking-service/internal/integrations/calendarfeed"
	mailRelayClient "github.com/uncensored-studios/studio-booking-service/internal/integrations/mailrelay"
	simplyBookClient "github.com/uncensored-studios/studio-booking-service/internal/integrations/simplybook"
	availabilityService "github.com/uncensored-studios/studio-booking-service/internal/service/availability"
	notifyService "github.com/uncensored-studios/studio-booking-service/internal/service/notify"
	quotePriceUC "github.com/uncensored-studios/studio-booking-service/internal/usecase/quote_price"
	"github.com/uncensored-studios/studio-booking-service/pkg/logger"
	"github.com/uncensored-studios/studio-booking-service/pkg/metrics"
)

// instrumentedTransport counts submission outcomes around the real transport.
type instrumentedTransport struct {
	inner   booking.Transport
	metrics *metrics.Metrics
}

func (t *instrumentedTransport) Submit(ctx context.Context, req *domain.BookingRequest) error {
	err := t.inner.Submit(ctx, req)
	if err != nil {
		t.metrics.IncSubmission("failure")
		t.metrics.IncExternalRequest("submission_sink", "error")
		return err
	}
	t.metrics.IncSubmission("success")
	t.metrics.IncExternalRequest("submission_sink", "ok")
	return nil
}

func main() {
	// Credentials usually arrive via .env in development
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting studio-booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Calendar feed client; feed failures degrade to an empty marker set
	feedClient := calendarFeedClient.NewClient(
		cfg.CalendarFeed.URL,
		time.Duration(cfg.CalendarFeed.Timeout)*time.Second,
		log,
	)
	log.Info("Calendar feed client initialized (url=%s, timeout=%ds)", cfg.CalendarFeed.URL, cfg.CalendarFeed.Timeout)

	// The scheduling client is shared by live availability and live submission
	var schedClient *simplyBookClient.Client
	if cfg.Availability.Mode == config.AvailabilityLive || cfg.Submission.Mode == config.SubmissionSimplyBook {
		schedClient = simplyBookClient.NewClient(
			simplyBookClient.Config{
				APIURL:       cfg.SimplyBook.APIURL,
				CompanyLogin: cfg.SimplyBook.CompanyLogin,
				Login:        cfg.SimplyBook.Login,
				Password:     cfg.SimplyBook.Password,
			},
			time.Duration(cfg.SimplyBook.Timeout)*time.Second,
			log,
		)
		log.Info("Scheduling client initialized (company=%s, timeout=%ds)", cfg.SimplyBook.CompanyLogin, cfg.SimplyBook.Timeout)
	}

	// Availability source
	var availabilitySource booking.AvailabilitySource
	switch cfg.Availability.Mode {
	case config.AvailabilityLive:
		availabilitySource = availabilityService.NewLiveSource(schedClient, log)
		log.Info("Availability source: live scheduling")
	default:
		availabilitySource = availabilityService.NewGeneratedSource(availabilityService.OpeningPolicy{
			OpenHour:      cfg.Availability.OpenHour,
			LastStartHour: cfg.Availability.LastStartHour,
			PeakStartHour: cfg.Availability.PeakStartHour,
			OffPeakPrice:  cfg.Availability.OffPeakPrice,
			PeakPrice:     cfg.Availability.PeakPrice,
		})
		log.Info("Availability source: generated (hours %d-%d, peak from %d)",
			cfg.Availability.OpenHour, cfg.Availability.LastStartHour, cfg.Availability.PeakStartHour)
	}

	// Submission transport
	var transport booking.Transport
	switch cfg.Submission.Mode {
	case config.SubmissionMailRelayLegacy:
		transport = mailRelayClient.NewFormClient(
			cfg.Submission.SinkURL,
			cfg.Submission.HoneypotField,
			time.Duration(cfg.Submission.Timeout)*time.Second,
			log,
		)
	case config.SubmissionSendGrid:
		transport = notifyService.NewSendGridTransport(notifyService.Config{
			APIKey:    cfg.SendGrid.APIKey,
			FromEmail: cfg.SendGrid.FromEmail,
			FromName:  cfg.SendGrid.FromName,
			ToEmail:   cfg.SendGrid.ToEmail,
		}, log)
	case config.SubmissionSimplyBook:
		transport = simplyBookClient.NewBookingTransport(schedClient, log)
	default:
		transport = mailRelayClient.NewJSONClient(
			cfg.Submission.SinkURL,
			time.Duration(cfg.Submission.Timeout)*time.Second,
			log,
		)
	}
	log.Info("Submission transport: %s", cfg.Submission.Mode)

	if cfg.Metrics.Enabled {
		transport = &instrumentedTransport{inner: transport, metrics: metricsCollector}
	}

	quoteUseCase := quotePriceUC.NewUseCase(domain.DefaultCatalog, log)

	// Session store: each visitor gets their own flow
	var gauge sessions.Gauge
	if cfg.Metrics.Enabled {
		gauge = metricsCollector
	}
	store := sessions.NewStore(
		time.Duration(cfg.Sessions.IdleTTLMinutes)*time.Minute,
		func() *booking.Flow {
			return booking.NewFlow(domain.DefaultCatalog, availabilitySource, feedClient, quoteUseCase, transport, log)
		},
		log,
		gauge,
	)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	store.StartSweeper(sweepCtx, 5*time.Minute)
	log.Info("Session store initialized (idle TTL %dm)", cfg.Sessions.IdleTTLMinutes)

	// Handlers
	createSession := createSessionHandler.NewHandler(store, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(store, log)
	getDaySlots := getDaySlotsHandler.NewHandler(store, log)
	selectSlot := selectSlotHandler.NewHandler(store, log)
	clearSlot := clearSlotHandler.NewHandler(store, log)
	updateForm := updateFormHandler.NewHandler(store, log)
	getQuote := getQuoteHandler.NewHandler(store, log)
	submitBooking := submitBookingHandler.NewHandler(store, log)
	getServices := getServicesHandler.NewHandler(domain.DefaultCatalog, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Reference data
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Booking sessions
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/availability", getMonthAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/days/{date}/slots", getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/slot", selectSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/slot", clearSlot.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/form", updateForm.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/quote", getQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
