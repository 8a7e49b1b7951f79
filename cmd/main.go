package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	attendanceHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/attendance"
	createBookingHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/create_booking"
	createSlotHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/create_slot"
	deleteBookingHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/delete_booking"
	getAttendanceCalendarHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/get_attendance_calendar"
	getBookingHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/get_bookings"
	getCalendarHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/get_calendar"
	getRevenueHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/get_revenue"
	getScheduleConfigHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/get_schedule_config"
	manageSlotHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/manage_slot"
	resourcesHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/resources"
	sendBroadcastHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/send_broadcast"
	updateBookingStatusHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/update_booking_status"
	updateScheduleConfigHandler "github.com/m04kA/SMC-GymConsole/internal/api/handlers/update_schedule_config"
	"github.com/m04kA/SMC-GymConsole/internal/api/middleware"
	"github.com/m04kA/SMC-GymConsole/internal/config"
	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/format"
	attendanceRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/attendance"
	bookingRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/booking"
	configRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/config"
	resourceRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/resource"
	slotRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/slot"
	notifierClient "github.com/m04kA/SMC-GymConsole/internal/integrations/notifier"
	configService "github.com/m04kA/SMC-GymConsole/internal/service/config"
	resourcesService "github.com/m04kA/SMC-GymConsole/internal/service/resources"
	scheduleService "github.com/m04kA/SMC-GymConsole/internal/service/schedule"
	bookSlotUC "github.com/m04kA/SMC-GymConsole/internal/usecase/book_slot"
	createSlotUC "github.com/m04kA/SMC-GymConsole/internal/usecase/create_slot"
	getAttendanceCalendarUC "github.com/m04kA/SMC-GymConsole/internal/usecase/get_attendance_calendar"
	getCalendarUC "github.com/m04kA/SMC-GymConsole/internal/usecase/get_calendar"
	getRevenueUC "github.com/m04kA/SMC-GymConsole/internal/usecase/get_revenue"
	sendBroadcastUC "github.com/m04kA/SMC-GymConsole/internal/usecase/send_broadcast"
	"github.com/m04kA/SMC-GymConsole/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymConsole/pkg/logger"
	"github.com/m04kA/SMC-GymConsole/pkg/metrics"
	"github.com/m04kA/SMC-GymConsole/pkg/txmanager"
)

// routeRegistrar таблица, монтирующая свои маршруты
type routeRegistrar interface {
	Register(r *mux.Router)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-GymConsole...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil коллектор отключает сбор
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	money, err := format.New(cfg.Format.Locale, cfg.Format.Currency)
	if err != nil {
		log.Fatal("Failed to initialize formatter: %v", err)
	}

	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Notifier client initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем репозитории
	slotRepository := slotRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	attendanceRepository := attendanceRepo.NewRepository(wrappedDB)
	configRepository := configRepo.NewRepository(wrappedDB)

	memberRepository := resourceRepo.NewRepository(wrappedDB, resourceRepo.Members)
	employeeRepository := resourceRepo.NewRepository(wrappedDB, resourceRepo.Employees)
	branchRepository := resourceRepo.NewRepository(wrappedDB, resourceRepo.Branches)
	deviceRepository := resourceRepo.NewRepository(wrappedDB, resourceRepo.Devices)
	dayPassRepository := resourceRepo.NewRepository(wrappedDB, resourceRepo.DayPasses)
	expenseRepository := resourceRepo.NewRepository(wrappedDB, resourceRepo.Expenses)
	receiptRepository := resourceRepo.NewRepository(wrappedDB, resourceRepo.Receipts)
	broadcastRepository := resourceRepo.NewRepository(wrappedDB, resourceRepo.Broadcasts)
	equipmentRepository := resourceRepo.NewRepository(wrappedDB, resourceRepo.EquipmentTable)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		bookingRepository,
		slotRepository,
		attendanceRepository,
		metricsCollector,
		log,
	)
	configSvc := configService.NewService(configRepository, log)

	listOpts := resourcesService.Options{
		DefaultPerPage: cfg.Listing.DefaultPerPage,
		MaxPerPage:     cfg.Listing.MaxPerPage,
	}
	tables := []routeRegistrar{
		resourcesHandler.NewHandler[domain.Member](
			resourcesService.NewService[domain.Member](memberRepository, resourcesService.MemberSpec(), listOpts, log), log),
		resourcesHandler.NewHandler[domain.Employee](
			resourcesService.NewService[domain.Employee](employeeRepository, resourcesService.EmployeeSpec(money), listOpts, log), log),
		resourcesHandler.NewHandler[domain.Branch](
			resourcesService.NewService[domain.Branch](branchRepository, resourcesService.BranchSpec(), listOpts, log), log),
		resourcesHandler.NewHandler[domain.Device](
			resourcesService.NewService[domain.Device](deviceRepository, resourcesService.DeviceSpec(), listOpts, log), log),
		resourcesHandler.NewHandler[domain.DayPass](
			resourcesService.NewService[domain.DayPass](dayPassRepository, resourcesService.DayPassSpec(money), listOpts, log), log),
		resourcesHandler.NewHandler[domain.Expense](
			resourcesService.NewService[domain.Expense](expenseRepository, resourcesService.ExpenseSpec(money), listOpts, log), log),
		resourcesHandler.NewHandler[domain.Receipt](
			resourcesService.NewService[domain.Receipt](receiptRepository, resourcesService.ReceiptSpec(money), listOpts, log), log),
		resourcesHandler.NewHandler[domain.Broadcast](
			resourcesService.NewService[domain.Broadcast](broadcastRepository, resourcesService.BroadcastSpec(), listOpts, log), log),
		resourcesHandler.NewHandler[domain.Equipment](
			resourcesService.NewService[domain.Equipment](equipmentRepository, resourcesService.EquipmentSpec(money), listOpts, log), log),
	}

	// Инициализируем use cases
	createSlotUseCase := createSlotUC.NewUseCase(slotRepository, configSvc, metricsCollector, log)
	bookSlotUseCase := bookSlotUC.NewUseCase(bookingRepository, slotRepository, txMgr, metricsCollector, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(slotRepository, bookingRepository, money, log)
	getAttendanceCalendarUseCase := getAttendanceCalendarUC.NewUseCase(employeeRepository, attendanceRepository, money, log)
	getRevenueUseCase := getRevenueUC.NewUseCase(
		bookingRepository,
		receiptRepository,
		dayPassRepository,
		expenseRepository,
		txMgr,
		money,
		log,
	)
	sendBroadcastUseCase := sendBroadcastUC.NewUseCase(broadcastRepository, notifier, log)

	// Инициализируем handlers
	createSlot := createSlotHandler.NewHandler(createSlotUseCase, log)
	manageSlot := manageSlotHandler.NewHandler(scheduleSvc, log)
	createBooking := createBookingHandler.NewHandler(bookSlotUseCase, log)
	getBooking := getBookingHandler.NewHandler(scheduleSvc, log)
	getBookings := getBookingsHandler.NewHandler(scheduleSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(scheduleSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(scheduleSvc, log)
	slotsCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, getCalendarUC.ViewSlots, log)
	bookingsCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, getCalendarUC.ViewBookings, log)
	attendance := attendanceHandler.NewHandler(scheduleSvc, log)
	getAttendanceCalendar := getAttendanceCalendarHandler.NewHandler(getAttendanceCalendarUseCase, log)
	getRevenue := getRevenueHandler.NewHandler(getRevenueUseCase, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(configSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(configSvc, log)
	sendBroadcast := sendBroadcastHandler.NewHandler(sendBroadcastUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Слоты ---
	api.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots/{slotId}/closed", manageSlot.HandleClose).Methods(http.MethodPatch)
	api.HandleFunc("/slots/{slotId}", manageSlot.HandleDelete).Methods(http.MethodDelete)

	// --- Бронирования ---
	// /bookings/list регистрируется раньше /bookings/{bookingId}
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/list", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Календари ---
	api.HandleFunc("/calendar/slots", slotsCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/bookings", bookingsCalendar.Handle).Methods(http.MethodGet)

	// --- Посещаемость сотрудников ---
	api.HandleFunc("/employees/{employeeId}/attendance", attendance.HandleMark).Methods(http.MethodPost)
	api.HandleFunc("/employees/{employeeId}/attendance/calendar", getAttendanceCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/attendance/{markId}", attendance.HandleDelete).Methods(http.MethodDelete)

	// --- Аналитика и настройки ---
	api.HandleFunc("/analytics/revenue", getRevenue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule-config", getScheduleConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule-config", updateScheduleConfig.Handle).Methods(http.MethodPut)
	api.HandleFunc("/schedule-config", updateScheduleConfig.HandleDelete).Methods(http.MethodDelete)

	// --- Рассылки ---
	// отправка раньше общих маршрутов таблицы broadcasts
	api.HandleFunc("/broadcasts/{broadcastId}/send", sendBroadcast.Handle).Methods(http.MethodPost)

	// --- Справочные таблицы ---
	for _, table := range tables {
		table.Register(api)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
