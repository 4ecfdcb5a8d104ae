package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
	bookingRepo "github.com/m04kA/BookingHub/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/BookingHub/internal/infra/storage/service"
	slotRepo "github.com/m04kA/BookingHub/internal/infra/storage/slot"
	"github.com/m04kA/BookingHub/pkg/types"
)

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
}

// SlotRepository интерфейс хранилища слотов
type SlotRepository interface {
	CreateBatch(ctx context.Context, slots []*domain.TimeSlot) error
	Reserve(ctx context.Context, key domain.SlotKey) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры заполнения демо-данными
type Config struct {
	Days int
	// UnavailableRatio доля слотов, изначально помеченных занятыми
	UnavailableRatio float64
	RandomSeed       int64
}

// Seeder заполняет хранилище демо-данными
// Повторный запуск не дублирует данные и не меняет существующие слоты
type Seeder struct {
	services ServiceRepository
	slots    SlotRepository
	bookings BookingRepository
	cfg      Config
	logger   Logger
}

func NewSeeder(services ServiceRepository, slots SlotRepository, bookings BookingRepository, cfg Config, logger Logger) *Seeder {
	return &Seeder{
		services: services,
		slots:    slots,
		bookings: bookings,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run добавляет услуги, слоты на cfg.Days дней начиная с now и пример бронирования
func (s *Seeder) Run(ctx context.Context, now time.Time) error {
	today := domain.DateOf(now)

	// 1. Каталог
	created := 0
	for i := range sampleServices {
		svc := sampleServices[i]
		svc.CreatedAt = now
		if _, err := s.services.Create(ctx, &svc); err != nil {
			if errors.Is(err, serviceRepo.ErrServiceAlreadyExists) {
				continue
			}
			return fmt.Errorf("seed service %s: %w", svc.ID, err)
		}
		created++
	}

	// 2. Слоты
	slots := s.buildSlots(today)
	if err := s.slots.CreateBatch(ctx, slots); err != nil {
		return fmt.Errorf("seed slots: %w", err)
	}

	// 3. Пример бронирования, его слот занят
	booking := sampleBooking
	booking.Date = today
	booking.CreatedAt = now
	booking.UpdatedAt = now

	bookingCreated := true
	if _, err := s.bookings.Create(ctx, &booking); err != nil {
		if !errors.Is(err, bookingRepo.ErrBookingAlreadyExists) {
			return fmt.Errorf("seed booking: %w", err)
		}
		bookingCreated = false
	}

	if bookingCreated && s.cfg.Days > 0 {
		key := domain.SlotKey{ServiceID: booking.ServiceID, Date: booking.Date, StartTime: booking.StartTime}
		if err := s.slots.Reserve(ctx, key); err != nil && !errors.Is(err, slotRepo.ErrSlotNotAvailable) {
			return fmt.Errorf("seed reserve slot %s: %w", key.ID(), err)
		}
	}

	s.logger.Info("Seed: %d services added, %d slots offered, sample booking added=%t",
		created, len(slots), bookingCreated)
	return nil
}

func (s *Seeder) buildSlots(today time.Time) []*domain.TimeSlot {
	var rng *rand.Rand
	if s.cfg.UnavailableRatio > 0 {
		seed := uint64(s.cfg.RandomSeed)
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	slots := make([]*domain.TimeSlot, 0, s.cfg.Days*len(sampleServices)*(lastSlotHour-firstSlotHour+1))
	for day := 0; day < s.cfg.Days; day++ {
		date := today.AddDate(0, 0, day)
		for _, svc := range sampleServices {
			for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
				slot := domain.NewTimeSlot(svc.ID, date, types.TimeString(fmt.Sprintf("%02d:00", hour)))
				if rng != nil && rng.Float64() < s.cfg.UnavailableRatio {
					slot.Available = false
				}
				slots = append(slots, slot)
			}
		}
	}

	return slots
}
