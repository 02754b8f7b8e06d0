package roster

import (
	"context"
	"errors"
	"strings"
	"time"

	"castboard/internal/domain"
	"castboard/internal/pkg/timezone"
	"castboard/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	actors       *repository.VoiceActorRepository
	directors    *repository.DirectorRepository
	availability *repository.DirectorAvailabilityRepository
}

func NewService(
	actors *repository.VoiceActorRepository,
	directors *repository.DirectorRepository,
	availability *repository.DirectorAvailabilityRepository,
) *Service {
	return &Service{actors: actors, directors: directors, availability: availability}
}

// --- Voice actors ---

func (s *Service) ListActors(ctx context.Context) ([]domain.VoiceActor, error) {
	return s.actors.GetAll(ctx)
}

func (s *Service) GetActor(ctx context.Context, id int64) (*domain.VoiceActor, error) {
	return s.actors.GetByID(ctx, id)
}

func (s *Service) CreateActor(ctx context.Context, req VoiceActorRequest) (*domain.VoiceActor, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.actors.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrDuplicateEmail
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	actor := &domain.VoiceActor{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        req.Phone,
		Code:         req.Code,
		DietaryNotes: req.DietaryNotes,
		Notes:        req.Notes,
	}
	if err := s.actors.Create(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (s *Service) UpdateActor(ctx context.Context, id int64, req VoiceActorRequest) (*domain.VoiceActor, error) {
	actor, err := s.actors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != actor.Email {
		if existing, err := s.actors.GetByEmail(ctx, email); err == nil && existing != nil && existing.ID != id {
			return nil, ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	actor.Name = strings.TrimSpace(req.Name)
	actor.Email = email
	actor.Phone = req.Phone
	actor.Code = req.Code
	actor.DietaryNotes = req.DietaryNotes
	actor.Notes = req.Notes
	if err := s.actors.Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (s *Service) DeleteActor(ctx context.Context, id int64) error {
	if _, err := s.actors.GetByID(ctx, id); err != nil {
		return err
	}
	return s.actors.Delete(ctx, id)
}

// --- Directors ---

func (s *Service) ListDirectors(ctx context.Context) ([]domain.Director, error) {
	return s.directors.GetAll(ctx)
}

func (s *Service) GetDirector(ctx context.Context, id int64) (*domain.Director, error) {
	return s.directors.GetByID(ctx, id)
}

func (s *Service) CreateDirector(ctx context.Context, req DirectorRequest) (*domain.Director, error) {
	director := &domain.Director{
		Name:  strings.TrimSpace(req.Name),
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	}
	if err := s.directors.Create(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

func (s *Service) UpdateDirector(ctx context.Context, id int64, req DirectorRequest) (*domain.Director, error) {
	director, err := s.directors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	director.Name = strings.TrimSpace(req.Name)
	director.Email = req.Email
	director.Phone = req.Phone
	director.Notes = req.Notes
	if err := s.directors.Update(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

func (s *Service) DeleteDirector(ctx context.Context, id int64) error {
	if _, err := s.directors.GetByID(ctx, id); err != nil {
		return err
	}
	return s.directors.Delete(ctx, id)
}

// --- Weekly availability ---

func (s *Service) WeeklyAvailability(ctx context.Context, directorID int64) ([]WeeklyAvailabilityView, error) {
	if _, err := s.directors.GetByID(ctx, directorID); err != nil {
		return nil, err
	}
	rows, err := s.availability.WeeklyByDirector(ctx, directorID)
	if err != nil {
		return nil, err
	}
	views := make([]WeeklyAvailabilityView, 0, len(rows))
	for i := range rows {
		views = append(views, toWeeklyView(&rows[i]))
	}
	return views, nil
}

// SetWeeklyAvailability upserts the window for one weekday. One row per
// director per weekday; a second save for the same day replaces the first.
func (s *Service) SetWeeklyAvailability(ctx context.Context, directorID int64, req WeeklyAvailabilityRequest) (*WeeklyAvailabilityView, error) {
	if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return nil, ErrInvalidWeekday
	}
	if _, err := s.directors.GetByID(ctx, directorID); err != nil {
		return nil, err
	}

	row := &domain.DirectorWeeklyAvailability{
		DirectorID:  directorID,
		DayOfWeek:   *req.DayOfWeek,
		AMStartTime: timezone.ToUTC(req.AMStartTime),
		AMEndTime:   timezone.ToUTC(req.AMEndTime),
		PMStartTime: timezone.ToUTC(req.PMStartTime),
		PMEndTime:   timezone.ToUTC(req.PMEndTime),
		Notes:       req.Notes,
	}
	if err := s.availability.UpsertWeekly(ctx, row); err != nil {
		return nil, err
	}
	view := toWeeklyView(row)
	return &view, nil
}

func (s *Service) DeleteWeeklyAvailability(ctx context.Context, id int64) error {
	return s.availability.DeleteWeekly(ctx, id)
}

// --- Date overrides ---

func (s *Service) DateOverrides(ctx context.Context, directorID int64) ([]DateOverrideView, error) {
	if _, err := s.directors.GetByID(ctx, directorID); err != nil {
		return nil, err
	}
	rows, err := s.availability.OverridesByDirector(ctx, directorID)
	if err != nil {
		return nil, err
	}
	views := make([]DateOverrideView, 0, len(rows))
	for i := range rows {
		views = append(views, toOverrideView(&rows[i]))
	}
	return views, nil
}

func (s *Service) CreateDateOverride(ctx context.Context, directorID int64, req DateOverrideRequest) (*DateOverrideView, error) {
	if !validDate(req.Date) {
		return nil, ErrInvalidDate
	}
	if _, err := s.directors.GetByID(ctx, directorID); err != nil {
		return nil, err
	}

	row := &domain.DirectorDateOverride{
		DirectorID:   directorID,
		Date:         req.Date,
		OverrideType: req.OverrideType,
		AMStartTime:  timezone.ToUTC(req.AMStartTime),
		AMEndTime:    timezone.ToUTC(req.AMEndTime),
		PMStartTime:  timezone.ToUTC(req.PMStartTime),
		PMEndTime:    timezone.ToUTC(req.PMEndTime),
		Notes:        req.Notes,
	}
	if err := s.availability.CreateOverride(ctx, row); err != nil {
		return nil, err
	}
	view := toOverrideView(row)
	return &view, nil
}

func (s *Service) UpdateDateOverride(ctx context.Context, id int64, req DateOverrideRequest) (*DateOverrideView, error) {
	if !validDate(req.Date) {
		return nil, ErrInvalidDate
	}
	row, err := s.availability.GetOverride(ctx, id)
	if err != nil {
		return nil, err
	}

	row.Date = req.Date
	row.OverrideType = req.OverrideType
	row.AMStartTime = timezone.ToUTC(req.AMStartTime)
	row.AMEndTime = timezone.ToUTC(req.AMEndTime)
	row.PMStartTime = timezone.ToUTC(req.PMStartTime)
	row.PMEndTime = timezone.ToUTC(req.PMEndTime)
	row.Notes = req.Notes
	if err := s.availability.UpdateOverride(ctx, row); err != nil {
		return nil, err
	}
	view := toOverrideView(row)
	return &view, nil
}

func (s *Service) DeleteDateOverride(ctx context.Context, id int64) error {
	if _, err := s.availability.GetOverride(ctx, id); err != nil {
		return err
	}
	return s.availability.DeleteOverride(ctx, id)
}

func toWeeklyView(row *domain.DirectorWeeklyAvailability) WeeklyAvailabilityView {
	return WeeklyAvailabilityView{
		ID:          row.ID,
		DirectorID:  row.DirectorID,
		DayOfWeek:   row.DayOfWeek,
		AMStartTime: timezone.ToLocal(row.AMStartTime),
		AMEndTime:   timezone.ToLocal(row.AMEndTime),
		PMStartTime: timezone.ToLocal(row.PMStartTime),
		PMEndTime:   timezone.ToLocal(row.PMEndTime),
		Notes:       row.Notes,
	}
}

func toOverrideView(row *domain.DirectorDateOverride) DateOverrideView {
	return DateOverrideView{
		ID:           row.ID,
		DirectorID:   row.DirectorID,
		Date:         row.Date,
		OverrideType: row.OverrideType,
		AMStartTime:  timezone.ToLocal(row.AMStartTime),
		AMEndTime:    timezone.ToLocal(row.AMEndTime),
		PMStartTime:  timezone.ToLocal(row.PMStartTime),
		PMEndTime:    timezone.ToLocal(row.PMEndTime),
		Notes:        row.Notes,
	}
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
