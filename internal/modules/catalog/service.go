package catalog

import (
	"context"

	"castboard/internal/domain"
	"castboard/internal/pkg/timezone"
	"castboard/internal/repository"
)

type Service struct {
	studios *repository.StudioRepository
	rooms   *repository.RoomRepository
}

func NewService(studios *repository.StudioRepository, rooms *repository.RoomRepository) *Service {
	return &Service{studios: studios, rooms: rooms}
}

// ListStudios returns all studios with their rooms, default windows in
// local time.
func (s *Service) ListStudios(ctx context.Context) ([]StudioView, error) {
	studios, err := s.studios.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]StudioView, 0, len(studios))
	for i := range studios {
		rooms, err := s.rooms.GetByStudio(ctx, studios[i].ID)
		if err != nil {
			return nil, err
		}
		views = append(views, toStudioView(&studios[i], rooms))
	}
	return views, nil
}

func (s *Service) GetStudio(ctx context.Context, id int64) (*StudioView, error) {
	studio, err := s.studios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rooms, err := s.rooms.GetByStudio(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toStudioView(studio, rooms)
	return &view, nil
}

func (s *Service) CreateStudio(ctx context.Context, req StudioRequest) (*StudioView, error) {
	studio := &domain.Studio{
		Name:        req.Name,
		Address:     req.Address,
		Notes:       req.Notes,
		AMStartTime: timezone.ToUTC(req.AMStartTime),
		AMEndTime:   timezone.ToUTC(req.AMEndTime),
		PMStartTime: timezone.ToUTC(req.PMStartTime),
		PMEndTime:   timezone.ToUTC(req.PMEndTime),
	}
	if err := s.studios.Create(ctx, studio); err != nil {
		return nil, err
	}
	view := toStudioView(studio, nil)
	return &view, nil
}

func (s *Service) UpdateStudio(ctx context.Context, id int64, req StudioRequest) (*StudioView, error) {
	studio, err := s.studios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	studio.Name = req.Name
	studio.Address = req.Address
	studio.Notes = req.Notes
	studio.AMStartTime = timezone.ToUTC(req.AMStartTime)
	studio.AMEndTime = timezone.ToUTC(req.AMEndTime)
	studio.PMStartTime = timezone.ToUTC(req.PMStartTime)
	studio.PMEndTime = timezone.ToUTC(req.PMEndTime)

	if err := s.studios.Update(ctx, studio); err != nil {
		return nil, err
	}

	rooms, err := s.rooms.GetByStudio(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toStudioView(studio, rooms)
	return &view, nil
}

func (s *Service) DeleteStudio(ctx context.Context, id int64) error {
	if _, err := s.studios.GetByID(ctx, id); err != nil {
		return err
	}
	return s.studios.Delete(ctx, id)
}

func (s *Service) ListRooms(ctx context.Context, studioID int64) ([]domain.Room, error) {
	if _, err := s.studios.GetByID(ctx, studioID); err != nil {
		return nil, err
	}
	return s.rooms.GetByStudio(ctx, studioID)
}

func (s *Service) CreateRoom(ctx context.Context, studioID int64, req RoomRequest) (*domain.Room, error) {
	if _, err := s.studios.GetByID(ctx, studioID); err != nil {
		return nil, err
	}
	room := &domain.Room{
		StudioID:   studioID,
		Name:       req.Name,
		RoomNumber: req.RoomNumber,
		Notes:      req.Notes,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req RoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Name = req.Name
	room.RoomNumber = req.RoomNumber
	room.Notes = req.Notes
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := s.rooms.GetByID(ctx, id); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, id)
}

func toStudioView(studio *domain.Studio, rooms []domain.Room) StudioView {
	return StudioView{
		ID:          studio.ID,
		Name:        studio.Name,
		Address:     studio.Address,
		Notes:       studio.Notes,
		AMStartTime: timezone.ToLocal(studio.AMStartTime),
		AMEndTime:   timezone.ToLocal(studio.AMEndTime),
		PMStartTime: timezone.ToLocal(studio.PMStartTime),
		PMEndTime:   timezone.ToLocal(studio.PMEndTime),
		Rooms:       rooms,
	}
}
