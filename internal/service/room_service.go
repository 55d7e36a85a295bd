package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomcare/internal/cache"
	apperrors "roomcare/internal/errors"
	"roomcare/internal/model"
	"roomcare/internal/repository"
)

const roomCacheTTL = 5 * time.Minute

// RoomPatch carries a partial room update. Nil fields are left untouched.
type RoomPatch struct {
	RoomNumber *string
	Floor      *int
	Occupied   *bool
	Facilities *[]string
}

// RoomService handles room CRUD and the safe-deletion guard.
type RoomService interface {
	CreateRoom(ctx context.Context, roomNumber string, floor int, facilities []string, occupied bool) (*model.Room, error)
	GetRoomByNumber(ctx context.Context, roomNumber string) (*model.Room, error)
	ListRooms(ctx context.Context, floor *int) ([]model.Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, roomNumber string, floor int, facilities []string, occupied bool) (*model.Room, error)
	PatchRoom(ctx context.Context, id uuid.UUID, patch RoomPatch) (*model.Room, error)
	DeleteRoom(ctx context.Context, adminID uuid.UUID, adminUsername string, roomID uuid.UUID, force bool, reason string) (string, error)
}

type roomService struct {
	roomRepo        repository.RoomRepository
	userRepo        repository.UserRepository
	reportRepo      repository.ReportRepository
	deletionLogRepo repository.DeletionLogRepository
	cache           *cache.Client
}

// NewRoomService creates a new room service.
func NewRoomService(
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
	reportRepo repository.ReportRepository,
	deletionLogRepo repository.DeletionLogRepository,
	cache *cache.Client,
) RoomService {
	return &roomService{
		roomRepo:        roomRepo,
		userRepo:        userRepo,
		reportRepo:      reportRepo,
		deletionLogRepo: deletionLogRepo,
		cache:           cache,
	}
}

func roomCacheKey(roomNumber string) string {
	return fmt.Sprintf("room:%s", roomNumber)
}

// CreateRoom creates a room with a globally unique room number.
func (s *roomService) CreateRoom(ctx context.Context, roomNumber string, floor int, facilities []string, occupied bool) (*model.Room, error) {
	existing, err := s.roomRepo.FindByNumber(ctx, roomNumber)
	if err == nil && existing != nil {
		return nil, apperrors.ErrRoomExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check room number: %w", err)
	}

	room := &model.Room{
		RoomNumber: roomNumber,
		Floor:      floor,
		Facilities: facilities,
		Occupied:   occupied,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	_ = s.cache.Delete(ctx, roomCacheKey(roomNumber))
	return room, nil
}

// GetRoomByNumber retrieves a room by its number with caching.
func (s *roomService) GetRoomByNumber(ctx context.Context, roomNumber string) (*model.Room, error) {
	if data, _ := s.cache.Get(ctx, roomCacheKey(roomNumber)); data != nil {
		var cached model.Room
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	room, err := s.roomRepo.FindByNumber(ctx, roomNumber)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}

	if payload, err := json.Marshal(room); err == nil {
		_ = s.cache.Set(ctx, roomCacheKey(roomNumber), payload, roomCacheTTL)
	}
	return room, nil
}

// ListRooms lists rooms, optionally filtered by floor.
func (s *roomService) ListRooms(ctx context.Context, floor *int) ([]model.Room, error) {
	return s.roomRepo.List(ctx, floor)
}

// UpdateRoom replaces the mutable fields of a room.
func (s *roomService) UpdateRoom(ctx context.Context, id uuid.UUID, roomNumber string, floor int, facilities []string, occupied bool) (*model.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}

	oldNumber := room.RoomNumber
	room.RoomNumber = roomNumber
	room.Floor = floor
	room.Facilities = facilities
	room.Occupied = occupied
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}
	_ = s.cache.DeleteMany(ctx, roomCacheKey(oldNumber), roomCacheKey(room.RoomNumber))
	return room, nil
}

// PatchRoom applies a partial update, used by the admin screens mainly
// to toggle occupancy.
func (s *roomService) PatchRoom(ctx context.Context, id uuid.UUID, patch RoomPatch) (*model.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}

	oldNumber := room.RoomNumber
	if patch.RoomNumber != nil {
		room.RoomNumber = *patch.RoomNumber
	}
	if patch.Floor != nil {
		room.Floor = *patch.Floor
	}
	if patch.Occupied != nil {
		room.Occupied = *patch.Occupied
	}
	if patch.Facilities != nil {
		room.Facilities = *patch.Facilities
	}
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("patch room: %w", err)
	}
	_ = s.cache.DeleteMany(ctx, roomCacheKey(oldNumber), roomCacheKey(room.RoomNumber))
	return room, nil
}

// DeleteRoom enforces the safe-deletion contract: an occupied or
// assigned room can only be deleted with force and a reason. On success
// it cascades report deletion, clears user room references and appends
// an audit entry. The three writes are intentionally sequential and
// non-transactional; per-row atomicity is all this relies on.
func (s *roomService) DeleteRoom(ctx context.Context, adminID uuid.UUID, adminUsername string, roomID uuid.UUID, force bool, reason string) (string, error) {
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperrors.ErrRoomNotFound
		}
		return "", fmt.Errorf("find room: %w", err)
	}

	reason = strings.TrimSpace(reason)

	assigned, err := s.userRepo.CountByRoomNumber(ctx, room.RoomNumber)
	if err != nil {
		return "", fmt.Errorf("count assigned users: %w", err)
	}

	if (room.Occupied || assigned > 0) && !force {
		return "", apperrors.ErrRoomInUse
	}
	if force && reason == "" {
		return "", apperrors.ErrReasonRequired
	}

	if err := s.roomRepo.Delete(ctx, room.ID); err != nil {
		return "", fmt.Errorf("delete room: %w", err)
	}
	if err := s.reportRepo.DeleteByRoomNumber(ctx, room.RoomNumber); err != nil {
		return "", fmt.Errorf("cascade delete reports: %w", err)
	}
	if err := s.userRepo.ClearRoomNumber(ctx, room.RoomNumber); err != nil {
		return "", fmt.Errorf("clear user room references: %w", err)
	}

	// Audit failure must not fail the deletion.
	entry := &model.RoomDeletionLog{
		RoomID:            room.ID,
		RoomNumber:        room.RoomNumber,
		DeletedBy:         adminID,
		DeletedByUsername: adminUsername,
		Reason:            reason,
		Force:             force,
	}
	if err := s.deletionLogRepo.Create(ctx, entry); err != nil {
		log.Printf("room deletion log write failed: %v", err)
	}

	_ = s.cache.DeleteMany(ctx, roomCacheKey(room.RoomNumber), statsStatusCacheKey, statsAdvancedCacheKey)
	return room.RoomNumber, nil
}
