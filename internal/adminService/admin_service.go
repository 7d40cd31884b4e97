package admin

import (
	"errors"
	"fmt"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/auth"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
)

const casRetryLimit = 3

// SettingsPatch carries the fields an admin wants to change. Nil means keep.
type SettingsPatch struct {
	SnipingWindowMinutes         *int
	ExtensionMinutes             *int
	DefaultMinIncrement          *float64
	DefaultPacketDurationMinutes *int
	MaxImagesPerAuction          *int
	BidderMaskingEnabled         *bool
}

// ModerationPatch carries the auction fields open to admin moderation.
type ModerationPatch struct {
	IsActive    *bool
	IsModerated *bool
	Status      *string
}

// UserFlagsPatch carries the profile flags open to admin mutation.
type UserFlagsPatch struct {
	ApprovedBidder *bool
	ApprovedSeller *bool
	IsAdmin        *bool
}

// AdminService performs guarded single-row writes on settings, auction
// moderation fields and profile flags. Every call requires an admin actor.
type AdminService struct {
	repo repository.AuctionDB
	dir  auth.Directory
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(repo repository.AuctionDB, dir auth.Directory) *AdminService {
	return &AdminService{repo: repo, dir: dir}
}

func (s *AdminService) requireAdmin(actorID string) error {
	if actorID == "" || !s.dir.IsAdmin(actorID) {
		return fmt.Errorf("service: %w - admin role required", auctionerrors.ErrNotAuthorized)
	}
	return nil
}

// UpdateSettings applies a patch to the settings row. Last write wins;
// settings changes are infrequent and not safety-critical.
func (s *AdminService) UpdateSettings(actorID string, patch SettingsPatch) (model.Settings, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return model.Settings{}, err
	}

	settings := s.repo.GetSettings()
	if patch.SnipingWindowMinutes != nil {
		settings.SnipingWindowMinutes = *patch.SnipingWindowMinutes
	}
	if patch.ExtensionMinutes != nil {
		settings.ExtensionMinutes = *patch.ExtensionMinutes
	}
	if patch.DefaultMinIncrement != nil {
		settings.DefaultMinIncrement = *patch.DefaultMinIncrement
	}
	if patch.DefaultPacketDurationMinutes != nil {
		settings.DefaultPacketDurationMinutes = *patch.DefaultPacketDurationMinutes
	}
	if patch.MaxImagesPerAuction != nil {
		settings.MaxImagesPerAuction = *patch.MaxImagesPerAuction
	}
	if patch.BidderMaskingEnabled != nil {
		settings.BidderMaskingEnabled = *patch.BidderMaskingEnabled
	}

	if settings.SnipingWindowMinutes < 0 || settings.ExtensionMinutes <= 0 {
		return model.Settings{}, fmt.Errorf("service: %w - sniping window must be >= 0 and extension > 0", auctionerrors.ErrInvalidInput)
	}
	if settings.DefaultMinIncrement <= 0 || settings.DefaultPacketDurationMinutes <= 0 {
		return model.Settings{}, fmt.Errorf("service: %w - default increment and packet duration must be > 0", auctionerrors.ErrInvalidInput)
	}
	if settings.MaxImagesPerAuction < 0 {
		return model.Settings{}, fmt.Errorf("service: %w - image cap must be >= 0", auctionerrors.ErrInvalidInput)
	}

	s.repo.PutSettings(settings)
	return settings, nil
}

// GetSettings returns the current settings row for admin inspection.
func (s *AdminService) GetSettings(actorID string) (model.Settings, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return model.Settings{}, err
	}
	return s.repo.GetSettings(), nil
}

// ModerateAuction applies a moderation patch to an auction through the
// versioned write path, retrying briefly if a bid races the update.
func (s *AdminService) ModerateAuction(actorID, auctionID string, patch ModerationPatch) (model.Auction, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return model.Auction{}, err
	}
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	if patch.Status != nil {
		switch *patch.Status {
		case model.StatusUpcoming, model.StatusLive, model.StatusEnded:
		default:
			return model.Auction{}, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidInput, *patch.Status)
		}
	}

	for attempt := 0; attempt < casRetryLimit; attempt++ {
		a, err := s.repo.GetAuction(auctionID)
		if err != nil {
			return model.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
		}

		if patch.IsActive != nil {
			a.IsActive = *patch.IsActive
		}
		if patch.IsModerated != nil {
			a.IsModerated = *patch.IsModerated
		}
		if patch.Status != nil {
			a.Status = *patch.Status
		}

		stored, err := s.repo.CompareAndSwapAuction(a)
		if err != nil {
			if errors.Is(err, auctionerrors.ErrVersionConflict) {
				continue
			}
			return model.Auction{}, fmt.Errorf("service: failed to moderate auction %s: %w", auctionID, err)
		}
		return stored, nil
	}

	return model.Auction{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrConflict)
}

// SetUserFlags flips approval and role flags on a profile.
func (s *AdminService) SetUserFlags(actorID, userID string, patch UserFlagsPatch) (model.User, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return model.User{}, err
	}
	if userID == "" {
		return model.User{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}

	u, err := s.dir.UpdateUser(userID, func(u *model.User) {
		if patch.ApprovedBidder != nil {
			u.ApprovedBidder = *patch.ApprovedBidder
		}
		if patch.ApprovedSeller != nil {
			u.ApprovedSeller = *patch.ApprovedSeller
		}
		if patch.IsAdmin != nil {
			u.IsAdmin = *patch.IsAdmin
		}
	})
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to update user %s: %w", userID, err)
	}
	return u, nil
}
