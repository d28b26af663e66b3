package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/pkg/errors"
	"roomatch/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	likeRepo    repository.LikeRepository
	userRepo    repository.UserRepository
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
	}
}

type CreateListingInput struct {
	Title          string
	Price          float64
	Neighborhood   string
	StartDate      time.Time
	EndDate        time.Time
	Images         []string
	Vibes          []string
	PromptQuestion string
	PromptAnswer   string
	Preferences    entity.ListingPreferences
}

type UpdateListingInput struct {
	Title          *string
	Price          *float64
	Neighborhood   *string
	StartDate      *time.Time
	EndDate        *time.Time
	Images         *[]string
	Vibes          *[]string
	PromptQuestion *string
	PromptAnswer   *string
	IsActive       *bool
}

func (uc *ListingUseCase) Create(ctx context.Context, ownerID string, input CreateListingInput) (*entity.ListingView, error) {
	now := time.Now()
	listing := &entity.Listing{
		ID:             uuid.New().String(),
		OwnerID:        ownerID,
		Title:          input.Title,
		Price:          input.Price,
		Neighborhood:   input.Neighborhood,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Images:         input.Images,
		Vibes:          input.Vibes,
		PromptQuestion: input.PromptQuestion,
		PromptAnswer:   input.PromptAnswer,
		Preferences:    input.Preferences,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	logger.Info("Listing %s created by user %s", listing.ID, ownerID)
	return uc.withOwner(ctx, listing), nil
}

func (uc *ListingUseCase) Get(ctx context.Context, id string) (*entity.ListingView, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.withOwner(ctx, listing), nil
}

// Update applies the set fields. Only the owner may mutate a listing.
func (uc *ListingUseCase) Update(ctx context.Context, actorID, id string, input UpdateListingInput) (*entity.ListingView, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != actorID {
		return nil, errors.NotAuthorized("Not authorized to update this listing", nil)
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Price != nil {
		listing.Price = *input.Price
	}
	if input.Neighborhood != nil {
		listing.Neighborhood = *input.Neighborhood
	}
	if input.StartDate != nil {
		listing.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		listing.EndDate = *input.EndDate
	}
	if input.Images != nil {
		listing.Images = *input.Images
	}
	if input.Vibes != nil {
		listing.Vibes = *input.Vibes
	}
	if input.PromptQuestion != nil {
		listing.PromptQuestion = *input.PromptQuestion
	}
	if input.PromptAnswer != nil {
		listing.PromptAnswer = *input.PromptAnswer
	}
	if input.IsActive != nil {
		listing.IsActive = *input.IsActive
	}
	listing.UpdatedAt = time.Now()

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return uc.withOwner(ctx, listing), nil
}

// Delete removes a listing. Only the owner may delete.
func (uc *ListingUseCase) Delete(ctx context.Context, actorID, id string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.OwnerID != actorID {
		return errors.NotAuthorized("Not authorized to delete this listing", nil)
	}
	return uc.listingRepo.Delete(ctx, id)
}

// Browse returns active listings for the swipe deck: the caller's own
// listings and anything already liked are excluded. browseType narrows
// by the owner's role: "sellers" keeps listings from sellers and
// dual-role users, "buyers" keeps listings from pure buyers.
func (uc *ListingUseCase) Browse(ctx context.Context, userID, browseType string) ([]*entity.ListingView, error) {
	likes, err := uc.likeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	likedIDs := make([]string, 0, len(likes))
	for _, like := range likes {
		likedIDs = append(likedIDs, like.TargetID)
	}

	listings, err := uc.listingRepo.List(ctx, repository.ListingFilter{
		ActiveOnly:     true,
		ExcludeOwnerID: userID,
		ExcludeIDs:     likedIDs,
	})
	if err != nil {
		return nil, err
	}

	if browseType == "sellers" || browseType == "buyers" {
		allowed, err := uc.ownerIDsByRole(ctx, browseType)
		if err != nil {
			return nil, err
		}
		filtered := listings[:0]
		for _, l := range listings {
			if allowed[l.OwnerID] {
				filtered = append(filtered, l)
			}
		}
		listings = filtered
	}

	views := make([]*entity.ListingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, uc.withOwner(ctx, l))
	}
	return views, nil
}

// ListBuyers returns all pure-buyer users except the caller, for the
// browse-buyers tab.
func (uc *ListingUseCase) ListBuyers(ctx context.Context, userID string) ([]*entity.User, error) {
	buyers, err := uc.userRepo.ListByRole(ctx, entity.RoleBuyer)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(buyers))
	for _, b := range buyers {
		if b.ID != userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// MyListings returns everything the user owns, newest first.
func (uc *ListingUseCase) MyListings(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	return uc.listingRepo.List(ctx, repository.ListingFilter{OwnerID: ownerID})
}

// SavedListings returns active listings the user has liked, most
// recently liked first.
func (uc *ListingUseCase) SavedListings(ctx context.Context, userID string) ([]*entity.ListingView, error) {
	likes, err := uc.likeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(likes, func(i, j int) bool {
		return likes[i].CreatedAt.After(likes[j].CreatedAt)
	})

	var views []*entity.ListingView
	for _, like := range likes {
		if entity.IsBuyerRef(like.TargetID) {
			continue
		}
		listing, err := uc.listingRepo.GetByID(ctx, like.TargetID)
		if err != nil || listing == nil || !listing.IsActive {
			continue
		}
		views = append(views, uc.withOwner(ctx, listing))
	}
	return views, nil
}

func (uc *ListingUseCase) ownerIDsByRole(ctx context.Context, browseType string) (map[string]bool, error) {
	var roles []string
	if browseType == "sellers" {
		roles = []string{entity.RoleSeller, entity.RoleBoth}
	} else {
		roles = []string{entity.RoleBuyer}
	}

	allowed := make(map[string]bool)
	for _, role := range roles {
		users, err := uc.userRepo.ListByRole(ctx, role)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			allowed[u.ID] = true
		}
	}
	return allowed, nil
}

func (uc *ListingUseCase) withOwner(ctx context.Context, listing *entity.Listing) *entity.ListingView {
	view := &entity.ListingView{Listing: listing}
	owner, err := uc.userRepo.GetByID(ctx, listing.OwnerID)
	if err != nil || owner == nil {
		logger.Warn("Owner %s not found for listing %s", listing.OwnerID, listing.ID)
		return view
	}
	info := owner.Info()
	view.Owner = &info
	return view
}
