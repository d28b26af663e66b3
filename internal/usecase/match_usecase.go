package usecase

import (
	"context"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/pkg/errors"
	"roomatch/pkg/logger"
)

// MatchPolicy selects how a like turns into a match.
type MatchPolicy string

const (
	// PolicyMutual requires true reciprocity: the listing owner must
	// have liked one of the actor's own active listings.
	PolicyMutual MatchPolicy = "mutual"

	// PolicyAlways matches on the first like. Demo mode.
	PolicyAlways MatchPolicy = "always"
)

type MatchUseCase struct {
	likeRepo    repository.LikeRepository
	matchRepo   repository.MatchRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	notifier    Notifier
	policy      MatchPolicy
}

func NewMatchUseCase(
	likeRepo repository.LikeRepository,
	matchRepo repository.MatchRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	policy MatchPolicy,
) *MatchUseCase {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if policy != PolicyAlways {
		policy = PolicyMutual
	}
	return &MatchUseCase{
		likeRepo:    likeRepo,
		matchRepo:   matchRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		policy:      policy,
	}
}

// LikeResult is the outcome of a like action: the recorded (or
// pre-existing) like, and the match when the like completed a pair.
type LikeResult struct {
	Like    *entity.Like      `json:"like"`
	Matched bool              `json:"matched"`
	Match   *entity.MatchView `json:"match,omitempty"`
}

// LikeListing records the actor's interest in a listing and evaluates
// the active match policy. Validation precedes every mutation: an
// invalid target or a self-like leaves the ledger untouched.
func (uc *MatchUseCase) LikeListing(ctx context.Context, actorID, listingID string) (*LikeResult, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil || !listing.IsActive {
		return nil, errors.NotFound("Listing", nil)
	}

	if listing.OwnerID == actorID {
		return nil, errors.SelfLike("Cannot like your own listing")
	}

	like, err := uc.likeRepo.Record(ctx, actorID, listingID)
	if err != nil {
		return nil, err
	}

	result := &LikeResult{Like: like}

	reciprocal := uc.policy == PolicyAlways
	if !reciprocal {
		reciprocal, err = uc.hasReciprocalLike(ctx, actorID, listing.OwnerID)
		if err != nil {
			return nil, err
		}
	}
	if !reciprocal {
		return result, nil
	}

	match, created, err := uc.matchRepo.FindOrCreate(ctx, actorID, listing.OwnerID, listingID)
	if err != nil {
		return nil, err
	}

	view, err := uc.buildMatchView(ctx, match)
	if err != nil {
		return nil, err
	}

	result.Matched = true
	result.Match = view

	if created {
		logger.Info("Match %s formed for pair (%s, %s) on listing %s", match.ID, match.Users[0], match.Users[1], listingID)
		uc.notifier.MatchCreated(match, view.UserInfos)
	}

	return result, nil
}

// LikeBuyer records interest in a buyer profile directly. Buyer likes
// reuse the listing-scoped plumbing through a synthetic listing
// reference and always form a match, mirroring how the browse-buyers
// flow behaves regardless of the configured listing policy.
func (uc *MatchUseCase) LikeBuyer(ctx context.Context, actorID, buyerID string) (*LikeResult, error) {
	if actorID == buyerID {
		return nil, errors.SelfLike("Cannot like yourself")
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if buyer == nil || buyer.Role != entity.RoleBuyer {
		return nil, errors.NotFound("Buyer", nil)
	}

	ref := entity.BuyerRef(buyerID)

	like, err := uc.likeRepo.Record(ctx, actorID, ref)
	if err != nil {
		return nil, err
	}

	match, created, err := uc.matchRepo.FindOrCreate(ctx, actorID, buyerID, ref)
	if err != nil {
		return nil, err
	}

	view, err := uc.buildMatchView(ctx, match)
	if err != nil {
		return nil, err
	}

	if created {
		logger.Info("Buyer match %s formed for pair (%s, %s)", match.ID, match.Users[0], match.Users[1])
		uc.notifier.MatchCreated(match, view.UserInfos)
	}

	return &LikeResult{Like: like, Matched: true, Match: view}, nil
}

// Unlike removes the actor's like on a target. An existing match
// survives the unlike; a match is never retracted once formed.
func (uc *MatchUseCase) Unlike(ctx context.Context, actorID, targetID string) (bool, error) {
	return uc.likeRepo.Remove(ctx, actorID, targetID)
}

// FindMatchForPair is the canonical idempotent lookup over the
// normalized pair key.
func (uc *MatchUseCase) FindMatchForPair(ctx context.Context, userA, userB, listingRef string) (*entity.Match, error) {
	return uc.matchRepo.FindByPair(ctx, userA, userB, listingRef)
}

// ListMatches returns the user's matches, most recently active first,
// resolved to display form.
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID string) ([]*entity.MatchView, error) {
	matches, err := uc.matchRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*entity.MatchView, 0, len(matches))
	for _, match := range matches {
		view, err := uc.buildMatchView(ctx, match)
		if err != nil {
			logger.Warn("Skipping match %s in listing: %v", match.ID, err)
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

// GetMatch returns a single match, restricted to its two parties.
func (uc *MatchUseCase) GetMatch(ctx context.Context, matchID, requesterID string) (*entity.MatchView, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, errors.NotFound("Match", nil)
	}
	if !match.HasUser(requesterID) {
		return nil, errors.NotAuthorized("Not authorized to view this match", nil)
	}
	return uc.buildMatchView(ctx, match)
}

// hasReciprocalLike walks the actor's active listings in ascending
// creation order and reports whether the owner has liked any of them.
// The first hit wins; the walk order makes the outcome deterministic.
func (uc *MatchUseCase) hasReciprocalLike(ctx context.Context, actorID, ownerID string) (bool, error) {
	mine, err := uc.listingRepo.ListActiveByOwner(ctx, actorID)
	if err != nil {
		return false, err
	}

	for _, l := range mine {
		liked, err := uc.likeRepo.Exists(ctx, ownerID, l.ID)
		if err != nil {
			return false, err
		}
		if liked {
			return true, nil
		}
	}
	return false, nil
}

// buildMatchView resolves both users and the listing to display form.
// Buyer matches carry a synthetic listing: there is no stored record
// behind the reference, so one is shaped from the buyer's profile.
func (uc *MatchUseCase) buildMatchView(ctx context.Context, match *entity.Match) (*entity.MatchView, error) {
	view := &entity.MatchView{Match: match}

	for _, userID := range match.Users {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			logger.Warn("User %s not found while resolving match %s: %v", userID, match.ID, err)
			continue
		}
		view.UserInfos = append(view.UserInfos, user.Info())
	}

	if entity.IsBuyerRef(match.ListingID) {
		view.Listing = uc.syntheticBuyerListing(ctx, match.ListingID)
		return view, nil
	}

	listing, err := uc.listingRepo.GetByID(ctx, match.ListingID)
	if err != nil || listing == nil {
		logger.Warn("Listing %s not found while resolving match %s: %v", match.ListingID, match.ID, err)
		return view, nil
	}

	lv := &entity.ListingView{Listing: listing}
	if owner, err := uc.userRepo.GetByID(ctx, listing.OwnerID); err == nil && owner != nil {
		info := owner.Info()
		lv.Owner = &info
	}
	view.Listing = lv

	return view, nil
}

func (uc *MatchUseCase) syntheticBuyerListing(ctx context.Context, ref string) *entity.ListingView {
	listing := &entity.Listing{
		ID:           ref,
		Neighborhood: "Any",
		IsActive:     true,
	}

	buyer, err := uc.userRepo.GetByID(ctx, entity.BuyerIDFromRef(ref))
	if err != nil || buyer == nil {
		listing.Title = "Looking for a place"
		return &entity.ListingView{Listing: listing}
	}

	listing.OwnerID = buyer.ID
	listing.Title = buyer.Name + " is looking for a place"
	listing.Price = buyer.Preferences.PriceMax
	if len(buyer.Preferences.PreferredLocations) > 0 {
		listing.Neighborhood = buyer.Preferences.PreferredLocations[0]
	}
	listing.CreatedAt = buyer.CreatedAt

	info := buyer.Info()
	return &entity.ListingView{Listing: listing, Owner: &info}
}
