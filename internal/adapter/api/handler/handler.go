package handler

import (
	"roomatch/internal/usecase"
)

var (
	authHandler    *AuthHandler
	listingHandler *ListingHandler
	matchHandler   *MatchHandler
	healthHandler  *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	listingUseCase *usecase.ListingUseCase,
	matchUseCase *usecase.MatchUseCase,
	messageUseCase *usecase.MessageUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	listingHandler = NewListingHandler(listingUseCase, matchUseCase)
	matchHandler = NewMatchHandler(matchUseCase, messageUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetMatchHandler() *MatchHandler {
	return matchHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
