package lms

import (
	"context"

	matrix "github.com/xizhibei/go-matrix"
)

// Games reads the games of a site or class and player progress in them.
type Games struct {
	base
}

// GetGamesForSite calls get_games_for_site.
func (g *Games) GetGamesForSite(ctx context.Context) (any, error) {
	return g.noArgs(ctx, EndpointGetGamesForSite)
}

// GetGamesForClass calls get_games_for_class.
func (g *Games) GetGamesForClass(ctx context.Context, classID string) (any, error) {
	return g.byID(ctx, EndpointGetGamesForClass, "class_id", classID)
}

// GetStatusForAllPlayers returns the progress of everyone playing gameID.
func (g *Games) GetStatusForAllPlayers(ctx context.Context, gameID string) (any, error) {
	return g.byID(ctx, EndpointGetStatusForAllPlayers, "game_id", gameID)
}

// GetStatusForPlayers calls get_status_for_players.
func (g *Games) GetStatusForPlayers(ctx context.Context, gameID string, userIDs matrix.IDList) (any, error) {
	return g.byIDWithIDs(ctx, EndpointGetStatusForPlayers, "game_id", gameID, "user_ids", userIDs)
}
