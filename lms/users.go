package lms

import (
	"context"

	matrix "github.com/xizhibei/go-matrix"
)

// Users manages accounts and sessions.
type Users struct {
	base
}

// IsAuthenticated checks a user's credentials.
func (u *Users) IsAuthenticated(ctx context.Context, userID, password string) (any, error) {
	p := matrix.NewParams().SetString("userid", userID).SetString("password", password)
	return u.call(ctx, EndpointIsAuthenticated, p)
}

// GetMyAccount returns the account that owns the API key.
func (u *Users) GetMyAccount(ctx context.Context) (any, error) {
	return u.noArgs(ctx, EndpointGetMyAccount)
}

// GetAllUsers calls get_all_users, one page at a time.
func (u *Users) GetAllUsers(ctx context.Context, page int) (any, error) {
	return u.paged(ctx, EndpointGetAllUsers, page)
}

// GetUsersWithIDs calls get_users_with_ids.
func (u *Users) GetUsersWithIDs(ctx context.Context, userIDs matrix.IDList) (any, error) {
	return u.byIDs(ctx, EndpointGetUsersWithIDs, "user_ids", userIDs)
}

// GetUsersThatMatch calls get_users_that_match, one page at a time.
func (u *Users) GetUsersThatMatch(ctx context.Context, constraints Attributes, page int) (any, error) {
	return u.matching(ctx, EndpointGetUsersThatMatch, constraints, page)
}

// AddUser calls add_user.
func (u *Users) AddUser(ctx context.Context, attrs Attributes) (any, error) {
	return u.attrs(ctx, EndpointAddUser, attrs)
}

// ArchiveStudents archives the given students. Their records are kept.
func (u *Users) ArchiveStudents(ctx context.Context, userIDs matrix.IDList) (any, error) {
	return u.byIDs(ctx, EndpointArchiveStudents, "user_ids", userIDs)
}

// ReactivateStudents calls reactivate_students.
func (u *Users) ReactivateStudents(ctx context.Context, userIDs matrix.IDList) (any, error) {
	return u.byIDs(ctx, EndpointReactivateStudents, "user_ids", userIDs)
}

// GetSessionDetails returns the current login sessions of the given users.
func (u *Users) GetSessionDetails(ctx context.Context, userIDs matrix.IDList) (any, error) {
	return u.byIDs(ctx, EndpointGetSessionDetails, "user_ids", userIDs)
}
