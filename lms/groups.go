package lms

import (
	"context"

	matrix "github.com/xizhibei/go-matrix"
)

// Groups manages groups, their members and their admins.
type Groups struct {
	base
}

// GetAllGroups calls get_all_groups, one page at a time.
func (g *Groups) GetAllGroups(ctx context.Context, page int) (any, error) {
	return g.paged(ctx, EndpointGetAllGroups, page)
}

// GetGroupsWithIDs calls get_groups_with_ids.
func (g *Groups) GetGroupsWithIDs(ctx context.Context, groupIDs matrix.IDList) (any, error) {
	return g.byIDs(ctx, EndpointGetGroupsWithIDs, "group_ids", groupIDs)
}

// GetGroupsThatMatch calls get_groups_that_match, one page at a time.
func (g *Groups) GetGroupsThatMatch(ctx context.Context, constraints Attributes, page int) (any, error) {
	return g.matching(ctx, EndpointGetGroupsThatMatch, constraints, page)
}

// AddGroup calls add_group.
func (g *Groups) AddGroup(ctx context.Context, attrs Attributes) (any, error) {
	return g.attrs(ctx, EndpointAddGroup, attrs)
}

// EditGroup calls edit_group.
func (g *Groups) EditGroup(ctx context.Context, groupID string, attrs Attributes) (any, error) {
	return g.attrsWithID(ctx, EndpointEditGroup, attrs, "group_id", groupID)
}

// DeleteGroups calls delete_groups.
func (g *Groups) DeleteGroups(ctx context.Context, groupIDs matrix.IDList) (any, error) {
	return g.byIDs(ctx, EndpointDeleteGroups, "group_ids", groupIDs)
}

// GetMembersForGroup calls get_members_for_group.
func (g *Groups) GetMembersForGroup(ctx context.Context, groupID string) (any, error) {
	return g.byID(ctx, EndpointGetMembersForGroup, "group_id", groupID)
}

// AddMembersToGroup calls add_members_to_group.
func (g *Groups) AddMembersToGroup(ctx context.Context, groupID string, userIDs matrix.IDList) (any, error) {
	return g.byIDWithIDs(ctx, EndpointAddMembersToGroup, "group_id", groupID, "user_ids", userIDs)
}

// RemoveMembersFromGroup calls remove_members_from_group.
func (g *Groups) RemoveMembersFromGroup(ctx context.Context, groupID string, userIDs matrix.IDList) (any, error) {
	return g.byIDWithIDs(ctx, EndpointRemoveMembersFromGroup, "group_id", groupID, "user_ids", userIDs)
}

// GetGroupsWithMember calls get_groups_with_member.
func (g *Groups) GetGroupsWithMember(ctx context.Context, userID string) (any, error) {
	return g.byID(ctx, EndpointGetGroupsWithMember, "user_id", userID)
}

// GetAdminsForGroup calls get_admins_for_group.
func (g *Groups) GetAdminsForGroup(ctx context.Context, groupID string) (any, error) {
	return g.byID(ctx, EndpointGetAdminsForGroup, "group_id", groupID)
}

// AddAdminsToGroup calls add_admins_to_group.
func (g *Groups) AddAdminsToGroup(ctx context.Context, groupID string, userIDs matrix.IDList) (any, error) {
	return g.byIDWithIDs(ctx, EndpointAddAdminsToGroup, "group_id", groupID, "user_ids", userIDs)
}

// RemoveAdminsFromGroup calls remove_admins_from_group.
func (g *Groups) RemoveAdminsFromGroup(ctx context.Context, groupID string, userIDs matrix.IDList) (any, error) {
	return g.byIDWithIDs(ctx, EndpointRemoveAdminsFromGroup, "group_id", groupID, "user_ids", userIDs)
}

// GetGroupsWithAdmin calls get_groups_with_admin.
func (g *Groups) GetGroupsWithAdmin(ctx context.Context, userID string) (any, error) {
	return g.byID(ctx, EndpointGetGroupsWithAdmin, "user_id", userID)
}
