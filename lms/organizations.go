package lms

import (
	"context"

	matrix "github.com/xizhibei/go-matrix"
)

// Organizations manages organizations.
type Organizations struct {
	base
}

// GetAllOrganizations calls get_all_organizations, one page at a time.
func (o *Organizations) GetAllOrganizations(ctx context.Context, page int) (any, error) {
	return o.paged(ctx, EndpointGetAllOrganizations, page)
}

// GetOrganizationsWithIDs calls get_organizations_with_ids.
func (o *Organizations) GetOrganizationsWithIDs(ctx context.Context, organizationIDs matrix.IDList) (any, error) {
	return o.byIDs(ctx, EndpointGetOrganizationsWithIDs, "organization_ids", organizationIDs)
}

// AddOrganization calls add_organization.
func (o *Organizations) AddOrganization(ctx context.Context, attrs Attributes) (any, error) {
	return o.attrs(ctx, EndpointAddOrganization, attrs)
}

// EditOrganization calls edit_organization.
func (o *Organizations) EditOrganization(ctx context.Context, organizationID string, attrs Attributes) (any, error) {
	return o.attrsWithID(ctx, EndpointEditOrganization, attrs, "organization_id", organizationID)
}

// DeleteOrganizations deletes organizations permanently.
func (o *Organizations) DeleteOrganizations(ctx context.Context, organizationIDs matrix.IDList) (any, error) {
	return o.byIDs(ctx, EndpointDeleteOrganizations, "organization_ids", organizationIDs)
}
