package lms

import (
	"context"

	matrix "github.com/xizhibei/go-matrix"
)

// Ecommerce reads orders.
type Ecommerce struct {
	base
}

// GetAllOrders returns every order of the site.
func (e *Ecommerce) GetAllOrders(ctx context.Context) (any, error) {
	return e.noArgs(ctx, EndpointGetAllOrders)
}

// GetOrdersWithIDs calls get_orders_with_ids.
func (e *Ecommerce) GetOrdersWithIDs(ctx context.Context, orderIDs matrix.IDList) (any, error) {
	return e.byIDs(ctx, EndpointGetOrdersWithIDs, "order_ids", orderIDs)
}

// GetOrdersForOrganization takes a list of organizations under the singular
// organization_id key.
func (e *Ecommerce) GetOrdersForOrganization(ctx context.Context, organizationIDs matrix.IDList) (any, error) {
	return e.byIDs(ctx, EndpointGetOrdersForOrganization, "organization_id", organizationIDs)
}

// GetOrdersForUser calls get_orders_for_user.
func (e *Ecommerce) GetOrdersForUser(ctx context.Context, userIDs matrix.IDList) (any, error) {
	return e.byIDs(ctx, EndpointGetOrdersForUser, "user_id", userIDs)
}
