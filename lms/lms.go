// Package lms wraps the Matrix LMS endpoints. Every module holds a
// matrix.Transport and nothing else, so a single *matrix.Client can back all
// of them, and tests can substitute a mock.
package lms

import (
	"context"

	matrix "github.com/xizhibei/go-matrix"
)

// Attributes are free-form endpoint attributes or constraints. Slice values
// are sent as sequences. Keys are emitted in sorted order; explicit id
// parameters of a wrapper always win over a same-named attribute.
type Attributes map[string]any

type base struct {
	t matrix.Transport
}

// GetVersion returns the version number of the API.
func (b base) GetVersion(ctx context.Context) (any, error) {
	return b.t.Call(ctx, EndpointGetVersion, matrix.NewParams())
}

func (b base) call(ctx context.Context, method string, p *matrix.Params) (any, error) {
	return b.t.Call(ctx, method, p)
}

func (b base) noArgs(ctx context.Context, method string) (any, error) {
	return b.call(ctx, method, matrix.NewParams())
}

func (b base) paged(ctx context.Context, method string, page int) (any, error) {
	return b.call(ctx, method, matrix.NewParams().Set("page", page))
}

func (b base) byID(ctx context.Context, method, key, id string) (any, error) {
	return b.call(ctx, method, matrix.NewParams().SetString(key, id))
}

func (b base) byIDs(ctx context.Context, method, key string, ids matrix.IDList) (any, error) {
	return b.call(ctx, method, matrix.NewParams().SetIDs(key, ids))
}

func (b base) byIDWithIDs(ctx context.Context, method, key, id, listKey string, ids matrix.IDList) (any, error) {
	return b.call(ctx, method, matrix.NewParams().SetString(key, id).SetIDs(listKey, ids))
}

// matching sends constraints followed by page; page always wins.
func (b base) matching(ctx context.Context, method string, constraints Attributes, page int) (any, error) {
	return b.call(ctx, method, matrix.NewParams().Merge(constraints).Set("page", page))
}

func (b base) attrs(ctx context.Context, method string, attrs Attributes) (any, error) {
	return b.call(ctx, method, matrix.NewParams().Merge(attrs))
}

// attrsWithID sends attrs followed by key=id; id always wins.
func (b base) attrsWithID(ctx context.Context, method string, attrs Attributes, key, id string) (any, error) {
	return b.call(ctx, method, matrix.NewParams().Merge(attrs).SetString(key, id))
}

// API groups every module over one transport.
type API struct {
	base

	Classes           *Classes
	ClassesManagement *ClassesManagement
	Ecommerce         *Ecommerce
	Games             *Games
	Groups            *Groups
	NewsFeeds         *NewsFeeds
	Organizations     *Organizations
	Students          *Students
	Teachers          *Teachers
	Users             *Users
}

// New builds every module on top of t.
func New(t matrix.Transport) *API {
	b := base{t: t}
	return &API{
		base:              b,
		Classes:           &Classes{b},
		ClassesManagement: &ClassesManagement{b},
		Ecommerce:         &Ecommerce{b},
		Games:             &Games{b},
		Groups:            &Groups{b},
		NewsFeeds:         &NewsFeeds{b},
		Organizations:     &Organizations{b},
		Students:          &Students{b},
		Teachers:          &Teachers{b},
		Users:             &Users{b},
	}
}

// NewClasses returns the Classes module bound to t.
func NewClasses(t matrix.Transport) *Classes { return &Classes{base{t}} }

// NewClassesManagement returns the ClassesManagement module bound to t.
func NewClassesManagement(t matrix.Transport) *ClassesManagement { return &ClassesManagement{base{t}} }

// NewEcommerce returns the Ecommerce module bound to t.
func NewEcommerce(t matrix.Transport) *Ecommerce { return &Ecommerce{base{t}} }

// NewGames returns the Games module bound to t.
func NewGames(t matrix.Transport) *Games { return &Games{base{t}} }

// NewGroups returns the Groups module bound to t.
func NewGroups(t matrix.Transport) *Groups { return &Groups{base{t}} }

// NewNewsFeeds returns the NewsFeeds module bound to t.
func NewNewsFeeds(t matrix.Transport) *NewsFeeds { return &NewsFeeds{base{t}} }

// NewOrganizations returns the Organizations module bound to t.
func NewOrganizations(t matrix.Transport) *Organizations { return &Organizations{base{t}} }

// NewStudents returns the Students module bound to t.
func NewStudents(t matrix.Transport) *Students { return &Students{base{t}} }

// NewTeachers returns the Teachers module bound to t.
func NewTeachers(t matrix.Transport) *Teachers { return &Teachers{base{t}} }

// NewUsers returns the Users module bound to t.
func NewUsers(t matrix.Transport) *Users { return &Users{base{t}} }
