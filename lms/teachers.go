package lms

import (
	"context"

	matrix "github.com/xizhibei/go-matrix"
)

// Teachers manages which teachers teach which classes.
type Teachers struct {
	base
}

// GetTeachersForClass calls get_teachers_for_class.
func (t *Teachers) GetTeachersForClass(ctx context.Context, classID string) (any, error) {
	return t.byID(ctx, EndpointGetTeachersForClass, "class_id", classID)
}

// AddTeachersToClass calls add_teachers_to_class.
func (t *Teachers) AddTeachersToClass(ctx context.Context, classID string, userIDs matrix.IDList) (any, error) {
	return t.byIDWithIDs(ctx, EndpointAddTeachersToClass, "class_id", classID, "user_ids", userIDs)
}

// RemoveTeachersFromClass calls remove_teachers_from_class.
func (t *Teachers) RemoveTeachersFromClass(ctx context.Context, classID string, userIDs matrix.IDList) (any, error) {
	return t.byIDWithIDs(ctx, EndpointRemoveTeachersFromClass, "class_id", classID, "user_ids", userIDs)
}

// GetClassesTaughtBy calls get_classes_taught_by.
func (t *Teachers) GetClassesTaughtBy(ctx context.Context, userID string) (any, error) {
	return t.byID(ctx, EndpointGetClassesTaughtBy, "user_id", userID)
}
