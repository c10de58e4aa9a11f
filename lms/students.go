package lms

import (
	"context"

	matrix "github.com/xizhibei/go-matrix"
)

// Students manages class enrollment.
type Students struct {
	base
}

// GetStudentsForClass calls get_students_for_class.
func (s *Students) GetStudentsForClass(ctx context.Context, classID string) (any, error) {
	return s.byID(ctx, EndpointGetStudentsForClass, "class_id", classID)
}

// AddStudentsToClass calls add_students_to_class.
func (s *Students) AddStudentsToClass(ctx context.Context, classID string, userIDs matrix.IDList) (any, error) {
	return s.byIDWithIDs(ctx, EndpointAddStudentsToClass, "class_id", classID, "user_ids", userIDs)
}

// RemoveStudentsFromClass calls remove_students_from_class.
func (s *Students) RemoveStudentsFromClass(ctx context.Context, classID string, userIDs matrix.IDList) (any, error) {
	return s.byIDWithIDs(ctx, EndpointRemoveStudentsFromClass, "class_id", classID, "user_ids", userIDs)
}

// DeactivateStudentsInClass calls deactivate_students_in_class.
func (s *Students) DeactivateStudentsInClass(ctx context.Context, classID string, userIDs matrix.IDList) (any, error) {
	return s.byIDWithIDs(ctx, EndpointDeactivateStudentsInClass, "class_id", classID, "user_ids", userIDs)
}

// ReactivateStudentsInClass calls reactivate_students_in_class.
func (s *Students) ReactivateStudentsInClass(ctx context.Context, classID string, userIDs matrix.IDList) (any, error) {
	return s.byIDWithIDs(ctx, EndpointReactivateStudentsInClass, "class_id", classID, "user_ids", userIDs)
}

// GetStatusOfClasses calls get_status_of_classes.
func (s *Students) GetStatusOfClasses(ctx context.Context, userID string) (any, error) {
	return s.byID(ctx, EndpointGetStatusOfClasses, "user_id", userID)
}

// GetClassesEnrolledBy calls get_classes_enrolled_by.
func (s *Students) GetClassesEnrolledBy(ctx context.Context, userID string) (any, error) {
	return s.byID(ctx, EndpointGetClassesEnrolledBy, "user_id", userID)
}
