package lms

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"github.com/cockroachdb/errors"

	matrix "github.com/xizhibei/go-matrix"
)

// ClassesManagement covers paths, lessons, attendance, grades, resources and
// curricula.
type ClassesManagement struct {
	base
}

// Grade is one entry of SetGradesForAssignment.
type Grade struct {
	UserID string `json:"user_id"`
	Grade  string `json:"grade"`
}

// GetAllPaths calls get_all_paths, one page at a time.
func (c *ClassesManagement) GetAllPaths(ctx context.Context, page int) (any, error) {
	return c.paged(ctx, EndpointGetAllPaths, page)
}

// GetPathsWithIDs calls get_paths_with_ids.
func (c *ClassesManagement) GetPathsWithIDs(ctx context.Context, pathIDs matrix.IDList) (any, error) {
	return c.byIDs(ctx, EndpointGetPathsWithIDs, "path_ids", pathIDs)
}

// GetAdminsForPath calls get_admins_for_path.
func (c *ClassesManagement) GetAdminsForPath(ctx context.Context, pathID string) (any, error) {
	return c.byID(ctx, EndpointGetAdminsForPath, "path_id", pathID)
}

// GetStudentsForPath calls get_students_for_path.
func (c *ClassesManagement) GetStudentsForPath(ctx context.Context, pathID string) (any, error) {
	return c.byID(ctx, EndpointGetStudentsForPath, "path_id", pathID)
}

// AddStudentsToPath calls add_students_to_path.
func (c *ClassesManagement) AddStudentsToPath(ctx context.Context, pathID string, userIDs matrix.IDList) (any, error) {
	return c.byIDWithIDs(ctx, EndpointAddStudentsToPath, "path_id", pathID, "user_ids", userIDs)
}

// RemoveStudentsFromPath calls remove_students_from_path.
func (c *ClassesManagement) RemoveStudentsFromPath(ctx context.Context, pathID string, userIDs matrix.IDList) (any, error) {
	return c.byIDWithIDs(ctx, EndpointRemoveStudentsFromPath, "path_id", pathID, "user_ids", userIDs)
}

// GetLessonsForClass calls get_lessons_for_class.
func (c *ClassesManagement) GetLessonsForClass(ctx context.Context, classID string) (any, error) {
	return c.byID(ctx, EndpointGetLessonsForClass, "class_id", classID)
}

// GetAssignmentsForClass calls get_assignments_for_class.
func (c *ClassesManagement) GetAssignmentsForClass(ctx context.Context, classID string) (any, error) {
	return c.byID(ctx, EndpointGetAssignmentsForClass, "class_id", classID)
}

// GetMasteryForClass calls get_mastery_for_class.
func (c *ClassesManagement) GetMasteryForClass(ctx context.Context, classID string) (any, error) {
	return c.byID(ctx, EndpointGetMasteryForClass, "class_id", classID)
}

// GetAllAttendance calls get_all_attendance.
func (c *ClassesManagement) GetAllAttendance(ctx context.Context, classID string) (any, error) {
	return c.byID(ctx, EndpointGetAllAttendance, "class_id", classID)
}

// GetAttendance returns attendance of a class at dateAndTime, given in the
// service's own date format.
func (c *ClassesManagement) GetAttendance(ctx context.Context, classID, dateAndTime string) (any, error) {
	p := matrix.NewParams().SetString("class_id", classID).SetString("date_and_time", dateAndTime)
	return c.call(ctx, EndpointGetAttendance, p)
}

// GetGradesForClass calls get_grades_for_class.
func (c *ClassesManagement) GetGradesForClass(ctx context.Context, classID string) (any, error) {
	return c.byID(ctx, EndpointGetGradesForClass, "class_id", classID)
}

// GetGradesForUser calls get_grades_for_user.
func (c *ClassesManagement) GetGradesForUser(ctx context.Context, userID string) (any, error) {
	return c.byID(ctx, EndpointGetGradesForUser, "user_id", userID)
}

// SetGradesForAssignment sends each grade as a JSON object under grades[].
// Only the grade text is URL-encoded inside the object.
func (c *ClassesManagement) SetGradesForAssignment(ctx context.Context, assignmentID string, grades []Grade) (any, error) {
	encoded, err := EncodeGrades(grades)
	if err != nil {
		return nil, err
	}
	p := matrix.NewParams().SetString("assignment_id", assignmentID).SetList("grades", encoded)
	return c.call(ctx, EndpointSetGradesForAssignment, p)
}

// EncodeGrades renders grades the way set_grades_for_assignment expects them.
func EncodeGrades(grades []Grade) ([]string, error) {
	out := make([]string, 0, len(grades))
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, g := range grades {
		buf.Reset()
		if err := enc.Encode(Grade{UserID: g.UserID, Grade: url.QueryEscape(g.Grade)}); err != nil {
			return nil, errors.Wrapf(err, "encode grade for user %s", g.UserID)
		}
		out = append(out, string(bytes.TrimRight(buf.Bytes(), "\n")))
	}
	return out, nil
}

// GetResources calls get_resources, one page at a time.
func (c *ClassesManagement) GetResources(ctx context.Context, constraints Attributes, page int) (any, error) {
	return c.matching(ctx, EndpointGetResources, constraints, page)
}

// GetAllCurricula calls get_all_curricula.
func (c *ClassesManagement) GetAllCurricula(ctx context.Context) (any, error) {
	return c.noArgs(ctx, EndpointGetAllCurricula)
}

// GetCurriculaWithIDs calls get_curricula_with_ids.
func (c *ClassesManagement) GetCurriculaWithIDs(ctx context.Context, curriculumIDs matrix.IDList) (any, error) {
	return c.byIDs(ctx, EndpointGetCurriculaWithIDs, "curriculum_ids", curriculumIDs)
}

// GetProficienciesForCurriculum calls get_proficiencies_for_curriculum.
func (c *ClassesManagement) GetProficienciesForCurriculum(ctx context.Context, curriculumID string) (any, error) {
	return c.byID(ctx, EndpointGetProficienciesForCurriculum, "curriculum_id", curriculumID)
}

// GetClassReport sends class_id first, then the constraints. A class_id
// constraint does not replace the explicit one.
func (c *ClassesManagement) GetClassReport(ctx context.Context, classID string, constraints Attributes) (any, error) {
	p := matrix.NewParams().SetString("class_id", classID).Merge(constraints).SetString("class_id", classID)
	return c.call(ctx, EndpointGetClassReport, p)
}
