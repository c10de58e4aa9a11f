package lms

// Remote method names.
const (
	EndpointGetVersion = "get_version"

	// Classes
	EndpointGetAllClasses                    = "get_all_classes"
	EndpointGetClassesWithIDs                = "get_classes_with_ids"
	EndpointGetClassesThatMatch              = "get_classes_that_match"
	EndpointGetClassesForOrganization        = "get_classes_for_organization"
	EndpointAddClass                         = "add_class"
	EndpointAddClassFromTemplate             = "add_class_from_template"
	EndpointAddChildClass                    = "add_child_class"
	EndpointEditClass                        = "edit_class"
	EndpointArchiveClasses                   = "archive_classes"
	EndpointReactivateClasses                = "reactivate_classes"
	EndpointDeleteClasses                    = "delete_classes"
	EndpointRestoreClasses                   = "restore_classes"
	EndpointGetAllClassTemplates             = "get_all_class_templates"
	EndpointGetClassTemplatesWithIDs         = "get_class_templates_with_ids"
	EndpointGetClassTemplatesThatMatch       = "get_class_templates_that_match"
	EndpointGetClassTemplatesForOrganization = "get_class_templates_for_organization"
	EndpointAddClassTemplate                 = "add_class_template"
	EndpointEditClassTemplate                = "edit_class_template"
	EndpointDeleteClassTemplates             = "delete_class_templates"
	EndpointRestoreClassTemplates            = "restore_class_templates"

	// Classes management
	EndpointGetAllPaths                   = "get_all_paths"
	EndpointGetPathsWithIDs               = "get_paths_with_ids"
	EndpointGetAdminsForPath              = "get_admins_for_path"
	EndpointGetStudentsForPath            = "get_students_for_path"
	EndpointAddStudentsToPath             = "add_students_to_path"
	EndpointRemoveStudentsFromPath        = "remove_students_from_path"
	EndpointGetLessonsForClass            = "get_lessons_for_class"
	EndpointGetAssignmentsForClass        = "get_assignments_for_class"
	EndpointGetMasteryForClass            = "get_mastery_for_class"
	EndpointGetAllAttendance              = "get_all_attendance"
	EndpointGetAttendance                 = "get_attendance"
	EndpointGetGradesForClass             = "get_grades_for_class"
	EndpointGetGradesForUser              = "get_grades_for_user"
	EndpointSetGradesForAssignment        = "set_grades_for_assignment"
	EndpointGetResources                  = "get_resources"
	EndpointGetAllCurricula               = "get_all_curricula"
	EndpointGetCurriculaWithIDs           = "get_curricula_with_ids"
	EndpointGetProficienciesForCurriculum = "get_proficiencies_for_curriculum"
	EndpointGetClassReport                = "get_class_report"

	// Ecommerce
	EndpointGetAllOrders             = "get_all_orders"
	EndpointGetOrdersWithIDs         = "get_orders_with_ids"
	EndpointGetOrdersForOrganization = "get_orders_for_organization"
	EndpointGetOrdersForUser         = "get_orders_for_user"

	// Games
	EndpointGetGamesForSite        = "get_games_for_site"
	EndpointGetGamesForClass       = "get_games_for_class"
	EndpointGetStatusForAllPlayers = "get_status_for_all_players"
	EndpointGetStatusForPlayers    = "get_status_for_players"

	// Groups
	EndpointGetAllGroups           = "get_all_groups"
	EndpointGetGroupsWithIDs       = "get_groups_with_ids"
	EndpointGetGroupsThatMatch     = "get_groups_that_match"
	EndpointAddGroup               = "add_group"
	EndpointEditGroup              = "edit_group"
	EndpointDeleteGroups           = "delete_groups"
	EndpointGetMembersForGroup     = "get_members_for_group"
	EndpointAddMembersToGroup      = "add_members_to_group"
	EndpointRemoveMembersFromGroup = "remove_members_from_group"
	EndpointGetGroupsWithMember    = "get_groups_with_member"
	EndpointGetAdminsForGroup      = "get_admins_for_group"
	EndpointAddAdminsToGroup       = "add_admins_to_group"
	EndpointRemoveAdminsFromGroup  = "remove_admins_from_group"
	EndpointGetGroupsWithAdmin     = "get_groups_with_admin"

	// News feeds
	EndpointPostClassAnnouncement = "post_class_announcement"
	EndpointPostClassMessage      = "post_class_message"
	EndpointPostGroupAnnouncement = "post_group_announcement"
	EndpointPostGroupMessage      = "post_group_message"
	EndpointPostSiteAnnouncement  = "post_site_announcement"
	EndpointPostSiteMessage       = "post_site_message"

	// Organizations
	EndpointGetAllOrganizations     = "get_all_organizations"
	EndpointGetOrganizationsWithIDs = "get_organizations_with_ids"
	EndpointAddOrganization         = "add_organization"
	EndpointEditOrganization        = "edit_organization"
	EndpointDeleteOrganizations     = "delete_organizations"

	// Students
	EndpointGetStudentsForClass       = "get_students_for_class"
	EndpointAddStudentsToClass        = "add_students_to_class"
	EndpointRemoveStudentsFromClass   = "remove_students_from_class"
	EndpointDeactivateStudentsInClass = "deactivate_students_in_class"
	EndpointReactivateStudentsInClass = "reactivate_students_in_class"
	EndpointGetStatusOfClasses        = "get_status_of_classes"
	EndpointGetClassesEnrolledBy      = "get_classes_enrolled_by"

	// Teachers
	EndpointGetTeachersForClass     = "get_teachers_for_class"
	EndpointAddTeachersToClass      = "add_teachers_to_class"
	EndpointRemoveTeachersFromClass = "remove_teachers_from_class"
	EndpointGetClassesTaughtBy      = "get_classes_taught_by"

	// Users
	EndpointIsAuthenticated    = "is_authenticated"
	EndpointGetMyAccount       = "get_my_account"
	EndpointGetAllUsers        = "get_all_users"
	EndpointGetUsersWithIDs    = "get_users_with_ids"
	EndpointGetUsersThatMatch  = "get_users_that_match"
	EndpointAddUser            = "add_user"
	EndpointArchiveStudents    = "archive_students"
	EndpointReactivateStudents = "reactivate_students"
	EndpointGetSessionDetails  = "get_session_details"
)

// Endpoint is one entry of the catalog.
type Endpoint struct {
	Module string
	Name   string
}

var catalog = []Endpoint{
	{"", EndpointGetVersion},

	{"Classes", EndpointGetAllClasses},
	{"Classes", EndpointGetClassesWithIDs},
	{"Classes", EndpointGetClassesThatMatch},
	{"Classes", EndpointGetClassesForOrganization},
	{"Classes", EndpointAddClass},
	{"Classes", EndpointAddClassFromTemplate},
	{"Classes", EndpointAddChildClass},
	{"Classes", EndpointEditClass},
	{"Classes", EndpointArchiveClasses},
	{"Classes", EndpointReactivateClasses},
	{"Classes", EndpointDeleteClasses},
	{"Classes", EndpointRestoreClasses},
	{"Classes", EndpointGetAllClassTemplates},
	{"Classes", EndpointGetClassTemplatesWithIDs},
	{"Classes", EndpointGetClassTemplatesThatMatch},
	{"Classes", EndpointGetClassTemplatesForOrganization},
	{"Classes", EndpointAddClassTemplate},
	{"Classes", EndpointEditClassTemplate},
	{"Classes", EndpointDeleteClassTemplates},
	{"Classes", EndpointRestoreClassTemplates},

	{"ClassesManagement", EndpointGetAllPaths},
	{"ClassesManagement", EndpointGetPathsWithIDs},
	{"ClassesManagement", EndpointGetAdminsForPath},
	{"ClassesManagement", EndpointGetStudentsForPath},
	{"ClassesManagement", EndpointAddStudentsToPath},
	{"ClassesManagement", EndpointRemoveStudentsFromPath},
	{"ClassesManagement", EndpointGetLessonsForClass},
	{"ClassesManagement", EndpointGetAssignmentsForClass},
	{"ClassesManagement", EndpointGetMasteryForClass},
	{"ClassesManagement", EndpointGetAllAttendance},
	{"ClassesManagement", EndpointGetAttendance},
	{"ClassesManagement", EndpointGetGradesForClass},
	{"ClassesManagement", EndpointGetGradesForUser},
	{"ClassesManagement", EndpointSetGradesForAssignment},
	{"ClassesManagement", EndpointGetResources},
	{"ClassesManagement", EndpointGetAllCurricula},
	{"ClassesManagement", EndpointGetCurriculaWithIDs},
	{"ClassesManagement", EndpointGetProficienciesForCurriculum},
	{"ClassesManagement", EndpointGetClassReport},

	{"Ecommerce", EndpointGetAllOrders},
	{"Ecommerce", EndpointGetOrdersWithIDs},
	{"Ecommerce", EndpointGetOrdersForOrganization},
	{"Ecommerce", EndpointGetOrdersForUser},

	{"Games", EndpointGetGamesForSite},
	{"Games", EndpointGetGamesForClass},
	{"Games", EndpointGetStatusForAllPlayers},
	{"Games", EndpointGetStatusForPlayers},

	{"Groups", EndpointGetAllGroups},
	{"Groups", EndpointGetGroupsWithIDs},
	{"Groups", EndpointGetGroupsThatMatch},
	{"Groups", EndpointAddGroup},
	{"Groups", EndpointEditGroup},
	{"Groups", EndpointDeleteGroups},
	{"Groups", EndpointGetMembersForGroup},
	{"Groups", EndpointAddMembersToGroup},
	{"Groups", EndpointRemoveMembersFromGroup},
	{"Groups", EndpointGetGroupsWithMember},
	{"Groups", EndpointGetAdminsForGroup},
	{"Groups", EndpointAddAdminsToGroup},
	{"Groups", EndpointRemoveAdminsFromGroup},
	{"Groups", EndpointGetGroupsWithAdmin},

	{"NewsFeeds", EndpointPostClassAnnouncement},
	{"NewsFeeds", EndpointPostClassMessage},
	{"NewsFeeds", EndpointPostGroupAnnouncement},
	{"NewsFeeds", EndpointPostGroupMessage},
	{"NewsFeeds", EndpointPostSiteAnnouncement},
	{"NewsFeeds", EndpointPostSiteMessage},

	{"Organizations", EndpointGetAllOrganizations},
	{"Organizations", EndpointGetOrganizationsWithIDs},
	{"Organizations", EndpointAddOrganization},
	{"Organizations", EndpointEditOrganization},
	{"Organizations", EndpointDeleteOrganizations},

	{"Students", EndpointGetStudentsForClass},
	{"Students", EndpointAddStudentsToClass},
	{"Students", EndpointRemoveStudentsFromClass},
	{"Students", EndpointDeactivateStudentsInClass},
	{"Students", EndpointReactivateStudentsInClass},
	{"Students", EndpointGetStatusOfClasses},
	{"Students", EndpointGetClassesEnrolledBy},

	{"Teachers", EndpointGetTeachersForClass},
	{"Teachers", EndpointAddTeachersToClass},
	{"Teachers", EndpointRemoveTeachersFromClass},
	{"Teachers", EndpointGetClassesTaughtBy},

	{"Users", EndpointIsAuthenticated},
	{"Users", EndpointGetMyAccount},
	{"Users", EndpointGetAllUsers},
	{"Users", EndpointGetUsersWithIDs},
	{"Users", EndpointGetUsersThatMatch},
	{"Users", EndpointAddUser},
	{"Users", EndpointArchiveStudents},
	{"Users", EndpointReactivateStudents},
	{"Users", EndpointGetSessionDetails},
}

// Endpoints returns the catalog of remote methods wrapped by this package.
func Endpoints() []Endpoint {
	return append([]Endpoint(nil), catalog...)
}
