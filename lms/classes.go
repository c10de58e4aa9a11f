package lms

import (
	"context"

	matrix "github.com/xizhibei/go-matrix"
)

// Classes manages classes and class templates.
type Classes struct {
	base
}

// GetAllClasses calls get_all_classes, one page at a time.
func (c *Classes) GetAllClasses(ctx context.Context, page int) (any, error) {
	return c.paged(ctx, EndpointGetAllClasses, page)
}

// GetClassesWithIDs calls get_classes_with_ids.
func (c *Classes) GetClassesWithIDs(ctx context.Context, classIDs matrix.IDList) (any, error) {
	return c.byIDs(ctx, EndpointGetClassesWithIDs, "class_ids", classIDs)
}

// GetClassesThatMatch calls get_classes_that_match, one page at a time.
func (c *Classes) GetClassesThatMatch(ctx context.Context, constraints Attributes, page int) (any, error) {
	return c.matching(ctx, EndpointGetClassesThatMatch, constraints, page)
}

// GetClassesForOrganization calls get_classes_for_organization, one page at a time.
func (c *Classes) GetClassesForOrganization(ctx context.Context, organizationID string, page int) (any, error) {
	p := matrix.NewParams().SetString("organization_id", organizationID).Set("page", page)
	return c.call(ctx, EndpointGetClassesForOrganization, p)
}

// AddClass calls add_class.
func (c *Classes) AddClass(ctx context.Context, attrs Attributes) (any, error) {
	return c.attrs(ctx, EndpointAddClass, attrs)
}

// AddClassFromTemplate calls add_class_from_template.
func (c *Classes) AddClassFromTemplate(ctx context.Context, classTemplateID string, attrs Attributes) (any, error) {
	return c.attrsWithID(ctx, EndpointAddClassFromTemplate, attrs, "class_template_id", classTemplateID)
}

// AddChildClass calls add_child_class.
func (c *Classes) AddChildClass(ctx context.Context, parentClassID string, attrs Attributes) (any, error) {
	return c.attrsWithID(ctx, EndpointAddChildClass, attrs, "parent_class_id", parentClassID)
}

// EditClass calls edit_class.
func (c *Classes) EditClass(ctx context.Context, classID string, attrs Attributes) (any, error) {
	return c.attrsWithID(ctx, EndpointEditClass, attrs, "class_id", classID)
}

// ArchiveClasses calls archive_classes.
func (c *Classes) ArchiveClasses(ctx context.Context, classIDs matrix.IDList) (any, error) {
	return c.byIDs(ctx, EndpointArchiveClasses, "class_ids", classIDs)
}

// ReactivateClasses calls reactivate_classes.
func (c *Classes) ReactivateClasses(ctx context.Context, classIDs matrix.IDList) (any, error) {
	return c.byIDs(ctx, EndpointReactivateClasses, "class_ids", classIDs)
}

// DeleteClasses calls delete_classes.
func (c *Classes) DeleteClasses(ctx context.Context, classIDs matrix.IDList) (any, error) {
	return c.byIDs(ctx, EndpointDeleteClasses, "class_ids", classIDs)
}

// RestoreClasses calls restore_classes.
func (c *Classes) RestoreClasses(ctx context.Context, classIDs matrix.IDList) (any, error) {
	return c.byIDs(ctx, EndpointRestoreClasses, "class_ids", classIDs)
}

// GetAllClassTemplates calls get_all_class_templates, one page at a time.
func (c *Classes) GetAllClassTemplates(ctx context.Context, page int) (any, error) {
	return c.paged(ctx, EndpointGetAllClassTemplates, page)
}

// GetClassTemplatesWithIDs takes template ids under the class_ids key, as the service expects.
func (c *Classes) GetClassTemplatesWithIDs(ctx context.Context, classIDs matrix.IDList) (any, error) {
	return c.byIDs(ctx, EndpointGetClassTemplatesWithIDs, "class_ids", classIDs)
}

// GetClassTemplatesThatMatch calls get_class_templates_that_match, one page at a time.
func (c *Classes) GetClassTemplatesThatMatch(ctx context.Context, constraints Attributes, page int) (any, error) {
	return c.matching(ctx, EndpointGetClassTemplatesThatMatch, constraints, page)
}

// GetClassTemplatesForOrganization calls get_class_templates_for_organization, one page at a time.
func (c *Classes) GetClassTemplatesForOrganization(ctx context.Context, organizationID string, page int) (any, error) {
	p := matrix.NewParams().SetString("organization_id", organizationID).Set("page", page)
	return c.call(ctx, EndpointGetClassTemplatesForOrganization, p)
}

// AddClassTemplate calls add_class_template.
func (c *Classes) AddClassTemplate(ctx context.Context, attrs Attributes) (any, error) {
	return c.attrs(ctx, EndpointAddClassTemplate, attrs)
}

// EditClassTemplate calls edit_class_template.
func (c *Classes) EditClassTemplate(ctx context.Context, classID string, attrs Attributes) (any, error) {
	return c.attrsWithID(ctx, EndpointEditClassTemplate, attrs, "class_id", classID)
}

// DeleteClassTemplates calls delete_class_templates.
func (c *Classes) DeleteClassTemplates(ctx context.Context, classIDs matrix.IDList) (any, error) {
	return c.byIDs(ctx, EndpointDeleteClassTemplates, "class_ids", classIDs)
}

// RestoreClassTemplates calls restore_class_templates.
func (c *Classes) RestoreClassTemplates(ctx context.Context, classIDs matrix.IDList) (any, error) {
	return c.byIDs(ctx, EndpointRestoreClassTemplates, "class_ids", classIDs)
}
