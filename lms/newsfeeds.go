package lms

import (
	"context"

	matrix "github.com/xizhibei/go-matrix"
)

// NewsFeeds posts announcements and messages to class, group and site feeds.
type NewsFeeds struct {
	base
}

// PostOptions are the optional fields of a post. Unset fields are not sent.
// Notify only applies to announcements.
type PostOptions struct {
	SubmitterID string
	Notify      *bool
	Sticky      *bool
}

// SitePostOptions adds the audience of a site announcement.
type SitePostOptions struct {
	PostOptions
	Students *bool
	Teachers *bool
	Managers *bool
	Parents  *bool
}

func setOptional(p *matrix.Params, key string, v *bool) {
	if v != nil {
		p.Set(key, *v)
	}
}

func (o PostOptions) apply(p *matrix.Params, notify bool) *matrix.Params {
	if o.SubmitterID != "" {
		p.SetString("submitter_id", o.SubmitterID)
	}
	if notify {
		setOptional(p, "notify", o.Notify)
	}
	setOptional(p, "sticky", o.Sticky)
	return p
}

// PostClassAnnouncement calls post_class_announcement.
func (n *NewsFeeds) PostClassAnnouncement(ctx context.Context, classID, message string, opts PostOptions) (any, error) {
	p := matrix.NewParams().SetString("class_id", classID).SetString("message", message)
	return n.call(ctx, EndpointPostClassAnnouncement, opts.apply(p, true))
}

// PostClassMessage posts to a class news feed. Messages never notify, so
// opts.Notify is ignored.
func (n *NewsFeeds) PostClassMessage(ctx context.Context, classID, message string, opts PostOptions) (any, error) {
	p := matrix.NewParams().SetString("class_id", classID).SetString("message", message)
	return n.call(ctx, EndpointPostClassMessage, opts.apply(p, false))
}

// PostGroupAnnouncement calls post_group_announcement.
func (n *NewsFeeds) PostGroupAnnouncement(ctx context.Context, groupID, message string, opts PostOptions) (any, error) {
	p := matrix.NewParams().SetString("group_id", groupID).SetString("message", message)
	return n.call(ctx, EndpointPostGroupAnnouncement, opts.apply(p, true))
}

// PostGroupMessage is PostClassMessage for groups.
func (n *NewsFeeds) PostGroupMessage(ctx context.Context, groupID, message string, opts PostOptions) (any, error) {
	p := matrix.NewParams().SetString("group_id", groupID).SetString("message", message)
	return n.call(ctx, EndpointPostGroupMessage, opts.apply(p, false))
}

// PostSiteAnnouncement posts to the whole site. The audience flags restrict
// which roles receive it.
func (n *NewsFeeds) PostSiteAnnouncement(ctx context.Context, message string, opts SitePostOptions) (any, error) {
	p := opts.apply(matrix.NewParams().SetString("message", message), true)
	setOptional(p, "students", opts.Students)
	setOptional(p, "teachers", opts.Teachers)
	setOptional(p, "managers", opts.Managers)
	setOptional(p, "parents", opts.Parents)
	return n.call(ctx, EndpointPostSiteAnnouncement, p)
}

// PostSiteMessage only honours SubmitterID.
func (n *NewsFeeds) PostSiteMessage(ctx context.Context, message string, opts PostOptions) (any, error) {
	p := matrix.NewParams().SetString("message", message)
	if opts.SubmitterID != "" {
		p.SetString("submitter_id", opts.SubmitterID)
	}
	return n.call(ctx, EndpointPostSiteMessage, p)
}
