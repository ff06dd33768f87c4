// Package client holds the view-state reconciliation logic a connected
// client runs: merging REST-fetched snapshots, optimistic local mutations
// and server pushes into one consistent view without duplicating or losing
// state. The types here are plain state machines with no transport of their
// own; each instance belongs to a single goroutine, like the event-loop
// views they model.
package client

import "localaid_server/models"

// Feed is the reconciled post-list view.
//
// A geo-filtered feed cannot judge a pushed post's relevance locally (the
// server sorted and cut by distance), so incremental events degrade to a
// refetch signal instead of guessing.
type Feed struct {
	geoFiltered bool
	posts       []models.Post
}

// NewFeed creates a feed view. geoFiltered marks feeds populated from a
// coordinate-bounded query.
func NewFeed(geoFiltered bool) *Feed {
	return &Feed{geoFiltered: geoFiltered}
}

// Reset replaces the view with a fetched snapshot.
func (f *Feed) Reset(posts []models.Post) {
	f.posts = append(f.posts[:0], posts...)
}

// ApplyCreated reconciles a postCreated push. The post is prepended unless
// already present: the creator's own optimistic insert plus the push echo
// must not produce a duplicate. Returns true when the caller should refetch
// instead (geo-filtered feed).
func (f *Feed) ApplyCreated(post models.Post) (refetch bool) {
	if f.geoFiltered {
		return true
	}
	for _, p := range f.posts {
		if p.ID == post.ID {
			return false
		}
	}
	f.posts = append([]models.Post{post}, f.posts...)
	return false
}

// ApplyUpdated replaces the matching post in place. An update for a post
// not in view is ignored.
func (f *Feed) ApplyUpdated(post models.Post) {
	for i, p := range f.posts {
		if p.ID == post.ID {
			f.posts[i] = post
			return
		}
	}
}

// ApplyDeleted removes the post with the given id.
func (f *Feed) ApplyDeleted(postID string) {
	for i, p := range f.posts {
		if p.ID == postID {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return
		}
	}
}

// ApplyPostsUpdated handles the generic postsUpdated push: always a full
// refetch, since the event carries no payload to reconcile.
func (f *Feed) ApplyPostsUpdated() (refetch bool) {
	return true
}

// Posts returns the current view.
func (f *Feed) Posts() []models.Post {
	return f.posts
}
