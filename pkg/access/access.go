// Package access holds the permission rules shared by every resource
// handler. Decisions are pure: callers look the resource up first (a
// missing row is NotFound before any permission check) and map the
// returned error onto an HTTP status via the error handler middleware.
package access

import (
	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/pkg/model"
)

// Actor is the authenticated requester. Anonymous requests are represented
// by a nil *Actor.
type Actor struct {
	ID      uint
	IsAdmin bool
}

// ActorFromUser adapts a session user to an Actor.
func ActorFromUser(user *model.User) *Actor {
	if user == nil {
		return nil
	}
	return &Actor{ID: user.ID, IsAdmin: user.IsAdmin}
}

// Resource describes the target of a permission check.
type Resource struct {
	AuthorID uint
	Private  bool
	Category model.Category
}

// CanView decides read access. Public resources are visible to anyone,
// anonymous included. Private events are visible to their owner only;
// admins get no special treatment on reads.
func CanView(actor *Actor, r Resource) error {
	if !r.Private {
		return nil
	}
	if actor == nil {
		return errdef.NewUnauthorized("authentication required")
	}
	if actor.ID == r.AuthorID {
		return nil
	}
	return errdef.NewForbidden("no permission")
}

// CanMutate decides edit and delete access. The owner may always mutate
// their own resource, an admin may mutate anything, and notices require
// admin rights regardless of ownership.
func CanMutate(actor *Actor, r Resource) error {
	if actor == nil {
		return errdef.NewUnauthorized("authentication required")
	}
	if r.Category == model.CategoryNotice {
		if actor.IsAdmin {
			return nil
		}
		return errdef.NewForbidden("admin privilege required")
	}
	if actor.ID == r.AuthorID || actor.IsAdmin {
		return nil
	}
	return errdef.NewForbidden("no permission")
}

// CanCreate decides create access. Any authenticated user may create
// events and community posts; notices are admin only.
func CanCreate(actor *Actor, category model.Category) error {
	if actor == nil {
		return errdef.NewUnauthorized("authentication required")
	}
	if category == model.CategoryNotice && !actor.IsAdmin {
		return errdef.NewForbidden("admin privilege required")
	}
	return nil
}
