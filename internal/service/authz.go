package service

import (
	"fmt"

	"github.com/google/uuid"
)

// Decision is the explicit outcome of an authorization check. Denied mutations
// do not error: they redirect, and RedirectTo carries the target.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func denyRedirect(target string) Decision {
	return Decision{RedirectTo: target}
}

// CanEditPost lets only the author through; anyone else is sent back to the
// post's detail page with no changes applied.
func CanEditPost(principalID uuid.UUID, authorID uuid.UUID, postID int64) Decision {
	if principalID == authorID {
		return allow()
	}
	return denyRedirect(fmt.Sprintf("/posts/%d/", postID))
}

// CanFollow rejects self-follows. The denied request lands back on the
// profile, same as a successful one.
func CanFollow(principalID uuid.UUID, targetID uuid.UUID, targetUsername string) Decision {
	if principalID != targetID {
		return allow()
	}
	return denyRedirect("/profile/" + targetUsername + "/")
}
