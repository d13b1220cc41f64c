package directory

import "math/rand"

// AvatarPicker supplies a placeholder avatar URL for drafts submitted
// without one. Purely cosmetic.
type AvatarPicker func() string

// avatarPool is the fixed set of stock image endpoints a placeholder is
// drawn from.
var avatarPool = []string{
	"https://i.pravatar.cc/150?img=12",
	"https://i.pravatar.cc/150?img=23",
	"https://i.pravatar.cc/150?img=34",
	"https://i.pravatar.cc/150?img=45",
	"https://i.pravatar.cc/150?img=56",
	"https://i.pravatar.cc/150?img=68",
}

// NewAvatarPicker returns a picker drawing uniformly from the stock pool
// using r, so tests can seed it for deterministic output.
func NewAvatarPicker(r *rand.Rand) AvatarPicker {
	return func() string {
		return avatarPool[r.Intn(len(avatarPool))]
	}
}
