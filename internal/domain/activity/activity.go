package activity

// Kind is one category of automatable platform action.
type Kind string

const (
	KindPost                Kind = "POST"
	KindComment             Kind = "COMMENT"
	KindLike                Kind = "LIKE"
	KindTest                Kind = "TEST"
	KindLiveCoding          Kind = "LIVE_CODING"
	KindLesson              Kind = "LESSON"
	KindHackathonApply      Kind = "HACKATHON_APPLICATION"
	KindFreelancerBid       Kind = "FREELANCER_BID"
	KindJobApplication      Kind = "JOB_APPLICATION"
	KindFriendRequest       Kind = "FRIEND_REQUEST"
	KindAcceptFriendRequest Kind = "ACCEPT_FRIEND_REQUEST"
	KindBugFix              Kind = "BUG_FIX"
	KindChat                Kind = "CHAT"
)

// Window is the rolling interval a kind's ceiling applies over.
type Window int

const (
	WindowNone Window = iota
	WindowDay
	WindowWeek
)

func (w Window) String() string {
	switch w {
	case WindowDay:
		return "day"
	case WindowWeek:
		return "week"
	default:
		return "none"
	}
}

// Kinds returns every declared kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindPost, KindComment, KindLike,
		KindTest, KindLiveCoding, KindLesson,
		KindHackathonApply, KindFreelancerBid, KindJobApplication,
		KindFriendRequest, KindAcceptFriendRequest, KindBugFix, KindChat,
	}
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Window returns the rate-limit window the kind is counted over. The
// day/week split is a fixed taxonomy: social kinds roll daily, learning
// kinds roll weekly, and everything else carries no rolling ceiling.
func (k Kind) Window() Window {
	switch k {
	case KindPost, KindComment, KindLike:
		return WindowDay
	case KindTest, KindLiveCoding, KindLesson:
		return WindowWeek
	default:
		return WindowNone
	}
}

// Implemented reports whether the single-activity execution path can run
// this kind. The remaining kinds need a target object or group context the
// minimal dispatch contract does not carry and must be rejected with
// ErrNotImplemented, never silently skipped.
func (k Kind) Implemented() bool {
	switch k {
	case KindPost, KindComment, KindLike, KindTest, KindLiveCoding, KindLesson:
		return true
	default:
		return false
	}
}

// ImplementedKinds returns the kinds the executor can run.
func ImplementedKinds() []Kind {
	out := make([]Kind, 0, 6)
	for _, k := range Kinds() {
		if k.Implemented() {
			out = append(out, k)
		}
	}
	return out
}
