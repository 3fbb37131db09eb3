package activity

import "testing"

func TestKindWindows(t *testing.T) {
	daily := []Kind{KindPost, KindComment, KindLike}
	for _, k := range daily {
		if k.Window() != WindowDay {
			t.Fatalf("expected %s to roll daily, got %s", k, k.Window())
		}
	}
	weekly := []Kind{KindTest, KindLiveCoding, KindLesson}
	for _, k := range weekly {
		if k.Window() != WindowWeek {
			t.Fatalf("expected %s to roll weekly, got %s", k, k.Window())
		}
	}
	if KindChat.Window() != WindowNone {
		t.Fatalf("expected CHAT to carry no window")
	}
}

func TestImplementedKinds(t *testing.T) {
	impl := ImplementedKinds()
	if len(impl) != 6 {
		t.Fatalf("expected 6 implemented kinds, got %d", len(impl))
	}
	for _, k := range []Kind{KindHackathonApply, KindBugFix, KindChat, KindFriendRequest} {
		if k.Implemented() {
			t.Fatalf("%s must not be implemented on the dispatch path", k)
		}
	}
}

func TestKindValid(t *testing.T) {
	if !KindPost.Valid() {
		t.Fatal("POST should be valid")
	}
	if Kind("SELFIE").Valid() {
		t.Fatal("unknown kind should be invalid")
	}
}
