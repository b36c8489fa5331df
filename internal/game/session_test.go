package game

import "testing"

func TestNewSessionStartsPlaying(t *testing.T) {
	sess := NewSession()
	if sess.State() != StatePlaying {
		t.Fatalf("State()=%q, want playing", sess.State())
	}
	if sess.CurrentLevelNumber != 1 || sess.RenderingMode != Mode2D {
		t.Fatalf("defaults wrong: level=%d mode=%q", sess.CurrentLevelNumber, sess.RenderingMode)
	}
	if sess.Is3D() {
		t.Fatalf("Is3D()=true for a fresh 2D session")
	}
}

func TestEndGameDefeat(t *testing.T) {
	sess := NewSession()
	sess.Character = NewCharacter(0, 0)
	sess.Character.Health = 0

	sess.EndGame(false, "slain by an ogre")

	if sess.State() != StateGameOver || !sess.GameOver || sess.Victory {
		t.Fatalf("defeat flags wrong: state=%q gameOver=%v victory=%v",
			sess.State(), sess.GameOver, sess.Victory)
	}
	if sess.DeathReason != "slain by an ogre" {
		t.Fatalf("DeathReason=%q", sess.DeathReason)
	}
	if sess.Stats.Deaths != 1 || sess.Stats.Victory {
		t.Fatalf("statistics wrong: %+v", sess.Stats)
	}
	if sess.Difficulty.DeathsThisSession != 1 {
		t.Fatalf("DeathsThisSession=%d, want 1", sess.Difficulty.DeathsThisSession)
	}
}

func TestEndGameVictory(t *testing.T) {
	sess := NewSession()
	sess.Character = NewCharacter(0, 0)

	sess.EndGame(true, "")

	if sess.State() != StateVictory || !sess.Victory || sess.GameOver {
		t.Fatalf("victory flags wrong: state=%q", sess.State())
	}
	if sess.Stats.Deaths != 0 || !sess.Stats.Victory {
		t.Fatalf("statistics wrong: %+v", sess.Stats)
	}
	if sess.Difficulty.DeathsThisSession != 0 {
		t.Fatalf("victory must not count a death")
	}
}

func TestDeriveStatePriority(t *testing.T) {
	sess := NewSession()
	sess.PendingSelection = &SelectionRequest{SelectionType: ItemFood}
	if got := sess.DeriveState(); got != StateItemSelection {
		t.Fatalf("DeriveState()=%q, want item_selection", got)
	}

	sess.PlayerAsleep = true
	if got := sess.DeriveState(); got != StatePlayerAsleep {
		t.Fatalf("DeriveState()=%q, want player_asleep", got)
	}

	sess.GameOver = true
	if got := sess.DeriveState(); got != StateGameOver {
		t.Fatalf("DeriveState()=%q, want game_over", got)
	}

	sess.Victory = true
	if got := sess.DeriveState(); got != StateVictory {
		t.Fatalf("DeriveState()=%q, want victory", got)
	}
}
