package tactics

import (
	"testing"

	"github.com/premkumardevadason/chess-go/internal/engine"
	"github.com/premkumardevadason/chess-go/internal/model"
)

func mustPosition(t *testing.T, fen string) *model.Position {
	t.Helper()
	pos, err := model.PositionFromFEN(fen)
	if err != nil {
		t.Fatalf("bad fixture %q: %v", fen, err)
	}
	return pos
}

func mv(fromRow, fromCol, toRow, toCol int) model.Move {
	return model.Move{FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol}
}

func TestPieceValue(t *testing.T) {
	tests := []struct {
		pt   model.PieceType
		want int
	}{
		{model.Pawn, 100},
		{model.Knight, 300},
		{model.Bishop, 300},
		{model.Rook, 500},
		{model.Queen, 900},
		{model.King, KingValue},
	}
	for _, tt := range tests {
		if got := PieceValue(tt.pt); got != tt.want {
			t.Errorf("PieceValue(%s) = %d, want %d", tt.pt, got, tt.want)
		}
	}
	if got := PieceValue(""); got != 0 {
		t.Errorf("PieceValue(empty) = %d, want 0", got)
	}
}

func TestThreatenedPieces(t *testing.T) {
	// White rook d4 attacks the black queen d8; white pawn b5 attacks
	// the knight c6. The queen must come back first.
	pos := mustPosition(t, "3qk3/8/2n5/1P6/3R4/8/8/4K3 b - - 0 1")

	got := ThreatenedPieces(&pos.Board, model.Black)
	if len(got) != 2 {
		t.Fatalf("threatened = %v, want queen and knight", got)
	}
	if got[0] != (model.Square{Row: 0, Col: 3}) {
		t.Errorf("first threatened = %v, want the queen on d8", got[0])
	}
	if got[1] != (model.Square{Row: 2, Col: 2}) {
		t.Errorf("second threatened = %v, want the knight on c6", got[1])
	}
}

func TestThreatenedPiecesIgnoresPawnsAndKing(t *testing.T) {
	// Rook a8 attacks both the a7 pawn and the king along the rank;
	// neither is reported.
	pos := mustPosition(t, "R3k3/p7/8/8/8/8/8/4K3 b - - 0 1")
	if got := ThreatenedPieces(&pos.Board, model.Black); len(got) != 0 {
		t.Errorf("threatened = %v, want none", got)
	}
}

func TestIsCriticalDefenderScholarsGuard(t *testing.T) {
	// Italian-style position with the White Qf3+Bc4 battery aimed at
	// f7; the knight on f6 is the only thing stopping Qxf7#.
	pos := mustPosition(t, "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR b KQkq - 0 4")

	if !IsCriticalDefender(&pos.Board, mv(2, 5, 4, 4)) {
		t.Error("moving the f6 knight abandons the Scholar's guard")
	}
	if IsCriticalDefender(&pos.Board, mv(2, 2, 4, 3)) {
		t.Error("the c6 knight is not the guard")
	}
}

func TestIsCriticalDefenderBackRank(t *testing.T) {
	// Black rook d8 blocks the white rook a8 from the king on g8.
	pos := mustPosition(t, "R2r2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")

	if !IsCriticalDefender(&pos.Board, mv(0, 3, 7, 3)) {
		t.Error("pulling the d8 rook off the back rank abandons the king")
	}

	// With g7 open the king has an escape square; the rook is free.
	free := mustPosition(t, "R2r2k1/5p1p/8/8/8/8/8/6K1 b - - 0 1")
	if IsCriticalDefender(&free.Board, mv(0, 3, 7, 3)) {
		t.Error("king has g7, the rook is not a critical defender")
	}
}

func TestIsCriticalDefenderEmptySource(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if IsCriticalDefender(&pos.Board, mv(4, 4, 3, 4)) {
		t.Error("empty source square cannot defend anything")
	}
}

func TestFilterCriticalDefenders(t *testing.T) {
	pos := mustPosition(t, "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR b KQkq - 0 4")

	moves := []model.Move{
		mv(2, 5, 4, 4), // Nf6 abandons the guard
		mv(1, 3, 2, 3), // d6 is fine
	}
	got := FilterCriticalDefenders(&pos.Board, moves)
	if len(got) != 1 || got[0] != mv(1, 3, 2, 3) {
		t.Errorf("filtered = %v, want only d6", got)
	}

	// When every candidate is critical the original set comes back.
	only := []model.Move{mv(2, 5, 4, 4)}
	if got := FilterCriticalDefenders(&pos.Board, only); len(got) != 1 || got[0] != only[0] {
		t.Errorf("fallback = %v, want original single move", got)
	}
}

func TestIsBlunderSacrifice(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move model.Move
		want bool
	}{
		{
			name: "queen grabs defended pawn for nothing",
			fen:  "3qk3/8/8/3p4/8/8/8/3QK3 w - - 0 1",
			move: mv(7, 3, 3, 3),
			want: true,
		},
		{
			name: "queen takes a rook, attacked or not",
			fen:  "3rk3/8/8/8/8/8/8/3QK3 w - - 0 1",
			move: mv(7, 3, 0, 3),
			want: false,
		},
		{
			name: "queen to a safe square",
			fen:  "3qk3/8/8/3p4/8/8/8/3QK3 w - - 0 1",
			move: mv(7, 3, 7, 0),
			want: false,
		},
		{
			name: "rook sacrifices are not screened",
			fen:  "3qk3/8/8/3p4/8/8/8/3RK3 w - - 0 1",
			move: mv(7, 3, 3, 3),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := IsBlunderSacrifice(pos, tt.move); got != tt.want {
				t.Errorf("IsBlunderSacrifice(%s) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestQueenSafetyVeto(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move model.Move
		want bool
	}{
		{
			name: "queen lands attacked for a pawn",
			fen:  "3qk3/8/8/3p4/8/8/8/3QK3 w - - 0 1",
			move: mv(7, 3, 3, 3),
			want: true,
		},
		{
			name: "queen takes queen",
			fen:  "3qk3/8/8/8/8/8/8/3QK3 w - - 0 1",
			move: mv(7, 3, 0, 3),
			want: false,
		},
		{
			name: "quiet queen move to safety",
			fen:  "3qk3/8/8/8/8/8/8/3QK3 w - - 0 1",
			move: mv(7, 3, 6, 2),
			want: false,
		},
		{
			name: "other pieces pass",
			fen:  "3qk3/8/8/3p4/8/8/8/3RK3 w - - 0 1",
			move: mv(7, 3, 3, 3),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := QueenSafetyVeto(pos, tt.move); got != tt.want {
				t.Errorf("QueenSafetyVeto(%s) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestHangsPiece(t *testing.T) {
	// Knight to d5 where a pawn guards it and nothing defends it.
	pos := mustPosition(t, "4k3/8/4p3/8/8/2N5/8/4K3 w - - 0 1")

	if !HangsPiece(&pos.Board, mv(5, 2, 3, 3)) {
		t.Error("Nd5 hangs to the e6 pawn")
	}
	if HangsPiece(&pos.Board, mv(5, 2, 3, 1)) {
		t.Error("Nb5 is out of the pawn's reach")
	}
}

func TestForcedDefensiveMove(t *testing.T) {
	t.Run("captures the attacker", func(t *testing.T) {
		// Rook d4 attacks the queen on d8; the queen takes it.
		pos := mustPosition(t, "3qk3/8/8/8/3R4/8/8/4K3 b - - 0 1")
		legal := engine.GenerateLegalMoves(pos, model.Black)

		got := ForcedDefensiveMove(pos, model.Square{Row: 0, Col: 3}, legal)
		if got == nil {
			t.Fatal("expected a defensive move")
		}
		if want := mv(0, 3, 4, 3); *got != want {
			t.Errorf("defense = %s, want %s", got, want)
		}
	})

	t.Run("relocates when capture is impossible", func(t *testing.T) {
		// Pawn c4 attacks the knight on d5; the knight cannot take a
		// pawn behind it, so it jumps to safety.
		pos := mustPosition(t, "4k3/8/8/3n4/2P5/8/8/4K3 b - - 0 1")
		legal := engine.GenerateLegalMoves(pos, model.Black)

		got := ForcedDefensiveMove(pos, model.Square{Row: 3, Col: 3}, legal)
		if got == nil {
			t.Fatal("expected a defensive move")
		}
		if got.From() != (model.Square{Row: 3, Col: 3}) {
			t.Errorf("defense = %s, want a knight relocation", got)
		}
		if !safeAfter(&pos.Board, *got, model.Black) {
			t.Errorf("relocation %s lands on an attacked square", got)
		}
	})

	t.Run("interposes against a sliding attacker", func(t *testing.T) {
		// Rook a1 attacks the cornered knight on a8. The knight's only
		// escapes are covered by the bishop on d8, so the rook on e4
		// blocks the file instead.
		pos := mustPosition(t, "n2Bk3/8/8/8/4r3/8/8/R3K3 b - - 0 1")
		legal := engine.GenerateLegalMoves(pos, model.Black)

		got := ForcedDefensiveMove(pos, model.Square{Row: 0, Col: 0}, legal)
		if got == nil {
			t.Fatal("expected a defensive move")
		}
		if want := mv(4, 4, 4, 0); *got != want {
			t.Errorf("defense = %s, want %s", got, want)
		}
	})

	t.Run("pinned defenders stay put", func(t *testing.T) {
		// The rook on e3 shields its own king from the rook on e7.
		// Capturing along the file is legal but the pin screen keeps
		// the arbitration cascade from relying on it.
		pos := mustPosition(t, "4k3/4r3/8/8/8/4R3/8/4K3 w - - 0 1")
		legal := engine.GenerateLegalMoves(pos, model.White)

		if got := ForcedDefensiveMove(pos, model.Square{Row: 5, Col: 4}, legal); got != nil {
			t.Errorf("defense = %s, want none", got)
		}
	})

	t.Run("empty square yields nothing", func(t *testing.T) {
		pos := mustPosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
		legal := engine.GenerateLegalMoves(pos, model.White)

		if got := ForcedDefensiveMove(pos, model.Square{Row: 4, Col: 4}, legal); got != nil {
			t.Errorf("defense = %s, want none", got)
		}
	})
}

func TestFindForkDefense(t *testing.T) {
	t.Run("captures the forking piece", func(t *testing.T) {
		// The knight on e5 forks queen d7 and rook f7; the c6 knight
		// removes it.
		pos := mustPosition(t, "6k1/3q1r2/2n5/4N3/8/8/8/4K3 b - - 0 1")
		legal := engine.GenerateLegalMoves(pos, model.Black)

		got := FindForkDefense(pos, model.Black, legal)
		if got == nil {
			t.Fatal("expected a fork defense")
		}
		if want := mv(2, 2, 3, 4); *got != want {
			t.Errorf("defense = %s, want %s", got, want)
		}
	})

	t.Run("saves the most valuable target", func(t *testing.T) {
		// Same fork with no capture available: the queen runs first.
		pos := mustPosition(t, "6k1/3q1r2/8/4N3/8/8/8/4K3 b - - 0 1")
		legal := engine.GenerateLegalMoves(pos, model.Black)

		got := FindForkDefense(pos, model.Black, legal)
		if got == nil {
			t.Fatal("expected a fork defense")
		}
		if got.From() != (model.Square{Row: 1, Col: 3}) {
			t.Errorf("defense = %s, want a queen escape", got)
		}
	})

	t.Run("single target is not a fork", func(t *testing.T) {
		pos := mustPosition(t, "6k1/3q4/8/4N3/8/8/8/4K3 b - - 0 1")
		legal := engine.GenerateLegalMoves(pos, model.Black)

		if got := FindForkDefense(pos, model.Black, legal); got != nil {
			t.Errorf("defense = %s, want none", got)
		}
	})
}
