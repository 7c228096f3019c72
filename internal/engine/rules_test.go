package engine

import (
	"testing"

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

func TestIsValidMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		move model.Move
		want bool
	}{
		{
			name: "pawn single push",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(6, 4, 5, 4),
			want: true,
		},
		{
			name: "pawn double push from start rank",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(6, 4, 4, 4),
			want: true,
		},
		{
			name: "pawn double push not from start rank",
			fen:  "rnbqkbnr/pppppppp/8/8/8/4P3/8/RNBQKBNR w KQkq - 0 1",
			move: mv(5, 4, 3, 4),
			want: false,
		},
		{
			name: "pawn double push through blocker",
			fen:  "rnbqkbnr/pppp1ppp/8/8/8/4p3/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(6, 4, 4, 4),
			want: false,
		},
		{
			name: "pawn cannot capture straight ahead",
			fen:  "rnbqkbnr/pppp1ppp/8/8/4p3/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(6, 4, 4, 4),
			want: false,
		},
		{
			name: "pawn diagonal capture",
			fen:  "rnbqkbnr/pppp1ppp/8/8/8/3p4/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(6, 4, 5, 3),
			want: true,
		},
		{
			name: "pawn diagonal without capture",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(6, 4, 5, 3),
			want: false,
		},
		{
			name: "knight jumps over pieces",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(7, 6, 5, 5),
			want: true,
		},
		{
			name: "rook blocked by own pawn",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(7, 0, 4, 0),
			want: false,
		},
		{
			name: "bishop clear diagonal",
			fen:  "rnbqkbnr/pppppppp/8/8/8/4P3/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
			move: mv(7, 5, 2, 0),
			want: true,
		},
		{
			name: "queen sliding capture",
			fen:  "4k3/8/8/8/8/8/4r3/4QK2 w - - 0 1",
			move: mv(7, 4, 6, 4),
			want: true,
		},
		{
			name: "wrong side to move",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(1, 4, 3, 4),
			want: false,
		},
		{
			name: "empty source square",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(4, 4, 3, 4),
			want: false,
		},
		{
			name: "destination holds own piece",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(7, 0, 6, 0),
			want: false,
		},
		{
			name: "out of bounds never panics",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			move: mv(6, 4, -1, 9),
			want: false,
		},
		{
			name: "move exposing own king is illegal",
			fen:  "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			move: mv(6, 4, 4, 3),
			want: false,
		},
		{
			name: "king cannot step into attack",
			fen:  "4k3/8/8/8/8/8/5r2/4K3 w - - 0 1",
			move: mv(7, 4, 7, 5),
			want: false,
		},
		{
			name: "king escapes check",
			fen:  "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1",
			move: mv(7, 4, 7, 3),
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, tt.fen)
			if got := IsValidMove(pos, tt.move); got != tt.want {
				t.Errorf("IsValidMove(%s) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestGenerateLegalMovesCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		side model.Color
		want int
	}{
		{
			name: "starting position white",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			side: model.White,
			want: 20,
		},
		{
			name: "starting position black",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			side: model.Black,
			want: 20,
		},
		{
			name: "lone kings",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			side: model.White,
			want: 5,
		},
		{
			name: "checkmated side has none",
			fen:  "R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1",
			side: model.Black,
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, tt.fen)
			got := GenerateLegalMoves(pos, tt.side)
			if len(got) != tt.want {
				t.Errorf("got %d legal moves, want %d: %v", len(got), tt.want, got)
			}
		})
	}
}

// Every generated move, once applied, must leave the mover's own King
// out of check.
func TestGeneratedMovesKeepKingSafe(t *testing.T) {
	t.Parallel()
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR b KQkq - 0 3",
		"4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
		"6k1/5ppp/8/8/8/8/2q5/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		pos := mustPosition(t, fen)
		for _, side := range []model.Color{model.White, model.Black} {
			for _, m := range GenerateLegalMoves(pos, side) {
				sim := pos.Clone()
				sim.Turn = side
				sim.Apply(m, "")
				if IsKingInCheck(&sim.Board, side) {
					t.Errorf("fen %q: move %s leaves %s king in check", fen, m, side)
				}
			}
		}
	}
}

func TestLegalMovesFrom(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	got := LegalMovesFrom(pos, model.Square{Row: 6, Col: 4})
	if len(got) != 2 {
		t.Errorf("e2 pawn has %d moves, want 2: %v", len(got), got)
	}
	if got := LegalMovesFrom(pos, model.Square{Row: 4, Col: 4}); got != nil {
		t.Errorf("empty square returned moves: %v", got)
	}
}

func TestCastling(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		move model.Move
		want bool
	}{
		{
			name: "white kingside allowed",
			fen:  "4k3/8/8/8/8/8/8/4K2R w K - 0 1",
			move: mv(7, 4, 7, 6),
			want: true,
		},
		{
			name: "white kingside without rights",
			fen:  "4k3/8/8/8/8/8/8/4K2R w - - 0 1",
			move: mv(7, 4, 7, 6),
			want: false,
		},
		{
			name: "crossing square attacked",
			fen:  "4k3/8/8/8/8/5r2/8/4K2R w K - 0 1",
			move: mv(7, 4, 7, 6),
			want: false,
		},
		{
			name: "king in check",
			fen:  "4k3/8/8/8/4r3/8/8/4K2R w K - 0 1",
			move: mv(7, 4, 7, 6),
			want: false,
		},
		{
			name: "black queenside allowed",
			fen:  "r3k3/8/8/8/8/8/8/4K3 b q - 0 1",
			move: mv(0, 4, 0, 2),
			want: true,
		},
		{
			name: "black queenside path occupied",
			fen:  "rn2k3/8/8/8/8/8/8/4K3 b q - 0 1",
			move: mv(0, 4, 0, 2),
			want: false,
		},
		{
			name: "rook missing",
			fen:  "4k3/8/8/8/8/8/8/4K3 w K - 0 1",
			move: mv(7, 4, 7, 6),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, tt.fen)
			if got := IsValidMove(pos, tt.move); got != tt.want {
				t.Errorf("IsValidMove(castle %s) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestCastleMoveGenerated(t *testing.T) {
	t.Parallel()
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	found := false
	for _, m := range GenerateLegalMoves(pos, model.White) {
		if m == mv(7, 4, 7, 6) {
			found = true
		}
	}
	if !found {
		t.Error("kingside castle missing from generated moves")
	}
}
