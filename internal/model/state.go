package model

// Status is the lifecycle phase of a game.
type Status string

const (
	StatusActive    Status = "active"
	StatusWhiteWins Status = "white_wins"
	StatusBlackWins Status = "black_wins"
	StatusStalemate Status = "stalemate"
	StatusResigned  Status = "resigned"
)

// GameState is the snapshot emitted to clients after every committed
// move, undo, redo or reset.
type GameState struct {
	ID          string   `json:"id"`
	Board       Board    `json:"board"`
	Turn        Color    `json:"turn"`
	GameOver    bool     `json:"gameOver"`
	Status      Status   `json:"status"`
	CheckSquare *Square  `json:"checkSquare,omitempty"`
	Threatened  []Square `json:"threatened,omitempty"`
	LastAIMove  *Move    `json:"lastAiMove,omitempty"`
	Opening     string   `json:"opening,omitempty"`
	MoveHistory []string `json:"moveHistory"`
	AIName      string   `json:"aiName"`
}
