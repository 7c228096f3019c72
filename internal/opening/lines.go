package opening

// bookLine is one weighted database entry: a piece-placement key, a
// candidate move in coordinate algebraic, the master-game count behind
// it, and the opening name it belongs to.
type bookLine struct {
	placement string
	move      string
	games     int
	name      string
}

var mainLines = []bookLine{
	// First moves.
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "e2e4", 45000, "King's Pawn Opening"},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "d2d4", 42000, "Queen's Pawn Opening"},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "g1f3", 25000, "Réti Opening"},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "c2c4", 22000, "English Opening"},

	// Replies to 1.e4.
	{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", "e7e5", 35000, "King's Pawn Game"},
	{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", "c7c5", 32000, "Sicilian Defense"},
	{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", "e7e6", 12000, "French Defense"},
	{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", "c7c6", 11000, "Caro-Kann Defense"},
	{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", "g8f6", 9500, "Alekhine Defense"},
	{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", "d7d6", 9200, "Pirc Defense"},
	{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", "g7g6", 8800, "Modern Defense"},
	{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", "d7d5", 8500, "Scandinavian Defense"},

	// Replies to 1.d4.
	{"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR", "d7d5", 28000, "Queen's Gambit Declined"},
	{"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR", "g8f6", 10500, "Indian Defense"},
	{"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR", "e7e6", 10200, "Queen's Pawn Game"},
	{"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR", "c7c5", 10000, "Benoni Defense"},

	// King's pawn game continuations.
	{"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR", "g1f3", 30000, "King's Knight Opening"},
	{"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR", "f1c4", 25000, "Italian Game"},

	{"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", "b8c6", 28000, "Italian Game - Knight Development"},
	{"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", "g8f6", 26000, "Petrov Defense"},
	{"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", "f8c5", 24000, "Italian Game Setup"},
	{"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", "d7d6", 22000, "Philidor Defense"},

	// Sicilian continuations.
	{"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR", "g1f3", 28000, "Open Sicilian"},

	{"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R", "d7d6", 25000, "Sicilian Dragon Setup"},
	{"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R", "b8c6", 23000, "Sicilian Accelerated Dragon"},
	{"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R", "g8f6", 21000, "Sicilian Defense - Najdorf"},
	{"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R", "g7g6", 19000, "Sicilian Defense - Dragon"},

	// Italian game continuations.
	{"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", "f1c4", 26000, "Italian Game - Bishop Development"},
	{"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", "f1b5", 24000, "Ruy Lopez"},
	{"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R", "f8c5", 24000, "Italian Game - Classical"},
	{"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R", "g8f6", 22000, "Italian Game - Two Knights"},
	{"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R", "f8e7", 20000, "Italian Game - Hungarian Defense"},
	{"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R", "d7d6", 18000, "Italian Game - Paris Defense"},

	// Ruy Lopez.
	{"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R", "a7a6", 26000, "Ruy Lopez - Morphy Defense"},
	{"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R", "g8f6", 24000, "Ruy Lopez - Berlin Defense"},
	{"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R", "f7f5", 22000, "Ruy Lopez - Schliemann Defense"},
	{"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R", "d7d6", 20000, "Ruy Lopez - Steinitz Defense"},

	// Petrov.
	{"rnbqkb1r/pppp1ppp/5n2/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", "f3e5", 18000, "Petrov Defense - Main Line"},
	{"rnbqkb1r/pppp1ppp/5n2/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", "b1c3", 16000, "Petrov Defense - Three Knights"},
	{"rnbqkb1r/pppp1ppp/5n2/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", "d2d3", 14000, "Petrov Defense - Modern Attack"},

	// French.
	{"rnbqkbnr/pppp1ppp/4p3/8/4P3/8/PPPP1PPP/RNBQKBNR", "d2d4", 16000, "French Defense"},
	{"rnbqkbnr/pppp1ppp/4p3/8/4P3/5N2/PPPP1PPP/RNBQKB1R", "d7d5", 15000, "French Defense - Two Knights"},
	{"rnbqkbnr/pppp1ppp/4p3/8/4P3/5N2/PPPP1PPP/RNBQKB1R", "f8e7", 14000, "French Defense - Classical Setup"},
	{"rnbqkbnr/pppp1ppp/4p3/8/4P3/5N2/PPPP1PPP/RNBQKB1R", "c7c5", 13000, "French Defense - Franco-Sicilian"},

	{"rnbqkbnr/pppp1ppp/4p3/8/3PP3/8/PPP2PPP/RNBQKBNR", "d7d5", 15000, "French Defense - Main Line"},
	{"rnbqkbnr/pppp1ppp/4p3/8/3PP3/8/PPP2PPP/RNBQKBNR", "c7c5", 13000, "French Defense - Franco-Benoni"},
	{"rnbqkbnr/pppp1ppp/4p3/8/3PP3/8/PPP2PPP/RNBQKBNR", "g8f6", 12000, "French Defense - Knight Variation"},
	{"rnbqkbnr/pppp1ppp/4p3/8/3PP3/8/PPP2PPP/RNBQKBNR", "f8e7", 11000, "French Defense - Rubinstein"},

	{"rnbqkbnr/ppp2ppp/4p3/3p4/3PP3/8/PPP2PPP/RNBQKBNR", "e4e5", 14000, "French Defense - Advance"},
	{"rnbqkbnr/ppp2ppp/4p3/3p4/3PP3/8/PPP2PPP/RNBQKBNR", "b1c3", 13000, "French Defense - Classical"},

	// Caro-Kann.
	{"rnbqkbnr/pp1ppppp/2p5/8/4P3/8/PPPP1PPP/RNBQKBNR", "d2d4", 11000, "Caro-Kann Main Line"},
	{"rnbqkbnr/pp1ppppp/2p5/8/3PP3/8/PPP2PPP/RNBQKBNR", "d7d5", 10000, "Caro-Kann Defense - Classical"},
	{"rnbqkbnr/pp1ppppp/2p5/8/3PP3/8/PPP2PPP/RNBQKBNR", "g8f6", 8000, "Caro-Kann Two Knights"},
	{"rnbqkbnr/pp1ppppp/2p5/8/3PP3/8/PPP2PPP/RNBQKBNR", "e7e6", 7000, "Caro-Kann French Transposition"},
	{"rnbqkbnr/pp1ppppp/2p5/8/3PP3/8/PPP2PPP/RNBQKBNR", "g7g6", 6000, "Caro-Kann Modern"},
	{"rnbqkbnr/pp2pppp/2p5/3p4/3PP3/8/PPP2PPP/RNBQKBNR", "b1c3", 9500, "Caro-Kann Classical"},
	{"rnbqkbnr/pp2pppp/2p5/3p4/3PP3/2N5/PPP2PPP/R1BQKBNR", "d5e4", 9000, "Caro-Kann Exchange"},

	// Queen's Gambit.
	{"rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR", "c2c4", 25000, "Queen's Gambit"},
	{"rnbqkbnr/ppp1pppp/8/3p4/2PP4/8/PP2PPPP/RNBQKBNR", "e7e6", 22000, "Queen's Gambit Declined - Orthodox Setup"},
	{"rnbqkbnr/ppp1pppp/8/3p4/2PP4/8/PP2PPPP/RNBQKBNR", "d5c4", 20000, "Queen's Gambit Accepted"},
	{"rnbqkbnr/ppp2ppp/4p3/3p4/2PP4/8/PP2PPPP/RNBQKBNR", "b1c3", 18000, "Queen's Gambit Orthodox"},

	{"rnbqkbnr/ppp2ppp/4p3/3p4/2PP4/2N5/PP2PPPP/R1BQKBNR", "g8f6", 20000, "Queen's Gambit Declined - Orthodox"},
	{"rnbqkbnr/ppp2ppp/4p3/3p4/2PP4/2N5/PP2PPPP/R1BQKBNR", "f8e7", 18000, "Queen's Gambit Declined - Tartakower"},
	{"rnbqkbnr/ppp2ppp/4p3/3p4/2PP4/2N5/PP2PPPP/R1BQKBNR", "c7c6", 16000, "Queen's Gambit Declined - Semi-Slav"},
	{"rnbqkbnr/ppp2ppp/4p3/3p4/2PP4/2N5/PP2PPPP/R1BQKBNR", "b8d7", 14000, "Queen's Gambit Declined - Cambridge Springs"},

	// Réti and English.
	{"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R", "d7d5", 18000, "Réti Opening - Main Line"},
	{"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR", "g8f6", 18000, "English Opening - Anglo-Indian"},
	{"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR", "e7e5", 15000, "English Opening - King's English"},

	{"rnbqkbnr/pppp1ppp/8/4p3/2P5/2N5/PP1PPPPP/R1BQKBNR", "g8f6", 16000, "English Opening - Four Knights"},
	{"rnbqkbnr/pppp1ppp/8/4p3/2P5/2N5/PP1PPPPP/R1BQKBNR", "b8c6", 14000, "English Opening - Closed System"},
	{"rnbqkbnr/pppp1ppp/8/4p3/2P5/2N5/PP1PPPPP/R1BQKBNR", "f8c5", 12000, "English Opening - Reversed Sicilian"},
	{"rnbqkbnr/pppp1ppp/8/4p3/2P5/2N5/PP1PPPPP/R1BQKBNR", "d7d6", 10000, "English Opening - Closed Defense"},

	// Scandinavian.
	{"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR", "e4d5", 7500, "Scandinavian Defense - Exchange"},
	{"rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR", "d8d5", 7000, "Scandinavian Defense - Main Line"},
	{"rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR", "g8f6", 6000, "Scandinavian Defense - Modern Variation"},
	{"rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR", "c7c6", 5500, "Scandinavian Defense - Panov Transfer"},
	{"rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR", "e7e6", 5000, "Scandinavian Defense - Icelandic Gambit"},
	{"rnb1kbnr/ppp1pppp/8/3q4/8/8/PPPP1PPP/RNBQKBNR", "b1c3", 6500, "Scandinavian Defense - Knight Attack"},

	// Alekhine.
	{"rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR", "b1c3", 8000, "Alekhine Defense - Knight Variation"},
	{"rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR", "e4e5", 7500, "Alekhine Defense - Advance Variation"},
	{"rnbqkb1r/pppppppp/5n2/8/4P3/2N5/PPPP1PPP/R1BQKBNR", "d7d5", 7000, "Alekhine Defense - Scandinavian Variation"},

	{"rnbqkb1r/pppppppp/5n2/4P3/8/8/PPPP1PPP/RNBQKBNR", "f6d5", 7200, "Alekhine Defense - Main Line"},
	{"rnbqkb1r/pppppppp/5n2/4P3/8/8/PPPP1PPP/RNBQKBNR", "f6g8", 6800, "Alekhine Defense - Brooklyn Variation"},
	{"rnbqkb1r/pppppppp/5n2/4P3/8/8/PPPP1PPP/RNBQKBNR", "f6e4", 6400, "Alekhine Defense - Mokele Mbembe"},

	{"rnbqkb1r/pppppppp/8/3nP3/8/8/PPPP1PPP/RNBQKBNR", "d2d4", 6800, "Alekhine Defense - Modern Variation"},
	{"rnbqkb1r/pppppppp/8/3nP3/8/8/PPPP1PPP/RNBQKBNR", "b1c3", 6400, "Alekhine Defense - Saemisch Attack"},
	{"rnbqkb1r/pppppppp/8/3nP3/8/8/PPPP1PPP/RNBQKBNR", "c2c4", 6000, "Alekhine Defense - Chase Variation"},

	// Najdorf and open Sicilian structures.
	{"rnbqkb1r/pp1ppppp/5n2/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R", "d2d4", 22000, "Sicilian Defense - Open Game"},
	{"rnbqkbnr/pp2pppp/3p4/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R", "d2d4", 20000, "Sicilian Najdorf Setup"},
	{"rnbqkbnr/pp2pppp/3p4/2p5/3PP3/5N2/PPP2PPP/RNBQKB1R", "c5d4", 22000, "Sicilian Defense - Open Variation"},
	{"rnbqkbnr/pp2pppp/3p4/2p5/3PP3/5N2/PPP2PPP/RNBQKB1R", "g8f6", 20000, "Sicilian Defense - Nimzowitsch"},
	{"rnbqkbnr/pp2pppp/3p4/2p5/3PP3/5N2/PPP2PPP/RNBQKB1R", "b8c6", 18000, "Sicilian Defense - Accelerated Dragon"},

	// Sicilian with an early c4.
	{"rnbqkbnr/pp1ppppp/8/2p5/2P1P3/8/PP1P1PPP/RNBQKBNR", "b8c6", 15000, "Sicilian Defense - English Attack"},
	{"rnbqkbnr/pp1ppppp/8/2p5/2P1P3/8/PP1P1PPP/RNBQKBNR", "d7d6", 14000, "Sicilian Defense - Closed System"},
	{"rnbqkbnr/pp1ppppp/8/2p5/2P1P3/8/PP1P1PPP/RNBQKBNR", "g8f6", 13000, "Sicilian Defense - Hyperaccelerated Dragon"},
	{"rnbqkbnr/pp1ppppp/8/2p5/2P1P3/8/PP1P1PPP/RNBQKBNR", "g7g6", 12000, "Sicilian Defense - Modern Variation"},
}

// lineSequences holds full move-by-move continuations for the named
// lines worth following past the first hit. Moves alternate sides
// starting from the position the name is keyed at; the first entry is
// the book move itself.
var lineSequences = map[string][]string{
	"King's Knight Opening":         {"g1f3", "b8c6", "f1c4", "f8c5", "c2c3", "g8f6", "d2d3", "d7d6"},
	"Italian Game":                  {"f1c4", "b8c6", "g1f3", "f8c5", "c2c3", "g8f6", "d2d3", "d7d6"},
	"Italian Game - Two Knights":    {"g8f6", "d2d3", "f8c5", "c2c3", "d7d6", "e1g1", "e8g8"},
	"Sicilian Defense":              {"c7c5", "g1f3", "d7d6", "d2d4", "c5d4", "f3d4", "g8f6", "b1c3", "a7a6"},
	"Open Sicilian":                 {"g1f3", "d7d6", "d2d4", "c5d4", "f3d4", "g8f6", "b1c3", "a7a6"},
	"French Defense - Main Line":    {"d7d5", "b1c3", "g8f6", "c1g5", "f8e7", "e4e5", "f6d7"},
	"Caro-Kann Defense - Classical": {"d7d5", "b1c3", "d5e4", "c3e4", "c8f5", "e4g3", "f5g6"},
	"Queen's Gambit Declined":       {"d7d5", "c2c4", "e7e6", "b1c3", "g8f6", "c1g5", "f8e7"},
	"Queen's Gambit":                {"c2c4", "e7e6", "b1c3", "g8f6", "c1g5", "f8e7", "e2e3", "e8g8"},
	"Ruy Lopez - Morphy Defense":    {"a7a6", "b5a4", "g8f6", "e1g1", "f8e7", "f1e1", "b7b5", "a4b3", "d7d6"},
	"Petrov Defense":                {"g8f6", "f3e5", "d7d6", "e5f3", "f6e4", "d2d4", "d6d5"},
	"Réti Opening - Main Line":      {"d7d5", "c2c4", "c7c6", "b2b3", "c8f5", "c1b2", "e7e6"},
}
