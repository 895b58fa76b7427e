// Package fen contains utilities for reading and writing positions in FEN notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ParkBlake/zugzwang/pkg/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a six-field FEN record into a Position.
//
// Example: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(s string) (board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) < 4 || len(parts) > 6 {
		return board.Position{}, fmt.Errorf("invalid number of fields in FEN: %q", s)
	}
	for len(parts) < 6 {
		// halfmove clock and fullmove number default to 0 and 1.
		if len(parts) == 4 {
			parts = append(parts, "0")
		} else {
			parts = append(parts, "1")
		}
	}

	// (1) Piece placement, ranks 8 down to 1, files a through h within each rank.

	var pieces []board.Placement

	rank, file := board.Rank8, board.ZeroFile
	for _, r := range parts[0] {
		switch {
		case r == '/':
			if file != board.NumFiles {
				return board.Position{}, fmt.Errorf("invalid rank length in FEN: %q", s)
			}
			if rank == board.ZeroRank {
				return board.Position{}, fmt.Errorf("too many ranks in FEN: %q", s)
			}
			rank--
			file = board.ZeroFile

		case unicode.IsDigit(r):
			file += board.File(r - '0')

		case unicode.IsLetter(r):
			color, piece, ok := parsePiece(r)
			if !ok {
				return board.Position{}, fmt.Errorf("invalid piece %q in FEN: %q", r, s)
			}
			if file >= board.NumFiles {
				return board.Position{}, fmt.Errorf("rank overflow in FEN: %q", s)
			}
			pieces = append(pieces, board.Placement{Square: board.NewSquare(file, rank), Color: color, Piece: piece})
			file++

		default:
			return board.Position{}, fmt.Errorf("invalid character %q in FEN: %q", r, s)
		}
	}
	if rank != board.ZeroRank || file != board.NumFiles {
		return board.Position{}, fmt.Errorf("invalid number of squares in FEN: %q", s)
	}

	// (2) Active color.

	turn, ok := parseColor(parts[1])
	if !ok {
		return board.Position{}, fmt.Errorf("invalid active color in FEN: %q", s)
	}

	// (3) Castling availability.

	castling, ok := parseCastling(parts[2])
	if !ok {
		return board.Position{}, fmt.Errorf("invalid castling in FEN: %q", s)
	}

	// (4) En-passant target square.

	var ep board.Square
	var epOK bool
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return board.Position{}, fmt.Errorf("invalid en-passant square in FEN: %q", s)
		}
		ep, epOK = sq, true
	}

	// (5) Halfmove clock.

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return board.Position{}, fmt.Errorf("invalid halfmove clock in FEN: %q", s)
	}

	// (6) Fullmove number.

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 0 {
		return board.Position{}, fmt.Errorf("invalid fullmove number in FEN: %q", s)
	}

	return board.NewPosition(pieces, turn, castling, ep, epOK, halfmove, fullmove)
}

// Encode renders a position as a six-field FEN record. Encode(Decode(s)) == s for
// any six-field s in canonical form (empty runs merged into one digit, castling rights
// in KQkq order); shorter or non-canonical records decode fine but encode differently.
func Encode(p *board.Position) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			c, piece, ok := p.Square(board.NewSquare(f, r))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(c, piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r == board.ZeroRank {
			break
		}
		sb.WriteRune('/')
	}

	ep := "-"
	if sq, ok := p.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), printColor(p.Turn()), printCastling(p.Castling()), ep, p.Halfmove(), p.Fullmove())
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling
	if str == "-" {
		return ret, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	return c.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	return c.String()
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	piece, ok := board.ParsePiece(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, piece, true
	}
	return board.Black, piece, true
}

func printPiece(c board.Color, p board.Piece) rune {
	r := []rune(p.String())[0]
	if c == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
