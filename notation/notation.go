// Package notation reads and writes the line protocol spoken between
// a referee and a bot.
//
// A match opens with a header line "n seat m" followed by n lines
// "x y walls" giving the starting pawns. Each turn is a tick number,
// n pawn lines, a wall count f and f lines "x y v who". A negative tick
// ends the match. The bot answers every tick with one command line.
package notation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/quorbot/quorbot/board"
)

var ErrGameOver = errors.New("game over")

type Header struct {
	Players int
	Seat    int
	Size    int
	Initial []board.Player
}

type Reader struct {
	s   *bufio.Scanner
	hdr *Header
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Reader{s: s}
}

func (r *Reader) next() (int, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	n, err := strconv.Atoi(r.s.Text())
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", r.s.Text(), err)
	}
	return n, nil
}

func (r *Reader) ints(out ...*int) error {
	for _, p := range out {
		n, err := r.next()
		if err != nil {
			return err
		}
		*p = n
	}
	return nil
}

func (r *Reader) players(n int) ([]board.Player, error) {
	out := make([]board.Player, n)
	for i := range out {
		if err := r.ints(&out[i].X, &out[i].Y, &out[i].Walls); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *Reader) ReadHeader() (*Header, error) {
	var h Header
	if err := r.ints(&h.Players, &h.Seat, &h.Size); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, err
	}
	if h.Players < 1 || h.Seat < 0 || h.Seat >= h.Players || h.Size < 2 {
		return nil, fmt.Errorf("bad header: %d players, seat %d, size %d",
			h.Players, h.Seat, h.Size)
	}
	var err error
	if h.Initial, err = r.players(h.Players); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	r.hdr = &h
	return &h, nil
}

// ReadTick reads the next turn. It returns ErrGameOver when the
// referee ends the match.
func (r *Reader) ReadTick() (*board.Snapshot, error) {
	if r.hdr == nil {
		return nil, errors.New("ReadTick before ReadHeader")
	}
	tick, err := r.next()
	if err == io.ErrUnexpectedEOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	if tick < 0 {
		return nil, ErrGameOver
	}
	s := &board.Snapshot{
		Tick: tick,
		Seat: r.hdr.Seat,
		Size: r.hdr.Size,
	}
	if s.Players, err = r.players(r.hdr.Players); err != nil {
		return nil, fmt.Errorf("tick %d: %w", tick, err)
	}
	var f int
	if err := r.ints(&f); err != nil {
		return nil, fmt.Errorf("tick %d: %w", tick, err)
	}
	s.Walls = make([]board.PlacedWall, f)
	for i := range s.Walls {
		var v int
		w := &s.Walls[i]
		if err := r.ints(&w.X, &w.Y, &v, &w.Who); err != nil {
			return nil, fmt.Errorf("tick %d: %w", tick, err)
		}
		w.Vertical = v == 1
	}
	return s, nil
}

func writePlayers(w *bufio.Writer, players []board.Player) {
	for _, p := range players {
		fmt.Fprintf(w, "%d %d %d\n", p.X, p.Y, p.Walls)
	}
}

func WriteHeader(w io.Writer, h *Header) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d\n", h.Players, h.Seat, h.Size)
	writePlayers(bw, h.Initial)
	return bw.Flush()
}

func WriteTick(w io.Writer, s *board.Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", s.Tick)
	writePlayers(bw, s.Players)
	fmt.Fprintf(bw, "%d\n", len(s.Walls))
	for _, pw := range s.Walls {
		fmt.Fprintf(bw, "%d %d %d %d\n", pw.X, pw.Y, flag(pw.Vertical), pw.Who)
	}
	return bw.Flush()
}

// WriteEnd tells the bot the match is over.
func WriteEnd(w io.Writer) error {
	_, err := io.WriteString(w, "-1\n")
	return err
}
