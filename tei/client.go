package tei

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quorbot/quorbot/board"
	"github.com/quorbot/quorbot/notation"
)

// Invalid is returned in place of a reply that never came or could
// not be parsed. No referee accepts it.
var Invalid = board.StepTo(board.Pos{X: -1, Y: -1})

// Client drives an external bot process for one match at a time.
type Client struct {
	// Timeout bounds the wait for each reply.
	Timeout time.Duration
	// Env is added to the bot's environment.
	Env []string

	cmdline []string

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	lines  chan string
	// stale counts ticks the bot has yet to answer after we gave up
	// waiting. The bot answers every tick in order, so that many lines
	// are skipped before the next reply.
	stale int
}

func NewClient(cmdline []string) *Client {
	return &Client{cmdline: cmdline}
}

// NewGame starts a fresh bot process and sends it the match header.
func (c *Client) NewGame(h *notation.Header) error {
	if c.cmd != nil {
		c.Close()
	}
	path, err := exec.LookPath(c.cmdline[0])
	if err != nil {
		return err
	}
	cmd := &exec.Cmd{
		Path:   path,
		Args:   c.cmdline,
		Env:    append(os.Environ(), c.Env...),
		Stderr: os.Stderr,
	}
	if c.stdin, err = cmd.StdinPipe(); err != nil {
		return err
	}
	if c.stdout, err = cmd.StdoutPipe(); err != nil {
		c.stdin.Close()
		return err
	}
	if err := cmd.Start(); err != nil {
		c.stdin.Close()
		c.stdout.Close()
		return fmt.Errorf("start %s: %w", c.cmdline[0], err)
	}
	c.cmd = cmd
	c.stale = 0
	c.lines = make(chan string, 1)
	go c.readLines(c.stdout, c.lines)
	return notation.WriteHeader(c.stdin, h)
}

func (c *Client) readLines(r io.Reader, out chan<- string) {
	s := bufio.NewScanner(r)
	for s.Scan() {
		out <- s.Text()
	}
	close(out)
}

// GetMove sends s to the bot and waits for its command. Any failure
// yields Invalid.
func (c *Client) GetMove(ctx context.Context, s *board.Snapshot) board.Move {
	if c.cmd == nil {
		return Invalid
	}
	if err := notation.WriteTick(c.stdin, s); err != nil {
		log.Warn().Err(err).Int("seat", s.Seat).Msg("send tick")
		return Invalid
	}
	timer := time.NewTimer(budget(ctx, c.Timeout, time.Now()))
	defer timer.Stop()
	for {
		select {
		case line, ok := <-c.lines:
			if !ok {
				log.Warn().Int("seat", s.Seat).Msg("bot exited")
				return Invalid
			}
			if c.stale > 0 {
				c.stale--
				log.Debug().Int("seat", s.Seat).Str("reply", line).Msg("late reply dropped")
				continue
			}
			m, err := notation.ParseMove(line)
			if err != nil {
				log.Warn().Err(err).Int("seat", s.Seat).Msg("bad reply")
				return Invalid
			}
			return m
		case <-timer.C:
			log.Warn().Int("seat", s.Seat).Int("tick", s.Tick).Msg("bot timed out")
			c.stale++
			return Invalid
		case <-ctx.Done():
			c.stale++
			return Invalid
		}
	}
}

// Close ends the match and waits for the bot to exit.
func (c *Client) Close() error {
	if c.cmd == nil {
		return nil
	}
	notation.WriteEnd(c.stdin)
	c.stdin.Close()

	// Wait must not run until the reader has seen EOF.
	done := make(chan struct{})
	go func() {
		for range c.lines {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(budget(context.Background(), c.Timeout, time.Now())):
		c.cmd.Process.Kill()
		<-done
	}
	err := c.cmd.Wait()
	c.cmd, c.stdin, c.stdout, c.lines = nil, nil, nil, nil
	c.stale = 0
	return err
}
