// Package console is a line protocol for playing a game against a strategy.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/OthelloGo/pkg/common"
	"github.com/ChizhovVadim/OthelloGo/pkg/game"
	"github.com/ChizhovVadim/OthelloGo/pkg/strategy"
)

var errQuit = errors.New("quit")

type Options struct {
	Player       common.Color
	RandomPlayer bool
	// Strategy plays the opponent and answers "go". Its Engine and QTable
	// are kept across games.
	Strategy strategy.Options
	Seed     int64
}

type Protocol struct {
	log      *zap.SugaredLogger
	out      io.Writer
	options  Options
	strategy *strategy.Strategy
	game     *game.Game
}

func New(log *zap.SugaredLogger, out io.Writer, options Options) *Protocol {
	var p = &Protocol{
		log:     log,
		out:     out,
		options: options,
	}
	p.setStrategy(options.Strategy)
	p.newGame()
	return p
}

func (p *Protocol) Game() *game.Game {
	return p.game
}

// Strategy is the opponent's strategy, with the engine and table it uses.
func (p *Protocol) Strategy() *strategy.Strategy {
	return p.strategy
}

// Run reads commands from r until "quit", end of input or ctx is done.
// Command errors are reported to out and do not stop the loop.
func (p *Protocol) Run(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var commands = make(chan string)
	var readErr = make(chan error, 1)

	go func() {
		defer close(commands)
		readErr <- readCommands(ctx, r, commands)
	}()

	p.printBoard()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case commandLine, ok := <-commands:
			if !ok {
				return <-readErr
			}
			var err = p.Handle(commandLine)
			if err == errQuit {
				return nil
			}
			if err != nil {
				p.log.Debugw("command failed", "command", commandLine, "error", err)
				fmt.Fprintf(p.out, "error: %v\n", err)
			}
		}
	}
}

func readCommands(ctx context.Context, r io.Reader, commands chan<- string) error {
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "" {
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case commands <- commandLine:
		}
	}
	return scanner.Err()
}

func (p *Protocol) Handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = strings.ToLower(fields[0])
	fields = fields[1:]

	var h func(fields []string) error

	switch commandName {
	case "new":
		h = p.newCommand
	case "board":
		h = p.boardCommand
	case "play":
		h = p.playCommand
	case "legal":
		h = p.legalCommand
	case "go":
		h = p.goCommand
	case "pass":
		h = p.passCommand
	case "undo":
		h = p.undoCommand
	case "redo":
		h = p.redoCommand
	case "strategy":
		h = p.strategyCommand
	case "depth":
		h = p.depthCommand
	case "quit":
		return errQuit
	}

	if h == nil {
		return fmt.Errorf("command not found: %v", commandName)
	}

	return h(fields)
}

func (p *Protocol) setStrategy(options strategy.Options) {
	// AlphaBeta and LearnedValue fill in Engine and QTable on first use.
	p.strategy = strategy.New(options)
	p.options.Strategy = p.strategy.Options
}

func (p *Protocol) newGame() {
	var options = game.NewOptions()
	options.Player = p.options.Player
	options.RandomPlayer = p.options.RandomPlayer
	options.OpponentStrategy = p.strategy
	options.Seed = p.options.Seed
	p.game = game.New(options)
	p.log.Infow("new game", "player", p.game.PlayerColor(), "strategy", p.strategy.Name())
}

func (p *Protocol) newCommand(fields []string) error {
	if len(fields) != 0 {
		if strings.EqualFold(fields[0], "random") {
			p.options.RandomPlayer = true
		} else {
			var color, err = common.ParseColor(fields[0])
			if err != nil {
				return err
			}
			p.options.Player = color
			p.options.RandomPlayer = false
		}
	}
	p.newGame()
	fmt.Fprintf(p.out, "you play %v\n", p.game.PlayerColor())
	return p.advance()
}

func (p *Protocol) boardCommand(fields []string) error {
	p.printBoard()
	return nil
}

func (p *Protocol) playCommand(fields []string) error {
	if len(fields) != 1 {
		return errors.New("usage: play <square>")
	}
	var sq, err = common.ParseSquare(fields[0])
	if err != nil {
		return err
	}
	if err := p.checkPlayerTurn(); err != nil {
		return err
	}
	if err := p.game.PutDisk(sq); err != nil {
		return fmt.Errorf("%v: %w", fields[0], err)
	}
	fmt.Fprintf(p.out, "%v %v\n", p.game.PlayerColor(), common.SquareName(sq))
	return p.advance()
}

func (p *Protocol) legalCommand(fields []string) error {
	if len(fields) != 1 {
		return errors.New("usage: legal <square>")
	}
	var sq, err = common.ParseSquare(fields[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, p.game.IsLegal(sq))
	return nil
}

// goCommand lets the strategy move for the player.
func (p *Protocol) goCommand(fields []string) error {
	if err := p.checkPlayerTurn(); err != nil {
		return err
	}
	var sq = p.strategy.SelectMove(p.game.Position(), p.game.Turn())
	if err := p.game.PutDisk(sq); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "%v %v\n", p.game.PlayerColor(), common.SquareName(sq))
	return p.advance()
}

func (p *Protocol) passCommand(fields []string) error {
	if p.game.IsOver() {
		return game.ErrGameOver
	}
	if p.game.Turn() == p.game.PlayerColor() && p.game.Reversible() != 0 {
		return errors.New("pass with legal moves")
	}
	return p.advance()
}

func (p *Protocol) undoCommand(fields []string) error {
	var n = p.game.Undo()
	fmt.Fprintf(p.out, "undo %v\n", n)
	return nil
}

func (p *Protocol) redoCommand(fields []string) error {
	var n = p.game.Redo()
	fmt.Fprintf(p.out, "redo %v\n", n)
	return nil
}

func (p *Protocol) strategyCommand(fields []string) error {
	if len(fields) != 1 {
		fmt.Fprintln(p.out, p.strategy.Name())
		return nil
	}
	var kind, err = strategy.Parse(fields[0])
	if err != nil {
		return err
	}
	var options = p.options.Strategy
	options.Kind = kind
	p.setStrategy(options)
	p.game.SetStrategy(p.strategy, false)
	fmt.Fprintf(p.out, "strategy %v\n", p.strategy.Name())
	return nil
}

func (p *Protocol) depthCommand(fields []string) error {
	if len(fields) != 1 {
		return errors.New("usage: depth <n>")
	}
	var depth, err = strconv.Atoi(fields[0])
	if err != nil || depth < 1 {
		return fmt.Errorf("bad depth %q", fields[0])
	}
	var options = p.options.Strategy
	options.Depth = depth
	p.setStrategy(options)
	p.game.SetStrategy(p.strategy, false)
	fmt.Fprintf(p.out, "depth %v\n", depth)
	return nil
}

func (p *Protocol) checkPlayerTurn() error {
	if p.game.IsOver() {
		return game.ErrGameOver
	}
	if p.game.Turn() != p.game.PlayerColor() {
		return errors.New("not your turn")
	}
	return nil
}

// advance runs passes and opponent moves until the player has a move or the
// game is over.
func (p *Protocol) advance() error {
	for {
		if p.game.IsOver() {
			p.printResult()
			return nil
		}
		if p.game.Turn() == p.game.PlayerColor() && p.game.Reversible() != 0 {
			return nil
		}
		var side = p.game.Turn()
		var before = len(p.game.Moves())
		var done, err = p.game.Process()
		if err != nil {
			return err
		}
		var moves = p.game.Moves()
		if len(moves) > before {
			fmt.Fprintf(p.out, "%v %v\n", side, common.SquareName(moves[len(moves)-1]))
		}
		if done {
			p.printResult()
			return nil
		}
	}
}

func (p *Protocol) printResult() {
	var player, opponent, _ = p.game.Counts()
	fmt.Fprintf(p.out, "result %v %v-%v\n", p.game.Result(), player, opponent)
	p.log.Infow("game over", "result", p.game.Result().String(), "player", player, "opponent", opponent)
}

func (p *Protocol) printBoard() {
	fmt.Fprint(p.out, renderBoard(p.game.Grid()))
	var player, opponent, _ = p.game.Counts()
	fmt.Fprintf(p.out, "to move %v, you %v %v, opponent %v\n",
		p.game.Turn(), p.game.PlayerColor(), player, opponent)
}

func renderBoard(grid [8][8]int) string {
	var sb = &strings.Builder{}
	sb.WriteString("  a b c d e f g h\n")
	for rank := 0; rank < 8; rank++ {
		fmt.Fprintf(sb, "%v", rank+1)
		for file := 0; file < 8; file++ {
			var c = "."
			switch {
			case grid[rank][file] == 1:
				c = "X"
			case grid[rank][file] == -1:
				c = "O"
			}
			sb.WriteString(" ")
			sb.WriteString(c)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
