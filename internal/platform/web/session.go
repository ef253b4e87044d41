package web

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/registry"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

const (
	writeWait   = 5 * time.Second
	inputBuffer = 64

	// Browser frames carry an ASCII rendering of this size next to the view.
	frameW = 80
	frameH = 24
)

// clientMessage is an input event sent by the browser.
//
//	{"type":"key","key":"left","down":true}
//	{"type":"pointer","x":3,"y":1,"click":true}
//	{"type":"action","action":"pause"}
type clientMessage struct {
	Type   string  `json:"type"`
	Key    string  `json:"key,omitempty"`
	Down   bool    `json:"down,omitempty"`
	Action string  `json:"action,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Click  bool    `json:"click,omitempty"`
}

// frameMessage is sent to the browser after every tick.
type frameMessage struct {
	Type   string      `json:"type"`
	Game   string      `json:"game"`
	Tick   uint64      `json:"tick"`
	Score  int         `json:"score"`
	Lives  int         `json:"lives"`
	Status core.Status `json:"status"`
	View   any         `json:"view,omitempty"`
	Screen string      `json:"screen"`
}

// keyStater is implemented by games that track held keys themselves
// instead of reading them from the input frame.
type keyStater interface {
	SetKeyState(left, right bool)
}

// session runs one game for one WebSocket client. Only the run goroutine
// touches the game; the reader goroutine just decodes messages.
type session struct {
	game   registry.Game
	conn   *websocket.Conn
	store  *storage.Store
	logger *log.Logger
	cfg    core.RuntimeConfig

	inputs chan clientMessage
	frame  core.InputFrame
	screen *core.Screen

	left, right bool
	tick        uint64
	recorded    bool
}

func newSession(game registry.Game, conn *websocket.Conn, store *storage.Store, logger *log.Logger, tickRate int) *session {
	return &session{
		game:   game,
		conn:   conn,
		store:  store,
		logger: logger,
		cfg: core.RuntimeConfig{
			ScreenW:  frameW,
			ScreenH:  frameH,
			TickRate: tickRate,
			Seed:     time.Now().UnixNano(),
		},
		inputs: make(chan clientMessage, inputBuffer),
		frame:  core.NewInputFrame(),
		screen: core.NewScreen(frameW, frameH),
	}
}

// run steps the game on a fixed ticker until the client disconnects,
// sends quit, or ctx is cancelled.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	s.game.Reset(s.cfg)
	go s.readLoop(ctx)

	if err := s.send(); err != nil {
		return
	}

	ticker := time.NewTicker(time.Duration(s.cfg.TickMillis() * float64(time.Millisecond)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.inputs:
			if !ok {
				return
			}
			s.apply(msg)
		case <-ticker.C:
			if !s.step() {
				return
			}
			if err := s.send(); err != nil {
				s.logger.Debug("write failed", "game", s.game.ID(), "error", err)
				return
			}
		}
	}
}

// readLoop decodes client messages until the connection fails, then closes
// the input channel.
func (s *session) readLoop(ctx context.Context) {
	defer close(s.inputs)
	for {
		var msg clientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("read failed", "game", s.game.ID(), "error", err)
			}
			return
		}
		select {
		case s.inputs <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// apply folds a client message into the pending input frame.
func (s *session) apply(msg clientMessage) {
	switch msg.Type {
	case "key":
		action := core.ParseAction(msg.Key)
		if ks, ok := s.game.(keyStater); ok && (action == core.ActionLeft || action == core.ActionRight) {
			if action == core.ActionLeft {
				s.left = msg.Down
			} else {
				s.right = msg.Down
			}
			ks.SetKeyState(s.left, s.right)
			return
		}
		if msg.Down && action != core.ActionNone {
			s.frame.Set(action)
		}
	case "pointer":
		s.frame.SetPointer(core.Pointer{X: msg.X, Y: msg.Y, Click: msg.Click})
	case "action":
		if action := core.ParseAction(msg.Action); action != core.ActionNone {
			s.frame.Set(action)
		}
	default:
		s.logger.Debug("unknown message", "type", msg.Type)
	}
}

// step advances the game by one tick. It returns false when the client
// asked to quit.
func (s *session) step() bool {
	defer s.frame.Clear()

	if s.frame.Has(core.ActionQuit) {
		return false
	}

	if s.frame.Has(core.ActionRestart) {
		s.cfg.Seed = time.Now().UnixNano()
		s.game.Reset(s.cfg)
		s.left, s.right = false, false
		s.tick = 0
		s.recorded = false
		return true
	}

	state := s.game.Step(s.frame).State
	s.tick++

	if state.GameOver && !s.recorded {
		if s.store != nil {
			if err := s.store.RecordRound(s.game.ID(), state, s.game); err != nil {
				s.logger.Warn("could not record round", "game", s.game.ID(), "error", err)
			}
		}
		s.recorded = true
	}
	return true
}

// message renders the current state into a frame message.
func (s *session) message() frameMessage {
	s.screen.Clear()
	s.game.Render(s.screen)

	state := s.game.State()
	msg := frameMessage{
		Type:   "frame",
		Game:   s.game.ID(),
		Tick:   s.tick,
		Score:  state.Score,
		Lives:  state.Lives,
		Status: state.Status,
		Screen: s.screen.String(),
	}
	if v, ok := s.game.(registry.Viewer); ok {
		msg.View = v.View()
	}
	return msg
}

func (s *session) send() error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(s.message())
}
