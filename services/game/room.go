package game

import (
	"strings"
	"sync"

	game_constants "Trivio/constants/game"
)

// ConnID is the opaque handle for one realtime connection (the socket.io
// socket id). A reconnecting client gets a new handle and must re-join.
type ConnID string

// Phase is the lifecycle stage of a room.
type Phase int

const (
	PhaseLobby Phase = iota
	PhaseActive
	PhaseRevealed
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "lobby"
	case PhaseActive:
		return "active"
	case PhaseRevealed:
		return "revealed"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Question is the in-room copy of one quiz question. CorrectIndex is never
// serialized: reveal payloads carry it as an explicit top-level field, so a
// question broadcast can embed this struct directly without leaking the
// answer.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"-"`
}

// QuizSnapshot is what the quiz source hands over at room creation. The room
// keeps it for its whole life; later edits to the quiz bank never reach a
// running room.
type QuizSnapshot struct {
	Title     string
	Questions []Question
}

// Player is one joined participant.
type Player struct {
	ID              ConnID `json:"id"`
	Name            string `json:"name"`
	Score           int    `json:"score"`
	AnsweredCurrent bool   `json:"-"`
	// Answers maps question id -> chosen option, kept for the final archive.
	Answers map[string]int `json:"-"`
}

// Room is the per-room state machine. Every mutation happens inside one of
// its methods while mu is held; methods return plain result structs and the
// gateway broadcasts them only after the method has returned, so no client
// ever sees an event for a state the room has not reached yet. The mutex is
// never held across any I/O.
type Room struct {
	mu sync.Mutex

	code      string
	title     string
	questions []Question

	host    ConnID
	phase   Phase
	current int // -1 before the first question

	players map[ConnID]*Player
	answers map[ConnID]int // choices for the current question only
}

func newRoom(code string, host ConnID, snap QuizSnapshot) *Room {
	return &Room{
		code:      code,
		title:     snap.Title,
		questions: snap.Questions,
		host:      host,
		phase:     PhaseLobby,
		current:   -1,
		players:   make(map[ConnID]*Player),
		answers:   make(map[ConnID]int),
	}
}

func (r *Room) Code() string { return r.code }

func (r *Room) Title() string { return r.title }

func (r *Room) TotalQuestions() int { return len(r.questions) }

func (r *Room) IsHost(conn ConnID) bool { return conn == r.host }

func (r *Room) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// CurrentIndex is exposed for tests and diagnostics.
func (r *Room) CurrentIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *Room) HasPlayer(conn ConnID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.players[conn]
	return ok
}

// QuestionView is the payload of a question broadcast. Index is 1-based.
type QuestionView struct {
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	Question Question `json:"question"`
}

// RevealView is the payload of a reveal broadcast.
type RevealView struct {
	CorrectIndex int     `json:"correct_index"`
	Leaderboard  []Entry `json:"leaderboard"`
}

// JoinInfo is everything the gateway needs after a successful join: the ack
// for the joiner, the room-wide roster update, and the catch-up payloads a
// late joiner receives so their view matches everyone else's.
type JoinInfo struct {
	Title       string
	Started     bool
	Count       int
	Leaderboard []Entry
	CatchUp     *QuestionView // set when phase is Active or Revealed
	Reveal      *RevealView   // set when phase is Revealed
}

// Join adds a player to the room. The name is trimmed and must be non-empty,
// at most MaxPlayerNameLen runes, and unique case-insensitively within the
// room. Joining is allowed in any phase; a joiner during Active/Revealed gets
// the current question (and reveal) replayed to them alone.
func (r *Room) Join(conn ConnID, name string) (JoinInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > game_constants.MaxPlayerNameLen {
		return JoinInfo{}, ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.players {
		if strings.EqualFold(p.Name, name) {
			return JoinInfo{}, ErrNameTaken
		}
	}

	r.players[conn] = &Player{
		ID:      conn,
		Name:    name,
		Answers: make(map[string]int),
	}

	info := JoinInfo{
		Title:       r.title,
		Started:     r.phase != PhaseLobby,
		Count:       len(r.players),
		Leaderboard: Leaderboard(r.players),
	}

	if (r.phase == PhaseActive || r.phase == PhaseRevealed) && r.current >= 0 {
		view := r.questionView()
		info.CatchUp = &view
	}
	if r.phase == PhaseRevealed && r.current >= 0 {
		info.Reveal = &RevealView{
			CorrectIndex: r.questions[r.current].CorrectIndex,
			Leaderboard:  Leaderboard(r.players),
		}
	}
	return info, nil
}

// StartInfo is the payload of a game-started broadcast.
type StartInfo struct {
	Title string `json:"title"`
}

// Start moves the room from Lobby to Active. Only the host may start, and
// only once; anything else is a silent no-op.
func (r *Room) Start(caller ConnID) (StartInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.host || r.phase != PhaseLobby {
		return StartInfo{}, false
	}
	r.phase = PhaseActive
	r.current = -1
	return StartInfo{Title: r.title}, true
}

// AdvanceInfo reports the outcome of a host advance: either the next
// question, or the end of the game with the final leaderboard.
type AdvanceInfo struct {
	Ended       bool
	Question    QuestionView
	Leaderboard []Entry
}

// Advance moves the room to the next question, or past the last question to
// Ended. Host-only; valid from Active or Revealed.
func (r *Room) Advance(caller ConnID) (AdvanceInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.host || (r.phase != PhaseActive && r.phase != PhaseRevealed) {
		return AdvanceInfo{}, false
	}

	if r.current+1 >= len(r.questions) {
		r.phase = PhaseEnded
		return AdvanceInfo{Ended: true, Leaderboard: Leaderboard(r.players)}, true
	}

	r.current++
	r.phase = PhaseActive
	r.answers = make(map[ConnID]int)
	for _, p := range r.players {
		p.AnsweredCurrent = false
	}
	return AdvanceInfo{Question: r.questionView()}, true
}

// Reveal discloses the correct option for the current question. Host-only;
// valid only while a question is active.
func (r *Room) Reveal(caller ConnID) (RevealView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.host || r.phase != PhaseActive || r.current < 0 {
		return RevealView{}, false
	}
	r.phase = PhaseRevealed
	return RevealView{
		CorrectIndex: r.questions[r.current].CorrectIndex,
		Leaderboard:  Leaderboard(r.players),
	}, true
}

// EndInfo is the payload of a game-ended broadcast.
type EndInfo struct {
	Leaderboard []Entry
}

// End terminates the room immediately. Host-only, valid from any phase that
// is not already Ended.
func (r *Room) End(caller ConnID) (EndInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.host || r.phase == PhaseEnded {
		return EndInfo{}, false
	}
	r.phase = PhaseEnded
	return EndInfo{Leaderboard: Leaderboard(r.players)}, true
}

// AnswerInfo carries the room-wide roster update after an accepted answer.
type AnswerInfo struct {
	Count       int
	Leaderboard []Entry
}

// Answer records a player's choice for the current question. Exactly one
// answer per player per question is accepted; the first correct one awards a
// single point. Every rejection (unknown player, wrong phase, no question
// yet, duplicate answer, out-of-range choice) is silent: those commands come
// from stale client views, not from anything the user can fix.
func (r *Room) Answer(conn ConnID, choice int) (AnswerInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[conn]
	if !ok || r.phase != PhaseActive || r.current < 0 || p.AnsweredCurrent {
		return AnswerInfo{}, false
	}
	q := r.questions[r.current]
	if choice < 0 || choice >= len(q.Options) {
		return AnswerInfo{}, false
	}

	p.AnsweredCurrent = true
	p.Answers[q.ID] = choice
	r.answers[conn] = choice
	if choice == q.CorrectIndex {
		p.Score++
	}
	return AnswerInfo{Count: len(r.players), Leaderboard: Leaderboard(r.players)}, true
}

// LeaveInfo is the roster update after a player left or disconnected.
type LeaveInfo struct {
	Removed     bool
	Count       int
	Leaderboard []Entry
}

// RemovePlayer drops a player (disconnect path). Removing the host is not
// handled here: the gateway destroys the whole room instead.
func (r *Room) RemovePlayer(conn ConnID) LeaveInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[conn]; !ok {
		return LeaveInfo{}
	}
	delete(r.players, conn)
	delete(r.answers, conn)
	return LeaveInfo{Removed: true, Count: len(r.players), Leaderboard: Leaderboard(r.players)}
}

// CurrentLeaderboard recomputes the ranking from the live player set.
func (r *Room) CurrentLeaderboard() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Leaderboard(r.players)
}

// PlayerCount returns the number of joined players (host excluded).
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// caller must hold r.mu and r.current must be valid.
func (r *Room) questionView() QuestionView {
	return QuestionView{
		Index:    r.current + 1,
		Total:    len(r.questions),
		Question: r.questions[r.current],
	}
}

// PlayerBreakdown is one player's per-question answer record, kept only for
// the post-game archive.
type PlayerBreakdown struct {
	Name    string         `json:"name"`
	Score   int            `json:"score"`
	Answers map[string]int `json:"answers"`
}

// FinalSummary is the immutable record of a finished (or torn down) room,
// consumed by the sync manager for archival.
type FinalSummary struct {
	Code           string
	Title          string
	TotalQuestions int
	Leaderboard    []Entry
	Breakdowns     []PlayerBreakdown
}

// Summary snapshots the room for archival. Safe to call in any phase.
func (r *Room) Summary() FinalSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := FinalSummary{
		Code:           r.code,
		Title:          r.title,
		TotalQuestions: len(r.questions),
		Leaderboard:    Leaderboard(r.players),
	}
	for _, e := range s.Leaderboard {
		p := r.players[e.ID]
		answers := make(map[string]int, len(p.Answers))
		for id, choice := range p.Answers {
			answers[id] = choice
		}
		s.Breakdowns = append(s.Breakdowns, PlayerBreakdown{
			Name:    p.Name,
			Score:   p.Score,
			Answers: answers,
		})
	}
	return s
}
