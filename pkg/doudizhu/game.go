package doudizhu

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	// PlayerCount 斗地主固定三人
	PlayerCount = 3
	// HandSize 每人起手 17 张
	HandSize = 17
	// LandlordCardCount 底牌 3 张
	LandlordCardCount = 3
)

// 错误定义
var (
	ErrAlreadyStarted = errors.New("game already started")
	ErrPlayerNotFound = errors.New("player not found")
)

// GameState 游戏状态
type GameState int8

const (
	StateWaiting  GameState = iota // 等待开始
	StateDealing                   // 发牌中（start 内部的瞬时状态）
	StateBidding                   // 叫地主
	StatePlaying                   // 游戏中
	StateGameOver                  // 游戏结束
)

// String 返回状态名称
func (s GameState) String() string {
	switch s {
	case StateWaiting:
		return "WAITING"
	case StateDealing:
		return "DEALING"
	case StateBidding:
		return "BIDDING"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// PlayResult 出牌动作的结果
type PlayResult uint8

const (
	PlaySuccess        PlayResult = iota // 成功
	PlayInvalidCombo                     // 无效牌型
	PlayCannotBeat                       // 压不过上家
	PlayNotYourTurn                      // 不是该玩家的回合
	PlayGameNotStarted                   // 游戏未开始
)

// String 返回结果名称
func (r PlayResult) String() string {
	switch r {
	case PlaySuccess:
		return "SUCCESS"
	case PlayInvalidCombo:
		return "INVALID_COMBO"
	case PlayCannotBeat:
		return "CANNOT_BEAT"
	case PlayNotYourTurn:
		return "NOT_YOUR_TURN"
	case PlayGameNotStarted:
		return "GAME_NOT_STARTED"
	default:
		return "UNKNOWN"
	}
}

type options struct {
	rng   *rand.Rand
	names []string
}

// apply apply options
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// setDefault default configuration
func (o *options) setDefault() {
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	for len(o.names) < PlayerCount {
		o.names = append(o.names, "玩家"+strconv.Itoa(len(o.names)+1))
	}
}

type Option func(*options)

// WithRand 注入随机源，洗牌和起始座位都使用它，测试可传固定种子
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithPlayers 设置玩家显示名称，最多取前三个
func WithPlayers(names ...string) Option {
	return func(o *options) {
		if len(names) > PlayerCount {
			names = names[:PlayerCount]
		}
		o.names = names
	}
}

// Game 一局斗地主
// 所有公开操作持锁执行，每次调用原子地产生一个一致的新状态
type Game struct {
	mu sync.Mutex

	players       []*Player
	deck          *Deck
	state         GameState
	current       int    // 当前行动玩家的座位索引
	lastCombo     *Combo // 当前桌面上待压的牌，空 PASS 表示新的一轮
	lastOwnerID   string // 出 lastCombo 的玩家 ID，按身份查找而非持有指针
	landlordCards Cards  // 底牌
	passCount     int    // 连续不出的次数
	biddingCount  int    // 已询问过叫地主的人数
	rng           *rand.Rand
}

// NewGame 创建一局游戏，三个玩家，状态为等待开始
func NewGame(opts ...Option) *Game {
	o := new(options)
	o.apply(opts...)
	o.setDefault()

	g := &Game{
		deck:      NewDeck(o.rng),
		state:     StateWaiting,
		lastCombo: NewCombo(nil),
		rng:       o.rng,
	}
	for i := range PlayerCount {
		g.players = append(g.players, NewPlayer(strconv.Itoa(i+1), o.names[i]))
	}
	return g
}

// logEvent 输出一条游戏事件日志
// 通过 log.game 配置开关，默认关闭
func (g *Game) logEvent(op string, fields map[string]any) {
	if !viper.GetBool("log.game") {
		return
	}
	ev := log.Debug().Str("op", op).Str("state", g.state.String())
	for k, v := range fields {
		ev = ev.Any(k, v)
	}
	ev.Msg("game")
}

// Start 开始游戏
// 只能从等待状态开始：重置玩家，洗牌发牌，留 3 张底牌，进入叫地主阶段，
// 随机选择一个玩家先叫
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.start()
}

func (g *Game) start() error {
	if g.state != StateWaiting {
		return ErrAlreadyStarted
	}

	for _, p := range g.players {
		p.Reset()
	}
	g.lastCombo = NewCombo(nil)
	g.lastOwnerID = ""
	g.passCount = 0
	g.biddingCount = 0

	g.deck.Reset()
	g.state = StateDealing

	for _, p := range g.players {
		p.AddCards(g.deck.Deal(HandSize))
	}
	g.landlordCards = g.deck.Deal(LandlordCardCount)

	g.state = StateBidding
	g.current = g.rng.IntN(len(g.players))
	g.players[g.current].IsActive = true

	g.logEvent("start", map[string]any{"first": g.players[g.current].ID})
	return nil
}

// Restart 重新开局：无条件回到等待状态并立即重新开始
func (g *Game) Restart() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.restart()
}

func (g *Game) restart() error {
	g.state = StateWaiting
	return g.start()
}

// Bid 叫地主
// 只在叫地主阶段、且恰好轮到该玩家时生效，否则返回 false
// 叫则成为地主并获得底牌，进入出牌阶段；不叫则轮到下家
// 三人都不叫时整局重新发牌
func (g *Game) Bid(playerID string, accept bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateBidding {
		return false
	}
	current := g.players[g.current]
	if current.ID != playerID {
		return false
	}

	g.biddingCount++

	if accept {
		current.Role = RoleLandlord
		current.AddCards(g.landlordCards.Clone())
		for _, p := range g.players {
			if p.ID != playerID {
				p.Role = RoleFarmer
			}
		}
		g.state = StatePlaying
		g.logEvent("bid", map[string]any{"player": playerID, "landlord": true})
		return true
	}

	// 明确标记不叫
	current.Role = RoleFarmer

	// 所有人都问过且无人叫地主，重新发牌
	if g.biddingCount >= len(g.players) && g.allFarmers() {
		g.logEvent("bid", map[string]any{"player": playerID, "redeal": true})
		g.restart()
		return true
	}

	g.nextTurn()
	return true
}

func (g *Game) allFarmers() bool {
	for _, p := range g.players {
		if p.Role != RoleFarmer {
			return false
		}
	}
	return true
}

// Play 出牌
// 空的牌列表视为不出，转入 Pass 流程
// 所有失败分支都不改变游戏状态
func (g *Game) Play(playerID string, cards Cards) PlayResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.play(playerID, cards)
}

func (g *Game) play(playerID string, cards Cards) PlayResult {
	if g.state != StatePlaying {
		return PlayGameNotStarted
	}
	current := g.players[g.current]
	if current.ID != playerID {
		return PlayNotYourTurn
	}

	// 不选牌视为不出
	if len(cards) == 0 {
		return g.pass(playerID)
	}

	combo := NewCombo(cards)
	if !combo.IsValid() {
		return PlayInvalidCombo
	}

	// 非首家出牌必须压过上家
	if !g.lastCombo.IsEmpty() && g.lastOwnerID != current.ID && !combo.CanBeat(g.lastCombo) {
		return PlayCannotBeat
	}

	if err := current.PlayCards(cards); err != nil {
		// 调用方传入了不在手牌中的牌
		return PlayInvalidCombo
	}

	g.lastCombo = combo
	g.lastOwnerID = current.ID
	g.passCount = 0

	g.logEvent("play", map[string]any{
		"player": playerID,
		"combo":  combo.Type.String(),
		"left":   current.HandCount(),
	})

	if current.HandCount() == 0 {
		g.endGame(current)
		return PlaySuccess
	}

	g.nextTurn()
	return PlaySuccess
}

// Pass 不出牌
// 首家或当前桌面上的牌属于自己时不允许不出
// 其余玩家都不出后，由最后出牌的玩家重新领出
func (g *Game) Pass(playerID string) PlayResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pass(playerID)
}

func (g *Game) pass(playerID string) PlayResult {
	if g.state != StatePlaying {
		return PlayGameNotStarted
	}
	current := g.players[g.current]
	if current.ID != playerID {
		return PlayNotYourTurn
	}

	// 自己领出的一轮不能过
	if g.lastCombo.IsEmpty() || g.lastOwnerID == current.ID {
		return PlayInvalidCombo
	}

	g.passCount++

	if g.passCount >= len(g.players)-1 {
		// 其余玩家都不出，本轮结束，出牌权回到出牌者
		if idx := g.playerIndex(g.lastOwnerID); idx >= 0 {
			for i, p := range g.players {
				p.IsActive = i == idx
			}
			g.current = idx
		}
		g.lastCombo = NewCombo(nil)
		g.lastOwnerID = ""
		g.passCount = 0
		g.logEvent("pass", map[string]any{"player": playerID, "newTrick": true})
	} else {
		g.nextTurn()
	}
	return PlaySuccess
}

// nextTurn 轮到下一个玩家，固定按座位顺序轮转
func (g *Game) nextTurn() {
	g.players[g.current].IsActive = false
	g.current = (g.current + 1) % len(g.players)
	g.players[g.current].IsActive = true
}

// endGame 结束游戏并按角色设置胜负标记
// 地主先出完则地主胜，否则两个农民都是赢家
func (g *Game) endGame(winner *Player) {
	g.state = StateGameOver
	landlordWin := winner.Role == RoleLandlord

	for _, p := range g.players {
		p.IsActive = false
		p.IsWinner = (landlordWin && p.Role == RoleLandlord) ||
			(!landlordWin && p.Role == RoleFarmer)
	}
	g.logEvent("over", map[string]any{"winner": winner.ID, "landlordWin": landlordWin})
}

// playerIndex 按玩家 ID 查座位索引，找不到返回 -1
func (g *Game) playerIndex(playerID string) int {
	for i, p := range g.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// State 返回当前游戏状态
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Players 返回按座位排列的玩家列表
func (g *Game) Players() []*Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

// PlayerByID 按 ID 查找玩家
func (g *Game) PlayerByID(playerID string) (*Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if idx := g.playerIndex(playerID); idx >= 0 {
		return g.players[idx], nil
	}
	return nil, ErrPlayerNotFound
}

// CurrentPlayer 返回当前行动的玩家
func (g *Game) CurrentPlayer() *Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.players[g.current]
}

// LandlordCards 返回底牌的副本
func (g *Game) LandlordCards() Cards {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.landlordCards.Clone()
}

// LastCombo 返回当前桌面上待压的牌，空 PASS 表示新的一轮
func (g *Game) LastCombo() *Combo {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastCombo
}

// LastPlayedBy 返回出了当前桌面牌的玩家，新的一轮时为 nil
func (g *Game) LastPlayedBy() *Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	if idx := g.playerIndex(g.lastOwnerID); idx >= 0 {
		return g.players[idx]
	}
	return nil
}
