// Package simulate 自动对局器
// 用随机但合法的动作把整局斗地主跑到结束，供冒烟测试和引擎回归使用
package simulate

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/play/doudizhu/pkg/doudizhu"
)

// Result 单局对局结果
type Result struct {
	LandlordWin bool // 地主是否获胜
	Plays       int  // 出牌次数（含过牌）
	Bids        int  // 叫地主询问次数
}

// Stats 多局对局的汇总
type Stats struct {
	Games        int32 // 完成的局数
	LandlordWins int32 // 地主胜局数
	FarmerWins   int32 // 农民胜局数
	Stuck        int32 // 超出步数上限未结束的局数，正常应为 0
}

// maxPlays 单局动作数上限，防御引擎回归导致的死循环
const maxPlays = 10000

// Runner 并发跑多局对局的执行器
// tickers 作为令牌池限制并发局数
type Runner struct {
	workers int
	seed    uint64
	tickers chan struct{}
	running atomic.Int32
}

// NewRunner 创建执行器
// workers 为并发局数上限，seed 为 0 时每局使用随机种子
func NewRunner(workers int, seed uint64) *Runner {
	if workers <= 0 {
		workers = 4
	}
	r := &Runner{
		workers: workers,
		seed:    seed,
		tickers: make(chan struct{}, workers),
	}
	for range workers {
		r.tickers <- struct{}{}
	}
	return r
}

// Running 返回进行中的局数
func (r *Runner) Running() int {
	return int(r.running.Load())
}

// Run 跑 games 局并汇总结果，阻塞到全部结束
// 每局一个独立的 Game 实例，互不共享状态
func (r *Runner) Run(games int) Stats {
	var stats Stats
	var wg sync.WaitGroup

	for i := range games {
		<-r.tickers
		r.running.Add(1)
		wg.Add(1)

		go func(n int) {
			defer func() {
				r.tickers <- struct{}{}
				r.running.Add(-1)
				wg.Done()
			}()

			rng := r.gameRand(n)
			result, ok := r.playOne(rng)
			if !ok {
				atomic.AddInt32(&stats.Stuck, 1)
				log.Warn().Int("game", n).Msg("simulation did not finish")
				return
			}
			atomic.AddInt32(&stats.Games, 1)
			if result.LandlordWin {
				atomic.AddInt32(&stats.LandlordWins, 1)
			} else {
				atomic.AddInt32(&stats.FarmerWins, 1)
			}
		}(i)
	}

	wg.Wait()
	return stats
}

// gameRand 返回第 n 局使用的随机源
// 固定 seed 时不同局使用不同但可复现的流
func (r *Runner) gameRand(n int) *rand.Rand {
	if r.seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(r.seed, uint64(n)))
}

// playOne 跑完一整局
// 返回 ok=false 表示超出步数上限，引擎行为异常
func (r *Runner) playOne(rng *rand.Rand) (Result, bool) {
	game := doudizhu.NewGame(doudizhu.WithRand(rng))
	if err := game.Start(); err != nil {
		return Result{}, false
	}

	var result Result
	for range maxPlays {
		switch game.State() {
		case doudizhu.StateBidding:
			current := game.CurrentPlayer()
			result.Bids++
			// 以 2/3 的概率叫地主，留出流局重发的路径
			game.Bid(current.ID, rng.IntN(3) != 0)
		case doudizhu.StatePlaying:
			result.Plays++
			if !playTurn(game) {
				return Result{}, false
			}
		case doudizhu.StateGameOver:
			result.LandlordWin = landlordWon(game)
			return result, true
		default:
			return Result{}, false
		}
	}
	return Result{}, false
}

// playTurn 替当前玩家做一次合法动作
// 领出时打出最小的单张；跟牌时找能压过的最小单张，找不到就过
func playTurn(game *doudizhu.Game) bool {
	current := game.CurrentPlayer()
	last := game.LastCombo()
	lastBy := game.LastPlayedBy()

	hand := current.Hand.Clone()
	hand.Sort() // 从大到小

	leading := last.IsEmpty() || (lastBy != nil && lastBy.ID == current.ID)
	if leading {
		lowest := hand[len(hand)-1]
		return game.Play(current.ID, doudizhu.Cards{lowest}) == doudizhu.PlaySuccess
	}

	if last.Type == doudizhu.ComboSingle {
		// 从小到大找第一张压得过的
		for i := len(hand) - 1; i >= 0; i-- {
			if hand[i].Value() > last.MainValue {
				return game.Play(current.ID, doudizhu.Cards{hand[i]}) == doudizhu.PlaySuccess
			}
		}
	}
	return game.Pass(current.ID) == doudizhu.PlaySuccess
}

// landlordWon 游戏结束后判断地主是否获胜
func landlordWon(game *doudizhu.Game) bool {
	for _, p := range game.Players() {
		if p.Role == doudizhu.RoleLandlord {
			return p.IsWinner
		}
	}
	return false
}
