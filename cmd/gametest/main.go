// gametest 本地自动对局冒烟工具
// 并发跑若干局完整的斗地主并打印胜负汇总，用于快速验证规则引擎
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/play/doudizhu/pkg/compile"
	"github.com/play/doudizhu/pkg/doudizhu"
	"github.com/play/doudizhu/pkg/simulate"
)

func init() {
	viper.SetEnvPrefix("gametest")
	viper.AutomaticEnv()
	viper.SetDefault("games", 100)
	viper.SetDefault("workers", 8)
	viper.SetDefault("seed", 0)
	viper.SetDefault("verbose", false)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if viper.GetBool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		viper.Set("log.game", true)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	compile.Log()

	games := viper.GetInt("games")
	workers := viper.GetInt("workers")
	seed := cast.ToUint64(viper.Get("seed"))

	log.Info().Int("games", games).Int("workers", workers).Uint64("seed", seed).Msg("gametest start")

	start := time.Now()
	runner := simulate.NewRunner(workers, seed)
	stats := runner.Run(games)
	elapsed := time.Since(start)

	log.Info().
		Int32("finished", stats.Games).
		Int32("landlordWins", stats.LandlordWins).
		Int32("farmerWins", stats.FarmerWins).
		Int32("stuck", stats.Stuck).
		Dur("elapsed", elapsed).
		Msg("gametest done")

	if stats.Stuck > 0 {
		os.Exit(1)
	}

	// 打印一局样例的最终快照，便于肉眼核对
	sampleSnapshot()
}

func sampleSnapshot() {
	game := doudizhu.NewGame(doudizhu.WithPlayers("东家", "南家", "西家"))
	if err := game.Start(); err != nil {
		log.Error().Err(err).Msg("sample game start failed")
		return
	}
	game.Bid(game.CurrentPlayer().ID, true)

	data, err := game.Snapshot().Encode()
	if err != nil {
		log.Error().Err(err).Msg("encode snapshot failed")
		return
	}
	fmt.Println(string(data))
}
