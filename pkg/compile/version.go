// Package compile 编译期注入的构建信息
// 通过 -ldflags "-X github.com/play/doudizhu/pkg/compile.Version=..." 注入
package compile

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
)

var (
	Name      = "doudizhu"
	Version   = ""
	GoVersion = runtime.Version()
	GoOs      = runtime.GOOS
	GoArch    = runtime.GOARCH
	GitCommit = ""
	BuildTime = ""
)

func Os() string {
	return fmt.Sprintf("%s/%s", GoOs, GoArch)
}

func Print() {
	fmt.Printf("Name: %s\nVersion: %s\nGo Version: %s\nOS: %s\nGit Commit: %s\nBuild Time: %s\n", Name, Version, GoVersion, Os(), GitCommit, BuildTime)
}

func Log() {
	log.Info().Str("name", Name).Str("version", Version).Str("go_version", GoVersion).Str("os", Os()).Str("commit", GitCommit).Str("build_time", BuildTime).Msg("build info")
}
