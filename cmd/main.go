package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/qtc-de/librofi/cmd/librofi"
	"github.com/qtc-de/librofi/logging"
	"gitlab.com/greyxor/slogor"
)

func main() {
	slog.SetDefault(slog.New(logging.ContextHandler{
		Handler: slogor.NewHandler(os.Stderr,
			slogor.SetLevel(slog.LevelInfo),
			slogor.SetTimeFormat(time.DateTime)),
	}))

	librofi.Execute()
}
