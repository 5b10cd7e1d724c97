package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/config"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/web"
)

func main() {
	_ = godotenv.Load()
	conf := config.MustLoad()

	if lvl, err := zerolog.ParseLevel(conf.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	svc := app.NewService()
	handler := web.NewServer(svc, conf.HandlerTimeout)

	log.Info().Str("port", conf.HTTPPort).Msg("starting tic-tac-toe server")
	if err := http.ListenAndServe(conf.Addr(), handler); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
