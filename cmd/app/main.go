package main

import (
	"log/slog"
	"net/http"

	"github.com/pdcgo/pool_service"
	"github.com/pdcgo/pool_service/authorization"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/configs"
	"github.com/pdcgo/pool_service/db_connect"
	"github.com/pdcgo/pool_service/pkg/pool_logging"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"gorm.io/gorm"
)

func NewLogger(cfg *configs.AppConfig) *slog.Logger {
	return pool_logging.SetLoggingDefault(&cfg.Log)
}

func NewTokenIssuer(cfg *configs.AppConfig) *authorization.TokenIssuer {
	return authorization.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Expire())
}

func NewAuthorization(
	db *gorm.DB,
	issuer *authorization.TokenIssuer,
) authorization_iface.Authorization {
	return authorization.NewAuthorization(db, issuer)
}

func NewDatabase(cfg *configs.AppConfig) (*gorm.DB, error) {
	return db_connect.NewProductionDatabase("pool_service", &cfg.Database)
}

func withCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Connect-Protocol-Version, Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, X-Request-Id")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id, Pool-Error-Kind")
		w.Header().Set("Access-Control-Allow-Methods", "HEAD,OPTIONS,GET,POST")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type App struct {
	Run func() error
}

func NewApp(
	cfg *configs.AppConfig,
	logger *slog.Logger,
	mux *http.ServeMux,
	poolRegister pool_service.RegisterHandler,
) *App {
	return &App{
		Run: func() error {
			poolRegister()

			listen := cfg.Server.Listen()
			logger.Info("listening", slog.String("addr", listen))

			// h2c serves HTTP/2 without TLS
			return http.ListenAndServe(
				listen,
				h2c.NewHandler(
					withCors(mux),
					&http2.Server{}),
			)
		},
	}
}

func main() {
	app, err := InitializeApp()
	if err != nil {
		panic(err)
	}

	err = app.Run()
	if err != nil {
		panic(err)
	}
}
