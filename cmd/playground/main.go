package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
)

func main() {
	endpoint := os.Getenv("POOL_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8081"
	}

	ctx := context.Background()

	login := connect.NewClient[pool_iface.LoginRequest, pool_iface.LoginResponse](
		http.DefaultClient,
		endpoint+pool_ifaceconnect.UserServiceLoginProcedure,
		pool_ifaceconnect.WithJSONCodec(),
	)

	res, err := login.CallUnary(ctx, connect.NewRequest(&pool_iface.LoginRequest{
		Username: os.Getenv("POOL_USERNAME"),
		Password: os.Getenv("POOL_PASSWORD"),
	}))
	if err != nil {
		log.Fatal(err)
	}

	stats := connect.NewClient[pool_iface.MyStatsRequest, pool_iface.MyStatsResponse](
		http.DefaultClient,
		endpoint+pool_ifaceconnect.ReportServiceMyStatsProcedure,
		pool_ifaceconnect.WithJSONCodec(),
	)

	req := connect.NewRequest(&pool_iface.MyStatsRequest{})
	req.Header().Set("Authorization", "Bearer "+res.Msg.Token)

	out, err := stats.CallUnary(ctx, req)
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	err = enc.Encode(out.Msg)
	if err != nil {
		log.Fatal(err)
	}
}
