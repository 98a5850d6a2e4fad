package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const namespaceChurch = "church"

func New(logger *slog.Logger, reader Reader) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(namespaceChurch, NewChurchService(reader))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "church-portal", nil))

	return rpcServer
}
