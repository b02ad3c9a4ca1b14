package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/nboard/chess"
)

var sigint chan os.Signal

var (
	addr        = flag.String("addr", ":8080", "HTTP listen address")
	interactive = flag.Bool("repl", false, "read moves from stdin instead of serving HTTP")
	strictPawns = flag.Bool("strict-pawns", false, "allow the pawn double step only from the second rank")
)

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler()
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open open.
func Open(addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(addr, idleConnsClosed)
	<-idleConnsClosed
}

func main() {
	flag.Parse()
	if *strictPawns {
		pawnRule = chess.DoubleStepFromStart
	}
	if *interactive {
		board, err := newBoard("")
		if err != nil {
			log.WithError(err).Fatal("failed to build board")
		}
		if err := repl(os.Stdin, os.Stdout, board); err != nil {
			log.WithError(err).Fatal("read loop failed")
		}
		return
	}
	if err := openDB(); err != nil {
		log.WithError(err).WithField("dbname", databaseName()).Fatal("failed to connect database")
	}
	defer func() {
		idleError("close server:", Close())
	}()
	log.WithField("addr", *addr).Info("serving")
	Open(*addr)
}
