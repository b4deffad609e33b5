// Command showcase serves the GitHub repository showcase: a JSON snapshot
// endpoint, a websocket feed of refreshes, and a background refresher.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/satset19/porto-with-glm/showcase"
)

func main() {
	var (
		user     = flag.String("user", "satset19", "GitHub login to showcase")
		addr     = flag.String("addr", ":8080", "listen address")
		interval = flag.Duration("interval", 5*time.Minute, "refresh interval")
	)
	flag.Parse()

	client := showcase.NewClient(*user)
	server := showcase.NewServer(client, *interval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go server.RunRefresher(ctx)

	httpServer := &http.Server{
		Addr:    *addr,
		Handler: server.Handler(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("[Showcase] Serving %s repositories on %s", *user, *addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[Showcase] Server failed: %v", err)
	}
}
