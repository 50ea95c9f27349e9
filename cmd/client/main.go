package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	stdsync "sync"
	"syscall"
	"time"

	"github.com/gookit/color"
	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"
	"golang.org/x/sync/errgroup"

	"github.com/click2025-space/clickers-workspace/internal/client/directory"
	"github.com/click2025-space/clickers-workspace/internal/client/store"
	"github.com/click2025-space/clickers-workspace/internal/config"
	"github.com/click2025-space/clickers-workspace/internal/feed"
	"github.com/click2025-space/clickers-workspace/internal/model"
	"github.com/click2025-space/clickers-workspace/internal/notify"
	"github.com/click2025-space/clickers-workspace/internal/sync"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
)

// alwaysFocused models a terminal session: the conversation pane is on
// screen for as long as the process runs.
type alwaysFocused struct{}

func (alwaysFocused) Focused() bool { return true }

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	cfg := config.MustLoadClient()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx = context.WithValue(ctx, config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	storeClient := store.New(cfg)
	defer storeClient.Close()

	directoryClient := directory.New(cfg)
	defer directoryClient.Close()

	notifier := notify.NewTerminalNotifier(os.Stdout, cfg.Notifications)

	syncer := sync.New(
		storeClient,
		directoryClient,
		notifier,
		alwaysFocused{},
		sync.Session{UserID: cfg.UserID},
		cfg.PollInterval,
	)
	syncer.SetOnUpdate(renderer(syncer))

	// The change feed degrades every event into a refresh; the poll in
	// syncer.Run covers feed outages.
	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.MessagesTopic,
		"workspace-client-"+cfg.UserID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create feed consumer: %v", err))
	} else {
		adapter := feed.New(syncer)
		consumer.RegisterHandler(ctx, adapter.Handler)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		syncer.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		repl(gCtx, syncer)
		stop()
		return nil
	})

	color.Green.Printf(">>> Connected to %s as %s. Talking in #%s (/help for commands)\n",
		cfg.ServerBaseURL, cfg.UserID, model.BroadcastChannel)

	if err := g.Wait(); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

// renderer prints messages of the selected conversation as they appear.
// It tracks its own high-water mark so a full refresh does not reprint
// the whole history.
func renderer(syncer *sync.Synchronizer) func() {
	var mu stdsync.Mutex
	rendered := 0
	conversation := syncer.SelectedConversation()

	return func() {
		mu.Lock()
		defer mu.Unlock()

		if current := syncer.SelectedConversation(); current != conversation {
			conversation = current
			rendered = 0
			color.Yellow.Printf("--- #%s ---\n", conversation)
		}

		messages := syncer.Visible()
		if len(messages) < rendered {
			rendered = len(messages)
		}

		for _, m := range messages[rendered:] {
			fmt.Printf("[%s] %s: %s\n",
				m.SentAt.Local().Format(time.TimeOnly),
				color.Bold.Sprint(m.SenderID),
				formatBody(m.Body),
			)
		}
		rendered = len(messages)
	}
}

func formatBody(body model.Body) string {
	switch b := body.(type) {
	case model.AttachmentBody:
		return fmt.Sprintf("📎 %s (%s, %d bytes)", b.Name, b.Mime, b.Size)
	case model.TextBody:
		return b.Text
	default:
		return ""
	}
}

func repl(ctx context.Context, syncer *sync.Synchronizer) {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit":
			return
		case line == "/help":
			fmt.Println("/open <member-id|global>  switch conversation")
			fmt.Println("/delete <message-id>      delete one of your messages")
			fmt.Println("/quit                     leave")
		case strings.HasPrefix(line, "/open "):
			syncer.SelectConversation(strings.TrimSpace(strings.TrimPrefix(line, "/open ")))
		case strings.HasPrefix(line, "/delete "):
			id := strings.TrimSpace(strings.TrimPrefix(line, "/delete "))
			if err := syncer.Delete(ctx, id); err != nil {
				color.Red.Printf("delete failed: %v\n", err)
			}
		default:
			if err := syncer.Send(ctx, syncer.SelectedConversation(), model.TextBody{Text: line}); err != nil {
				// The typed text survives the failure so it can be resent.
				color.Red.Printf("send failed: %v\n", err)
				fmt.Printf("unsent: %s\n", line)
			}
		}
	}
}
