// Portfolio assistant CLI - talk to the assistant from a terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/najimt9-dotcom/PortfolioNT/clients/go/chat"
	"github.com/najimt9-dotcom/PortfolioNT/internal/assistant"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	client := chat.NewClient(os.Getenv("CHAT_API_URL"))
	client.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)

	ctx := context.Background()
	cmd := os.Args[1]

	switch cmd {
	case "chat":
		runChat(ctx, client)

	case "ask":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: assistant ask <question>")
			os.Exit(1)
		}
		question := strings.Join(os.Args[2:], " ")
		orch := newOrchestrator(client)
		if !orch.HandleUserSubmit(ctx, question) {
			fmt.Fprintln(os.Stderr, "question rejected")
			os.Exit(1)
		}
		fmt.Println(orch.Conversation().Last().Content)

	case "questions":
		resp, err := client.Questions(ctx)
		exitOnError(err)
		for _, q := range resp.Questions {
			fmt.Printf("  %s\n", q)
		}

	case "health":
		resp, err := client.Health(ctx)
		exitOnError(err)
		fmt.Printf("%s (version %s)\n", resp.Status, resp.Version)

	case "stats":
		resp, err := client.Stats(ctx)
		exitOnError(err)
		fmt.Printf("Exchanges: %d (%d apologies), last activity %s\n",
			resp.TotalExchanges, resp.ApologiesServed, resp.LastActivity)
		for _, q := range resp.RecentQuestions {
			ts := time.UnixMilli(q.Timestamp).Format("2006-01-02 15:04:05")
			fmt.Printf("[%s] %s\n", ts, q.Question)
		}

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

// proxySender adapts the chat client to the orchestrator's Sender contract.
type proxySender struct {
	client *chat.Client
}

func (s proxySender) Send(ctx context.Context, payload []assistant.PayloadMessage) (string, bool) {
	msgs := make([]chat.Message, len(payload))
	for i, m := range payload {
		msgs[i] = chat.Message{Role: m.Role, Content: m.Content}
	}
	return s.client.Send(ctx, msgs)
}

func newOrchestrator(client *chat.Client) *assistant.Orchestrator {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	return assistant.NewOrchestrator(assistant.NewConversation(), proxySender{client: client}, logger)
}

// runChat is the interactive session. Replies fall back to the canned
// responder when the proxy is down, so it works offline too.
func runChat(ctx context.Context, client *chat.Client) {
	orch := newOrchestrator(client)

	printMessage(orch.Conversation().Last())
	fmt.Println(`(type "exit" to quit)`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if !orch.HandleUserSubmit(ctx, line) {
			continue
		}
		printMessage(orch.Conversation().Last())
	}
}

func printMessage(msg assistant.Message) {
	fmt.Printf("[%s] assistant: %s\n", msg.Timestamp.Format("15:04:05"), msg.Content)
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`Portfolio assistant CLI

Usage: assistant <command> [options]

Commands:
  chat              Interactive chat session
  ask <question>    Ask a single question
  questions         Show suggested starter questions
  stats             Show assistant usage statistics
  health            Check server health

Environment:
  CHAT_API_URL      Chat endpoint (default http://localhost:3000/api/chat)`)
}
