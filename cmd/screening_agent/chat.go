package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-scout/internal/profile"
	"github.com/jonathan/talent-scout/internal/report"
	"github.com/jonathan/talent-scout/internal/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run a screening conversation on the terminal",
	Long:  "Starts an interactive screening session: profile questions, then the adaptive technical interview, finishing with the evaluation summary.",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// endKeywords terminate the conversation when typed on their own.
var endKeywords = map[string]bool{
	"exit": true,
	"quit": true,
	"bye":  true,
	"end":  true,
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	d, err := buildDeps(ctx, log)
	if err != nil {
		return err
	}
	defer d.Close()

	manager := session.NewManager(d.controllerFactory, d.securityCfg.SessionTimeout, log)
	sess := manager.Create()

	fmt.Println("Assistant:", sess.Greeting())
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if endKeywords[strings.ToLower(input)] {
			fmt.Println("Assistant: Thank you for your time! Goodbye.")
			break
		}

		reply, err := sess.HandleMessage(ctx, input)
		if err == session.ErrExpired {
			fmt.Println("Assistant: Your session has expired for security reasons. Please start a new conversation.")
			break
		}
		if err != nil {
			return fmt.Errorf("conversation failed: %w", err)
		}

		fmt.Println()
		fmt.Println("Assistant:", reply)
		fmt.Println()

		if sess.Done() {
			printClosingSummary(sess)
			break
		}
	}
	return scanner.Err()
}

// printClosingSummary shows the masked profile and the transcript after
// the interview completes.
func printClosingSummary(sess *session.Session) {
	controller := sess.Controller()

	masked, err := controller.MaskedProfile()
	if err != nil {
		return
	}

	order := make([]string, 0, len(profile.DefaultFields()))
	for _, field := range profile.DefaultFields() {
		order = append(order, field.Key)
	}

	printer := report.NewPrinter(os.Stdout)
	fmt.Println()
	printer.PrintCandidateSummary(masked, order)
	fmt.Println()
	printer.PrintTranscript(report.NewTranscript(controller.Transcript(), controller.Rating()))
}
