package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"yatta-chat/domain"
)

// Repl reads operator commands from stdin and feeds them to the session.
type Repl struct {
	commands chan<- domain.Command
	stop     context.CancelFunc
}

func NewRepl(commands chan<- domain.Command, stop context.CancelFunc) *Repl {
	return &Repl{commands: commands, stop: stop}
}

func (r *Repl) Run(ctx context.Context) {
	fmt.Println("Commands: ls | open <id> | start <user-id> | send <text> | call audio|video | accept | reject | hangup | fg | bg | quit")
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		verb, rest, _ := strings.Cut(line, " ")

		switch verb {
		case "ls":
			r.list(ctx)
		case "open":
			id, err := domain.ParseFlexID(rest)
			if err != nil {
				color.Red.Println("open needs a conversation id")
				continue
			}
			r.dispatch(ctx, domain.SelectConversation{ID: id})
		case "start":
			id, err := domain.ParseFlexID(rest)
			if err != nil {
				color.Red.Println("start needs a user id")
				continue
			}
			r.dispatch(ctx, domain.StartConversation{TargetUser: id})
		case "send":
			if rest == "" {
				continue
			}
			r.dispatch(ctx, domain.SendText{Text: rest})
		case "call":
			kind := domain.CallAudio
			if rest == "video" {
				kind = domain.CallVideo
			}
			r.dispatch(ctx, domain.StartCall{Kind: kind})
		case "accept":
			r.dispatch(ctx, domain.AcceptCall{})
		case "reject":
			r.dispatch(ctx, domain.RejectCall{})
		case "hangup":
			r.dispatch(ctx, domain.EndCall{})
		case "fg":
			r.dispatch(ctx, domain.SetVisibility{Foreground: true})
		case "bg":
			r.dispatch(ctx, domain.SetVisibility{Foreground: false})
		case "quit", "exit":
			r.dispatch(ctx, domain.Shutdown{})
			r.stop()
			return
		default:
			// Anything else is chat text for the open conversation.
			r.dispatch(ctx, domain.SendText{Text: line})
		}
	}
}

// list takes a consistent snapshot and renders the conversation table and,
// when a conversation is open, its messages.
func (r *Repl) list(ctx context.Context) {
	reply := make(chan domain.SessionView, 1)
	r.dispatch(ctx, domain.Snapshot{Reply: reply})
	select {
	case view := <-reply:
		renderConversations(view)
		renderMessages(view)
	case <-time.After(2 * time.Second):
		color.Red.Println("session is not responding")
	case <-ctx.Done():
	}
}

func (r *Repl) dispatch(ctx context.Context, cmd domain.Command) {
	select {
	case r.commands <- cmd:
	case <-ctx.Done():
	}
}
