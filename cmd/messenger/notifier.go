package main

import (
	"fmt"

	"github.com/gookit/color"

	"yatta-chat/domain"
)

// TerminalNotifier renders alerts and notices straight to the terminal.
type TerminalNotifier struct{}

func NewTerminalNotifier() *TerminalNotifier {
	return &TerminalNotifier{}
}

func (n *TerminalNotifier) Alert(reason string) {
	fmt.Println(color.New(color.BgRed, color.FgWhite).Render(" \a🔔 " + reason + " "))
}

func (n *TerminalNotifier) Notice(message string) {
	fmt.Println(color.New(color.FgYellow).Render(message))
}

// TerminalMedia stands in for a real media stack: it reports the joined
// room so an operator can attach an external client with the token.
type TerminalMedia struct{}

func (m *TerminalMedia) Join(room domain.MediaRoom) error {
	header := color.New(color.BgBlack, color.FgGreen).Render(fmt.Sprintf(" in call: %s @ %s ", room.Name, room.URL))
	fmt.Println(header)
	return nil
}

func (m *TerminalMedia) Leave() {
	fmt.Println(color.New(color.FgLightBlue).Render("call ended"))
}
