package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"yatta-chat/domain"
)

func renderConversations(view domain.SessionView) {
	if len(view.Conversations) == 0 {
		color.Gray.Println("no conversations yet")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "With", "Last message", "At"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, c := range view.Conversations {
		last, at := "", ""
		if c.LastMessage != nil {
			last = c.LastMessage.Text
		}
		if c.LastMessageAt != nil {
			at = c.LastMessageAt.Format(time.TimeOnly)
		}
		id := strconv.FormatInt(c.ID.Int64(), 10)
		if c.ID == view.Selected {
			id = "> " + id
		}
		table.Append([]string{id, withWhom(c, view), last, at})
	}
	table.Render()

	status := fmt.Sprintf("call: %s", view.CallState)
	if view.Polling {
		status += "  (polling fallback active)"
	}
	if view.InboxOpen {
		status += "  (inbox live)"
	}
	color.Gray.Println(status)
}

func renderMessages(view domain.SessionView) {
	for _, m := range view.Messages {
		line := fmt.Sprintf("[%s] %s: %s",
			m.CreatedAt.Format(time.TimeOnly), m.Sender.Username, m.Text)
		if m.ReadAt != nil {
			line += " ✓✓"
		}
		fmt.Println(line)
	}
}

// withWhom names the other side of a two-party conversation.
func withWhom(c domain.Conversation, view domain.SessionView) string {
	if other := c.OtherParticipant(view.Self); other != nil && other.Username != "" {
		return other.Username
	}
	return "?"
}
