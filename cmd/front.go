package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"

	"groupchat/services"
)

// frontConfig holds terminal-only settings, separate from the core config.
type frontConfig struct {
	Colours    bool          `envconfig:"CHAT_COLOURS" default:"true"`
	LoginDelay time.Duration `envconfig:"LOGIN_DELAY" default:"500ms"`
}

func loadFrontConfig() (frontConfig, error) {
	var cfg frontConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func (f frontConfig) banner(groupName string) {
	header := fmt.Sprintf(" %s ", groupName)
	if f.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)
}

func (f frontConfig) info(msg string) {
	if f.Colours {
		msg = color.New(color.FgGreen).Render(msg)
	}
	fmt.Println(msg)
}

func (f frontConfig) warn(msg string) {
	if f.Colours {
		msg = color.New(color.FgRed).Render(msg)
	}
	fmt.Println(msg)
}

func (f frontConfig) prompt(username string, online bool) {
	status := "online"
	if !online {
		status = "offline"
	}
	fmt.Printf("%s [%s]> ", username, status)
}

// replay prints the recent window of the chat history.
func (f frontConfig) replay(chatSvc *services.ChatService, n int) {
	for _, m := range chatSvc.Recent(n) {
		fmt.Println(m.Render())
	}
}

// notifications surfaces the offline digest and the pending-mention alert,
// if either has content.
func (f frontConfig) notifications(chatSvc *services.ChatService, username string) {
	digest, err := chatSvc.OfflineDigest(username)
	if err != nil {
		f.warn(err.Error())
	} else if digest != "" {
		fmt.Println(digest)
	}

	alert, err := chatSvc.MentionAlert(username)
	if err != nil {
		f.warn(err.Error())
	} else if alert != "" {
		fmt.Println(alert)
	}
}

func (f frontConfig) membersTable(chatSvc *services.ChatService) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Member", "Status", "Last Seen"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, member := range chatSvc.Members() {
		status := "Offline"
		if member.Online {
			status = "Online"
		}
		lastSeen := "never"
		if !member.LastSeen.IsZero() {
			lastSeen = member.LastSeen.Format("Jan 02, 15:04")
		}
		table.Append([]string{member.Username, status, lastSeen})
	}
	table.Render()
}
