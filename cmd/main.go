package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	chaterrors "groupchat/errors"
	"groupchat/internal"
	"groupchat/moderation"
	"groupchat/repositories"
	"groupchat/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and drives the terminal session. Keeping the
// logic out of main ensures deferred cleanup executes before the process
// exits and keeps the wiring testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	front, err := loadFrontConfig()
	if err != nil {
		return fmt.Errorf("front config error: %w", err)
	}

	// 2. Stores
	users := repositories.NewUserRepository(config.UsersFilepath, log)
	messages := repositories.NewMessageRepository(config.MessagesFilepath, log)
	mentions := repositories.NewMentionRepository(config.MentionsFilepath, log)
	presence := repositories.NewPresenceRepository(config.LastSeenFilepath, log)

	// 3. Optional moderation
	var filter *moderation.Filter
	if len(config.CensoredWords) > 0 {
		mask, err := config.MaskRune()
		if err != nil {
			return err
		}
		if filter, err = moderation.NewFilter(config.CensoredWords, mask); err != nil {
			return fmt.Errorf("moderation setup failed: %w", err)
		}
	}

	// 4. Services
	authSvc := services.NewAuthService(users, log)
	chatSvc := services.NewChatService(config.GroupName, messages, mentions, presence, users, filter, log)

	scanner := bufio.NewScanner(os.Stdin)
	front.banner(config.GroupName)

	username, err := authenticate(scanner, authSvc, front)
	if err != nil {
		return err
	}
	if username == "" {
		return nil
	}

	// The pause between accepted credentials and the opened session is a
	// presentation affordance only; no store operation waits on it.
	time.Sleep(front.LoginDelay)

	if err := chatSvc.Join(username); err != nil {
		return err
	}
	defer func() {
		if err := chatSvc.Logout(username); err != nil {
			log.Error("logout failed", "error", err)
		}
	}()

	front.replay(chatSvc, config.RecentMessages)
	front.notifications(chatSvc, username)

	return session(scanner, chatSvc, front, username, config.RecentMessages)
}

func session(scanner *bufio.Scanner, chatSvc *services.ChatService, front frontConfig, username string, recentCount int) error {
	online := true
	front.info("type a message, or /help for commands")
	for front.prompt(username, online); scanner.Scan(); front.prompt(username, online) {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			if !online {
				front.warn("you are offline; /online to rejoin")
				continue
			}
			message, err := chatSvc.SendMessage(username, line)
			if err != nil {
				front.warn(fmt.Sprintf("message not saved: %v", err))
			}
			fmt.Println(message.Render())
			continue
		}

		cmd, arg, _ := strings.Cut(line[1:], " ")
		switch cmd {
		case "help":
			front.info("/online /offline /members /recent [n] /summary /unread /quit")
		case "online":
			if err := chatSvc.SetOnline(username, true); err != nil {
				front.warn(err.Error())
				continue
			}
			online = true
			front.notifications(chatSvc, username)
		case "offline":
			if err := chatSvc.SetOnline(username, false); err != nil {
				front.warn(err.Error())
				continue
			}
			online = false
			front.info("status saved: offline")
		case "members":
			front.membersTable(chatSvc)
		case "recent":
			n := recentCount
			if v, err := strconv.Atoi(arg); err == nil {
				n = v
			}
			for _, m := range chatSvc.Recent(n) {
				fmt.Println(m.Render())
			}
		case "summary":
			report, err := chatSvc.ChatSummary(username)
			if err != nil {
				front.warn(err.Error())
				continue
			}
			fmt.Println(report)
		case "unread":
			report, err := chatSvc.UnreadSummary(username)
			if err != nil {
				front.warn(err.Error())
				continue
			}
			fmt.Println(report)
		case "quit":
			return nil
		default:
			front.warn("unknown command: /" + cmd)
		}
	}
	return scanner.Err()
}

// authenticate loops until the user logs in, registers then logs in, or the
// input ends. It returns the empty string when input ran out.
func authenticate(scanner *bufio.Scanner, authSvc services.IAuthService, front frontConfig) (string, error) {
	front.info("login <username> <password> | register <username> <password>")
	for fmt.Print("> "); scanner.Scan(); fmt.Print("> ") {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			front.warn("expected: login|register <username> <password>")
			continue
		}
		action, username, password := fields[0], fields[1], fields[2]
		switch action {
		case "register":
			if err := authSvc.Register(username, password); err != nil {
				front.warn(err.Error())
				continue
			}
			front.info("registered, now log in")
		case "login":
			ok, err := authSvc.Login(username, password)
			if err != nil {
				return "", err
			}
			if !ok {
				// One generic message whether the username exists or not.
				front.warn(chaterrors.ErrInvalidCredentials.Error())
				continue
			}
			front.info("login successful")
			return username, nil
		default:
			front.warn("expected: login|register <username> <password>")
		}
	}
	return "", scanner.Err()
}
