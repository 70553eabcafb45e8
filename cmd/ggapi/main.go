package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"

	ggapi "github.com/peteraglen/ggapi-go-client"
	"github.com/peteraglen/ggapi-go-client/internal/logger"
	"github.com/peteraglen/ggapi-go-client/internal/tokenstore"
)

const usage = `usage: ggapi <command> [flags]

commands:
  authorize-url  print the URL to grant this application access
  login          exchange an authorization code and store the tokens
  logout         remove stored tokens
  user           show a public directory entry (default: yourself)
  friends        list friends
  notify         send a notification to a user or to all friends
  event          post an event on your dashboard
  avatar         print the avatar URL of a user`

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, os.Args[1], os.Args[2:]); err != nil {
		var svcErr *ggapi.ServiceError
		if errors.As(err, &svcErr) {
			log.Error().Str("code", svcErr.Code).Int("status", svcErr.StatusCode).Msg(svcErr.Message)
		} else {
			log.Error().Err(err).Str("command", os.Args[1]).Msg("command failed")
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, log zerolog.Logger, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)

	switch command {
	case "authorize-url":
		state := fs.String("state", "", "Opaque state echoed back on the redirect")
		cfg, err := loadConfig(fs, args)
		if err != nil {
			return err
		}
		fmt.Println(ggapi.AuthCodeURL(cfg.credentials, *state))
		return nil

	case "login":
		code := fs.String("code", "", "Authorization code from the redirect URI")
		cfg, err := loadConfig(fs, args)
		if err != nil {
			return err
		}
		store := tokenstore.NewFileStore(cfg.tokenFile, cfg.credentials.ClientID)
		if _, err := newSession(ctx, log, cfg, store, ggapi.WithAuthorizationCode(*code)); err != nil {
			return err
		}
		log.Info().Str("path", cfg.tokenFile).Msg("tokens stored")
		return nil

	case "logout":
		cfg, err := loadConfig(fs, args)
		if err != nil {
			return err
		}
		return tokenstore.NewFileStore(cfg.tokenFile, cfg.credentials.ClientID).Delete()

	case "user":
		uin := fs.Uint64("uin", 0, "User number (default: yourself)")
		s, err := restoreSession(ctx, log, fs, args)
		if err != nil {
			return err
		}
		user, err := s.GetUser(ctx, ggapi.UIN(*uin))
		if err != nil {
			return err
		}
		return printJSON(user)

	case "friends":
		uin := fs.Uint64("uin", 0, "User number (default: yourself)")
		limit := fs.Int("limit", ggapi.DefaultFriendsLimit, "Page size")
		lastID := fs.Uint64("last-id", 0, "Cursor from the previous page")
		s, err := restoreSession(ctx, log, fs, args)
		if err != nil {
			return err
		}
		friends, err := s.GetFriends(ctx, ggapi.FriendsQuery{UIN: ggapi.UIN(*uin), Limit: *limit, LastID: *lastID})
		if err != nil {
			return err
		}
		return printJSON(friends)

	case "notify":
		to := fs.String("to", "", `Recipient user number or "friends"`)
		message := fs.String("message", "", "Notification text")
		link := fs.String("link", "", "Optional link")
		s, err := restoreSession(ctx, log, fs, args)
		if err != nil {
			return err
		}
		recipient, err := parseRecipient(*to)
		if err != nil {
			return err
		}
		ok, err := s.SendNotification(ctx, recipient, *message, *link)
		if err != nil {
			return err
		}
		return reportStatus(log, "notification", ok)

	case "event":
		message := fs.String("message", "", "Event text")
		link := fs.String("link", "", "Optional link")
		image := fs.String("image", "", "Optional image URL")
		s, err := restoreSession(ctx, log, fs, args)
		if err != nil {
			return err
		}
		ok, err := s.SendEvent(ctx, ggapi.Event{Message: *message, Link: *link, Image: *image})
		if err != nil {
			return err
		}
		return reportStatus(log, "event", ok)

	case "avatar":
		uin := fs.Uint64("uin", 0, "User number")
		s, err := restoreSession(ctx, log, fs, args)
		if err != nil {
			return err
		}
		fmt.Println(s.AvatarURL(ggapi.UIN(*uin)))
		return nil
	}

	return fmt.Errorf("unknown command %q\n\n%s", command, usage)
}

func restoreSession(ctx context.Context, log zerolog.Logger, fs *flag.FlagSet, args []string) (*ggapi.Session, error) {
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return nil, err
	}

	store := tokenstore.NewFileStore(cfg.tokenFile, cfg.credentials.ClientID)

	pair, err := store.Load()
	if errors.Is(err, tokenstore.ErrNotFound) {
		return nil, errors.New("not logged in: run 'ggapi authorize-url' and 'ggapi login -code <code>' first")
	}
	if err != nil {
		return nil, err
	}

	return newSession(ctx, log, cfg, store, ggapi.WithTokenPair(pair))
}

func newSession(ctx context.Context, log zerolog.Logger, cfg *config, store *tokenstore.FileStore, grant ggapi.Option) (*ggapi.Session, error) {
	return ggapi.New(ctx, cfg.credentials,
		grant,
		ggapi.WithRequestLogger(logger.NewRequestLogger(log)),
		ggapi.WithTokenRefreshHook(func(pair ggapi.TokenPair) {
			if err := store.Save(pair); err != nil {
				log.Error().Err(err).Str("path", store.Path).Msg("failed to store tokens")
			}
		}),
	)
}

func parseRecipient(to string) (ggapi.Recipient, error) {
	if to == string(ggapi.ToFriends) {
		return ggapi.ToFriends, nil
	}

	uin, err := strconv.ParseUint(to, 10, 64)
	if err != nil || uin == 0 {
		return "", fmt.Errorf(`invalid recipient %q: want a user number or "friends"`, to)
	}

	return ggapi.ToUser(ggapi.UIN(uin)), nil
}

func reportStatus(log zerolog.Logger, what string, ok bool) error {
	if !ok {
		return fmt.Errorf("%s was not accepted", what)
	}
	log.Info().Msgf("%s sent", what)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
