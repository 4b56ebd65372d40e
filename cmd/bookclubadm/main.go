package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ivangarzab/bookclub-admin/internal/config"
	clubGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/club"
	memberGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/member"
	serverGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/server"
	sessionGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/session"
	"github.com/ivangarzab/bookclub-admin/internal/models"
	"github.com/ivangarzab/bookclub-admin/internal/repositories/selection"
	"github.com/ivangarzab/bookclub-admin/internal/services/admin"
)

const usage = `Usage: bookclubadm <command> [args]

Commands:
  servers                              refresh and list servers
  select-server <server-id>            make a server active
  select-club <club-id>                make a club active
  create-club -name <name> [-channel <channel>]
  delete-club <club-id>
  save-member -name <name> [-id <id>] [-points <n>] [-books <n>] [-shame]
  start-session -title <title> -author <author> -due <YYYY-MM-DD>
  add-discussion -title <title> -date <YYYY-MM-DD> [-location <loc>]
  edit-discussion -id <id> -title <title> -date <YYYY-MM-DD> [-location <loc>]
  delete-discussion -id <id>
  status                               show the active selection
`

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis client for selection persistence
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	selectionRepo, err := selection.NewRedis(&selection.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create selection repository: %v", err)
	}

	serverGw, err := serverGateway.NewHTTP(&serverGateway.Config{BaseURL: cfg.APIBaseURL})
	if err != nil {
		log.Fatalf("Failed to create server gateway: %v", err)
	}

	clubGw, err := clubGateway.NewHTTP(&clubGateway.Config{BaseURL: cfg.APIBaseURL})
	if err != nil {
		log.Fatalf("Failed to create club gateway: %v", err)
	}

	memberGw, err := memberGateway.NewHTTP(&memberGateway.Config{BaseURL: cfg.APIBaseURL})
	if err != nil {
		log.Fatalf("Failed to create member gateway: %v", err)
	}

	sessionGw, err := sessionGateway.NewHTTP(&sessionGateway.Config{BaseURL: cfg.APIBaseURL})
	if err != nil {
		log.Fatalf("Failed to create session gateway: %v", err)
	}

	adminSvc, err := admin.New(&admin.Config{
		ServerGateway:  serverGw,
		ClubGateway:    clubGw,
		MemberGateway:  memberGw,
		SessionGateway: sessionGw,
		Logger:         logger,
	})
	if err != nil {
		log.Fatalf("Failed to create admin service: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	restoreSelection(ctx, adminSvc, selectionRepo, cfg.Profile, logger)

	if err := dispatch(ctx, adminSvc, os.Args[1], os.Args[2:]); err != nil {
		// A partial write still moved remote state, so the selection is
		// persisted before reporting it
		saveSelection(ctx, adminSvc, selectionRepo, cfg.Profile, logger)

		var partial *admin.PartialWriteError
		if errors.As(err, &partial) {
			fmt.Fprintf(os.Stderr, "warning: %v\n", partial)
			os.Exit(1)
		}

		log.Fatalf("Command failed: %v", err)
	}

	saveSelection(ctx, adminSvc, selectionRepo, cfg.Profile, logger)
}

// restoreSelection replays the persisted selection against fresh server
// state. A stale selection degrades to the default instead of failing.
func restoreSelection(ctx context.Context, svc admin.Service, repo selection.Repository, profile string, logger *zap.Logger) {
	record, err := repo.GetSelection(ctx, &selection.GetSelectionInput{Profile: profile})
	if err != nil {
		if !errors.Is(err, selection.ErrSelectionNotFound) {
			logger.Warn("failed to load persisted selection", zap.Error(err))
		}
		if _, err := svc.RefreshServers(ctx, &admin.RefreshServersInput{}); err != nil {
			log.Fatalf("Failed to refresh servers: %v", err)
		}
		return
	}

	if _, err := svc.RefreshServers(ctx, &admin.RefreshServersInput{}); err != nil {
		log.Fatalf("Failed to refresh servers: %v", err)
	}

	if record.ActiveServerID != "" {
		if _, err := svc.SelectServer(ctx, &admin.SelectServerInput{ServerID: record.ActiveServerID}); err != nil {
			logger.Warn("persisted server no longer available",
				zap.String("server_id", record.ActiveServerID),
				zap.Error(err))
			return
		}
	}

	if record.ActiveClubID != "" {
		if _, err := svc.SelectClub(ctx, &admin.SelectClubInput{ClubID: record.ActiveClubID}); err != nil {
			logger.Warn("persisted club no longer available",
				zap.String("club_id", record.ActiveClubID),
				zap.Error(err))
		}
	}
}

// saveSelection persists whatever is active so the next invocation can
// pick up where this one left off
func saveSelection(ctx context.Context, svc admin.Service, repo selection.Repository, profile string, logger *zap.Logger) {
	sel := svc.ActiveSelection()
	if sel == nil || sel.ServerID == "" {
		if err := repo.ClearSelection(ctx, &selection.ClearSelectionInput{Profile: profile}); err != nil {
			logger.Warn("failed to clear persisted selection", zap.Error(err))
		}
		return
	}

	err := repo.SaveSelection(ctx, &selection.SaveSelectionInput{
		Profile: profile,
		Record: &selection.Record{
			ActiveServerID: sel.ServerID,
			ActiveClubID:   sel.ClubID,
			UpdatedAt:      time.Now(),
		},
	})
	if err != nil {
		logger.Warn("failed to persist selection", zap.Error(err))
	}
}

func dispatch(ctx context.Context, svc admin.Service, command string, args []string) error {
	switch command {
	case "servers":
		out, err := svc.RefreshServers(ctx, &admin.RefreshServersInput{PreserveSelection: true})
		if err != nil {
			return err
		}
		for _, srv := range out.Servers {
			marker := "  "
			if srv.ID == out.ActiveServerID {
				marker = "* "
			}
			fmt.Printf("%s%s  %s (%d clubs)\n", marker, srv.ID, srv.Name, len(srv.Clubs))
		}
		return nil

	case "select-server":
		if len(args) != 1 {
			return errors.New("usage: select-server <server-id>")
		}
		out, err := svc.SelectServer(ctx, &admin.SelectServerInput{ServerID: args[0]})
		if err != nil {
			return err
		}
		fmt.Printf("Active server: %s (%s)\n", out.Server.Name, out.Server.ID)
		return nil

	case "select-club":
		if len(args) != 1 {
			return errors.New("usage: select-club <club-id>")
		}
		out, err := svc.SelectClub(ctx, &admin.SelectClubInput{ClubID: args[0]})
		if err != nil {
			return err
		}
		printClub(out.Club)
		return nil

	case "create-club":
		fs := flag.NewFlagSet("create-club", flag.ExitOnError)
		name := fs.String("name", "", "club name")
		channel := fs.String("channel", "", "discord channel")
		fs.Parse(args)

		out, err := svc.CreateClub(ctx, &admin.CreateClubInput{Name: *name, DiscordChannel: *channel})
		if err != nil {
			return err
		}
		fmt.Printf("Created club %s (%s)\n", out.Club.Name, out.Club.ID)
		return nil

	case "delete-club":
		if len(args) != 1 {
			return errors.New("usage: delete-club <club-id>")
		}
		out, err := svc.DeleteClub(ctx, &admin.DeleteClubInput{ClubID: args[0]})
		if err != nil {
			return err
		}
		if out.ClubCleared {
			fmt.Println("Deleted the active club; selection cleared")
		} else {
			fmt.Println("Deleted club")
		}
		return nil

	case "save-member":
		fs := flag.NewFlagSet("save-member", flag.ExitOnError)
		id := fs.Int("id", 0, "member ID; omit to create")
		name := fs.String("name", "", "member name")
		points := fs.Int("points", 0, "points")
		books := fs.Int("books", 0, "books read")
		shame := fs.Bool("shame", false, "put the member on the shame list")
		fs.Parse(args)

		out, err := svc.SaveMember(ctx, &admin.SaveMemberInput{
			MemberID:    *id,
			Name:        *name,
			Points:      *points,
			BooksRead:   *books,
			OnShameList: *shame,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Saved member %s (#%d)\n", out.Member.Name, out.Member.ID)
		if out.Club != nil {
			printClub(out.Club)
		}
		return nil

	case "start-session":
		fs := flag.NewFlagSet("start-session", flag.ExitOnError)
		title := fs.String("title", "", "book title")
		author := fs.String("author", "", "book author")
		edition := fs.String("edition", "", "book edition")
		year := fs.Int("year", 0, "publication year")
		isbn := fs.String("isbn", "", "ISBN")
		due := fs.String("due", "", "due date, YYYY-MM-DD")
		fs.Parse(args)

		dueDate, err := parseDate(*due)
		if err != nil {
			return err
		}

		out, err := svc.StartSession(ctx, &admin.StartSessionInput{
			Book: models.Book{
				Title:   *title,
				Author:  *author,
				Edition: *edition,
				Year:    *year,
				ISBN:    *isbn,
			},
			DueDate: dueDate,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Started session %s: %s by %s, due %s\n",
			out.Session.ID, out.Session.Book.Title, out.Session.Book.Author,
			out.Session.DueDate.Format("2006-01-02"))
		return nil

	case "add-discussion":
		fs := flag.NewFlagSet("add-discussion", flag.ExitOnError)
		title := fs.String("title", "", "discussion title")
		date := fs.String("date", "", "discussion date, YYYY-MM-DD")
		location := fs.String("location", "", "where the discussion happens")
		fs.Parse(args)

		when, err := parseDate(*date)
		if err != nil {
			return err
		}

		out, err := svc.AddDiscussion(ctx, &admin.AddDiscussionInput{
			Title:    *title,
			Date:     when,
			Location: *location,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added discussion %s (%s)\n", out.Discussion.Title, out.Discussion.ID)
		printDiscussions(out.Discussions)
		return nil

	case "edit-discussion":
		fs := flag.NewFlagSet("edit-discussion", flag.ExitOnError)
		id := fs.String("id", "", "discussion ID")
		title := fs.String("title", "", "discussion title")
		date := fs.String("date", "", "discussion date, YYYY-MM-DD")
		location := fs.String("location", "", "where the discussion happens")
		fs.Parse(args)

		when, err := parseDate(*date)
		if err != nil {
			return err
		}

		out, err := svc.UpdateDiscussion(ctx, &admin.UpdateDiscussionInput{
			DiscussionID: *id,
			Title:        *title,
			Date:         when,
			Location:     *location,
		})
		if err != nil {
			return err
		}
		printDiscussions(out.Discussions)
		return nil

	case "delete-discussion":
		fs := flag.NewFlagSet("delete-discussion", flag.ExitOnError)
		id := fs.String("id", "", "discussion ID")
		fs.Parse(args)

		out, err := svc.DeleteDiscussion(ctx, &admin.DeleteDiscussionInput{DiscussionID: *id})
		if err != nil {
			return err
		}
		printDiscussions(out.Discussions)
		return nil

	case "status":
		sel := svc.ActiveSelection()
		if sel == nil || sel.ServerID == "" {
			fmt.Println("No active server")
			return nil
		}
		fmt.Printf("Active server: %s\n", sel.ServerID)
		if sel.ClubID != "" {
			fmt.Printf("Active club:   %s\n", sel.ClubID)
		}
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("a date is required, format YYYY-MM-DD")
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

func printClub(club *models.Club) {
	fmt.Printf("Club: %s (%s)\n", club.Name, club.ID)
	for _, m := range club.Members {
		shame := ""
		if club.OnShameList(m.ID) {
			shame = "  [shame]"
		}
		fmt.Printf("  #%-4d %-20s %3d pts, %d read%s\n", m.ID, m.Name, m.Points, m.BooksRead, shame)
	}
	if club.ActiveSession != nil {
		s := club.ActiveSession
		fmt.Printf("Reading: %s by %s, due %s\n", s.Book.Title, s.Book.Author, s.DueDate.Format("2006-01-02"))
		printDiscussions(s.Discussions)
	}
	if len(club.PastSessions) > 0 {
		fmt.Printf("Past sessions: %d\n", len(club.PastSessions))
	}
}

func printDiscussions(discussions []models.Discussion) {
	for _, d := range discussions {
		fmt.Printf("  %s  %s  %s %s\n", d.ID, d.Date.Format("2006-01-02"), d.Title, d.Location)
	}
}
