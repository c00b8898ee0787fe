package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lifemap/internal/config"
	"lifemap/internal/db"
	"lifemap/internal/domain"
	"lifemap/internal/repository"
	"lifemap/internal/service"
)

const topResources = 5

func main() {
	var (
		userID string
		email  string
	)

	cmd := &cobra.Command{
		Use:   "cli_quiz",
		Short: "Run the LifeMap self-discovery quiz in the terminal",
		Long: "Asks the six quiz questions, prints the dominant trait with its recommendation " +
			"and the top ranked resources. With --user the result is saved to the database.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			if userID == "" {
				return runOffline(out, reader)
			}
			return runPersisted(cmd.Context(), out, reader, userID, email)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id to save the result for")
	cmd.Flags().StringVar(&email, "email", "", "email used to register the user if missing")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runOffline(out io.Writer, reader *bufio.Reader) error {
	questions := service.NewAssessmentService(nil, nil, nil).Questions()
	responses := askQuestions(out, reader, questions)

	answers := make([]domain.Answer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, domain.Answer{QuestionID: q.ID, Choice: responses[q.ID]})
	}
	printResult(out, service.ScoreAssessment(answers, time.Now()))
	return nil
}

func runPersisted(ctx context.Context, out io.Writer, reader *bufio.Reader, userID, email string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	userSvc := service.NewUserService(logger, userRepo)
	assessmentSvc := service.NewAssessmentService(logger, userRepo, nil)

	if _, err := userSvc.Get(ctx, userID); errors.Is(err, service.ErrUserNotFound) {
		if email == "" {
			return fmt.Errorf("user %s not registered; pass --email to create it", userID)
		}
		if _, err := userSvc.Register(ctx, service.RegisterInput{UserID: userID, Email: email}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Registered user %s\n", userID)
	} else if err != nil {
		return err
	}

	responses := askQuestions(out, reader, assessmentSvc.Questions())
	result, err := assessmentSvc.Submit(ctx, userID, responses)
	if err := handleSubmitError(logger, userID, err); err != nil {
		return err
	}
	printResult(out, result)
	return nil
}

// handleSubmitError deja seguir cuando el resultado se calculo pero no se guardo.
func handleSubmitError(logger *zap.Logger, userID string, err error) error {
	if err == nil {
		return nil
	}
	var perr *service.PersistenceError
	if !errors.As(err, &perr) {
		return err
	}
	logger.Warn("assessment result not saved",
		zap.String("user_id", userID),
		zap.Error(perr.Err),
	)
	return nil
}

// askQuestions acepta el numero de la opcion o texto libre.
func askQuestions(out io.Writer, reader *bufio.Reader, questions []domain.Question) map[string]string {
	responses := make(map[string]string, len(questions))
	for i, q := range questions {
		fmt.Fprintf(out, "\n[%d/%d] %s\n", i+1, len(questions), q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
		}
		for {
			fmt.Fprint(out, "> ")
			line, err := reader.ReadString('\n')
			line = strings.TrimSpace(line)
			if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(q.Options) {
				responses[q.ID] = q.Options[n-1]
				break
			}
			if line != "" {
				responses[q.ID] = line
				break
			}
			if err != nil {
				responses[q.ID] = ""
				break
			}
		}
	}
	return responses
}

func printResult(out io.Writer, result domain.AssessmentResult) {
	rec := result.Recommendation
	fmt.Fprintf(out, "\n===== %s (%s) =====\n%s\n", rec.Title, result.DominantTrait, rec.Description)
	for _, s := range rec.Suggestions {
		fmt.Fprintf(out, "  - %s\n", s)
	}

	dominant := result.DominantTrait
	ranked := service.RankResources(service.Catalog(), &dominant)
	fmt.Fprintf(out, "\nTop resources (%s first):\n", service.PreferredCategory(dominant))
	for i, r := range ranked {
		if i == topResources {
			break
		}
		fmt.Fprintf(out, "  %d. %s [%s, %.1f] %s\n", i+1, r.Title, r.Category, r.Rating, r.Link)
	}
}
